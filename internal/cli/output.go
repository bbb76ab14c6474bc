package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Identity:
		o.printIdentity(v)
	case Session:
		o.printSession(v)
	case Favorites:
		o.printFavorites(v)
	case FavoriteStatus:
		o.printFavoriteStatus(v)
	case Ratings:
		o.printRatings(v)
	case Vote:
		o.printVote(v)
	case Theme:
		o.printTheme(v)
	case MoviePage:
		o.printMoviePage(v)
	case Genres:
		o.printGenres(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Identity response type (matches API)
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session response type
type Session struct {
	IsAuthenticated bool      `json:"is_authenticated"`
	Identity        *Identity `json:"identity"`
}

// Favorite response type
type Favorite struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	PosterPath    string  `json:"poster_path,omitempty"`
	VoteAverage   float64 `json:"vote_average"`
	ReleaseDate   string  `json:"release_date,omitempty"`
	Overview      string  `json:"overview,omitempty"`
	OriginalTitle string  `json:"original_title,omitempty"`
	VoteCount     int     `json:"vote_count"`
}

// Favorites response type
type Favorites struct {
	Favorites []Favorite `json:"favorites"`
}

// FavoriteStatus response type
type FavoriteStatus struct {
	MovieID    int64 `json:"movie_id"`
	IsFavorite bool  `json:"is_favorite"`
}

// Rating response type
type Rating struct {
	MovieID int64   `json:"movie_id"`
	Value   float64 `json:"value"`
}

// Ratings response type
type Ratings struct {
	Ratings []Rating `json:"ratings"`
}

// Vote response type
type Vote struct {
	MovieID  int64   `json:"movie_id"`
	Value    float64 `json:"value"`
	HasVoted bool    `json:"has_voted"`
}

// Theme response type
type Theme struct {
	Theme   string   `json:"theme"`
	Classes []string `json:"classes"`
}

// Movie is a catalog listing entry
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// Genre is a catalog genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MoviePage is a catalog page payload
type MoviePage struct {
	Films       []Movie `json:"films"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	Genre       *Genre  `json:"genre,omitempty"`
}

// Genres is the genre index payload
type Genres struct {
	Genres []Genre `json:"genres"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
	Server string `json:"server,omitempty"`
	// LatencyMS is measured by the CLI, not reported by the server
	LatencyMS int64 `json:"latency_ms"`
}

func (o *Output) printIdentity(i Identity) {
	fmt.Fprintf(o.w, "Identity: %s (%s)\n", i.Username, i.ID)
	fmt.Fprintf(o.w, "Email: %s\n", i.Email)
}

func (o *Output) printSession(s Session) {
	if !s.IsAuthenticated || s.Identity == nil {
		fmt.Fprintln(o.w, "Not logged in")
		return
	}
	fmt.Fprintln(o.w, "Logged in")
	o.printIdentity(*s.Identity)
}

func (o *Output) printFavorites(f Favorites) {
	if len(f.Favorites) == 0 {
		fmt.Fprintln(o.w, "No favorites")
		return
	}
	fmt.Fprintf(o.w, "Favorites (%d):\n", len(f.Favorites))
	for _, m := range f.Favorites {
		fmt.Fprintf(o.w, "  - %s (%d)\n", m.Title, m.ID)
	}
}

func (o *Output) printFavoriteStatus(s FavoriteStatus) {
	answer := "no"
	if s.IsFavorite {
		answer = "yes"
	}
	fmt.Fprintf(o.w, "Movie %d favorite: %s\n", s.MovieID, answer)
}

func (o *Output) printRatings(r Ratings) {
	if len(r.Ratings) == 0 {
		fmt.Fprintln(o.w, "No votes")
		return
	}
	fmt.Fprintf(o.w, "Votes (%d):\n", len(r.Ratings))
	for _, v := range r.Ratings {
		fmt.Fprintf(o.w, "  - %d: %g\n", v.MovieID, v.Value)
	}
}

func (o *Output) printVote(v Vote) {
	if !v.HasVoted {
		fmt.Fprintf(o.w, "Movie %d: not rated\n", v.MovieID)
		return
	}
	fmt.Fprintf(o.w, "Movie %d: %g\n", v.MovieID, v.Value)
}

func (o *Output) printTheme(t Theme) {
	fmt.Fprintf(o.w, "Theme: %s\n", t.Theme)
	fmt.Fprintf(o.w, "Classes: %s\n", strings.Join(t.Classes, " "))
}

func (o *Output) printMoviePage(p MoviePage) {
	if p.Genre != nil {
		fmt.Fprintf(o.w, "Genre: %s (%d)\n", p.Genre.Name, p.Genre.ID)
	}
	fmt.Fprintf(o.w, "Page %d/%d\n", p.CurrentPage, p.TotalPages)
	for _, m := range p.Films {
		fmt.Fprintf(o.w, "  - %s (%d) %s ★%.1f\n", m.Title, m.ID, m.ReleaseDate, m.VoteAverage)
	}
}

func (o *Output) printGenres(g Genres) {
	fmt.Fprintf(o.w, "Genres (%d):\n", len(g.Genres))
	for _, genre := range g.Genres {
		fmt.Fprintf(o.w, "  - %s (%d)\n", genre.Name, genre.ID)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.Server != "" {
		fmt.Fprintf(o.w, "Server: %s\n", h.Server)
	}
	fmt.Fprintf(o.w, "Latency: %dms\n", h.LatencyMS)
}
