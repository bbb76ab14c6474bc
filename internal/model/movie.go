package model

// MovieID is the catalog identifier of a movie
type MovieID int64

// Favorite is a movie saved by an identity
type Favorite struct {
	ID            MovieID `json:"id"`
	Title         string  `json:"title"`
	PosterPath    string  `json:"poster_path"`
	VoteAverage   float64 `json:"vote_average"`
	ReleaseDate   string  `json:"release_date"`
	Overview      string  `json:"overview"`
	OriginalTitle string  `json:"original_title"`
	VoteCount     int     `json:"vote_count"`
}

// Rating is the score an identity gave to a movie
type Rating struct {
	MovieID MovieID `json:"movie_id"`
	Value   float64 `json:"value"`
}

// Movie is a catalog listing entry
type Movie struct {
	ID               MovieID `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	Adult            bool    `json:"adult"`
}

// Favorite converts a catalog entry into a favorite record
func (m Movie) Favorite() Favorite {
	return Favorite{
		ID:            m.ID,
		Title:         m.Title,
		PosterPath:    m.PosterPath,
		VoteAverage:   m.VoteAverage,
		ReleaseDate:   m.ReleaseDate,
		Overview:      m.Overview,
		OriginalTitle: m.OriginalTitle,
		VoteCount:     m.VoteCount,
	}
}

// MoviePage is a paged listing returned by the catalog
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a catalog movie genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the catalog genre listing
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Find returns the genre with the given ID
func (l GenreList) Find(id int) (Genre, bool) {
	for _, g := range l.Genres {
		if g.ID == id {
			return g, true
		}
	}
	return Genre{}, false
}
