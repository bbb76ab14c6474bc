package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/moviecat/internal/model"
)

// Page-load failure messages shown to visitors
const (
	msgPopularFailed  = "Erreur lors du chargement des films populaires"
	msgTrendingFailed = "Erreur lors du chargement des films tendances"
	msgUpcomingFailed = "Erreur lors du chargement des films à venir"
	msgGenresFailed   = "Erreur lors du chargement des genres"
	msgGenreFailed    = "Erreur lors du chargement des films du genre"
	msgInvalidGenre   = "ID de genre invalide"
	msgGenreNotFound  = "Genre non trouvé"
	msgSearchFailed   = "Erreur lors de la recherche de films"
	msgSearchMissing  = "Critère de recherche manquant"
	msgInvalidNote    = "Note invalide"
	msgInternal       = "Erreur interne du serveur"
)

// Catalog is the subset of the catalog gateway the pages read from
type Catalog interface {
	Popular(ctx context.Context, page int) (*model.MoviePage, error)
	Trending(ctx context.Context, page int) (*model.MoviePage, error)
	Upcoming(ctx context.Context, page int) (*model.MoviePage, error)
	Genres(ctx context.Context) (*model.GenreList, error)
	ByGenre(ctx context.Context, genreID, page int) (*model.MoviePage, error)
	ByTitle(ctx context.Context, title string, page int) (*model.MoviePage, error)
	ByReleaseDate(ctx context.Context, date string, page int) (*model.MoviePage, error)
	ByMinimumRating(ctx context.Context, note float64, page int) (*model.MoviePage, error)
}

// PageData is the payload of a movie listing page
type PageData struct {
	Films       []model.Movie `json:"films"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	Genre       *model.Genre  `json:"genre,omitempty"`
}

// GenresData is the payload of the genre index page
type GenresData struct {
	Genres []model.Genre `json:"genres"`
}

// ErrorData is the payload of a failed page load
type ErrorData struct {
	Message string `json:"message"`
}

// PageHandler loads the data of every catalog page
type PageHandler struct {
	catalog Catalog
	logger  *slog.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(catalog Catalog, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "pages")),
	}
}

// Popular handles GET /films
func (h *PageHandler) Popular(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, msgPopularFailed, func(ctx context.Context, page int) (*model.MoviePage, error) {
		return h.catalog.Popular(ctx, page)
	})
}

// Trending handles GET /tendances
func (h *PageHandler) Trending(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, msgTrendingFailed, func(ctx context.Context, page int) (*model.MoviePage, error) {
		return h.catalog.Trending(ctx, page)
	})
}

// Upcoming handles GET /a-venir
func (h *PageHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, msgUpcomingFailed, func(ctx context.Context, page int) (*model.MoviePage, error) {
		return h.catalog.Upcoming(ctx, page)
	})
}

// Genres handles GET /genres
func (h *PageHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.Genres(r.Context())
	if err != nil {
		h.fail(w, http.StatusInternalServerError, msgGenresFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, GenresData{Genres: nonNil(genres.Genres)})
}

// Genre handles GET /genres/{id}. The genre list and the listing are
// fetched concurrently.
func (h *PageHandler) Genre(w http.ResponseWriter, r *http.Request) {
	genreID, ok := parseLeadingInt(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorData{Message: msgInvalidGenre})
		return
	}
	page := pageParam(r)

	var (
		genres *model.GenreList
		movies *model.MoviePage
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		genres, err = h.catalog.Genres(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = h.catalog.ByGenre(ctx, genreID, page)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, http.StatusInternalServerError, msgGenreFailed, err)
		return
	}

	genre, found := genres.Find(genreID)
	if !found {
		writeJSON(w, http.StatusNotFound, ErrorData{Message: msgGenreNotFound})
		return
	}

	data := pageData(movies)
	data.Genre = &genre
	writeJSON(w, http.StatusOK, data)
}

// Search handles GET /recherche. Exactly one criterion is used, in order of
// precedence: titre, date, note.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var load func(ctx context.Context, page int) (*model.MoviePage, error)

	switch {
	case q.Get("titre") != "":
		title := q.Get("titre")
		load = func(ctx context.Context, page int) (*model.MoviePage, error) {
			return h.catalog.ByTitle(ctx, title, page)
		}
	case q.Get("date") != "":
		date := q.Get("date")
		load = func(ctx context.Context, page int) (*model.MoviePage, error) {
			return h.catalog.ByReleaseDate(ctx, date, page)
		}
	case q.Get("note") != "":
		note, err := strconv.ParseFloat(q.Get("note"), 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorData{Message: msgInvalidNote})
			return
		}
		load = func(ctx context.Context, page int) (*model.MoviePage, error) {
			return h.catalog.ByMinimumRating(ctx, note, page)
		}
	default:
		writeJSON(w, http.StatusBadRequest, ErrorData{Message: msgSearchMissing})
		return
	}

	h.listing(w, r, msgSearchFailed, load)
}

func (h *PageHandler) listing(w http.ResponseWriter, r *http.Request, failure string, load func(context.Context, int) (*model.MoviePage, error)) {
	movies, err := load(r.Context(), pageParam(r))
	if err != nil {
		h.fail(w, http.StatusInternalServerError, failure, err)
		return
	}
	writeJSON(w, http.StatusOK, pageData(movies))
}

func (h *PageHandler) fail(w http.ResponseWriter, status int, message string, err error) {
	h.logger.Error("page load failed",
		slog.String("message", message),
		slog.String("error", err.Error()))
	writeJSON(w, status, ErrorData{Message: message})
}

func pageData(p *model.MoviePage) PageData {
	return PageData{
		Films:       nonNil(p.Results),
		CurrentPage: p.Page,
		TotalPages:  p.TotalPages,
	}
}

// pageParam reads ?page=, falling back to 1 when it is absent, not a
// number, or zero
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil || page == 0 {
		return 1
	}
	return page
}

// parseLeadingInt parses the optionally signed run of digits at the start of
// s, ignoring leading whitespace and anything after the digits ("28abc" is 28)
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Panic renders a recovered panic as a page-load failure
func Panic(w http.ResponseWriter, _ *http.Request, _ any) {
	writeJSON(w, http.StatusInternalServerError, ErrorData{Message: msgInternal})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
