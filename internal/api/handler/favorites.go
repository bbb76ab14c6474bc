package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/moviecat/internal/api/request"
	"github.com/mcoot/moviecat/internal/api/response"
	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/services/favorites"
)

// FavoritesHandler exposes the favorites of the active identity.
// Mutations made without a session are ignored and return the empty list.
type FavoritesHandler struct {
	favorites *favorites.Service
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favorites *favorites.Service) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// List handles GET /api/v1/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Favorites{Favorites: h.favorites.List()})
}

// Get handles GET /api/v1/favorites/{id}
func (h *FavoritesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FavoriteStatus{MovieID: id, IsFavorite: h.favorites.IsFavorite(id)})
}

// Add handles POST /api/v1/favorites
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ID == 0 {
		WriteError(w, NewInvalidRequestError("id is required"))
		return
	}

	err := h.favorites.Add(r.Context(), model.Favorite{
		ID:            model.MovieID(req.ID),
		Title:         req.Title,
		PosterPath:    req.PosterPath,
		VoteAverage:   req.VoteAverage,
		ReleaseDate:   req.ReleaseDate,
		Overview:      req.Overview,
		OriginalTitle: req.OriginalTitle,
		VoteCount:     req.VoteCount,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Favorites{Favorites: h.favorites.List()})
}

// Remove handles DELETE /api/v1/favorites/{id}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.favorites.Remove(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Favorites{Favorites: h.favorites.List()})
}
