package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/moviecat/internal/api/request"
	"github.com/mcoot/moviecat/internal/api/response"
	"github.com/mcoot/moviecat/internal/services/ratings"
)

// RatingsHandler exposes the votes of the active identity
type RatingsHandler struct {
	ratings *ratings.Service
}

// NewRatingsHandler creates a new ratings handler
func NewRatingsHandler(ratings *ratings.Service) *RatingsHandler {
	return &RatingsHandler{ratings: ratings}
}

// List handles GET /api/v1/ratings
func (h *RatingsHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Ratings{Ratings: h.ratings.All()})
}

// Get handles GET /api/v1/ratings/{id}
func (h *RatingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Vote{
		MovieID:  id,
		Value:    h.ratings.GetVote(id),
		HasVoted: h.ratings.HasVoted(id),
	})
}

// Vote handles PUT /api/v1/ratings/{id}
func (h *RatingsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Value == nil {
		WriteError(w, NewInvalidRequestError("value is required"))
		return
	}

	if err := h.ratings.Vote(r.Context(), id, *req.Value); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Vote{
		MovieID:  id,
		Value:    h.ratings.GetVote(id),
		HasVoted: h.ratings.HasVoted(id),
	})
}
