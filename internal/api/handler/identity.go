package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/moviecat/internal/api/request"
	"github.com/mcoot/moviecat/internal/api/response"
	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/services/identity"
)

// IdentityHandler handles identity registration
type IdentityHandler struct {
	identities *identity.Service
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(identities *identity.Service) *IdentityHandler {
	return &IdentityHandler{identities: identities}
}

// Register handles POST /api/v1/identities/register
func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	created, err := h.identities.Register(r.Context(), model.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.IdentityFromModel(created))
}
