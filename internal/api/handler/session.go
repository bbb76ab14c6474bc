package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/moviecat/internal/api/middleware"
	"github.com/mcoot/moviecat/internal/api/request"
	"github.com/mcoot/moviecat/internal/api/response"
	"github.com/mcoot/moviecat/internal/services/identity"
	"github.com/mcoot/moviecat/internal/services/session"
)

// SessionHandler handles login, logout and the current session
type SessionHandler struct {
	identities *identity.Service
	sessions   *session.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(identities *identity.Service, sessions *session.Store) *SessionHandler {
	return &SessionHandler{identities: identities, sessions: sessions}
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
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

	found, err := h.identities.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.sessions.Login(*found)
	response.JSON(w, http.StatusOK, response.SessionFromModel(h.sessions.Current()))
}

// Logout handles POST /api/v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	response.NoContent(w)
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	current := middleware.MustGetIdentity(r.Context())
	response.JSON(w, http.StatusOK, response.Session{
		IsAuthenticated: true,
		Identity:        ptr(response.IdentityFromModel(current)),
	})
}

func ptr[T any](v T) *T {
	return &v
}
