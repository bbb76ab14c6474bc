package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/moviecat/internal/api/request"
	"github.com/mcoot/moviecat/internal/api/response"
	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/services/theme"
)

// ThemeHandler exposes the theme preference and its presentation surface
type ThemeHandler struct {
	theme   *theme.Store
	surface *theme.ClassList
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(store *theme.Store, surface *theme.ClassList) *ThemeHandler {
	return &ThemeHandler{theme: store, surface: surface}
}

// Get handles GET /api/v1/theme
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.current())
}

// Set handles PUT /api/v1/theme
func (h *ThemeHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req request.SetThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	t, err := model.ParseTheme(req.Theme)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.theme.Set(t)
	response.JSON(w, http.StatusOK, h.current())
}

// Toggle handles POST /api/v1/theme/toggle
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.theme.Toggle()
	response.JSON(w, http.StatusOK, h.current())
}

func (h *ThemeHandler) current() response.Theme {
	return response.Theme{Theme: h.theme.Current(), Classes: h.surface.Tokens()}
}
