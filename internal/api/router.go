package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/moviecat/internal/api/handler"
	"github.com/mcoot/moviecat/internal/api/middleware"
	basemw "github.com/mcoot/moviecat/internal/middleware"
	"github.com/mcoot/moviecat/internal/services/favorites"
	"github.com/mcoot/moviecat/internal/services/identity"
	"github.com/mcoot/moviecat/internal/services/ratings"
	"github.com/mcoot/moviecat/internal/services/session"
	"github.com/mcoot/moviecat/internal/services/theme"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	Identity     *identity.Service
	Session      *session.Store
	Favorites    *favorites.Service
	Ratings      *ratings.Service
	Theme        *theme.Store
	ThemeSurface *theme.ClassList
	// Events is optional; when set GET /events streams store changes
	Events http.Handler
	// Metrics is optional
	Metrics basemw.RequestRecorder
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	identityHandler := handler.NewIdentityHandler(cfg.Identity)
	sessionHandler := handler.NewSessionHandler(cfg.Identity, cfg.Session)
	favoritesHandler := handler.NewFavoritesHandler(cfg.Favorites)
	ratingsHandler := handler.NewRatingsHandler(cfg.Ratings)
	themeHandler := handler.NewThemeHandler(cfg.Theme, cfg.ThemeSurface)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(basemw.Recovery(cfg.Logger, handler.Panic))
	api.Use(basemw.Logging(cfg.Logger))
	api.Use(basemw.Metrics(cfg.Metrics))

	// Identity routes
	api.HandleFunc("/identities/register", identityHandler.Register).Methods(http.MethodPost)

	// Session routes
	api.HandleFunc("/session/login", sessionHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/session/logout", sessionHandler.Logout).Methods(http.MethodPost)
	api.Handle("/session", middleware.RequireSession(cfg.Session)(http.HandlerFunc(sessionHandler.Get))).Methods(http.MethodGet)

	// Favorites routes; mutations without a session are ignored by the store
	api.HandleFunc("/favorites", favoritesHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/favorites", favoritesHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/favorites/{id}", favoritesHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/favorites/{id}", favoritesHandler.Remove).Methods(http.MethodDelete)

	// Ratings routes
	api.HandleFunc("/ratings", ratingsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/ratings/{id}", ratingsHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/ratings/{id}", ratingsHandler.Vote).Methods(http.MethodPut)

	// Theme routes
	api.HandleFunc("/theme", themeHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/theme", themeHandler.Set).Methods(http.MethodPut)
	api.HandleFunc("/theme/toggle", themeHandler.Toggle).Methods(http.MethodPost)

	if cfg.Events != nil {
		api.Handle("/events", cfg.Events).Methods(http.MethodGet)
	}

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
