package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	basemw "github.com/mcoot/moviecat/internal/middleware"
	"github.com/mcoot/moviecat/internal/web/handler"
)

// RouterConfig holds configuration for the page-load router
type RouterConfig struct {
	Logger  *slog.Logger
	Catalog handler.Catalog
	// Metrics is optional
	Metrics basemw.RequestRecorder
}

// NewRouter creates the page-load router
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(basemw.Recovery(cfg.Logger, handler.Panic))
	r.Use(basemw.Logging(cfg.Logger))
	r.Use(basemw.Metrics(cfg.Metrics))

	pages := handler.NewPageHandler(cfg.Catalog, cfg.Logger)

	r.HandleFunc("/films", pages.Popular).Methods(http.MethodGet)
	r.HandleFunc("/tendances", pages.Trending).Methods(http.MethodGet)
	r.HandleFunc("/a-venir", pages.Upcoming).Methods(http.MethodGet)
	r.HandleFunc("/genres", pages.Genres).Methods(http.MethodGet)
	r.HandleFunc("/genres/{id}", pages.Genre).Methods(http.MethodGet)
	r.HandleFunc("/recherche", pages.Search).Methods(http.MethodGet)

	return r
}
