package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mcoot/moviecat/internal/api/events"
	"github.com/mcoot/moviecat/internal/catalog"
	"github.com/mcoot/moviecat/internal/dependencies/idgen"
	"github.com/mcoot/moviecat/internal/metrics"
	"github.com/mcoot/moviecat/internal/services/favorites"
	"github.com/mcoot/moviecat/internal/services/identity"
	"github.com/mcoot/moviecat/internal/services/ratings"
	"github.com/mcoot/moviecat/internal/services/scoped"
	"github.com/mcoot/moviecat/internal/services/session"
	"github.com/mcoot/moviecat/internal/services/theme"
	"github.com/mcoot/moviecat/internal/storage"
	"github.com/mcoot/moviecat/internal/storage/memory"
	redisstorage "github.com/mcoot/moviecat/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App is the process-wide application context: one session, one theme, one
// favorites store and one ratings store.
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	IDs     idgen.Generator
	Metrics *metrics.Collector
	// Registry gathers Metrics for the scrape endpoint
	Registry *prometheus.Registry

	// Services
	Identity     *identity.Service
	Session      *session.Store
	Favorites    *favorites.Service
	Ratings      *ratings.Service
	Theme        *theme.Store
	ThemeSurface *theme.ClassList
	Catalog      *catalog.Client

	// Events streams store changes to HTTP clients
	Events *events.Feed

	closers []func()
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Catalog holds the remote catalog settings
	Catalog catalog.Config
	// HTTPClient is used for catalog requests (optional)
	HTTPClient *http.Client
	// PrefersDark is the ambient theme preference; nil when unknown
	PrefersDark *bool
	// Registry receives the application metrics (optional)
	// If nil, a fresh registry is created
	Registry *prometheus.Registry
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closeStore func()
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closeStore = func() {
			if err := redisStore.Close(); err != nil {
				logger.Warn("failed to close redis", slog.String("error", err.Error()))
			}
		}
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	collector := metrics.NewCollector(registry)

	catalogClient := catalog.NewClient(cfg.Catalog, cfg.HTTPClient, collector, logger)

	app := newWithDependencies(store, idgen.New(), catalogClient, collector, cfg.PrefersDark, logger)
	app.Registry = registry
	if closeStore != nil {
		app.closers = append(app.closers, closeStore)
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	ids idgen.Generator,
	catalogClient *catalog.Client,
	collector *metrics.Collector,
	prefersDark *bool,
	logger *slog.Logger,
) *App {
	// collector is only nil in tests; a nil *Collector must not reach the
	// stores as a non-nil Recorder interface
	var recorder scoped.Recorder
	if collector != nil {
		recorder = collector
	}

	identityService := identity.New(store, ids, logger)
	sessionStore := session.New(logger)
	favoritesService := favorites.New(store, sessionStore, recorder, logger)
	ratingsService := ratings.New(store, sessionStore, recorder, logger)
	surface := theme.NewClassList()
	themeStore := theme.New(context.Background(), store, surface, prefersDark, logger)
	feed := events.NewFeed(events.Sources{
		Session:   sessionStore,
		Favorites: favoritesService,
		Ratings:   ratingsService,
		Theme:     themeStore,
		Surface:   surface,
	}, logger)

	return &App{
		Storage:      store,
		IDs:          ids,
		Metrics:      collector,
		Identity:     identityService,
		Session:      sessionStore,
		Favorites:    favoritesService,
		Ratings:      ratingsService,
		Theme:        themeStore,
		ThemeSurface: surface,
		Catalog:      catalogClient,
		Events:       feed,
		closers:      []func(){feed.Close, favoritesService.Close, ratingsService.Close, themeStore.Close},
	}
}

// Close detaches the stores from the session and releases storage
func (a *App) Close() {
	for _, c := range a.closers {
		c()
	}
}
