package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcoot/moviecat/internal/api"
	"github.com/mcoot/moviecat/internal/catalog"
	"github.com/mcoot/moviecat/internal/config"
	"github.com/mcoot/moviecat/internal/factory"
	"github.com/mcoot/moviecat/internal/metrics"
	redisstorage "github.com/mcoot/moviecat/internal/storage/redis"
	"github.com/mcoot/moviecat/internal/web"
)

func main() {
	// A missing .env is fine; the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		Catalog: catalog.Config{
			BaseURL:   cfg.CatalogURL,
			APIKey:    cfg.CatalogAPIKey,
			Timeout:   cfg.CatalogTimeout,
			RateLimit: cfg.CatalogRateLimit,
		},
		PrefersDark: cfg.PrefersDark,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.KeyPrefix = cfg.RedisKeyPrefix
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Close()

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		Identity:     app.Identity,
		Session:      app.Session,
		Favorites:    app.Favorites,
		Ratings:      app.Ratings,
		Theme:        app.Theme,
		ThemeSurface: app.ThemeSurface,
		Events:       app.Events,
		Metrics:      app.Metrics,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:  logger,
		Catalog: app.Catalog,
		Metrics: app.Metrics,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/metrics", metrics.Handler(app.Registry))
	mux.Handle("/", webRouter)

	serverConfig := api.DefaultServerConfig()
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		logger.Error("invalid PORT", slog.String("port", cfg.Port))
		os.Exit(1)
	}
	serverConfig.Port = port
	server := api.NewServer(mux, serverConfig, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Listen(); err != nil {
		logger.Error("failed to listen", slog.String("error", err.Error()))
		return
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return
		}
	}

	logger.Info("server stopped")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
