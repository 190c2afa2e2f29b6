// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/brighthorizon/showcase/internal/api"
	"github.com/brighthorizon/showcase/internal/gallery"
	"github.com/brighthorizon/showcase/internal/mcpserver"
	"github.com/brighthorizon/showcase/internal/render"
	"github.com/brighthorizon/showcase/internal/source"
	"github.com/brighthorizon/showcase/internal/sse"
	"github.com/brighthorizon/showcase/internal/viewer"
)

// buildSource creates the configured document source.
func buildSource(cfg *Config) (source.Source, error) {
	switch cfg.Source.Kind {
	case SourceManifest:
		return source.NewManifest(cfg.Source.Manifest.Path), nil
	case SourceDir:
		return source.NewDir(cfg.Source.Dir.Path)
	default:
		var opts []source.GitHubOption
		if cfg.Source.GitHub.APIBase != "" {
			opts = append(opts, source.WithAPIBase(cfg.Source.GitHub.APIBase))
		}
		if cfg.Source.GitHub.Token != "" {
			opts = append(opts, source.WithToken(cfg.Source.GitHub.Token))
		}
		return source.NewGitHub(cfg.Source.GitHub.Owner, cfg.Source.GitHub.Repo, cfg.Source.GitHub.Dir, opts...), nil
	}
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("source_kind", cfg.Source.Kind),
		slog.Int("page_size", cfg.Gallery.PageSize),
		slog.String("log_level", cfg.App.LogLevel.String()))

	src := app.source
	if src == nil {
		var err error
		src, err = buildSource(cfg)
		if err != nil {
			return fmt.Errorf("init source: %w", err)
		}
	}

	store := gallery.NewStore(cfg.Gallery.PageSize)
	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// reload is shared by the initial load, the manual reload endpoint,
	// and the manifest watcher.
	reload := func(ctx context.Context) (int, error) {
		projects, err := gallery.Load(ctx, src, logger)
		if err != nil {
			store.SetLoadError(err)
			broker.PublishReload(err)
			return 0, err
		}
		store.Load(projects)
		broker.PublishReload(nil)
		return len(projects), nil
	}

	// Initial load. A listing failure is surfaced to clients, not fatal:
	// the gallery serves its failure state until a manual reload succeeds.
	if n, err := reload(ctx); err != nil {
		logger.Warn("initial load failed", slog.String("error", err.Error()))
	} else {
		logger.Info("collection loaded", slog.Int("projects", n))
	}

	v := viewer.New(store, renderer, logger)
	h := api.NewHandler(store, v, renderer, broker, reload, cfg.Gallery.Title)
	apiRouter := api.NewRouter(h, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api, UI routes at the root.
	r.Mount("/api", apiRouter)
	h.MountUI(r)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the manifest for edits (manifest source only).
	if cfg.Source.Kind == SourceManifest && app.source == nil {
		manifestPath := cfg.Source.Manifest.Path
		g.Go(func() error {
			return gallery.WatchManifest(gCtx, manifestPath, logger, func() {
				if _, err := reload(gCtx); err != nil {
					logger.Warn("reload after manifest change failed", slog.String("error", err.Error()))
				}
			})
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP loads the collection once and serves the MCP tools over stdio.
func RunMCP(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	// MCP speaks JSON-RPC on stdout; keep logs on stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	src := app.source
	if src == nil {
		var err error
		src, err = buildSource(cfg)
		if err != nil {
			return fmt.Errorf("init source: %w", err)
		}
	}

	store := gallery.NewStore(cfg.Gallery.PageSize)
	projects, err := gallery.Load(ctx, src, logger)
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	store.Load(projects)
	logger.Info("collection loaded", slog.Int("projects", len(projects)))

	return mcpserver.New(store).ServeStdio()
}
