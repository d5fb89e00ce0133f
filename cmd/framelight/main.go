// Package main is the entry point for the framelight server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"framelight/internal/cache"
	"framelight/internal/config"
	"framelight/internal/database"
	"framelight/internal/feed"
	"framelight/internal/handlers"
	"framelight/internal/logging"
	"framelight/internal/render"
	"framelight/internal/router"
	"framelight/internal/session"
	"framelight/internal/storage"
	"framelight/internal/store"
)

func main() {
	// Load configuration from environment variables (and .env when present).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.IsDev(), cfg.LogFile)
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (sessions, visitor feed state, page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	visitorStore := session.NewVisitorStore(valkeyClient, secureCookies)
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Initialize the HTML template renderer. In dev mode, templates load
	// assets from CDN; in production they use embedded local files.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize data stores.
	userStore := store.NewAdminUserStore(db)
	categoryStore := store.NewCategoryStore(db)
	portfolioStore := store.NewPortfolioStore(db)
	teamStore := store.NewTeamStore(db)
	pricingStore := store.NewPricingStore(db)
	inquiryStore := store.NewInquiryStore(db)
	settingStore := store.NewSettingStore(db)
	mediaStore := store.NewMediaStore(db)

	// Connect to S3-compatible object storage. Uploads are disabled
	// when it is not configured.
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// Feed plumbing for the public portfolio.
	fetcher := feed.NewFetcher(portfolioStore, categoryStore)
	directory := feed.NewDirectory(categoryStore)

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(renderer, userStore, categoryStore, portfolioStore, teamStore, pricingStore, inquiryStore, settingStore, mediaStore, storageClient, pageCache)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	publicHandlers := handlers.NewPublic(renderer, fetcher, directory, visitorStore, teamStore, pricingStore, settingStore, inquiryStore, pageCache)

	limiters := router.NewLimiters()
	defer limiters.Stop()

	r := router.New(sessionStore, adminHandlers, authHandlers, publicHandlers, limiters, secureCookies)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
