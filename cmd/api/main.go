// Package main is the entry point for the My Finance Pal API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finance-pal/backend/config"
	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/infra/db"
	"github.com/finance-pal/backend/internal/infra/dependency"
	"github.com/finance-pal/backend/internal/integration/feed"
	"github.com/finance-pal/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting My Finance Pal API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"guest_mode", cfg.Guest.Enabled,
		"guest_allow_remote", cfg.Guest.AllowRemote,
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	remote := connectRemote(ctx, cfg)
	if remote != nil {
		defer closeStore(remote)
	}

	local := connectLocal(cfg)
	if local != nil {
		defer closeStore(local)
	}

	changeFeed := connectFeed(ctx, cfg)

	injector := dependency.NewInjector(cfg, dependency.Stores{
		Remote: remote,
		Local:  local,
		Feed:   changeFeed,
	})
	go injector.ExportRateLimiter.RunCleanup(ctx, time.Minute)

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	// Cancelling the base context ends open change streams.
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// connectRemote opens the PostgreSQL store for signed-in users. The server
// still starts without it, serving the guest scope only.
func connectRemote(ctx context.Context, cfg *config.Config) *db.Database {
	database, err := db.NewPostgresConnection(ctx, &cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without remote store",
			"error", err,
		)
		return nil
	}

	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(cfg.Database.URL); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
	}

	return database
}

// connectLocal opens the device-local store backing the guest scope.
func connectLocal(cfg *config.Config) *db.Database {
	if !cfg.Guest.Enabled {
		slog.Info("Guest mode disabled, local store not opened")
		return nil
	}

	database, err := db.NewSQLiteConnection(cfg.Guest.StorePath)
	if err != nil {
		slog.Warn("Local store unavailable, guest mode disabled", "error", err)
		return nil
	}

	if err := database.AutoMigrate(model.Models()...); err != nil {
		slog.Error("Failed to migrate local store", "error", err)
		os.Exit(1)
	}

	return database
}

// connectFeed returns the Redis change feed, or an in-process feed when Redis
// is disabled or unreachable.
func connectFeed(ctx context.Context, cfg *config.Config) adapter.ChangeFeed {
	if !cfg.Redis.Enabled {
		slog.Info("Redis disabled, using in-process change feed")
		return feed.NewMemoryFeed()
	}

	client, err := feed.NewRedisClient(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Warn("Redis connection failed, using in-process change feed", "error", err)
		return feed.NewMemoryFeed()
	}

	return feed.NewRedisFeed(client)
}

func closeStore(database *db.Database) {
	if err := database.Close(); err != nil {
		slog.Error("Failed to close database connection", "store", database.Name(), "error", err)
	}
}
