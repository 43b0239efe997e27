package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/vintage-books/internal/api/http"
	"github.com/spec-kit/vintage-books/internal/api/http/handlers"
	"github.com/spec-kit/vintage-books/internal/auth"
	"github.com/spec-kit/vintage-books/internal/config"
	"github.com/spec-kit/vintage-books/internal/events"
	"github.com/spec-kit/vintage-books/internal/observability"
	"github.com/spec-kit/vintage-books/internal/service"
	"github.com/spec-kit/vintage-books/internal/storage"
	"github.com/spec-kit/vintage-books/internal/store"
	"github.com/spec-kit/vintage-books/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	medium, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage backend", zap.Error(err))
	}
	defer medium.Close()

	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notifications)

	st := store.New(store.Dependencies{
		Storage:    medium,
		Hasher:     auth.HasherForScheme(cfg.Auth.PasswordScheme, cfg.Auth.BcryptCost),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	if err := st.Init(ctx); err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokens, st)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, medium),
		Users:          handlers.NewUsersHandler(st, tokens),
		Cart:           handlers.NewCartHandler(st),
		Wishlist:       handlers.NewWishlistHandler(st),
		Orders:         handlers.NewOrdersHandler(st),
		Backup:         handlers.NewBackupHandler(st),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// buildStorage opens the configured key-value backend.
func buildStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "memory":
		logger.Warn("using in-memory storage; data will not survive restarts")
		return storage.NewMemory(), nil
	case "file":
		medium, err := storage.NewFile(cfg.Storage.FilePath)
		if err != nil {
			return nil, err
		}
		return medium, nil
	case "sqlite":
		medium, err := storage.NewSQLite(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return medium, nil
	case "redis":
		return storage.NewRedis(cfg.Redis, logger), nil
	case "postgres":
		medium, err := storage.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		return medium, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
