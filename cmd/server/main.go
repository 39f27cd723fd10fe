package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/api"
	"github.com/fintrack/finance-system/internal/core/ports"
	"github.com/fintrack/finance-system/internal/core/service"
	"github.com/fintrack/finance-system/internal/infrastructure/config"
	kvmemory "github.com/fintrack/finance-system/internal/infrastructure/kv/memory"
	kvmongo "github.com/fintrack/finance-system/internal/infrastructure/kv/mongo"
	kvredis "github.com/fintrack/finance-system/internal/infrastructure/kv/redis"
	kvsqlite "github.com/fintrack/finance-system/internal/infrastructure/kv/sqlite"
	"github.com/fintrack/finance-system/internal/infrastructure/store"
	"github.com/fintrack/finance-system/pkg/logger"
)

// @title           Finance System API
// @version         1.0
// @description     Personal finance tracker: accounts, transactions, savings goals, and ledger summaries.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	kv, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to open store")
	}
	defer cleanup()

	ledger, err := store.Open(ctx, kv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load ledger")
	}

	authService := service.NewAuthService(ledger, ledger, cfg.JWTSecret, cfg.TokenTTL, log)
	transactionService := service.NewTransactionService(ledger, ledger, log)
	goalService := service.NewGoalService(ledger, log)

	// Reinstate a persisted session from a previous run, if any.
	if user, err := authService.RestoreSession(ctx); err == nil && user != nil {
		log.Info().Int64("user_id", user.ID).Msg("session restored")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:         authService,
		Transactions: transactionService,
		Goals:        goalService,
		Store:        kv,
		JWTSecret:    cfg.JWTSecret,
		Logger:       log,
	})

	// Graceful shutdown handling
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("backend", cfg.Store.Backend).Msg("starting finance server")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}

	log.Info().Msg("server stopped gracefully")
}

// openStore selects and connects the KV backend holding the ledger slots.
// The returned cleanup releases the backend's resources on shutdown.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.KVStore, func(), error) {
	switch cfg.Store.Backend {
	case "redis":
		client, err := kvredis.Connect(ctx, kvredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return kvredis.NewStore(client), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := kvmongo.Connect(ctx, kvmongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		return kvmongo.NewStore(db), func() { _ = client.Disconnect(context.Background()) }, nil

	case "sqlite":
		st, err := kvsqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil

	default:
		log.Info().Msg("using in-memory store; data will not survive a restart")
		return kvmemory.New(), func() {}, nil
	}
}
