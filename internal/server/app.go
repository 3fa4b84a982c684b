// Package server initializes and runs the accounts server: it opens the
// PostgreSQL pool, applies migrations, builds the credential store and serves
// it over gRPC until SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophaccounts/internal/cryptox"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
	"github.com/dmitrijs2005/gophaccounts/internal/server/shared/db"
	"github.com/jackc/pgx/v5/pgxpool"

	gs "github.com/dmitrijs2005/gophaccounts/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	pool   *pgxpool.Pool
	store  *services.CredentialStore
}

// NewApp connects to the database, runs migrations and prepares the
// credential store. The caller must call Close.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, c.DatabaseConnectTimeout)
	defer cancel()

	pool, err := db.Connect(connectCtx, db.PoolConfig{
		DSN:            c.DatabaseDSN,
		MaxConns:       c.DatabaseMaxConns,
		ConnectTimeout: c.DatabaseConnectTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	sqlDB := db.OpenDB(pool)
	err = rm.RunMigrations(ctx, sqlDB)
	_ = sqlDB.Close()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := services.NewCredentialStore(pool, rm, cryptox.NewArgon2Hasher(c.HashParams()), logger)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, pool: pool, store: store}, nil
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// Run serves gRPC until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {

	ctx, stop := app.initSignalHandler(ctx)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.store)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

// Close releases the database pool.
func (app *App) Close() {
	app.pool.Close()
}
