// Package server wires configuration, the identity backend, services and
// the HTTP API together, and runs them until the process is signalled.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/server/auth"
	"github.com/dmitrijs2005/nutritrack/internal/server/config"
	"github.com/dmitrijs2005/nutritrack/internal/server/httpapi"
	"github.com/dmitrijs2005/nutritrack/internal/server/provider"
	"github.com/dmitrijs2005/nutritrack/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	server  *httpapi.Server
	closeDB func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stdout)

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	opts := provider.Options{
		Issuer:          issuer,
		RefreshTokenTTL: c.RefreshTokenValidityDuration,
		HashCost:        c.PasswordHashCost,
	}

	backend, closeDB, err := provider.New(ctx, c.Provider, c.DatabaseDSN, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("provider init error: %w", err)
	}

	authService := services.NewAuthService(backend, logger)
	recordService := services.NewRecordService(backend)
	srv := httpapi.NewServer(c.EndpointAddrHTTP, logger, authService, recordService, issuer, c.ShutdownTimeout)

	return &App{config: c, logger: logger, server: srv, closeDB: closeDB}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server stopped", "error", err)
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives or the parent ctx is done.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "provider", app.config.Provider)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.closeDB(); err != nil {
		app.logger.Warn(ctx, "db close failed", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
