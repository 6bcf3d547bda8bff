// Package server wires the application together: configuration, logging,
// database repositories, domain services and the HTTP API. It also installs
// the signal handler that drives graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/dmitrijs2005/studytrack/internal/logging"
	"github.com/dmitrijs2005/studytrack/internal/server/config"
	"github.com/dmitrijs2005/studytrack/internal/server/httpapi"
	"github.com/dmitrijs2005/studytrack/internal/server/shared/db"
	"github.com/dmitrijs2005/studytrack/internal/server/topics"
	"github.com/dmitrijs2005/studytrack/internal/server/users"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	repos        db.RepositoryManager
	userService  *users.Service
	topicService *topics.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	// An unset secret must never reach the token guard: HS256 with an
	// empty key verifies any token signed with an empty key.
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("jwt secret is not configured: %w", common.ErrorConfiguration)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := db.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), cfg)
	ts := topics.NewService(rm.Topics())

	return &App{
		config:       cfg,
		logger:       logger,
		repos:        rm,
		userService:  us,
		topicService: ts,
	}, nil
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

	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger,
		app.userService, app.topicService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err)
	}
}
