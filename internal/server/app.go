// Package server initializes and runs the FormTrack API server: it wires
// the Postgres repositories, object storage and services, and starts the
// HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/poseform/formtrack/internal/logging"
	"github.com/poseform/formtrack/internal/server/config"
	"github.com/poseform/formtrack/internal/server/db"
	"github.com/poseform/formtrack/internal/server/httpapi"
	"github.com/poseform/formtrack/internal/server/sessions"
	"github.com/poseform/formtrack/internal/server/storage"
	"github.com/poseform/formtrack/internal/server/users"
	"github.com/poseform/formtrack/internal/server/videos"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	repos      db.RepositoryManager
	httpServer *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	rm, err := db.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	objectStorage, err := storage.NewS3Storage(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("object storage init error: %w", err)
	}

	us := users.NewService(rm.Users(), c)
	ss := sessions.NewService(rm.Sessions(), logger)
	vs := videos.NewService(rm.Videos(), objectStorage, logger)

	srv := httpapi.NewServer(c, logger, us, ss, vs)

	return &App{config: c, logger: logger, repos: rm, httpServer: srv}, nil
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
