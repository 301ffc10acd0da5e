// Package cli is the interactive FormTrack client: a read–eval–print loop
// over the server API and the local capture pipeline.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/poseform/formtrack/internal/client/api"
	"github.com/poseform/formtrack/internal/client/config"
	"github.com/poseform/formtrack/internal/logging"
)

// apiClient is the server surface the commands need. The api.Client
// satisfies it; tests can provide a stub.
type apiClient interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) error
	SaveSession(ctx context.Context, exercise string, accuracy float64, feedback string) error
	ListSessions(ctx context.Context) ([]api.Session, error)
	UploadVideo(ctx context.Context, name, title, contentType string, body io.Reader) error
	Logout()
	IsLoggedIn() bool
	UserName() string
}

type App struct {
	config *config.Config
	api    apiClient
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerURL, c.RequestTimeout),
		logger: logger.With("module", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

func (a *App) status() string {
	if a.api.IsLoggedIn() {
		return "(" + a.api.UserName() + ")"
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to FormTrack CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
