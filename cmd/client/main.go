package main

import (
	"context"
	"os"

	"github.com/poseform/formtrack/internal/client/cli"
	"github.com/poseform/formtrack/internal/client/config"
	"github.com/poseform/formtrack/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewJSON(os.Stderr)
	app := cli.NewApp(cfg, logger)

	app.Run(ctx)
}
