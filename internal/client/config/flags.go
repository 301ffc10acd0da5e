package config

import (
	"flag"
	"os"
	"time"

	"github.com/poseform/formtrack/internal/flagx"
)

// parseFlags populates selected CLI Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    API base URL
//	-e string    pose model endpoint URL
//	-k float     confidence threshold in [0,1]
//	-t int       request timeout, seconds
//	-o string    CSV export path
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-e", "-k", "-t", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "a", config.ServerURL, "API base URL")
	fs.StringVar(&config.ModelEndpoint, "e", config.ModelEndpoint, "pose model endpoint URL")
	fs.Float64Var(&config.ConfidenceThreshold, "k", config.ConfidenceThreshold, "confidence threshold")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&config.CSVOutput, "o", config.CSVOutput, "CSV export path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
