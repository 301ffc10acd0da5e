package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/poseform/formtrack/internal/client/capture"
)

// Construction seams for the capture pipeline. Tests replace these to run
// the command against fakes.
var newFrameSource = func(dir string) (capture.FrameSource, error) {
	return capture.NewDirSource(dir)
}

var newEstimator = func(endpoint string, timeout time.Duration) capture.Estimator {
	return capture.NewHTTPEstimator(endpoint, timeout)
}

// Analyze runs the capture loop over a directory of extracted frames,
// scores the exercise and submits the session to the server.
func (a *App) Analyze(ctx context.Context, args []string) error {
	if !a.api.IsLoggedIn() {
		fmt.Fprintln(a.out, "Log in first")
		return nil
	}
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: analyze <exercise> <framesDir>")
		return nil
	}
	exercise, framesDir := args[0], args[1]

	source, err := newFrameSource(framesDir)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot open frames:", err.Error())
		return err
	}

	estimator := newEstimator(a.config.ModelEndpoint, a.config.RequestTimeout)
	loop := capture.NewLoop(source, estimator, a.api, a.logger, a.config.ConfidenceThreshold)

	result, err := loop.Run(ctx, exercise)
	if err != nil {
		fmt.Fprintln(a.out, "Analysis failed:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "%s: %.1f%% accuracy over %d frames\n", exercise, result.Accuracy, result.Frames)
	fmt.Fprintln(a.out, result.Feedback)
	return nil
}
