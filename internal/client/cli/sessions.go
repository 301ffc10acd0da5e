package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/poseform/formtrack/internal/client/export"
)

func (a *App) Sessions(ctx context.Context) error {
	if !a.api.IsLoggedIn() {
		fmt.Fprintln(a.out, "Log in first")
		return nil
	}

	sessions, err := a.api.ListSessions(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot load sessions:", err.Error())
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(a.out, "No sessions yet")
		return nil
	}

	var total float64
	for _, s := range sessions {
		fmt.Fprintf(a.out, "%s  %-12s %5.1f%%  %s\n",
			s.Timestamp.Local().Format("2006-01-02 15:04"), s.Exercise, s.Accuracy, s.Feedback)
		total += s.Accuracy
	}
	fmt.Fprintf(a.out, "%d sessions, average accuracy %.1f%%\n", len(sessions), total/float64(len(sessions)))
	return nil
}

// Export writes the session history to a CSV file. The optional argument
// overrides the configured output path.
func (a *App) Export(ctx context.Context, args []string) error {
	if !a.api.IsLoggedIn() {
		fmt.Fprintln(a.out, "Log in first")
		return nil
	}

	path := a.config.CSVOutput
	if len(args) > 0 {
		path = args[0]
	}

	sessions, err := a.api.ListSessions(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot load sessions:", err.Error())
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot create file:", err.Error())
		return err
	}
	defer f.Close()

	if err := export.WriteSessionsCSV(f, sessions); err != nil {
		fmt.Fprintln(a.out, "Export failed:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Exported %d sessions to %s\n", len(sessions), path)
	return nil
}
