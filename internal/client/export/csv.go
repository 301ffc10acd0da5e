// Package export renders session history to CSV.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/poseform/formtrack/internal/client/api"
)

// csvTimeLayout matches the locale-style timestamps the web export produced.
const csvTimeLayout = "1/2/2006, 3:04:05 PM"

// WriteSessionsCSV writes sessions as CSV with an Exercise,Feedback,Accuracy,Date
// header. Fields are joined with commas and never quoted, so a comma inside
// feedback text shifts the columns of that row. Known limitation, kept for
// compatibility with existing exports.
func WriteSessionsCSV(w io.Writer, sessions []api.Session) error {
	if _, err := io.WriteString(w, "Exercise,Feedback,Accuracy,Date\n"); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, s := range sessions {
		row := strings.Join([]string{
			s.Exercise,
			s.Feedback,
			strconv.FormatFloat(s.Accuracy, 'f', -1, 64),
			s.Timestamp.Local().Format(csvTimeLayout),
		}, ",")
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	return nil
}
