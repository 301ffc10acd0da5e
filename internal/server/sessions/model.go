package sessions

import "time"

// Session is one completed capture run. Records are immutable once created:
// the store exposes no update or delete.
type Session struct {
	ID        string
	UserID    string
	Exercise  string
	Accuracy  float64
	Feedback  string
	CreatedAt time.Time
}
