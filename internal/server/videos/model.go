package videos

import "time"

// Video is one uploaded recording: immutable after upload, never deleted.
type Video struct {
	ID         string
	UserID     string
	Title      string
	StorageKey string
	UploadedAt time.Time
}
