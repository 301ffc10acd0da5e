package videos

import (
	"context"
	"io"
)

// Repository is the append-only video metadata store. ListByOwner returns
// newest uploads first.
type Repository interface {
	Create(ctx context.Context, video *Video) (*Video, error)
	ListByOwner(ctx context.Context, userID string) ([]*Video, error)
}

// ObjectStorage stores the raw video bytes under a generated key.
type ObjectStorage interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) error
}
