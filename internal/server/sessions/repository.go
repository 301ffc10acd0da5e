package sessions

import (
	"context"
)

// Repository is the append-only session store. ListByOwner returns newest
// sessions first.
type Repository interface {
	Create(ctx context.Context, session *Session) (*Session, error)
	ListByOwner(ctx context.Context, userID string) ([]*Session, error)
}
