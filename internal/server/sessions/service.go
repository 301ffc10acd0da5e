package sessions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/poseform/formtrack/internal/common"
	"github.com/poseform/formtrack/internal/logging"
)

// Service validates session writes, enforces ownership on reads, and wraps
// persistence failures in a bounded retry.
type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{repo: repo, logger: logger.With("module", "sessions")}
}

// Create stores one session owned by ownerID. The owner is always the
// verified identity of the caller; any identity carried in the request body
// never reaches this method.
func (s *Service) Create(ctx context.Context, ownerID, exercise string, accuracy float64, feedback string) (*Session, error) {

	if strings.TrimSpace(exercise) == "" {
		return nil, fmt.Errorf("exercise is required: %w", common.ErrValidation)
	}
	if accuracy < 0 || accuracy > 100 {
		return nil, fmt.Errorf("accuracy %v out of range [0,100]: %w", accuracy, common.ErrValidation)
	}

	session := &Session{
		UserID:   ownerID,
		Exercise: exercise,
		Accuracy: accuracy,
		Feedback: feedback,
	}

	created, err := s.createWithRetry(ctx, session)
	if err != nil {
		// full detail stays at the store boundary; callers get a generic failure
		s.logger.Error(ctx, "session insert failed", "user_id", ownerID, "error", err.Error())
		return nil, common.ErrPersistence
	}

	return created, nil
}

// createWithRetry performs the insert with one backed-off retry: inserts
// are atomic and append-only, so a second attempt can never double-apply a
// partial write.
func (s *Service) createWithRetry(ctx context.Context, session *Session) (*Session, error) {
	var created *Session

	backoff := retry.WithMaxRetries(1, retry.NewExponential(100*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, session)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListByOwner returns viewerID's sessions, newest first. Requesting another
// user's sessions fails with common.ErrForbidden without revealing whether
// that user exists.
func (s *Service) ListByOwner(ctx context.Context, viewerID, ownerID string) ([]*Session, error) {

	if viewerID != ownerID {
		return nil, common.ErrForbidden
	}

	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error(ctx, "session list failed", "user_id", ownerID, "error", err.Error())
		return nil, common.ErrPersistence
	}

	return list, nil
}
