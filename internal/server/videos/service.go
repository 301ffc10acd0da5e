package videos

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/poseform/formtrack/internal/common"
	"github.com/poseform/formtrack/internal/logging"
)

// Service stores uploaded videos: bytes in object storage, metadata in the
// append-only repository.
type Service struct {
	repo    Repository
	storage ObjectStorage
	logger  logging.Logger
}

func NewService(repo Repository, storage ObjectStorage, logger logging.Logger) *Service {
	return &Service{repo: repo, storage: storage, logger: logger.With("module", "videos")}
}

// randomStorageKey builds a date-partitioned object key for one upload.
func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

// Upload validates the content type, writes the bytes to object storage and
// records the video under ownerID. Only video/* uploads are accepted.
func (s *Service) Upload(ctx context.Context, ownerID, title, contentType string, body io.Reader) (*Video, error) {

	if !strings.HasPrefix(contentType, "video/") {
		return nil, fmt.Errorf("unsupported upload type %q: %w", contentType, common.ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required: %w", common.ErrValidation)
	}

	key := randomStorageKey()
	if err := s.storage.Put(ctx, key, contentType, body); err != nil {
		s.logger.Error(ctx, "object storage put failed", "key", key, "error", err.Error())
		return nil, common.ErrPersistence
	}

	video := &Video{
		UserID:     ownerID,
		Title:      title,
		StorageKey: key,
	}

	created, err := s.createWithRetry(ctx, video)
	if err != nil {
		s.logger.Error(ctx, "video insert failed", "user_id", ownerID, "key", key, "error", err.Error())
		return nil, common.ErrPersistence
	}

	return created, nil
}

func (s *Service) createWithRetry(ctx context.Context, video *Video) (*Video, error) {
	var created *Video

	backoff := retry.WithMaxRetries(1, retry.NewExponential(100*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, video)
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

// ListByOwner returns ownerID's uploads, newest first. The route exposes no
// foreign owner parameter, so the verified identity is the only possible
// owner here.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]*Video, error) {
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error(ctx, "video list failed", "user_id", ownerID, "error", err.Error())
		return nil, common.ErrPersistence
	}
	return list, nil
}
