package sessions

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poseform/formtrack/internal/common"
	"github.com/poseform/formtrack/internal/logging"
)

type fakeSessionsRepo struct {
	createCalls int
	createErrs  []error
	createOut   *Session

	listOut []*Session
	listErr error
}

func (f *fakeSessionsRepo) Create(ctx context.Context, s *Session) (*Session, error) {
	f.createCalls++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	s.ID = "s-1"
	return s, nil
}

func (f *fakeSessionsRepo) ListByOwner(ctx context.Context, userID string) ([]*Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate_OwnerFromVerifiedIdentity(t *testing.T) {
	repo := &fakeSessionsRepo{}
	s := NewService(repo, discardLogger())

	got, err := s.Create(context.Background(), "u-1", "Squats", 82.5, "Completed Squats with 82.5% accuracy")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "s-1", got.ID)
}

func TestCreate_Validation(t *testing.T) {
	s := NewService(&fakeSessionsRepo{}, discardLogger())

	tests := []struct {
		name     string
		exercise string
		accuracy float64
	}{
		{name: "empty exercise", exercise: "  ", accuracy: 50},
		{name: "accuracy below range", exercise: "Squats", accuracy: -1},
		{name: "accuracy above range", exercise: "Squats", accuracy: 100.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), "u-1", tc.exercise, tc.accuracy, "")
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestCreate_RetriesOnceThenSucceeds(t *testing.T) {
	repo := &fakeSessionsRepo{createErrs: []error{errors.New("transient"), nil}}
	s := NewService(repo, discardLogger())

	_, err := s.Create(context.Background(), "u-1", "Squats", 82.5, "fb")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.createCalls)
}

func TestCreate_GivesUpAfterSecondFailure(t *testing.T) {
	repo := &fakeSessionsRepo{createErrs: []error{errors.New("down"), errors.New("down")}}
	s := NewService(repo, discardLogger())

	_, err := s.Create(context.Background(), "u-1", "Squats", 82.5, "fb")
	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.Equal(t, 2, repo.createCalls)
}

func TestListByOwner_OwnerMismatchForbidden(t *testing.T) {
	repo := &fakeSessionsRepo{listOut: []*Session{{ID: "s-1", UserID: "u-2"}}}
	s := NewService(repo, discardLogger())

	_, err := s.ListByOwner(context.Background(), "u-1", "u-2")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestListByOwner_Success(t *testing.T) {
	repo := &fakeSessionsRepo{listOut: []*Session{{ID: "s-1", UserID: "u-1"}}}
	s := NewService(repo, discardLogger())

	got, err := s.ListByOwner(context.Background(), "u-1", "u-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListByOwner_StoreErrorIsGeneric(t *testing.T) {
	repo := &fakeSessionsRepo{listErr: errors.New("connection refused: 10.0.0.5")}
	s := NewService(repo, discardLogger())

	_, err := s.ListByOwner(context.Background(), "u-1", "u-1")
	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.NotContains(t, err.Error(), "10.0.0.5")
}
