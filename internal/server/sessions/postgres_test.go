package sessions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	repo, err := NewPostgresRepository(db)
	if err != nil {
		t.Fatalf("NewPostgresRepository error: %v", err)
	}
	return repo, mock, db
}

const insertQ = `(?s)^\s*INSERT\s+INTO\s+sessions\s*\(user_id,\s*exercise,\s*accuracy,\s*feedback\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at\s*$`
const listQ = `(?s)^\s*SELECT\s+.*FROM\s+sessions\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("s-1", now)
	mock.ExpectQuery(insertQ).
		WithArgs("u-1", "Squats", 82.5, "Completed Squats with 82.5% accuracy").
		WillReturnRows(rows)

	s := &Session{UserID: "u-1", Exercise: "Squats", Accuracy: 82.5, Feedback: "Completed Squats with 82.5% accuracy"}
	got, err := repo.Create(context.Background(), s)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "s-1" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WithArgs("u-1", "Squats", 82.5, "fb").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &Session{UserID: "u-1", Exercise: "Squats", Accuracy: 82.5, Feedback: "fb"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestListByOwner_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	newer := time.Now()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "user_id", "exercise", "accuracy", "feedback", "created_at"}).
		AddRow("s-2", "u-1", "Push-ups", 90.0, "fb2", newer).
		AddRow("s-1", "u-1", "Squats", 82.5, "fb1", older)
	mock.ExpectQuery(listQ).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	if got[0].ID != "s-2" || got[1].ID != "s-1" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Fatalf("expected descending created_at")
	}
}

func TestListByOwner_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "exercise", "accuracy", "feedback", "created_at"})
	mock.ExpectQuery(listQ).
		WithArgs("u-9").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u-9")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
