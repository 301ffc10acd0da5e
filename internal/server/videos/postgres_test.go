package videos

import (
	"context"
	"database/sql"
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

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+videos\s*\(user_id,\s*title,\s*storage_key\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*uploaded_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "uploaded_at"}).AddRow("v-1", now)
	mock.ExpectQuery(q).
		WithArgs("u-1", "Leg day", "users/2026/8/30/key").
		WillReturnRows(rows)

	v := &Video{UserID: "u-1", Title: "Leg day", StorageKey: "users/2026/8/30/key"}
	got, err := repo.Create(context.Background(), v)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "v-1" || !got.UploadedAt.Equal(now) {
		t.Fatalf("unexpected video: %+v", got)
	}
}

func TestListByOwner_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*FROM\s+videos\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+uploaded_at\s+DESC\s*$`

	newer := time.Now()
	older := newer.Add(-time.Minute)
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "storage_key", "uploaded_at"}).
		AddRow("v-2", "u-1", "b", "k2", newer).
		AddRow("v-1", "u-1", "a", "k1", older)
	mock.ExpectQuery(q).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "v-2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
