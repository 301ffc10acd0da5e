package videos

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, video *Video) (*Video, error) {

	query :=
		`INSERT INTO videos (user_id, title, storage_key)
		 VALUES ($1, $2, $3)
		 RETURNING id, uploaded_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		video.UserID, video.Title, video.StorageKey).Scan(&video.ID, &video.UploadedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return video, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]*Video, error) {

	query :=
		`SELECT id, user_id, title, storage_key, uploaded_at FROM videos
		 WHERE user_id = $1
		 ORDER BY uploaded_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []*Video{}
	for rows.Next() {
		v := &Video{}
		if err := rows.Scan(&v.ID, &v.UserID, &v.Title, &v.StorageKey, &v.UploadedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
