package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

func scanTweet(row pgx.Row) (*model.Tweet, error) {
	var t model.Tweet
	err := row.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (db *Postgres) CreateTweet(ctx context.Context, ownerID, content string) (*model.Tweet, error) {
	query := `
		INSERT INTO tweets (id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, owner_id, content, created_at, updated_at
	`
	return scanTweet(db.Pool.QueryRow(ctx, query, uuid.NewString(), ownerID, content))
}

func (db *Postgres) GetTweetByID(ctx context.Context, id string) (*model.Tweet, error) {
	query := `SELECT id, owner_id, content, created_at, updated_at FROM tweets WHERE id = $1`
	return scanTweet(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) ListUserTweets(ctx context.Context, ownerID string) ([]model.Tweet, error) {
	query := `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Tweet{}
	for rows.Next() {
		var t model.Tweet
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (db *Postgres) UpdateTweet(ctx context.Context, id, ownerID, content string) (*model.Tweet, error) {
	query := `
		UPDATE tweets SET content = $3, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, content, created_at, updated_at
	`
	return scanTweet(db.Pool.QueryRow(ctx, query, id, ownerID, content))
}

func (db *Postgres) DeleteTweet(ctx context.Context, id string) (*model.Tweet, error) {
	query := `
		DELETE FROM tweets WHERE id = $1
		RETURNING id, owner_id, content, created_at, updated_at
	`
	return scanTweet(db.Pool.QueryRow(ctx, query, id))
}
