package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// EnsureSchema creates the core tables when they do not exist yet.
// Embedding storage is set up separately because it needs the pgvector
// extension (see EnsureEmbeddingSchema).
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			user_name TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			avatar TEXT NOT NULL,
			cover_image TEXT NOT NULL DEFAULT '',
			refresh_token TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS videos (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			video_file TEXT NOT NULL,
			thumbnail TEXT NOT NULL,
			duration DOUBLE PRECISION NOT NULL DEFAULT 0,
			views BIGINT NOT NULL DEFAULT 0,
			is_published BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS videos_owner_id_idx ON videos(owner_id)`,
		`
		CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			video_id TEXT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS comments_video_id_idx ON comments(video_id)`,
		`
		CREATE TABLE IF NOT EXISTS tweets (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS tweets_owner_id_idx ON tweets(owner_id)`,
		`
		CREATE TABLE IF NOT EXISTS likes (
			id TEXT PRIMARY KEY,
			liked_by TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			video_id TEXT REFERENCES videos(id) ON DELETE CASCADE,
			comment_id TEXT REFERENCES comments(id) ON DELETE CASCADE,
			tweet_id TEXT REFERENCES tweets(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE UNIQUE INDEX IF NOT EXISTS likes_video_idx ON likes(liked_by, video_id) WHERE video_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS likes_comment_idx ON likes(liked_by, comment_id) WHERE comment_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS likes_tweet_idx ON likes(liked_by, tweet_id) WHERE tweet_id IS NOT NULL`,
		`
		CREATE TABLE IF NOT EXISTS subscriptions (
			id TEXT PRIMARY KEY,
			subscriber_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			channel_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (subscriber_id, channel_id)
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS playlists (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS playlist_videos (
			id BIGSERIAL PRIMARY KEY,
			playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
			video_id TEXT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
			added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (playlist_id, video_id)
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS watch_history (
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			video_id TEXT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
			watched_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, video_id)
		)
		`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// EnsureEmbeddingSchema creates the pgvector-backed similarity table.
// Only called when the embedding feature is configured.
func (db *Postgres) EnsureEmbeddingSchema(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`
		CREATE TABLE IF NOT EXISTS video_embeddings (
			video_id TEXT PRIMARY KEY REFERENCES videos(id) ON DELETE CASCADE,
			embedding vector(768) NOT NULL,
			model TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func IsNoRows(err error) bool {
	return err == pgx.ErrNoRows
}

// IsUniqueViolation reports whether err is a duplicate-key violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
