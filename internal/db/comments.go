package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

const commentColumns = `c.id, c.video_id, c.owner_id, c.content, c.created_at, c.updated_at`

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(
		&c.ID,
		&c.VideoID,
		&c.OwnerID,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (db *Postgres) CreateComment(ctx context.Context, videoID, ownerID, content string) (*model.Comment, error) {
	query := `
		INSERT INTO comments (id, video_id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, video_id, owner_id, content, created_at, updated_at
	`
	return scanComment(db.Pool.QueryRow(ctx, query, uuid.NewString(), videoID, ownerID, content))
}

// ListVideoComments pages through a video's comments, newest first, with
// each comment's owner joined.
func (db *Postgres) ListVideoComments(ctx context.Context, videoID string, page, limit int) ([]model.CommentWithOwner, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM comments WHERE video_id = $1`
	if err := db.Pool.QueryRow(ctx, countQuery, videoID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + commentColumns + `, ` + ownerJoinColumns + `
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := db.Pool.Query(ctx, query, videoID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []model.CommentWithOwner{}
	for rows.Next() {
		var co model.CommentWithOwner
		if err := rows.Scan(
			&co.ID,
			&co.VideoID,
			&co.OwnerID,
			&co.Content,
			&co.CreatedAt,
			&co.UpdatedAt,
			&co.Owner.ID,
			&co.Owner.UserName,
			&co.Owner.FullName,
			&co.Owner.Avatar,
			&co.Owner.CoverImage,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, co)
	}
	return list, total, rows.Err()
}

// UpdateComment is owner-scoped: it matches both id and owner so a user
// can only touch their own comments.
func (db *Postgres) UpdateComment(ctx context.Context, id, ownerID, content string) (*model.Comment, error) {
	query := `
		UPDATE comments SET content = $3, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, video_id, owner_id, content, created_at, updated_at
	`
	return scanComment(db.Pool.QueryRow(ctx, query, id, ownerID, content))
}

func (db *Postgres) DeleteComment(ctx context.Context, id, ownerID string) (*model.Comment, error) {
	query := `
		DELETE FROM comments
		WHERE id = $1 AND owner_id = $2
		RETURNING id, video_id, owner_id, content, created_at, updated_at
	`
	return scanComment(db.Pool.QueryRow(ctx, query, id, ownerID))
}
