package db

import (
	"context"

	"github.com/vidstream/backend/internal/model"
)

// TouchWatchHistory moves a video to the front of the user's history,
// inserting it if it was never watched before.
func (db *Postgres) TouchWatchHistory(ctx context.Context, userID, videoID string) error {
	query := `
		INSERT INTO watch_history (user_id, video_id, watched_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = NOW()
	`
	_, err := db.Pool.Exec(ctx, query, userID, videoID)
	return err
}

// ListWatchHistory returns the user's watched videos, most recent first,
// each joined with its owner's short profile.
func (db *Postgres) ListWatchHistory(ctx context.Context, userID string) ([]model.VideoWithOwner, error) {
	query := `
		SELECT ` + videoColumns + `, ` + ownerJoinColumns + `
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE wh.user_id = $1
		ORDER BY wh.watched_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.VideoWithOwner{}
	for rows.Next() {
		var vo model.VideoWithOwner
		if err := rows.Scan(
			&vo.ID,
			&vo.OwnerID,
			&vo.Title,
			&vo.Description,
			&vo.VideoFile,
			&vo.Thumbnail,
			&vo.Duration,
			&vo.Views,
			&vo.IsPublished,
			&vo.CreatedAt,
			&vo.UpdatedAt,
			&vo.Owner.ID,
			&vo.Owner.UserName,
			&vo.Owner.FullName,
			&vo.Owner.Avatar,
			&vo.Owner.CoverImage,
		); err != nil {
			return nil, err
		}
		list = append(list, vo)
	}
	return list, rows.Err()
}
