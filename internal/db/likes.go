package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

// likeTarget names the nullable column a like points at.
type likeTarget string

const (
	likeTargetVideo   likeTarget = "video_id"
	likeTargetComment likeTarget = "comment_id"
	likeTargetTweet   likeTarget = "tweet_id"
)

func scanLike(row pgx.Row) (*model.Like, error) {
	var l model.Like
	err := row.Scan(
		&l.ID,
		&l.LikedBy,
		&l.VideoID,
		&l.CommentID,
		&l.TweetID,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (db *Postgres) getLike(ctx context.Context, userID string, target likeTarget, targetID string) (*model.Like, error) {
	query := `
		SELECT id, liked_by, video_id, comment_id, tweet_id, created_at
		FROM likes
		WHERE liked_by = $1 AND ` + string(target) + ` = $2
	`
	return scanLike(db.Pool.QueryRow(ctx, query, userID, targetID))
}

func (db *Postgres) createLike(ctx context.Context, userID string, target likeTarget, targetID string) (*model.Like, error) {
	query := `
		INSERT INTO likes (id, liked_by, ` + string(target) + `, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, liked_by, video_id, comment_id, tweet_id, created_at
	`
	return scanLike(db.Pool.QueryRow(ctx, query, uuid.NewString(), userID, targetID))
}

func (db *Postgres) GetVideoLike(ctx context.Context, userID, videoID string) (*model.Like, error) {
	return db.getLike(ctx, userID, likeTargetVideo, videoID)
}

func (db *Postgres) GetCommentLike(ctx context.Context, userID, commentID string) (*model.Like, error) {
	return db.getLike(ctx, userID, likeTargetComment, commentID)
}

func (db *Postgres) GetTweetLike(ctx context.Context, userID, tweetID string) (*model.Like, error) {
	return db.getLike(ctx, userID, likeTargetTweet, tweetID)
}

func (db *Postgres) CreateVideoLike(ctx context.Context, userID, videoID string) (*model.Like, error) {
	return db.createLike(ctx, userID, likeTargetVideo, videoID)
}

func (db *Postgres) CreateCommentLike(ctx context.Context, userID, commentID string) (*model.Like, error) {
	return db.createLike(ctx, userID, likeTargetComment, commentID)
}

func (db *Postgres) CreateTweetLike(ctx context.Context, userID, tweetID string) (*model.Like, error) {
	return db.createLike(ctx, userID, likeTargetTweet, tweetID)
}

func (db *Postgres) DeleteLike(ctx context.Context, id string) (*model.Like, error) {
	query := `
		DELETE FROM likes WHERE id = $1
		RETURNING id, liked_by, video_id, comment_id, tweet_id, created_at
	`
	return scanLike(db.Pool.QueryRow(ctx, query, id))
}

// ListLikedVideos returns the caller's video likes joined with the video
// refs and the caller's own short profile.
func (db *Postgres) ListLikedVideos(ctx context.Context, userID string) ([]model.LikedVideo, error) {
	query := `
		SELECT l.id,
			v.id, v.title, v.video_file, v.thumbnail,
			` + ownerJoinColumns + `
		FROM likes l
		JOIN videos v ON v.id = l.video_id
		JOIN users u ON u.id = l.liked_by
		WHERE l.liked_by = $1 AND l.video_id IS NOT NULL
		ORDER BY l.created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.LikedVideo{}
	for rows.Next() {
		var lv model.LikedVideo
		if err := rows.Scan(
			&lv.ID,
			&lv.Video.ID,
			&lv.Video.Title,
			&lv.Video.VideoFile,
			&lv.Video.Thumbnail,
			&lv.LikedBy.ID,
			&lv.LikedBy.UserName,
			&lv.LikedBy.FullName,
			&lv.LikedBy.Avatar,
			&lv.LikedBy.CoverImage,
		); err != nil {
			return nil, err
		}
		list = append(list, lv)
	}
	return list, rows.Err()
}

// CountChannelVideoLikes counts likes across all of a channel's videos.
func (db *Postgres) CountChannelVideoLikes(ctx context.Context, channelID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM likes l
		JOIN videos v ON v.id = l.video_id
		WHERE v.owner_id = $1
	`
	var count int64
	err := db.Pool.QueryRow(ctx, query, channelID).Scan(&count)
	return count, err
}
