package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

const videoColumns = `v.id, v.owner_id, v.title, v.description, v.video_file, v.thumbnail, v.duration, v.views, v.is_published, v.created_at, v.updated_at`

const ownerJoinColumns = `u.id, u.user_name, u.full_name, u.avatar, u.cover_image`

// Columns video listings may be sorted by. Anything else is rejected
// before it reaches SQL.
var videoSortColumns = map[string]string{
	"createdAt": "v.created_at",
	"views":     "v.views",
	"duration":  "v.duration",
	"title":     "v.title",
}

func IsVideoSortColumn(sortBy string) bool {
	_, ok := videoSortColumns[sortBy]
	return ok
}

func scanVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID,
		&v.OwnerID,
		&v.Title,
		&v.Description,
		&v.VideoFile,
		&v.Thumbnail,
		&v.Duration,
		&v.Views,
		&v.IsPublished,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (db *Postgres) CreateVideo(ctx context.Context, ownerID, title, description, videoFile, thumbnail string, duration float64) (*model.Video, error) {
	query := `
		INSERT INTO videos (id, owner_id, title, description, video_file, thumbnail, duration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + videoColumnsBare()
	return scanVideo(db.Pool.QueryRow(ctx, query, uuid.NewString(), ownerID, title, description, videoFile, thumbnail, duration))
}

func (db *Postgres) GetVideoByID(ctx context.Context, id string) (*model.Video, error) {
	query := `SELECT ` + videoColumnsBare() + ` FROM videos WHERE id = $1`
	return scanVideo(db.Pool.QueryRow(ctx, query, id))
}

// GetVideoWithOwner loads a video joined with its owner's short profile.
func (db *Postgres) GetVideoWithOwner(ctx context.Context, id string) (*model.VideoWithOwner, error) {
	query := `
		SELECT ` + videoColumns + `, ` + ownerJoinColumns + `
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.id = $1
	`
	var vo model.VideoWithOwner
	err := db.Pool.QueryRow(ctx, query, id).Scan(
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
	)
	if err != nil {
		return nil, err
	}
	return &vo, nil
}

// ListVideos runs the filtered, sorted, paginated listing and returns the
// page plus the total number of matching rows.
func (db *Postgres) ListVideos(ctx context.Context, params model.VideoListParams) ([]model.VideoWithOwner, int64, error) {
	sortCol, ok := videoSortColumns[params.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("unsupported sort column: %s", params.SortBy)
	}
	direction := "ASC"
	if params.SortDesc {
		direction = "DESC"
	}

	where := "TRUE"
	args := []interface{}{}
	if params.Query != "" {
		args = append(args, "%"+params.Query+"%")
		where += fmt.Sprintf(" AND (v.title ILIKE $%d OR v.description ILIKE $%d)", len(args), len(args))
	}
	if params.OwnerID != "" {
		args = append(args, params.OwnerID)
		where += fmt.Sprintf(" AND v.owner_id = $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM videos v WHERE ` + where
	if err := db.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.Limit, (params.Page-1)*params.Limit)
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, videoColumns, ownerJoinColumns, where, sortCol, direction, len(args)-1, len(args))

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
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
			return nil, 0, err
		}
		list = append(list, vo)
	}
	return list, total, rows.Err()
}

func (db *Postgres) UpdateVideo(ctx context.Context, id, title, description, thumbnail string) (*model.Video, error) {
	query := `
		UPDATE videos SET title = $2, description = $3, thumbnail = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + videoColumnsBare()
	return scanVideo(db.Pool.QueryRow(ctx, query, id, title, description, thumbnail))
}

func (db *Postgres) DeleteVideo(ctx context.Context, id string) (*model.Video, error) {
	query := `DELETE FROM videos WHERE id = $1 RETURNING ` + videoColumnsBare()
	return scanVideo(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) SetVideoPublishStatus(ctx context.Context, id string, published bool) (*model.Video, error) {
	query := `
		UPDATE videos SET is_published = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + videoColumnsBare()
	return scanVideo(db.Pool.QueryRow(ctx, query, id, published))
}

// ListChannelVideos returns all of a channel's videos with the owner joined.
func (db *Postgres) ListChannelVideos(ctx context.Context, ownerID string) ([]model.VideoWithOwner, error) {
	query := `
		SELECT ` + videoColumns + `, ` + ownerJoinColumns + `
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.owner_id = $1
		ORDER BY v.created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, ownerID)
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

// videoColumnsBare is videoColumns without the table alias, for
// INSERT ... RETURNING and single-table selects.
func videoColumnsBare() string {
	return `id, owner_id, title, description, video_file, thumbnail, duration, views, is_published, created_at, updated_at`
}
