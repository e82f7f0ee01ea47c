package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

func scanPlaylist(row pgx.Row) (*model.Playlist, error) {
	var p model.Playlist
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (db *Postgres) CreatePlaylist(ctx context.Context, ownerID, name, description string) (*model.Playlist, error) {
	query := `
		INSERT INTO playlists (id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, owner_id, name, description, created_at, updated_at
	`
	return scanPlaylist(db.Pool.QueryRow(ctx, query, uuid.NewString(), ownerID, name, description))
}

func (db *Postgres) GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error) {
	query := `SELECT id, owner_id, name, description, created_at, updated_at FROM playlists WHERE id = $1`
	return scanPlaylist(db.Pool.QueryRow(ctx, query, id))
}

// GetPlaylistDetail loads a playlist with its owner and video refs in
// insertion order.
func (db *Postgres) GetPlaylistDetail(ctx context.Context, id string) (*model.PlaylistDetail, error) {
	query := `
		SELECT p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at, ` + ownerJoinColumns + `
		FROM playlists p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1
	`
	var d model.PlaylistDetail
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.OwnerID,
		&d.Name,
		&d.Description,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Owner.ID,
		&d.Owner.UserName,
		&d.Owner.FullName,
		&d.Owner.Avatar,
		&d.Owner.CoverImage,
	)
	if err != nil {
		return nil, err
	}

	videos, err := db.listPlaylistVideos(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Videos = videos
	return &d, nil
}

func (db *Postgres) listPlaylistVideos(ctx context.Context, playlistID string) ([]model.VideoRef, error) {
	query := `
		SELECT v.id, v.title, v.video_file, v.thumbnail
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.id
	`
	rows, err := db.Pool.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []model.VideoRef{}
	for rows.Next() {
		var v model.VideoRef
		if err := rows.Scan(&v.ID, &v.Title, &v.VideoFile, &v.Thumbnail); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// ListUserPlaylists returns a user's playlists, each with owner and
// videos joined.
func (db *Postgres) ListUserPlaylists(ctx context.Context, ownerID string) ([]model.PlaylistDetail, error) {
	query := `
		SELECT p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at, ` + ownerJoinColumns + `
		FROM playlists p
		JOIN users u ON u.id = p.owner_id
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.PlaylistDetail{}
	for rows.Next() {
		var d model.PlaylistDetail
		if err := rows.Scan(
			&d.ID,
			&d.OwnerID,
			&d.Name,
			&d.Description,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.Owner.ID,
			&d.Owner.UserName,
			&d.Owner.FullName,
			&d.Owner.Avatar,
			&d.Owner.CoverImage,
		); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		videos, err := db.listPlaylistVideos(ctx, list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Videos = videos
	}
	return list, nil
}

func (db *Postgres) UpdatePlaylist(ctx context.Context, id, ownerID, name, description string) (*model.Playlist, error) {
	query := `
		UPDATE playlists SET name = $3, description = $4, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, description, created_at, updated_at
	`
	return scanPlaylist(db.Pool.QueryRow(ctx, query, id, ownerID, name, description))
}

func (db *Postgres) DeletePlaylist(ctx context.Context, id, ownerID string) (*model.Playlist, error) {
	query := `
		DELETE FROM playlists
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, description, created_at, updated_at
	`
	return scanPlaylist(db.Pool.QueryRow(ctx, query, id, ownerID))
}

func (db *Postgres) AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) error {
	query := `
		INSERT INTO playlist_videos (playlist_id, video_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`
	_, err := db.Pool.Exec(ctx, query, playlistID, videoID)
	return err
}

// RemoveVideoFromPlaylist reports whether the video was actually present.
func (db *Postgres) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`, playlistID, videoID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
