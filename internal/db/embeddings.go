package db

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"github.com/vidstream/backend/internal/model"
)

// UpsertVideoEmbedding stores or replaces a video's embedding vector.
func (db *Postgres) UpsertVideoEmbedding(ctx context.Context, videoID string, vector []float32, embeddingModel string) error {
	query := `
		INSERT INTO video_embeddings (video_id, embedding, model, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (video_id) DO UPDATE SET embedding = $2, model = $3
	`
	_, err := db.Pool.Exec(ctx, query, videoID, pgvector.NewVector(vector), embeddingModel)
	return err
}

// ListRelatedVideos returns the published videos nearest to the given
// video's embedding by cosine distance. Returns an empty slice when the
// video has no embedding yet.
func (db *Postgres) ListRelatedVideos(ctx context.Context, videoID string, limit int) ([]model.VideoWithOwner, error) {
	query := `
		SELECT ` + videoColumns + `, ` + ownerJoinColumns + `
		FROM video_embeddings e
		JOIN videos v ON v.id = e.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE e.video_id <> $1
			AND v.is_published
			AND EXISTS (SELECT 1 FROM video_embeddings src WHERE src.video_id = $1)
		ORDER BY e.embedding <=> (SELECT embedding FROM video_embeddings src WHERE src.video_id = $1)
		LIMIT $2
	`
	rows, err := db.Pool.Query(ctx, query, videoID, limit)
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
