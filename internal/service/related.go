package service

import (
	"context"
	"log"

	"github.com/vidstream/backend/internal/model"
)

type EmbeddingStore interface {
	UpsertVideoEmbedding(ctx context.Context, videoID string, vector []float32, embeddingModel string) error
	ListRelatedVideos(ctx context.Context, videoID string, limit int) ([]model.VideoWithOwner, error)
}

type TextEmbedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, string, error)
}

// RelatedService maintains per-video embeddings and answers the
// related-videos lookup. Constructed only when AI_API_KEY is set.
type RelatedService struct {
	store  EmbeddingStore
	client TextEmbedder
}

func NewRelatedService(store EmbeddingStore, client TextEmbedder) *RelatedService {
	return &RelatedService{store: store, client: client}
}

// EmbedVideo computes and stores a video's embedding. Best effort: a
// publish never fails because the embedding backend is down.
func (s *RelatedService) EmbedVideo(ctx context.Context, video *model.Video) {
	vector, embeddingModel, err := s.client.EmbedText(ctx, video.Title+"\n"+video.Description)
	if err != nil {
		log.Printf("Failed to embed video %s: %v", video.ID, err)
		return
	}
	if err := s.store.UpsertVideoEmbedding(ctx, video.ID, vector, embeddingModel); err != nil {
		log.Printf("Failed to store embedding for video %s: %v", video.ID, err)
	}
}

func (s *RelatedService) ListRelated(ctx context.Context, videoID string, limit int) ([]model.VideoWithOwner, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.store.ListRelatedVideos(ctx, videoID, limit)
}
