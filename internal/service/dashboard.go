package service

import (
	"context"

	"github.com/vidstream/backend/internal/model"
)

type DashboardStore interface {
	GetChannelStats(ctx context.Context, channelID string) (*model.ChannelStats, error)
	ListChannelVideos(ctx context.Context, ownerID string) ([]model.VideoWithOwner, error)
}

type DashboardService struct {
	store DashboardStore
}

func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) GetChannelStats(ctx context.Context, channelID string) (*model.ChannelStats, error) {
	return s.store.GetChannelStats(ctx, channelID)
}

func (s *DashboardService) ListChannelVideos(ctx context.Context, channelID string) ([]model.VideoWithOwner, error) {
	return s.store.ListChannelVideos(ctx, channelID)
}
