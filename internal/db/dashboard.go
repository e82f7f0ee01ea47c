package db

import (
	"context"

	"github.com/vidstream/backend/internal/model"
)

// GetChannelStats aggregates one channel's dashboard numbers.
func (db *Postgres) GetChannelStats(ctx context.Context, channelID string) (*model.ChannelStats, error) {
	var stats model.ChannelStats

	query := `
		SELECT COUNT(*), COALESCE(SUM(views), 0)
		FROM videos
		WHERE owner_id = $1
	`
	if err := db.Pool.QueryRow(ctx, query, channelID).Scan(&stats.VideoCount, &stats.TotalViews); err != nil {
		return nil, err
	}

	subscribers, err := db.CountChannelSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	stats.SubscriberCount = subscribers

	likes, err := db.CountChannelVideoLikes(ctx, channelID)
	if err != nil {
		return nil, err
	}
	stats.TotalLikes = likes

	return &stats, nil
}
