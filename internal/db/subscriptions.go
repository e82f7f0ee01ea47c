package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

func scanSubscription(row pgx.Row) (*model.Subscription, error) {
	var s model.Subscription
	err := row.Scan(&s.ID, &s.SubscriberID, &s.ChannelID, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (db *Postgres) GetSubscription(ctx context.Context, subscriberID, channelID string) (*model.Subscription, error) {
	query := `
		SELECT id, subscriber_id, channel_id, created_at
		FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2
	`
	return scanSubscription(db.Pool.QueryRow(ctx, query, subscriberID, channelID))
}

func (db *Postgres) CreateSubscription(ctx context.Context, subscriberID, channelID string) (*model.Subscription, error) {
	query := `
		INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, subscriber_id, channel_id, created_at
	`
	return scanSubscription(db.Pool.QueryRow(ctx, query, uuid.NewString(), subscriberID, channelID))
}

func (db *Postgres) DeleteSubscription(ctx context.Context, id string) (*model.Subscription, error) {
	query := `
		DELETE FROM subscriptions WHERE id = $1
		RETURNING id, subscriber_id, channel_id, created_at
	`
	return scanSubscription(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) ListChannelSubscribers(ctx context.Context, channelID string) ([]model.Subscriber, error) {
	query := `
		SELECT s.id, ` + ownerJoinColumns + `
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Subscriber{}
	for rows.Next() {
		var sub model.Subscriber
		if err := rows.Scan(
			&sub.ID,
			&sub.Subscriber.ID,
			&sub.Subscriber.UserName,
			&sub.Subscriber.FullName,
			&sub.Subscriber.Avatar,
			&sub.Subscriber.CoverImage,
		); err != nil {
			return nil, err
		}
		list = append(list, sub)
	}
	return list, rows.Err()
}

func (db *Postgres) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]model.SubscribedChannel, error) {
	query := `
		SELECT s.id, ` + ownerJoinColumns + `
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, subscriberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.SubscribedChannel{}
	for rows.Next() {
		var sc model.SubscribedChannel
		if err := rows.Scan(
			&sc.ID,
			&sc.Channel.ID,
			&sc.Channel.UserName,
			&sc.Channel.FullName,
			&sc.Channel.Avatar,
			&sc.Channel.CoverImage,
		); err != nil {
			return nil, err
		}
		list = append(list, sc)
	}
	return list, rows.Err()
}

func (db *Postgres) CountChannelSubscribers(ctx context.Context, channelID string) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`, channelID).Scan(&count)
	return count, err
}
