package service

import (
	"context"

	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/model"
)

type SubscriptionStore interface {
	GetSubscription(ctx context.Context, subscriberID, channelID string) (*model.Subscription, error)
	CreateSubscription(ctx context.Context, subscriberID, channelID string) (*model.Subscription, error)
	DeleteSubscription(ctx context.Context, id string) (*model.Subscription, error)
	ListChannelSubscribers(ctx context.Context, channelID string) ([]model.Subscriber, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]model.SubscribedChannel, error)
}

type SubscriptionService struct {
	subs SubscriptionStore
}

func NewSubscriptionService(subs SubscriptionStore) *SubscriptionService {
	return &SubscriptionService{subs: subs}
}

// Toggle subscribes the caller to the channel, or unsubscribes when a
// subscription already exists. Subscribing to yourself is rejected.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (*ToggleSubscriptionResult, error) {
	if subscriberID == channelID {
		return nil, apiError(ErrUnauthorized, "Invalid access.")
	}

	existing, err := s.subs.GetSubscription(ctx, subscriberID, channelID)
	if err != nil {
		if !db.IsNoRows(err) {
			return nil, err
		}
		sub, err := s.subs.CreateSubscription(ctx, subscriberID, channelID)
		if err != nil {
			return nil, apiError(ErrInvalidInput, "Invalid channelId.")
		}
		return &ToggleSubscriptionResult{Subscription: sub, Subscribed: true}, nil
	}

	removed, err := s.subs.DeleteSubscription(ctx, existing.ID)
	if err != nil {
		return nil, apiError(ErrInternal, "Something went wrong while unsubscribing.")
	}
	return &ToggleSubscriptionResult{Subscription: removed, Subscribed: false}, nil
}

type ToggleSubscriptionResult struct {
	Subscription *model.Subscription
	Subscribed   bool
}

func (s *SubscriptionService) ListChannelSubscribers(ctx context.Context, channelID string) ([]model.Subscriber, error) {
	return s.subs.ListChannelSubscribers(ctx, channelID)
}

func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]model.SubscribedChannel, error) {
	return s.subs.ListSubscribedChannels(ctx, subscriberID)
}
