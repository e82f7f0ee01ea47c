package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

type fakeSubscriptionStore struct {
	subs map[string]*model.Subscription
	next int
}

func (f *fakeSubscriptionStore) GetSubscription(ctx context.Context, subscriberID, channelID string) (*model.Subscription, error) {
	for _, sub := range f.subs {
		if sub.SubscriberID == subscriberID && sub.ChannelID == channelID {
			return sub, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeSubscriptionStore) CreateSubscription(ctx context.Context, subscriberID, channelID string) (*model.Subscription, error) {
	f.next++
	sub := &model.Subscription{ID: string(rune('a' + f.next)), SubscriberID: subscriberID, ChannelID: channelID}
	f.subs[sub.ID] = sub
	return sub, nil
}

func (f *fakeSubscriptionStore) DeleteSubscription(ctx context.Context, id string) (*model.Subscription, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(f.subs, id)
	return sub, nil
}

func (f *fakeSubscriptionStore) ListChannelSubscribers(ctx context.Context, channelID string) ([]model.Subscriber, error) {
	return nil, nil
}

func (f *fakeSubscriptionStore) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]model.SubscribedChannel, error) {
	return nil, nil
}

func TestToggleSubscribesThenUnsubscribes(t *testing.T) {
	store := &fakeSubscriptionStore{subs: map[string]*model.Subscription{}}
	svc := NewSubscriptionService(store)

	result, err := svc.Toggle(context.Background(), "u1", "u2")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !result.Subscribed || len(store.subs) != 1 {
		t.Fatalf("expected subscription created")
	}

	result, err = svc.Toggle(context.Background(), "u1", "u2")
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if result.Subscribed || len(store.subs) != 0 {
		t.Fatalf("expected subscription removed")
	}
}

func TestToggleRejectsSelfSubscribe(t *testing.T) {
	svc := NewSubscriptionService(&fakeSubscriptionStore{subs: map[string]*model.Subscription{}})

	_, err := svc.Toggle(context.Background(), "u1", "u1")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if msg := ErrorMessage(err); msg != "Invalid access." {
		t.Fatalf("unexpected message %q", msg)
	}
}
