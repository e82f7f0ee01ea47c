package model

import "time"

type Subscription struct {
	ID           string    `json:"_id"`
	SubscriberID string    `json:"subscriber"`
	ChannelID    string    `json:"channel"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Subscriber is one row of a channel's subscriber listing.
type Subscriber struct {
	ID         string    `json:"_id"`
	Subscriber OwnerInfo `json:"subscriber"`
}

// SubscribedChannel is one row of a user's subscribed-channels listing.
type SubscribedChannel struct {
	ID      string    `json:"_id"`
	Channel OwnerInfo `json:"channel"`
}
