package model

// ChannelStats summarizes one channel for its dashboard.
type ChannelStats struct {
	VideoCount      int64 `json:"videoCount"`
	SubscriberCount int64 `json:"subscriberCount"`
	TotalViews      int64 `json:"totalViewsCount"`
	TotalLikes      int64 `json:"totalLikes"`
}
