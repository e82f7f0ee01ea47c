package model

import "time"

// Like marks exactly one of VideoID, CommentID or TweetID.
type Like struct {
	ID        string    `json:"_id"`
	LikedBy   string    `json:"likedBy"`
	VideoID   *string   `json:"video,omitempty"`
	CommentID *string   `json:"comment,omitempty"`
	TweetID   *string   `json:"tweet,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedVideo is one entry of the caller's liked-video listing.
type LikedVideo struct {
	ID      string    `json:"_id"`
	Video   VideoRef  `json:"video"`
	LikedBy OwnerInfo `json:"likedBy"`
}
