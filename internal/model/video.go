package model

import "time"

type Video struct {
	ID          string    `json:"_id"`
	OwnerID     string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VideoWithOwner is a video joined with its owner's short profile.
type VideoWithOwner struct {
	Video
	Owner OwnerInfo `json:"owner"`
}

// VideoRef is the short video projection used inside playlists, liked
// videos and watch history.
type VideoRef struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	VideoFile string `json:"videoFile"`
	Thumbnail string `json:"thumbnail"`
}

// VideoListParams narrows and orders the video listing.
type VideoListParams struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortDesc bool
	OwnerID  string
}

type UpdateVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}
