package model

import "time"

type Playlist struct {
	ID          string    `json:"_id"`
	OwnerID     string    `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistDetail is a playlist joined with its owner and video refs.
type PlaylistDetail struct {
	Playlist
	Owner  OwnerInfo  `json:"owner"`
	Videos []VideoRef `json:"videos"`
}

type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
