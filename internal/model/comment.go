package model

import "time"

type Comment struct {
	ID        string    `json:"_id"`
	VideoID   string    `json:"video"`
	OwnerID   string    `json:"-"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentWithOwner struct {
	Comment
	Owner OwnerInfo `json:"owner"`
}

type CommentRequest struct {
	Content string `json:"content"`
}
