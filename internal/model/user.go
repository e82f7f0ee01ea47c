package model

import "time"

// User is the persisted account row. PasswordHash and RefreshToken never
// leave the db/service layers; handlers only ever see PublicUser.
type User struct {
	ID           string
	UserName     string
	Email        string
	FullName     string
	PasswordHash string
	Avatar       string
	CoverImage   string
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the projection of a User safe to return to clients.
type PublicUser struct {
	ID         string    `json:"_id"`
	UserName   string    `json:"userName"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:         u.ID,
		UserName:   u.UserName,
		Email:      u.Email,
		FullName:   u.FullName,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// OwnerInfo is the short owner projection joined into videos, comments and
// similar listings.
type OwnerInfo struct {
	ID         string `json:"_id"`
	UserName   string `json:"userName"`
	FullName   string `json:"fullName"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"coverImage"`
}

// ChannelProfile is a user's public channel page.
type ChannelProfile struct {
	PublicUser
	SubscribersCount          int64 `json:"subscribersCount"`
	ChannelsSubscribedToCount int64 `json:"channelsSubToCount"`
	IsSubscribed              bool  `json:"isSubscribed"`
}

type RegisterRequest struct {
	UserName string `form:"userName"`
	Email    string `form:"email"`
	Password string `form:"password"`
	FullName string `form:"fullName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
