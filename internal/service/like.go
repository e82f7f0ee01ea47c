package service

import (
	"context"

	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/model"
)

type LikeStore interface {
	GetVideoLike(ctx context.Context, userID, videoID string) (*model.Like, error)
	GetCommentLike(ctx context.Context, userID, commentID string) (*model.Like, error)
	GetTweetLike(ctx context.Context, userID, tweetID string) (*model.Like, error)
	CreateVideoLike(ctx context.Context, userID, videoID string) (*model.Like, error)
	CreateCommentLike(ctx context.Context, userID, commentID string) (*model.Like, error)
	CreateTweetLike(ctx context.Context, userID, tweetID string) (*model.Like, error)
	DeleteLike(ctx context.Context, id string) (*model.Like, error)
	ListLikedVideos(ctx context.Context, userID string) ([]model.LikedVideo, error)
}

type LikeService struct {
	likes LikeStore
}

func NewLikeService(likes LikeStore) *LikeService {
	return &LikeService{likes: likes}
}

// ToggleResult reports which way a toggle went alongside the affected row.
type ToggleResult struct {
	Like  *model.Like
	Liked bool
}

func (s *LikeService) ToggleVideoLike(ctx context.Context, userID, videoID string) (*ToggleResult, error) {
	return s.toggle(ctx,
		func() (*model.Like, error) { return s.likes.GetVideoLike(ctx, userID, videoID) },
		func() (*model.Like, error) { return s.likes.CreateVideoLike(ctx, userID, videoID) },
		"Failed to like a video.", "Failed to dislike a video.")
}

func (s *LikeService) ToggleCommentLike(ctx context.Context, userID, commentID string) (*ToggleResult, error) {
	return s.toggle(ctx,
		func() (*model.Like, error) { return s.likes.GetCommentLike(ctx, userID, commentID) },
		func() (*model.Like, error) { return s.likes.CreateCommentLike(ctx, userID, commentID) },
		"Failed to like a comment.", "Failed to dislike a comment.")
}

func (s *LikeService) ToggleTweetLike(ctx context.Context, userID, tweetID string) (*ToggleResult, error) {
	return s.toggle(ctx,
		func() (*model.Like, error) { return s.likes.GetTweetLike(ctx, userID, tweetID) },
		func() (*model.Like, error) { return s.likes.CreateTweetLike(ctx, userID, tweetID) },
		"Failed to like a tweet.", "Failed to dislike a tweet.")
}

func (s *LikeService) toggle(ctx context.Context, get, create func() (*model.Like, error), likeMsg, dislikeMsg string) (*ToggleResult, error) {
	existing, err := get()
	if err != nil {
		if !db.IsNoRows(err) {
			return nil, err
		}
		like, err := create()
		if err != nil {
			return nil, apiError(ErrInternal, likeMsg)
		}
		return &ToggleResult{Like: like, Liked: true}, nil
	}

	removed, err := s.likes.DeleteLike(ctx, existing.ID)
	if err != nil {
		return nil, apiError(ErrInternal, dislikeMsg)
	}
	return &ToggleResult{Like: removed, Liked: false}, nil
}

func (s *LikeService) ListLikedVideos(ctx context.Context, userID string) ([]model.LikedVideo, error) {
	return s.likes.ListLikedVideos(ctx, userID)
}
