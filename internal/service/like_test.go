package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

type fakeLikeStore struct {
	likes map[string]*model.Like
	next  int
}

func (f *fakeLikeStore) create(userID string, videoID, commentID, tweetID *string) (*model.Like, error) {
	f.next++
	like := &model.Like{
		ID:        fmt.Sprintf("l%d", f.next),
		LikedBy:   userID,
		VideoID:   videoID,
		CommentID: commentID,
		TweetID:   tweetID,
	}
	f.likes[like.ID] = like
	return like, nil
}

func (f *fakeLikeStore) GetVideoLike(ctx context.Context, userID, videoID string) (*model.Like, error) {
	for _, like := range f.likes {
		if like.LikedBy == userID && like.VideoID != nil && *like.VideoID == videoID {
			return like, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeLikeStore) GetCommentLike(ctx context.Context, userID, commentID string) (*model.Like, error) {
	for _, like := range f.likes {
		if like.LikedBy == userID && like.CommentID != nil && *like.CommentID == commentID {
			return like, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeLikeStore) GetTweetLike(ctx context.Context, userID, tweetID string) (*model.Like, error) {
	for _, like := range f.likes {
		if like.LikedBy == userID && like.TweetID != nil && *like.TweetID == tweetID {
			return like, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeLikeStore) CreateVideoLike(ctx context.Context, userID, videoID string) (*model.Like, error) {
	return f.create(userID, &videoID, nil, nil)
}

func (f *fakeLikeStore) CreateCommentLike(ctx context.Context, userID, commentID string) (*model.Like, error) {
	return f.create(userID, nil, &commentID, nil)
}

func (f *fakeLikeStore) CreateTweetLike(ctx context.Context, userID, tweetID string) (*model.Like, error) {
	return f.create(userID, nil, nil, &tweetID)
}

func (f *fakeLikeStore) DeleteLike(ctx context.Context, id string) (*model.Like, error) {
	like, ok := f.likes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(f.likes, id)
	return like, nil
}

func (f *fakeLikeStore) ListLikedVideos(ctx context.Context, userID string) ([]model.LikedVideo, error) {
	return nil, nil
}

func TestToggleVideoLike(t *testing.T) {
	store := &fakeLikeStore{likes: map[string]*model.Like{}}
	svc := NewLikeService(store)

	result, err := svc.ToggleVideoLike(context.Background(), "u1", "v1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !result.Liked || len(store.likes) != 1 {
		t.Fatalf("expected like created")
	}

	result, err = svc.ToggleVideoLike(context.Background(), "u1", "v1")
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if result.Liked || len(store.likes) != 0 {
		t.Fatalf("expected like removed")
	}
}

func TestToggleLikesAreIndependentPerTarget(t *testing.T) {
	store := &fakeLikeStore{likes: map[string]*model.Like{}}
	svc := NewLikeService(store)

	if _, err := svc.ToggleVideoLike(context.Background(), "u1", "x1"); err != nil {
		t.Fatalf("video like: %v", err)
	}
	if _, err := svc.ToggleCommentLike(context.Background(), "u1", "x1"); err != nil {
		t.Fatalf("comment like: %v", err)
	}
	if _, err := svc.ToggleTweetLike(context.Background(), "u1", "x1"); err != nil {
		t.Fatalf("tweet like: %v", err)
	}
	if len(store.likes) != 3 {
		t.Fatalf("expected three independent likes, got %d", len(store.likes))
	}
}
