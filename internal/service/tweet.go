package service

import (
	"context"
	"strings"

	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/model"
)

type TweetStore interface {
	CreateTweet(ctx context.Context, ownerID, content string) (*model.Tweet, error)
	GetTweetByID(ctx context.Context, id string) (*model.Tweet, error)
	ListUserTweets(ctx context.Context, ownerID string) ([]model.Tweet, error)
	UpdateTweet(ctx context.Context, id, ownerID, content string) (*model.Tweet, error)
	DeleteTweet(ctx context.Context, id string) (*model.Tweet, error)
}

type TweetService struct {
	tweets TweetStore
}

func NewTweetService(tweets TweetStore) *TweetService {
	return &TweetService{tweets: tweets}
}

func (s *TweetService) Create(ctx context.Context, userID, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apiError(ErrInvalidInput, "All fields required.")
	}

	tweet, err := s.tweets.CreateTweet(ctx, userID, content)
	if err != nil {
		return nil, apiError(ErrInvalidInput, "Something went wrong while creating tweet.")
	}
	return tweet, nil
}

func (s *TweetService) ListUserTweets(ctx context.Context, userID string) ([]model.Tweet, error) {
	return s.tweets.ListUserTweets(ctx, userID)
}

func (s *TweetService) Update(ctx context.Context, tweetID, userID, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apiError(ErrInvalidInput, "All fields required.")
	}

	tweet, err := s.tweets.GetTweetByID(ctx, tweetID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "Tweet not found.")
		}
		return nil, err
	}
	if tweet.OwnerID != userID {
		return nil, apiError(ErrUnauthorized, "Unauthorized Access!")
	}

	updated, err := s.tweets.UpdateTweet(ctx, tweetID, userID, content)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInternal, "Something went wrong while updating tweet.")
		}
		return nil, err
	}
	return updated, nil
}

func (s *TweetService) Delete(ctx context.Context, tweetID, userID string) (*model.Tweet, error) {
	tweet, err := s.tweets.GetTweetByID(ctx, tweetID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "Tweet not found.")
		}
		return nil, err
	}
	if tweet.OwnerID != userID {
		return nil, apiError(ErrUnauthorized, "Unauthorized Access!")
	}

	deleted, err := s.tweets.DeleteTweet(ctx, tweetID)
	if err != nil {
		return nil, apiError(ErrInternal, "Something went wrong while deleting tweet.")
	}
	return deleted, nil
}
