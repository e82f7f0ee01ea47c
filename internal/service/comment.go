package service

import (
	"context"
	"strings"

	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/model"
)

type CommentStore interface {
	CreateComment(ctx context.Context, videoID, ownerID, content string) (*model.Comment, error)
	ListVideoComments(ctx context.Context, videoID string, page, limit int) ([]model.CommentWithOwner, int64, error)
	UpdateComment(ctx context.Context, id, ownerID, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, id, ownerID string) (*model.Comment, error)
	GetVideoByID(ctx context.Context, id string) (*model.Video, error)
}

type CommentService struct {
	comments CommentStore
}

func NewCommentService(comments CommentStore) *CommentService {
	return &CommentService{comments: comments}
}

func (s *CommentService) ListVideoComments(ctx context.Context, videoID string, page, limit int) (*model.Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	list, total, err := s.comments.ListVideoComments(ctx, videoID, page, limit)
	if err != nil {
		return nil, err
	}
	result := model.NewPage(list, total, page, limit)
	return &result, nil
}

func (s *CommentService) Add(ctx context.Context, videoID, userID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apiError(ErrInvalidInput, "All fields required.")
	}

	if _, err := s.comments.GetVideoByID(ctx, videoID); err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInvalidInput, "Invalid or non-existent Video ID.")
		}
		return nil, err
	}

	comment, err := s.comments.CreateComment(ctx, videoID, userID, content)
	if err != nil {
		return nil, apiError(ErrInternal, "Failed to comment on video.")
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, commentID, userID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apiError(ErrInvalidInput, "All fields required.")
	}

	comment, err := s.comments.UpdateComment(ctx, commentID, userID, content)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInternal, "Failed to update comment.")
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID, userID string) (*model.Comment, error) {
	comment, err := s.comments.DeleteComment(ctx, commentID, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInternal, "Failed to delete comment.")
		}
		return nil, err
	}
	return comment, nil
}
