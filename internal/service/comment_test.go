package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

type fakeCommentStore struct {
	comments map[string]*model.Comment
	videos   map[string]*model.Video
}

func (f *fakeCommentStore) CreateComment(ctx context.Context, videoID, ownerID, content string) (*model.Comment, error) {
	comment := &model.Comment{ID: "c1", VideoID: videoID, OwnerID: ownerID, Content: content}
	f.comments[comment.ID] = comment
	return comment, nil
}

func (f *fakeCommentStore) ListVideoComments(ctx context.Context, videoID string, page, limit int) ([]model.CommentWithOwner, int64, error) {
	var list []model.CommentWithOwner
	for _, comment := range f.comments {
		if comment.VideoID == videoID {
			list = append(list, model.CommentWithOwner{Comment: *comment})
		}
	}
	return list, int64(len(list)), nil
}

func (f *fakeCommentStore) UpdateComment(ctx context.Context, id, ownerID, content string) (*model.Comment, error) {
	comment, ok := f.comments[id]
	if !ok || comment.OwnerID != ownerID {
		return nil, pgx.ErrNoRows
	}
	comment.Content = content
	return comment, nil
}

func (f *fakeCommentStore) DeleteComment(ctx context.Context, id, ownerID string) (*model.Comment, error) {
	comment, ok := f.comments[id]
	if !ok || comment.OwnerID != ownerID {
		return nil, pgx.ErrNoRows
	}
	delete(f.comments, id)
	return comment, nil
}

func (f *fakeCommentStore) GetVideoByID(ctx context.Context, id string) (*model.Video, error) {
	if video, ok := f.videos[id]; ok {
		return video, nil
	}
	return nil, pgx.ErrNoRows
}

func newCommentFixture() (*fakeCommentStore, *CommentService) {
	store := &fakeCommentStore{
		comments: map[string]*model.Comment{},
		videos:   map[string]*model.Video{"v1": {ID: "v1"}},
	}
	return store, NewCommentService(store)
}

func TestAddCommentValidatesVideo(t *testing.T) {
	_, svc := newCommentFixture()

	_, err := svc.Add(context.Background(), "missing", "u1", "nice video")
	if msg := ErrorMessage(err); msg != "Invalid or non-existent Video ID." {
		t.Fatalf("unexpected message %q", msg)
	}

	if _, err := svc.Add(context.Background(), "v1", "u1", "nice video"); err != nil {
		t.Fatalf("add: %v", err)
	}
}

func TestAddCommentRequiresContent(t *testing.T) {
	_, svc := newCommentFixture()

	_, err := svc.Add(context.Background(), "v1", "u1", "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUpdateCommentScopedToOwner(t *testing.T) {
	store, svc := newCommentFixture()
	store.comments["c1"] = &model.Comment{ID: "c1", VideoID: "v1", OwnerID: "u1", Content: "old"}

	if _, err := svc.Update(context.Background(), "c1", "intruder", "hijacked"); err == nil {
		t.Fatalf("expected non-owner update to fail")
	}

	comment, err := svc.Update(context.Background(), "c1", "u1", "edited")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if comment.Content != "edited" {
		t.Fatalf("content not updated: %q", comment.Content)
	}
}

func TestDeleteCommentScopedToOwner(t *testing.T) {
	store, svc := newCommentFixture()
	store.comments["c1"] = &model.Comment{ID: "c1", VideoID: "v1", OwnerID: "u1", Content: "hello"}

	if _, err := svc.Delete(context.Background(), "c1", "intruder"); err == nil {
		t.Fatalf("expected non-owner delete to fail")
	}
	if _, err := svc.Delete(context.Background(), "c1", "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.comments) != 0 {
		t.Fatalf("comment not deleted")
	}
}

func TestListVideoCommentsPaginates(t *testing.T) {
	store, svc := newCommentFixture()
	store.comments["c1"] = &model.Comment{ID: "c1", VideoID: "v1", OwnerID: "u1", Content: "hello"}

	page, err := svc.ListVideoComments(context.Background(), "v1", 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalDocs != 1 || page.CurrentPage != 1 || page.Limit != 10 {
		t.Fatalf("unexpected page: %+v", page)
	}
}
