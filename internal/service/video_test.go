package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/client"
	"github.com/vidstream/backend/internal/model"
)

type fakeVideoStore struct {
	videos     map[string]*model.Video
	insertErr  error
	deletedIDs []string
}

func (f *fakeVideoStore) CreateVideo(ctx context.Context, ownerID, title, description, videoFile, thumbnail string, duration float64) (*model.Video, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	video := &model.Video{
		ID:          fmt.Sprintf("v%d", len(f.videos)+1),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
		Duration:    duration,
		IsPublished: true,
	}
	f.videos[video.ID] = video
	return video, nil
}

func (f *fakeVideoStore) GetVideoByID(ctx context.Context, id string) (*model.Video, error) {
	if video, ok := f.videos[id]; ok {
		return video, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeVideoStore) GetVideoWithOwner(ctx context.Context, id string) (*model.VideoWithOwner, error) {
	video, err := f.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.VideoWithOwner{Video: *video}, nil
}

func (f *fakeVideoStore) ListVideos(ctx context.Context, params model.VideoListParams) ([]model.VideoWithOwner, int64, error) {
	return nil, 0, nil
}

func (f *fakeVideoStore) UpdateVideo(ctx context.Context, id, title, description, thumbnail string) (*model.Video, error) {
	video, err := f.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	video.Title = title
	video.Description = description
	video.Thumbnail = thumbnail
	return video, nil
}

func (f *fakeVideoStore) DeleteVideo(ctx context.Context, id string) (*model.Video, error) {
	video, err := f.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(f.videos, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return video, nil
}

func (f *fakeVideoStore) SetVideoPublishStatus(ctx context.Context, id string, published bool) (*model.Video, error) {
	video, err := f.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	video.IsPublished = published
	return video, nil
}

type fakeMedia struct {
	uploads   int
	destroyed []string
}

func (f *fakeMedia) Upload(ctx context.Context, file io.Reader, filename, resourceType string) (*client.UploadResult, error) {
	f.uploads++
	url := fmt.Sprintf("https://res.example.com/demo/%s/upload/v1/%s-%d.mp4", resourceType, resourceType, f.uploads)
	return &client.UploadResult{PublicID: client.PublicIDFromURL(url), URL: url, Duration: 42}, nil
}

func (f *fakeMedia) Destroy(ctx context.Context, publicID, resourceType string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func fileInput(name string) *FileInput {
	return &FileInput{Reader: strings.NewReader("data"), Filename: name}
}

func TestListRequiresSortBy(t *testing.T) {
	svc := NewVideoService(&fakeVideoStore{videos: map[string]*model.Video{}}, &fakeMedia{}, nil)

	_, err := svc.List(context.Background(), model.VideoListParams{})
	if msg := ErrorMessage(err); msg != "All Fields are required." {
		t.Fatalf("unexpected message %q", msg)
	}

	_, err = svc.List(context.Background(), model.VideoListParams{SortBy: "refresh_token"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid sort field, got %v", err)
	}
}

func TestPublishTakesDurationFromUpload(t *testing.T) {
	store := &fakeVideoStore{videos: map[string]*model.Video{}}
	svc := NewVideoService(store, &fakeMedia{}, nil)

	video, err := svc.Publish(context.Background(), "u1", "Title", "Desc", fileInput("clip.mp4"), fileInput("thumb.png"))
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if video.Duration != 42 {
		t.Fatalf("duration not taken from upload: %v", video.Duration)
	}
}

func TestPublishCleansUpUploadsOnInsertFailure(t *testing.T) {
	store := &fakeVideoStore{videos: map[string]*model.Video{}, insertErr: errors.New("boom")}
	media := &fakeMedia{}
	svc := NewVideoService(store, media, nil)

	_, err := svc.Publish(context.Background(), "u1", "Title", "Desc", fileInput("clip.mp4"), fileInput("thumb.png"))
	if err == nil {
		t.Fatalf("expected failure")
	}
	if len(media.destroyed) != 2 {
		t.Fatalf("expected both uploads destroyed, got %v", media.destroyed)
	}
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	store := &fakeVideoStore{videos: map[string]*model.Video{
		"v1": {ID: "v1", OwnerID: "u1", Thumbnail: "https://res.example.com/demo/image/upload/v1/old.png"},
	}}
	svc := NewVideoService(store, &fakeMedia{}, nil)

	_, err := svc.Update(context.Background(), "v1", "intruder", model.UpdateVideoRequest{Title: "T", Description: "D"}, fileInput("new.png"))
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestUpdateDeletesOldThumbnail(t *testing.T) {
	store := &fakeVideoStore{videos: map[string]*model.Video{
		"v1": {ID: "v1", OwnerID: "u1", Thumbnail: "https://res.example.com/demo/image/upload/v1/old.png"},
	}}
	media := &fakeMedia{}
	svc := NewVideoService(store, media, nil)

	if _, err := svc.Update(context.Background(), "v1", "u1", model.UpdateVideoRequest{Title: "T", Description: "D"}, fileInput("new.png")); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(media.destroyed) != 1 || media.destroyed[0] != "old" {
		t.Fatalf("old thumbnail not destroyed: %v", media.destroyed)
	}
}

func TestDeleteRemovesAssetsAndRow(t *testing.T) {
	store := &fakeVideoStore{videos: map[string]*model.Video{
		"v1": {
			ID:        "v1",
			OwnerID:   "u1",
			VideoFile: "https://res.example.com/demo/video/upload/v1/clip.mp4",
			Thumbnail: "https://res.example.com/demo/image/upload/v1/thumb.png",
		},
	}}
	media := &fakeMedia{}
	svc := NewVideoService(store, media, nil)

	if _, err := svc.Delete(context.Background(), "v1", "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(media.destroyed) != 2 {
		t.Fatalf("expected both assets destroyed, got %v", media.destroyed)
	}
	if len(store.deletedIDs) != 1 {
		t.Fatalf("row not deleted")
	}
}

func TestTogglePublishStatusFlips(t *testing.T) {
	store := &fakeVideoStore{videos: map[string]*model.Video{
		"v1": {ID: "v1", OwnerID: "u1", IsPublished: true},
	}}
	svc := NewVideoService(store, &fakeMedia{}, nil)

	video, err := svc.TogglePublishStatus(context.Background(), "v1", "u1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if video.IsPublished {
		t.Fatalf("publish status not flipped")
	}
}
