package service

import (
	"context"
	"log"
	"strings"

	"github.com/vidstream/backend/internal/client"
	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/model"
)

type VideoStore interface {
	CreateVideo(ctx context.Context, ownerID, title, description, videoFile, thumbnail string, duration float64) (*model.Video, error)
	GetVideoByID(ctx context.Context, id string) (*model.Video, error)
	GetVideoWithOwner(ctx context.Context, id string) (*model.VideoWithOwner, error)
	ListVideos(ctx context.Context, params model.VideoListParams) ([]model.VideoWithOwner, int64, error)
	UpdateVideo(ctx context.Context, id, title, description, thumbnail string) (*model.Video, error)
	DeleteVideo(ctx context.Context, id string) (*model.Video, error)
	SetVideoPublishStatus(ctx context.Context, id string, published bool) (*model.Video, error)
}

// VideoEmbedder is satisfied by the related-videos service; nil disables
// embedding on publish.
type VideoEmbedder interface {
	EmbedVideo(ctx context.Context, video *model.Video)
}

type VideoService struct {
	videos   VideoStore
	media    MediaStore
	embedder VideoEmbedder
}

func NewVideoService(videos VideoStore, media MediaStore, embedder VideoEmbedder) *VideoService {
	return &VideoService{videos: videos, media: media, embedder: embedder}
}

func (s *VideoService) List(ctx context.Context, params model.VideoListParams) (*model.Page, error) {
	if params.SortBy == "" {
		return nil, apiError(ErrInvalidInput, "All Fields are required.")
	}
	if !db.IsVideoSortColumn(params.SortBy) {
		return nil, apiError(ErrInvalidInput, "Invalid sort field.")
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	list, total, err := s.videos.ListVideos(ctx, params)
	if err != nil {
		return nil, err
	}
	page := model.NewPage(list, total, params.Page, params.Limit)
	return &page, nil
}

// Publish uploads both assets, then inserts the row. The video duration
// comes from the media host's upload response. A failed insert deletes
// the uploads again.
func (s *VideoService) Publish(ctx context.Context, ownerID, title, description string, videoFile, thumbnail *FileInput) (*model.Video, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" || videoFile == nil || thumbnail == nil {
		return nil, apiError(ErrInvalidInput, "All fields required.")
	}

	videoUpload, err := s.media.Upload(ctx, videoFile.Reader, videoFile.Filename, "video")
	if err != nil {
		return nil, apiError(ErrInternal, "Something went wrong while uploading files.")
	}

	thumbnailUpload, err := s.media.Upload(ctx, thumbnail.Reader, thumbnail.Filename, "image")
	if err != nil {
		s.destroy(ctx, videoUpload.URL, "video")
		return nil, apiError(ErrInternal, "Something went wrong while uploading files.")
	}

	video, err := s.videos.CreateVideo(ctx, ownerID, title, description, videoUpload.URL, thumbnailUpload.URL, videoUpload.Duration)
	if err != nil {
		s.destroy(ctx, videoUpload.URL, "video")
		s.destroy(ctx, thumbnailUpload.URL, "image")
		return nil, apiError(ErrInternal, "Something went wrong while uploading video.")
	}

	if s.embedder != nil {
		s.embedder.EmbedVideo(ctx, video)
	}
	return video, nil
}

func (s *VideoService) GetByID(ctx context.Context, videoID string) (*model.VideoWithOwner, error) {
	video, err := s.videos.GetVideoWithOwner(ctx, videoID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "Video not found.")
		}
		return nil, err
	}
	return video, nil
}

// Update swaps the thumbnail and metadata; the previous thumbnail is
// deleted only after the row points at the new one.
func (s *VideoService) Update(ctx context.Context, videoID, userID string, req model.UpdateVideoRequest, thumbnail *FileInput) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" || thumbnail == nil {
		return nil, apiError(ErrInvalidInput, "All fields are required.")
	}

	video, err := s.videos.GetVideoByID(ctx, videoID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "Video not found.")
		}
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, apiError(ErrUnauthorized, "Unauthorized Access!")
	}

	upload, err := s.media.Upload(ctx, thumbnail.Reader, thumbnail.Filename, "image")
	if err != nil {
		return nil, apiError(ErrInternal, "Something went wrong while uploading file.")
	}

	updated, err := s.videos.UpdateVideo(ctx, videoID, req.Title, req.Description, upload.URL)
	if err != nil {
		s.destroy(ctx, upload.URL, "image")
		return nil, apiError(ErrInternal, "Something went wrong while Updating Video.")
	}

	s.destroy(ctx, video.Thumbnail, "image")
	return updated, nil
}

func (s *VideoService) Delete(ctx context.Context, videoID, userID string) (*model.Video, error) {
	video, err := s.videos.GetVideoByID(ctx, videoID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "Video not found.")
		}
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, apiError(ErrUnauthorized, "Unauthorized Access!")
	}

	if err := s.media.Destroy(ctx, client.PublicIDFromURL(video.VideoFile), "video"); err != nil {
		return nil, apiError(ErrInternal, "Failed to delete Files from database.")
	}
	if err := s.media.Destroy(ctx, client.PublicIDFromURL(video.Thumbnail), "image"); err != nil {
		return nil, apiError(ErrInternal, "Failed to delete Files from database.")
	}

	deleted, err := s.videos.DeleteVideo(ctx, videoID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "Video not found.")
		}
		return nil, err
	}
	return deleted, nil
}

func (s *VideoService) TogglePublishStatus(ctx context.Context, videoID, userID string) (*model.Video, error) {
	video, err := s.videos.GetVideoByID(ctx, videoID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "Video not found.")
		}
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, apiError(ErrUnauthorized, "Unauthorized Access!")
	}

	toggled, err := s.videos.SetVideoPublishStatus(ctx, videoID, !video.IsPublished)
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

func (s *VideoService) destroy(ctx context.Context, url, resourceType string) {
	publicID := client.PublicIDFromURL(url)
	if publicID == "" {
		return
	}
	if err := s.media.Destroy(ctx, publicID, resourceType); err != nil {
		log.Printf("Failed to delete media asset %s: %v", publicID, err)
	}
}
