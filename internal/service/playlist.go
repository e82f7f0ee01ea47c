package service

import (
	"context"
	"strings"

	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/model"
)

type PlaylistStore interface {
	CreatePlaylist(ctx context.Context, ownerID, name, description string) (*model.Playlist, error)
	GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error)
	GetPlaylistDetail(ctx context.Context, id string) (*model.PlaylistDetail, error)
	ListUserPlaylists(ctx context.Context, ownerID string) ([]model.PlaylistDetail, error)
	UpdatePlaylist(ctx context.Context, id, ownerID, name, description string) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, id, ownerID string) (*model.Playlist, error)
	AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) error
	RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) (bool, error)
}

type PlaylistService struct {
	playlists PlaylistStore
}

func NewPlaylistService(playlists PlaylistStore) *PlaylistService {
	return &PlaylistService{playlists: playlists}
}

func (s *PlaylistService) Create(ctx context.Context, ownerID string, req model.PlaylistRequest) (*model.Playlist, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, apiError(ErrInvalidInput, "All fields are required.")
	}

	playlist, err := s.playlists.CreatePlaylist(ctx, ownerID, req.Name, req.Description)
	if err != nil {
		return nil, apiError(ErrInternal, "Failed to create playlist.")
	}
	return playlist, nil
}

func (s *PlaylistService) ListUserPlaylists(ctx context.Context, userID string) ([]model.PlaylistDetail, error) {
	return s.playlists.ListUserPlaylists(ctx, userID)
}

func (s *PlaylistService) GetByID(ctx context.Context, playlistID string) (*model.PlaylistDetail, error) {
	detail, err := s.playlists.GetPlaylistDetail(ctx, playlistID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "Playlist not found.")
		}
		return nil, err
	}
	return detail, nil
}

func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, userID string) (*model.PlaylistDetail, error) {
	playlist, err := s.playlists.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInternal, "Failed to fetch playlist.")
		}
		return nil, err
	}
	if playlist.OwnerID != userID {
		return nil, apiError(ErrUnauthorized, "Unauthorized access.")
	}

	if err := s.playlists.AddVideoToPlaylist(ctx, playlistID, videoID); err != nil {
		return nil, apiError(ErrInvalidInput, "Invalid or non-existent Playlist ID or Video ID.")
	}
	return s.GetByID(ctx, playlistID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, userID string) (*model.PlaylistDetail, error) {
	playlist, err := s.playlists.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInternal, "Failed to fetch playlist.")
		}
		return nil, err
	}
	if playlist.OwnerID != userID {
		return nil, apiError(ErrUnauthorized, "Unauthorized access.")
	}

	removed, err := s.playlists.RemoveVideoFromPlaylist(ctx, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, apiError(ErrInvalidInput, "Invalid or non-existent Video ID.")
	}
	return s.GetByID(ctx, playlistID)
}

func (s *PlaylistService) Update(ctx context.Context, playlistID, userID string, req model.PlaylistRequest) (*model.Playlist, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, apiError(ErrInvalidInput, "All fields are required.")
	}

	playlist, err := s.playlists.UpdatePlaylist(ctx, playlistID, userID, req.Name, req.Description)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInternal, "Failed to update playlist.")
		}
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID, userID string) (*model.Playlist, error) {
	playlist, err := s.playlists.DeletePlaylist(ctx, playlistID, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInternal, "Failed to delete playlist.")
		}
		return nil, err
	}
	return playlist, nil
}
