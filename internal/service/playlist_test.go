package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

type fakePlaylistStore struct {
	playlist *model.Playlist
	videos   map[string]bool
}

func (f *fakePlaylistStore) CreatePlaylist(ctx context.Context, ownerID, name, description string) (*model.Playlist, error) {
	f.playlist = &model.Playlist{ID: "p1", OwnerID: ownerID, Name: name, Description: description}
	return f.playlist, nil
}

func (f *fakePlaylistStore) GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error) {
	if f.playlist == nil || f.playlist.ID != id {
		return nil, pgx.ErrNoRows
	}
	return f.playlist, nil
}

func (f *fakePlaylistStore) GetPlaylistDetail(ctx context.Context, id string) (*model.PlaylistDetail, error) {
	if f.playlist == nil || f.playlist.ID != id {
		return nil, pgx.ErrNoRows
	}
	return &model.PlaylistDetail{Playlist: *f.playlist}, nil
}

func (f *fakePlaylistStore) ListUserPlaylists(ctx context.Context, ownerID string) ([]model.PlaylistDetail, error) {
	return nil, nil
}

func (f *fakePlaylistStore) UpdatePlaylist(ctx context.Context, id, ownerID, name, description string) (*model.Playlist, error) {
	if f.playlist == nil || f.playlist.ID != id || f.playlist.OwnerID != ownerID {
		return nil, pgx.ErrNoRows
	}
	f.playlist.Name = name
	f.playlist.Description = description
	return f.playlist, nil
}

func (f *fakePlaylistStore) DeletePlaylist(ctx context.Context, id, ownerID string) (*model.Playlist, error) {
	if f.playlist == nil || f.playlist.ID != id || f.playlist.OwnerID != ownerID {
		return nil, pgx.ErrNoRows
	}
	deleted := f.playlist
	f.playlist = nil
	return deleted, nil
}

func (f *fakePlaylistStore) AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) error {
	f.videos[videoID] = true
	return nil
}

func (f *fakePlaylistStore) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) (bool, error) {
	if !f.videos[videoID] {
		return false, nil
	}
	delete(f.videos, videoID)
	return true, nil
}

func newPlaylistFixture() (*fakePlaylistStore, *PlaylistService) {
	store := &fakePlaylistStore{
		playlist: &model.Playlist{ID: "p1", OwnerID: "u1", Name: "Favs", Description: "favorites"},
		videos:   map[string]bool{},
	}
	return store, NewPlaylistService(store)
}

func TestCreatePlaylistRequiresFields(t *testing.T) {
	_, svc := newPlaylistFixture()

	_, err := svc.Create(context.Background(), "u1", model.PlaylistRequest{Name: " ", Description: "d"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestAddVideoRejectsNonOwner(t *testing.T) {
	_, svc := newPlaylistFixture()

	_, err := svc.AddVideo(context.Background(), "p1", "v1", "intruder")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestRemoveVideoAbsentFails(t *testing.T) {
	store, svc := newPlaylistFixture()

	if _, err := svc.AddVideo(context.Background(), "p1", "v1", "u1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.RemoveVideo(context.Background(), "p1", "v1", "u1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Removing again hits the absent case.
	_, err := svc.RemoveVideo(context.Background(), "p1", "v1", "u1")
	if msg := ErrorMessage(err); msg != "Invalid or non-existent Video ID." {
		t.Fatalf("unexpected message %q", msg)
	}
	if len(store.videos) != 0 {
		t.Fatalf("store should be empty")
	}
}
