package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type fakeFullUserStore struct {
	fakeCredentialStore
	createErr error
	history   []string
	videos    map[string]*model.Video
}

func (f *fakeFullUserStore) CreateUser(ctx context.Context, userName, email, fullName, passwordHash, avatar, coverImage string) (*model.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	user := &model.User{
		ID:           fmt.Sprintf("u%d", len(f.users)+1),
		UserName:     userName,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Avatar:       avatar,
		CoverImage:   coverImage,
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeFullUserStore) GetUserByUserName(ctx context.Context, userName string) (*model.User, error) {
	for _, user := range f.users {
		if user.UserName == userName {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeFullUserStore) UpdateAccountDetails(ctx context.Context, id, fullName, email string) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.FullName = fullName
	user.Email = email
	return user, nil
}

func (f *fakeFullUserStore) UpdateAvatar(ctx context.Context, id, avatar string) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.Avatar = avatar
	return user, nil
}

func (f *fakeFullUserStore) UpdateCoverImage(ctx context.Context, id, coverImage string) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.CoverImage = coverImage
	return user, nil
}

func (f *fakeFullUserStore) GetChannelProfile(ctx context.Context, userName, viewerID string) (*model.ChannelProfile, error) {
	user, err := f.GetUserByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	return &model.ChannelProfile{PublicUser: *user.Public()}, nil
}

func (f *fakeFullUserStore) GetVideoByID(ctx context.Context, id string) (*model.Video, error) {
	if video, ok := f.videos[id]; ok {
		return video, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeFullUserStore) TouchWatchHistory(ctx context.Context, userID, videoID string) error {
	f.history = append(f.history, videoID)
	return nil
}

func (f *fakeFullUserStore) ListWatchHistory(ctx context.Context, userID string) ([]model.VideoWithOwner, error) {
	return nil, nil
}

func newFullUserStore(t *testing.T) *fakeFullUserStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &fakeFullUserStore{
		fakeCredentialStore: fakeCredentialStore{users: map[string]*model.User{
			"u1": {
				ID:           "u1",
				UserName:     "alice",
				Email:        "alice@example.com",
				FullName:     "Alice Example",
				PasswordHash: string(hash),
				Avatar:       "https://res.example.com/demo/image/upload/v1/alice-avatar.png",
			},
		}},
		videos: map[string]*model.Video{},
	}
}

func registerRequest() model.RegisterRequest {
	return model.RegisterRequest{
		UserName: "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
		FullName: "Bob Builder",
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	store := newFullUserStore(t)
	svc := NewUserService(store, &fakeMedia{})

	user, err := svc.Register(context.Background(), registerRequest(), fileInput("avatar.png"), nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.UserName != "bob" {
		t.Fatalf("username not lowercased: %q", user.UserName)
	}
	if user.Avatar == "" {
		t.Fatalf("avatar url missing")
	}
}

func TestRegisterRequiresAvatar(t *testing.T) {
	svc := NewUserService(newFullUserStore(t), &fakeMedia{})

	_, err := svc.Register(context.Background(), registerRequest(), nil, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFullUserStore(t), &fakeMedia{})

	req := registerRequest()
	req.Email = "alice@example.com"
	_, err := svc.Register(context.Background(), req, fileInput("avatar.png"), nil)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if msg := ErrorMessage(err); msg != "User with email or username already exists." {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestRegisterCleansUpUploadsOnInsertFailure(t *testing.T) {
	store := newFullUserStore(t)
	store.createErr = errors.New("boom")
	media := &fakeMedia{}
	svc := NewUserService(store, media)

	_, err := svc.Register(context.Background(), registerRequest(), fileInput("avatar.png"), fileInput("cover.png"))
	if err == nil {
		t.Fatalf("expected failure")
	}
	if len(media.destroyed) != 2 {
		t.Fatalf("expected both uploads destroyed, got %v", media.destroyed)
	}
}

func TestUpdateAvatarReplacesOldAsset(t *testing.T) {
	store := newFullUserStore(t)
	media := &fakeMedia{}
	svc := NewUserService(store, media)

	updated, err := svc.UpdateAvatar(context.Background(), "u1", fileInput("new.png"))
	if err != nil {
		t.Fatalf("update avatar: %v", err)
	}
	if updated.Avatar == "" {
		t.Fatalf("avatar not updated")
	}
	if len(media.destroyed) != 1 || media.destroyed[0] != "alice-avatar" {
		t.Fatalf("old avatar not destroyed: %v", media.destroyed)
	}
}

func TestAddToWatchHistoryValidatesVideo(t *testing.T) {
	store := newFullUserStore(t)
	svc := NewUserService(store, &fakeMedia{})

	_, err := svc.AddToWatchHistory(context.Background(), "u1", "missing")
	if msg := ErrorMessage(err); msg != "Invalid or non-existent video ID." {
		t.Fatalf("unexpected message %q", msg)
	}

	store.videos["v1"] = &model.Video{ID: "v1"}
	if _, err := svc.AddToWatchHistory(context.Background(), "u1", "v1"); err != nil {
		t.Fatalf("add to history: %v", err)
	}
	if len(store.history) != 1 {
		t.Fatalf("history not touched")
	}
}
