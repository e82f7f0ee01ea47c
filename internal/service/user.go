package service

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/vidstream/backend/internal/client"
	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// MediaStore is the slice of the media host client the services use to
// push and drop binary assets.
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader, filename, resourceType string) (*client.UploadResult, error)
	Destroy(ctx context.Context, publicID, resourceType string) error
}

type UserStore interface {
	CredentialStore
	CreateUser(ctx context.Context, userName, email, fullName, passwordHash, avatar, coverImage string) (*model.User, error)
	GetUserByUserName(ctx context.Context, userName string) (*model.User, error)
	UpdateAccountDetails(ctx context.Context, id, fullName, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, id, coverImage string) (*model.User, error)
	GetChannelProfile(ctx context.Context, userName, viewerID string) (*model.ChannelProfile, error)
	GetVideoByID(ctx context.Context, id string) (*model.Video, error)
	TouchWatchHistory(ctx context.Context, userID, videoID string) error
	ListWatchHistory(ctx context.Context, userID string) ([]model.VideoWithOwner, error)
}

type UserService struct {
	users UserStore
	media MediaStore
}

func NewUserService(users UserStore, media MediaStore) *UserService {
	return &UserService{users: users, media: media}
}

// FileInput is one uploaded form file handed down from the handler.
type FileInput struct {
	Reader   io.Reader
	Filename string
}

// Register creates an account. The avatar is required; the cover image is
// optional. Uploaded assets are deleted again when the insert fails so
// the media host holds no orphans.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest, avatar *FileInput, coverImage *FileInput) (*model.PublicUser, error) {
	fields := []string{req.FullName, req.Email, req.Password, req.UserName}
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return nil, apiError(ErrInvalidInput, "All fields are required.")
		}
	}
	if avatar == nil {
		return nil, apiError(ErrInvalidInput, "Avatar file is required.")
	}

	userName := strings.ToLower(req.UserName)

	if _, err := s.users.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, apiError(ErrConflict, "User with email or username already exists.")
	} else if !db.IsNoRows(err) {
		return nil, err
	}
	if _, err := s.users.GetUserByUserName(ctx, userName); err == nil {
		return nil, apiError(ErrConflict, "User with email or username already exists.")
	} else if !db.IsNoRows(err) {
		return nil, err
	}

	avatarUpload, err := s.media.Upload(ctx, avatar.Reader, avatar.Filename, "image")
	if err != nil {
		return nil, apiError(ErrInvalidInput, "Avatar file is required.")
	}

	coverImageURL := ""
	if coverImage != nil {
		coverUpload, err := s.media.Upload(ctx, coverImage.Reader, coverImage.Filename, "image")
		if err != nil {
			s.destroy(ctx, avatarUpload.URL, "image")
			return nil, err
		}
		coverImageURL = coverUpload.URL
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, userName, req.Email, req.FullName, string(hash), avatarUpload.URL, coverImageURL)
	if err != nil {
		s.destroy(ctx, avatarUpload.URL, "image")
		if coverImageURL != "" {
			s.destroy(ctx, coverImageURL, "image")
		}
		if db.IsUniqueViolation(err) {
			return nil, apiError(ErrConflict, "User with email or username already exists.")
		}
		return nil, apiError(ErrInternal, "Failed to create a user.")
	}

	return user.Public(), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*model.PublicUser, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "User not found.")
		}
		return nil, err
	}
	return user.Public(), nil
}

func (s *UserService) UpdateAccountDetails(ctx context.Context, userID string, req model.UpdateAccountRequest) (*model.PublicUser, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, apiError(ErrInvalidInput, "All fields are required.")
	}

	user, err := s.users.UpdateAccountDetails(ctx, userID, req.FullName, req.Email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrUnauthorized, "Unauthorized access.")
		}
		if db.IsUniqueViolation(err) {
			return nil, apiError(ErrConflict, "User with email already exists.")
		}
		return nil, err
	}
	return user.Public(), nil
}

// UpdateAvatar uploads the replacement first, then drops the previous
// asset from the media host once the row points at the new URL.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, file *FileInput) (*model.PublicUser, error) {
	if file == nil {
		return nil, apiError(ErrInvalidInput, "Avatar file is missing!")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	upload, err := s.media.Upload(ctx, file.Reader, file.Filename, "image")
	if err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateAvatar(ctx, userID, upload.URL)
	if err != nil {
		s.destroy(ctx, upload.URL, "image")
		return nil, err
	}

	s.destroy(ctx, user.Avatar, "image")
	return updated.Public(), nil
}

func (s *UserService) UpdateCoverImage(ctx context.Context, userID string, file *FileInput) (*model.PublicUser, error) {
	if file == nil {
		return nil, apiError(ErrInvalidInput, "Cover image file is missing!")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	upload, err := s.media.Upload(ctx, file.Reader, file.Filename, "image")
	if err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateCoverImage(ctx, userID, upload.URL)
	if err != nil {
		s.destroy(ctx, upload.URL, "image")
		return nil, err
	}

	if user.CoverImage != "" {
		s.destroy(ctx, user.CoverImage, "image")
	}
	return updated.Public(), nil
}

func (s *UserService) GetChannelProfile(ctx context.Context, userName, viewerID string) (*model.ChannelProfile, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, apiError(ErrInvalidInput, "Username is missing.")
	}

	profile, err := s.users.GetChannelProfile(ctx, strings.ToLower(userName), viewerID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrNotFound, "Channel does not exist.")
		}
		return nil, err
	}
	return profile, nil
}

func (s *UserService) GetWatchHistory(ctx context.Context, userID string) ([]model.VideoWithOwner, error) {
	return s.users.ListWatchHistory(ctx, userID)
}

func (s *UserService) AddToWatchHistory(ctx context.Context, userID, videoID string) (*model.PublicUser, error) {
	if _, err := s.users.GetVideoByID(ctx, videoID); err != nil {
		if db.IsNoRows(err) {
			return nil, apiError(ErrInvalidInput, "Invalid or non-existent video ID.")
		}
		return nil, err
	}

	if err := s.users.TouchWatchHistory(ctx, userID, videoID); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, userID)
}

// destroy drops an asset by its delivery URL, best effort. Failures are
// logged and otherwise ignored; nothing here retries.
func (s *UserService) destroy(ctx context.Context, url, resourceType string) {
	publicID := client.PublicIDFromURL(url)
	if publicID == "" {
		return
	}
	if err := s.media.Destroy(ctx, publicID, resourceType); err != nil {
		log.Printf("Failed to delete media asset %s: %v", publicID, err)
	}
}
