package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/model"
	"github.com/vidstream/backend/internal/service"
)

type UserHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

func NewUserHandler(users *service.UserService, auth *service.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// Register godoc
// @Summary Register a new user
// @Description Multipart form with profile fields plus an avatar file and an optional cover image.
// @Tags users
// @Accept mpfd
// @Produce json
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param userName formData string true "Username"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "All fields required."))
		return
	}

	avatar, err := openFormFile(c, "avatar")
	if err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Avatar is compulsory."))
		return
	}
	defer avatar.close()

	coverImage, err := openFormFile(c, "coverImage")
	if err == nil {
		defer coverImage.close()
	}

	user, svcErr := h.users.Register(c.Request.Context(), req, avatar.input(), coverImage.input())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	respond(c, http.StatusCreated, user, "User created successfully.")
}

// Login godoc
// @Summary Login with email and password
// @Description Issues an access/refresh token pair and sets both as HttpOnly cookies.
// @Tags users
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "All fields required."))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	respond(c, http.StatusOK, result, "User logged in successfully.")
}

// Logout godoc
// @Summary Logout
// @Description Clears the stored refresh token and both auth cookies.
// @Tags users
// @Produce json
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	user := GetAuthUser(c)
	if err := h.auth.Logout(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}

	h.clearAuthCookies(c)
	respond(c, http.StatusOK, gin.H{}, "User logged out successfully.")
}

// RefreshToken godoc
// @Summary Rotate the refresh token
// @Description Exchanges a valid refresh token (cookie or body) for a new pair. The old token is invalidated.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/users/refresh-token [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	presented, _ := c.Cookie(service.RefreshCookieName)
	if presented == "" {
		var req model.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	pair, err := h.auth.Refresh(c.Request.Context(), presented)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	respond(c, http.StatusOK, pair, "Token refreshed successfully.")
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags users
// @Accept json
// @Produce json
// @Param request body model.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/users/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "All fields are required."))
		return
	}

	user := GetAuthUser(c)
	if err := h.auth.ChangePassword(c.Request.Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Password updated successfully.")
}

// CurrentUser godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/users/current-user [get]
func (h *UserHandler) CurrentUser(c *gin.Context) {
	respond(c, http.StatusOK, GetAuthUser(c), "Current user fetched successfully.")
}

// UpdateAccount godoc
// @Summary Update full name and email
// @Tags users
// @Accept json
// @Produce json
// @Param request body model.UpdateAccountRequest true "New account details"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/users/update-account [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req model.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "All fields are required."))
		return
	}

	user := GetAuthUser(c)
	updated, err := h.users.UpdateAccountDetails(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, updated, "User information updated successfully.")
}

// UpdateAvatar godoc
// @Summary Replace the avatar image
// @Tags users
// @Accept mpfd
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	file, err := openFormFile(c, "avatar")
	if err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Avatar file is missing."))
		return
	}
	defer file.close()

	user := GetAuthUser(c)
	updated, svcErr := h.users.UpdateAvatar(c.Request.Context(), user.ID, file.input())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	respond(c, http.StatusOK, updated, "Avatar updated successfully.")
}

// UpdateCoverImage godoc
// @Summary Replace the cover image
// @Tags users
// @Accept mpfd
// @Produce json
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	file, err := openFormFile(c, "coverImage")
	if err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Cover image file is missing."))
		return
	}
	defer file.close()

	user := GetAuthUser(c)
	updated, svcErr := h.users.UpdateCoverImage(c.Request.Context(), user.ID, file.input())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	respond(c, http.StatusOK, updated, "Cover image updated successfully.")
}

// ChannelProfile godoc
// @Summary Get a channel profile by username
// @Description Profile plus subscriber counts and whether the caller subscribes to it.
// @Tags users
// @Produce json
// @Param userName path string true "Channel username"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/users/c/{userName} [get]
func (h *UserHandler) ChannelProfile(c *gin.Context) {
	user := GetAuthUser(c)
	profile, err := h.users.GetChannelProfile(c.Request.Context(), c.Param("userName"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, profile, "User channel fetched successfully.")
}

// WatchHistory godoc
// @Summary Get the caller's watch history
// @Description Most recently watched first, each entry joined with the video owner's profile.
// @Tags users
// @Produce json
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/users/history [get]
func (h *UserHandler) WatchHistory(c *gin.Context) {
	user := GetAuthUser(c)
	history, err := h.users.GetWatchHistory(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, history, "Watch history fetched successfully.")
}

// AddToWatchHistory godoc
// @Summary Record a video in the caller's watch history
// @Description Re-watching moves the video to the front instead of duplicating it.
// @Tags users
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/users/add-to-watch-history/{videoId} [patch]
func (h *UserHandler) AddToWatchHistory(c *gin.Context) {
	user := GetAuthUser(c)
	updated, err := h.users.AddToWatchHistory(c.Request.Context(), user.ID, c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, updated, "Video added successfully.")
}

func (h *UserHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	cfg := h.auth.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(service.AccessCookieName, accessToken, cfg.AccessMaxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
	c.SetCookie(service.RefreshCookieName, refreshToken, cfg.RefreshMaxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
}

func (h *UserHandler) clearAuthCookies(c *gin.Context) {
	cfg := h.auth.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(service.AccessCookieName, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
	c.SetCookie(service.RefreshCookieName, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
}

// formFile wraps an opened multipart file so handlers can defer the close
// and still pass nil through for optional uploads.
type formFile struct {
	file     multipart.File
	filename string
}

func openFormFile(c *gin.Context, name string) (*formFile, error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &formFile{file: file, filename: header.Filename}, nil
}

func (f *formFile) input() *service.FileInput {
	if f == nil {
		return nil
	}
	return &service.FileInput{Reader: f.file, Filename: f.filename}
}

func (f *formFile) close() {
	if f != nil {
		f.file.Close()
	}
}
