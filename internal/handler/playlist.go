package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/model"
	"github.com/vidstream/backend/internal/service"
)

type PlaylistHandler struct {
	playlists *service.PlaylistService
}

func NewPlaylistHandler(playlists *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists}
}

// Create godoc
// @Summary Create a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Param request body model.PlaylistRequest true "Name and description"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/playlist [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req model.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "All fields are required."))
		return
	}

	user := GetAuthUser(c)
	playlist, err := h.playlists.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist created successfully.")
}

// ListUserPlaylists godoc
// @Summary List a user's playlists
// @Tags playlists
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/playlist/user/{userId} [get]
func (h *PlaylistHandler) ListUserPlaylists(c *gin.Context) {
	playlists, err := h.playlists.ListUserPlaylists(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlists, "User playlists fetched successfully.")
}

// Get godoc
// @Summary Get a playlist with its videos
// @Tags playlists
// @Produce json
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/playlist/{playlistId} [get]
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlists.GetByID(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist information fetched successfully.")
}

// AddVideo godoc
// @Summary Add a video to a playlist
// @Tags playlists
// @Produce json
// @Param videoId path string true "Video ID"
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/playlist/add/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	user := GetAuthUser(c)
	playlist, err := h.playlists.AddVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Video added successfully.")
}

// RemoveVideo godoc
// @Summary Remove a video from a playlist
// @Tags playlists
// @Produce json
// @Param videoId path string true "Video ID"
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/playlist/remove/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	user := GetAuthUser(c)
	playlist, err := h.playlists.RemoveVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Video removed successfully.")
}

// Update godoc
// @Summary Rename a playlist or change its description
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlistId path string true "Playlist ID"
// @Param request body model.PlaylistRequest true "New name and description"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/playlist/{playlistId} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	var req model.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "All fields are required."))
		return
	}

	user := GetAuthUser(c)
	playlist, err := h.playlists.Update(c.Request.Context(), c.Param("playlistId"), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist updated successfully.")
}

// Delete godoc
// @Summary Delete a playlist
// @Tags playlists
// @Produce json
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/playlist/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	playlist, err := h.playlists.Delete(c.Request.Context(), c.Param("playlistId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist deleted successfully.")
}
