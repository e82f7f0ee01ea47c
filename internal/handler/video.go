package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/model"
	"github.com/vidstream/backend/internal/service"
)

type VideoHandler struct {
	videos  *service.VideoService
	related *service.RelatedService
}

func NewVideoHandler(videos *service.VideoService, related *service.RelatedService) *VideoHandler {
	return &VideoHandler{videos: videos, related: related}
}

// List godoc
// @Summary List published videos
// @Description Paginated, optionally filtered by a title/description substring and by owner.
// @Tags videos
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param query query string false "Substring filter"
// @Param sortBy query string true "createdAt, views, duration or title"
// @Param sortType query int true "1 ascending, -1 descending"
// @Param userId query string false "Filter by owner"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	params := model.VideoListParams{
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortDesc: c.Query("sortType") == "-1",
		OwnerID:  c.Query("userId"),
	}

	page, err := h.videos.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, page, "All Videos Info fetched successfully.")
}

// Publish godoc
// @Summary Upload and publish a video
// @Description Multipart form with the video file, a thumbnail and metadata. Duration comes from the media host.
// @Tags videos
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param videoFile formData file true "Video file"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/videos [post]
func (h *VideoHandler) Publish(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	videoFile, err := openFormFile(c, "videoFile")
	if err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Video file is required."))
		return
	}
	defer videoFile.close()

	thumbnail, err := openFormFile(c, "thumbnail")
	if err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Thumbnail is required."))
		return
	}
	defer thumbnail.close()

	user := GetAuthUser(c)
	video, svcErr := h.videos.Publish(c.Request.Context(), user.ID, title, description, videoFile.input(), thumbnail.input())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	respond(c, http.StatusOK, video, "Video uploaded successfully.")
}

// Get godoc
// @Summary Get a video with its owner's profile
// @Tags videos
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/videos/{videoId} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videos.GetByID(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video info fetched successfully.")
}

// Update godoc
// @Summary Update a video's title, description and thumbnail
// @Tags videos
// @Accept mpfd
// @Produce json
// @Param videoId path string true "Video ID"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param thumbnail formData file true "New thumbnail"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/videos/{videoId} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	var req model.UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "All fields are required."))
		return
	}

	thumbnail, err := openFormFile(c, "thumbnail")
	if err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Thumbnail is required."))
		return
	}
	defer thumbnail.close()

	user := GetAuthUser(c)
	video, svcErr := h.videos.Update(c.Request.Context(), c.Param("videoId"), user.ID, req, thumbnail.input())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	respond(c, http.StatusOK, video, "Video updated successfully.")
}

// Delete godoc
// @Summary Delete a video
// @Description Owner-only. Removes the video file and thumbnail from the media host, then the record.
// @Tags videos
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/videos/{videoId} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	video, err := h.videos.Delete(c.Request.Context(), c.Param("videoId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video deleted successfully.")
}

// TogglePublish godoc
// @Summary Flip a video's publish status
// @Tags videos
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/videos/toggle/publish/{videoId} [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	user := GetAuthUser(c)
	video, err := h.videos.TogglePublishStatus(c.Request.Context(), c.Param("videoId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Status changed successfully.")
}

// Related godoc
// @Summary List videos similar to a video
// @Description Embedding similarity search. Available only when the embedding backend is configured.
// @Tags videos
// @Produce json
// @Param videoId path string true "Video ID"
// @Param limit query int false "Max results (default 10)"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/videos/{videoId}/related [get]
func (h *VideoHandler) Related(c *gin.Context) {
	videos, err := h.related.ListRelated(c.Request.Context(), c.Param("videoId"), queryInt(c, "limit", 10))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "Related videos fetched successfully.")
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
