package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/model"
	"github.com/vidstream/backend/internal/service"
)

type CommentHandler struct {
	comments *service.CommentService
}

func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// List godoc
// @Summary List a video's comments
// @Description Paginated, newest first, each comment joined with its author's profile.
// @Tags comments
// @Produce json
// @Param videoId path string true "Video ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/comments/{videoId} [get]
func (h *CommentHandler) List(c *gin.Context) {
	page, err := h.comments.ListVideoComments(c.Request.Context(), c.Param("videoId"), queryInt(c, "page", 1), queryInt(c, "limit", 10))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, page, "Comment list fetched successfully.")
}

// Add godoc
// @Summary Comment on a video
// @Tags comments
// @Accept json
// @Produce json
// @Param videoId path string true "Video ID"
// @Param request body model.CommentRequest true "Comment content"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/comments/{videoId} [post]
func (h *CommentHandler) Add(c *gin.Context) {
	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Content is required."))
		return
	}

	user := GetAuthUser(c)
	comment, err := h.comments.Add(c.Request.Context(), c.Param("videoId"), user.ID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, comment, "Commented successfully.")
}

// Update godoc
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param commentId path string true "Comment ID"
// @Param request body model.CommentRequest true "New content"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/comments/c/{commentId} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Content is required."))
		return
	}

	user := GetAuthUser(c)
	comment, err := h.comments.Update(c.Request.Context(), c.Param("commentId"), user.ID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, comment, "Comment updated successfully.")
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/comments/c/{commentId} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	comment, err := h.comments.Delete(c.Request.Context(), c.Param("commentId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, comment, "Comment deleted successfully.")
}
