package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/service"
)

type LikeHandler struct {
	likes *service.LikeService
}

func NewLikeHandler(likes *service.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// ToggleVideoLike godoc
// @Summary Like or unlike a video
// @Tags likes
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	user := GetAuthUser(c)
	result, err := h.likes.ToggleVideoLike(c.Request.Context(), user.ID, c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondToggle(c, result, "Video liked successfully.", "Video disliked successfully.")
}

// ToggleCommentLike godoc
// @Summary Like or unlike a comment
// @Tags likes
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	user := GetAuthUser(c)
	result, err := h.likes.ToggleCommentLike(c.Request.Context(), user.ID, c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondToggle(c, result, "Comment liked successfully.", "Comment disliked successfully.")
}

// ToggleTweetLike godoc
// @Summary Like or unlike a tweet
// @Tags likes
// @Produce json
// @Param tweetId path string true "Tweet ID"
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	user := GetAuthUser(c)
	result, err := h.likes.ToggleTweetLike(c.Request.Context(), user.ID, c.Param("tweetId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondToggle(c, result, "Tweet liked successfully.", "Tweet disliked successfully.")
}

// ListLikedVideos godoc
// @Summary List the caller's liked videos
// @Tags likes
// @Produce json
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/likes/videos [get]
func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	user := GetAuthUser(c)
	videos, err := h.likes.ListLikedVideos(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "All liked videos fetched successfully.")
}

func respondToggle(c *gin.Context, result *service.ToggleResult, likedMsg, dislikedMsg string) {
	message := dislikedMsg
	if result.Liked {
		message = likedMsg
	}
	respond(c, http.StatusOK, result.Like, message)
}
