package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/model"
	"github.com/vidstream/backend/internal/service"
)

type TweetHandler struct {
	tweets *service.TweetService
}

func NewTweetHandler(tweets *service.TweetService) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

// Create godoc
// @Summary Post a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param request body model.TweetRequest true "Tweet content"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	var req model.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Content is required."))
		return
	}

	user := GetAuthUser(c)
	tweet, err := h.tweets.Create(c.Request.Context(), user.ID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, tweet, "Tweet created successfully.")
}

// ListUserTweets godoc
// @Summary List a user's tweets
// @Tags tweets
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/tweets/user/{userId} [get]
func (h *TweetHandler) ListUserTweets(c *gin.Context) {
	tweets, err := h.tweets.ListUserTweets(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, tweets, "Tweets fetched successfully.")
}

// Update godoc
// @Summary Edit a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweetId path string true "Tweet ID"
// @Param request body model.TweetRequest true "New content"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/tweets/{tweetId} [patch]
func (h *TweetHandler) Update(c *gin.Context) {
	var req model.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewError(service.ErrInvalidInput, "Content is required."))
		return
	}

	user := GetAuthUser(c)
	tweet, err := h.tweets.Update(c.Request.Context(), c.Param("tweetId"), user.ID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, tweet, "Tweet updated successfully.")
}

// Delete godoc
// @Summary Delete a tweet
// @Tags tweets
// @Produce json
// @Param tweetId path string true "Tweet ID"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/tweets/{tweetId} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	tweet, err := h.tweets.Delete(c.Request.Context(), c.Param("tweetId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, tweet, "Tweet deleted successfully.")
}
