package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/service"
)

type SubscriptionHandler struct {
	subs *service.SubscriptionService
}

func NewSubscriptionHandler(subs *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs}
}

// Toggle godoc
// @Summary Subscribe to or unsubscribe from a channel
// @Description Subscribing to your own channel is rejected.
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel (user) ID"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	user := GetAuthUser(c)
	result, err := h.subs.Toggle(c.Request.Context(), user.ID, c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Unsubscribed successfully."
	if result.Subscribed {
		message = "Subscribed successfully."
	}
	respond(c, http.StatusOK, result.Subscription, message)
}

// ListSubscribers godoc
// @Summary List a channel's subscribers
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel (user) ID"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.subs.ListChannelSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, subscribers, "Channel's subscriber list fetched successfully.")
}

// ListSubscribedChannels godoc
// @Summary List the channels a user subscribes to
// @Tags subscriptions
// @Produce json
// @Param subscriberId path string true "Subscriber (user) ID"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/subscriptions/u/{subscriberId} [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	channels, err := h.subs.ListSubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, channels, "Subscribed channel info fetched successfully.")
}
