package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/vidstream/backend/internal/service"
)

// Handlers collects everything the router mounts. OIDC is nil when no
// provider is configured; RelatedEnabled gates the similarity route.
type Handlers struct {
	Users          *UserHandler
	OIDC           *OIDCHandler
	Videos         *VideoHandler
	RelatedEnabled bool
	Comments       *CommentHandler
	Likes          *LikeHandler
	Subscriptions  *SubscriptionHandler
	Playlists      *PlaylistHandler
	Tweets         *TweetHandler
	Dashboard      *DashboardHandler
}

// NewRouter wires every route. Everything under /api/v1 sits behind the
// session middleware except register, login, refresh-token and OIDC.
func NewRouter(auth *service.AuthService, h Handlers, corsOrigins []string) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware(corsOrigins))

	router.GET("/", Root)
	router.GET("/ping", Ping)
	router.GET("/openapi.json", OpenAPIDoc)

	authRequired := AuthMiddleware(auth)
	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("/register", h.Users.Register)
		users.POST("/login", h.Users.Login)
		users.POST("/refresh-token", h.Users.RefreshToken)
		if h.OIDC != nil {
			users.GET("/oidc/login", h.OIDC.Login)
			users.GET("/oidc/callback", h.OIDC.Callback)
		}

		users.POST("/logout", authRequired, h.Users.Logout)
		users.POST("/change-password", authRequired, h.Users.ChangePassword)
		users.GET("/current-user", authRequired, h.Users.CurrentUser)
		users.PATCH("/update-account", authRequired, h.Users.UpdateAccount)
		users.PATCH("/avatar", authRequired, h.Users.UpdateAvatar)
		users.PATCH("/cover-image", authRequired, h.Users.UpdateCoverImage)
		users.GET("/c/:userName", authRequired, h.Users.ChannelProfile)
		users.GET("/history", authRequired, h.Users.WatchHistory)
		users.PATCH("/add-to-watch-history/:videoId", authRequired, h.Users.AddToWatchHistory)
	}

	videos := v1.Group("/videos", authRequired)
	{
		videos.GET("", h.Videos.List)
		videos.POST("", h.Videos.Publish)
		videos.GET("/:videoId", h.Videos.Get)
		videos.PATCH("/:videoId", h.Videos.Update)
		videos.DELETE("/:videoId", h.Videos.Delete)
		videos.PATCH("/toggle/publish/:videoId", h.Videos.TogglePublish)
		if h.RelatedEnabled {
			videos.GET("/:videoId/related", h.Videos.Related)
		}
	}

	comments := v1.Group("/comments", authRequired)
	{
		comments.GET("/:videoId", h.Comments.List)
		comments.POST("/:videoId", h.Comments.Add)
		comments.PATCH("/c/:commentId", h.Comments.Update)
		comments.DELETE("/c/:commentId", h.Comments.Delete)
	}

	likes := v1.Group("/likes", authRequired)
	{
		likes.POST("/toggle/v/:videoId", h.Likes.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", h.Likes.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", h.Likes.ToggleTweetLike)
		likes.GET("/videos", h.Likes.ListLikedVideos)
	}

	subscriptions := v1.Group("/subscriptions", authRequired)
	{
		subscriptions.POST("/c/:channelId", h.Subscriptions.Toggle)
		subscriptions.GET("/c/:channelId", h.Subscriptions.ListSubscribers)
		subscriptions.GET("/u/:subscriberId", h.Subscriptions.ListSubscribedChannels)
	}

	playlist := v1.Group("/playlist", authRequired)
	{
		playlist.POST("", h.Playlists.Create)
		playlist.GET("/user/:userId", h.Playlists.ListUserPlaylists)
		playlist.GET("/:playlistId", h.Playlists.Get)
		playlist.PATCH("/:playlistId", h.Playlists.Update)
		playlist.DELETE("/:playlistId", h.Playlists.Delete)
		playlist.PATCH("/add/:videoId/:playlistId", h.Playlists.AddVideo)
		playlist.PATCH("/remove/:videoId/:playlistId", h.Playlists.RemoveVideo)
	}

	tweets := v1.Group("/tweets", authRequired)
	{
		tweets.POST("", h.Tweets.Create)
		tweets.GET("/user/:userId", h.Tweets.ListUserTweets)
		tweets.PATCH("/:tweetId", h.Tweets.Update)
		tweets.DELETE("/:tweetId", h.Tweets.Delete)
	}

	dashboard := v1.Group("/dashboard", authRequired)
	{
		dashboard.GET("/stats", h.Dashboard.Stats)
		dashboard.GET("/videos", h.Dashboard.Videos)
	}

	return router
}
