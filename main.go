package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/vidstream/backend/internal/client"
	"github.com/vidstream/backend/internal/config"
	"github.com/vidstream/backend/internal/db"
	"github.com/vidstream/backend/internal/handler"
	"github.com/vidstream/backend/internal/service"

	_ "github.com/vidstream/backend/docs"
)

// @title vidstream backend API
// @version 1.0
// @description Video sharing platform backend.
// @BasePath /
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	media, err := client.NewMediaClient(cfg.Media)
	if err != nil {
		log.Fatalf("media client: %v", err)
	}

	authSvc, err := service.NewAuthService(store, cfg.Auth)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	// Related-videos search needs an embedding backend; without a key the
	// feature stays off and publishing skips embedding.
	var relatedSvc *service.RelatedService
	if cfg.AI.APIKey != "" {
		embeddings, err := client.NewEmbeddingClient(cfg.AI)
		if err != nil {
			log.Fatalf("embedding client: %v", err)
		}
		if err := store.EnsureEmbeddingSchema(ctx); err != nil {
			log.Fatalf("embedding schema: %v", err)
		}
		relatedSvc = service.NewRelatedService(store, embeddings)
	}

	var embedder service.VideoEmbedder
	if relatedSvc != nil {
		embedder = relatedSvc
	}

	userSvc := service.NewUserService(store, media)
	videoSvc := service.NewVideoService(store, media, embedder)
	commentSvc := service.NewCommentService(store)
	likeSvc := service.NewLikeService(store)
	subscriptionSvc := service.NewSubscriptionService(store)
	playlistSvc := service.NewPlaylistService(store)
	tweetSvc := service.NewTweetService(store)
	dashboardSvc := service.NewDashboardService(store)

	oidcSvc, err := service.NewOIDCService(ctx, cfg.OIDC, store, authSvc)
	if err != nil {
		log.Fatalf("oidc: %v", err)
	}

	handlers := handler.Handlers{
		Users:          handler.NewUserHandler(userSvc, authSvc),
		Videos:         handler.NewVideoHandler(videoSvc, relatedSvc),
		RelatedEnabled: relatedSvc != nil,
		Comments:       handler.NewCommentHandler(commentSvc),
		Likes:          handler.NewLikeHandler(likeSvc),
		Subscriptions:  handler.NewSubscriptionHandler(subscriptionSvc),
		Playlists:      handler.NewPlaylistHandler(playlistSvc),
		Tweets:         handler.NewTweetHandler(tweetSvc),
		Dashboard:      handler.NewDashboardHandler(dashboardSvc),
	}
	if oidcSvc != nil {
		handlers.OIDC = handler.NewOIDCHandler(oidcSvc, authSvc)
	}

	router := handler.NewRouter(authSvc, handlers, cfg.CORS.AllowedOrigins)

	log.Printf("listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
