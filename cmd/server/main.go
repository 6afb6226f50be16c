package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"simplechat/internal/config"
	"simplechat/internal/database"
	"simplechat/internal/handlers"
	"simplechat/internal/repository"
	"simplechat/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Raw index pass uses pg_indexes, postgres only
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.GetDB())
	postRepo := repository.NewPostRepository(database.GetDB())
	replyRepo := repository.NewReplyRepository(database.GetDB())
	likeRepo := repository.NewLikeRepository(database.GetDB())

	// Initialize services
	accountService := services.NewAccountService(userRepo)
	postService := services.NewPostService(postRepo)
	replyService := services.NewReplyService(replyRepo)
	likeService := services.NewLikeService(likeRepo)
	searchService := services.NewSearchService(postRepo, replyRepo)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	postHandler := handlers.NewPostHandler(postService)
	replyHandler := handlers.NewReplyHandler(replyService)
	likeHandler := handlers.NewLikeHandler(likeService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "simplechat API is running",
		})
	})

	// Identity travels in request bodies; every route is public.
	r.POST("/register", accountHandler.Register)
	r.POST("/login", accountHandler.Login)

	r.GET("/posts", postHandler.ListPosts)
	r.POST("/posts", postHandler.CreatePost)
	r.DELETE("/posts/:id", postHandler.DeletePost)

	r.POST("/like", likeHandler.Like)
	r.DELETE("/like", likeHandler.Unlike)

	r.POST("/reply", replyHandler.CreateReply)
	r.GET("/reply", replyHandler.ListReplies)

	r.GET("/search", searchHandler.Search)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
