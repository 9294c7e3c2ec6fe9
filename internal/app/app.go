package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpctrl "portfolio-cms/internal/controller/http"
	"portfolio-cms/internal/repo/persistent"
	"portfolio-cms/internal/usecase"
	"portfolio-cms/pkg/config"
	"portfolio-cms/pkg/jwt"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/pkg/middleware"
	"portfolio-cms/pkg/queue"
	"portfolio-cms/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "portfolio-cms/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, redisClient, log)
	uploadUseCase := usecase.NewUploadUseCase(s3Client, log)
	contactUseCase := usecase.NewContactUseCase(queueClient, log)

	// Initialize HTTP handlers
	postHandler := httpctrl.NewPostHandler(postUseCase, log)
	authHandler := httpctrl.NewAuthHandler(jwtService, log)
	uploadHandler := httpctrl.NewUploadHandler(uploadUseCase, log)
	contactHandler := httpctrl.NewContactHandler(contactUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.POST("/contact", contactHandler.SubmitMessage)

		// The upload broker does its own cookie check, so an expired
		// cookie reaches it instead of bouncing off the route guard.
		api.POST("/uploads", uploadHandler.CreateUploadURL)

		// Public read path for the blog pages
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RouteGuard(jwtService))
	{
		adminAPI := admin.Group("/api")
		{
			adminAPI.GET("/posts", postHandler.ListPosts)
			adminAPI.POST("/posts", postHandler.CreatePost)
			adminAPI.GET("/posts/:id", postHandler.GetPost)
			adminAPI.PUT("/posts/:id", postHandler.UpdatePost)
			adminAPI.DELETE("/posts/:id", postHandler.DeletePost)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Portfolio CMS starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Portfolio CMS exited")
}
