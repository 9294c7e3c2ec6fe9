package main

import (
	"portfolio-cms/internal/app"
	"portfolio-cms/pkg/cache"
	"portfolio-cms/pkg/config"
	"portfolio-cms/pkg/database"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/pkg/queue"
	"portfolio-cms/pkg/s3"
)

// @title           Portfolio CMS API
// @version         1.0
// @description     Blog content management and session API for the portfolio site

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Refuse to issue tokens with the placeholder secret
	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
