package main

import (
	"fmt"

	"portfolio-cms/internal/entity"
	"portfolio-cms/internal/repo/persistent"
	"portfolio-cms/pkg/config"
	"portfolio-cms/pkg/database"
	"portfolio-cms/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedPosts(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedPosts(db *gorm.DB, log *logger.Logger) error {
	repo := persistent.NewPostRepository(db)

	samplePosts := []entity.Post{
		{
			Title:   "Hello, world",
			Subject: "First post on the new site",
			Body:    "Welcome to the blog. This post exists so the list page is never empty in development.",
			Images:  []string{},
		},
		{
			Title:   "Building the gallery",
			Subject: "Notes on direct-to-storage uploads",
			Body:    "Images upload straight from the browser to object storage using short-lived signed URLs, so the server never proxies the bytes.",
			Images:  []string{"https://example.com/sample-gallery.jpg"},
		},
		{
			Title:   "Why reverse-chronological",
			Subject: "Ordering decisions",
			Body:    "The list endpoint always returns the latest post first. Enforcing that in the store keeps every consumer consistent.",
			Images:  []string{},
		},
	}

	for i := range samplePosts {
		post := samplePosts[i]

		var count int64
		if err := db.Table("posts").Where("title = ?", post.Title).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check for existing post: %w", err)
		}
		if count > 0 {
			log.Info("Post %q already exists, skipping", post.Title)
			continue
		}

		if err := repo.Create(&post); err != nil {
			log.Error("Failed to create post %q: %v", post.Title, err)
			continue
		}
		log.Info("Created post %d: %s", post.ID, post.Title)
	}

	return nil
}
