package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"portfolio-cms/internal/entity"
	"portfolio-cms/internal/repo/persistent"
	"portfolio-cms/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const postCacheTTL = 24 * time.Hour

// UpdatePost is a partial patch; nil fields are left alone. ID and
// CreatedAt are accepted in the payload so that a client echoing the
// full document back works, but changing either is rejected.
type UpdatePost struct {
	ID        *int       `json:"id"`
	Title     *string    `json:"title"`
	Subject   *string    `json:"subject"`
	Body      *string    `json:"body"`
	Images    *[]string  `json:"images"`
	CreatedAt *time.Time `json:"createdAt"`
}

type PostUseCase interface {
	CreatePost(title, subject, body string, images []string) (*entity.Post, error)
	GetPost(id int) (*entity.Post, error)
	ListPosts() ([]*entity.Post, error)
	UpdatePost(id int, patch UpdatePost) (*entity.Post, error)
	DeletePost(id int) (*entity.Post, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, redisClient *redis.Client, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// validatePostFields is the schema check for a post, applied before
// anything reaches the store.
func validatePostFields(title, subject, body string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if strings.TrimSpace(subject) == "" {
		return fmt.Errorf("%w: subject is required", entity.ErrValidation)
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: body is required", entity.ErrValidation)
	}
	return nil
}

func (uc *postUseCase) CreatePost(title, subject, body string, images []string) (*entity.Post, error) {
	if err := validatePostFields(title, subject, body); err != nil {
		return nil, err
	}

	if images == nil {
		images = []string{}
	}

	post := &entity.Post{
		Title:   title,
		Subject: subject,
		Body:    body,
		Images:  images,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.cachePost(post)
	return post, nil
}

func (uc *postUseCase) GetPost(id int) (*entity.Post, error) {
	if post := uc.cachedPost(id); post != nil {
		return post, nil
	}

	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	uc.cachePost(post)
	return post, nil
}

func (uc *postUseCase) ListPosts() ([]*entity.Post, error) {
	return uc.postRepo.List()
}

func (uc *postUseCase) UpdatePost(id int, patch UpdatePost) (*entity.Post, error) {
	if patch.ID != nil && *patch.ID != id {
		return nil, fmt.Errorf("%w: id is immutable", entity.ErrValidation)
	}

	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.CreatedAt != nil && !patch.CreatedAt.Equal(post.CreatedAt) {
		return nil, fmt.Errorf("%w: createdAt is immutable", entity.ErrValidation)
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Subject != nil {
		post.Subject = *patch.Subject
	}
	if patch.Body != nil {
		post.Body = *patch.Body
	}
	if patch.Images != nil {
		post.Images = *patch.Images
		if post.Images == nil {
			post.Images = []string{}
		}
	}

	// The patched document must still satisfy the schema.
	if err := validatePostFields(post.Title, post.Subject, post.Body); err != nil {
		return nil, err
	}

	if err := uc.postRepo.Update(post); err != nil {
		return nil, err
	}

	uc.invalidatePost(id)
	return post, nil
}

func (uc *postUseCase) DeletePost(id int) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.postRepo.Delete(id); err != nil {
		return nil, err
	}

	uc.invalidatePost(id)
	return post, nil
}

func (uc *postUseCase) cachePost(post *entity.Post) {
	if uc.redisClient == nil {
		return
	}

	raw, err := json.Marshal(post)
	if err != nil {
		return
	}

	ctx := context.Background()
	key := fmt.Sprintf("post:%d", post.ID)
	if err := uc.redisClient.Set(ctx, key, raw, postCacheTTL).Err(); err != nil {
		uc.logger.Warn("Failed to cache post %d: %v", post.ID, err)
	}
}

func (uc *postUseCase) cachedPost(id int) *entity.Post {
	if uc.redisClient == nil {
		return nil
	}

	ctx := context.Background()
	raw, err := uc.redisClient.Get(ctx, fmt.Sprintf("post:%d", id)).Bytes()
	if err != nil {
		return nil
	}

	var post entity.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil
	}
	return &post
}

func (uc *postUseCase) invalidatePost(id int) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	if err := uc.redisClient.Del(ctx, fmt.Sprintf("post:%d", id)).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate cached post %d: %v", id, err)
	}
}
