package persistent

import (
	"errors"
	"fmt"

	"portfolio-cms/internal/entity"
	"portfolio-cms/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id int) (*entity.Post, error)
	List() ([]*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id int) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	postModel.ID = 0 // the database assigns the key

	if err := r.db.Create(postModel).Error; err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id int) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.First(&postModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return ToPostEntity(&postModel), nil
}

// List returns every post, latest first. Ordering is enforced here so
// that all consumers agree on it; id breaks ties within one timestamp.
func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Order("created_at DESC, id DESC").Find(&postModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Update writes the mutable columns only; id and created_at never
// leave the insert path.
func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)

	result := r.db.Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Select("title", "subject", "body", "images").
		Updates(postModel)
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(id int) error {
	result := r.db.Delete(&model.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}
