package persistent

import (
	"testing"
	"time"

	"portfolio-cms/internal/entity"
	"portfolio-cms/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PostModel{}))
	return db
}

func newPost(title string) *entity.Post {
	return &entity.Post{
		Title:   title,
		Subject: "subject of " + title,
		Body:    "body of " + title,
		Images:  []string{},
	}
}

func TestCreate_AssignsIDAndCreatedAt(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	start := time.Now().Add(-time.Second)

	post := newPost("first")
	err := repo.Create(post)

	assert.NoError(t, err)
	assert.Greater(t, post.ID, 0)
	assert.False(t, post.CreatedAt.Before(start))
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	post := &entity.Post{
		Title:   "trip notes",
		Subject: "a short excerpt",
		Body:    "first paragraph\n\nsecond paragraph",
		Images:  []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	}
	require.NoError(t, repo.Create(post))

	got, err := repo.GetByID(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.Subject, got.Subject)
	assert.Equal(t, post.Body, got.Body)
	// Insertion order is display order
	assert.Equal(t, post.Images, got.Images)
	assert.WithinDuration(t, post.CreatedAt, got.CreatedAt, time.Second)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	_, err := repo.GetByID(999)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestList_Empty(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	posts, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, posts, 0)
}

func TestList_LatestFirst(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	a := newPost("A")
	b := newPost("B")
	c := newPost("C")
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))
	require.NoError(t, repo.Create(c))

	posts, err := repo.List()
	assert.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "C", posts[0].Title)
	assert.Equal(t, "B", posts[1].Title)
	assert.Equal(t, "A", posts[2].Title)
}

func TestUpdate_ChangesOnlySuppliedColumns(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	post := &entity.Post{
		Title:   "original title",
		Subject: "original subject",
		Body:    "original body",
		Images:  []string{"https://cdn.example.com/a.jpg"},
	}
	require.NoError(t, repo.Create(post))

	post.Title = "updated title"
	require.NoError(t, repo.Update(post))

	got, err := repo.GetByID(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, "updated title", got.Title)
	assert.Equal(t, "original subject", got.Subject)
	assert.Equal(t, "original body", got.Body)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, got.Images)
	assert.WithinDuration(t, post.CreatedAt, got.CreatedAt, time.Second)
}

func TestUpdate_CreatedAtStaysPut(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	post := newPost("immutable")
	require.NoError(t, repo.Create(post))
	created := post.CreatedAt

	// Even a hostile entity value must not reach the created_at column
	post.CreatedAt = created.Add(48 * time.Hour)
	post.Body = "new body"
	require.NoError(t, repo.Update(post))

	got, err := repo.GetByID(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, "new body", got.Body)
	assert.WithinDuration(t, created, got.CreatedAt, time.Second)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	post := newPost("ghost")
	post.ID = 42
	err := repo.Update(post)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestDelete_ThenGetFails(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	post := newPost("short lived")
	require.NoError(t, repo.Create(post))

	assert.NoError(t, repo.Delete(post.ID))

	_, err := repo.GetByID(post.ID)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)

	// Delete is irreversible, a second call finds nothing
	assert.ErrorIs(t, repo.Delete(post.ID), entity.ErrPostNotFound)
}

func TestDelete_IDNeverReused(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	first := newPost("first")
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Delete(first.ID))

	second := newPost("second")
	require.NoError(t, repo.Create(second))
	assert.Greater(t, second.ID, first.ID)
}
