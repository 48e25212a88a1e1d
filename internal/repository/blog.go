package repository

import (
	"context"
	"errors"
	"strings"

	"motoisle/internal/cache"
	"motoisle/internal/models"

	"gorm.io/gorm"
)

// BlogFilter narrows blog listings. Zero values mean "no constraint".
type BlogFilter struct {
	Category      string
	PublishedOnly bool
}

// BlogRepository defines the interface for blog post data operations
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context, filter BlogFilter) ([]models.BlogPost, error)
	ListFeatured(ctx context.Context) ([]models.BlogPost, error)
	Search(ctx context.Context, query string) ([]models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := cache.Aside(ctx, cache.BlogKey(slug), &post, cache.BlogTTL, func() error {
		return r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) List(ctx context.Context, filter BlogFilter) ([]models.BlogPost, error) {
	q := r.db.WithContext(ctx).Model(&models.BlogPost{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.PublishedOnly {
		q = q.Where("published = ?", true)
	}

	var posts []models.BlogPost
	err := q.Order("id ASC").Find(&posts).Error
	return posts, err
}

func (r *blogRepository) ListFeatured(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.WithContext(ctx).
		Where("featured = ? AND published = ?", true, true).
		Order("id ASC").
		Find(&posts).Error
	return posts, err
}

func (r *blogRepository) Search(ctx context.Context, query string) ([]models.BlogPost, error) {
	like := "%" + strings.ToLower(query) + "%"
	var posts []models.BlogPost
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ?", like).
		Order("id ASC").
		Find(&posts).Error
	return posts, err
}

func (r *blogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidateBlog(ctx, post.Slug)
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&post).Error; err != nil {
		return err
	}
	cache.InvalidateBlog(ctx, post.Slug)
	return nil
}

// IncrementViews bumps the view counter without touching the cached copy;
// the cache holds a slightly stale count until the TTL rolls over.
func (r *blogRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
