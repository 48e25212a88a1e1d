package service

import (
	"context"
	"strings"
	"time"

	"motoisle/internal/models"
	"motoisle/internal/repository"
	"motoisle/internal/validation"
)

type BlogService struct {
	blogRepo repository.BlogRepository
}

type CreateBlogPostInput struct {
	Slug      string
	Title     string
	Excerpt   string
	Content   string
	Author    string
	Category  string
	Tags      []string
	Published bool
	Featured  bool
}

type UpdateBlogPostInput struct {
	Title     string
	Excerpt   string
	Content   string
	Category  string
	Tags      []string
	Published *bool
	Featured  *bool
}

func NewBlogService(blogRepo repository.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// CreatePost validates and stores a new article. An empty slug is derived
// from the title.
func (s *BlogService) CreatePost(ctx context.Context, in CreateBlogPostInput) (*models.BlogPost, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	slug := in.Slug
	if slug == "" {
		slug = validation.Slugify(in.Title)
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("A post with this slug already exists")
	}

	post := &models.BlogPost{
		Slug:      slug,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Author:    in.Author,
		Category:  in.Category,
		Tags:      in.Tags,
		Published: in.Published,
		Featured:  in.Featured,
	}
	if in.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost resolves a published article by slug and counts the read.
func (s *BlogService) GetPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.Published {
		return nil, models.NewNotFoundError("Blog post", slug)
	}
	if err := s.blogRepo.IncrementViews(ctx, post.ID); err != nil {
		return nil, err
	}
	post.ViewCount++
	return post, nil
}

func (s *BlogService) ListPosts(ctx context.Context, category string) ([]models.BlogPost, error) {
	return s.blogRepo.List(ctx, repository.BlogFilter{
		Category:      category,
		PublishedOnly: true,
	})
}

func (s *BlogService) ListFeatured(ctx context.Context) ([]models.BlogPost, error) {
	return s.blogRepo.ListFeatured(ctx)
}

func (s *BlogService) SearchPosts(ctx context.Context, query string) ([]models.BlogPost, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.blogRepo.Search(ctx, query)
}

// UpdatePost applies a partial edit by slug. The slug itself is immutable so
// published URLs never break.
func (s *BlogService) UpdatePost(ctx context.Context, slug string, in UpdateBlogPostInput) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Blog post", slug)
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Excerpt != "" {
		post.Excerpt = in.Excerpt
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.Category != "" {
		post.Category = in.Category
	}
	if in.Tags != nil {
		post.Tags = in.Tags
	}
	if in.Featured != nil {
		post.Featured = *in.Featured
	}
	if in.Published != nil {
		if *in.Published && !post.Published {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Published = *in.Published
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) DeletePost(ctx context.Context, slug string) error {
	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if post == nil {
		return models.NewNotFoundError("Blog post", slug)
	}
	return s.blogRepo.Delete(ctx, post.ID)
}
