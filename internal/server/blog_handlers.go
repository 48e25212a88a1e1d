package server

import (
	"motoisle/internal/models"
	"motoisle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// blogEnabled reports whether the blog surface is turned on for this request.
func (s *Server) blogEnabled(c *fiber.Ctx) bool {
	return s.featureFlags.Enabled("blog", currentUserID(c))
}

// GetBlogPosts handles GET /api/blog
// @Summary List published articles
// @Tags blog
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} models.BlogPost
// @Router /blog [get]
func (s *Server) GetBlogPosts(c *fiber.Ctx) error {
	if !s.blogEnabled(c) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Blog", "posts"))
	}

	posts, err := s.blogService.ListPosts(c.Context(), c.Query("category"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(posts)
}

// GetFeaturedBlogPosts handles GET /api/blog/featured
func (s *Server) GetFeaturedBlogPosts(c *fiber.Ctx) error {
	if !s.blogEnabled(c) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Blog", "featured"))
	}

	posts, err := s.blogService.ListFeatured(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(posts)
}

// SearchBlogPosts handles GET /api/blog/search
func (s *Server) SearchBlogPosts(c *fiber.Ctx) error {
	if !s.blogEnabled(c) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Blog", "search"))
	}

	posts, err := s.blogService.SearchPosts(c.Context(), c.Query("q"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetBlogPost handles GET /api/blog/:slug
// @Summary Read an article
// @Description Fetch a published article by slug; each read counts a view
// @Tags blog
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} models.ErrorResponse
// @Router /blog/{slug} [get]
func (s *Server) GetBlogPost(c *fiber.Ctx) error {
	if !s.blogEnabled(c) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Blog post", c.Params("slug")))
	}

	post, err := s.blogService.GetPost(c.Context(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// CreateBlogPost handles POST /api/admin/blog
func (s *Server) CreateBlogPost(c *fiber.Ctx) error {
	var req struct {
		Slug      string   `json:"slug"`
		Title     string   `json:"title"`
		Excerpt   string   `json:"excerpt"`
		Content   string   `json:"content"`
		Author    string   `json:"author"`
		Category  string   `json:"category"`
		Tags      []string `json:"tags"`
		Published *bool    `json:"published"`
		Featured  bool     `json:"featured"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post, err := s.blogService.CreatePost(c.Context(), service.CreateBlogPostInput{
		Slug:      req.Slug,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Author:    req.Author,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: published,
		Featured:  req.Featured,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdateBlogPost handles PUT /api/admin/blog/:slug
func (s *Server) UpdateBlogPost(c *fiber.Ctx) error {
	var req struct {
		Title     string   `json:"title"`
		Excerpt   string   `json:"excerpt"`
		Content   string   `json:"content"`
		Category  string   `json:"category"`
		Tags      []string `json:"tags"`
		Published *bool    `json:"published"`
		Featured  *bool    `json:"featured"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.blogService.UpdatePost(c.Context(), c.Params("slug"), service.UpdateBlogPostInput{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: req.Published,
		Featured:  req.Featured,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeleteBlogPost handles DELETE /api/admin/blog/:slug
func (s *Server) DeleteBlogPost(c *fiber.Ctx) error {
	if err := s.blogService.DeletePost(c.Context(), c.Params("slug")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Blog post deleted"})
}
