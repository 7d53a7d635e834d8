package server

import (
	"fmt"

	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /posts?authorId=. The author must exist and any
// requested tag ids must all resolve, otherwise nothing is created.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	authorID := c.QueryInt("authorId", 0)
	if authorID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid author ID"))
	}

	var in models.PostCreateInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if v := validation.ValidatePostCreate(in); len(v) > 0 {
		return respondViolations(c, v)
	}

	post, err := s.postService.Create(c.UserContext(), uint(authorID), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /posts/:id?includeAuthor=&includeTags=
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	includeAuthor := parseBool(c, "includeAuthor", true)
	includeTags := parseBool(c, "includeTags", true)

	post, err := s.postService.Get(c.UserContext(), id, includeAuthor, includeTags)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// SearchPosts handles GET /posts with OR-combined title/content filters.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	skip, limit := parseSkipLimit(c)
	in := models.PostSearchInput{
		Title:         optionalQuery(c, "title"),
		Content:       optionalQuery(c, "content"),
		IncludeAuthor: parseBool(c, "includeAuthor", true),
		IncludeTags:   parseBool(c, "includeTags", false),
		Skip:          skip,
		Limit:         limit,
	}
	if v := validation.ValidatePostSearch(in); len(v) > 0 {
		return respondViolations(c, v)
	}

	posts, err := s.postService.Search(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// UpdatePost handles PUT /posts/:id. The tag_ids field follows the sparse
// patch contract: absent keeps associations, [] clears them, a non-empty
// list replaces the set all-or-nothing.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in models.PostUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if v := validation.ValidatePostUpdate(in); len(v) > 0 {
		return respondViolations(c, v)
	}

	post, err := s.postService.Update(c.UserContext(), id, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Post %d deleted successfully", id),
	})
}
