package server

import (
	"fmt"

	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateTag handles POST /tags
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var in models.TagCreateInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if v := validation.ValidateTagCreate(in); len(v) > 0 {
		return respondViolations(c, v)
	}

	tag, err := s.tagService.Create(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// GetTags handles GET /tags?includePosts=; returns every tag, unpaginated.
func (s *Server) GetTags(c *fiber.Ctx) error {
	includePosts := parseBool(c, "includePosts", false)

	tags, err := s.tagService.GetAll(c.UserContext(), includePosts)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tags)
}

// GetTag handles GET /tags/:id?includePosts=
func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	includePosts := parseBool(c, "includePosts", true)

	tag, err := s.tagService.Get(c.UserContext(), id, includePosts)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tag)
}

// UpdateTag handles PUT /tags/:id
func (s *Server) UpdateTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in models.TagUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if v := validation.ValidateTagUpdate(in); len(v) > 0 {
		return respondViolations(c, v)
	}

	tag, err := s.tagService.Update(c.UserContext(), id, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tag)
}

// DeleteTag handles DELETE /tags/:id
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagService.Delete(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Tag %d deleted successfully", id),
	})
}
