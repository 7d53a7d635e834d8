package server

import (
	"fmt"

	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var in models.UserCreateInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if v := validation.ValidateUserCreate(in); len(v) > 0 {
		return respondViolations(c, v)
	}

	user, err := s.userService.Create(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser handles GET /users/:id?includePosts=
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	includePosts := parseBool(c, "includePosts", true)

	user, err := s.userService.Get(c.UserContext(), id, includePosts)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// SearchUsers handles GET /users with OR-combined substring filters.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	skip, limit := parseSkipLimit(c)
	in := models.UserSearchInput{
		Nickname:     optionalQuery(c, "nickname"),
		Email:        optionalQuery(c, "email"),
		Location:     optionalQuery(c, "location"),
		JobTitle:     optionalQuery(c, "jobTitle"),
		IncludePosts: parseBool(c, "includePosts", false),
		Skip:         skip,
		Limit:        limit,
	}
	if v := validation.ValidateUserSearch(in); len(v) > 0 {
		return respondViolations(c, v)
	}

	users, err := s.userService.Search(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// UpdateUser handles PUT /users/:id with sparse-patch semantics: absent
// fields stay untouched, explicit nulls clear the nullable columns.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in models.UserUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if v := validation.ValidateUserUpdate(in); len(v) > 0 {
		return respondViolations(c, v)
	}

	user, err := s.userService.Update(c.UserContext(), id, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id; the user's posts and their tag
// associations go with them.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.Delete(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %d deleted successfully", id),
	})
}
