package server

import (
	"errors"
	"strconv"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseBool reads a boolean query parameter with a default for absent or
// unparseable values.
func parseBool(c *fiber.Ctx, name string, def bool) bool {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// optionalQuery returns a query parameter as *string, nil when absent or
// blank, so search filters keep absent-vs-present semantics.
func optionalQuery(c *fiber.Ctx, name string) *string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// parseSkipLimit reads the shared pagination parameters. The limit defaults
// to validation.DefaultLimit when absent; range enforcement is left to the
// validators so out-of-range values produce a field violation, not a silent
// clamp.
func parseSkipLimit(c *fiber.Ctx) (int, int) {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", validation.DefaultLimit)
	return skip, limit
}

// respondServiceError maps a service error onto its HTTP status.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// respondViolations renders validation violations as a 400 with the
// individual field problems attached.
func respondViolations(c *fiber.Ctx, v validation.Violations) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":      v.Error(),
		"code":       "VALIDATION_ERROR",
		"violations": v,
	})
}
