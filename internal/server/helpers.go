package server

import (
	"strconv"

	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's id set by AuthRequired.
func currentUserID(c *fiber.Ctx) (uint, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return 0, models.NewUnauthorizedError("Authentication required")
	}
	return userID, nil
}

// parseIDParam parses a positive numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewInvalidInputError("Invalid " + name)
	}
	return uint(id), nil
}

// parsePagination reads page/limit query params, leaving clamping to
// the service layer.
func parsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 0)
	return page, limit
}
