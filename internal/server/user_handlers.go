package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SearchUsers handles GET /api/users. Without a query it lists users
// newest first; with ?q= it searches name, username and skills.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	users, total, err := s.identity.Search(c.Context(), c.Query("q"), page, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if limit <= 0 {
		limit = 10
	}
	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"pages": service.Pages(total, limit),
	})
}

// GetUserByUsername handles GET /api/users/:username.
func (s *Server) GetUserByUsername(c *fiber.Ctx) error {
	user, err := s.identity.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// UpdateUser handles PUT /api/users/:id.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var in service.UpdateProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewInvalidInputError("Invalid request body"))
	}

	user, err := s.identity.UpdateProfile(c.Context(), userID, targetID, in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// ToggleFollow handles POST /api/users/:id/follow.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	following, err := s.graph.ToggleFollow(c.Context(), userID, targetID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	message := "Unfollowed successfully"
	if following {
		message = "Followed successfully"
	}
	return c.JSON(fiber.Map{
		"message":   message,
		"following": following,
	})
}
