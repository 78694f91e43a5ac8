package server

import (
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListProjects handles GET /api/projects. Supports ?q= for text search,
// ?tag= for tag filtering ("All" disables it) and ?author= to scope to
// one user's showcase.
func (s *Server) ListProjects(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	filter := repository.ProjectFilter{
		Search: c.Query("q"),
		Tag:    c.Query("tag"),
		Author: c.Query("author"),
	}

	projects, total, err := s.projects.List(c.Context(), filter, page, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if limit <= 0 {
		limit = 12
	}
	return c.JSON(fiber.Map{
		"projects": projects,
		"total":    total,
		"page":     page,
		"pages":    service.Pages(total, limit),
	})
}

// CreateProject handles POST /api/projects.
func (s *Server) CreateProject(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var in service.CreateProjectInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewInvalidInputError("Invalid request body"))
	}

	project, err := s.projects.Create(c.Context(), userID, in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Project created successfully",
		"project": project,
	})
}

// GetProject handles GET /api/projects/:id. Each hit counts a view.
func (s *Server) GetProject(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	project, err := s.projects.Get(c.Context(), projectID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"project": project})
}

// ToggleStar handles POST /api/projects/:id/star.
func (s *Server) ToggleStar(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	starred, stars, err := s.projects.ToggleStar(c.Context(), userID, projectID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	message := "Star removed"
	if starred {
		message = "Project starred"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"starred": starred,
		"stars":   stars,
	})
}
