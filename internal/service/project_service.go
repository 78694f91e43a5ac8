package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProjectService provides project showcase logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService returns a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput carries the fields accepted at project creation.
type CreateProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	DemoURL     string   `json:"demoUrl"`
	GithubURL   string   `json:"githubUrl"`
}

// Create validates the input, snapshots the author's public fields into
// the project, and persists it together with the author's projects
// counter bump.
func (s *ProjectService) Create(ctx context.Context, authorID uint, in CreateProjectInput) (*models.Project, error) {
	switch {
	case in.Title == "":
		return nil, models.NewInvalidInputError("title is required")
	case in.Description == "":
		return nil, models.NewInvalidInputError("description is required")
	case len(in.Tags) == 0:
		return nil, models.NewInvalidInputError("tags is required")
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Tags:        in.Tags,
		AuthorID:    author.ID,
		Author: models.ProjectAuthor{
			Name:     author.FullName,
			Username: author.Username,
			Avatar:   author.Avatar,
		},
		DemoURL:   in.DemoURL,
		GithubURL: in.GithubURL,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Get fetches a project by id. Every successful read counts a view.
func (s *ProjectService) Get(ctx context.Context, projectID uint) (*models.Project, error) {
	return s.projectRepo.GetAndCountView(ctx, projectID)
}

// List returns projects matching the filter, sorted newest first, plus
// the total match count.
func (s *ProjectService) List(ctx context.Context, filter repository.ProjectFilter, page, limit int) ([]models.Project, int64, error) {
	page, limit = normalizePage(page, limit, defaultProjectPageSize)
	return s.projectRepo.List(ctx, filter, limit, (page-1)*limit)
}

// ToggleStar flips the star state for (userID, projectID) and returns
// the resulting state plus the authoritative post-toggle star count.
func (s *ProjectService) ToggleStar(ctx context.Context, userID, projectID uint) (bool, int64, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return false, 0, err
	}

	return s.projectRepo.ToggleStar(ctx, userID, projectID)
}
