package repository

import (
	"context"
	"errors"
	"strings"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProjectFilter narrows a project listing. Zero values mean no filter;
// Tag additionally treats the sentinel "All" as no filter.
type ProjectFilter struct {
	Search string
	Tag    string
	Author string
}

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	// Create inserts the project and increments the author's cached
	// projects counter in the same transaction.
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	// GetAndCountView fetches the project and increments its view
	// counter by one. Every successful call counts a view.
	GetAndCountView(ctx context.Context, id uint) (*models.Project, error)
	List(ctx context.Context, filter ProjectFilter, limit, offset int) ([]models.Project, int64, error)
	// ToggleStar flips the star relation for (userID, projectID) and
	// keeps the project's cached star counter in sync, all in one
	// transaction. It returns the resulting starred state and the
	// authoritative post-toggle star count.
	ToggleStar(ctx context.Context, userID, projectID uint) (bool, int64, error)
}

// projectRepository implements ProjectRepository.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", project.AuthorID).
			UpdateColumn("projects_count", gorm.Expr("projects_count + ?", 1)).Error
	})
	if err != nil {
		return models.NewUnavailableError(err)
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Project", id)
		}
		return nil, models.NewUnavailableError(err)
	}
	return &project, nil
}

func (r *projectRepository) GetAndCountView(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Project{}).Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
			return err
		}
		project.Views++
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Project", id)
		}
		return nil, models.NewUnavailableError(err)
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, filter ProjectFilter, limit, offset int) ([]models.Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Project{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"lower(title) LIKE ? OR lower(description) LIKE ? OR lower(tags) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filter.Tag != "" && filter.Tag != "All" {
		// Tags are stored as a JSON array of strings; membership is an
		// exact element match against the serialized form.
		q = q.Where("tags LIKE ?", `%"`+filter.Tag+`"%`)
	}

	if filter.Author != "" {
		q = q.Where("author_username = ?", filter.Author)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, models.NewUnavailableError(err)
	}

	var projects []models.Project
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, models.NewUnavailableError(err)
	}
	return projects, total, nil
}

func (r *projectRepository) ToggleStar(ctx context.Context, userID, projectID uint) (bool, int64, error) {
	var starred bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND project_id = ?", userID, projectID).
			Delete(&models.Star{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			starred = false
			return tx.Model(&models.Project{}).Where("id = ?", projectID).
				UpdateColumn("stars", gorm.Expr("stars - ?", 1)).Error
		}

		if err := tx.Create(&models.Star{UserID: userID, ProjectID: projectID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a race against an identical toggle; the relation
				// exists and the winner adjusted the counter.
				starred = true
				return nil
			}
			return err
		}

		starred = true
		return tx.Model(&models.Project{}).Where("id = ?", projectID).
			UpdateColumn("stars", gorm.Expr("stars + ?", 1)).Error
	})
	if err != nil {
		return false, 0, models.NewUnavailableError(err)
	}

	// Re-read the authoritative post-toggle count.
	var stars int64
	err = r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", projectID).
		Select("stars").Scan(&stars).Error
	if err != nil {
		return false, 0, models.NewUnavailableError(err)
	}

	return starred, stars, nil
}
