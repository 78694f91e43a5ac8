package service

import (
	"context"
	"testing"

	"devconnect/internal/models"
	"devconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectRepoStub struct {
	createFn          func(context.Context, *models.Project) error
	getByIDFn         func(context.Context, uint) (*models.Project, error)
	getAndCountViewFn func(context.Context, uint) (*models.Project, error)
	listFn            func(context.Context, repository.ProjectFilter, int, int) ([]models.Project, int64, error)
	toggleStarFn      func(context.Context, uint, uint) (bool, int64, error)
}

func (s *projectRepoStub) Create(ctx context.Context, p *models.Project) error {
	return s.createFn(ctx, p)
}
func (s *projectRepoStub) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	return s.getByIDFn(ctx, id)
}
func (s *projectRepoStub) GetAndCountView(ctx context.Context, id uint) (*models.Project, error) {
	return s.getAndCountViewFn(ctx, id)
}
func (s *projectRepoStub) List(ctx context.Context, f repository.ProjectFilter, limit, offset int) ([]models.Project, int64, error) {
	return s.listFn(ctx, f, limit, offset)
}
func (s *projectRepoStub) ToggleStar(ctx context.Context, userID, projectID uint) (bool, int64, error) {
	return s.toggleStarFn(ctx, userID, projectID)
}

func noopProjectRepo() *projectRepoStub {
	return &projectRepoStub{
		createFn: func(context.Context, *models.Project) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Project, error) {
			return &models.Project{ID: id}, nil
		},
		getAndCountViewFn: func(_ context.Context, id uint) (*models.Project, error) {
			return &models.Project{ID: id}, nil
		},
		listFn: func(context.Context, repository.ProjectFilter, int, int) ([]models.Project, int64, error) {
			return nil, 0, nil
		},
		toggleStarFn: func(context.Context, uint, uint) (bool, int64, error) { return true, 1, nil },
	}
}

func validProjectInput() CreateProjectInput {
	return CreateProjectInput{
		Title:       "devconnect",
		Description: "A social network for developers",
		Tags:        []string{"go", "web"},
	}
}

func TestProjectService_Create(t *testing.T) {
	t.Parallel()

	t.Run("snapshots author fields", func(t *testing.T) {
		t.Parallel()
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{
				ID:       id,
				FullName: "Alice Doe",
				Username: "alice",
				Avatar:   "https://example.com/a.png",
			}, nil
		}
		svc := NewProjectService(noopProjectRepo(), users)

		project, err := svc.Create(context.Background(), 1, validProjectInput())
		require.NoError(t, err)
		assert.Equal(t, uint(1), project.AuthorID)
		assert.Equal(t, "Alice Doe", project.Author.Name)
		assert.Equal(t, "alice", project.Author.Username)
		assert.Equal(t, "https://example.com/a.png", project.Author.Avatar)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		svc := NewProjectService(noopProjectRepo(), noopUserRepo())
		for _, mutate := range []func(*CreateProjectInput){
			func(in *CreateProjectInput) { in.Title = "" },
			func(in *CreateProjectInput) { in.Description = "" },
			func(in *CreateProjectInput) { in.Tags = nil },
		} {
			in := validProjectInput()
			mutate(&in)
			_, err := svc.Create(context.Background(), 1, in)
			assert.True(t, models.IsKind(err, models.KindInvalidInput))
		}
	})

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewProjectService(noopProjectRepo(), users)
		_, err := svc.Create(context.Background(), 99, validProjectInput())
		assert.True(t, models.IsNotFound(err))
	})
}

func TestProjectService_Get_CountsView(t *testing.T) {
	t.Parallel()
	var views int64
	projects := noopProjectRepo()
	projects.getAndCountViewFn = func(_ context.Context, id uint) (*models.Project, error) {
		views++
		return &models.Project{ID: id, Views: views}, nil
	}
	svc := NewProjectService(projects, noopUserRepo())

	p, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Views)

	p, err = svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.Views, "each fetch counts a view")
}

func TestProjectService_List_PageDefaults(t *testing.T) {
	t.Parallel()
	var gotLimit, gotOffset int
	projects := noopProjectRepo()
	projects.listFn = func(_ context.Context, _ repository.ProjectFilter, limit, offset int) ([]models.Project, int64, error) {
		gotLimit, gotOffset = limit, offset
		return nil, 0, nil
	}
	svc := NewProjectService(projects, noopUserRepo())

	_, _, err := svc.List(context.Background(), repository.ProjectFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, gotLimit)
	assert.Equal(t, 0, gotOffset)

	_, _, err = svc.List(context.Background(), repository.ProjectFilter{}, 2, 200)
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit, "limit is clamped")
	assert.Equal(t, 100, gotOffset)
}

func TestProjectService_ToggleStar(t *testing.T) {
	t.Parallel()

	t.Run("missing project", func(t *testing.T) {
		t.Parallel()
		projects := noopProjectRepo()
		projects.getByIDFn = func(_ context.Context, id uint) (*models.Project, error) {
			return nil, models.NewNotFoundError("Project", id)
		}
		svc := NewProjectService(projects, noopUserRepo())
		_, _, err := svc.ToggleStar(context.Background(), 1, 99)
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("returns state and count", func(t *testing.T) {
		t.Parallel()
		svc := NewProjectService(noopProjectRepo(), noopUserRepo())
		starred, stars, err := svc.ToggleStar(context.Background(), 1, 1)
		require.NoError(t, err)
		assert.True(t, starred)
		assert.Equal(t, int64(1), stars)
	})
}
