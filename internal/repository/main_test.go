package repository

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Repository tests skipped: failed to load test config: %v", err)
		os.Exit(0)
	}

	testDB, err = database.Connect(cfg)
	if err != nil {
		log.Printf("Repository tests skipped: test database unavailable: %v", err)
		os.Exit(0)
	}

	os.Exit(m.Run())
}

// createTestUser inserts a user with a unique username/email pair.
func createTestUser(t *testing.T, prefix string) *models.User {
	t.Helper()
	ts := time.Now().UnixNano()
	user := &models.User{
		FullName: prefix,
		Username: fmt.Sprintf("%s_%d", prefix, ts),
		Email:    fmt.Sprintf("%s_%d@example.com", prefix, ts),
		Password: "hashed",
		IsActive: true,
		JoinedAt: time.Now().UTC(),
	}
	if err := testDB.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestProject(t *testing.T, author *models.User, title string, tags []string) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:       title,
		Description: "description for " + title,
		Tags:        tags,
		AuthorID:    author.ID,
		Author: models.ProjectAuthor{
			Name:     author.FullName,
			Username: author.Username,
			Avatar:   author.Avatar,
		},
	}
	if err := testDB.Create(project).Error; err != nil {
		t.Fatalf("create test project: %v", err)
	}
	return project
}
