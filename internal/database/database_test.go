package database

import (
	"errors"
	"os"
	"testing"

	"devconnect/internal/config"
	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnect_TestEnvironment(t *testing.T) {
	os.Setenv("APP_ENV", "test")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsTest())

	db, err := Connect(cfg)
	require.NoError(t, err)

	t.Run("migrations applied", func(t *testing.T) {
		for _, model := range []any{
			&models.User{}, &models.Project{}, &models.Star{},
			&models.Follow{}, &models.Conversation{}, &models.Message{},
		} {
			assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
		}
	})

	t.Run("duplicate keys are translated", func(t *testing.T) {
		user := models.User{FullName: "A", Username: "dbtest", Email: "dbtest@example.com", Password: "x"}
		require.NoError(t, db.Create(&user).Error)

		dup := models.User{FullName: "B", Username: "dbtest", Email: "other@example.com", Password: "x"}
		err := db.Create(&dup).Error
		require.Error(t, err)
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	})
}
