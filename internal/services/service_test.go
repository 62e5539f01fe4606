package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/projectboard/project-task-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, name, ownerID string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:        name,
		Description: "Test Description",
		OwnerID:     ownerID,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func createTestTask(t *testing.T, db *gorm.DB, title string, projectID uint64, assigneeID *string) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:       title,
		Description: "Test Description",
		Status:      models.TaskStatusTodo,
		ProjectID:   projectID,
		AssigneeID:  assigneeID,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}
