package database

import (
	"fmt"
	"log"

	"github.com/projectboard/project-task-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the secondary indexes the access-check queries rely on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		table   string
		name    string
		columns string
	}{
		// Accessible-projects filtering joins these three columns.
		{&models.Project{}, "projects", "idx_projects_owner_id", "owner_id"},
		{&models.Task{}, "tasks", "idx_tasks_project_id", "project_id"},
		{&models.Task{}, "tasks", "idx_tasks_assignee_id", "assignee_id"},
	}

	migrator := db.Migrator()

	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
