package dto

import (
	"time"

	"github.com/projectboard/project-task-api/internal/models"
)

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateProjectRequest is the payload for updating a project
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatedAtUTC time.Time `json:"created_at_utc"`
	OwnerID      string    `json:"owner_id"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:           project.ID,
		Name:         project.Name,
		Description:  project.Description,
		CreatedAtUTC: project.CreatedAt.UTC(),
		OwnerID:      project.OwnerID,
	}
}

// ToProjectDTOs converts a slice of projects preserving order
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
