package services

import (
	"errors"
	"fmt"

	"github.com/projectboard/project-task-api/internal/authz"
	"github.com/projectboard/project-task-api/internal/models"
	"github.com/projectboard/project-task-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectAccessDenied = errors.New("user does not have access to this project")
	ErrNotProjectOwner     = errors.New("only the project owner can perform this action")
	ErrNameRequired        = errors.New("name is required")
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name        string
	Description string
	OwnerID     string
}

// UpdateProjectInput represents input for updating a project
type UpdateProjectInput struct {
	Name        string
	Description string
}

// ListAccessible returns the projects the user owns or is assigned a
// task in, newest first.
func (s *ProjectService) ListAccessible(userID string) ([]models.Project, error) {
	projects, err := s.projectRepo.ListAccessible(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project if the user may read it.
func (s *ProjectService) GetProject(projectID uint64, userID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID, "Tasks")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if !authz.CanAccessProject(userID, project) {
		return nil, ErrProjectAccessDenied
	}

	return project, nil
}

// CreateProject creates a new project owned by the caller.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject updates name and description. Owner only.
func (s *ProjectService) UpdateProject(projectID uint64, userID string, input UpdateProjectInput) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if !authz.CanMutateProject(userID, project) {
		return ErrNotProjectOwner
	}

	if input.Name == "" {
		return ErrNameRequired
	}

	project.Name = input.Name
	project.Description = input.Description

	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// DeleteProject deletes a project and all of its tasks. Owner only.
func (s *ProjectService) DeleteProject(projectID uint64, userID string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if !authz.CanMutateProject(userID, project) {
		return ErrNotProjectOwner
	}

	if err := s.projectRepo.Delete(project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
