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
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskAccessDenied = errors.New("user does not have access to this task")
	ErrNotTaskOwner     = errors.New("only the project owner can perform this action")
	ErrOutOfScopeUpdate = errors.New("assignee may only change the task status")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrAssigneeNotFound = errors.New("assignee does not reference an existing user")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	ProjectID   uint64
	ActorID     string
	Title       string
	Description string
	AssigneeID  *string
}

// UpdateTaskInput carries the full replacement state for a task.
type UpdateTaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	AssigneeID  *string
}

// ListProjectTasks returns the tasks of a project the user may read.
func (s *TaskService) ListProjectTasks(projectID uint64, userID string) ([]models.Task, error) {
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

	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// GetTask returns a task if the user may read it.
func (s *TaskService) GetTask(taskID uint64, userID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Project")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if !authz.CanAccessTask(userID, task) {
		return nil, ErrTaskAccessDenied
	}

	return task, nil
}

// CreateTask creates a task in a project. Project owner only; an
// optional assignee must reference an existing user.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	project, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if !authz.CanMutateProject(input.ActorID, project) {
		return nil, ErrNotTaskOwner
	}

	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	if err := s.validateAssignee(input.AssigneeID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.TaskStatusTodo,
		ProjectID:   project.ID,
		AssigneeID:  input.AssigneeID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask replaces the task state. The project owner may change every
// field; a non-owner assignee may change only the status, and a request
// that also changes other fields is rejected whole.
func (s *TaskService) UpdateTask(taskID uint64, userID string, input UpdateTaskInput) error {
	task, err := s.taskRepo.FindByID(taskID, "Project")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	scope := authz.TaskMutationScope(userID, task)
	if scope == authz.ScopeNone {
		return ErrTaskAccessDenied
	}

	if !models.ValidTaskStatus(input.Status) {
		return ErrInvalidStatus
	}

	switch scope {
	case authz.ScopeFull:
		if input.Title == "" {
			return ErrTitleRequired
		}
		if !sameAssignee(task.AssigneeID, input.AssigneeID) {
			if err := s.validateAssignee(input.AssigneeID); err != nil {
				return err
			}
		}
		task.Title = input.Title
		task.Description = input.Description
		task.Status = input.Status
		task.AssigneeID = input.AssigneeID

	case authz.ScopeStatus:
		if input.Title != task.Title ||
			input.Description != task.Description ||
			!sameAssignee(task.AssigneeID, input.AssigneeID) {
			return ErrOutOfScopeUpdate
		}
		task.Status = input.Status
	}

	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// DeleteTask deletes a task. Project owner only.
func (s *TaskService) DeleteTask(taskID uint64, userID string) error {
	task, err := s.taskRepo.FindByID(taskID, "Project")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if !authz.CanDeleteTask(userID, task) {
		return ErrNotTaskOwner
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// validateAssignee verifies that a non-nil assignee references an
// existing user.
func (s *TaskService) validateAssignee(assigneeID *string) error {
	if assigneeID == nil {
		return nil
	}

	exists, err := s.userRepo.Exists(*assigneeID)
	if err != nil {
		return fmt.Errorf("failed to verify assignee: %w", err)
	}
	if !exists {
		return ErrAssigneeNotFound
	}

	return nil
}

func sameAssignee(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
