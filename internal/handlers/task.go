package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectboard/project-task-api/internal/dto"
	apierrors "github.com/projectboard/project-task-api/internal/errors"
	"github.com/projectboard/project-task-api/internal/middleware"
	"github.com/projectboard/project-task-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// GetTask returns a single task
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(taskID, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateTask replaces the task state. Owners may change every field,
// assignees only the status.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.taskService.UpdateTask(taskID, userID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTask deletes a task. Project owner only.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(taskID, userID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, services.ErrTaskNotFound.Error())
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, services.ErrProjectNotFound.Error())
	case errors.Is(err, services.ErrTaskAccessDenied):
		apierrors.Forbidden(c, services.ErrTaskAccessDenied.Error())
	case errors.Is(err, services.ErrProjectAccessDenied):
		apierrors.Forbidden(c, services.ErrProjectAccessDenied.Error())
	case errors.Is(err, services.ErrNotTaskOwner):
		apierrors.Forbidden(c, services.ErrNotTaskOwner.Error())
	case errors.Is(err, services.ErrOutOfScopeUpdate):
		apierrors.Forbidden(c, services.ErrOutOfScopeUpdate.Error())
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, services.ErrTitleRequired.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, services.ErrInvalidStatus.Error())
	case errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.BadRequest(c, services.ErrAssigneeNotFound.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
