// Package authz contains the access control decisions for projects and
// tasks. Every function is a pure predicate over already-loaded entities:
// callers resolve the resources first (returning not-found when absent)
// and only then ask whether the authenticated user may act on them.
package authz

import (
	"github.com/projectboard/project-task-api/internal/models"
)

// MutationScope describes which task fields a user may change.
type MutationScope int

const (
	// ScopeNone denies any mutation.
	ScopeNone MutationScope = iota
	// ScopeStatus allows changing the status field only.
	ScopeStatus
	// ScopeFull allows changing title, description, status and assignee.
	ScopeFull
)

// CanAccessProject reports whether the user may read the project:
// the owner, or the assignee of at least one task in it.
// project.Tasks must be preloaded.
func CanAccessProject(userID string, project *models.Project) bool {
	if project.OwnerID == userID {
		return true
	}
	for _, task := range project.Tasks {
		if task.AssigneeID != nil && *task.AssigneeID == userID {
			return true
		}
	}
	return false
}

// CanMutateProject reports whether the user may update or delete the
// project, or create tasks within it. Owner only.
func CanMutateProject(userID string, project *models.Project) bool {
	return project.OwnerID == userID
}

// CanAccessTask reports whether the user may read the task: the owner
// of its project, or its assignee. task.Project must be preloaded.
func CanAccessTask(userID string, task *models.Task) bool {
	if task.Project.OwnerID == userID {
		return true
	}
	return task.AssigneeID != nil && *task.AssigneeID == userID
}

// CanDeleteTask reports whether the user may delete the task.
// Project owner only; being assignee grants no delete rights.
func CanDeleteTask(userID string, task *models.Task) bool {
	return task.Project.OwnerID == userID
}

// TaskMutationScope resolves how much of the task the user may change.
// The project owner gets full rights, and owner wins when the user is
// both owner and assignee. A non-owner assignee may only change status.
func TaskMutationScope(userID string, task *models.Task) MutationScope {
	if task.Project.OwnerID == userID {
		return ScopeFull
	}
	if task.AssigneeID != nil && *task.AssigneeID == userID {
		return ScopeStatus
	}
	return ScopeNone
}
