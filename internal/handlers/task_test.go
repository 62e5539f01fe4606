package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/projectboard/project-task-api/internal/dto"
	"github.com/projectboard/project-task-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// TaskHandlerTestSuite exercises the task endpoints through the full
// router: owner A, assignee B, and the access rules between them.
type TaskHandlerTestSuite struct {
	suite.Suite
	env *testEnv

	owner         *models.User
	ownerToken    string
	assignee      *models.User
	assigneeToken string

	project dto.ProjectDTO
	task    dto.TaskDTO
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())

	suite.owner, suite.ownerToken = suite.env.createUser(suite.T(), "a@example.com")
	suite.assignee, suite.assigneeToken = suite.env.createUser(suite.T(), "b@example.com")

	suite.project = createProject(suite.T(), suite.env, suite.ownerToken, "P1")

	w := suite.env.request(suite.T(), http.MethodPost,
		fmt.Sprintf("/api/projects/%d/tasks", suite.project.ID),
		suite.ownerToken,
		map[string]interface{}{
			"title":       "T1",
			"description": "First task",
			"assignee_id": suite.assignee.ID,
		})
	suite.Require().Equal(http.StatusCreated, w.Code)
	decodeJSON(suite.T(), w, &suite.task)
}

func (suite *TaskHandlerTestSuite) taskURL() string {
	return fmt.Sprintf("/api/tasks/%d", suite.task.ID)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_SetsLocationAndDefaults() {
	assert.Equal(suite.T(), models.TaskStatusTodo, suite.task.Status)
	assert.Equal(suite.T(), suite.project.ID, suite.task.ProjectID)
	suite.Require().NotNil(suite.task.AssigneeID)
	assert.Equal(suite.T(), suite.assignee.ID, *suite.task.AssigneeID)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_NotOwner() {
	w := suite.env.request(suite.T(), http.MethodPost,
		fmt.Sprintf("/api/projects/%d/tasks", suite.project.ID),
		suite.assigneeToken,
		map[string]interface{}{"title": "Sneaky"})
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_DanglingAssignee() {
	w := suite.env.request(suite.T(), http.MethodPost,
		fmt.Sprintf("/api/projects/%d/tasks", suite.project.ID),
		suite.ownerToken,
		map[string]interface{}{
			"title":       "Bad",
			"assignee_id": "no-such-user",
		})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var count int64
	suite.env.db.Model(&models.Task{}).Where("title = ?", "Bad").Count(&count)
	assert.Zero(suite.T(), count, "no task persisted on bad assignee")
}

func (suite *TaskHandlerTestSuite) TestCreateTask_ProjectNotFound() {
	w := suite.env.request(suite.T(), http.MethodPost, "/api/projects/9999/tasks",
		suite.ownerToken, map[string]interface{}{"title": "Orphan"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGetTask_OwnerAndAssignee() {
	for _, token := range []string{suite.ownerToken, suite.assigneeToken} {
		w := suite.env.request(suite.T(), http.MethodGet, suite.taskURL(), token, nil)
		suite.Require().Equal(http.StatusOK, w.Code)

		var task dto.TaskDTO
		decodeJSON(suite.T(), w, &task)
		assert.Equal(suite.T(), suite.task, task)
	}
}

func (suite *TaskHandlerTestSuite) TestGetTask_Stranger() {
	_, strangerToken := suite.env.createUser(suite.T(), "c@example.com")

	w := suite.env.request(suite.T(), http.MethodGet, suite.taskURL(), strangerToken, nil)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGetTask_RepeatedGetIsIdentical() {
	first := suite.env.request(suite.T(), http.MethodGet, suite.taskURL(), suite.ownerToken, nil)
	second := suite.env.request(suite.T(), http.MethodGet, suite.taskURL(), suite.ownerToken, nil)

	suite.Require().Equal(http.StatusOK, first.Code)
	assert.Equal(suite.T(), first.Body.String(), second.Body.String())
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_AssigneeStatusOnly() {
	w := suite.env.request(suite.T(), http.MethodPut, suite.taskURL(), suite.assigneeToken,
		map[string]interface{}{
			"title":       suite.task.Title,
			"description": suite.task.Description,
			"status":      models.TaskStatusInProgress,
			"assignee_id": suite.assignee.ID,
		})
	suite.Require().Equal(http.StatusNoContent, w.Code)

	var updated models.Task
	suite.Require().NoError(suite.env.db.First(&updated, suite.task.ID).Error)
	assert.Equal(suite.T(), models.TaskStatusInProgress, updated.Status)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_AssigneeChangingTitleRejected() {
	w := suite.env.request(suite.T(), http.MethodPut, suite.taskURL(), suite.assigneeToken,
		map[string]interface{}{
			"title":       "Hijacked title",
			"description": suite.task.Description,
			"status":      models.TaskStatusDone,
			"assignee_id": suite.assignee.ID,
		})
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	var unchanged models.Task
	suite.Require().NoError(suite.env.db.First(&unchanged, suite.task.ID).Error)
	assert.Equal(suite.T(), "T1", unchanged.Title)
	assert.Equal(suite.T(), models.TaskStatusTodo, unchanged.Status, "rejected request changes nothing")
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_OwnerFullUpdate() {
	w := suite.env.request(suite.T(), http.MethodPut, suite.taskURL(), suite.ownerToken,
		map[string]interface{}{
			"title":       "Reworked",
			"description": "New description",
			"status":      models.TaskStatusDone,
			"assignee_id": nil,
		})
	suite.Require().Equal(http.StatusNoContent, w.Code)

	var updated models.Task
	suite.Require().NoError(suite.env.db.First(&updated, suite.task.ID).Error)
	assert.Equal(suite.T(), "Reworked", updated.Title)
	assert.Equal(suite.T(), models.TaskStatusDone, updated.Status)
	assert.Nil(suite.T(), updated.AssigneeID)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_IdempotentPut() {
	payload := map[string]interface{}{
		"title":       "Stable",
		"description": "Same",
		"status":      models.TaskStatusDone,
		"assignee_id": suite.assignee.ID,
	}

	w := suite.env.request(suite.T(), http.MethodPut, suite.taskURL(), suite.ownerToken, payload)
	suite.Require().Equal(http.StatusNoContent, w.Code)
	w = suite.env.request(suite.T(), http.MethodPut, suite.taskURL(), suite.ownerToken, payload)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	var updated models.Task
	suite.Require().NoError(suite.env.db.First(&updated, suite.task.ID).Error)
	assert.Equal(suite.T(), "Stable", updated.Title)
	assert.Equal(suite.T(), models.TaskStatusDone, updated.Status)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_InvalidStatus() {
	w := suite.env.request(suite.T(), http.MethodPut, suite.taskURL(), suite.ownerToken,
		map[string]interface{}{
			"title":  "T1",
			"status": "BOGUS",
		})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_AssigneeForbidden() {
	w := suite.env.request(suite.T(), http.MethodDelete, suite.taskURL(), suite.assigneeToken, nil)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_Owner() {
	w := suite.env.request(suite.T(), http.MethodDelete, suite.taskURL(), suite.ownerToken, nil)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	w = suite.env.request(suite.T(), http.MethodGet, suite.taskURL(), suite.ownerToken, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListProjectTasks() {
	w := suite.env.request(suite.T(), http.MethodGet,
		fmt.Sprintf("/api/projects/%d/tasks", suite.project.ID), suite.assigneeToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var tasks []dto.TaskDTO
	decodeJSON(suite.T(), w, &tasks)
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), suite.task.ID, tasks[0].ID)

	_, strangerToken := suite.env.createUser(suite.T(), "c@example.com")
	w = suite.env.request(suite.T(), http.MethodGet,
		fmt.Sprintf("/api/projects/%d/tasks", suite.project.ID), strangerToken, nil)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
