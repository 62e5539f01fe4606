package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projectboard/project-task-api/internal/middleware"
	"github.com/projectboard/project-task-api/internal/models"
	"github.com/projectboard/project-task-api/internal/repository"
	"github.com/projectboard/project-task-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv wires the full API against an in-memory database.
type testEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	tokenService *services.TokenService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

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

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	tokenService := services.NewTokenService("test-secret", "project-task-api", 60)
	authService := services.NewAuthService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	authHandler := NewAuthHandler(authService, tokenService)
	projectHandler := NewProjectHandler(projectService, taskService)
	taskHandler := NewTaskHandler(taskService)

	r := gin.New()
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth(tokenService))
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/tasks", projectHandler.ListProjectTasks)
			projects.POST("/:id/tasks", projectHandler.CreateProjectTask)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(tokenService))
		{
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	return &testEnv{
		db:           db,
		router:       r,
		tokenService: tokenService,
	}
}

// createUser inserts a user directly and returns it with a valid token.
func (env *testEnv) createUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, env.db.Create(user).Error)

	token, _, err := env.tokenService.Issue(user)
	require.NoError(t, err)

	return user, token
}

// request performs an HTTP request against the test router.
func (env *testEnv) request(t *testing.T, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
