package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectboard/project-task-api/internal/dto"
	apierrors "github.com/projectboard/project-task-api/internal/errors"
	"github.com/projectboard/project-task-api/internal/models"
	"github.com/projectboard/project-task-api/internal/services"
)

type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
}

func NewAuthHandler(authService *services.AuthService, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Register creates a new user and immediately returns a token
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var regErr *services.RegistrationError
		if errors.As(err, &regErr) {
			apierrors.BadRequestWithDetails(c, "Registration failed", regErr.Fields)
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	h.respondWithToken(c, user)
}

// Login verifies credentials and returns a token. The failure message
// never reveals whether the email exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, services.ErrInvalidCredentials.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	h.respondWithToken(c, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, user *models.User) {
	token, expiresAt, err := h.tokenService.Issue(user)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:        token,
		ExpiresAtUTC: expiresAt,
	})
}
