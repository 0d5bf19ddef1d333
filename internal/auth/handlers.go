package auth

import (
	"net/http"
	"strings"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// UserLookup finds the user a token is issued for
type UserLookup interface {
	GetByEmail(email string) (*models.User, error)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	users   UserLookup
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, users UserLookup) *AuthHandler {
	return &AuthHandler{service: service, users: users}
}

// IssueToken handles POST /api/auth/token
// @Summary Issue a development token
// @Description Issue a bearer token for an existing user by email. Not registered in production.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "User email"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.FromGinContext(c).Errorf("Failed to look up user for token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	token, err := h.service.GenerateToken(user)
	if err != nil {
		logger.FromGinContext(c).Errorf("Failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, token)
}
