package handlers

import (
	"errors"
	"net/http"

	"team-planner-backend/internal/auth"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps an error family to its status code. Unclassified errors
// are logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrPushUnavailable), errors.Is(err, apperrors.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.FromGinContext(c).Errorf("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindError reports a malformed request body or query
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// currentUser returns the authenticated user id or writes a 401
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrMissingUserContext.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a UUID path parameter or writes a 400
func pathID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}
