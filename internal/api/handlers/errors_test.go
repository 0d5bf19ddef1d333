package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "team-planner-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type payload struct {
		Name string `validate:"required"`
	}
	validationErr := validator.New().Struct(payload{})

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "not found", err: apperrors.ErrTaskNotFound, wantStatus: http.StatusNotFound, wantMessage: apperrors.ErrTaskNotFound.Error()},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", apperrors.ErrGroupNotFound), wantStatus: http.StatusNotFound},
		{name: "authorization", err: apperrors.ErrNotGroupAdmin, wantStatus: http.StatusForbidden, wantMessage: apperrors.ErrNotGroupAdmin.Error()},
		{name: "authentication", err: apperrors.ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{name: "domain validation", err: apperrors.ErrLastAdmin, wantStatus: http.StatusBadRequest, wantMessage: apperrors.ErrLastAdmin.Error()},
		{name: "struct validation", err: fmt.Errorf("validation failed: %w", validationErr), wantStatus: http.StatusBadRequest},
		{name: "conflict", err: apperrors.ErrMemberExists, wantStatus: http.StatusConflict},
		{name: "push unavailable", err: apperrors.ErrPushUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantMessage: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(w))
			}
		})
	}
}

func TestCurrentUserAndPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		_, ok := currentUser(c)

		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid path id", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		_, ok := pathID(c, "id", "task")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid task ID", errorMessage(w))
	})

	t.Run("valid path id", func(t *testing.T) {
		id := uuid.New()
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		got, ok := pathID(c, "id", "task")

		assert.True(t, ok)
		assert.Equal(t, id, got)
	})
}
