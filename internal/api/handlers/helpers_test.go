package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withUser stands in for auth.RequireAuth in handler tests
func withUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Next()
	}
}

func newTestRouter(userID uuid.UUID) *gin.Engine {
	router := gin.New()
	router.ContextWithFallback = true
	if userID != uuid.Nil {
		router.Use(withUser(userID))
	}
	return router
}

func doJSON(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		raw, _ := json.Marshal(v)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(w *httptest.ResponseRecorder) string {
	var response ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return response.Error
}
