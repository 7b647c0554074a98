package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", ErrNoCorrectOption, http.StatusBadRequest, "at least one option must be correct"},
		{"not found", ErrQuestionNotFound, http.StatusNotFound, "question not found or does not belong to this quiz"},
		{"unauthorized", ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.status, resp.Code)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestAppErrorKinds(t *testing.T) {
	err := NewValidationError("title is required")
	assert.True(t, IsValidation(err))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "title is required", err.Error())

	assert.True(t, errors.Is(ErrQuizNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrInvalidCredentials, ErrUnauthorized))
}
