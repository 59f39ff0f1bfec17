package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikv/parentportal/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.NewValidationError("Transaction ID is required."), http.StatusBadRequest},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"not found", apperrors.NewNotFoundError("Student not found."), http.StatusNotFound},
		{"fee not found", apperrors.ErrFeeNotFound, http.StatusNotFound},
		{"duplicate", apperrors.ErrIdentifierExists, http.StatusConflict},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := serveError(t, tt.err)
			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestHandleAPIErrorUsesWrappedMessage(t *testing.T) {
	_, body := serveError(t, apperrors.NewNotFoundError("Parent not found or incorrect old password!"))
	assert.Equal(t, "Parent not found or incorrect old password!", body["message"])
}

func TestHandleAPIErrorHidesStoreErrorText(t *testing.T) {
	recorder, body := serveError(t, errors.New("pq: relation \"fees\" does not exist"))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Internal server error.", body["message"])
	assert.NotContains(t, recorder.Body.String(), "relation")
}
