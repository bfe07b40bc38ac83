package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custdesk/backend/internal/interfaces/http/dto"
)

func TestHealthHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHealthHandler("1.0.0", "development")
	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "API is healthy", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Healthy", data["status"])
	assert.Equal(t, "1.0.0", data["version"])
	assert.Equal(t, "development", data["environment"])

	ts, err := time.Parse(time.RFC3339, data["timestamp"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}
