package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles the health check endpoint
type HealthHandler struct {
	BaseHandler
	version     string
	environment string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(version, environment string) *HealthHandler {
	return &HealthHandler{
		version:     version,
		environment: environment,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Check)
}

// HealthResponse represents the health check payload
// @name HealthResponse
type HealthResponse struct {
	Status      string    `json:"status" example:"Healthy"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version" example:"1.0.0"`
	Environment string    `json:"environment" example:"development"`
}

// Check godoc
// @ID           healthCheck
// @Summary      Health check
// @Description  Reports whether the API is up
// @Tags         health
// @Produce      json
// @Success      200 {object} dto.Response{data=handler.HealthResponse}
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	h.OK(c, "API is healthy", HealthResponse{
		Status:      "Healthy",
		Timestamp:   time.Now().UTC(),
		Version:     h.version,
		Environment: h.environment,
	})
}
