// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	dbStatus := "up"
	status := http.StatusOK

	if c.dbHealthChecker != nil && !c.dbHealthChecker() {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Timestamp: time.Now().UTC(),
	})
}
