package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strandkit/strand/pkg/database"
	"github.com/strandkit/strand/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// Health handles GET /health.
// Only the runtime's own components (database, work pool) are checked.
// The external agent service is excluded so an orchestrator probing this
// endpoint does not restart the process when a dependency is down.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	var poolHealth any
	if s.pool != nil {
		ph := s.pool.Health()
		poolHealth = ph
		if ph != nil && !ph.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if ph.DBError != "" {
				msg = ph.DBError
			}
			checks["work_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["work_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":    status,
		"version":   version.GitCommit,
		"checks":    checks,
		"database":  dbHealth,
		"work_pool": poolHealth,
	})
}

// HealthCheck is one component's check result inside the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
