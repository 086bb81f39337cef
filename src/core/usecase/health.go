package usecase

import (
	"context"
	"log/slog"

	"staffrecords/src/core/ports"
)

// HealthService reports whether the store is reachable.
type HealthService struct {
	db  ports.HealthChecker
	log *slog.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(db ports.HealthChecker, log *slog.Logger) *HealthService {
	return &HealthService{
		db:  db,
		log: log,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check pings the database and reports "ok" or "degraded".
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	if err := s.db.Health(ctx); err != nil {
		s.log.Warn("database health check failed", "error", err)
		status.Status = "degraded"
		status.Components["database"] = ComponentHealth{
			Status:  "unhealthy",
			Message: err.Error(),
		}
		return status
	}
	status.Components["database"] = ComponentHealth{Status: "healthy"}
	return status
}
