package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/database"
	"github.com/kestrel-ai/kestrel/pkg/emotion"
	"github.com/kestrel-ai/kestrel/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"

	healthCheckTimeout = 5 * time.Second
	staleWorkerAfter   = 2 * time.Minute
)

// HealthCheck is the status of a single component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// healthHandler handles GET /health.
// Only the daemon's own components (database, worker pool) are checked.
// The graph service and the model provider are excluded so a supervisor
// does not restart the daemon when an external dependency is down.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.deps.Client.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.deps.Pool != nil {
		stale := 0
		workers := s.deps.Pool.Health()
		now := time.Now()
		for _, w := range workers {
			if now.Sub(w.LastPollAt) > staleWorkerAfter {
				stale++
			}
		}
		if stale > 0 {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["worker_pool"] = HealthCheck{
				Status:  healthStatusDegraded,
				Message: "some workers have stopped polling",
			}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// emotionSummaryHandler handles GET /emotion/summary. The buffer is
// in-memory and optional; without one the response is the zero summary.
func (s *Server) emotionSummaryHandler(c *echo.Context) error {
	if s.deps.Emotion == nil {
		return c.JSON(http.StatusOK, emotion.Summary{})
	}
	return c.JSON(http.StatusOK, s.deps.Emotion.Summary())
}

type statusRequest struct {
	UserID string `json:"user_id,omitempty"`
}

// statusHandler handles POST /status/get. It is the frontends' one-shot
// view of the daemon: queue depth, graph reachability, and the ambient
// state row for the user.
func (s *Server) statusHandler(c *echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	userID := req.UserID
	if userID == "" {
		userID = s.deps.Defaults.UserID
	}

	ctx := c.Request().Context()

	stats, err := s.deps.Queue.GetStats(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	state, err := s.deps.State.Get(ctx, userID)
	if err != nil {
		return mapServiceError(err)
	}

	response := map[string]any{
		"daemon":          "running",
		"version":         version.Version,
		"git_commit":      version.GitCommit,
		"queue":           stats,
		"graph_available": s.deps.Graph.Available(ctx),
		"state": map[string]any{
			"last_interaction_at":       state.LastInteractionAt,
			"last_proactive_contact_at": state.LastProactiveContactAt,
			"suppressed_until":          state.SuppressedUntil,
			"autonomous_work_count":     state.AutonomousWorkCount,
		},
	}
	return c.JSON(http.StatusOK, response)
}
