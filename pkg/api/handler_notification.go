package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/models"
)

const defaultUnacknowledgedLimit = 10

type recentUnacknowledgedRequest struct {
	UserID string `json:"user_id,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// recentUnacknowledgedHandler handles POST /notifications/recent_unacknowledged.
// Delivery agents poll this to pick up pending proactive messages.
func (s *Server) recentUnacknowledgedHandler(c *echo.Context) error {
	var req recentUnacknowledgedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		req.UserID = s.deps.Defaults.UserID
	}
	if req.Limit <= 0 {
		req.Limit = defaultUnacknowledgedLimit
	}

	notifications, err := s.deps.Notifications.RecentUnacknowledged(c.Request().Context(), req.UserID, req.Limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"notifications": notifications})
}

// acknowledgeNotificationHandler handles POST /notifications/:id/acknowledge.
func (s *Server) acknowledgeNotificationHandler(c *echo.Context) error {
	notificationID := c.Param("id")
	if notificationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "notification id is required")
	}

	n, err := s.deps.Notifications.Acknowledge(c.Request().Context(), notificationID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, n)
}

// notificationDeliveredHandler handles POST /notifications/:id/delivered.
func (s *Server) notificationDeliveredHandler(c *echo.Context) error {
	notificationID := c.Param("id")
	if notificationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "notification id is required")
	}

	if err := s.deps.Notifications.MarkDelivered(c.Request().Context(), notificationID); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"status": "delivered"})
}

// heartbeatHandler handles POST /presence/heartbeat.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	var req models.HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		req.UserID = s.deps.Defaults.UserID
	}

	if err := s.deps.Presence.Heartbeat(c.Request().Context(), req); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}
