package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/models"
)

// createSessionHandler handles POST /sessions/create. Duplicate session
// ids are a conflict; callers that want idempotency use find_or_create.
func (s *Server) createSessionHandler(c *echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess, err := s.deps.Sessions.CreateSession(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, sess)
}

// findOrCreateSessionHandler handles POST /sessions/find_or_create.
func (s *Server) findOrCreateSessionHandler(c *echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess, err := s.deps.Sessions.FindOrCreateSession(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, sess)
}

// listSessionsHandler handles GET /sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	filters := models.SessionFilters{
		UserID:     c.QueryParam("user_id"),
		Medium:     c.QueryParam("medium"),
		ActiveOnly: c.QueryParam("active") == "true",
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		filters.Limit = limit
	}

	sessions, err := s.deps.Sessions.ListSessions(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"sessions": sessions})
}

// endSessionHandler handles POST /sessions/:id/end.
func (s *Server) endSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, err := s.deps.Sessions.EndSession(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, sess)
}

// sessionHistoryHandler handles GET /sessions/:id/history.
func (s *Server) sessionHistoryHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	history, err := s.deps.Sessions.History(c.Request().Context(), sessionID, limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"messages": history})
}

type sessionMessageRequest struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// sessionMessageHandler handles POST /sessions/:id/message. This is the
// lightweight append path used by chat frontends; the full capture
// pipeline goes through /conversation/capture.
func (s *Server) sessionMessageHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req sessionMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Role == "" || req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "role and text are required")
	}

	conv, err := s.deps.Sessions.AddMessage(c.Request().Context(), sessionID, req.Role, req.Text)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":          "stored",
		"conversation_id": conv.ID,
	})
}
