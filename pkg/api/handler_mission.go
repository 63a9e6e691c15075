package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/models"
)

const (
	defaultMissionListLimit      = 50
	defaultExecutionHistoryLimit = 20
)

// createMissionHandler handles POST /missions.
func (s *Server) createMissionHandler(c *echo.Context) error {
	var req models.CreateMissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		req.UserID = s.deps.Defaults.UserID
	}

	m, err := s.deps.Missions.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, m)
}

// listMissionsHandler handles GET /missions.
func (s *Server) listMissionsHandler(c *echo.Context) error {
	limit := defaultMissionListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	missions, err := s.deps.Missions.List(c.Request().Context(), c.QueryParam("status"), limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"missions": missions})
}

// getMissionHandler handles GET /missions/:id.
func (s *Server) getMissionHandler(c *echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	m, err := s.deps.Missions.Get(c.Request().Context(), missionID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, m)
}

// updateMissionHandler handles PATCH /missions/:id.
func (s *Server) updateMissionHandler(c *echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	var req models.UpdateMissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	m, err := s.deps.Missions.Update(c.Request().Context(), missionID, req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, m)
}

// archiveMissionHandler handles POST /missions/:id/archive.
func (s *Server) archiveMissionHandler(c *echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	m, err := s.deps.Missions.Archive(c.Request().Context(), missionID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, m)
}

// missionExecutionsHandler handles GET /missions/:id/executions.
func (s *Server) missionExecutionsHandler(c *echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	limit := defaultExecutionHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	executions, err := s.deps.Missions.Executions(c.Request().Context(), missionID, limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"executions": executions})
}
