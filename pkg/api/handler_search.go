package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/graph"
)

const defaultEntitySearchLimit = 10

// hybridSearchHandler handles POST /search/hybrid. Unlike /recall/search
// this is the raw graph query surface and propagates 503 when the graph
// is down.
func (s *Server) hybridSearchHandler(c *echo.Context) error {
	var req graph.SearchQuery
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	if req.GroupID == "" {
		req.GroupID = s.deps.Defaults.UserID
	}

	result, err := s.deps.Graph.SearchGraph(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// kgEntitiesHandler handles GET /kg/entities.
func (s *Server) kgEntitiesHandler(c *echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	groupID := c.QueryParam("user_id")
	if groupID == "" {
		groupID = s.deps.Defaults.UserID
	}
	limit := defaultEntitySearchLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	entities, err := s.deps.Graph.HybridNodeSearch(c.Request().Context(), query, groupID, limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"entities": entities})
}
