package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/graph"
)

const (
	defaultRecallLimit    = 10
	defaultShareableLimit = 3
)

// recallSearchHandler handles GET /recall/search. Recall is best-effort:
// when the graph is down the endpoint returns an empty result set rather
// than an error, so a chat frontend never blocks on memory.
func (s *Server) recallSearchHandler(c *echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = s.deps.Defaults.UserID
	}
	limit := defaultRecallLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	result, err := s.deps.Graph.SearchGraph(c.Request().Context(), graph.SearchQuery{
		Query:   query,
		GroupID: userID,
		Limit:   limit,
	})
	if err != nil {
		if errors.Is(err, graph.ErrUnavailable) {
			return c.JSON(http.StatusOK, map[string]any{
				"facts":    []graph.FactNode{},
				"entities": []graph.EntityNode{},
				"degraded": true,
			})
		}
		slog.Error("Recall search failed", "error", err, "query", query)
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"facts":    result.Facts,
		"entities": result.Nodes,
	})
}

// shareableFindingsHandler handles GET /recall/findings/shareable.
func (s *Server) shareableFindingsHandler(c *echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	limit := defaultShareableLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	findings, err := s.deps.Findings.Shareable(c.Request().Context(), sessionID, limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"findings": findings})
}

type surfaceFindingRequest struct {
	FindingID string `json:"finding_id"`
	SessionID string `json:"session_id"`
}

// surfaceFindingHandler handles POST /recall/findings/surface. Marking a
// finding surfaced keeps it out of future shareable lists for the session.
func (s *Server) surfaceFindingHandler(c *echo.Context) error {
	var req surfaceFindingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.FindingID == "" || req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "finding_id and session_id are required")
	}

	if err := s.deps.Findings.Surface(c.Request().Context(), req.FindingID, req.SessionID); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"status": "surfaced"})
}
