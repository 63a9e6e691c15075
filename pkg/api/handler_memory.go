package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/models"
)

const defaultMemoryHistoryLimit = 20

// memoryEditHandler handles POST /memory/core/edit. Every edit writes a
// new version row, so rollback is always possible.
func (s *Server) memoryEditHandler(c *echo.Context) error {
	var req models.EditMemoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		req.UserID = s.deps.Defaults.UserID
	}

	block, err := s.deps.Memory.Edit(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, block)
}

// memoryHistoryHandler handles GET /memory/core/history.
func (s *Server) memoryHistoryHandler(c *echo.Context) error {
	blockType := c.QueryParam("block_type")
	if blockType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "block_type is required")
	}
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = s.deps.Defaults.UserID
	}
	limit := defaultMemoryHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	ctx := c.Request().Context()
	block, err := s.deps.Memory.GetBlock(ctx, userID, c.QueryParam("session_id"), blockType)
	if err != nil {
		return mapServiceError(err)
	}

	versions, err := s.deps.Memory.History(ctx, block.ID, limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"block":    block,
		"versions": versions,
	})
}

type memoryRollbackRequest struct {
	UserID        string `json:"user_id,omitempty"`
	SessionID     string `json:"session_id,omitempty"`
	BlockType     string `json:"block_type"`
	TargetVersion int    `json:"target_version"`
	Reason        string `json:"reason,omitempty"`
}

// memoryRollbackHandler handles POST /memory/core/rollback.
func (s *Server) memoryRollbackHandler(c *echo.Context) error {
	var req memoryRollbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.BlockType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "block_type is required")
	}
	if req.TargetVersion <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "target_version must be a positive integer")
	}
	if req.UserID == "" {
		req.UserID = s.deps.Defaults.UserID
	}

	ctx := c.Request().Context()
	block, err := s.deps.Memory.GetBlock(ctx, req.UserID, req.SessionID, req.BlockType)
	if err != nil {
		return mapServiceError(err)
	}

	restored, err := s.deps.Memory.Rollback(ctx, block.ID, req.TargetVersion, req.Reason)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, restored)
}
