package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/models"
)

// captureHandler handles POST /conversation/capture.
// The write path is synchronous; graph publish, emotion buffering, and
// curiosity detection fan out asynchronously and never fail the caller.
func (s *Server) captureHandler(c *echo.Context) error {
	var req models.CaptureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	conversationID, err := s.deps.Ingestor.Capture(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":          "stored",
		"conversation_id": conversationID,
	})
}

type appendBlocksRequest struct {
	Blocks []models.BlockInput `json:"blocks"`
}

// appendBlocksHandler handles POST /conversations/:id/blocks.
func (s *Server) appendBlocksHandler(c *echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}

	var req appendBlocksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Blocks) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "blocks are required")
	}

	created, err := s.deps.Ingestor.AppendBlocks(c.Request().Context(), conversationID, req.Blocks)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "stored",
		"blocks": created,
	})
}
