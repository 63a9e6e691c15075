package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/services"
)

const defaultPendingReviewLimit = 20

// pendingReviewsHandler handles GET /reviews/pending.
func (s *Server) pendingReviewsHandler(c *echo.Context) error {
	limit := defaultPendingReviewLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	reviews, err := s.deps.Reviews.Pending(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"reviews": reviews})
}

type resolveReviewRequest struct {
	Status     string `json:"status"`
	Resolution string `json:"resolution,omitempty"`
	Resolver   string `json:"resolver,omitempty"`
}

// resolveReviewHandler handles POST /reviews/:id/resolve. Resolution goes
// through the fact checker so an accepted fact is committed to the graph
// as part of closing the review.
func (s *Server) resolveReviewHandler(c *echo.Context) error {
	reviewID := c.Param("id")
	if reviewID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "review id is required")
	}

	var req resolveReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	review, err := s.deps.Checker.ResolveReview(c.Request().Context(), reviewID, services.ReviewResolution{
		Status:     req.Status,
		Resolution: req.Resolution,
		Resolver:   req.Resolver,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, review)
}
