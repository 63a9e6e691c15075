package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/session"
	"github.com/kestrel-ai/kestrel/ent/summarycontext"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/ingest"
	"github.com/kestrel-ai/kestrel/pkg/models"
	"github.com/kestrel-ai/kestrel/pkg/services"
)

const (
	defaultContextDepth         = 5
	defaultContextMaxAgeMinutes = 30
	contextFactLimit            = 10
	shareableInContext          = 3
	coreMemoryBlockKinds        = "persona,human,task"
)

type contextBuildRequest struct {
	SessionID     string `json:"session_id"`
	UserID        string `json:"user_id,omitempty"`
	CurrentPrompt string `json:"current_prompt,omitempty"`
	ContextDepth  int    `json:"context_depth,omitempty"`
}

// contextBuildHandler handles POST /context/build.
// Failures degrade to HTTP 200 envelopes so frontends stay functional:
// an unreachable graph yields {status:"unavailable"}, anything else
// {status:"error"}.
func (s *Server) contextBuildHandler(c *echo.Context) error {
	var req contextBuildRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	text, err := s.buildContext(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, graph.ErrUnavailable) {
			return c.JSON(http.StatusOK, map[string]any{"status": "unavailable", "context": ""})
		}
		return c.JSON(http.StatusOK, map[string]any{"status": "error", "context": "", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"status": "ok", "context": text})
}

type contextGetRequest struct {
	SessionID     string `json:"session_id"`
	MaxAgeMinutes int    `json:"max_age_minutes,omitempty"`
}

// contextGetHandler handles POST /context/get.
func (s *Server) contextGetHandler(c *echo.Context) error {
	var req contextGetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	if req.MaxAgeMinutes <= 0 {
		req.MaxAgeMinutes = defaultContextMaxAgeMinutes
	}
	maxAge := time.Duration(req.MaxAgeMinutes) * time.Minute
	cached, err := s.deps.ContextCache.Get(c.Request().Context(), req.SessionID, maxAge)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusOK, map[string]any{"found": false, "context": ""})
		}
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"found": true, "context": cached.Context})
}

type sessionStartRequest struct {
	SessionID  string `json:"session_id"`
	UserID     string `json:"user_id,omitempty"`
	WorkingDir string `json:"working_dir,omitempty"`
	Medium     string `json:"medium,omitempty"`
}

// contextSessionStartHandler handles POST /context/build_session_start.
func (s *Server) contextSessionStartHandler(c *echo.Context) error {
	var req sessionStartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	userID := req.UserID
	if userID == "" {
		userID = s.deps.Defaults.UserID
	}

	ctx := c.Request().Context()
	if _, err := s.deps.Sessions.EnsureSession(ctx, models.CreateSessionRequest{
		SessionID:  req.SessionID,
		WorkingDir: req.WorkingDir,
		Medium:     req.Medium,
		UserID:     userID,
	}); err != nil {
		return mapServiceError(err)
	}

	sessionType := ingest.DetectSessionType(req.Medium, req.WorkingDir)
	response := map[string]any{
		"status":       "ok",
		"session_type": sessionType,
	}
	if sessionType == ingest.SessionTypeCode && req.WorkingDir != "" {
		response["project_name"] = filepath.Base(req.WorkingDir)
	}

	text, err := s.buildContext(ctx, contextBuildRequest{
		SessionID: req.SessionID,
		UserID:    userID,
	})
	if err != nil {
		response["context"] = ""
		if errors.Is(err, graph.ErrUnavailable) {
			response["status"] = "unavailable"
		} else {
			response["status"] = "error"
			response["error"] = err.Error()
		}
		return c.JSON(http.StatusOK, response)
	}

	response["context"] = text
	return c.JSON(http.StatusOK, response)
}

// buildContext assembles the materialized context for a session: core
// memory, the rolling summary, recent session summaries, graph facts
// relevant to the prompt, and unshared exploration findings. The result
// is cached per session.
func (s *Server) buildContext(ctx context.Context, req contextBuildRequest) (string, error) {
	userID := req.UserID
	if userID == "" {
		userID = s.deps.Defaults.UserID
	}
	depth := req.ContextDepth
	if depth <= 0 {
		depth = defaultContextDepth
	}

	var b strings.Builder

	for _, blockType := range strings.Split(coreMemoryBlockKinds, ",") {
		block, err := s.deps.Memory.GetBlock(ctx, userID, "", blockType)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				continue
			}
			return "", err
		}
		if block.Content == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n%s\n\n", blockType, block.Content)
	}

	rolling, err := s.deps.Client.SummaryContext.Query().
		Where(summarycontext.UserIDEQ(userID)).
		Order(ent.Desc(summarycontext.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to load rolling summary: %w", err)
	}
	if rolling != nil {
		fmt.Fprintf(&b, "## recent activity\n%s\n\n", rolling.Summary)
	}

	recent, err := s.deps.Client.Session.Query().
		Where(
			session.UserIDEQ(userID),
			session.SummaryNotNil(),
			session.IDNEQ(req.SessionID),
		).
		Order(ent.Desc(session.FieldLastActivity)).
		Limit(depth).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load session summaries: %w", err)
	}
	if len(recent) > 0 {
		b.WriteString("## recent sessions\n")
		for _, sess := range recent {
			fmt.Fprintf(&b, "- %s\n", *sess.Summary)
		}
		b.WriteString("\n")
	}

	if req.CurrentPrompt != "" {
		facts, err := s.deps.Graph.HybridFactSearch(ctx, req.CurrentPrompt, userID, contextFactLimit)
		if err != nil {
			return "", err
		}
		if len(facts) > 0 {
			b.WriteString("## known facts\n")
			for _, fact := range facts {
				fmt.Fprintf(&b, "- %s\n", fact.Fact)
			}
			b.WriteString("\n")
		}
	}

	shareable, err := s.deps.Findings.Shareable(ctx, req.SessionID, shareableInContext)
	if err != nil {
		return "", err
	}
	if len(shareable) > 0 {
		b.WriteString("## worth sharing\n")
		for _, finding := range shareable {
			fmt.Fprintf(&b, "- %s\n", finding.Finding)
		}
		b.WriteString("\n")
	}

	text := strings.TrimRight(b.String(), "\n")
	if _, err := s.deps.ContextCache.Put(ctx, req.SessionID, text, map[string]interface{}{
		"user_id": userID,
		"depth":   depth,
	}); err != nil {
		return "", err
	}
	return text, nil
}
