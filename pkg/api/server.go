// Package api is the daemon's HTTP surface. Handlers are thin: bind,
// validate, call a service, map errors. Frontends are expected to stay
// functional when the graph or the model is down, so context endpoints
// degrade to HTTP 200 envelopes instead of 5xx.
package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/database"
	"github.com/kestrel-ai/kestrel/pkg/emotion"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/ingest"
	"github.com/kestrel-ai/kestrel/pkg/integration"
	"github.com/kestrel-ai/kestrel/pkg/queue"
	"github.com/kestrel-ai/kestrel/pkg/services"
)

// Deps are the server's collaborators.
type Deps struct {
	Client        *database.Client
	Ingestor      *ingest.Ingestor
	Sessions      *services.SessionService
	Memory        *services.MemoryService
	Missions      *services.MissionService
	Notifications *services.NotificationService
	Presence      *services.PresenceService
	Findings      *services.FindingService
	Reviews       *services.ReviewService
	State         *services.StateService
	ContextCache  *services.ContextService
	Checker       *integration.Checker
	Queue         *queue.Service
	Pool          *queue.WorkerPool
	Graph         graph.Client
	Emotion       *emotion.Buffer
	Defaults      *config.Defaults
}

// Server hosts the HTTP handlers.
type Server struct {
	deps Deps
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{deps: deps}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.POST("/status/get", s.statusHandler)
	e.GET("/emotion/summary", s.emotionSummaryHandler)

	e.POST("/conversation/capture", s.captureHandler)
	e.POST("/conversations/:id/blocks", s.appendBlocksHandler)

	e.POST("/context/build", s.contextBuildHandler)
	e.POST("/context/get", s.contextGetHandler)
	e.POST("/context/build_session_start", s.contextSessionStartHandler)

	e.POST("/sessions/create", s.createSessionHandler)
	e.POST("/sessions/find_or_create", s.findOrCreateSessionHandler)
	e.GET("/sessions", s.listSessionsHandler)
	e.POST("/sessions/:id/end", s.endSessionHandler)
	e.GET("/sessions/:id/history", s.sessionHistoryHandler)
	e.POST("/sessions/:id/message", s.sessionMessageHandler)

	e.POST("/memory/core/edit", s.memoryEditHandler)
	e.GET("/memory/core/history", s.memoryHistoryHandler)
	e.POST("/memory/core/rollback", s.memoryRollbackHandler)

	e.GET("/recall/search", s.recallSearchHandler)
	e.GET("/recall/findings/shareable", s.shareableFindingsHandler)
	e.POST("/recall/findings/surface", s.surfaceFindingHandler)

	e.POST("/missions", s.createMissionHandler)
	e.GET("/missions", s.listMissionsHandler)
	e.GET("/missions/:id", s.getMissionHandler)
	e.PATCH("/missions/:id", s.updateMissionHandler)
	e.POST("/missions/:id/archive", s.archiveMissionHandler)
	e.GET("/missions/:id/executions", s.missionExecutionsHandler)

	e.POST("/notifications/recent_unacknowledged", s.recentUnacknowledgedHandler)
	e.POST("/notifications/:id/acknowledge", s.acknowledgeNotificationHandler)
	e.POST("/notifications/:id/delivered", s.notificationDeliveredHandler)
	e.POST("/presence/heartbeat", s.heartbeatHandler)

	e.GET("/reviews/pending", s.pendingReviewsHandler)
	e.POST("/reviews/:id/resolve", s.resolveReviewHandler)

	e.POST("/search/hybrid", s.hybridSearchHandler)
	e.GET("/kg/entities", s.kgEntitiesHandler)
}
