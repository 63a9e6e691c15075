// Kestrel daemon — captures conversations, maintains memory, runs the
// ambient orchestrator, and serves the HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/joho/godotenv"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/pkg/ambient"
	"github.com/kestrel-ai/kestrel/pkg/api"
	"github.com/kestrel-ai/kestrel/pkg/cleanup"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/curiosity"
	"github.com/kestrel-ai/kestrel/pkg/database"
	"github.com/kestrel-ai/kestrel/pkg/emotion"
	"github.com/kestrel-ai/kestrel/pkg/events"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/ingest"
	"github.com/kestrel-ai/kestrel/pkg/integration"
	"github.com/kestrel-ai/kestrel/pkg/llm"
	"github.com/kestrel-ai/kestrel/pkg/queue"
	"github.com/kestrel-ai/kestrel/pkg/services"
	"github.com/kestrel-ai/kestrel/pkg/summary"
	"github.com/kestrel-ai/kestrel/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// enqueueNotification turns a queued notification task into a pending
// ambient_notifications row for delivery agents to pick up.
func enqueueNotification(ctx context.Context, notifications *services.NotificationService, defaults *config.Defaults, task *ent.QueueTask) error {
	in := services.CreateNotificationInput{
		UserID:  defaults.UserID,
		Message: task.Content,
	}
	if task.Metadata != nil {
		if v, ok := task.Metadata["user_id"].(string); ok && v != "" {
			in.UserID = v
		}
		if v, ok := task.Metadata["priority"].(string); ok {
			in.Priority = v
		}
		if v, ok := task.Metadata["target_medium"].(string); ok {
			in.TargetMedium = v
		}
		if v, ok := task.Metadata["target_location"].(string); ok {
			in.TargetLocation = v
		}
	}
	_, err := notifications.Create(ctx, in)
	return err
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8710")

	slog.Info("Starting kestrel",
		"version", version.Version,
		"git_commit", version.GitCommit,
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event sinks: structured logs plus pg_notify for external
	// consumers (delivery agents, dashboards)
	sink := events.Fanout{
		events.NewLogSink(slog.Default()),
		events.NewPublisher(dbClient.DB()),
	}

	// 4. Queue service + one-shot lease sweep (nothing else is running
	// yet, so every processing row is an orphan from a previous life)
	queueService := queue.NewService(dbClient.Client, cfg.Queue, sink)
	if _, err := queue.ReclaimStartupLeases(ctx, dbClient.Client, queueService); err != nil {
		slog.Error("Failed to reclaim startup leases", "error", err)
		// Non-fatal, the reaper will catch them
	}

	// 5. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	stateService := services.NewStateService(dbClient.Client)
	memoryService := services.NewMemoryService(dbClient.Client)
	missionService := services.NewMissionService(dbClient.Client)
	notificationService := services.NewNotificationService(dbClient.Client)
	presenceService := services.NewPresenceService(dbClient.Client)
	findingService := services.NewFindingService(dbClient.Client)
	reviewService := services.NewReviewService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client)
	contextService := services.NewContextService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. Adapters: LLM and knowledge graph
	llmClient := llm.NewAnthropicClient(cfg.LLM)

	var graphClient graph.Client
	if cfg.Graph.BaseURL != "" {
		graphClient = graph.NewHTTPClient(cfg.Graph)
		slog.Info("Graph client initialized", "base_url", cfg.Graph.BaseURL)
	} else {
		graphClient = graph.NewStubClient()
		slog.Warn("No graph base_url configured, using in-memory stub")
	}

	// 7. Ingestion pipeline
	curiosityPipeline := curiosity.NewPipeline(dbClient.Client, graphClient, cfg.Curiosity, sink)
	ingestor := ingest.NewIngestor(
		dbClient.Client, sessionService, stateService, queueService,
		curiosityPipeline, graphClient, sink, cfg.Defaults,
	)
	defer ingestor.Close()

	// 8. Fact checker and queue executors
	checker := integration.NewChecker(dbClient.Client, graphClient, reviewService, sink)
	explorer := ambient.NewExplorer(
		dbClient.Client, graphClient, llmClient, checker,
		findingService, taskService, cfg.LLM,
	)
	emotionBuffer := emotion.NewBuffer()

	summaryLoop := summary.NewLoop(dbClient.Client, memoryService, llmClient, cfg.Summary, cfg.LLM, sink)

	dispatcher := queue.NewDispatcher()
	dispatcher.Register("exploration", explorer)
	dispatcher.Register("emotion_stimulus", emotionBuffer)
	dispatcher.Register("summary", queue.ExecutorFunc(func(ctx context.Context, _ *ent.QueueTask) error {
		_, err := summaryLoop.RunOnce(ctx)
		return err
	}))
	dispatcher.Register("notification", queue.ExecutorFunc(func(ctx context.Context, task *ent.QueueTask) error {
		return enqueueNotification(ctx, notificationService, cfg.Defaults, task)
	}))

	// 9. Worker pool, lease reaper, background loops
	workerPool := queue.NewWorkerPool(dbClient.Client, queueService, dispatcher, cfg.Queue)
	workerPool.Start(ctx)

	reaper := queue.NewReaper(dbClient.Client, queueService, cfg.Queue)
	reaper.Start(ctx)

	summaryLoop.Start(ctx)

	orchestrator := ambient.NewOrchestrator(ambient.Deps{
		Client:        dbClient.Client,
		State:         stateService,
		Sessions:      sessionService,
		Presence:      presenceService,
		Notifications: notificationService,
		Missions:      missionService,
		Tasks:         taskService,
		Queue:         queueService,
		LLM:           llmClient,
		Config:        cfg.Ambient,
		LLMConfig:     cfg.LLM,
		Defaults:      cfg.Defaults,
		Sink:          sink,
	})
	orchestrator.Start(ctx)

	sweeper := cleanup.NewService(cfg.Retention, queueService, notificationService)
	sweeper.Start(ctx)

	// 10. HTTP server
	e := echo.New()
	server := api.NewServer(api.Deps{
		Client:        dbClient,
		Ingestor:      ingestor,
		Sessions:      sessionService,
		Memory:        memoryService,
		Missions:      missionService,
		Notifications: notificationService,
		Presence:      presenceService,
		Findings:      findingService,
		Reviews:       reviewService,
		State:         stateService,
		ContextCache:  contextService,
		Checker:       checker,
		Queue:         queueService,
		Pool:          workerPool,
		Graph:         graphClient,
		Emotion:       emotionBuffer,
		Defaults:      cfg.Defaults,
	})
	server.RegisterRoutes(e)

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("Kestrel started", "workers", cfg.Queue.WorkerCount, "user", cfg.Defaults.UserID)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop intake first, then the loops, then
	// the workers, so nothing enqueues into a dead pool.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	orchestrator.Stop()
	summaryLoop.Stop()
	sweeper.Stop()
	reaper.Stop()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(cfg.Queue.GracefulShutdownTimeout):
		slog.Warn("Shutdown timeout exceeded, in-flight tasks will be lease-reclaimed on next start")
	}

	slog.Info("Shutdown complete")
}
