// Package cleanup provides data retention sweeps.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/queue"
	"github.com/kestrel-ai/kestrel/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal task_queue rows past their max age
//   - Deletes delivered ambient notifications past their max age
//
// All operations are idempotent and safe to re-run.
type Service struct {
	config        *config.RetentionConfig
	queue         *queue.Service
	notifications *services.NotificationService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	queueService *queue.Service,
	notifications *services.NotificationService,
) *Service {
	return &Service{
		config:        cfg,
		queue:         queueService,
		notifications: notifications,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"completed_task_max_age", s.config.CompletedTaskMaxAge,
		"delivered_notification_max_age", s.config.DeliveredNotificationMaxAge,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one sweep of every retention policy.
func (s *Service) RunAll(ctx context.Context) {
	s.sweepCompletedTasks(ctx)
	s.sweepDeliveredNotifications(ctx)
}

func (s *Service) sweepCompletedTasks(ctx context.Context) {
	count, err := s.queue.DeleteCompleted(ctx, s.config.CompletedTaskMaxAge)
	if err != nil {
		slog.Error("Retention: task sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted terminal tasks", "count", count)
	}
}

func (s *Service) sweepDeliveredNotifications(ctx context.Context) {
	count, err := s.notifications.DeleteOldDelivered(ctx, s.config.DeliveredNotificationMaxAge)
	if err != nil {
		slog.Error("Retention: notification sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted delivered notifications", "count", count)
	}
}
