package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/pkg/config"
)

// Reaper returns tasks stuck in processing to the queue once their
// claim lease expires. A worker crash mid-task otherwise strands the
// row forever.
type Reaper struct {
	client  *ent.Client
	service *Service
	cfg     *config.QueueConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewReaper creates a lease reaper.
func NewReaper(client *ent.Client, service *Service, cfg *config.QueueConfig) *Reaper {
	return &Reaper{
		client:  client,
		service: service,
		cfg:     cfg,
		stopCh:  make(chan struct{}),
	}
}

// Start launches the periodic reap loop.
func (r *Reaper) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.run(ctx)
	slog.Info("Queue lease reaper started", "interval", r.cfg.ReaperInterval, "lease_timeout", r.cfg.LeaseTimeout)
}

// Stop signals the loop to exit and waits for it.
func (r *Reaper) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	r.wg.Wait()
}

func (r *Reaper) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			if n, err := r.ReapExpiredLeases(ctx); err != nil {
				slog.Error("Lease reap pass failed", "error", err)
			} else if n > 0 {
				slog.Warn("Reclaimed expired task leases", "count", n)
			}
		}
	}
}

// ReapExpiredLeases finds processing tasks whose claim is older than
// the lease timeout and pushes each through the normal retry path, so
// a task that keeps expiring its lease eventually fails for good.
func (r *Reaper) ReapExpiredLeases(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-r.cfg.LeaseTimeout)

	expired, err := r.client.QueueTask.Query().
		Where(
			queuetask.StatusEQ(queuetask.StatusProcessing),
			queuetask.ClaimedAtNotNil(),
			queuetask.ClaimedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired leases: %w", err)
	}

	reaped := 0
	for _, task := range expired {
		reason := fmt.Sprintf("lease expired after %s", r.cfg.LeaseTimeout)
		if _, err := r.service.Retry(ctx, task.ID, reason); err != nil {
			slog.Error("Failed to reclaim expired lease", "task_id", task.ID, "error", err)
			continue
		}
		reaped++
	}
	return reaped, nil
}

// ReclaimStartupLeases is the one-shot boot sweep. After a restart no
// worker from this process can hold a claim, so every processing row
// is an orphan regardless of lease age.
func ReclaimStartupLeases(ctx context.Context, client *ent.Client, service *Service) (int, error) {
	orphans, err := client.QueueTask.Query().
		Where(queuetask.StatusEQ(queuetask.StatusProcessing)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	reclaimed := 0
	for _, task := range orphans {
		if _, err := service.Retry(ctx, task.ID, "orphaned by restart"); err != nil {
			slog.Error("Failed to reclaim orphaned task", "task_id", task.ID, "error", err)
			continue
		}
		reclaimed++
	}
	if reclaimed > 0 {
		slog.Info("Reclaimed orphaned tasks at startup", "count", reclaimed)
	}
	return reclaimed, nil
}
