package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/pkg/config"
)

// WorkerPool owns a fixed set of workers plus the lease reaper.
type WorkerPool struct {
	workers []*Worker
	reaper  *Reaper
	cfg     *config.QueueConfig

	mu      sync.Mutex
	started bool
}

// NewWorkerPool wires cfg.WorkerCount workers against a shared service
// and executor.
func NewWorkerPool(client *ent.Client, service *Service, executor Executor, cfg *config.QueueConfig) *WorkerPool {
	pool := &WorkerPool{
		reaper: NewReaper(client, service, cfg),
		cfg:    cfg,
	}
	for i := 0; i < cfg.WorkerCount; i++ {
		pool.workers = append(pool.workers, NewWorker(workerID(i), service, executor, cfg))
	}
	return pool
}

// Start launches the reaper and all workers. Calling Start twice is a no-op.
func (p *WorkerPool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	p.reaper.Start(ctx)
	for _, w := range p.workers {
		w.Start(ctx)
	}
	slog.Info("Worker pool started", "workers", len(p.workers), "model", p.cfg.ModelName)
}

// Stop stops the workers first so no new claims race the final reap,
// then the reaper.
func (p *WorkerPool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	p.started = false

	for _, w := range p.workers {
		w.Stop()
	}
	p.reaper.Stop()
	slog.Info("Worker pool stopped")
}

// Health reports each worker's counters.
func (p *WorkerPool) Health() []WorkerHealth {
	health := make([]WorkerHealth, 0, len(p.workers))
	for _, w := range p.workers {
		health = append(health, w.Health())
	}
	return health
}
