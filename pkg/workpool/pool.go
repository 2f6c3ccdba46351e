package workpool

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/strandkit/strand/ent"
	"github.com/strandkit/strand/ent/workitem"
	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/eventstore"
)

// Pool manages a set of workers draining the durable work item table.
type Pool struct {
	podID    string
	client   *ent.Client
	cfg      *config.PoolConfig
	retry    *config.RetryConfig
	registry *Registry
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Orphan detection state
	orphans orphanState
}

// New creates a pool. The registry must be fully populated before Start.
func New(podID string, client *ent.Client, cfg *config.PoolConfig, retry *config.RetryConfig, registry *Registry) *Pool {
	return &Pool{
		podID:    podID,
		client:   client,
		cfg:      cfg,
		retry:    retry,
		registry: registry,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
		stopCh:   make(chan struct{}),
	}
}

// Registry returns the pool's handler registry.
func (p *Pool) Registry() *Registry { return p.registry }

// Start spawns worker goroutines and the orphan detection background task.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Work pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting work pool", "pod_id", p.podID, "worker_count", p.cfg.WorkerCount)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.cfg, p.retry, p.registry)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Work pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current items before exiting.
func (p *Pool) Stop() {
	slog.Info("Stopping work pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Work pool stopped gracefully")
}

// Enqueue inserts a work item outside any caller transaction. Transactional
// callers (the bus, the orchestrator) enqueue through their Store frame
// instead, so the item commits or rolls back with the rest of the mutation.
func (p *Pool) Enqueue(ctx context.Context, item eventstore.WorkInput) (int64, error) {
	store := eventstore.NewPGStore(p.client)
	return store.EnqueueWork(ctx, item)
}

// Schedule enqueues a mutation to run after the given delay.
func (p *Pool) Schedule(ctx context.Context, ref string, args map[string]any, delay time.Duration) (int64, error) {
	return p.Enqueue(ctx, eventstore.WorkInput{
		Ref:      ref,
		Args:     args,
		RunAfter: time.Now().Add(delay),
	})
}

// Health returns the current health status of the pool.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.WorkItem.Query().
		Where(workitem.StatusEQ(workitem.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	activeItems, errA := p.client.WorkItem.Query().
		Where(
			workitem.StatusEQ(workitem.StatusInProgress),
			workitem.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active items for health check",
			"pod_id", p.podID, "error", errA)
	}

	deadItems, errD := p.client.WorkItem.Query().
		Where(workitem.StatusEQ(workitem.StatusDead)).
		Count(ctx)
	if errD != nil {
		slog.Error("Failed to query dead items for health check",
			"pod_id", p.podID, "error", errD)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: if we can't reach the DB, we're not healthy.
	dbHealthy := errQ == nil && errA == nil && errD == nil
	isHealthy := len(p.workers) > 0 && activeItems <= p.cfg.MaxConcurrentItems && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRequeued := p.orphans.orphansRequeued
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		switch {
		case errQ != nil:
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		case errA != nil:
			dbError = fmt.Sprintf("active items query failed: %v", errA)
		case errD != nil:
			dbError = fmt.Sprintf("dead items query failed: %v", errD)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		ActiveItems:     activeItems,
		MaxConcurrent:   p.cfg.MaxConcurrentItems,
		QueueDepth:      queueDepth,
		DeadItems:       deadItems,
		WorkerStats:     workerStats,
		LastOrphanScan:  lastOrphanScan,
		OrphansRequeued: orphansRequeued,
	}
}
