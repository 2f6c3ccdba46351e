package workpool

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/strandkit/strand/ent"
	"github.com/strandkit/strand/ent/workitem"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for orphaned items. All pods run
// this independently; requeueing is idempotent.
func (p *Pool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRequeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRequeueOrphans finds in-progress items with stale heartbeats and
// requeues them. Unlike a session queue, work items are retryable: the item
// goes back to pending and counts the interrupted run as an attempt (the
// attempt was already counted at claim time).
func (p *Pool) detectAndRequeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.cfg.OrphanThreshold)

	orphans, err := p.client.WorkItem.Query().
		Where(
			workitem.StatusEQ(workitem.StatusInProgress),
			workitem.LastHeartbeatNotNil(),
			workitem.LastHeartbeatLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned items: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned work items", "count", len(orphans))

	requeued := 0
	for _, item := range orphans {
		if err := p.requeueOrphan(ctx, item); err != nil {
			slog.Error("Failed to requeue orphaned item",
				"work_id", item.ID, "error", err)
			continue
		}
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphan puts a single orphaned item back on the queue.
func (p *Pool) requeueOrphan(ctx context.Context, item *ent.WorkItem) error {
	podID := "unknown"
	if item.PodID != nil {
		podID = *item.PodID
	}
	lastHeartbeat := "unknown"
	if item.LastHeartbeat != nil {
		lastHeartbeat = item.LastHeartbeat.Format(time.RFC3339)
	}

	err := item.Update().
		SetStatus(workitem.StatusPending).
		SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		ClearPodID().
		ClearLastHeartbeat().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue item: %w", err)
	}

	slog.Warn("Orphaned work item requeued",
		"work_id", item.ID, "ref", item.Ref,
		"old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans requeues items owned by this pod that were in
// progress when the pod previously crashed. Called once during startup,
// before the pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.WorkItem.Query().
		Where(
			workitem.StatusEQ(workitem.StatusInProgress),
			workitem.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID, "count", len(orphans))

	for _, item := range orphans {
		err := item.Update().
			SetStatus(workitem.StatusPending).
			SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while item was in progress", podID)).
			ClearPodID().
			ClearLastHeartbeat().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"work_id", item.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "work_id", item.ID, "ref", item.Ref)
	}

	return nil
}
