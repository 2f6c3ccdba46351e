package workpool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/strandkit/strand/ent"
	"github.com/strandkit/strand/ent/workitem"
	"github.com/strandkit/strand/pkg/config"
)

// claimBatchSize bounds how many locked candidates a worker inspects per poll
// when looking for a partition-eligible item.
const claimBatchSize = 10

// Worker is a single pool worker that polls for and processes work items.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	cfg      *config.PoolConfig
	retry    *config.RetryConfig
	registry *Registry
	jitter   Jitter
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentItemID  int64
	itemsProcessed int
	lastActivity   time.Time
}

// NewWorker creates a pool worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.PoolConfig, retry *config.RetryConfig, registry *Registry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		cfg:          cfg,
		retry:        retry,
		registry:     registry,
		jitter:       UniformJitter,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. Safe to call
// multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentItemID:  w.currentItemID,
		ItemsProcessed: w.itemsProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoWorkAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing work item", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an item, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check (best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.WorkItem.Query().
		Where(workitem.StatusEQ(workitem.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active items: %w", err)
	}
	if activeCount >= w.cfg.MaxConcurrentItems {
		return ErrAtCapacity
	}

	item, err := w.claimNextItem(ctx)
	if err != nil {
		return err
	}

	log := slog.With("work_id", item.ID, "ref", item.Ref, "worker_id", w.id)
	log.Info("Work item claimed", "attempt", item.Attempts)

	w.setStatus(WorkerStatusWorking, int64(item.ID))
	defer w.setStatus(WorkerStatusIdle, 0)

	itemCtx, cancelItem := context.WithTimeout(ctx, w.cfg.ItemTimeout)
	defer cancelItem()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(itemCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, item.ID)

	result, execErr := w.execute(itemCtx, item)
	cancelHeartbeat()

	// Terminal updates use a background context; the item context may have
	// been cancelled or timed out.
	if execErr != nil {
		if err := w.handleFailure(context.Background(), item, execErr); err != nil {
			log.Error("Failed to record work item failure", "error", err)
			return err
		}
	} else {
		if err := w.handleSuccess(context.Background(), item, result); err != nil {
			log.Error("Failed to record work item success", "error", err)
			return err
		}
	}

	w.mu.Lock()
	w.itemsProcessed++
	w.mu.Unlock()

	log.Info("Work item processing complete", "failed", execErr != nil)
	return nil
}

// claimNextItem atomically claims the next eligible pending item using
// FOR UPDATE SKIP LOCKED. Items sharing a non-empty partition key are gated:
// a candidate is skipped while an older pending or in-progress item holds
// the same key, which gives per-partition ordering across workers.
func (w *Worker) claimNextItem(ctx context.Context) (*ent.WorkItem, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	candidates, err := tx.WorkItem.Query().
		Where(
			workitem.StatusEQ(workitem.StatusPending),
			workitem.RunAfterLTE(now),
		).
		Order(ent.Asc(workitem.FieldPriority), ent.Asc(workitem.FieldID)).
		Limit(claimBatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending items: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoWorkAvailable
	}

	var claimed *ent.WorkItem
	for _, candidate := range candidates {
		eligible, err := w.partitionEligible(ctx, tx, candidate)
		if err != nil {
			return nil, err
		}
		if eligible {
			claimed = candidate
			break
		}
	}
	if claimed == nil {
		return nil, ErrNoWorkAvailable
	}

	claimed, err = claimed.Update().
		SetStatus(workitem.StatusInProgress).
		SetPodID(w.podID).
		SetAttempts(claimed.Attempts + 1).
		SetLastHeartbeat(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim work item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// partitionEligible reports whether the candidate may run now. Items without
// a partition key are always eligible.
func (w *Worker) partitionEligible(ctx context.Context, tx *ent.Tx, candidate *ent.WorkItem) (bool, error) {
	if candidate.PartitionKey == "" {
		return true, nil
	}
	blocked, err := tx.WorkItem.Query().
		Where(
			workitem.PartitionKeyEQ(candidate.PartitionKey),
			workitem.Or(
				workitem.StatusEQ(workitem.StatusInProgress),
				workitem.And(
					workitem.StatusEQ(workitem.StatusPending),
					workitem.IDLT(candidate.ID),
				),
			),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check partition %s: %w", candidate.PartitionKey, err)
	}
	return !blocked, nil
}

// execute resolves the item's ref and runs the handler.
func (w *Worker) execute(ctx context.Context, item *ent.WorkItem) (map[string]any, error) {
	delivery := DeliveryFromMap(item.Delivery)
	delivery.WorkID = int64(item.ID)
	delivery.Attempt = item.Attempts
	delivery.MaxAttempts = item.MaxAttempts

	if mutation, ok := w.registry.Mutation(item.Ref); ok {
		return mutation(ctx, item.Args, delivery)
	}
	if action, ok := w.registry.Action(item.Ref); ok {
		return action(ctx, item.Args, delivery)
	}
	// An unresolvable ref will never succeed; fail permanently.
	return nil, &unresolvableRefError{ref: item.Ref}
}

// Permanent marks an error retrying cannot fix. The pool dead-letters the
// item immediately instead of burning the remaining attempts.
type Permanent interface {
	error
	Permanent() bool
}

type unresolvableRefError struct {
	ref string
}

func (e *unresolvableRefError) Error() string {
	return fmt.Sprintf("no handler registered for ref %q", e.ref)
}

func (e *unresolvableRefError) Permanent() bool { return true }

// handleSuccess runs onComplete (if declared) and marks the item completed.
// An onComplete failure is treated as a delivery failure so the item retries;
// handlers and completions must therefore be idempotent.
func (w *Worker) handleSuccess(ctx context.Context, item *ent.WorkItem, result map[string]any) error {
	if item.OnComplete != "" {
		if err := w.runCompletion(ctx, item, Outcome{
			Success:  true,
			Result:   result,
			Attempts: item.Attempts,
		}); err != nil {
			return w.handleFailure(ctx, item, fmt.Errorf("onComplete %s: %w", item.OnComplete, err))
		}
	}
	return w.client.WorkItem.UpdateOneID(item.ID).
		SetStatus(workitem.StatusCompleted).
		ClearErrorMessage().
		Exec(ctx)
}

// handleFailure either schedules a retry with backoff or dead-letters the
// item when its attempts are exhausted.
func (w *Worker) handleFailure(ctx context.Context, item *ent.WorkItem, execErr error) error {
	log := slog.With("work_id", item.ID, "ref", item.Ref, "attempt", item.Attempts)

	permanent := false
	var p Permanent
	if errors.As(execErr, &p) {
		permanent = p.Permanent()
	}
	exhausted := item.Attempts >= item.MaxAttempts

	if !permanent && !exhausted {
		delay := Backoff(item.Attempts, w.retry, w.jitter)
		log.Warn("Work item failed, scheduling retry",
			"error", execErr, "retry_in", delay)
		return w.client.WorkItem.UpdateOneID(item.ID).
			SetStatus(workitem.StatusPending).
			SetRunAfter(time.Now().Add(delay)).
			SetErrorMessage(execErr.Error()).
			ClearPodID().
			Exec(ctx)
	}

	log.Error("Work item permanently failed, dead-lettering", "error", execErr)

	if err := w.client.WorkItem.UpdateOneID(item.ID).
		SetStatus(workitem.StatusDead).
		SetErrorMessage(execErr.Error()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark item dead: %w", err)
	}

	delivery := DeliveryFromMap(item.Delivery)
	err := w.client.DeadLetter.Create().
		SetSubscription(delivery.Subscription).
		SetEvent(item.Args).
		SetErrorMessage(execErr.Error()).
		SetAttempts(item.Attempts).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to record dead letter", "work_id", item.ID, "error", err)
	}

	// Actions hand their terminal failure to onComplete so the owning
	// mutation can record the failure state.
	if item.OnComplete != "" {
		if err := w.runCompletion(ctx, item, Outcome{
			Success:  false,
			Error:    execErr.Error(),
			Attempts: item.Attempts,
		}); err != nil {
			slog.Error("Failed to run onComplete for dead item",
				"work_id", item.ID, "on_complete", item.OnComplete, "error", err)
		}
	}
	return nil
}

func (w *Worker) runCompletion(ctx context.Context, item *ent.WorkItem, outcome Outcome) error {
	completion, ok := w.registry.Completion(item.OnComplete)
	if !ok {
		return fmt.Errorf("no completion registered for ref %q", item.OnComplete)
	}
	delivery := DeliveryFromMap(item.Delivery)
	delivery.WorkID = int64(item.ID)
	delivery.Attempt = item.Attempts
	delivery.MaxAttempts = item.MaxAttempts
	return completion(ctx, outcome, delivery)
}

// runHeartbeat periodically updates last_heartbeat for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, itemID int) {
	ticker := time.NewTicker(w.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.WorkItem.UpdateOneID(itemID).
				SetLastHeartbeat(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "work_id", itemID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, itemID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentItemID = itemID
	w.lastActivity = time.Now()
}
