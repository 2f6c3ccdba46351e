// Package durable wraps the command orchestrator with intent/completion
// bracketing: a crash between "command started" and "command finished" leaves
// a pending intent behind, which a scheduled timeout (and a periodic sweep)
// flips to abandoned for operators to reconcile.
package durable

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/strandkit/strand/pkg/command"
	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/pkg/workpool"
)

// TimeoutRef is the registered mutation that abandons a timed-out intent.
const TimeoutRef = "intent.timeout"

// Executor brackets orchestrator calls with intents.
type Executor struct {
	intents IntentStore
	orch    *command.Orchestrator
	store   eventstore.Store
	cfg     *config.DurableConfig
	now     func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Option configures an Executor.
type Option func(*Executor)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(x *Executor) { x.now = now }
}

// NewExecutor creates a durable executor. cfg may be nil for defaults.
func NewExecutor(intents IntentStore, orch *command.Orchestrator, store eventstore.Store, cfg *config.DurableConfig, opts ...Option) *Executor {
	if cfg == nil {
		cfg = config.DefaultDurableConfig()
	}
	x := &Executor{
		intents: intents,
		orch:    orch,
		store:   store,
		cfg:     cfg,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Execute runs one command with intent bracketing. streamID is the target
// stream, known to the caller before the handler runs (it is part of the
// intent key).
func (x *Executor) Execute(ctx context.Context, cfg command.Config, args command.Args, streamID string) (*command.Result, error) {
	now := x.now()
	intentKey := fmt.Sprintf("%s:%s:%s:%d_%s",
		cfg.CommandType, cfg.StreamType, streamID, now.UnixMilli(), uuid.New().String()[:8])

	timeout := x.cfg.IntentTimeout
	expiresAt := now.Add(timeout)
	if err := x.intents.Create(ctx, &Intent{
		IntentKey:     intentKey,
		OperationType: cfg.CommandType,
		StreamType:    cfg.StreamType,
		StreamID:      streamID,
		TimeoutMs:     int(timeout.Milliseconds()),
		ExpiresAt:     expiresAt,
	}); err != nil {
		return nil, err
	}

	// The scheduled timeout is the orphan detector: if this process dies
	// before settling the intent, the job flips it to abandoned.
	if _, err := x.store.EnqueueWork(ctx, eventstore.WorkInput{
		Ref:      TimeoutRef,
		Args:     map[string]any{"intentKey": intentKey},
		RunAfter: expiresAt,
	}); err != nil {
		return nil, fmt.Errorf("schedule intent timeout for %s: %w", intentKey, err)
	}

	result, err := x.orch.Execute(ctx, cfg, args)
	if err != nil {
		if failErr := x.intents.Fail(ctx, intentKey, err.Error()); failErr != nil {
			slog.Error("Failed to mark intent failed",
				"intent_key", intentKey, "error", failErr)
		}
		return nil, err
	}

	if err := x.intents.Complete(ctx, intentKey, result.EventID); err != nil {
		slog.Error("Failed to mark intent completed",
			"intent_key", intentKey, "error", err)
	}
	return result, nil
}

// RegisterTimeoutHandler wires the intent timeout mutation into the pool
// registry.
func RegisterTimeoutHandler(reg *workpool.Registry, intents IntentStore) error {
	return reg.RegisterMutation(TimeoutRef, func(ctx context.Context, args map[string]any, d workpool.Delivery) (map[string]any, error) {
		intentKey, _ := args["intentKey"].(string)
		if intentKey == "" {
			return nil, fmt.Errorf("intent timeout: missing intentKey")
		}
		abandoned, err := intents.Abandon(ctx, intentKey)
		if err != nil {
			return nil, err
		}
		if abandoned {
			slog.Warn("Intent abandoned after timeout", "intent_key", intentKey)
		}
		return map[string]any{"abandoned": abandoned}, nil
	})
}

// StartSweeper launches the periodic sweep that abandons expired pending
// intents. It backs up the scheduled timeout jobs, which can be lost with a
// queue wipe.
func (x *Executor) StartSweeper() {
	x.wg.Add(1)
	go func() {
		defer x.wg.Done()
		ticker := time.NewTicker(x.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-x.stopCh:
				return
			case <-ticker.C:
				x.Sweep(context.Background())
			}
		}
	}()
	slog.Info("Intent sweeper started", "interval", x.cfg.SweepInterval)
}

// Sweep abandons expired pending intents once.
func (x *Executor) Sweep(ctx context.Context) {
	n, err := x.intents.AbandonExpired(ctx, x.now())
	if err != nil {
		slog.Error("Intent sweep failed", "error", err)
		return
	}
	if n > 0 {
		slog.Warn("Intent sweep abandoned expired intents", "count", n)
	}
}

// StopSweeper stops the periodic sweep.
func (x *Executor) StopSweeper() {
	x.stopOnce.Do(func() { close(x.stopCh) })
	x.wg.Wait()
}
