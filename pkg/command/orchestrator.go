// Package command implements the command orchestrator: one command in, one
// serializable transaction around the pure decider, one event out. The
// orchestrator owns idempotency (commandId probe), event persistence with
// causationId = commandId, CMS maintenance, inline projection dispatch, and
// publication to the bus.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/strandkit/strand/pkg/bus"
	"github.com/strandkit/strand/pkg/decider"
	"github.com/strandkit/strand/pkg/eventstore"
)

// Result is the outcome of executing one command.
type Result struct {
	Status decider.Status

	// success
	Data           map[string]any
	Version        int
	EventID        string
	GlobalPosition int64

	// failed / rejected
	Reason  string
	Code    string
	Message string
	Context map[string]any

	// conflict
	CurrentVersion int

	// Replayed marks a result reconstructed from a prior execution of the
	// same commandId.
	Replayed bool
}

// Projection applies one event to a read model, inline with the command
// transaction. Apply must be idempotent on the event's global position.
type Projection struct {
	Name  string
	Apply func(ctx context.Context, tx eventstore.Store, e *eventstore.Event) error
}

// HandlerResult is what a domain handler returns: the decision plus the
// stream coordinates the orchestrator persists against.
type HandlerResult struct {
	Decision    decider.Decision
	StreamID    string
	BaseVersion int

	// State, when non-nil, is the full CMS state to insert (entity
	// creation). Otherwise the decision's StateUpdate is patched in.
	State        map[string]any
	StateVersion int
}

// Handler loads whatever state it needs, runs the decider, and reports the
// decision. It must not append events or write CMS rows itself.
type Handler func(ctx context.Context, tx eventstore.Store, cmd decider.Command, dctx decider.Context) (*HandlerResult, error)

// Config describes one executable command.
type Config struct {
	CommandType    string
	BoundedContext string
	StreamType     string
	Category       string
	Handler        Handler

	// ValidatePayload rejects malformed payloads before the handler runs
	// (usually registry.ValidatePayload bound to the command type).
	ValidatePayload func(payload map[string]any) error

	// Projection is the primary projection, run inline before secondaries.
	Projection       *Projection
	Secondary        []Projection
	FailedProjection *Projection
}

// Args is the per-call input.
type Args struct {
	// CommandID, when supplied, is used verbatim — this is what makes
	// cross-process retries idempotent. Empty mints a new one.
	CommandID     string
	CorrelationID string
	UserID        string
	Payload       map[string]any
}

// Orchestrator executes commands against a store and publishes to a bus.
type Orchestrator struct {
	store eventstore.Store
	bus   *bus.Bus
	now   func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// NewOrchestrator creates an orchestrator. bus may be nil when no
// asynchronous subscribers exist.
func NewOrchestrator(store eventstore.Store, b *bus.Bus, opts ...Option) *Orchestrator {
	o := &Orchestrator{store: store, bus: b, now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// errRollback forces the transaction to roll back while the orchestrator
// still returns a structured result (conflict paths).
var errRollback = errors.New("rollback")

// Execute runs one command end-to-end inside a single transaction.
func (o *Orchestrator) Execute(ctx context.Context, cfg Config, args Args) (*Result, error) {
	commandID := args.CommandID
	if commandID == "" {
		commandID = uuid.New().String()
	}
	// correlationId never changes across retries of the same command.
	correlationID := args.CorrelationID
	if correlationID == "" {
		correlationID = commandID
	}

	if cfg.ValidatePayload != nil {
		if err := cfg.ValidatePayload(args.Payload); err != nil {
			return &Result{
				Status:  decider.StatusRejected,
				Code:    "INVALID_PAYLOAD",
				Message: err.Error(),
				Reason:  err.Error(),
			}, nil
		}
	}

	var result *Result
	err := o.store.WithinTx(ctx, func(ctx context.Context, tx eventstore.Store) error {
		var txErr error
		result, txErr = o.executeInTx(ctx, tx, cfg, args, commandID, correlationID)
		return txErr
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return result, nil
		}
		return nil, err
	}
	return result, nil
}

func (o *Orchestrator) executeInTx(ctx context.Context, tx eventstore.Store, cfg Config, args Args, commandID, correlationID string) (*Result, error) {
	// 1. Idempotency probe: a prior event with this causationId means the
	// command already ran; reconstruct its result instead of re-deciding.
	prior, err := tx.LookupByCommandID(ctx, commandID)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		slog.Info("Command replayed from prior execution",
			"command_type", cfg.CommandType, "command_id", commandID,
			"event_id", prior.EventID)
		return replayResult(prior), nil
	}

	cmd := decider.Command{
		CommandID:     commandID,
		CommandType:   cfg.CommandType,
		CorrelationID: correlationID,
		CausationID:   commandID,
		TargetContext: cfg.BoundedContext,
		Category:      cfg.Category,
		Payload:       args.Payload,
	}
	dctx := decider.Context{
		Now:           o.now(),
		CommandID:     commandID,
		CorrelationID: correlationID,
	}

	hr, err := cfg.Handler(ctx, tx, cmd, dctx)
	if err != nil {
		// Handler exceptions roll back the entire command transaction.
		return nil, fmt.Errorf("handler for %s: %w", cfg.CommandType, err)
	}

	d := hr.Decision
	switch d.Status {
	case decider.StatusRejected:
		return &Result{
			Status:  decider.StatusRejected,
			Code:    d.Code,
			Message: d.Message,
			Reason:  d.Message,
			Context: d.Context,
		}, nil
	case decider.StatusConflict:
		return &Result{Status: decider.StatusConflict, CurrentVersion: d.CurrentVersion}, nil
	}

	if d.Event == nil {
		return nil, fmt.Errorf("decider for %s returned %s without an event", cfg.CommandType, d.Status)
	}

	streamID := hr.StreamID
	if d.Event.StreamID != "" {
		streamID = d.Event.StreamID
	}
	outcome := eventstore.OutcomeSuccess
	if d.IsFailed() {
		outcome = eventstore.OutcomeFailed
	}

	appended, err := tx.Append(ctx, cfg.StreamType, streamID, hr.BaseVersion, []eventstore.AppendEvent{{
		EventType:     d.Event.EventType,
		Category:      eventstore.Category(d.Event.Category),
		SchemaVersion: d.Event.SchemaVersion,
		Payload:       d.Event.Payload,
		Metadata: eventstore.Metadata{
			CorrelationID: correlationID,
			CausationID:   commandID,
			UserID:        args.UserID,
		},
		Outcome:        outcome,
		BoundedContext: cfg.BoundedContext,
	}})
	if err != nil {
		if conflict, ok := eventstore.AsConflict(err); ok {
			return &Result{Status: decider.StatusConflict, CurrentVersion: conflict.CurrentVersion}, errRollback
		}
		return nil, err
	}
	stored := appended.Events[0]

	if d.IsSuccess() {
		// Entity creation inserts full state; mutation patches.
		if hr.State != nil {
			err = tx.UpsertCMS(ctx, cfg.StreamType, streamID, appended.NewVersion, hr.State, hr.StateVersion)
		} else if d.StateUpdate != nil {
			err = tx.PatchCMS(ctx, cfg.StreamType, streamID, appended.NewVersion, d.StateUpdate)
		}
		if err != nil {
			return nil, err
		}

		// Primary projection runs before secondaries.
		o.dispatch(ctx, tx, cfg.Projection, stored)
		for i := range cfg.Secondary {
			o.dispatch(ctx, tx, &cfg.Secondary[i], stored)
		}
	} else {
		o.dispatch(ctx, tx, cfg.FailedProjection, stored)
	}

	// Publish to asynchronous subscribers. An enqueue failure rolls back the
	// whole command — a persisted event that was never published cannot be
	// re-published.
	if o.bus != nil {
		if _, err := o.bus.Publish(ctx, tx, stored); err != nil {
			return nil, err
		}
	}

	if d.IsFailed() {
		return &Result{
			Status:         decider.StatusFailed,
			Reason:         d.Reason,
			EventID:        stored.EventID,
			GlobalPosition: stored.GlobalPosition,
			Version:        appended.NewVersion,
			Context:        d.Context,
		}, nil
	}
	return &Result{
		Status:         decider.StatusSuccess,
		Data:           d.Data,
		Version:        appended.NewVersion,
		EventID:        stored.EventID,
		GlobalPosition: stored.GlobalPosition,
	}, nil
}

// dispatch runs one projection inline. A projection failure dead-letters the
// delivery but never rolls back the event — events are facts.
func (o *Orchestrator) dispatch(ctx context.Context, tx eventstore.Store, p *Projection, e *eventstore.Event) {
	if p == nil {
		return
	}
	if err := p.Apply(ctx, tx, e); err != nil {
		slog.Error("Projection dispatch failed, dead-lettering",
			"projection", p.Name, "event_id", e.EventID, "error", err)
		if dlErr := tx.RecordDeadLetter(ctx, eventstore.DeadLetterInput{
			Subscription: p.Name,
			Event:        e.AsMap(),
			ErrorMessage: err.Error(),
			Attempts:     1,
		}); dlErr != nil {
			slog.Error("Failed to record projection dead letter",
				"projection", p.Name, "event_id", e.EventID, "error", dlErr)
		}
	}
}

// replayResult reconstructs the original result from the persisted event.
func replayResult(prior *eventstore.Event) *Result {
	r := &Result{
		Version:        prior.StreamVersion,
		EventID:        prior.EventID,
		GlobalPosition: prior.GlobalPosition,
		Replayed:       true,
	}
	if prior.Outcome == eventstore.OutcomeFailed {
		r.Status = decider.StatusFailed
		if reason, ok := prior.Payload["reason"].(string); ok {
			r.Reason = reason
		}
	} else {
		r.Status = decider.StatusSuccess
		r.Data = prior.Payload
	}
	return r
}
