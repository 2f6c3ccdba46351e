// Package procman implements the process manager executor: exactly-once-ish
// event-to-command coordination. Each PM instance carries a global-position
// watermark, so a redelivered event is a no-op, and a handler failure is
// rethrown so the work pool retries it with backoff; the final failed attempt
// is dead-lettered.
package procman

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/pkg/workpool"
)

// Skip reasons reported by ProcessEvent.
const (
	SkipNotSubscribed    = "not_subscribed"
	SkipAlreadyProcessed = "already_processed"
	SkipTerminalState    = "terminal_state"
)

// TriggerType classifies how a PM is driven.
type TriggerType string

// Trigger types.
const (
	TriggerEvent  TriggerType = "event"
	TriggerTime   TriggerType = "time"
	TriggerHybrid TriggerType = "hybrid"
)

// Definition describes one process manager.
type Definition struct {
	PMName             string
	EventSubscriptions []string

	// InstanceIDResolver derives the PM instance from the event. A nil
	// resolver, an error, or an empty result falls back to the event's
	// streamId (logged as a warning).
	InstanceIDResolver func(e *eventstore.Event) (string, error)

	Trigger    TriggerType
	CronConfig string
}

// EmittedCommand is one command a PM handler asks to emit.
type EmittedCommand struct {
	CommandType   string
	CommandID     string
	CorrelationID string
	Payload       map[string]any
	Delay         time.Duration
}

// Handler is the PM's business logic: given the delivered event, return the
// commands to emit. Returning an error leaves the watermark untouched so the
// pool can retry; a handler that observes projection lag must return an
// error, not an empty slice.
type Handler func(ctx context.Context, e *eventstore.Event) ([]EmittedCommand, error)

// Done optionally declares the instance finished after this event. A
// completed instance skips all further deliveries.
type Done func(e *eventstore.Event, emitted []EmittedCommand) bool

// CommandEmitter schedules emitted commands. Emission is fire-and-forget
// relative to the PM state write; command idempotency comes from commandId.
type CommandEmitter func(ctx context.Context, cmds []EmittedCommand) error

// Result reports what ProcessEvent did with one delivery.
type Result struct {
	Skipped         bool
	SkipReason      string
	InstanceID      string
	CommandsEmitted int
	Completed       bool
}

// Executor runs process managers against a state store.
type Executor struct {
	states StateStore
	store  eventstore.Store
	emit   CommandEmitter
}

// NewExecutor creates a PM executor. store is used for dead letters; emit
// schedules emitted commands (see NewPoolEmitter).
func NewExecutor(states StateStore, store eventstore.Store, emit CommandEmitter) *Executor {
	return &Executor{states: states, store: store, emit: emit}
}

// ProcessEvent delivers one event to one process manager. d carries the work
// pool's attempt counters; the PM dead letter is recorded once, on the final
// attempt, since earlier failures are retried by the pool. A zero Delivery
// means a direct invocation with no retries behind it.
func (x *Executor) ProcessEvent(ctx context.Context, def Definition, handle Handler, done Done, e *eventstore.Event, d workpool.Delivery) (*Result, error) {
	if len(def.EventSubscriptions) > 0 && !contains(def.EventSubscriptions, e.EventType) {
		return &Result{Skipped: true, SkipReason: SkipNotSubscribed}, nil
	}

	instanceID := x.resolveInstance(def, e)
	state, err := x.states.GetOrCreate(ctx, def.PMName, instanceID, e.EventID, e.Metadata.CorrelationID)
	if err != nil {
		return nil, fmt.Errorf("load PM state %s/%s: %w", def.PMName, instanceID, err)
	}

	// Watermark guard: the position only moves forward, so a duplicate or
	// out-of-order redelivery is a no-op.
	if e.GlobalPosition <= state.LastGlobalPosition {
		return &Result{Skipped: true, SkipReason: SkipAlreadyProcessed, InstanceID: instanceID}, nil
	}
	if state.Status == StatusCompleted {
		return &Result{Skipped: true, SkipReason: SkipTerminalState, InstanceID: instanceID}, nil
	}

	if err := x.states.SetStatus(ctx, def.PMName, instanceID, StatusProcessing); err != nil {
		return nil, fmt.Errorf("mark PM %s/%s processing: %w", def.PMName, instanceID, err)
	}

	final := d.MaxAttempts == 0 || d.Attempt >= d.MaxAttempts

	cmds, err := handle(ctx, e)
	if err != nil {
		if final {
			x.deadLetter(ctx, def, e, err, d.Attempt, nil)
		}
		if stErr := x.states.SetStatus(ctx, def.PMName, instanceID, StatusFailed); stErr != nil {
			slog.Error("Failed to mark PM instance failed",
				"pm_name", def.PMName, "instance_id", instanceID, "error", stErr)
		}
		return nil, fmt.Errorf("pm %s handler: %w", def.PMName, err)
	}

	if len(cmds) > 0 && x.emit != nil {
		if err := x.emit(ctx, cmds); err != nil {
			if final {
				x.deadLetter(ctx, def, e, err, d.Attempt, failedCommands(cmds))
			}
			if stErr := x.states.SetStatus(ctx, def.PMName, instanceID, StatusFailed); stErr != nil {
				slog.Error("Failed to mark PM instance failed",
					"pm_name", def.PMName, "instance_id", instanceID, "error", stErr)
			}
			return nil, fmt.Errorf("pm %s emit commands: %w", def.PMName, err)
		}
	}

	completed := done != nil && done(e, cmds)
	if err := x.states.RecordProcessed(ctx, def.PMName, instanceID, e.GlobalPosition, len(cmds), completed); err != nil {
		return nil, fmt.Errorf("advance PM watermark %s/%s: %w", def.PMName, instanceID, err)
	}

	slog.Info("PM processed event",
		"pm_name", def.PMName, "instance_id", instanceID,
		"event_type", e.EventType, "global_position", e.GlobalPosition,
		"commands_emitted", len(cmds), "completed", completed)

	return &Result{
		InstanceID:      instanceID,
		CommandsEmitted: len(cmds),
		Completed:       completed,
	}, nil
}

// Subscription adapts a PM to a work-pool mutation handler: args are the
// event in wire shape.
func (x *Executor) Subscription(def Definition, handle Handler, done Done) workpool.MutationHandler {
	return func(ctx context.Context, args map[string]any, d workpool.Delivery) (map[string]any, error) {
		e, err := eventstore.EventFromMap(args)
		if err != nil {
			return nil, fmt.Errorf("pm %s: %w", def.PMName, err)
		}
		res, err := x.ProcessEvent(ctx, def, handle, done, e, d)
		if err != nil {
			return nil, err
		}
		out := map[string]any{
			"skipped":         res.Skipped,
			"instanceId":      res.InstanceID,
			"commandsEmitted": res.CommandsEmitted,
		}
		if res.SkipReason != "" {
			out["reason"] = res.SkipReason
		}
		return out, nil
	}
}

func (x *Executor) resolveInstance(def Definition, e *eventstore.Event) string {
	if def.InstanceIDResolver == nil {
		return e.StreamID
	}
	id, err := def.InstanceIDResolver(e)
	if err != nil || id == "" {
		slog.Warn("PM instance resolver failed, falling back to streamId",
			"pm_name", def.PMName, "event_type", e.EventType,
			"stream_id", e.StreamID, "error", err)
		return e.StreamID
	}
	return id
}

func (x *Executor) deadLetter(ctx context.Context, def Definition, e *eventstore.Event, cause error, attempts int, failedCommand map[string]any) {
	if attempts < 1 {
		attempts = 1
	}
	if err := x.store.RecordDeadLetter(ctx, eventstore.DeadLetterInput{
		Subscription:  def.PMName,
		Event:         e.AsMap(),
		ErrorMessage:  cause.Error(),
		Attempts:      attempts,
		FailedCommand: failedCommand,
	}); err != nil {
		slog.Error("Failed to record PM dead letter",
			"pm_name", def.PMName, "event_id", e.EventID, "error", err)
	}
}

func failedCommands(cmds []EmittedCommand) map[string]any {
	out := make([]map[string]any, len(cmds))
	for i, c := range cmds {
		out[i] = map[string]any{
			"commandType": c.CommandType,
			"commandId":   c.CommandID,
			"payload":     c.Payload,
		}
	}
	return map[string]any{"commands": out}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// NewPoolEmitter returns a CommandEmitter that schedules each command as a
// durable work item. refFor maps a command type to its registered handler
// ref; commands for one correlation share a partition so they run in order.
func NewPoolEmitter(store eventstore.Store, refFor func(commandType string) string) CommandEmitter {
	return func(ctx context.Context, cmds []EmittedCommand) error {
		now := time.Now()
		for _, c := range cmds {
			item := eventstore.WorkInput{
				Ref: refFor(c.CommandType),
				Args: map[string]any{
					"commandType":   c.CommandType,
					"commandId":     c.CommandID,
					"correlationId": c.CorrelationID,
					"payload":       c.Payload,
				},
				PartitionKey: c.CorrelationID,
			}
			if c.Delay > 0 {
				item.RunAfter = now.Add(c.Delay)
			}
			if _, err := store.EnqueueWork(ctx, item); err != nil {
				return fmt.Errorf("schedule command %s: %w", c.CommandType, err)
			}
		}
		return nil
	}
}
