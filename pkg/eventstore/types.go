// Package eventstore defines the storage contract the runtime is built on:
// an append-only event log with per-stream optimistic concurrency and
// monotonic global positions, command-model state rows, and DCB scope
// version counters. Two implementations ship with the runtime: PGStore
// (PostgreSQL via ent, the production path) and MemStore (in-memory, for
// tests and embedded use).
package eventstore

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Category classifies an event's semantic role.
type Category string

// Event categories.
const (
	CategoryDomain      Category = "domain"
	CategoryIntegration Category = "integration"
	CategoryTrigger     Category = "trigger"
	CategoryFat         Category = "fat"
)

// Outcome records whether the decider produced a success or a business
// failure event.
type Outcome string

// Event outcomes.
const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Metadata carries the correlation fields every event is stored with.
type Metadata struct {
	CorrelationID string `json:"correlationId"`
	CausationID   string `json:"causationId"`
	UserID        string `json:"userId,omitempty"`
}

// Event is an immutable fact read back from the log.
type Event struct {
	EventID        string         `json:"eventId"`
	EventType      string         `json:"eventType"`
	StreamType     string         `json:"streamType"`
	StreamID       string         `json:"streamId"`
	StreamVersion  int            `json:"streamVersion"`
	GlobalPosition int64          `json:"globalPosition"`
	Timestamp      time.Time      `json:"timestamp"`
	Category       Category       `json:"category"`
	SchemaVersion  int            `json:"schemaVersion"`
	Payload        map[string]any `json:"payload"`
	Metadata       Metadata       `json:"metadata"`
	Outcome        Outcome        `json:"outcome"`
	BoundedContext string         `json:"boundedContext,omitempty"`
}

// AsMap renders the event in its wire shape. Used for handler args and
// dead-letter records.
func (e *Event) AsMap() map[string]any {
	m := map[string]any{
		"eventId":        e.EventID,
		"eventType":      e.EventType,
		"streamType":     e.StreamType,
		"streamId":       e.StreamID,
		"streamVersion":  e.StreamVersion,
		"globalPosition": e.GlobalPosition,
		"timestamp":      e.Timestamp.Format(time.RFC3339Nano),
		"category":       string(e.Category),
		"schemaVersion":  e.SchemaVersion,
		"payload":        e.Payload,
		"metadata": map[string]any{
			"correlationId": e.Metadata.CorrelationID,
			"causationId":   e.Metadata.CausationID,
			"userId":        e.Metadata.UserID,
		},
		"outcome": string(e.Outcome),
	}
	if e.BoundedContext != "" {
		m["boundedContext"] = e.BoundedContext
	}
	return m
}

// EventFromMap reverses AsMap. Used by asynchronous handlers, which receive
// events in wire shape through the work pool.
func EventFromMap(m map[string]any) (*Event, error) {
	e := &Event{
		EventID:        asString(m["eventId"]),
		EventType:      asString(m["eventType"]),
		StreamType:     asString(m["streamType"]),
		StreamID:       asString(m["streamId"]),
		StreamVersion:  asInt(m["streamVersion"]),
		GlobalPosition: asInt64(m["globalPosition"]),
		Category:       Category(asString(m["category"])),
		SchemaVersion:  asInt(m["schemaVersion"]),
		Outcome:        Outcome(asString(m["outcome"])),
		BoundedContext: asString(m["boundedContext"]),
	}
	if e.EventID == "" || e.EventType == "" {
		return nil, fmt.Errorf("event map missing eventId or eventType")
	}
	if ts := asString(m["timestamp"]); ts != "" {
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse event timestamp %q: %w", ts, err)
		}
		e.Timestamp = t
	}
	if payload, ok := m["payload"].(map[string]any); ok {
		e.Payload = payload
	}
	if md, ok := m["metadata"].(map[string]any); ok {
		e.Metadata = Metadata{
			CorrelationID: asString(md["correlationId"]),
			CausationID:   asString(md["causationId"]),
			UserID:        asString(md["userId"]),
		}
	}
	return e, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

// AppendEvent is the input shape for one event to append.
type AppendEvent struct {
	EventID        string
	EventType      string
	Category       Category
	SchemaVersion  int
	Payload        map[string]any
	Metadata       Metadata
	Outcome        Outcome
	BoundedContext string
}

// AppendResult reports the stream version after an append and the stored
// events in order.
type AppendResult struct {
	NewVersion int
	Events     []*Event
}

// GlobalPositions returns the global positions of the appended events.
func (r *AppendResult) GlobalPositions() []int64 {
	out := make([]int64, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.GlobalPosition
	}
	return out
}

// CMSRecord is one command-model state row.
type CMSRecord struct {
	StreamType   string
	StreamID     string
	Version      int
	State        map[string]any
	StateVersion int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ScopeRecord is one DCB scope row.
type ScopeRecord struct {
	ScopeKey       string
	CurrentVersion int
	StreamIDs      []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WorkInput describes one durable work item to enqueue on the pool. Items
// enqueued inside a WithinTx frame become visible to workers only when the
// frame commits, so a rolled-back command never leaves work behind.
type WorkInput struct {
	Ref          string
	Args         map[string]any
	Delivery     map[string]any
	PartitionKey string
	Priority     int       // lower runs first; 0 means the default (100)
	MaxAttempts  int       // 0 means the pool default (5)
	RunAfter     time.Time // zero means eligible immediately
	OnComplete   string    // registered mutation invoked with the outcome
}

// DeadLetterInput records a delivery that permanently failed.
type DeadLetterInput struct {
	Subscription  string
	Event         map[string]any
	ErrorMessage  string
	Attempts      int
	FailedCommand map[string]any
}

// ConflictError reports an optimistic-concurrency loss: the caller's
// expected version did not match the current one. No write happened.
type ConflictError struct {
	CurrentVersion int
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: current version is %d", e.CurrentVersion)
}

// AsConflict unwraps err into a *ConflictError when it is one.
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}

// Store is the storage contract used by the orchestrator, the DCB executor,
// and the process manager executor. All mutations within one WithinTx frame
// are atomic; global positions are strictly increasing across the log.
type Store interface {
	// Append appends events atomically. expectedVersion is the caller's view
	// of the current stream version (0 for a new stream); a mismatch returns
	// a *ConflictError and writes nothing.
	Append(ctx context.Context, streamType, streamID string, expectedVersion int, events []AppendEvent) (*AppendResult, error)

	// ReadStream returns the events of one stream with version > fromVersion,
	// in stream-version order.
	ReadStream(ctx context.Context, streamType, streamID string, fromVersion int) ([]*Event, error)

	// LoadCMS returns the command-model state for a stream, or nil when the
	// stream has never been written.
	LoadCMS(ctx context.Context, streamType, streamID string) (*CMSRecord, error)

	// UpsertCMS writes the full CMS state at the given version (entity
	// creation or full replacement).
	UpsertCMS(ctx context.Context, streamType, streamID string, version int, state map[string]any, stateVersion int) error

	// PatchCMS merges update into the existing CMS state and advances its
	// version. The row must exist.
	PatchCMS(ctx context.Context, streamType, streamID string, version int, update map[string]any) error

	// LookupByCommandID returns the event whose causationId equals commandID,
	// or nil when the command has never executed. This is the idempotency
	// probe.
	LookupByCommandID(ctx context.Context, commandID string) (*Event, error)

	// GetScope returns the DCB scope row, or nil when it does not exist yet.
	GetScope(ctx context.Context, scopeKey string) (*ScopeRecord, error)

	// CommitScope increments the scope version from expectedVersion and
	// records the participating streams. A missing scope with
	// expectedVersion 0 is created at version 1. On mismatch it returns a
	// *ConflictError carrying the current version (0 when absent) and
	// mutates nothing.
	CommitScope(ctx context.Context, scopeKey string, expectedVersion int, streamIDs []string) (int, error)

	// EnqueueWork inserts a durable work item in the current transactional
	// frame and returns its id.
	EnqueueWork(ctx context.Context, item WorkInput) (int64, error)

	// RecordDeadLetter writes a dead-letter row for operator review.
	RecordDeadLetter(ctx context.Context, d DeadLetterInput) error

	// WithinTx runs fn atomically. The Store passed to fn operates inside
	// the transaction; nesting is a no-op (the inner call joins the outer
	// frame).
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
