// Package upcast provides on-read schema migration for stored events. Each
// event type owns a chain of per-version migrations (N → N+1); events read
// from the log are migrated to the current schema version before they reach
// handlers. Chains are validated for completeness at construction.
package upcast

import (
	"fmt"

	"github.com/strandkit/strand/pkg/eventstore"
)

// Stable error codes.
const (
	CodeFutureVersion    = "FUTURE_VERSION"
	CodeMissingMigration = "MISSING_MIGRATION"
	CodeInvalidEvent     = "INVALID_EVENT"
)

// Error is a typed upcasting failure carrying a stable code.
type Error struct {
	Code      string
	EventType string
	Message   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (event type %q)", e.Code, e.Message, e.EventType)
}

// Migration transforms an event's payload from one schema version to the
// next. Implementations mutate the given payload copy in place.
type Migration func(e *eventstore.Event) error

// Validator may reject a fully migrated event.
type Validator func(e *eventstore.Event) error

// Result is the outcome of an upcast.
type Result struct {
	Event       *eventstore.Event
	WasUpcasted bool
}

// Upcaster migrates one event type to its current schema version.
type Upcaster struct {
	eventType      string
	currentVersion int
	migrations     map[int]Migration
	validate       Validator
}

// Option configures an Upcaster.
type Option func(*Upcaster)

// WithValidator installs a final validator run after migration.
func WithValidator(v Validator) Option {
	return func(u *Upcaster) { u.validate = v }
}

// New builds an Upcaster. The migration map must form a complete chain
// [1..currentVersion-1]; a gap fails with MISSING_MIGRATION.
func New(eventType string, currentVersion int, migrations map[int]Migration, opts ...Option) (*Upcaster, error) {
	if currentVersion < 1 {
		return nil, &Error{
			Code:      CodeInvalidEvent,
			EventType: eventType,
			Message:   fmt.Sprintf("current version must be >= 1, got %d", currentVersion),
		}
	}
	for v := 1; v < currentVersion; v++ {
		if _, ok := migrations[v]; !ok {
			return nil, &Error{
				Code:      CodeMissingMigration,
				EventType: eventType,
				Message:   fmt.Sprintf("no migration from version %d to %d", v, v+1),
			}
		}
	}
	u := &Upcaster{
		eventType:      eventType,
		currentVersion: currentVersion,
		migrations:     migrations,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// EventType returns the event type this upcaster serves.
func (u *Upcaster) EventType() string { return u.eventType }

// CurrentVersion returns the current schema version.
func (u *Upcaster) CurrentVersion() int { return u.currentVersion }

// Upcast migrates the event to the current schema version. The stored event
// is never mutated; migrations run on a copy. An event already at the
// current version is returned unchanged with WasUpcasted false; a version
// beyond current fails with FUTURE_VERSION.
func (u *Upcaster) Upcast(e *eventstore.Event) (Result, error) {
	switch {
	case e.SchemaVersion == u.currentVersion:
		return Result{Event: e}, nil
	case e.SchemaVersion > u.currentVersion:
		return Result{}, &Error{
			Code:      CodeFutureVersion,
			EventType: u.eventType,
			Message: fmt.Sprintf("event %s has schema version %d, current is %d",
				e.EventID, e.SchemaVersion, u.currentVersion),
		}
	}

	migrated := cloneEvent(e)
	for v := e.SchemaVersion; v < u.currentVersion; v++ {
		migrate := u.migrations[v]
		if err := migrate(migrated); err != nil {
			return Result{}, &Error{
				Code:      CodeInvalidEvent,
				EventType: u.eventType,
				Message:   fmt.Sprintf("migration %d -> %d failed: %v", v, v+1, err),
			}
		}
		migrated.SchemaVersion = v + 1
	}

	if u.validate != nil {
		if err := u.validate(migrated); err != nil {
			return Result{}, &Error{
				Code:      CodeInvalidEvent,
				EventType: u.eventType,
				Message:   fmt.Sprintf("validation failed: %v", err),
			}
		}
	}

	return Result{Event: migrated, WasUpcasted: true}, nil
}

// Registry maps event types to their upcasters. Unknown event types pass
// through unmodified.
type Registry struct {
	byType map[string]*Upcaster
}

// NewRegistry builds a Registry. Duplicate event types are a construction
// error.
func NewRegistry(upcasters ...*Upcaster) (*Registry, error) {
	byType := make(map[string]*Upcaster, len(upcasters))
	for _, u := range upcasters {
		if _, dup := byType[u.eventType]; dup {
			return nil, fmt.Errorf("duplicate upcaster for event type %q", u.eventType)
		}
		byType[u.eventType] = u
	}
	return &Registry{byType: byType}, nil
}

// Upcast routes the event to its upcaster, or passes it through unchanged
// when its type is not registered.
func (r *Registry) Upcast(e *eventstore.Event) (Result, error) {
	u, ok := r.byType[e.EventType]
	if !ok {
		return Result{Event: e}, nil
	}
	return u.Upcast(e)
}

func cloneEvent(e *eventstore.Event) *eventstore.Event {
	cp := *e
	cp.Payload = make(map[string]any, len(e.Payload))
	for k, v := range e.Payload {
		cp.Payload[k] = v
	}
	return &cp
}
