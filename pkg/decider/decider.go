// Package decider defines the pure decision function contract at the heart
// of every command: (state, command, ctx) → decision. Deciders are
// deterministic and perform no I/O; all persistence happens in the
// orchestrator frames around them.
package decider

import "time"

// Status discriminates the decision variants.
type Status string

// Decision variants.
const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusRejected Status = "rejected"
	StatusConflict Status = "conflict"
)

// Command is the request a decider evaluates. CommandID is the idempotency
// key; the event a decider produces is persisted with causationId equal to
// it.
type Command struct {
	CommandID     string
	CommandType   string
	CorrelationID string
	CausationID   string
	TargetContext string
	Category      string
	Payload       map[string]any
}

// Context carries the ambient values a decider may depend on. Supplying time
// explicitly keeps deciders deterministic.
type Context struct {
	Now           time.Time
	CommandID     string
	CorrelationID string
}

// EventDraft is the event a decider proposes for appending. StreamID may be
// left empty for single-stream handlers (the orchestrator fills it in).
type EventDraft struct {
	EventType     string
	StreamID      string
	Category      string
	SchemaVersion int
	Payload       map[string]any
}

// Decision is the tagged result of a decide call.
//
//   - success: append Event, patch CMS with StateUpdate, return Data.
//   - failed:  a business failure recorded as an event; CMS unchanged.
//   - rejected: refusal with a stable code; no event emitted.
//   - conflict: optimistic-concurrency loss (DCB deciders only).
type Decision struct {
	Status Status

	// success
	Event       *EventDraft
	Data        map[string]any
	StateUpdate map[string]any
	// DCB success: per-stream CMS patches
	StateUpdates map[string]map[string]any

	// failed / rejected
	Reason  string
	Code    string
	Message string
	Context map[string]any

	// conflict
	CurrentVersion int
}

// Success builds a success decision.
func Success(event *EventDraft, data, stateUpdate map[string]any) Decision {
	return Decision{Status: StatusSuccess, Event: event, Data: data, StateUpdate: stateUpdate}
}

// MultiSuccess builds a success decision patching several streams (DCB).
func MultiSuccess(event *EventDraft, data map[string]any, updates map[string]map[string]any) Decision {
	return Decision{Status: StatusSuccess, Event: event, Data: data, StateUpdates: updates}
}

// Failed builds a failed decision: the failure itself is an event.
func Failed(event *EventDraft, reason string, context map[string]any) Decision {
	return Decision{Status: StatusFailed, Event: event, Reason: reason, Context: context}
}

// Rejected builds a rejected decision. No event is emitted.
func Rejected(code, message string, context map[string]any) Decision {
	return Decision{Status: StatusRejected, Code: code, Message: message, Context: context}
}

// Conflict builds a conflict decision carrying the observed current version.
func Conflict(currentVersion int) Decision {
	return Decision{Status: StatusConflict, CurrentVersion: currentVersion}
}

// IsSuccess reports whether the decision is a success.
func (d Decision) IsSuccess() bool { return d.Status == StatusSuccess }

// IsFailed reports whether the decision is a business failure.
func (d Decision) IsFailed() bool { return d.Status == StatusFailed }

// IsRejected reports whether the decision is a rejection.
func (d Decision) IsRejected() bool { return d.Status == StatusRejected }

// IsConflict reports whether the decision is an OCC conflict.
func (d Decision) IsConflict() bool { return d.Status == StatusConflict }

// Func is a single-stream decider: state is nil for entity-creating
// commands.
type Func func(state map[string]any, cmd Command, ctx Context) Decision

// PreValidate may reject a command before the decider runs. It is the only
// legitimate place to consult external state (e.g. uniqueness probes); a nil
// return lets the command proceed.
type PreValidate func(ctx Context, cmd Command) *Decision
