// Package dcb implements dynamic consistency boundaries: atomic
// multi-entity operations guarded by a scope-level optimistic version
// instead of a single stream version. A scope groups the streams touched by
// one business operation; conflicts are resolved by retrying the whole
// operation through the work pool, serialized per scope.
package dcb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/strandkit/strand/pkg/decider"
	"github.com/strandkit/strand/pkg/eventstore"
)

// Stable codes produced by the executor.
const (
	CodeEntitiesNotFound      = "ENTITIES_NOT_FOUND"
	CodeDCBMaxRetriesExceeded = "DCB_MAX_RETRIES_EXCEEDED"
)

// StatusDeferred marks a conflicted operation handed to the work pool for a
// scheduled retry.
const StatusDeferred = decider.Status("deferred")

// State is the aggregate view a DCB decider evaluates: the scope plus every
// participating entity's CMS.
type State struct {
	ScopeKey     string
	ScopeVersion int
	Entities     map[string]*eventstore.CMSRecord
}

// Decider is a pure multi-entity decision function.
type Decider func(state *State, cmd decider.Command, dctx decider.Context) decider.Decision

// LoadEntity resolves one participating stream to its CMS record, or nil
// when the entity does not exist.
type LoadEntity func(ctx context.Context, tx eventstore.Store, streamID string) (*eventstore.CMSRecord, error)

// ApplyUpdate persists one entity's state update. The default patches the
// entity's CMS at its own next version.
type ApplyUpdate func(ctx context.Context, tx eventstore.Store, cms *eventstore.CMSRecord, update map[string]any, newVersion int, now time.Time) error

// Entities names the participating streams and how to load them.
type Entities struct {
	StreamIDs []string
	Load      LoadEntity
}

// Request is one DCB operation.
type Request struct {
	ScopeKey        string
	ExpectedVersion int
	Entities        Entities
	Decide          Decider
	Command         decider.Command
	ApplyUpdate     ApplyUpdate

	// UseScope enables the scope version pre-check and commit. Without it
	// the operation relies solely on per-entity versions.
	UseScope bool
}

// Result is the outcome of one DCB operation.
type Result struct {
	Status decider.Status

	// success / failed
	Data           map[string]any
	EventID        string
	GlobalPosition int64
	NewVersion     int

	// failed / rejected
	Reason  string
	Code    string
	Message string
	Context map[string]any

	// conflict
	CurrentVersion int

	// deferred (retry helper)
	WorkID           int64
	RetryAttempt     int
	ScheduledAfterMs int

	Replayed bool
}

// Executor runs DCB operations against a store.
type Executor struct {
	store eventstore.Store
	now   func() time.Time
}

// Option configures an Executor.
type Option func(*Executor)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(x *Executor) { x.now = now }
}

// NewExecutor creates a DCB executor.
func NewExecutor(store eventstore.Store, opts ...Option) *Executor {
	x := &Executor{store: store, now: time.Now}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Execute runs one DCB operation. Scope commit conflicts are reported as
// conflict WITHOUT rolling back already-applied entity updates — the
// operation converges via retry, and entity updates are keyed by their own
// versions. All other failure paths roll back.
func (x *Executor) Execute(ctx context.Context, req Request) (*Result, error) {
	key, kerr := ParseScopeKey(req.ScopeKey)
	if kerr != nil {
		return &Result{
			Status:  decider.StatusRejected,
			Code:    kerr.Code,
			Message: kerr.Message,
			Reason:  kerr.Message,
		}, nil
	}
	if len(req.Entities.StreamIDs) > 0 && req.Entities.Load == nil {
		return nil, fmt.Errorf("dcb %s: entities declared without a loader", req.ScopeKey)
	}

	// Every event is stored with causationId = commandId under a uniqueness
	// guard, so a caller that supplies no commandId gets a fresh one rather
	// than colliding on the empty string.
	if req.Command.CommandID == "" {
		req.Command.CommandID = uuid.New().String()
		if req.Command.CorrelationID == "" {
			req.Command.CorrelationID = req.Command.CommandID
		}
	}

	var result *Result
	err := x.store.WithinTx(ctx, func(ctx context.Context, tx eventstore.Store) error {
		var txErr error
		result, txErr = x.executeInTx(ctx, tx, req, key)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (x *Executor) executeInTx(ctx context.Context, tx eventstore.Store, req Request, key ScopeKey) (*Result, error) {
	// Idempotency: a retried commandId replays the prior outcome.
	if req.Command.CommandID != "" {
		prior, err := tx.LookupByCommandID(ctx, req.Command.CommandID)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			r := &Result{
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
			return r, nil
		}
	}

	// Scope pre-check.
	if req.UseScope {
		scope, err := tx.GetScope(ctx, req.ScopeKey)
		if err != nil {
			return nil, err
		}
		if scope == nil && req.ExpectedVersion != 0 {
			return &Result{Status: decider.StatusConflict, CurrentVersion: 0}, nil
		}
		if scope != nil && scope.CurrentVersion != req.ExpectedVersion {
			return &Result{Status: decider.StatusConflict, CurrentVersion: scope.CurrentVersion}, nil
		}
	}

	// Load participating entities.
	entities := make(map[string]*eventstore.CMSRecord, len(req.Entities.StreamIDs))
	var missing []string
	for _, streamID := range req.Entities.StreamIDs {
		cms, err := req.Entities.Load(ctx, tx, streamID)
		if err != nil {
			return nil, fmt.Errorf("load entity %s: %w", streamID, err)
		}
		if cms == nil {
			missing = append(missing, streamID)
			continue
		}
		entities[streamID] = cms
	}
	if len(missing) > 0 {
		return &Result{
			Status:  decider.StatusRejected,
			Code:    CodeEntitiesNotFound,
			Message: fmt.Sprintf("entities not found: %v", missing),
			Reason:  fmt.Sprintf("entities not found: %v", missing),
			Context: map[string]any{"missing": missing},
		}, nil
	}

	state := &State{
		ScopeKey:     req.ScopeKey,
		ScopeVersion: req.ExpectedVersion,
		Entities:     entities,
	}
	dctx := decider.Context{
		Now:           x.now(),
		CommandID:     req.Command.CommandID,
		CorrelationID: req.Command.CorrelationID,
	}

	d := req.Decide(state, req.Command, dctx)

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
	case decider.StatusFailed:
		stored, err := x.appendScopeEvent(ctx, tx, req, key, d, eventstore.OutcomeFailed)
		if err != nil {
			return nil, err
		}
		return &Result{
			Status:         decider.StatusFailed,
			Reason:         d.Reason,
			EventID:        stored.EventID,
			GlobalPosition: stored.GlobalPosition,
			Context:        d.Context,
		}, nil
	}

	// Success: apply per-entity updates in deterministic order.
	now := x.now()
	newVersion := req.ExpectedVersion + 1
	apply := req.ApplyUpdate
	if apply == nil {
		apply = defaultApplyUpdate
	}
	updated := make([]string, 0, len(d.StateUpdates))
	for _, streamID := range sortedKeys(d.StateUpdates) {
		cms, ok := entities[streamID]
		if !ok {
			// Updating a stream the decider never loaded is a programmer
			// error and aborts the operation.
			return nil, fmt.Errorf("dcb %s: decider updated unknown stream %q", req.ScopeKey, streamID)
		}
		if err := apply(ctx, tx, cms, d.StateUpdates[streamID], newVersion, now); err != nil {
			return nil, fmt.Errorf("apply update for %s: %w", streamID, err)
		}
		updated = append(updated, streamID)
	}

	// Commit scope. A conflict here does NOT roll back the entity updates
	// already applied; the caller converges via retry.
	if req.UseScope {
		v, err := tx.CommitScope(ctx, req.ScopeKey, req.ExpectedVersion, updated)
		if err != nil {
			if conflict, ok := eventstore.AsConflict(err); ok {
				return &Result{Status: decider.StatusConflict, CurrentVersion: conflict.CurrentVersion}, nil
			}
			return nil, err
		}
		newVersion = v
	}

	stored, err := x.appendScopeEvent(ctx, tx, req, key, d, eventstore.OutcomeSuccess)
	if err != nil {
		return nil, err
	}

	return &Result{
		Status:         decider.StatusSuccess,
		Data:           d.Data,
		EventID:        stored.EventID,
		GlobalPosition: stored.GlobalPosition,
		NewVersion:     newVersion,
	}, nil
}

// appendScopeEvent persists the decider's event as a single scope-level
// event with streamId = scopeId.
func (x *Executor) appendScopeEvent(ctx context.Context, tx eventstore.Store, req Request, key ScopeKey, d decider.Decision, outcome eventstore.Outcome) (*eventstore.Event, error) {
	if d.Event == nil {
		return nil, fmt.Errorf("dcb %s: decider returned %s without an event", req.ScopeKey, d.Status)
	}

	base := 0
	if cms, err := tx.LoadCMS(ctx, key.ScopeType, key.ScopeID); err != nil {
		return nil, err
	} else if cms != nil {
		base = cms.Version
	}

	appended, err := tx.Append(ctx, key.ScopeType, key.ScopeID, base, []eventstore.AppendEvent{{
		EventType:     d.Event.EventType,
		Category:      eventstore.Category(d.Event.Category),
		SchemaVersion: d.Event.SchemaVersion,
		Payload:       d.Event.Payload,
		Metadata: eventstore.Metadata{
			CorrelationID: req.Command.CorrelationID,
			CausationID:   req.Command.CommandID,
		},
		Outcome:        outcome,
		BoundedContext: req.Command.TargetContext,
	}})
	if err != nil {
		return nil, err
	}
	return appended.Events[0], nil
}

func defaultApplyUpdate(ctx context.Context, tx eventstore.Store, cms *eventstore.CMSRecord, update map[string]any, newVersion int, now time.Time) error {
	return tx.PatchCMS(ctx, cms.StreamType, cms.StreamID, cms.Version+1, update)
}

func sortedKeys(m map[string]map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
