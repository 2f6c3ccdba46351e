package eventstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store. It implements the full contract —
// per-stream OCC, monotonic global positions, scope versioning, and
// transactional rollback — and is used by unit tests and embedded callers
// that do not need durability.
//
// Internals follow copy-on-write: stored records are never mutated in place,
// so a transaction snapshot is a set of shallow map copies.
type MemStore struct {
	mu sync.Mutex
	st memState
}

type memState struct {
	events      []*Event
	byCommand   map[string]*Event
	cms         map[string]*CMSRecord
	scopes      map[string]*ScopeRecord
	work        []*QueuedWork
	deadLetters []*DeadLetterInput
	nextPos     int64
	nextWorkID  int64
}

// QueuedWork is one enqueued item as MemStore holds it.
type QueuedWork struct {
	ID int64
	WorkInput
}

func (s memState) snapshot() memState {
	snap := memState{
		events:      s.events[:len(s.events):len(s.events)],
		byCommand:   make(map[string]*Event, len(s.byCommand)),
		cms:         make(map[string]*CMSRecord, len(s.cms)),
		scopes:      make(map[string]*ScopeRecord, len(s.scopes)),
		work:        s.work[:len(s.work):len(s.work)],
		deadLetters: s.deadLetters[:len(s.deadLetters):len(s.deadLetters)],
		nextPos:     s.nextPos,
		nextWorkID:  s.nextWorkID,
	}
	for k, v := range s.byCommand {
		snap.byCommand[k] = v
	}
	for k, v := range s.cms {
		snap.cms[k] = v
	}
	for k, v := range s.scopes {
		snap.scopes[k] = v
	}
	return snap
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		st: memState{
			byCommand: make(map[string]*Event),
			cms:       make(map[string]*CMSRecord),
			scopes:    make(map[string]*ScopeRecord),
		},
	}
}

func streamKey(streamType, streamID string) string {
	return streamType + "/" + streamID
}

// Append implements Store.
func (s *MemStore) Append(ctx context.Context, streamType, streamID string, expectedVersion int, events []AppendEvent) (*AppendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.append(streamType, streamID, expectedVersion, events)
}

func (st *memState) append(streamType, streamID string, expectedVersion int, events []AppendEvent) (*AppendResult, error) {
	current := 0
	if cms, ok := st.cms[streamKey(streamType, streamID)]; ok {
		current = cms.Version
	}
	if expectedVersion != current {
		return nil, &ConflictError{CurrentVersion: current}
	}

	result := &AppendResult{NewVersion: current}
	for _, in := range events {
		if prior, ok := st.byCommand[in.Metadata.CausationID]; ok {
			return nil, fmt.Errorf("duplicate causationId %q (event %s)", in.Metadata.CausationID, prior.EventID)
		}
		st.nextPos++
		result.NewVersion++

		eventID := in.EventID
		if eventID == "" {
			eventID = uuid.New().String()
		}
		category := in.Category
		if category == "" {
			category = CategoryDomain
		}
		schemaVersion := in.SchemaVersion
		if schemaVersion == 0 {
			schemaVersion = 1
		}
		outcome := in.Outcome
		if outcome == "" {
			outcome = OutcomeSuccess
		}

		e := &Event{
			EventID:        eventID,
			EventType:      in.EventType,
			StreamType:     streamType,
			StreamID:       streamID,
			StreamVersion:  result.NewVersion,
			GlobalPosition: st.nextPos,
			Timestamp:      time.Now().UTC(),
			Category:       category,
			SchemaVersion:  schemaVersion,
			Payload:        in.Payload,
			Metadata:       in.Metadata,
			Outcome:        outcome,
			BoundedContext: in.BoundedContext,
		}
		st.events = append(st.events, e)
		st.byCommand[e.Metadata.CausationID] = e
		result.Events = append(result.Events, e)
	}

	// Track the stream version even before any CMS state is written, so the
	// OCC gate and the CMS row stay in lockstep.
	key := streamKey(streamType, streamID)
	prev, ok := st.cms[key]
	now := time.Now().UTC()
	if !ok {
		st.cms[key] = &CMSRecord{
			StreamType:   streamType,
			StreamID:     streamID,
			Version:      result.NewVersion,
			State:        map[string]any{},
			StateVersion: 1,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	} else {
		next := *prev
		next.Version = result.NewVersion
		next.UpdatedAt = now
		st.cms[key] = &next
	}

	return result, nil
}

// ReadStream implements Store.
func (s *MemStore) ReadStream(ctx context.Context, streamType, streamID string, fromVersion int) ([]*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.readStream(streamType, streamID, fromVersion), nil
}

func (st *memState) readStream(streamType, streamID string, fromVersion int) []*Event {
	var out []*Event
	for _, e := range st.events {
		if e.StreamType == streamType && e.StreamID == streamID && e.StreamVersion > fromVersion {
			out = append(out, e)
		}
	}
	return out
}

// LoadCMS implements Store.
func (s *MemStore) LoadCMS(ctx context.Context, streamType, streamID string) (*CMSRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.loadCMS(streamType, streamID), nil
}

func (st *memState) loadCMS(streamType, streamID string) *CMSRecord {
	cms, ok := st.cms[streamKey(streamType, streamID)]
	if !ok {
		return nil
	}
	// Return a copy so callers cannot mutate stored state.
	cp := *cms
	cp.State = make(map[string]any, len(cms.State))
	for k, v := range cms.State {
		cp.State[k] = v
	}
	return &cp
}

// UpsertCMS implements Store.
func (s *MemStore) UpsertCMS(ctx context.Context, streamType, streamID string, version int, state map[string]any, stateVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.upsertCMS(streamType, streamID, version, state, stateVersion)
}

func (st *memState) upsertCMS(streamType, streamID string, version int, state map[string]any, stateVersion int) error {
	key := streamKey(streamType, streamID)
	now := time.Now().UTC()
	createdAt := now
	if prev, ok := st.cms[key]; ok {
		createdAt = prev.CreatedAt
	}
	if stateVersion == 0 {
		stateVersion = 1
	}
	st.cms[key] = &CMSRecord{
		StreamType:   streamType,
		StreamID:     streamID,
		Version:      version,
		State:        state,
		StateVersion: stateVersion,
		CreatedAt:    createdAt,
		UpdatedAt:    now,
	}
	return nil
}

// PatchCMS implements Store.
func (s *MemStore) PatchCMS(ctx context.Context, streamType, streamID string, version int, update map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.patchCMS(streamType, streamID, version, update)
}

func (st *memState) patchCMS(streamType, streamID string, version int, update map[string]any) error {
	key := streamKey(streamType, streamID)
	prev, ok := st.cms[key]
	if !ok {
		return fmt.Errorf("patch CMS: stream %s has no state row", key)
	}
	next := *prev
	next.State = make(map[string]any, len(prev.State)+len(update))
	for k, v := range prev.State {
		next.State[k] = v
	}
	for k, v := range update {
		next.State[k] = v
	}
	next.Version = version
	next.UpdatedAt = time.Now().UTC()
	st.cms[key] = &next
	return nil
}

// LookupByCommandID implements Store.
func (s *MemStore) LookupByCommandID(ctx context.Context, commandID string) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.byCommand[commandID], nil
}

// GetScope implements Store.
func (s *MemStore) GetScope(ctx context.Context, scopeKey string) (*ScopeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.getScope(scopeKey), nil
}

func (st *memState) getScope(scopeKey string) *ScopeRecord {
	scope, ok := st.scopes[scopeKey]
	if !ok {
		return nil
	}
	cp := *scope
	cp.StreamIDs = append([]string(nil), scope.StreamIDs...)
	return &cp
}

// CommitScope implements Store.
func (s *MemStore) CommitScope(ctx context.Context, scopeKey string, expectedVersion int, streamIDs []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.commitScope(scopeKey, expectedVersion, streamIDs)
}

func (st *memState) commitScope(scopeKey string, expectedVersion int, streamIDs []string) (int, error) {
	now := time.Now().UTC()
	prev, ok := st.scopes[scopeKey]
	if !ok {
		if expectedVersion != 0 {
			return 0, &ConflictError{CurrentVersion: 0}
		}
		st.scopes[scopeKey] = &ScopeRecord{
			ScopeKey:       scopeKey,
			CurrentVersion: 1,
			StreamIDs:      append([]string(nil), streamIDs...),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return 1, nil
	}
	if prev.CurrentVersion != expectedVersion {
		return 0, &ConflictError{CurrentVersion: prev.CurrentVersion}
	}
	next := *prev
	next.CurrentVersion = expectedVersion + 1
	next.StreamIDs = mergeStreamIDs(prev.StreamIDs, streamIDs)
	next.UpdatedAt = now
	st.scopes[scopeKey] = &next
	return next.CurrentVersion, nil
}

func mergeStreamIDs(existing, added []string) []string {
	seen := make(map[string]bool, len(existing)+len(added))
	out := make([]string, 0, len(existing)+len(added))
	for _, id := range existing {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range added {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// EnqueueWork implements Store.
func (s *MemStore) EnqueueWork(ctx context.Context, item WorkInput) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.enqueueWork(item), nil
}

func (st *memState) enqueueWork(item WorkInput) int64 {
	st.nextWorkID++
	st.work = append(st.work, &QueuedWork{ID: st.nextWorkID, WorkInput: item})
	return st.nextWorkID
}

// RecordDeadLetter implements Store.
func (s *MemStore) RecordDeadLetter(ctx context.Context, d DeadLetterInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.deadLetters = append(s.st.deadLetters, &d)
	return nil
}

// PendingWork returns the enqueued work items in order. Test hook.
func (s *MemStore) PendingWork() []*QueuedWork {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*QueuedWork(nil), s.st.work...)
}

// DeadLetters returns the recorded dead letters in order. Test hook.
func (s *MemStore) DeadLetters() []*DeadLetterInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*DeadLetterInput(nil), s.st.deadLetters...)
}

// WithinTx implements Store. The snapshot is restored when fn returns an
// error, giving transactional rollback semantics.
func (s *MemStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.st.snapshot()
	tx := &memTx{st: &s.st}
	if err := fn(ctx, tx); err != nil {
		s.st = snap
		return err
	}
	return nil
}

// memTx is the in-transaction view. It operates on the parent state directly
// (the parent holds the lock for the duration of the transaction).
type memTx struct {
	st *memState
}

func (t *memTx) Append(ctx context.Context, streamType, streamID string, expectedVersion int, events []AppendEvent) (*AppendResult, error) {
	return t.st.append(streamType, streamID, expectedVersion, events)
}

func (t *memTx) ReadStream(ctx context.Context, streamType, streamID string, fromVersion int) ([]*Event, error) {
	return t.st.readStream(streamType, streamID, fromVersion), nil
}

func (t *memTx) LoadCMS(ctx context.Context, streamType, streamID string) (*CMSRecord, error) {
	return t.st.loadCMS(streamType, streamID), nil
}

func (t *memTx) UpsertCMS(ctx context.Context, streamType, streamID string, version int, state map[string]any, stateVersion int) error {
	return t.st.upsertCMS(streamType, streamID, version, state, stateVersion)
}

func (t *memTx) PatchCMS(ctx context.Context, streamType, streamID string, version int, update map[string]any) error {
	return t.st.patchCMS(streamType, streamID, version, update)
}

func (t *memTx) LookupByCommandID(ctx context.Context, commandID string) (*Event, error) {
	return t.st.byCommand[commandID], nil
}

func (t *memTx) GetScope(ctx context.Context, scopeKey string) (*ScopeRecord, error) {
	return t.st.getScope(scopeKey), nil
}

func (t *memTx) CommitScope(ctx context.Context, scopeKey string, expectedVersion int, streamIDs []string) (int, error) {
	return t.st.commitScope(scopeKey, expectedVersion, streamIDs)
}

func (t *memTx) EnqueueWork(ctx context.Context, item WorkInput) (int64, error) {
	return t.st.enqueueWork(item), nil
}

func (t *memTx) RecordDeadLetter(ctx context.Context, d DeadLetterInput) error {
	t.st.deadLetters = append(t.st.deadLetters, &d)
	return nil
}

// WithinTx on an in-transaction view joins the outer frame.
func (t *memTx) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return fn(ctx, t)
}
