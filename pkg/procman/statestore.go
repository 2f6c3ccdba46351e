package procman

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/strandkit/strand/ent"
	"github.com/strandkit/strand/ent/pmstate"
)

// Status of one PM instance.
type Status string

// Instance statuses.
const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// InstanceState is the per-instance PM record.
type InstanceState struct {
	PMName             string
	InstanceID         string
	Status             Status
	LastGlobalPosition int64
	CommandsEmitted    int
	CommandsFailed     int
	StateVersion       int
	CustomState        map[string]any
	TriggerEventID     string
	CorrelationID      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// StateStore persists PM instance state.
type StateStore interface {
	// GetOrCreate loads the instance, creating it idle at watermark 0 when it
	// does not exist. triggerEventID and correlationID are recorded on
	// creation only.
	GetOrCreate(ctx context.Context, pmName, instanceID, triggerEventID, correlationID string) (*InstanceState, error)

	// SetStatus transitions the instance status.
	SetStatus(ctx context.Context, pmName, instanceID string, status Status) error

	// RecordProcessed advances the watermark, adds to commandsEmitted, and
	// settles the status to idle (or completed).
	RecordProcessed(ctx context.Context, pmName, instanceID string, position int64, emitted int, completed bool) error
}

// EntStateStore is the PostgreSQL-backed StateStore.
type EntStateStore struct {
	client *ent.Client
}

// NewEntStateStore wraps an ent client.
func NewEntStateStore(client *ent.Client) *EntStateStore {
	return &EntStateStore{client: client}
}

// GetOrCreate implements StateStore.
func (s *EntStateStore) GetOrCreate(ctx context.Context, pmName, instanceID, triggerEventID, correlationID string) (*InstanceState, error) {
	row, err := s.client.PMState.Query().
		Where(pmstate.PmNameEQ(pmName), pmstate.InstanceIDEQ(instanceID)).
		Only(ctx)
	if err == nil {
		return stateFromRow(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query PM state %s/%s: %w", pmName, instanceID, err)
	}

	create := s.client.PMState.Create().
		SetPmName(pmName).
		SetInstanceID(instanceID)
	if triggerEventID != "" {
		create = create.SetTriggerEventID(triggerEventID)
	}
	if correlationID != "" {
		create = create.SetCorrelationID(correlationID)
	}
	row, err = create.Save(ctx)
	if err != nil {
		// Lost a create race; the row exists now.
		if ent.IsConstraintError(err) {
			return s.GetOrCreate(ctx, pmName, instanceID, triggerEventID, correlationID)
		}
		return nil, fmt.Errorf("create PM state %s/%s: %w", pmName, instanceID, err)
	}
	return stateFromRow(row), nil
}

// SetStatus implements StateStore.
func (s *EntStateStore) SetStatus(ctx context.Context, pmName, instanceID string, status Status) error {
	n, err := s.client.PMState.Update().
		Where(pmstate.PmNameEQ(pmName), pmstate.InstanceIDEQ(instanceID)).
		SetStatus(pmstate.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set PM status %s/%s: %w", pmName, instanceID, err)
	}
	if n == 0 {
		return fmt.Errorf("set PM status: instance %s/%s not found", pmName, instanceID)
	}
	return nil
}

// RecordProcessed implements StateStore.
func (s *EntStateStore) RecordProcessed(ctx context.Context, pmName, instanceID string, position int64, emitted int, completed bool) error {
	status := pmstate.StatusIdle
	if completed {
		status = pmstate.StatusCompleted
	}
	n, err := s.client.PMState.Update().
		Where(
			pmstate.PmNameEQ(pmName),
			pmstate.InstanceIDEQ(instanceID),
			// Watermark never decreases.
			pmstate.LastGlobalPositionLT(int(position)),
		).
		SetLastGlobalPosition(int(position)).
		AddCommandsEmitted(emitted).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("advance PM state %s/%s: %w", pmName, instanceID, err)
	}
	if n == 0 {
		return fmt.Errorf("advance PM state: instance %s/%s missing or watermark ahead of %d", pmName, instanceID, position)
	}
	return nil
}

func stateFromRow(row *ent.PMState) *InstanceState {
	st := &InstanceState{
		PMName:             row.PmName,
		InstanceID:         row.InstanceID,
		Status:             Status(row.Status),
		LastGlobalPosition: int64(row.LastGlobalPosition),
		CommandsEmitted:    row.CommandsEmitted,
		CommandsFailed:     row.CommandsFailed,
		StateVersion:       row.StateVersion,
		CustomState:        row.CustomState,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
	if row.TriggerEventID != nil {
		st.TriggerEventID = *row.TriggerEventID
	}
	if row.CorrelationID != nil {
		st.CorrelationID = *row.CorrelationID
	}
	return st
}

// MemStateStore is an in-memory StateStore for tests and embedded use.
type MemStateStore struct {
	mu     sync.Mutex
	states map[string]*InstanceState
}

// NewMemStateStore creates an empty in-memory state store.
func NewMemStateStore() *MemStateStore {
	return &MemStateStore{states: make(map[string]*InstanceState)}
}

func instanceKey(pmName, instanceID string) string {
	return pmName + "/" + instanceID
}

// GetOrCreate implements StateStore.
func (s *MemStateStore) GetOrCreate(ctx context.Context, pmName, instanceID, triggerEventID, correlationID string) (*InstanceState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := instanceKey(pmName, instanceID)
	if st, ok := s.states[key]; ok {
		cp := *st
		return &cp, nil
	}
	now := time.Now().UTC()
	st := &InstanceState{
		PMName:         pmName,
		InstanceID:     instanceID,
		Status:         StatusIdle,
		StateVersion:   1,
		TriggerEventID: triggerEventID,
		CorrelationID:  correlationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.states[key] = st
	cp := *st
	return &cp, nil
}

// SetStatus implements StateStore.
func (s *MemStateStore) SetStatus(ctx context.Context, pmName, instanceID string, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[instanceKey(pmName, instanceID)]
	if !ok {
		return fmt.Errorf("set PM status: instance %s/%s not found", pmName, instanceID)
	}
	st.Status = status
	st.UpdatedAt = time.Now().UTC()
	return nil
}

// RecordProcessed implements StateStore.
func (s *MemStateStore) RecordProcessed(ctx context.Context, pmName, instanceID string, position int64, emitted int, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[instanceKey(pmName, instanceID)]
	if !ok {
		return fmt.Errorf("advance PM state: instance %s/%s not found", pmName, instanceID)
	}
	if position <= st.LastGlobalPosition {
		return fmt.Errorf("advance PM state: instance %s/%s watermark ahead of %d", pmName, instanceID, position)
	}
	st.LastGlobalPosition = position
	st.CommandsEmitted += emitted
	st.Status = StatusIdle
	if completed {
		st.Status = StatusCompleted
	}
	st.UpdatedAt = time.Now().UTC()
	return nil
}
