package eventstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/strandkit/strand/ent"
	"github.com/strandkit/strand/ent/event"
	"github.com/strandkit/strand/ent/scope"
	"github.com/strandkit/strand/ent/streamstate"
)

// PGStore is the PostgreSQL-backed Store. The stream-state row is the
// optimistic-concurrency gate: Append locks it FOR UPDATE, so two concurrent
// appends to one stream serialize and the loser observes a version mismatch.
// The events table's integer primary key (bigserial) is the global position.
type PGStore struct {
	client *ent.Client
	inTx   bool
}

// NewPGStore wraps an ent client.
func NewPGStore(client *ent.Client) *PGStore {
	return &PGStore{client: client}
}

// WithinTx implements Store. Nested calls join the outer transaction.
func (s *PGStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	if s.inTx {
		return fn(ctx, s)
	}
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	txStore := &PGStore{client: tx.Client(), inTx: true}
	if err := fn(ctx, txStore); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Append implements Store.
func (s *PGStore) Append(ctx context.Context, streamType, streamID string, expectedVersion int, events []AppendEvent) (*AppendResult, error) {
	if !s.inTx {
		var result *AppendResult
		err := s.WithinTx(ctx, func(ctx context.Context, tx Store) error {
			var txErr error
			result, txErr = tx.Append(ctx, streamType, streamID, expectedVersion, events)
			return txErr
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	current, stateRow, err := s.lockStreamVersion(ctx, streamType, streamID)
	if err != nil {
		return nil, err
	}
	if expectedVersion != current {
		return nil, &ConflictError{CurrentVersion: current}
	}

	result := &AppendResult{NewVersion: current}
	for _, in := range events {
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

		create := s.client.Event.Create().
			SetEventID(eventID).
			SetEventType(in.EventType).
			SetStreamType(streamType).
			SetStreamID(streamID).
			SetStreamVersion(result.NewVersion).
			SetCategory(event.Category(category)).
			SetSchemaVersion(schemaVersion).
			SetPayload(in.Payload).
			SetCorrelationID(in.Metadata.CorrelationID).
			SetCausationID(in.Metadata.CausationID).
			SetOutcome(event.Outcome(outcome))
		if in.Metadata.UserID != "" {
			create = create.SetUserID(in.Metadata.UserID)
		}
		if in.BoundedContext != "" {
			create = create.SetBoundedContext(in.BoundedContext)
		}

		row, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("append event %s to %s/%s: %w", in.EventType, streamType, streamID, err)
		}
		result.Events = append(result.Events, eventFromRow(row))
	}

	// Advance the stream-state gate. The row carries the version even before
	// any CMS state is written.
	if stateRow == nil {
		_, err = s.client.StreamState.Create().
			SetStreamType(streamType).
			SetStreamID(streamID).
			SetVersion(result.NewVersion).
			SetState(map[string]interface{}{}).
			Save(ctx)
	} else {
		err = s.client.StreamState.UpdateOne(stateRow).
			SetVersion(result.NewVersion).
			Exec(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("advance stream version for %s/%s: %w", streamType, streamID, err)
	}

	return result, nil
}

// lockStreamVersion reads the stream-state row FOR UPDATE. Returns version 0
// and a nil row for a stream that has never been written.
func (s *PGStore) lockStreamVersion(ctx context.Context, streamType, streamID string) (int, *ent.StreamState, error) {
	row, err := s.client.StreamState.Query().
		Where(
			streamstate.StreamTypeEQ(streamType),
			streamstate.StreamIDEQ(streamID),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil, nil
		}
		return 0, nil, fmt.Errorf("lock stream %s/%s: %w", streamType, streamID, err)
	}
	return row.Version, row, nil
}

// ReadStream implements Store.
func (s *PGStore) ReadStream(ctx context.Context, streamType, streamID string, fromVersion int) ([]*Event, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.StreamTypeEQ(streamType),
			event.StreamIDEQ(streamID),
			event.StreamVersionGT(fromVersion),
		).
		Order(ent.Asc(event.FieldStreamVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stream %s/%s: %w", streamType, streamID, err)
	}
	out := make([]*Event, len(rows))
	for i, row := range rows {
		out[i] = eventFromRow(row)
	}
	return out, nil
}

// LoadCMS implements Store.
func (s *PGStore) LoadCMS(ctx context.Context, streamType, streamID string) (*CMSRecord, error) {
	row, err := s.client.StreamState.Query().
		Where(
			streamstate.StreamTypeEQ(streamType),
			streamstate.StreamIDEQ(streamID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load CMS for %s/%s: %w", streamType, streamID, err)
	}
	return &CMSRecord{
		StreamType:   row.StreamType,
		StreamID:     row.StreamID,
		Version:      row.Version,
		State:        row.State,
		StateVersion: row.StateVersion,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// UpsertCMS implements Store.
func (s *PGStore) UpsertCMS(ctx context.Context, streamType, streamID string, version int, state map[string]any, stateVersion int) error {
	if stateVersion == 0 {
		stateVersion = 1
	}
	row, err := s.client.StreamState.Query().
		Where(
			streamstate.StreamTypeEQ(streamType),
			streamstate.StreamIDEQ(streamID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("upsert CMS for %s/%s: %w", streamType, streamID, err)
		}
		_, err = s.client.StreamState.Create().
			SetStreamType(streamType).
			SetStreamID(streamID).
			SetVersion(version).
			SetState(state).
			SetStateVersion(stateVersion).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create CMS for %s/%s: %w", streamType, streamID, err)
		}
		return nil
	}
	err = s.client.StreamState.UpdateOne(row).
		SetVersion(version).
		SetState(state).
		SetStateVersion(stateVersion).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update CMS for %s/%s: %w", streamType, streamID, err)
	}
	return nil
}

// PatchCMS implements Store.
func (s *PGStore) PatchCMS(ctx context.Context, streamType, streamID string, version int, update map[string]any) error {
	row, err := s.client.StreamState.Query().
		Where(
			streamstate.StreamTypeEQ(streamType),
			streamstate.StreamIDEQ(streamID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("patch CMS: stream %s/%s has no state row", streamType, streamID)
		}
		return fmt.Errorf("patch CMS for %s/%s: %w", streamType, streamID, err)
	}

	state := make(map[string]interface{}, len(row.State)+len(update))
	for k, v := range row.State {
		state[k] = v
	}
	for k, v := range update {
		state[k] = v
	}

	err = s.client.StreamState.UpdateOne(row).
		SetVersion(version).
		SetState(state).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("patch CMS for %s/%s: %w", streamType, streamID, err)
	}
	return nil
}

// LookupByCommandID implements Store.
func (s *PGStore) LookupByCommandID(ctx context.Context, commandID string) (*Event, error) {
	row, err := s.client.Event.Query().
		Where(event.CausationIDEQ(commandID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup event by commandId %s: %w", commandID, err)
	}
	return eventFromRow(row), nil
}

// GetScope implements Store.
func (s *PGStore) GetScope(ctx context.Context, scopeKey string) (*ScopeRecord, error) {
	row, err := s.client.Scope.Query().
		Where(scope.ScopeKeyEQ(scopeKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get scope %s: %w", scopeKey, err)
	}
	return scopeFromRow(row), nil
}

// CommitScope implements Store.
func (s *PGStore) CommitScope(ctx context.Context, scopeKey string, expectedVersion int, streamIDs []string) (int, error) {
	if !s.inTx {
		var newVersion int
		err := s.WithinTx(ctx, func(ctx context.Context, tx Store) error {
			var txErr error
			newVersion, txErr = tx.CommitScope(ctx, scopeKey, expectedVersion, streamIDs)
			return txErr
		})
		if err != nil {
			return 0, err
		}
		return newVersion, nil
	}

	row, err := s.client.Scope.Query().
		Where(scope.ScopeKeyEQ(scopeKey)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("lock scope %s: %w", scopeKey, err)
		}
		if expectedVersion != 0 {
			return 0, &ConflictError{CurrentVersion: 0}
		}
		_, err = s.client.Scope.Create().
			SetScopeKey(scopeKey).
			SetCurrentVersion(1).
			SetStreams(streamIDs).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create scope %s: %w", scopeKey, err)
		}
		return 1, nil
	}

	if row.CurrentVersion != expectedVersion {
		return 0, &ConflictError{CurrentVersion: row.CurrentVersion}
	}

	newVersion := expectedVersion + 1
	err = s.client.Scope.UpdateOne(row).
		SetCurrentVersion(newVersion).
		SetStreams(mergeStreamIDs(row.Streams, streamIDs)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("commit scope %s: %w", scopeKey, err)
	}
	return newVersion, nil
}

// EnqueueWork implements Store.
func (s *PGStore) EnqueueWork(ctx context.Context, item WorkInput) (int64, error) {
	priority := item.Priority
	if priority == 0 {
		priority = 100
	}
	maxAttempts := item.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = 5
	}
	create := s.client.WorkItem.Create().
		SetRef(item.Ref).
		SetArgs(item.Args).
		SetPartitionKey(item.PartitionKey).
		SetPriority(priority).
		SetMaxAttempts(maxAttempts)
	if item.Delivery != nil {
		create = create.SetDelivery(item.Delivery)
	}
	if !item.RunAfter.IsZero() {
		create = create.SetRunAfter(item.RunAfter)
	}
	if item.OnComplete != "" {
		create = create.SetOnComplete(item.OnComplete)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("enqueue work %s: %w", item.Ref, err)
	}
	return int64(row.ID), nil
}

// RecordDeadLetter implements Store.
func (s *PGStore) RecordDeadLetter(ctx context.Context, d DeadLetterInput) error {
	create := s.client.DeadLetter.Create().
		SetSubscription(d.Subscription).
		SetEvent(d.Event).
		SetErrorMessage(d.ErrorMessage).
		SetAttempts(d.Attempts)
	if d.FailedCommand != nil {
		create = create.SetFailedCommand(d.FailedCommand)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("record dead letter for %s: %w", d.Subscription, err)
	}
	return nil
}

func eventFromRow(row *ent.Event) *Event {
	e := &Event{
		EventID:        row.EventID,
		EventType:      row.EventType,
		StreamType:     row.StreamType,
		StreamID:       row.StreamID,
		StreamVersion:  row.StreamVersion,
		GlobalPosition: int64(row.ID),
		Timestamp:      row.OccurredAt,
		Category:       Category(row.Category),
		SchemaVersion:  row.SchemaVersion,
		Payload:        row.Payload,
		Metadata: Metadata{
			CorrelationID: row.CorrelationID,
			CausationID:   row.CausationID,
		},
		Outcome:        Outcome(row.Outcome),
		BoundedContext: row.BoundedContext,
	}
	if row.UserID != nil {
		e.Metadata.UserID = *row.UserID
	}
	return e
}

func scopeFromRow(row *ent.Scope) *ScopeRecord {
	return &ScopeRecord{
		ScopeKey:       row.ScopeKey,
		CurrentVersion: row.CurrentVersion,
		StreamIDs:      row.Streams,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
