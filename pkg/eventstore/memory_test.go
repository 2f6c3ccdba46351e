package eventstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendOne(t *testing.T, s Store, streamType, streamID string, expected int, commandID string) *Event {
	t.Helper()
	result, err := s.Append(context.Background(), streamType, streamID, expected, []AppendEvent{{
		EventType: "SomethingHappened",
		Payload:   map[string]any{"n": expected + 1},
		Metadata:  Metadata{CorrelationID: commandID, CausationID: commandID},
	}})
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	return result.Events[0]
}

func TestAppendAssignsVersionsAndPositions(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	e1 := appendOne(t, s, "order", "o1", 0, "cmd-1")
	e2 := appendOne(t, s, "order", "o1", 1, "cmd-2")
	e3 := appendOne(t, s, "product", "p1", 0, "cmd-3")

	assert.Equal(t, 1, e1.StreamVersion)
	assert.Equal(t, 2, e2.StreamVersion)
	assert.Equal(t, 1, e3.StreamVersion)

	// Global positions are strictly increasing across streams.
	assert.Less(t, e1.GlobalPosition, e2.GlobalPosition)
	assert.Less(t, e2.GlobalPosition, e3.GlobalPosition)

	events, err := s.ReadStream(ctx, "order", "o1", 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, e1.EventID, events[0].EventID)

	events, err = s.ReadStream(ctx, "order", "o1", 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, e2.EventID, events[0].EventID)
}

func TestAppendVersionConflict(t *testing.T) {
	s := NewMemStore()

	appendOne(t, s, "order", "o1", 0, "cmd-1")

	_, err := s.Append(context.Background(), "order", "o1", 0, []AppendEvent{{
		EventType: "SomethingHappened",
		Metadata:  Metadata{CausationID: "cmd-2"},
	}})
	require.Error(t, err)

	conflict, ok := AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, 1, conflict.CurrentVersion)

	// Nothing was written.
	events, readErr := s.ReadStream(context.Background(), "order", "o1", 0)
	require.NoError(t, readErr)
	assert.Len(t, events, 1)
}

func TestAppendRejectsDuplicateCommandID(t *testing.T) {
	s := NewMemStore()

	appendOne(t, s, "order", "o1", 0, "cmd-1")

	_, err := s.Append(context.Background(), "order", "o1", 1, []AppendEvent{{
		EventType: "SomethingHappened",
		Metadata:  Metadata{CausationID: "cmd-1"},
	}})
	assert.Error(t, err)
}

func TestLookupByCommandID(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	e := appendOne(t, s, "order", "o1", 0, "cmd-1")

	found, err := s.LookupByCommandID(ctx, "cmd-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, e.EventID, found.EventID)

	missing, err := s.LookupByCommandID(ctx, "cmd-unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCMSLifecycle(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	// No row before any write.
	cms, err := s.LoadCMS(ctx, "order", "o1")
	require.NoError(t, err)
	assert.Nil(t, cms)

	appendOne(t, s, "order", "o1", 0, "cmd-1")
	require.NoError(t, s.UpsertCMS(ctx, "order", "o1", 1, map[string]any{"status": "placed", "total": 10}, 1))

	cms, err = s.LoadCMS(ctx, "order", "o1")
	require.NoError(t, err)
	require.NotNil(t, cms)
	assert.Equal(t, 1, cms.Version)
	assert.Equal(t, "placed", cms.State["status"])

	appendOne(t, s, "order", "o1", 1, "cmd-2")
	require.NoError(t, s.PatchCMS(ctx, "order", "o1", 2, map[string]any{"status": "shipped"}))

	cms, err = s.LoadCMS(ctx, "order", "o1")
	require.NoError(t, err)
	assert.Equal(t, 2, cms.Version)
	assert.Equal(t, "shipped", cms.State["status"])
	assert.Equal(t, 10, cms.State["total"], "patch merges, untouched fields survive")
}

func TestPatchCMSRequiresRow(t *testing.T) {
	s := NewMemStore()
	err := s.PatchCMS(context.Background(), "order", "missing", 1, map[string]any{"x": 1})
	assert.Error(t, err)
}

func TestScopeCommitSemantics(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	// Absent scope with a non-zero expectation is a conflict at version 0.
	_, err := s.CommitScope(ctx, "tenant:t1:booking:b1", 3, []string{"s1"})
	conflict, ok := AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, 0, conflict.CurrentVersion)

	// First commit creates the scope at version 1.
	v, err := s.CommitScope(ctx, "tenant:t1:booking:b1", 0, []string{"s1", "s2"})
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	scope, err := s.GetScope(ctx, "tenant:t1:booking:b1")
	require.NoError(t, err)
	require.NotNil(t, scope)
	assert.Equal(t, []string{"s1", "s2"}, scope.StreamIDs)

	// Stale expectation loses and reports the current version.
	_, err = s.CommitScope(ctx, "tenant:t1:booking:b1", 0, []string{"s3"})
	conflict, ok = AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, 1, conflict.CurrentVersion)

	// Participating streams accumulate without duplicates.
	v, err = s.CommitScope(ctx, "tenant:t1:booking:b1", 1, []string{"s2", "s3"})
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	scope, err = s.GetScope(ctx, "tenant:t1:booking:b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2", "s3"}, scope.StreamIDs)
}

func TestWithinTxRollback(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	appendOne(t, s, "order", "o1", 0, "cmd-1")

	boom := fmt.Errorf("boom")
	err := s.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		if _, err := tx.Append(ctx, "order", "o1", 1, []AppendEvent{{
			EventType: "SomethingHappened",
			Metadata:  Metadata{CausationID: "cmd-2"},
		}}); err != nil {
			return err
		}
		if err := tx.UpsertCMS(ctx, "order", "o1", 2, map[string]any{"status": "x"}, 1); err != nil {
			return err
		}
		if _, err := tx.EnqueueWork(ctx, WorkInput{Ref: "noop", Args: map[string]any{}}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Everything inside the frame rolled back.
	events, err := s.ReadStream(ctx, "order", "o1", 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	cms, err := s.LoadCMS(ctx, "order", "o1")
	require.NoError(t, err)
	assert.Equal(t, 1, cms.Version)

	found, err := s.LookupByCommandID(ctx, "cmd-2")
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Empty(t, s.PendingWork())
}

func TestWithinTxCommitAndNesting(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	err := s.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		if _, err := tx.Append(ctx, "order", "o1", 0, []AppendEvent{{
			EventType: "SomethingHappened",
			Metadata:  Metadata{CausationID: "cmd-1"},
		}}); err != nil {
			return err
		}
		// Nested frames join the outer transaction.
		return tx.WithinTx(ctx, func(ctx context.Context, inner Store) error {
			_, err := inner.EnqueueWork(ctx, WorkInput{Ref: "noop", Args: map[string]any{}})
			return err
		})
	})
	require.NoError(t, err)

	events, err := s.ReadStream(ctx, "order", "o1", 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Len(t, s.PendingWork(), 1)
}

func TestEnqueueWorkOrdering(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	id1, err := s.EnqueueWork(ctx, WorkInput{Ref: "a", Args: map[string]any{}})
	require.NoError(t, err)
	id2, err := s.EnqueueWork(ctx, WorkInput{Ref: "b", Args: map[string]any{}})
	require.NoError(t, err)
	assert.Less(t, id1, id2)

	items := s.PendingWork()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Ref)
	assert.Equal(t, "b", items[1].Ref)
}
