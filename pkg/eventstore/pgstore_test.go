package eventstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/ent"
	"github.com/strandkit/strand/ent/workitem"
	"github.com/strandkit/strand/test/util"
)

func newPGTestStore(t *testing.T) (*PGStore, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return NewPGStore(client), client
}

func TestPGAppendAssignsVersionsAndPositions(t *testing.T) {
	store, _ := newPGTestStore(t)
	ctx := context.Background()

	result, err := store.Append(ctx, "order", "o-1", 0, []AppendEvent{
		{EventType: "OrderPlaced", Payload: map[string]any{"total": 40}, Metadata: Metadata{CorrelationID: "corr-1", CausationID: "cmd-1"}},
		{EventType: "OrderPaid", Payload: map[string]any{}, Metadata: Metadata{CorrelationID: "corr-1", CausationID: "cmd-2"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.NewVersion)
	require.Len(t, result.Events, 2)
	assert.Equal(t, 1, result.Events[0].StreamVersion)
	assert.Equal(t, 2, result.Events[1].StreamVersion)
	assert.Greater(t, result.Events[1].GlobalPosition, result.Events[0].GlobalPosition)

	// Storage defaults.
	first := result.Events[0]
	assert.NotEmpty(t, first.EventID)
	assert.Equal(t, CategoryDomain, first.Category)
	assert.Equal(t, 1, first.SchemaVersion)
	assert.Equal(t, OutcomeSuccess, first.Outcome)
	assert.False(t, first.Timestamp.IsZero())
}

func TestPGAppendVersionConflict(t *testing.T) {
	store, _ := newPGTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, "order", "o-1", 0, []AppendEvent{
		{EventType: "OrderPlaced", Payload: map[string]any{}, Metadata: Metadata{CausationID: "cmd-1"}},
	})
	require.NoError(t, err)

	// A second writer with a stale view loses.
	_, err = store.Append(ctx, "order", "o-1", 0, []AppendEvent{
		{EventType: "OrderCancelled", Payload: map[string]any{}, Metadata: Metadata{CausationID: "cmd-2"}},
	})
	conflict, ok := AsConflict(err)
	require.True(t, ok, "expected ConflictError, got %v", err)
	assert.Equal(t, 1, conflict.CurrentVersion)

	// Nothing from the losing append is visible.
	events, err := store.ReadStream(ctx, "order", "o-1", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "OrderPlaced", events[0].EventType)
}

func TestPGReadStreamFromVersion(t *testing.T) {
	store, _ := newPGTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, "order", "o-1", 0, []AppendEvent{
		{EventType: "OrderPlaced", Payload: map[string]any{}, Metadata: Metadata{CausationID: "cmd-1"}},
		{EventType: "OrderPaid", Payload: map[string]any{}, Metadata: Metadata{CausationID: "cmd-2"}},
		{EventType: "OrderShipped", Payload: map[string]any{}, Metadata: Metadata{CausationID: "cmd-3"}},
	})
	require.NoError(t, err)

	events, err := store.ReadStream(ctx, "order", "o-1", 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "OrderPaid", events[0].EventType)
	assert.Equal(t, "OrderShipped", events[1].EventType)

	// Other streams are invisible.
	events, err = store.ReadStream(ctx, "order", "o-2", 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPGLookupByCommandID(t *testing.T) {
	store, _ := newPGTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, "note", "n-1", 0, []AppendEvent{
		{EventType: "NoteCreated", Payload: map[string]any{"title": "x"}, Metadata: Metadata{CorrelationID: "corr-1", CausationID: "cmd-42"}},
	})
	require.NoError(t, err)

	found, err := store.LookupByCommandID(ctx, "cmd-42")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "NoteCreated", found.EventType)
	assert.Equal(t, "cmd-42", found.Metadata.CausationID)

	missing, err := store.LookupByCommandID(ctx, "cmd-never")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPGCMSLifecycle(t *testing.T) {
	store, _ := newPGTestStore(t)
	ctx := context.Background()

	cms, err := store.LoadCMS(ctx, "note", "n-1")
	require.NoError(t, err)
	assert.Nil(t, cms)

	// Append creates the stream-state gate row even before any CMS write.
	_, err = store.Append(ctx, "note", "n-1", 0, []AppendEvent{
		{EventType: "NoteCreated", Payload: map[string]any{}, Metadata: Metadata{CausationID: "cmd-1"}},
	})
	require.NoError(t, err)

	cms, err = store.LoadCMS(ctx, "note", "n-1")
	require.NoError(t, err)
	require.NotNil(t, cms)
	assert.Equal(t, 1, cms.Version)
	assert.Empty(t, cms.State)

	require.NoError(t, store.UpsertCMS(ctx, "note", "n-1", 2, map[string]any{"title": "x", "pinned": false}, 1))
	cms, err = store.LoadCMS(ctx, "note", "n-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cms.Version)
	assert.Equal(t, "x", cms.State["title"])
	assert.Equal(t, 1, cms.StateVersion)

	// Patch merges into existing state and advances the version.
	require.NoError(t, store.PatchCMS(ctx, "note", "n-1", 3, map[string]any{"pinned": true}))
	cms, err = store.LoadCMS(ctx, "note", "n-1")
	require.NoError(t, err)
	assert.Equal(t, 3, cms.Version)
	assert.Equal(t, "x", cms.State["title"])
	assert.Equal(t, true, cms.State["pinned"])

	err = store.PatchCMS(ctx, "note", "n-never", 1, map[string]any{"a": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no state row")
}

func TestPGCommitScope(t *testing.T) {
	store, _ := newPGTestStore(t)
	ctx := context.Background()
	key := "tenant:t-1:course:c-1"

	scope, err := store.GetScope(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, scope)

	// First commit creates the scope at version 1.
	v, err := store.CommitScope(ctx, key, 0, []string{"course:c-1", "student:s-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	scope, err = store.GetScope(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, scope)
	assert.Equal(t, 1, scope.CurrentVersion)
	assert.ElementsMatch(t, []string{"course:c-1", "student:s-1"}, scope.StreamIDs)

	// Next commit merges the participating streams.
	v, err = store.CommitScope(ctx, key, 1, []string{"student:s-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	scope, err = store.GetScope(ctx, key)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"course:c-1", "student:s-1", "student:s-2"}, scope.StreamIDs)

	// Stale expected version loses with the current version attached.
	_, err = store.CommitScope(ctx, key, 1, []string{"student:s-3"})
	conflict, ok := AsConflict(err)
	require.True(t, ok, "expected ConflictError, got %v", err)
	assert.Equal(t, 2, conflict.CurrentVersion)

	// A missing scope with a nonzero expectation is also a conflict.
	_, err = store.CommitScope(ctx, "tenant:t-1:course:nope", 3, nil)
	conflict, ok = AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, 0, conflict.CurrentVersion)
}

func TestPGWithinTxRollsBackEverything(t *testing.T) {
	store, client := newPGTestStore(t)
	ctx := context.Background()
	boom := errors.New("decider rejected")

	err := store.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		_, err := tx.Append(ctx, "order", "o-1", 0, []AppendEvent{
			{EventType: "OrderPlaced", Payload: map[string]any{}, Metadata: Metadata{CausationID: "cmd-1"}},
		})
		require.NoError(t, err)

		_, err = tx.EnqueueWork(ctx, WorkInput{Ref: "projection.orders", Args: map[string]any{}})
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)

	events, err := store.ReadStream(ctx, "order", "o-1", 0)
	require.NoError(t, err)
	assert.Empty(t, events)

	count, err := client.WorkItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPGWithinTxNestedJoinsOuterFrame(t *testing.T) {
	store, _ := newPGTestStore(t)
	ctx := context.Background()

	err := store.WithinTx(ctx, func(ctx context.Context, outer Store) error {
		if _, err := outer.Append(ctx, "order", "o-1", 0, []AppendEvent{
			{EventType: "OrderPlaced", Payload: map[string]any{}, Metadata: Metadata{CausationID: "cmd-1"}},
		}); err != nil {
			return err
		}
		// The inner frame is the same transaction, so the uncommitted
		// append is already visible to it.
		return outer.WithinTx(ctx, func(ctx context.Context, inner Store) error {
			events, err := inner.ReadStream(ctx, "order", "o-1", 0)
			if err != nil {
				return err
			}
			require.Len(t, events, 1)
			return nil
		})
	})
	require.NoError(t, err)

	events, err := store.ReadStream(ctx, "order", "o-1", 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPGEnqueueWorkDefaults(t *testing.T) {
	store, client := newPGTestStore(t)
	ctx := context.Background()

	id, err := store.EnqueueWork(ctx, WorkInput{
		Ref:  "projection.orders",
		Args: map[string]any{"eventId": "ev-1"},
	})
	require.NoError(t, err)

	row, err := client.WorkItem.Get(ctx, int(id))
	require.NoError(t, err)
	assert.Equal(t, workitem.StatusPending, row.Status)
	assert.Equal(t, 100, row.Priority)
	assert.Equal(t, 5, row.MaxAttempts)
	assert.Equal(t, "", row.PartitionKey)
	assert.Equal(t, 0, row.Attempts)
}

func TestPGRecordDeadLetter(t *testing.T) {
	store, client := newPGTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordDeadLetter(ctx, DeadLetterInput{
		Subscription:  "pm.fulfillment",
		Event:         map[string]any{"eventType": "OrderPlaced"},
		ErrorMessage:  "handler exploded",
		Attempts:      5,
		FailedCommand: map[string]any{"commandType": "shipOrder"},
	}))

	rows, err := client.DeadLetter.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "pm.fulfillment", rows[0].Subscription)
	assert.Equal(t, "OrderPlaced", rows[0].Event["eventType"])
	assert.Equal(t, "shipOrder", rows[0].FailedCommand["commandType"])
	assert.Equal(t, 5, rows[0].Attempts)
}
