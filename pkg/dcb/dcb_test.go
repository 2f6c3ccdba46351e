package dcb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/decider"
	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/pkg/workpool"
)

const scopeKey = "tenant:acme:transfer:t-1"

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func loadProduct(ctx context.Context, tx eventstore.Store, streamID string) (*eventstore.CMSRecord, error) {
	return tx.LoadCMS(ctx, "product", streamID)
}

// transferDecider moves qty units from the first product to the second.
func transferDecider(state *State, cmd decider.Command, dctx decider.Context) decider.Decision {
	from := cmd.Payload["from"].(string)
	to := cmd.Payload["to"].(string)
	qty := cmd.Payload["qty"].(int)

	available := state.Entities[from].State["stock"].(int)
	if available < qty {
		return decider.Rejected("INSUFFICIENT_STOCK",
			"not enough stock to transfer",
			map[string]any{"available": available, "requested": qty})
	}
	return decider.MultiSuccess(
		&decider.EventDraft{
			EventType: "stockTransferred",
			Payload:   map[string]any{"from": from, "to": to, "qty": qty},
		},
		map[string]any{"transferred": qty},
		map[string]map[string]any{
			from: {"stock": available - qty},
			to:   {"stock": state.Entities[to].State["stock"].(int) + qty},
		},
	)
}

func transferRequest(commandID string, qty int) Request {
	return Request{
		ScopeKey:        scopeKey,
		ExpectedVersion: 0,
		UseScope:        true,
		Entities:        Entities{StreamIDs: []string{"p-1", "p-2"}, Load: loadProduct},
		Decide:          transferDecider,
		Command: decider.Command{
			CommandID:     commandID,
			CommandType:   "transferStock",
			CorrelationID: "corr-1",
			TargetContext: "inventory",
			Payload:       map[string]any{"from": "p-1", "to": "p-2", "qty": qty},
		},
	}
}

func seedProducts(t *testing.T, store *eventstore.MemStore) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.UpsertCMS(ctx, "product", "p-1", 1, map[string]any{"stock": 10}, 1))
	require.NoError(t, store.UpsertCMS(ctx, "product", "p-2", 1, map[string]any{"stock": 3}, 1))
}

func newExecutor(store *eventstore.MemStore) *Executor {
	return NewExecutor(store, WithClock(func() time.Time { return fixedNow }))
}

func TestExecuteRejectsInvalidScopeKey(t *testing.T) {
	x := newExecutor(eventstore.NewMemStore())

	req := transferRequest("cmd-bad-key", 1)
	req.ScopeKey = "acme:transfer:t-1"

	result, err := x.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, decider.StatusRejected, result.Status)
	assert.Equal(t, CodeInvalidScopeKeyFormat, result.Code)
}

func TestExecuteUpdatesAllEntitiesAtomically(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	x := newExecutor(store)
	ctx := context.Background()

	result, err := x.Execute(ctx, transferRequest("cmd-1", 4))
	require.NoError(t, err)
	require.Equal(t, decider.StatusSuccess, result.Status)
	assert.Equal(t, 1, result.NewVersion)
	assert.Equal(t, map[string]any{"transferred": 4}, result.Data)
	assert.NotEmpty(t, result.EventID)

	from, err := store.LoadCMS(ctx, "product", "p-1")
	require.NoError(t, err)
	assert.Equal(t, 6, from.State["stock"])
	to, err := store.LoadCMS(ctx, "product", "p-2")
	require.NoError(t, err)
	assert.Equal(t, 7, to.State["stock"])

	scope, err := store.GetScope(ctx, scopeKey)
	require.NoError(t, err)
	require.NotNil(t, scope)
	assert.Equal(t, 1, scope.CurrentVersion)
	assert.ElementsMatch(t, []string{"p-1", "p-2"}, scope.StreamIDs)

	events, err := store.ReadStream(ctx, "transfer", "t-1", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "stockTransferred", events[0].EventType)
	assert.Equal(t, eventstore.OutcomeSuccess, events[0].Outcome)
	assert.Equal(t, "cmd-1", events[0].Metadata.CausationID)
	assert.Equal(t, "corr-1", events[0].Metadata.CorrelationID)
	assert.Equal(t, "inventory", events[0].BoundedContext)
}

func TestExecuteRejectedLeavesStateUntouched(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	x := newExecutor(store)
	ctx := context.Background()

	result, err := x.Execute(ctx, transferRequest("cmd-2", 50))
	require.NoError(t, err)
	assert.Equal(t, decider.StatusRejected, result.Status)
	assert.Equal(t, "INSUFFICIENT_STOCK", result.Code)
	assert.Equal(t, 10, result.Context["available"])

	from, err := store.LoadCMS(ctx, "product", "p-1")
	require.NoError(t, err)
	assert.Equal(t, 10, from.State["stock"])
	scope, err := store.GetScope(ctx, scopeKey)
	require.NoError(t, err)
	assert.Nil(t, scope)
	events, err := store.ReadStream(ctx, "transfer", "t-1", 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestExecuteMissingEntities(t *testing.T) {
	store := eventstore.NewMemStore()
	ctx := context.Background()
	require.NoError(t, store.UpsertCMS(ctx, "product", "p-1", 1, map[string]any{"stock": 10}, 1))
	x := newExecutor(store)

	result, err := x.Execute(ctx, transferRequest("cmd-3", 1))
	require.NoError(t, err)
	assert.Equal(t, decider.StatusRejected, result.Status)
	assert.Equal(t, CodeEntitiesNotFound, result.Code)
	assert.Equal(t, []string{"p-2"}, result.Context["missing"])
}

func TestExecuteScopePrecheckConflict(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	ctx := context.Background()
	_, err := store.CommitScope(ctx, scopeKey, 0, []string{"p-1"})
	require.NoError(t, err)
	_, err = store.CommitScope(ctx, scopeKey, 1, []string{"p-1"})
	require.NoError(t, err)
	x := newExecutor(store)

	result, err := x.Execute(ctx, transferRequest("cmd-4", 1))
	require.NoError(t, err)
	assert.Equal(t, decider.StatusConflict, result.Status)
	assert.Equal(t, 2, result.CurrentVersion)

	from, err := store.LoadCMS(ctx, "product", "p-1")
	require.NoError(t, err)
	assert.Equal(t, 10, from.State["stock"])
}

// A scope commit lost after the entity updates were applied reports a
// conflict but commits the entity writes: each update is guarded by its own
// entity version, and the operation converges through the retry path.
func TestExecuteCommitConflictKeepsEntityUpdates(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	x := newExecutor(store)
	ctx := context.Background()

	raced := false
	req := transferRequest("cmd-5", 4)
	req.ApplyUpdate = func(ctx context.Context, tx eventstore.Store, cms *eventstore.CMSRecord, update map[string]any, newVersion int, now time.Time) error {
		if !raced {
			raced = true
			// Simulates a concurrent operation winning the scope commit
			// between the pre-check and this operation's commit.
			if _, err := tx.CommitScope(ctx, scopeKey, 0, []string{"p-9"}); err != nil {
				return err
			}
		}
		return tx.PatchCMS(ctx, cms.StreamType, cms.StreamID, cms.Version+1, update)
	}

	result, err := x.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, decider.StatusConflict, result.Status)
	assert.Equal(t, 1, result.CurrentVersion)

	from, err := store.LoadCMS(ctx, "product", "p-1")
	require.NoError(t, err)
	assert.Equal(t, 6, from.State["stock"])
	to, err := store.LoadCMS(ctx, "product", "p-2")
	require.NoError(t, err)
	assert.Equal(t, 7, to.State["stock"])

	// The losing operation appended nothing.
	events, err := store.ReadStream(ctx, "transfer", "t-1", 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestExecuteFailedAppendsFailureEvent(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	x := newExecutor(store)
	ctx := context.Background()

	req := transferRequest("cmd-6", 1)
	req.Decide = func(state *State, cmd decider.Command, dctx decider.Context) decider.Decision {
		return decider.Failed(&decider.EventDraft{
			EventType: "stockTransferFailed",
			Payload:   map[string]any{"reason": "carrier unavailable"},
		}, "carrier unavailable", nil)
	}

	result, err := x.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, decider.StatusFailed, result.Status)
	assert.Equal(t, "carrier unavailable", result.Reason)

	events, err := store.ReadStream(ctx, "transfer", "t-1", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventstore.OutcomeFailed, events[0].Outcome)

	from, err := store.LoadCMS(ctx, "product", "p-1")
	require.NoError(t, err)
	assert.Equal(t, 10, from.State["stock"])
	scope, err := store.GetScope(ctx, scopeKey)
	require.NoError(t, err)
	assert.Nil(t, scope)
}

func TestExecuteReplaysCommandID(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	x := newExecutor(store)
	ctx := context.Background()

	first, err := x.Execute(ctx, transferRequest("cmd-7", 4))
	require.NoError(t, err)
	require.Equal(t, decider.StatusSuccess, first.Status)

	second, err := x.Execute(ctx, transferRequest("cmd-7", 4))
	require.NoError(t, err)
	assert.Equal(t, decider.StatusSuccess, second.Status)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.EventID, second.EventID)

	// No second decide, no second event, no double transfer.
	events, err := store.ReadStream(ctx, "transfer", "t-1", 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	from, err := store.LoadCMS(ctx, "product", "p-1")
	require.NoError(t, err)
	assert.Equal(t, 6, from.State["stock"])
}

func TestExecuteMintsCommandIDWhenAbsent(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	x := newExecutor(store)
	ctx := context.Background()

	first, err := x.Execute(ctx, transferRequest("", 1))
	require.NoError(t, err)
	require.Equal(t, decider.StatusSuccess, first.Status)

	// A second anonymous operation must not collide with the first on the
	// empty causationId.
	req := transferRequest("", 1)
	req.ScopeKey = "tenant:acme:transfer:t-2"
	req.Command.Payload = map[string]any{"from": "p-2", "to": "p-1", "qty": 1}
	second, err := x.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, decider.StatusSuccess, second.Status)
	assert.False(t, second.Replayed)

	events, err := store.ReadStream(ctx, "transfer", "t-1", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	more, err := store.ReadStream(ctx, "transfer", "t-2", 0)
	require.NoError(t, err)
	require.Len(t, more, 1)
	assert.NotEmpty(t, events[0].Metadata.CausationID)
	assert.NotEmpty(t, more[0].Metadata.CausationID)
	assert.NotEqual(t, events[0].Metadata.CausationID, more[0].Metadata.CausationID)
}

func fixedPolicy() RetryPolicy {
	return RetryPolicy{
		Config: config.DefaultRetryConfig(),
		Jitter: func() float64 { return 1.0 },
	}
}

func TestWithRetryDefersOnConflict(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	ctx := context.Background()
	_, err := store.CommitScope(ctx, scopeKey, 0, []string{"p-1"})
	require.NoError(t, err)
	x := newExecutor(store)

	result, err := WithRetry(ctx, x, transferRequest("cmd-8", 1), "inventory.transfer.retry", 0, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, StatusDeferred, result.Status)
	assert.Equal(t, 1, result.RetryAttempt)
	assert.Equal(t, 100, result.ScheduledAfterMs)
	assert.NotZero(t, result.WorkID)

	work := store.PendingWork()
	require.Len(t, work, 1)
	assert.Equal(t, "inventory.transfer.retry", work[0].Ref)
	assert.Equal(t, "dcb:"+scopeKey, work[0].PartitionKey)
	assert.Equal(t, fixedNow.Add(100*time.Millisecond), work[0].RunAfter)
	assert.Equal(t, 1, work[0].Args["attempt"])
	assert.Equal(t, "cmd-8", work[0].Args["commandId"])
	assert.Equal(t, "corr-1", work[0].Args["correlationId"])
}

func TestWithRetryBackoffGrowsPerAttempt(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	ctx := context.Background()
	_, err := store.CommitScope(ctx, scopeKey, 0, []string{"p-1"})
	require.NoError(t, err)
	x := newExecutor(store)

	result, err := WithRetry(ctx, x, transferRequest("cmd-9", 1), "inventory.transfer.retry", 3, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, StatusDeferred, result.Status)
	assert.Equal(t, 4, result.RetryAttempt)
	assert.Equal(t, 800, result.ScheduledAfterMs)
}

func TestWithRetryExhausted(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	ctx := context.Background()
	_, err := store.CommitScope(ctx, scopeKey, 0, []string{"p-1"})
	require.NoError(t, err)
	x := newExecutor(store)

	result, err := WithRetry(ctx, x, transferRequest("cmd-10", 1), "inventory.transfer.retry", 5, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, decider.StatusRejected, result.Status)
	assert.Equal(t, CodeDCBMaxRetriesExceeded, result.Code)
	assert.Empty(t, store.PendingWork())
}

func TestWithRetryPassesThroughSuccess(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	x := newExecutor(store)

	result, err := WithRetry(context.Background(), x, transferRequest("cmd-11", 2), "inventory.transfer.retry", 0, fixedPolicy())
	require.NoError(t, err)
	assert.Equal(t, decider.StatusSuccess, result.Status)
	assert.Empty(t, store.PendingWork())
}

func TestRegisterRetryable(t *testing.T) {
	store := eventstore.NewMemStore()
	seedProducts(t, store)
	x := newExecutor(store)
	reg := workpool.NewRegistry()

	build := func(ctx context.Context, args map[string]any) (Request, error) {
		payload := args["payload"].(map[string]any)
		req := transferRequest(args["commandId"].(string), payload["qty"].(int))
		// A retry re-reads the scope rather than reusing the version that
		// conflicted.
		scope, err := store.GetScope(ctx, scopeKey)
		if err != nil {
			return Request{}, err
		}
		if scope != nil {
			req.ExpectedVersion = scope.CurrentVersion
		}
		return req, nil
	}
	require.NoError(t, RegisterRetryable(reg, "inventory.transfer.retry", x, fixedPolicy(), build))

	h, ok := reg.Mutation("inventory.transfer.retry")
	require.True(t, ok)

	out, err := h(context.Background(), map[string]any{
		"scopeKey":      scopeKey,
		"attempt":       1,
		"commandId":     "cmd-12",
		"correlationId": "corr-1",
		"payload":       map[string]any{"from": "p-1", "to": "p-2", "qty": 2},
	}, workpool.Delivery{Subscription: "inventory.transfer.retry"})
	require.NoError(t, err)
	assert.Equal(t, "success", out["status"])

	from, err := store.LoadCMS(context.Background(), "product", "p-1")
	require.NoError(t, err)
	assert.Equal(t, 8, from.State["stock"])
}
