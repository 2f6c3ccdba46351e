package durable

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/pkg/command"
	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/decider"
	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/pkg/workpool"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func noteConfig(handlerErr error) command.Config {
	return command.Config{
		CommandType: "createNote",
		StreamType:  "note",
		Handler: func(ctx context.Context, tx eventstore.Store, cmd decider.Command, dctx decider.Context) (*command.HandlerResult, error) {
			if handlerErr != nil {
				return nil, handlerErr
			}
			return &command.HandlerResult{
				Decision: decider.Success(
					&decider.EventDraft{EventType: "noteCreated", Payload: cmd.Payload},
					map[string]any{"noteId": "n-1"},
					map[string]any{"title": cmd.Payload["title"]},
				),
				StreamID: "n-1",
			}, nil
		},
	}
}

func newTestExecutor(store *eventstore.MemStore, intents IntentStore) *Executor {
	orch := command.NewOrchestrator(store, nil)
	return NewExecutor(intents, orch, store, nil, WithClock(func() time.Time { return fixedNow }))
}

func TestExecuteCompletesIntent(t *testing.T) {
	store := eventstore.NewMemStore()
	intents := NewMemIntentStore()
	x := newTestExecutor(store, intents)
	ctx := context.Background()

	result, err := x.Execute(ctx, noteConfig(nil), command.Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"title": "groceries"},
	}, "n-1")
	require.NoError(t, err)
	require.Equal(t, decider.StatusSuccess, result.Status)

	list, err := intents.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	in := list[0]
	assert.True(t, strings.HasPrefix(in.IntentKey, "createNote:note:n-1:"))
	assert.Equal(t, StatusCompleted, in.Status)
	assert.Equal(t, result.EventID, in.CompletionEventID)
	assert.Equal(t, int(5*time.Minute/time.Millisecond), in.TimeoutMs)

	// The timeout job was scheduled at the intent deadline.
	work := store.PendingWork()
	require.Len(t, work, 1)
	assert.Equal(t, TimeoutRef, work[0].Ref)
	assert.Equal(t, in.IntentKey, work[0].Args["intentKey"])
	assert.Equal(t, fixedNow.Add(5*time.Minute), work[0].RunAfter)
}

func TestExecuteFailsIntentOnHandlerError(t *testing.T) {
	store := eventstore.NewMemStore()
	intents := NewMemIntentStore()
	x := newTestExecutor(store, intents)
	ctx := context.Background()

	_, err := x.Execute(ctx, noteConfig(errors.New("db down")), command.Args{
		CommandID: "cmd-2",
		Payload:   map[string]any{"title": "groceries"},
	}, "n-1")
	require.Error(t, err)

	list, err := intents.List(ctx, StatusFailed, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, list[0].ErrorMessage, "db down")
}

func TestTimeoutHandlerAbandonsOnlyPending(t *testing.T) {
	intents := NewMemIntentStore()
	ctx := context.Background()
	require.NoError(t, intents.Create(ctx, &Intent{
		IntentKey: "k-1", OperationType: "createNote",
		StreamType: "note", StreamID: "n-1",
		TimeoutMs: 1000, ExpiresAt: fixedNow,
	}))
	require.NoError(t, intents.Create(ctx, &Intent{
		IntentKey: "k-2", OperationType: "createNote",
		StreamType: "note", StreamID: "n-2",
		TimeoutMs: 1000, ExpiresAt: fixedNow,
	}))
	require.NoError(t, intents.Complete(ctx, "k-2", "evt-1"))

	reg := workpool.NewRegistry()
	require.NoError(t, RegisterTimeoutHandler(reg, intents))
	h, ok := reg.Mutation(TimeoutRef)
	require.True(t, ok)

	out, err := h(ctx, map[string]any{"intentKey": "k-1"}, workpool.Delivery{})
	require.NoError(t, err)
	assert.Equal(t, true, out["abandoned"])

	// A second firing, and a firing against a settled intent, are no-ops.
	out, err = h(ctx, map[string]any{"intentKey": "k-1"}, workpool.Delivery{})
	require.NoError(t, err)
	assert.Equal(t, false, out["abandoned"])
	out, err = h(ctx, map[string]any{"intentKey": "k-2"}, workpool.Delivery{})
	require.NoError(t, err)
	assert.Equal(t, false, out["abandoned"])

	in, err := intents.Get(ctx, "k-2")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, in.Status)
}

func TestSweepAbandonsExpiredIntents(t *testing.T) {
	store := eventstore.NewMemStore()
	intents := NewMemIntentStore()
	x := newTestExecutor(store, intents)
	ctx := context.Background()

	require.NoError(t, intents.Create(ctx, &Intent{
		IntentKey: "expired", OperationType: "createNote",
		StreamType: "note", StreamID: "n-1",
		TimeoutMs: 1000, ExpiresAt: fixedNow.Add(-time.Minute),
	}))
	require.NoError(t, intents.Create(ctx, &Intent{
		IntentKey: "fresh", OperationType: "createNote",
		StreamType: "note", StreamID: "n-2",
		TimeoutMs: 1000, ExpiresAt: fixedNow.Add(time.Hour),
	}))

	x.Sweep(ctx)

	in, err := intents.Get(ctx, "expired")
	require.NoError(t, err)
	assert.Equal(t, StatusAbandoned, in.Status)
	in, err = intents.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, in.Status)
}

func TestSweeperDefaults(t *testing.T) {
	cfg := config.DefaultDurableConfig()
	assert.Equal(t, 5*time.Minute, cfg.IntentTimeout)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
}
