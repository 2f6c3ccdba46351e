package procman

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/pkg/workpool"
)

func orderEvent(pos int64, eventType string) *eventstore.Event {
	return &eventstore.Event{
		EventID:        "evt-" + eventType,
		EventType:      eventType,
		StreamType:     "order",
		StreamID:       "o-1",
		StreamVersion:  int(pos),
		GlobalPosition: pos,
		Timestamp:      time.Now().UTC(),
		Category:       eventstore.CategoryDomain,
		SchemaVersion:  1,
		Payload:        map[string]any{"orderId": "o-1"},
		Metadata:       eventstore.Metadata{CorrelationID: "corr-1", CausationID: "cmd-" + eventType},
		Outcome:        eventstore.OutcomeSuccess,
	}
}

func fulfillmentDef() Definition {
	return Definition{
		PMName:             "orderFulfillment",
		EventSubscriptions: []string{"orderPlaced", "paymentCaptured"},
		InstanceIDResolver: func(e *eventstore.Event) (string, error) {
			id, _ := e.Payload["orderId"].(string)
			return id, nil
		},
	}
}

func shipHandler(ctx context.Context, e *eventstore.Event) ([]EmittedCommand, error) {
	return []EmittedCommand{{
		CommandType:   "shipOrder",
		CommandID:     "ship-" + e.EventID,
		CorrelationID: e.Metadata.CorrelationID,
		Payload:       map[string]any{"orderId": e.StreamID},
	}}, nil
}

func newTestExecutor(store *eventstore.MemStore) (*Executor, *MemStateStore) {
	states := NewMemStateStore()
	emit := NewPoolEmitter(store, func(commandType string) string {
		return "command." + commandType
	})
	return NewExecutor(states, store, emit), states
}

func TestProcessEventEmitsCommands(t *testing.T) {
	store := eventstore.NewMemStore()
	x, states := newTestExecutor(store)
	ctx := context.Background()

	res, err := x.ProcessEvent(ctx, fulfillmentDef(), shipHandler, nil, orderEvent(7, "orderPlaced"), workpool.Delivery{})
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, "o-1", res.InstanceID)
	assert.Equal(t, 1, res.CommandsEmitted)

	work := store.PendingWork()
	require.Len(t, work, 1)
	assert.Equal(t, "command.shipOrder", work[0].Ref)
	assert.Equal(t, "corr-1", work[0].PartitionKey)
	assert.Equal(t, "shipOrder", work[0].Args["commandType"])

	st, err := states.GetOrCreate(ctx, "orderFulfillment", "o-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusIdle, st.Status)
	assert.Equal(t, int64(7), st.LastGlobalPosition)
	assert.Equal(t, 1, st.CommandsEmitted)
	assert.Equal(t, "evt-orderPlaced", st.TriggerEventID)
}

func TestProcessEventNotSubscribed(t *testing.T) {
	store := eventstore.NewMemStore()
	x, _ := newTestExecutor(store)

	res, err := x.ProcessEvent(context.Background(), fulfillmentDef(), shipHandler, nil, orderEvent(1, "orderCancelled"), workpool.Delivery{})
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, SkipNotSubscribed, res.SkipReason)
	assert.Empty(t, store.PendingWork())
}

func TestProcessEventWatermarkSkipsRedelivery(t *testing.T) {
	store := eventstore.NewMemStore()
	x, _ := newTestExecutor(store)
	ctx := context.Background()

	_, err := x.ProcessEvent(ctx, fulfillmentDef(), shipHandler, nil, orderEvent(7, "orderPlaced"), workpool.Delivery{})
	require.NoError(t, err)

	// Same position redelivered.
	res, err := x.ProcessEvent(ctx, fulfillmentDef(), shipHandler, nil, orderEvent(7, "orderPlaced"), workpool.Delivery{})
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, SkipAlreadyProcessed, res.SkipReason)

	// Older position delivered late.
	res, err = x.ProcessEvent(ctx, fulfillmentDef(), shipHandler, nil, orderEvent(3, "paymentCaptured"), workpool.Delivery{})
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, SkipAlreadyProcessed, res.SkipReason)

	assert.Len(t, store.PendingWork(), 1)
}

func TestProcessEventCompletedInstanceIsTerminal(t *testing.T) {
	store := eventstore.NewMemStore()
	x, states := newTestExecutor(store)
	ctx := context.Background()

	done := func(e *eventstore.Event, emitted []EmittedCommand) bool {
		return e.EventType == "paymentCaptured"
	}

	res, err := x.ProcessEvent(ctx, fulfillmentDef(), shipHandler, done, orderEvent(5, "paymentCaptured"), workpool.Delivery{})
	require.NoError(t, err)
	assert.True(t, res.Completed)

	st, err := states.GetOrCreate(ctx, "orderFulfillment", "o-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, st.Status)

	res, err = x.ProcessEvent(ctx, fulfillmentDef(), shipHandler, done, orderEvent(9, "orderPlaced"), workpool.Delivery{})
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, SkipTerminalState, res.SkipReason)
}

func TestProcessEventHandlerErrorRetriesBeforeDeadLetter(t *testing.T) {
	store := eventstore.NewMemStore()
	x, states := newTestExecutor(store)
	ctx := context.Background()

	calls := 0
	flaky := func(c context.Context, e *eventstore.Event) ([]EmittedCommand, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("shipment projection not yet caught up")
		}
		return shipHandler(c, e)
	}

	// First delivery of three: the error is rethrown so the pool retries,
	// but no dead letter is recorded yet.
	_, err := x.ProcessEvent(ctx, fulfillmentDef(), flaky, nil, orderEvent(7, "orderPlaced"),
		workpool.Delivery{Attempt: 1, MaxAttempts: 3})
	require.Error(t, err)
	assert.Empty(t, store.DeadLetters())

	st, err := states.GetOrCreate(ctx, "orderFulfillment", "o-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, st.Status)
	assert.Zero(t, st.LastGlobalPosition)

	// The pool's retry succeeds and advances the watermark as normal.
	res, err := x.ProcessEvent(ctx, fulfillmentDef(), flaky, nil, orderEvent(7, "orderPlaced"),
		workpool.Delivery{Attempt: 2, MaxAttempts: 3})
	require.NoError(t, err)
	assert.False(t, res.Skipped)

	st, err = states.GetOrCreate(ctx, "orderFulfillment", "o-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusIdle, st.Status)
	assert.Equal(t, int64(7), st.LastGlobalPosition)
}

func TestProcessEventFinalAttemptDeadLetters(t *testing.T) {
	store := eventstore.NewMemStore()
	x, states := newTestExecutor(store)
	ctx := context.Background()

	broken := func(ctx context.Context, e *eventstore.Event) ([]EmittedCommand, error) {
		return nil, errors.New("shipment projection not yet caught up")
	}

	_, err := x.ProcessEvent(ctx, fulfillmentDef(), broken, nil, orderEvent(7, "orderPlaced"),
		workpool.Delivery{Attempt: 3, MaxAttempts: 3})
	require.Error(t, err)

	letters := store.DeadLetters()
	require.Len(t, letters, 1)
	assert.Equal(t, "orderFulfillment", letters[0].Subscription)
	assert.Contains(t, letters[0].ErrorMessage, "not yet caught up")
	assert.Equal(t, 3, letters[0].Attempts)

	st, err := states.GetOrCreate(ctx, "orderFulfillment", "o-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, st.Status)
}

func TestProcessEventEmitterErrorRecordsFailedCommands(t *testing.T) {
	store := eventstore.NewMemStore()
	states := NewMemStateStore()
	x := NewExecutor(states, store, func(ctx context.Context, cmds []EmittedCommand) error {
		return errors.New("scheduler unavailable")
	})

	_, err := x.ProcessEvent(context.Background(), fulfillmentDef(), shipHandler, nil, orderEvent(7, "orderPlaced"), workpool.Delivery{})
	require.Error(t, err)

	letters := store.DeadLetters()
	require.Len(t, letters, 1)
	require.NotNil(t, letters[0].FailedCommand)
	cmds := letters[0].FailedCommand["commands"].([]map[string]any)
	require.Len(t, cmds, 1)
	assert.Equal(t, "shipOrder", cmds[0]["commandType"])
}

func TestProcessEventResolverFallsBackToStreamID(t *testing.T) {
	store := eventstore.NewMemStore()
	x, _ := newTestExecutor(store)

	def := fulfillmentDef()
	def.InstanceIDResolver = func(e *eventstore.Event) (string, error) {
		return "", errors.New("no orderId in payload")
	}

	res, err := x.ProcessEvent(context.Background(), def, shipHandler, nil, orderEvent(2, "orderPlaced"), workpool.Delivery{})
	require.NoError(t, err)
	assert.Equal(t, "o-1", res.InstanceID)
}

func TestSubscriptionAdapter(t *testing.T) {
	store := eventstore.NewMemStore()
	x, _ := newTestExecutor(store)

	h := x.Subscription(fulfillmentDef(), shipHandler, nil)
	out, err := h(context.Background(), orderEvent(4, "orderPlaced").AsMap(), workpool.Delivery{Subscription: "orderFulfillment"})
	require.NoError(t, err)
	assert.Equal(t, false, out["skipped"])
	assert.Equal(t, "o-1", out["instanceId"])
	assert.Equal(t, 1, out["commandsEmitted"])
	assert.Len(t, store.PendingWork(), 1)
}

func TestPoolEmitterSchedulesDelayedCommands(t *testing.T) {
	store := eventstore.NewMemStore()
	emit := NewPoolEmitter(store, func(commandType string) string { return "command." + commandType })

	before := time.Now()
	err := emit(context.Background(), []EmittedCommand{{
		CommandType:   "sendReminder",
		CommandID:     "cmd-r1",
		CorrelationID: "corr-9",
		Payload:       map[string]any{"orderId": "o-2"},
		Delay:         10 * time.Minute,
	}})
	require.NoError(t, err)

	work := store.PendingWork()
	require.Len(t, work, 1)
	assert.Equal(t, "command.sendReminder", work[0].Ref)
	assert.Equal(t, "corr-9", work[0].PartitionKey)
	assert.False(t, work[0].RunAfter.Before(before.Add(10*time.Minute)))
}
