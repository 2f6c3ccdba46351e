package command

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/pkg/bus"
	"github.com/strandkit/strand/pkg/decider"
	"github.com/strandkit/strand/pkg/eventstore"
)

func payloadString(p map[string]any, key string) string {
	s, _ := p[key].(string)
	return s
}

// createProduct creates the product stream; duplicate SKUs are rejected.
func createProductConfig() Config {
	return Config{
		CommandType:    "createProduct",
		BoundedContext: "catalog",
		StreamType:     "product",
		Handler: NewEntityHandler(EntityHandlerConfig{
			StreamType:    "product",
			CreatesEntity: true,
			StreamID: func(p map[string]any) (string, error) {
				return payloadString(p, "sku"), nil
			},
			Decide: func(state map[string]any, cmd decider.Command, dctx decider.Context) decider.Decision {
				if state != nil {
					return decider.Rejected(decider.CodeSKUAlreadyExists,
						fmt.Sprintf("sku %q already exists", payloadString(cmd.Payload, "sku")), nil)
				}
				initial := map[string]any{
					"sku":   cmd.Payload["sku"],
					"stock": cmd.Payload["stock"],
				}
				return decider.Success(&decider.EventDraft{
					EventType:     "ProductCreated",
					SchemaVersion: 1,
					Payload:       initial,
				}, map[string]any{"sku": cmd.Payload["sku"]}, initial)
			},
		}),
	}
}

// reserveStock mutates the product stream; insufficient stock is a business
// failure recorded as an event.
func reserveStockConfig() Config {
	return Config{
		CommandType:    "reserveStock",
		BoundedContext: "catalog",
		StreamType:     "product",
		Handler: NewEntityHandler(EntityHandlerConfig{
			StreamType:   "product",
			NotFoundCode: decider.CodeProductNotFound,
			StreamID: func(p map[string]any) (string, error) {
				return payloadString(p, "sku"), nil
			},
			Decide: func(state map[string]any, cmd decider.Command, dctx decider.Context) decider.Decision {
				stock, _ := state["stock"].(int)
				qty, _ := cmd.Payload["quantity"].(int)
				if qty > stock {
					return decider.Failed(&decider.EventDraft{
						EventType:     "StockReservationFailed",
						SchemaVersion: 1,
						Payload: map[string]any{
							"sku":    cmd.Payload["sku"],
							"reason": "insufficient stock",
						},
					}, "insufficient stock", map[string]any{"available": stock, "requested": qty})
				}
				return decider.Success(&decider.EventDraft{
					EventType:     "StockReserved",
					SchemaVersion: 1,
					Payload:       map[string]any{"sku": cmd.Payload["sku"], "quantity": qty},
				}, nil, map[string]any{"stock": stock - qty})
			},
		}),
	}
}

func newOrchestrator(t *testing.T, store eventstore.Store, subs ...bus.Subscription) *Orchestrator {
	t.Helper()
	b, err := bus.New(subs...)
	require.NoError(t, err)
	return NewOrchestrator(store, b, WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}))
}

func TestExecuteCreatesEntity(t *testing.T) {
	store := eventstore.NewMemStore()
	o := newOrchestrator(t, store, bus.Subscription{
		Name:    "productProjection",
		Filter:  bus.Filter{EventTypes: []string{"ProductCreated"}},
		Handler: "proj.product",
	})
	ctx := context.Background()

	result, err := o.Execute(ctx, createProductConfig(), Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 5},
	})
	require.NoError(t, err)

	assert.Equal(t, decider.StatusSuccess, result.Status)
	assert.Equal(t, 1, result.Version)
	assert.NotEmpty(t, result.EventID)

	// Event persisted with causationId = commandId.
	e, err := store.LookupByCommandID(ctx, "cmd-1")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "ProductCreated", e.EventType)
	assert.Equal(t, "cmd-1", e.Metadata.CorrelationID, "correlation defaults to commandId")
	assert.Equal(t, eventstore.OutcomeSuccess, e.Outcome)
	assert.Equal(t, "catalog", e.BoundedContext)

	// CMS inserted as full state.
	cms, err := store.LoadCMS(ctx, "product", "SKU-1")
	require.NoError(t, err)
	require.NotNil(t, cms)
	assert.Equal(t, 1, cms.Version)
	assert.Equal(t, 5, cms.State["stock"])

	// Bus delivery enqueued.
	items := store.PendingWork()
	require.Len(t, items, 1)
	assert.Equal(t, "proj.product", items[0].Ref)
}

func TestExecuteRetrySameCommandIDReplays(t *testing.T) {
	store := eventstore.NewMemStore()
	o := newOrchestrator(t, store)
	ctx := context.Background()

	first, err := o.Execute(ctx, createProductConfig(), Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 5},
	})
	require.NoError(t, err)

	second, err := o.Execute(ctx, createProductConfig(), Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 5},
	})
	require.NoError(t, err)

	assert.Equal(t, decider.StatusSuccess, second.Status)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.EventID, second.EventID)
	assert.Equal(t, first.GlobalPosition, second.GlobalPosition)

	// Exactly one event exists.
	events, err := store.ReadStream(ctx, "product", "SKU-1", 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestExecuteRejectedEmitsNothing(t *testing.T) {
	store := eventstore.NewMemStore()
	o := newOrchestrator(t, store)
	ctx := context.Background()

	_, err := o.Execute(ctx, createProductConfig(), Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 5},
	})
	require.NoError(t, err)

	result, err := o.Execute(ctx, createProductConfig(), Args{
		CommandID: "cmd-2",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 9},
	})
	require.NoError(t, err)

	assert.Equal(t, decider.StatusRejected, result.Status)
	assert.Equal(t, decider.CodeSKUAlreadyExists, result.Code)

	// The rejection produced no event.
	e, err := store.LookupByCommandID(ctx, "cmd-2")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestExecuteBusinessFailurePersistsFailureEvent(t *testing.T) {
	store := eventstore.NewMemStore()
	var failedProjected []string
	cfg := reserveStockConfig()
	cfg.FailedProjection = &Projection{
		Name: "reservationFailures",
		Apply: func(ctx context.Context, tx eventstore.Store, e *eventstore.Event) error {
			failedProjected = append(failedProjected, e.EventID)
			return nil
		},
	}
	o := newOrchestrator(t, store)
	ctx := context.Background()

	_, err := o.Execute(ctx, createProductConfig(), Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 2},
	})
	require.NoError(t, err)

	result, err := o.Execute(ctx, cfg, Args{
		CommandID: "cmd-2",
		Payload:   map[string]any{"sku": "SKU-1", "quantity": 10},
	})
	require.NoError(t, err)

	assert.Equal(t, decider.StatusFailed, result.Status)
	assert.Equal(t, "insufficient stock", result.Reason)
	assert.NotEmpty(t, result.EventID)

	// The failure itself is an event with outcome failed.
	e, err := store.LookupByCommandID(ctx, "cmd-2")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "StockReservationFailed", e.EventType)
	assert.Equal(t, eventstore.OutcomeFailed, e.Outcome)

	// CMS state unchanged by the failure.
	cms, err := store.LoadCMS(ctx, "product", "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cms.State["stock"])

	// Failed projection ran.
	assert.Equal(t, []string{e.EventID}, failedProjected)

	// A retry of the failed command replays the failure.
	retry, err := o.Execute(ctx, cfg, Args{
		CommandID: "cmd-2",
		Payload:   map[string]any{"sku": "SKU-1", "quantity": 10},
	})
	require.NoError(t, err)
	assert.Equal(t, decider.StatusFailed, retry.Status)
	assert.True(t, retry.Replayed)
	assert.Equal(t, "insufficient stock", retry.Reason)
}

func TestExecuteSuccessMutationPatchesCMS(t *testing.T) {
	store := eventstore.NewMemStore()
	o := newOrchestrator(t, store)
	ctx := context.Background()

	_, err := o.Execute(ctx, createProductConfig(), Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 5},
	})
	require.NoError(t, err)

	result, err := o.Execute(ctx, reserveStockConfig(), Args{
		CommandID: "cmd-2",
		Payload:   map[string]any{"sku": "SKU-1", "quantity": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, decider.StatusSuccess, result.Status)
	assert.Equal(t, 2, result.Version)

	cms, err := store.LoadCMS(ctx, "product", "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cms.Version)
	assert.Equal(t, 2, cms.State["stock"])
	assert.Equal(t, "SKU-1", cms.State["sku"], "patch preserves untouched fields")
}

func TestExecuteUnknownEntityRejected(t *testing.T) {
	store := eventstore.NewMemStore()
	o := newOrchestrator(t, store)

	result, err := o.Execute(context.Background(), reserveStockConfig(), Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-MISSING", "quantity": 1},
	})
	require.NoError(t, err)

	assert.Equal(t, decider.StatusRejected, result.Status)
	assert.Equal(t, decider.CodeProductNotFound, result.Code)
}

func TestExecuteProjectionFailureDeadLettersButKeepsEvent(t *testing.T) {
	store := eventstore.NewMemStore()
	cfg := createProductConfig()
	cfg.Projection = &Projection{
		Name: "brokenProjection",
		Apply: func(ctx context.Context, tx eventstore.Store, e *eventstore.Event) error {
			return errors.New("projection exploded")
		},
	}
	o := newOrchestrator(t, store)
	ctx := context.Background()

	result, err := o.Execute(ctx, cfg, Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 5},
	})
	require.NoError(t, err)
	assert.Equal(t, decider.StatusSuccess, result.Status)

	// Event survives; the failure is a dead letter.
	e, err := store.LookupByCommandID(ctx, "cmd-1")
	require.NoError(t, err)
	require.NotNil(t, e)

	letters := store.DeadLetters()
	require.Len(t, letters, 1)
	assert.Equal(t, "brokenProjection", letters[0].Subscription)
	assert.Contains(t, letters[0].ErrorMessage, "projection exploded")
}

func TestExecuteHandlerErrorRollsBackEverything(t *testing.T) {
	store := eventstore.NewMemStore()
	cfg := createProductConfig()
	cfg.Handler = func(ctx context.Context, tx eventstore.Store, cmd decider.Command, dctx decider.Context) (*HandlerResult, error) {
		// Write something first, then blow up.
		if err := tx.UpsertCMS(ctx, "product", "SKU-1", 1, map[string]any{"x": 1}, 1); err != nil {
			return nil, err
		}
		return nil, errors.New("handler exploded")
	}
	o := newOrchestrator(t, store)
	ctx := context.Background()

	_, err := o.Execute(ctx, cfg, Args{CommandID: "cmd-1", Payload: map[string]any{"sku": "SKU-1"}})
	require.ErrorContains(t, err, "handler exploded")

	cms, err := store.LoadCMS(ctx, "product", "SKU-1")
	require.NoError(t, err)
	assert.Nil(t, cms)
}

func TestExecuteAppendConflict(t *testing.T) {
	store := eventstore.NewMemStore()
	o := newOrchestrator(t, store)
	ctx := context.Background()

	_, err := o.Execute(ctx, createProductConfig(), Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 5},
	})
	require.NoError(t, err)

	// A handler holding a stale view of the stream loses the append.
	cfg := reserveStockConfig()
	cfg.Handler = func(ctx context.Context, tx eventstore.Store, cmd decider.Command, dctx decider.Context) (*HandlerResult, error) {
		return &HandlerResult{
			Decision: decider.Success(&decider.EventDraft{
				EventType:     "StockReserved",
				SchemaVersion: 1,
				Payload:       map[string]any{},
			}, nil, nil),
			StreamID:    "SKU-1",
			BaseVersion: 0, // stale: stream is at 1
		}, nil
	}

	result, err := o.Execute(ctx, cfg, Args{
		CommandID: "cmd-2",
		Payload:   map[string]any{"sku": "SKU-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, decider.StatusConflict, result.Status)
	assert.Equal(t, 1, result.CurrentVersion)

	// Nothing was written by the losing command.
	e, err := store.LookupByCommandID(ctx, "cmd-2")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestExecuteValidatePayloadRejects(t *testing.T) {
	store := eventstore.NewMemStore()
	cfg := createProductConfig()
	cfg.ValidatePayload = func(payload map[string]any) error {
		if _, ok := payload["sku"]; !ok {
			return errors.New("sku is required")
		}
		return nil
	}
	o := newOrchestrator(t, store)

	result, err := o.Execute(context.Background(), cfg, Args{CommandID: "cmd-1", Payload: map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, decider.StatusRejected, result.Status)
	assert.Equal(t, "INVALID_PAYLOAD", result.Code)
}

// enqueueFailStore wraps a MemStore so every in-transaction enqueue fails,
// simulating a bus delivery that cannot be persisted.
type enqueueFailStore struct {
	eventstore.Store
}

func (s *enqueueFailStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx eventstore.Store) error) error {
	return s.Store.WithinTx(ctx, func(ctx context.Context, tx eventstore.Store) error {
		return fn(ctx, &enqueueFailTx{tx})
	})
}

type enqueueFailTx struct {
	eventstore.Store
}

func (t *enqueueFailTx) EnqueueWork(ctx context.Context, item eventstore.WorkInput) (int64, error) {
	return 0, errors.New("enqueue failed")
}

func TestExecutePublishFailureRollsBack(t *testing.T) {
	mem := eventstore.NewMemStore()
	store := &enqueueFailStore{Store: mem}
	o := newOrchestrator(t, store, bus.Subscription{
		Name:    "productProjection",
		Filter:  bus.Filter{EventTypes: []string{"ProductCreated"}},
		Handler: "proj.product",
	})
	ctx := context.Background()

	_, err := o.Execute(ctx, createProductConfig(), Args{
		CommandID: "cmd-1",
		Payload:   map[string]any{"sku": "SKU-1", "stock": 5},
	})
	require.ErrorContains(t, err, "enqueue failed")

	// The event rolled back with the enqueue failure.
	e, err := mem.LookupByCommandID(ctx, "cmd-1")
	require.NoError(t, err)
	assert.Nil(t, e)
}
