package bus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/pkg/eventstore"
)

func domainEvent(eventType, streamType, streamID string) *eventstore.Event {
	return &eventstore.Event{
		EventID:        "e1",
		EventType:      eventType,
		StreamType:     streamType,
		StreamID:       streamID,
		StreamVersion:  1,
		GlobalPosition: 42,
		Timestamp:      time.Now().UTC(),
		Category:       eventstore.CategoryDomain,
		SchemaVersion:  1,
		Payload:        map[string]any{"x": 1},
		Metadata:       eventstore.Metadata{CorrelationID: "corr-1", CausationID: "cmd-1"},
		Outcome:        eventstore.OutcomeSuccess,
		BoundedContext: "catalog",
	}
}

func TestActionSubscriptionRequiresOnComplete(t *testing.T) {
	_, err := New(Subscription{
		Name:    "notify",
		Kind:    KindAction,
		Handler: "notify.send",
	})
	assert.ErrorContains(t, err, "onComplete")
}

func TestDuplicateSubscriptionName(t *testing.T) {
	_, err := New(
		Subscription{Name: "a", Handler: "h1"},
		Subscription{Name: "a", Handler: "h2"},
	)
	assert.ErrorContains(t, err, "duplicate")
}

func TestPublishMatchesAndEnqueuesByPriority(t *testing.T) {
	b, err := New(
		Subscription{
			Name:     "orderSaga",
			Filter:   Filter{EventTypes: []string{"OrderPlaced"}},
			Handler:  "saga.order",
			Priority: 300,
		},
		Subscription{
			Name:    "orderProjection",
			Filter:  Filter{EventTypes: []string{"OrderPlaced", "OrderShipped"}},
			Handler: "proj.order",
			// default priority 100
		},
		Subscription{
			Name:     "restockPM",
			Filter:   Filter{EventTypes: []string{"OrderPlaced"}},
			Handler:  "pm.restock",
			Priority: 200,
		},
		Subscription{
			Name:    "paymentProjection",
			Filter:  Filter{EventTypes: []string{"PaymentCaptured"}},
			Handler: "proj.payment",
		},
	)
	require.NoError(t, err)

	store := eventstore.NewMemStore()
	result, err := b.Publish(context.Background(), store, domainEvent("OrderPlaced", "order", "o1"))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Matched)
	assert.Equal(t, []string{"orderProjection", "restockPM", "orderSaga"}, result.Triggered)

	items := store.PendingWork()
	require.Len(t, items, 3)
	assert.Equal(t, "proj.order", items[0].Ref)
	assert.Equal(t, 100, items[0].Priority)
	assert.Equal(t, "o1", items[0].PartitionKey)
	assert.Equal(t, "orderProjection", items[0].Delivery["subscription"])
	assert.Equal(t, int64(42), items[0].Delivery["globalPosition"])
	assert.Equal(t, "cmd-1", items[0].Delivery["causationId"])
}

func TestPublishNoMatch(t *testing.T) {
	b, err := New(Subscription{
		Name:    "paymentProjection",
		Filter:  Filter{EventTypes: []string{"PaymentCaptured"}},
		Handler: "proj.payment",
	})
	require.NoError(t, err)

	store := eventstore.NewMemStore()
	result, err := b.Publish(context.Background(), store, domainEvent("OrderPlaced", "order", "o1"))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Matched)
	assert.Empty(t, result.Triggered)
	assert.Empty(t, store.PendingWork())
}

func TestFilterDimensionsAreANDed(t *testing.T) {
	b, err := New(Subscription{
		Name: "catalogOnly",
		Filter: Filter{
			EventTypes:      []string{"OrderPlaced"},
			BoundedContexts: []string{"ordering"},
		},
		Handler: "proj.catalog",
	})
	require.NoError(t, err)

	store := eventstore.NewMemStore()

	// Event type matches but bounded context does not.
	e := domainEvent("OrderPlaced", "order", "o1") // boundedContext: catalog
	result, err := b.Publish(context.Background(), store, e)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Matched)

	e.BoundedContext = "ordering"
	result, err = b.Publish(context.Background(), store, e)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Matched)
}

func TestWildcardAndCategorySubscriptions(t *testing.T) {
	b, err := New(
		Subscription{
			Name:    "auditLog",
			Handler: "audit.record", // no filter: sees everything
		},
		Subscription{
			Name:    "integrationOut",
			Filter:  Filter{Categories: []eventstore.Category{eventstore.CategoryIntegration}},
			Handler: "integration.publish",
		},
	)
	require.NoError(t, err)

	store := eventstore.NewMemStore()

	result, err := b.Publish(context.Background(), store, domainEvent("OrderPlaced", "order", "o1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"auditLog"}, result.Triggered)

	e := domainEvent("OrderExported", "order", "o1")
	e.Category = eventstore.CategoryIntegration
	result, err = b.Publish(context.Background(), store, e)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"auditLog", "integrationOut"}, result.Triggered)
}

func TestCustomArgsAndPartition(t *testing.T) {
	b, err := New(Subscription{
		Name:    "slim",
		Filter:  Filter{EventTypes: []string{"OrderPlaced"}},
		Handler: "proj.slim",
		ToArgs: func(e *eventstore.Event) map[string]any {
			return map[string]any{"orderId": e.StreamID}
		},
		PartitionKey: func(e *eventstore.Event) string {
			return "order:" + e.StreamID
		},
	})
	require.NoError(t, err)

	store := eventstore.NewMemStore()
	_, err = b.Publish(context.Background(), store, domainEvent("OrderPlaced", "order", "o1"))
	require.NoError(t, err)

	items := store.PendingWork()
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{"orderId": "o1"}, items[0].Args)
	assert.Equal(t, "order:o1", items[0].PartitionKey)
}
