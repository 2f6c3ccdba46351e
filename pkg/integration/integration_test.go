package integration

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

func placedEvent() *eventstore.Event {
	return &eventstore.Event{
		EventID:        "evt-1",
		EventType:      "orderPlaced",
		StreamType:     "order",
		StreamID:       "o-1",
		StreamVersion:  1,
		GlobalPosition: 10,
		Timestamp:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Category:       eventstore.CategoryDomain,
		SchemaVersion:  2,
		Payload:        map[string]any{"orderId": "o-1", "total": 42.5, "internalNotes": "rush"},
		Metadata:       eventstore.Metadata{CorrelationID: "corr-1", CausationID: "cmd-1"},
		Outcome:        eventstore.OutcomeSuccess,
		BoundedContext: "ordering",
	}
}

func orderTranslator(e *eventstore.Event) (*Event, error) {
	// The published language carries identifiers and totals, not internals.
	return &Event{
		EventType:     "order.placed",
		SchemaVersion: 1,
		Payload: map[string]any{
			"orderId": e.Payload["orderId"],
			"total":   e.Payload["total"],
		},
	}, nil
}

type captureDestination struct {
	name   string
	events []*Event
	err    error
}

func (d *captureDestination) Name() string { return d.name }
func (d *captureDestination) Deliver(ctx context.Context, e *Event) error {
	if d.err != nil {
		return d.err
	}
	d.events = append(d.events, e)
	return nil
}

func TestPublishTranslatesAndRoutes(t *testing.T) {
	billing := &captureDestination{name: "billing"}
	shipping := &captureDestination{name: "shipping"}
	p, err := NewPublisher([]Route{{
		SourceEventType: "orderPlaced",
		Translate:       orderTranslator,
		Destinations:    []string{"billing", "shipping"},
	}}, []Destination{billing, shipping})
	require.NoError(t, err)

	res, err := p.Publish(context.Background(), placedEvent())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Routed)
	assert.Equal(t, 2, res.Delivered)

	require.Len(t, billing.events, 1)
	ie := billing.events[0]
	assert.Equal(t, "order.placed", ie.EventType)
	assert.Equal(t, 1, ie.SchemaVersion)
	assert.Equal(t, "evt-1", ie.EventID)
	assert.Equal(t, "corr-1", ie.CorrelationID)
	assert.Equal(t, "ordering", ie.Source)
	assert.NotContains(t, ie.Payload, "internalNotes")
}

func TestPublishNoRouteIsNoOp(t *testing.T) {
	p, err := NewPublisher(nil, nil)
	require.NoError(t, err)
	res, err := p.Publish(context.Background(), placedEvent())
	require.NoError(t, err)
	assert.Zero(t, res.Routed)
	assert.False(t, p.Subscribed("orderPlaced"))
}

func TestNewPublisherRejectsUnknownDestination(t *testing.T) {
	_, err := NewPublisher([]Route{{
		SourceEventType: "orderPlaced",
		Translate:       orderTranslator,
		Destinations:    []string{"warehouse"},
	}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown destination")
}

func TestNewPublisherRejectsBrokenSchema(t *testing.T) {
	d := &captureDestination{name: "billing"}
	_, err := NewPublisher([]Route{{
		SourceEventType: "orderPlaced",
		Translate:       orderTranslator,
		Destinations:    []string{"billing"},
		PayloadSchema:   map[string]any{"type": 42},
	}}, []Destination{d})
	require.Error(t, err)
}

func TestPublishValidatesPayloadAgainstRouteSchema(t *testing.T) {
	d := &captureDestination{name: "billing"}
	p, err := NewPublisher([]Route{{
		SourceEventType: "orderPlaced",
		Translate: func(e *eventstore.Event) (*Event, error) {
			return &Event{EventType: "order.placed", SchemaVersion: 1,
				Payload: map[string]any{"total": e.Payload["total"]}}, nil
		},
		Destinations: []string{"billing"},
		PayloadSchema: map[string]any{
			"type":     "object",
			"required": []any{"orderId"},
		},
	}}, []Destination{d})
	require.NoError(t, err)

	_, err = p.Publish(context.Background(), placedEvent())
	require.Error(t, err)
	assert.Empty(t, d.events)
}

func TestPublishDeliveryErrorAborts(t *testing.T) {
	d := &captureDestination{name: "billing", err: errors.New("broker unavailable")}
	p, err := NewPublisher([]Route{{
		SourceEventType: "orderPlaced",
		Translate:       orderTranslator,
		Destinations:    []string{"billing"},
	}}, []Destination{d})
	require.NoError(t, err)

	_, err = p.Publish(context.Background(), placedEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
}

func TestPoolDestinationEnqueues(t *testing.T) {
	store := eventstore.NewMemStore()
	dest := NewPoolDestination("webhooks", "integration.webhooks.deliver", store)
	p, err := NewPublisher([]Route{{
		SourceEventType: "orderPlaced",
		Translate:       orderTranslator,
		Destinations:    []string{"webhooks"},
	}}, []Destination{dest})
	require.NoError(t, err)

	_, err = p.Publish(context.Background(), placedEvent())
	require.NoError(t, err)

	work := store.PendingWork()
	require.Len(t, work, 1)
	assert.Equal(t, "integration.webhooks.deliver", work[0].Ref)
	assert.Equal(t, "corr-1", work[0].PartitionKey)
	assert.Equal(t, "order.placed", work[0].Args["eventType"])
}

func TestPublisherHandlerDecodesWireEvent(t *testing.T) {
	d := &captureDestination{name: "billing"}
	p, err := NewPublisher([]Route{{
		SourceEventType: "orderPlaced",
		Translate:       orderTranslator,
		Destinations:    []string{"billing"},
	}}, []Destination{d})
	require.NoError(t, err)

	h := p.Handler()
	out, err := h(context.Background(), placedEvent().AsMap(), workpool.Delivery{Subscription: "integrationPublisher"})
	require.NoError(t, err)
	assert.Equal(t, 1, out["routed"])
	assert.Len(t, d.events, 1)
}

func TestACLTranslatesKnownEvents(t *testing.T) {
	acl, err := NewACL(map[string]InboundTranslator{
		"payment.captured": func(e *Event) (*DomainCommand, error) {
			return &DomainCommand{
				CommandType: "recordPayment",
				Payload:     map[string]any{"orderId": e.Payload["order_ref"]},
			}, nil
		},
	})
	require.NoError(t, err)

	cmd, err := acl.Translate(&Event{
		EventType: "payment.captured",
		Payload:   map[string]any{"order_ref": "o-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "recordPayment", cmd.CommandType)
	assert.Equal(t, "o-1", cmd.Payload["orderId"])
}

func TestACLRejectsUnknownEvents(t *testing.T) {
	acl, err := NewACL(nil)
	require.NoError(t, err)

	_, err = acl.Translate(&Event{EventType: "loyalty.pointsGranted"})
	require.Error(t, err)
	var rej *RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, CodeUnknownIntegrationEvent, rej.Code)
}
