package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/pkg/workpool"
)

// AsMap renders the integration event in its wire shape.
func (e *Event) AsMap() map[string]any {
	m := map[string]any{
		"eventId":       e.EventID,
		"eventType":     e.EventType,
		"schemaVersion": e.SchemaVersion,
		"source":        e.Source,
		"occurredAt":    e.OccurredAt.Format(time.RFC3339Nano),
		"payload":       e.Payload,
	}
	if e.CorrelationID != "" {
		m["correlationId"] = e.CorrelationID
	}
	return m
}

// FuncDestination adapts a function to the Destination interface.
type FuncDestination struct {
	name string
	fn   func(ctx context.Context, e *Event) error
}

// NewFuncDestination wraps fn as a named destination.
func NewFuncDestination(name string, fn func(ctx context.Context, e *Event) error) *FuncDestination {
	return &FuncDestination{name: name, fn: fn}
}

// Name implements Destination.
func (d *FuncDestination) Name() string { return d.name }

// Deliver implements Destination.
func (d *FuncDestination) Deliver(ctx context.Context, e *Event) error {
	return d.fn(ctx, e)
}

// PoolDestination delivers by enqueueing the integration event as a durable
// work item, so the actual outbound call runs on the pool with its retry
// policy. Events sharing a correlation are delivered in order.
type PoolDestination struct {
	name  string
	ref   string
	store eventstore.Store
}

// NewPoolDestination creates a destination backed by the registered handler
// ref.
func NewPoolDestination(name, ref string, store eventstore.Store) *PoolDestination {
	return &PoolDestination{name: name, ref: ref, store: store}
}

// Name implements Destination.
func (d *PoolDestination) Name() string { return d.name }

// Deliver implements Destination.
func (d *PoolDestination) Deliver(ctx context.Context, e *Event) error {
	_, err := d.store.EnqueueWork(ctx, eventstore.WorkInput{
		Ref:          d.ref,
		Args:         e.AsMap(),
		PartitionKey: e.CorrelationID,
	})
	if err != nil {
		return fmt.Errorf("enqueue delivery to %s: %w", d.name, err)
	}
	return nil
}

// Handler adapts the publisher to a work-pool action handler: args are the
// domain event in wire shape.
func (p *Publisher) Handler() workpool.ActionHandler {
	return func(ctx context.Context, args map[string]any, d workpool.Delivery) (map[string]any, error) {
		e, err := eventstore.EventFromMap(args)
		if err != nil {
			return nil, fmt.Errorf("integration publish: %w", err)
		}
		res, err := p.Publish(ctx, e)
		if err != nil {
			return nil, err
		}
		return map[string]any{"routed": res.Routed, "delivered": res.Delivered}, nil
	}
}
