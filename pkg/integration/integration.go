// Package integration implements the integration publisher: domain events
// are translated into minimal integration events (the published language) and
// routed to destinations, and an anti-corruption layer translates foreign
// integration events into domain vocabulary on the way in. Integration events
// carry their own schema version, independent of the source domain events.
package integration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/strandkit/strand/pkg/eventstore"
)

// CodeUnknownIntegrationEvent rejects an inbound integration event with no
// registered translator.
const CodeUnknownIntegrationEvent = "UNKNOWN_INTEGRATION_EVENT"

// Event is one integration event. Minimal by design: identifiers and the
// facts external contexts need, nothing else.
type Event struct {
	EventID       string         `json:"eventId"`
	EventType     string         `json:"eventType"`
	SchemaVersion int            `json:"schemaVersion"`
	Source        string         `json:"source"`
	OccurredAt    time.Time      `json:"occurredAt"`
	CorrelationID string         `json:"correlationId,omitempty"`
	Payload       map[string]any `json:"payload"`
}

// Translator maps one domain event to its integration shape. Returning a nil
// event (and nil error) drops the event from the route.
type Translator func(e *eventstore.Event) (*Event, error)

// Destination delivers integration events to an external system.
type Destination interface {
	Name() string
	Deliver(ctx context.Context, e *Event) error
}

// Route binds one source event type to a translator and its destinations.
// PayloadSchema, when set, validates every produced integration event; it is
// compiled at registration so a broken schema fails startup.
type Route struct {
	SourceEventType string
	Translate       Translator
	Destinations    []string
	PayloadSchema   map[string]any
}

// PublishResult reports what one publish did.
type PublishResult struct {
	Routed    int
	Delivered int
}

// Publisher routes translated events to destinations.
type Publisher struct {
	routes       map[string][]Route
	destinations map[string]Destination
	schemas      map[string]*jsonschema.Schema
}

// NewPublisher validates routes against the registered destinations and
// compiles route schemas.
func NewPublisher(routes []Route, destinations []Destination) (*Publisher, error) {
	p := &Publisher{
		routes:       make(map[string][]Route),
		destinations: make(map[string]Destination, len(destinations)),
		schemas:      make(map[string]*jsonschema.Schema),
	}
	for _, d := range destinations {
		if d.Name() == "" {
			return nil, fmt.Errorf("destination with empty name")
		}
		if _, dup := p.destinations[d.Name()]; dup {
			return nil, fmt.Errorf("duplicate destination %q", d.Name())
		}
		p.destinations[d.Name()] = d
	}
	for _, r := range routes {
		if r.SourceEventType == "" {
			return nil, fmt.Errorf("route with empty sourceEventType")
		}
		if r.Translate == nil {
			return nil, fmt.Errorf("route for %q has no translator", r.SourceEventType)
		}
		if len(r.Destinations) == 0 {
			return nil, fmt.Errorf("route for %q has no destinations", r.SourceEventType)
		}
		for _, name := range r.Destinations {
			if _, ok := p.destinations[name]; !ok {
				return nil, fmt.Errorf("route for %q references unknown destination %q", r.SourceEventType, name)
			}
		}
		if r.PayloadSchema != nil {
			schema, err := compileRouteSchema(r.SourceEventType, len(p.routes[r.SourceEventType]), r.PayloadSchema)
			if err != nil {
				return nil, fmt.Errorf("route for %q: %w", r.SourceEventType, err)
			}
			p.schemas[routeSchemaKey(r.SourceEventType, len(p.routes[r.SourceEventType]))] = schema
		}
		p.routes[r.SourceEventType] = append(p.routes[r.SourceEventType], r)
	}
	return p, nil
}

// Publish translates and delivers one domain event. A domain event with no
// route is a no-op. Delivery errors abort the publish so the pool retries;
// destinations must tolerate redelivery.
func (p *Publisher) Publish(ctx context.Context, e *eventstore.Event) (*PublishResult, error) {
	result := &PublishResult{}
	for i, route := range p.routes[e.EventType] {
		ie, err := route.Translate(e)
		if err != nil {
			return result, fmt.Errorf("translate %s: %w", e.EventType, err)
		}
		if ie == nil {
			continue
		}
		result.Routed++

		if ie.EventID == "" {
			ie.EventID = e.EventID
		}
		if ie.OccurredAt.IsZero() {
			ie.OccurredAt = e.Timestamp
		}
		if ie.CorrelationID == "" {
			ie.CorrelationID = e.Metadata.CorrelationID
		}
		if ie.Source == "" {
			ie.Source = e.BoundedContext
		}

		if schema, ok := p.schemas[routeSchemaKey(e.EventType, i)]; ok {
			if err := schema.Validate(normalize(ie.Payload)); err != nil {
				return result, fmt.Errorf("integration event %s payload: %w", ie.EventType, err)
			}
		}

		for _, name := range route.Destinations {
			if err := p.destinations[name].Deliver(ctx, ie); err != nil {
				return result, fmt.Errorf("deliver %s to %s: %w", ie.EventType, name, err)
			}
			result.Delivered++
		}
		slog.Info("Integration event published",
			"event_type", ie.EventType, "source_event", e.EventID,
			"destinations", len(route.Destinations))
	}
	return result, nil
}

// Subscribed reports whether any route consumes the given domain event type.
func (p *Publisher) Subscribed(eventType string) bool {
	return len(p.routes[eventType]) > 0
}

func routeSchemaKey(sourceEventType string, idx int) string {
	return fmt.Sprintf("%s#%d", sourceEventType, idx)
}

func compileRouteSchema(sourceEventType string, idx int, doc map[string]any) (*jsonschema.Schema, error) {
	url := fmt.Sprintf("integration/%s_%d.schema.json", sourceEventType, idx)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// normalize converts Go-typed values into plain decoded-JSON shapes for the
// schema validator.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
