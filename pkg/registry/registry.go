// Package registry holds the typed definition metadata the runtime is wired
// from: commands, events, projections, process managers, and queries. A
// Registry is built once at startup, validated at construction, and immutable
// afterwards — handlers and executors read it, nothing writes it.
package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/strandkit/strand/pkg/eventstore"
)

// ProjectionCategory controls what a projection feeds and who may read it.
// Only view projections are client-exposed.
type ProjectionCategory string

// Projection categories.
const (
	ProjectionLogic       ProjectionCategory = "logic"
	ProjectionView        ProjectionCategory = "view"
	ProjectionReporting   ProjectionCategory = "reporting"
	ProjectionIntegration ProjectionCategory = "integration"
)

// PMTrigger says how a process manager is driven.
type PMTrigger string

// Process manager triggers.
const (
	TriggerEvent  PMTrigger = "event"
	TriggerTime   PMTrigger = "time"
	TriggerHybrid PMTrigger = "hybrid"
)

// EventDef declares one event type.
type EventDef struct {
	EventType      string
	Category       eventstore.Category
	SchemaVersion  int
	BoundedContext string
}

// CommandDef declares one command type. PayloadSchema, when present, is a
// JSON Schema document compiled at registry build; payloads are validated
// against it before the handler runs.
type CommandDef struct {
	CommandType    string
	BoundedContext string
	StreamType     string
	Emits          []string
	PayloadSchema  map[string]any
}

// ProjectionDef declares one projection.
type ProjectionDef struct {
	ProjectionName     string
	Category           ProjectionCategory
	EventSubscriptions []string
}

// ClientExposed reports whether clients may query this projection directly.
func (d ProjectionDef) ClientExposed() bool {
	return d.Category == ProjectionView
}

// PMDef declares one process manager.
type PMDef struct {
	PMName             string
	Trigger            PMTrigger
	EventSubscriptions []string
	CronConfig         string
	EmitsCommands      []string
}

// QueryDef declares one named query.
type QueryDef struct {
	QueryName      string
	BoundedContext string
	Projection     string
}

// Definitions is the input to New.
type Definitions struct {
	Events      []EventDef
	Commands    []CommandDef
	Projections []ProjectionDef
	PMs         []PMDef
	Queries     []QueryDef
}

// Registry is the built, immutable definition set.
type Registry struct {
	events      map[string]EventDef
	commands    map[string]CommandDef
	projections map[string]ProjectionDef
	pms         map[string]PMDef
	queries     map[string]QueryDef
	schemas     map[string]*jsonschema.Schema
}

var projectionCategories = map[ProjectionCategory]bool{
	ProjectionLogic:       true,
	ProjectionView:        true,
	ProjectionReporting:   true,
	ProjectionIntegration: true,
}

var eventCategories = map[eventstore.Category]bool{
	eventstore.CategoryDomain:      true,
	eventstore.CategoryIntegration: true,
	eventstore.CategoryTrigger:     true,
	eventstore.CategoryFat:         true,
}

// New validates the definitions and builds a Registry. Validation failures
// are construction errors; nothing is registered lazily.
func New(defs Definitions) (*Registry, error) {
	r := &Registry{
		events:      make(map[string]EventDef, len(defs.Events)),
		commands:    make(map[string]CommandDef, len(defs.Commands)),
		projections: make(map[string]ProjectionDef, len(defs.Projections)),
		pms:         make(map[string]PMDef, len(defs.PMs)),
		queries:     make(map[string]QueryDef, len(defs.Queries)),
		schemas:     make(map[string]*jsonschema.Schema),
	}

	for _, e := range defs.Events {
		if e.EventType == "" {
			return nil, fmt.Errorf("event definition with empty eventType")
		}
		if _, dup := r.events[e.EventType]; dup {
			return nil, fmt.Errorf("duplicate event definition %q", e.EventType)
		}
		if e.SchemaVersion < 0 {
			return nil, fmt.Errorf("event %q: schemaVersion must be >= 0, got %d", e.EventType, e.SchemaVersion)
		}
		if e.Category == "" {
			e.Category = eventstore.CategoryDomain
		}
		if !eventCategories[e.Category] {
			return nil, fmt.Errorf("event %q: unknown category %q", e.EventType, e.Category)
		}
		// Noun-past naming is advisory only.
		if !strings.HasSuffix(e.EventType, "ed") {
			slog.Warn("Event type does not follow noun-past naming convention",
				"event_type", e.EventType)
		}
		r.events[e.EventType] = e
	}

	for _, c := range defs.Commands {
		if c.CommandType == "" {
			return nil, fmt.Errorf("command definition with empty commandType")
		}
		if _, dup := r.commands[c.CommandType]; dup {
			return nil, fmt.Errorf("duplicate command definition %q", c.CommandType)
		}
		for _, et := range c.Emits {
			if _, ok := r.events[et]; !ok {
				return nil, fmt.Errorf("command %q emits unregistered event %q", c.CommandType, et)
			}
		}
		if c.PayloadSchema != nil {
			schema, err := compileSchema(c.CommandType, c.PayloadSchema)
			if err != nil {
				return nil, fmt.Errorf("command %q: %w", c.CommandType, err)
			}
			r.schemas[c.CommandType] = schema
		}
		r.commands[c.CommandType] = c
	}

	for _, p := range defs.Projections {
		if p.ProjectionName == "" {
			return nil, fmt.Errorf("projection definition with empty projectionName")
		}
		if _, dup := r.projections[p.ProjectionName]; dup {
			return nil, fmt.Errorf("duplicate projection definition %q", p.ProjectionName)
		}
		if len(p.EventSubscriptions) == 0 {
			return nil, fmt.Errorf("projection %q has no event subscriptions", p.ProjectionName)
		}
		if !projectionCategories[p.Category] {
			return nil, fmt.Errorf("projection %q: unknown category %q", p.ProjectionName, p.Category)
		}
		r.projections[p.ProjectionName] = p
	}

	for _, pm := range defs.PMs {
		if pm.PMName == "" {
			return nil, fmt.Errorf("process manager definition with empty pmName")
		}
		if _, dup := r.pms[pm.PMName]; dup {
			return nil, fmt.Errorf("duplicate process manager definition %q", pm.PMName)
		}
		if pm.Trigger == "" {
			pm.Trigger = TriggerEvent
		}
		switch pm.Trigger {
		case TriggerEvent:
			if len(pm.EventSubscriptions) == 0 {
				return nil, fmt.Errorf("process manager %q is event-triggered but has no subscriptions", pm.PMName)
			}
		case TriggerTime, TriggerHybrid:
			if pm.CronConfig == "" {
				return nil, fmt.Errorf("process manager %q is %s-triggered but has no cronConfig", pm.PMName, pm.Trigger)
			}
		default:
			return nil, fmt.Errorf("process manager %q: unknown trigger %q", pm.PMName, pm.Trigger)
		}
		for _, ct := range pm.EmitsCommands {
			if _, ok := r.commands[ct]; !ok {
				return nil, fmt.Errorf("process manager %q emits unregistered command %q", pm.PMName, ct)
			}
		}
		r.pms[pm.PMName] = pm
	}

	for _, q := range defs.Queries {
		if q.QueryName == "" {
			return nil, fmt.Errorf("query definition with empty queryName")
		}
		if _, dup := r.queries[q.QueryName]; dup {
			return nil, fmt.Errorf("duplicate query definition %q", q.QueryName)
		}
		if q.Projection != "" {
			p, ok := r.projections[q.Projection]
			if !ok {
				return nil, fmt.Errorf("query %q reads unregistered projection %q", q.QueryName, q.Projection)
			}
			if !p.ClientExposed() {
				return nil, fmt.Errorf("query %q reads projection %q which is not client-exposed (category %s)",
					q.QueryName, q.Projection, p.Category)
			}
		}
		r.queries[q.QueryName] = q
	}

	return r, nil
}

func compileSchema(commandType string, doc map[string]any) (*jsonschema.Schema, error) {
	url := fmt.Sprintf("commands/%s.schema.json", commandType)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add payload schema: %w", err)
	}
	schema, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile payload schema: %w", err)
	}
	return schema, nil
}

// Event returns the definition for an event type.
func (r *Registry) Event(eventType string) (EventDef, bool) {
	d, ok := r.events[eventType]
	return d, ok
}

// Command returns the definition for a command type.
func (r *Registry) Command(commandType string) (CommandDef, bool) {
	d, ok := r.commands[commandType]
	return d, ok
}

// Projection returns the definition for a projection.
func (r *Registry) Projection(name string) (ProjectionDef, bool) {
	d, ok := r.projections[name]
	return d, ok
}

// PM returns the definition for a process manager.
func (r *Registry) PM(name string) (PMDef, bool) {
	d, ok := r.pms[name]
	return d, ok
}

// Query returns the definition for a query.
func (r *Registry) Query(name string) (QueryDef, bool) {
	d, ok := r.queries[name]
	return d, ok
}

// ValidatePayload checks a command payload against the command's compiled
// schema. Commands without a schema accept any payload.
func (r *Registry) ValidatePayload(commandType string, payload map[string]any) error {
	schema, ok := r.schemas[commandType]
	if !ok {
		return nil
	}
	// jsonschema validates plain decoded JSON values.
	if err := schema.Validate(normalize(payload)); err != nil {
		return fmt.Errorf("payload for %s: %w", commandType, err)
	}
	return nil
}

// normalize converts Go-typed values into the shapes the schema validator
// expects (json.Unmarshal equivalents).
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
