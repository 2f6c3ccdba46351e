// Package bus is the in-process event bus. Subscriptions are matched in
// memory at publish time; delivery itself is durable — every matched
// subscription becomes a work item on the pool, enqueued in the publisher's
// transaction so a rolled-back command never triggers a handler.
package bus

import (
	"context"
	"fmt"
	"sort"

	"github.com/strandkit/strand/pkg/eventstore"
)

// Kind distinguishes what a subscription's handler is allowed to do.
// Mutations run inside a store transaction and may persist state; actions
// perform external side effects and must hand their outcome to an onComplete
// mutation.
type Kind string

// Subscription kinds.
const (
	KindMutation Kind = "mutation"
	KindAction   Kind = "action"
)

// Filter narrows which events a subscription receives. Dimensions are ANDed;
// values within a dimension are ORed. An empty filter matches everything.
type Filter struct {
	EventTypes      []string
	Categories      []eventstore.Category
	BoundedContexts []string
	StreamTypes     []string
}

func (f Filter) isEmpty() bool {
	return len(f.EventTypes) == 0 && len(f.Categories) == 0 &&
		len(f.BoundedContexts) == 0 && len(f.StreamTypes) == 0
}

func (f Filter) matches(e *eventstore.Event) bool {
	if len(f.EventTypes) > 0 && !containsString(f.EventTypes, e.EventType) {
		return false
	}
	if len(f.Categories) > 0 && !containsCategory(f.Categories, e.Category) {
		return false
	}
	if len(f.BoundedContexts) > 0 && !containsString(f.BoundedContexts, e.BoundedContext) {
		return false
	}
	if len(f.StreamTypes) > 0 && !containsString(f.StreamTypes, e.StreamType) {
		return false
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsCategory(values []eventstore.Category, v eventstore.Category) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// Subscription routes matching events to a registered pool handler.
// Priority orders scheduling, lower first; the convention is projections
// around 100, process managers around 200, agents around 250, sagas around
// 300.
type Subscription struct {
	Name         string
	Filter       Filter
	Kind         Kind
	Handler      string // registered handler ref on the pool
	OnComplete   string // registered mutation ref, mandatory for actions
	Priority     int    // 0 means the default (100)
	MaxAttempts  int    // 0 means the pool default
	ToArgs       func(e *eventstore.Event) map[string]any
	PartitionKey func(e *eventstore.Event) string
}

// Bus is the built subscription index. Immutable after New.
type Bus struct {
	byEventType map[string][]*Subscription
	byCategory  map[eventstore.Category][]*Subscription
	wildcards   []*Subscription
}

// New validates the subscriptions and builds the index.
func New(subs ...Subscription) (*Bus, error) {
	b := &Bus{
		byEventType: make(map[string][]*Subscription),
		byCategory:  make(map[eventstore.Category][]*Subscription),
	}
	names := make(map[string]bool, len(subs))

	for i := range subs {
		s := subs[i]
		if s.Name == "" {
			return nil, fmt.Errorf("subscription with empty name")
		}
		if names[s.Name] {
			return nil, fmt.Errorf("duplicate subscription %q", s.Name)
		}
		names[s.Name] = true
		if s.Handler == "" {
			return nil, fmt.Errorf("subscription %q has no handler ref", s.Name)
		}
		if s.Kind == "" {
			s.Kind = KindMutation
		}
		if s.Kind != KindMutation && s.Kind != KindAction {
			return nil, fmt.Errorf("subscription %q: unknown kind %q", s.Name, s.Kind)
		}
		// Actions cannot persist state themselves; the onComplete mutation
		// owns the resulting state transition.
		if s.Kind == KindAction && s.OnComplete == "" {
			return nil, fmt.Errorf("action subscription %q must declare onComplete", s.Name)
		}
		if s.Priority == 0 {
			s.Priority = 100
		}
		if s.ToArgs == nil {
			s.ToArgs = func(e *eventstore.Event) map[string]any { return e.AsMap() }
		}
		if s.PartitionKey == nil {
			s.PartitionKey = func(e *eventstore.Event) string { return e.StreamID }
		}

		sub := &s
		switch {
		case len(s.Filter.EventTypes) > 0:
			for _, et := range s.Filter.EventTypes {
				b.byEventType[et] = append(b.byEventType[et], sub)
			}
		case len(s.Filter.Categories) > 0:
			for _, c := range s.Filter.Categories {
				b.byCategory[c] = append(b.byCategory[c], sub)
			}
		default:
			b.wildcards = append(b.wildcards, sub)
		}
	}

	return b, nil
}

// PublishResult reports what a publish matched and enqueued.
type PublishResult struct {
	Matched   int
	Triggered []string
	Success   bool
}

// Publish matches the event against the index and enqueues one work item per
// matching subscription, in ascending priority order, on the given store. An
// enqueue error is fatal: the caller's transaction must roll back, because a
// partially delivered event cannot be re-published.
func (b *Bus) Publish(ctx context.Context, store eventstore.Store, e *eventstore.Event) (*PublishResult, error) {
	seen := make(map[*Subscription]bool)
	var candidates []*Subscription
	add := func(subs []*Subscription) {
		for _, s := range subs {
			if !seen[s] {
				seen[s] = true
				candidates = append(candidates, s)
			}
		}
	}
	add(b.byEventType[e.EventType])
	add(b.byCategory[e.Category])
	add(b.wildcards)

	var matched []*Subscription
	for _, s := range candidates {
		if s.Filter.matches(e) {
			matched = append(matched, s)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Priority != matched[j].Priority {
			return matched[i].Priority < matched[j].Priority
		}
		return matched[i].Name < matched[j].Name
	})

	result := &PublishResult{Matched: len(matched)}
	for _, s := range matched {
		partitionKey := s.PartitionKey(e)
		_, err := store.EnqueueWork(ctx, eventstore.WorkInput{
			Ref:  s.Handler,
			Args: s.ToArgs(e),
			Delivery: map[string]any{
				"subscription":   s.Name,
				"kind":           string(s.Kind),
				"eventId":        e.EventID,
				"globalPosition": e.GlobalPosition,
				"partitionKey":   partitionKey,
				"correlationId":  e.Metadata.CorrelationID,
				"causationId":    e.Metadata.CausationID,
			},
			PartitionKey: partitionKey,
			Priority:     s.Priority,
			MaxAttempts:  s.MaxAttempts,
			OnComplete:   s.OnComplete,
		})
		if err != nil {
			return nil, fmt.Errorf("enqueue delivery for subscription %s: %w", s.Name, err)
		}
		result.Triggered = append(result.Triggered, s.Name)
	}

	result.Success = true
	return result, nil
}
