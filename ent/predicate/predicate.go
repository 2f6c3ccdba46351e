// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeadLetter is the predicate function for deadletter builders.
type DeadLetter func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Intent is the predicate function for intent builders.
type Intent func(*sql.Selector)

// PMState is the predicate function for pmstate builders.
type PMState func(*sql.Selector)

// Scope is the predicate function for scope builders.
type Scope func(*sql.Selector)

// StreamState is the predicate function for streamstate builders.
type StreamState func(*sql.Selector)

// WorkItem is the predicate function for workitem builders.
type WorkItem func(*sql.Selector)
