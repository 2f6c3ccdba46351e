// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/scope"
)

// Scope is the model entity for the Scope schema.
type Scope struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// tenant:{tenantId}:{scopeType}:{scopeId}
	ScopeKey string `json:"scope_key,omitempty"`
	// CurrentVersion holds the value of the "current_version" field.
	CurrentVersion int `json:"current_version,omitempty"`
	// Stream ids participating in the boundary
	Streams []string `json:"streams,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Scope) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scope.FieldStreams:
			values[i] = new([]byte)
		case scope.FieldID, scope.FieldCurrentVersion:
			values[i] = new(sql.NullInt64)
		case scope.FieldScopeKey:
			values[i] = new(sql.NullString)
		case scope.FieldCreatedAt, scope.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Scope fields.
func (_m *Scope) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scope.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scope.FieldScopeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_key", values[i])
			} else if value.Valid {
				_m.ScopeKey = value.String
			}
		case scope.FieldCurrentVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_version", values[i])
			} else if value.Valid {
				_m.CurrentVersion = int(value.Int64)
			}
		case scope.FieldStreams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field streams", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Streams); err != nil {
					return fmt.Errorf("unmarshal field streams: %w", err)
				}
			}
		case scope.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scope.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Scope.
// This includes values selected through modifiers, order, etc.
func (_m *Scope) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Scope.
// Note that you need to call Scope.Unwrap() before calling this method if this Scope
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Scope) Update() *ScopeUpdateOne {
	return NewScopeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Scope entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Scope) Unwrap() *Scope {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Scope is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Scope) String() string {
	var builder strings.Builder
	builder.WriteString("Scope(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scope_key=")
	builder.WriteString(_m.ScopeKey)
	builder.WriteString(", ")
	builder.WriteString("current_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentVersion))
	builder.WriteString(", ")
	builder.WriteString("streams=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streams))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Scopes is a parsable slice of Scope.
type Scopes []*Scope
