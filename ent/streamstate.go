// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/streamstate"
)

// StreamState is the model entity for the StreamState schema.
type StreamState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StreamType holds the value of the "stream_type" field.
	StreamType string `json:"stream_type,omitempty"`
	// StreamID holds the value of the "stream_id" field.
	StreamID string `json:"stream_id,omitempty"`
	// Matches the latest applied event's stream_version
	Version int `json:"version,omitempty"`
	// Reduced projection consumed by the decider
	State map[string]interface{} `json:"state,omitempty"`
	// CMS schema version
	StateVersion int `json:"state_version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StreamState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case streamstate.FieldState:
			values[i] = new([]byte)
		case streamstate.FieldID, streamstate.FieldVersion, streamstate.FieldStateVersion:
			values[i] = new(sql.NullInt64)
		case streamstate.FieldStreamType, streamstate.FieldStreamID:
			values[i] = new(sql.NullString)
		case streamstate.FieldCreatedAt, streamstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StreamState fields.
func (_m *StreamState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case streamstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case streamstate.FieldStreamType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_type", values[i])
			} else if value.Valid {
				_m.StreamType = value.String
			}
		case streamstate.FieldStreamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_id", values[i])
			} else if value.Valid {
				_m.StreamID = value.String
			}
		case streamstate.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case streamstate.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case streamstate.FieldStateVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field state_version", values[i])
			} else if value.Valid {
				_m.StateVersion = int(value.Int64)
			}
		case streamstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case streamstate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StreamState.
// This includes values selected through modifiers, order, etc.
func (_m *StreamState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StreamState.
// Note that you need to call StreamState.Unwrap() before calling this method if this StreamState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StreamState) Update() *StreamStateUpdateOne {
	return NewStreamStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StreamState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StreamState) Unwrap() *StreamState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StreamState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StreamState) String() string {
	var builder strings.Builder
	builder.WriteString("StreamState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stream_type=")
	builder.WriteString(_m.StreamType)
	builder.WriteString(", ")
	builder.WriteString("stream_id=")
	builder.WriteString(_m.StreamID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("state_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateVersion))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StreamStates is a parsable slice of StreamState.
type StreamStates []*StreamState
