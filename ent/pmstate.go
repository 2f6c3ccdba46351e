// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/pmstate"
)

// PMState is the model entity for the PMState schema.
type PMState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PmName holds the value of the "pm_name" field.
	PmName string `json:"pm_name,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// Status holds the value of the "status" field.
	Status pmstate.Status `json:"status,omitempty"`
	// Delivery watermark — never decreases
	LastGlobalPosition int `json:"last_global_position,omitempty"`
	// CommandsEmitted holds the value of the "commands_emitted" field.
	CommandsEmitted int `json:"commands_emitted,omitempty"`
	// CommandsFailed holds the value of the "commands_failed" field.
	CommandsFailed int `json:"commands_failed,omitempty"`
	// StateVersion holds the value of the "state_version" field.
	StateVersion int `json:"state_version,omitempty"`
	// CustomState holds the value of the "custom_state" field.
	CustomState map[string]interface{} `json:"custom_state,omitempty"`
	// Event that created this instance
	TriggerEventID *string `json:"trigger_event_id,omitempty"`
	// CorrelationID holds the value of the "correlation_id" field.
	CorrelationID *string `json:"correlation_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PMState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pmstate.FieldCustomState:
			values[i] = new([]byte)
		case pmstate.FieldID, pmstate.FieldLastGlobalPosition, pmstate.FieldCommandsEmitted, pmstate.FieldCommandsFailed, pmstate.FieldStateVersion:
			values[i] = new(sql.NullInt64)
		case pmstate.FieldPmName, pmstate.FieldInstanceID, pmstate.FieldStatus, pmstate.FieldTriggerEventID, pmstate.FieldCorrelationID:
			values[i] = new(sql.NullString)
		case pmstate.FieldCreatedAt, pmstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PMState fields.
func (_m *PMState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pmstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pmstate.FieldPmName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pm_name", values[i])
			} else if value.Valid {
				_m.PmName = value.String
			}
		case pmstate.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case pmstate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pmstate.Status(value.String)
			}
		case pmstate.FieldLastGlobalPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_global_position", values[i])
			} else if value.Valid {
				_m.LastGlobalPosition = int(value.Int64)
			}
		case pmstate.FieldCommandsEmitted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commands_emitted", values[i])
			} else if value.Valid {
				_m.CommandsEmitted = int(value.Int64)
			}
		case pmstate.FieldCommandsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commands_failed", values[i])
			} else if value.Valid {
				_m.CommandsFailed = int(value.Int64)
			}
		case pmstate.FieldStateVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field state_version", values[i])
			} else if value.Valid {
				_m.StateVersion = int(value.Int64)
			}
		case pmstate.FieldCustomState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field custom_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CustomState); err != nil {
					return fmt.Errorf("unmarshal field custom_state: %w", err)
				}
			}
		case pmstate.FieldTriggerEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_event_id", values[i])
			} else if value.Valid {
				_m.TriggerEventID = new(string)
				*_m.TriggerEventID = value.String
			}
		case pmstate.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = new(string)
				*_m.CorrelationID = value.String
			}
		case pmstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pmstate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PMState.
// This includes values selected through modifiers, order, etc.
func (_m *PMState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PMState.
// Note that you need to call PMState.Unwrap() before calling this method if this PMState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PMState) Update() *PMStateUpdateOne {
	return NewPMStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PMState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PMState) Unwrap() *PMState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PMState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PMState) String() string {
	var builder strings.Builder
	builder.WriteString("PMState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pm_name=")
	builder.WriteString(_m.PmName)
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("last_global_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastGlobalPosition))
	builder.WriteString(", ")
	builder.WriteString("commands_emitted=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommandsEmitted))
	builder.WriteString(", ")
	builder.WriteString("commands_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommandsFailed))
	builder.WriteString(", ")
	builder.WriteString("state_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateVersion))
	builder.WriteString(", ")
	builder.WriteString("custom_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomState))
	builder.WriteString(", ")
	if v := _m.TriggerEventID; v != nil {
		builder.WriteString("trigger_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CorrelationID; v != nil {
		builder.WriteString("correlation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PMStates is a parsable slice of PMState.
type PMStates []*PMState
