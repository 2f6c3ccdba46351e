// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/deadletter"
)

// DeadLetter is the model entity for the DeadLetter schema.
type DeadLetter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subscription holds the value of the "subscription" field.
	Subscription string `json:"subscription,omitempty"`
	// The failing event as delivered
	Event map[string]interface{} `json:"event,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Command payload that failed to emit, when applicable
	FailedCommand map[string]interface{} `json:"failed_command,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeadLetter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deadletter.FieldEvent, deadletter.FieldFailedCommand:
			values[i] = new([]byte)
		case deadletter.FieldID, deadletter.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case deadletter.FieldSubscription, deadletter.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case deadletter.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeadLetter fields.
func (_m *DeadLetter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deadletter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case deadletter.FieldSubscription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscription", values[i])
			} else if value.Valid {
				_m.Subscription = value.String
			}
		case deadletter.FieldEvent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Event); err != nil {
					return fmt.Errorf("unmarshal field event: %w", err)
				}
			}
		case deadletter.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case deadletter.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case deadletter.FieldFailedCommand:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failed_command", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailedCommand); err != nil {
					return fmt.Errorf("unmarshal field failed_command: %w", err)
				}
			}
		case deadletter.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeadLetter.
// This includes values selected through modifiers, order, etc.
func (_m *DeadLetter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeadLetter.
// Note that you need to call DeadLetter.Unwrap() before calling this method if this DeadLetter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeadLetter) Update() *DeadLetterUpdateOne {
	return NewDeadLetterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeadLetter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeadLetter) Unwrap() *DeadLetter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeadLetter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeadLetter) String() string {
	var builder strings.Builder
	builder.WriteString("DeadLetter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subscription=")
	builder.WriteString(_m.Subscription)
	builder.WriteString(", ")
	builder.WriteString("event=")
	builder.WriteString(fmt.Sprintf("%v", _m.Event))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("failed_command=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCommand))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeadLetters is a parsable slice of DeadLetter.
type DeadLetters []*DeadLetter
