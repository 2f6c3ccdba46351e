// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/intent"
)

// Intent is the model entity for the Intent schema.
type Intent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// IntentKey holds the value of the "intent_key" field.
	IntentKey string `json:"intent_key,omitempty"`
	// OperationType holds the value of the "operation_type" field.
	OperationType string `json:"operation_type,omitempty"`
	// StreamType holds the value of the "stream_type" field.
	StreamType string `json:"stream_type,omitempty"`
	// StreamID holds the value of the "stream_id" field.
	StreamID string `json:"stream_id,omitempty"`
	// Status holds the value of the "status" field.
	Status intent.Status `json:"status,omitempty"`
	// TimeoutMs holds the value of the "timeout_ms" field.
	TimeoutMs int `json:"timeout_ms,omitempty"`
	// Deadline after which a still-pending intent is abandoned
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CompletionEventID holds the value of the "completion_event_id" field.
	CompletionEventID *string `json:"completion_event_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Intent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intent.FieldID, intent.FieldTimeoutMs:
			values[i] = new(sql.NullInt64)
		case intent.FieldIntentKey, intent.FieldOperationType, intent.FieldStreamType, intent.FieldStreamID, intent.FieldStatus, intent.FieldCompletionEventID, intent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case intent.FieldExpiresAt, intent.FieldCreatedAt, intent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Intent fields.
func (_m *Intent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case intent.FieldIntentKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_key", values[i])
			} else if value.Valid {
				_m.IntentKey = value.String
			}
		case intent.FieldOperationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_type", values[i])
			} else if value.Valid {
				_m.OperationType = value.String
			}
		case intent.FieldStreamType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_type", values[i])
			} else if value.Valid {
				_m.StreamType = value.String
			}
		case intent.FieldStreamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_id", values[i])
			} else if value.Valid {
				_m.StreamID = value.String
			}
		case intent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = intent.Status(value.String)
			}
		case intent.FieldTimeoutMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_ms", values[i])
			} else if value.Valid {
				_m.TimeoutMs = int(value.Int64)
			}
		case intent.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case intent.FieldCompletionEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_event_id", values[i])
			} else if value.Valid {
				_m.CompletionEventID = new(string)
				*_m.CompletionEventID = value.String
			}
		case intent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case intent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case intent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Intent.
// This includes values selected through modifiers, order, etc.
func (_m *Intent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Intent.
// Note that you need to call Intent.Unwrap() before calling this method if this Intent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Intent) Update() *IntentUpdateOne {
	return NewIntentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Intent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Intent) Unwrap() *Intent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Intent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Intent) String() string {
	var builder strings.Builder
	builder.WriteString("Intent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("intent_key=")
	builder.WriteString(_m.IntentKey)
	builder.WriteString(", ")
	builder.WriteString("operation_type=")
	builder.WriteString(_m.OperationType)
	builder.WriteString(", ")
	builder.WriteString("stream_type=")
	builder.WriteString(_m.StreamType)
	builder.WriteString(", ")
	builder.WriteString("stream_id=")
	builder.WriteString(_m.StreamID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("timeout_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutMs))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletionEventID; v != nil {
		builder.WriteString("completion_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
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

// Intents is a parsable slice of Intent.
type Intents []*Intent
