// Code generated by ent, DO NOT EDIT.

package pmstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pmstate type in the database.
	Label = "pm_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPmName holds the string denoting the pm_name field in the database.
	FieldPmName = "pm_name"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastGlobalPosition holds the string denoting the last_global_position field in the database.
	FieldLastGlobalPosition = "last_global_position"
	// FieldCommandsEmitted holds the string denoting the commands_emitted field in the database.
	FieldCommandsEmitted = "commands_emitted"
	// FieldCommandsFailed holds the string denoting the commands_failed field in the database.
	FieldCommandsFailed = "commands_failed"
	// FieldStateVersion holds the string denoting the state_version field in the database.
	FieldStateVersion = "state_version"
	// FieldCustomState holds the string denoting the custom_state field in the database.
	FieldCustomState = "custom_state"
	// FieldTriggerEventID holds the string denoting the trigger_event_id field in the database.
	FieldTriggerEventID = "trigger_event_id"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the pmstate in the database.
	Table = "pm_states"
)

// Columns holds all SQL columns for pmstate fields.
var Columns = []string{
	FieldID,
	FieldPmName,
	FieldInstanceID,
	FieldStatus,
	FieldLastGlobalPosition,
	FieldCommandsEmitted,
	FieldCommandsFailed,
	FieldStateVersion,
	FieldCustomState,
	FieldTriggerEventID,
	FieldCorrelationID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLastGlobalPosition holds the default value on creation for the "last_global_position" field.
	DefaultLastGlobalPosition int
	// DefaultCommandsEmitted holds the default value on creation for the "commands_emitted" field.
	DefaultCommandsEmitted int
	// DefaultCommandsFailed holds the default value on creation for the "commands_failed" field.
	DefaultCommandsFailed int
	// DefaultStateVersion holds the default value on creation for the "state_version" field.
	DefaultStateVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("pmstate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PMState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPmName orders the results by the pm_name field.
func ByPmName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPmName, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastGlobalPosition orders the results by the last_global_position field.
func ByLastGlobalPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastGlobalPosition, opts...).ToFunc()
}

// ByCommandsEmitted orders the results by the commands_emitted field.
func ByCommandsEmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandsEmitted, opts...).ToFunc()
}

// ByCommandsFailed orders the results by the commands_failed field.
func ByCommandsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandsFailed, opts...).ToFunc()
}

// ByStateVersion orders the results by the state_version field.
func ByStateVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateVersion, opts...).ToFunc()
}

// ByTriggerEventID orders the results by the trigger_event_id field.
func ByTriggerEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerEventID, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
