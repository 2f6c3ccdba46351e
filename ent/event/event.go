// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldStreamType holds the string denoting the stream_type field in the database.
	FieldStreamType = "stream_type"
	// FieldStreamID holds the string denoting the stream_id field in the database.
	FieldStreamID = "stream_id"
	// FieldStreamVersion holds the string denoting the stream_version field in the database.
	FieldStreamVersion = "stream_version"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldCausationID holds the string denoting the causation_id field in the database.
	FieldCausationID = "causation_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldBoundedContext holds the string denoting the bounded_context field in the database.
	FieldBoundedContext = "bounded_context"
	// Table holds the table name of the event in the database.
	Table = "events"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldEventType,
	FieldStreamType,
	FieldStreamID,
	FieldStreamVersion,
	FieldOccurredAt,
	FieldCategory,
	FieldSchemaVersion,
	FieldPayload,
	FieldCorrelationID,
	FieldCausationID,
	FieldUserID,
	FieldOutcome,
	FieldBoundedContext,
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
	// DefaultOccurredAt holds the default value on creation for the "occurred_at" field.
	DefaultOccurredAt func() time.Time
	// DefaultSchemaVersion holds the default value on creation for the "schema_version" field.
	DefaultSchemaVersion int
)

// Category defines the type for the "category" enum field.
type Category string

// CategoryDomain is the default value of the Category enum.
const DefaultCategory = CategoryDomain

// Category values.
const (
	CategoryDomain      Category = "domain"
	CategoryIntegration Category = "integration"
	CategoryTrigger     Category = "trigger"
	CategoryFat         Category = "fat"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryDomain, CategoryIntegration, CategoryTrigger, CategoryFat:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for category field: %q", c)
	}
}

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// OutcomeSuccess is the default value of the Outcome enum.
const DefaultOutcome = OutcomeSuccess

// Outcome values.
const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomeSuccess, OutcomeFailed:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByStreamType orders the results by the stream_type field.
func ByStreamType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamType, opts...).ToFunc()
}

// ByStreamID orders the results by the stream_id field.
func ByStreamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamID, opts...).ToFunc()
}

// ByStreamVersion orders the results by the stream_version field.
func ByStreamVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamVersion, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByCausationID orders the results by the causation_id field.
func ByCausationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCausationID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByBoundedContext orders the results by the bounded_context field.
func ByBoundedContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoundedContext, opts...).ToFunc()
}
