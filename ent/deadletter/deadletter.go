// Code generated by ent, DO NOT EDIT.

package deadletter

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the deadletter type in the database.
	Label = "dead_letter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubscription holds the string denoting the subscription field in the database.
	FieldSubscription = "subscription"
	// FieldEvent holds the string denoting the event field in the database.
	FieldEvent = "event"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldFailedCommand holds the string denoting the failed_command field in the database.
	FieldFailedCommand = "failed_command"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the deadletter in the database.
	Table = "dead_letters"
)

// Columns holds all SQL columns for deadletter fields.
var Columns = []string{
	FieldID,
	FieldSubscription,
	FieldEvent,
	FieldErrorMessage,
	FieldAttempts,
	FieldFailedCommand,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DeadLetter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubscription orders the results by the subscription field.
func BySubscription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscription, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
