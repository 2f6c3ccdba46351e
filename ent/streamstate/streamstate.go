// Code generated by ent, DO NOT EDIT.

package streamstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the streamstate type in the database.
	Label = "stream_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStreamType holds the string denoting the stream_type field in the database.
	FieldStreamType = "stream_type"
	// FieldStreamID holds the string denoting the stream_id field in the database.
	FieldStreamID = "stream_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStateVersion holds the string denoting the state_version field in the database.
	FieldStateVersion = "state_version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the streamstate in the database.
	Table = "stream_states"
)

// Columns holds all SQL columns for streamstate fields.
var Columns = []string{
	FieldID,
	FieldStreamType,
	FieldStreamID,
	FieldVersion,
	FieldState,
	FieldStateVersion,
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
	// DefaultStateVersion holds the default value on creation for the "state_version" field.
	DefaultStateVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StreamState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStreamType orders the results by the stream_type field.
func ByStreamType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamType, opts...).ToFunc()
}

// ByStreamID orders the results by the stream_id field.
func ByStreamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByStateVersion orders the results by the state_version field.
func ByStateVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
