// Code generated by ent, DO NOT EDIT.

package poolsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the poolsnapshot type in the database.
	Label = "pool_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// FieldFormatVersion holds the string denoting the format_version field in the database.
	FieldFormatVersion = "format_version"
	// FieldMembers holds the string denoting the members field in the database.
	FieldMembers = "members"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// Table holds the table name of the poolsnapshot in the database.
	Table = "pool_snapshots"
)

// Columns holds all SQL columns for poolsnapshot fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTakenAt,
	FieldFormatVersion,
	FieldMembers,
	FieldPayload,
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
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
	// FormatVersionValidator is a validator for the "format_version" field. It is called by the builders before save.
	FormatVersionValidator func(string) error
	// MembersValidator is a validator for the "members" field. It is called by the builders before save.
	MembersValidator func(int) error
)

// OrderOption defines the ordering options for the PoolSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}

// ByFormatVersion orders the results by the format_version field.
func ByFormatVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormatVersion, opts...).ToFunc()
}

// ByMembers orders the results by the members field.
func ByMembers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMembers, opts...).ToFunc()
}
