// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPromptID holds the string denoting the prompt_id field in the database.
	FieldPromptID = "prompt_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldObjectiveID holds the string denoting the objective_id field in the database.
	FieldObjectiveID = "objective_id"
	// FieldPreConfidence holds the string denoting the pre_confidence field in the database.
	FieldPreConfidence = "pre_confidence"
	// FieldPostConfidence holds the string denoting the post_confidence field in the database.
	FieldPostConfidence = "post_confidence"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldReflectionNotes holds the string denoting the reflection_notes field in the database.
	FieldReflectionNotes = "reflection_notes"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPromptID,
	FieldUserID,
	FieldObjectiveID,
	FieldPreConfidence,
	FieldPostConfidence,
	FieldScore,
	FieldRationale,
	FieldReflectionNotes,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// PromptIDValidator is a validator for the "prompt_id" field. It is called by the builders before save.
	PromptIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultObjectiveID holds the default value on creation for the "objective_id" field.
	DefaultObjectiveID string
	// PreConfidenceValidator is a validator for the "pre_confidence" field. It is called by the builders before save.
	PreConfidenceValidator func(int) error
	// PostConfidenceValidator is a validator for the "post_confidence" field. It is called by the builders before save.
	PostConfidenceValidator func(int) error
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(float64) error
	// DefaultRationale holds the default value on creation for the "rationale" field.
	DefaultRationale string
	// DefaultReflectionNotes holds the default value on creation for the "reflection_notes" field.
	DefaultReflectionNotes string
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPromptID orders the results by the prompt_id field.
func ByPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByObjectiveID orders the results by the objective_id field.
func ByObjectiveID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveID, opts...).ToFunc()
}

// ByPreConfidence orders the results by the pre_confidence field.
func ByPreConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreConfidence, opts...).ToFunc()
}

// ByPostConfidence orders the results by the post_confidence field.
func ByPostConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostConfidence, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByReflectionNotes orders the results by the reflection_notes field.
func ByReflectionNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReflectionNotes, opts...).ToFunc()
}
