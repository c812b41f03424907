// Code generated by ent, DO NOT EDIT.

package challengeattemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the challengeattemptevent type in the database.
	Label = "challenge_attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldObjectiveID holds the string denoting the objective_id field in the database.
	FieldObjectiveID = "objective_id"
	// FieldUserAnswer holds the string denoting the user_answer field in the database.
	FieldUserAnswer = "user_answer"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEmotionTag holds the string denoting the emotion_tag field in the database.
	FieldEmotionTag = "emotion_tag"
	// FieldPersonalNotes holds the string denoting the personal_notes field in the database.
	FieldPersonalNotes = "personal_notes"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldPreviousScore holds the string denoting the previous_score field in the database.
	FieldPreviousScore = "previous_score"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldRetrySchedule holds the string denoting the retry_schedule field in the database.
	FieldRetrySchedule = "retry_schedule"
	// FieldCelebrationMessage holds the string denoting the celebration_message field in the database.
	FieldCelebrationMessage = "celebration_message"
	// Table holds the table name of the challengeattemptevent in the database.
	Table = "challenge_attempt_events"
)

// Columns holds all SQL columns for challengeattemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldChallengeID,
	FieldUserID,
	FieldObjectiveID,
	FieldUserAnswer,
	FieldConfidence,
	FieldEmotionTag,
	FieldPersonalNotes,
	FieldIsCorrect,
	FieldAttemptNumber,
	FieldPreviousScore,
	FieldScore,
	FieldFeedback,
	FieldRetrySchedule,
	FieldCelebrationMessage,
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
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	ChallengeIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	ObjectiveIDValidator func(string) error
	// UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	UserAnswerValidator func(string) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(int) error
	// DefaultEmotionTag holds the default value on creation for the "emotion_tag" field.
	DefaultEmotionTag string
	// DefaultPersonalNotes holds the default value on creation for the "personal_notes" field.
	DefaultPersonalNotes string
	// AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	AttemptNumberValidator func(int) error
	// DefaultCelebrationMessage holds the default value on creation for the "celebration_message" field.
	DefaultCelebrationMessage string
)

// OrderOption defines the ordering options for the ChallengeAttemptEvent queries.
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

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByObjectiveID orders the results by the objective_id field.
func ByObjectiveID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveID, opts...).ToFunc()
}

// ByUserAnswer orders the results by the user_answer field.
func ByUserAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAnswer, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByEmotionTag orders the results by the emotion_tag field.
func ByEmotionTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmotionTag, opts...).ToFunc()
}

// ByPersonalNotes orders the results by the personal_notes field.
func ByPersonalNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonalNotes, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByPreviousScore orders the results by the previous_score field.
func ByPreviousScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousScore, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCelebrationMessage orders the results by the celebration_message field.
func ByCelebrationMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCelebrationMessage, opts...).ToFunc()
}
