// Code generated by ent, DO NOT EDIT.

package challengeattemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/calibra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldAttemptID, v))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldChallengeID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldUserID, v))
}

// ObjectiveID applies equality check predicate on the "objective_id" field. It's identical to ObjectiveIDEQ.
func ObjectiveID(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldObjectiveID, v))
}

// UserAnswer applies equality check predicate on the "user_answer" field. It's identical to UserAnswerEQ.
func UserAnswer(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldUserAnswer, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldConfidence, v))
}

// EmotionTag applies equality check predicate on the "emotion_tag" field. It's identical to EmotionTagEQ.
func EmotionTag(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldEmotionTag, v))
}

// PersonalNotes applies equality check predicate on the "personal_notes" field. It's identical to PersonalNotesEQ.
func PersonalNotes(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldPersonalNotes, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldIsCorrect, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldAttemptNumber, v))
}

// PreviousScore applies equality check predicate on the "previous_score" field. It's identical to PreviousScoreEQ.
func PreviousScore(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldPreviousScore, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldScore, v))
}

// CelebrationMessage applies equality check predicate on the "celebration_message" field. It's identical to CelebrationMessageEQ.
func CelebrationMessage(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldCelebrationMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContainsFold(FieldChallengeID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ObjectiveIDEQ applies the EQ predicate on the "objective_id" field.
func ObjectiveIDEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldObjectiveID, v))
}

// ObjectiveIDNEQ applies the NEQ predicate on the "objective_id" field.
func ObjectiveIDNEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldObjectiveID, v))
}

// ObjectiveIDIn applies the In predicate on the "objective_id" field.
func ObjectiveIDIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldObjectiveID, vs...))
}

// ObjectiveIDNotIn applies the NotIn predicate on the "objective_id" field.
func ObjectiveIDNotIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldObjectiveID, vs...))
}

// ObjectiveIDGT applies the GT predicate on the "objective_id" field.
func ObjectiveIDGT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldObjectiveID, v))
}

// ObjectiveIDGTE applies the GTE predicate on the "objective_id" field.
func ObjectiveIDGTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldObjectiveID, v))
}

// ObjectiveIDLT applies the LT predicate on the "objective_id" field.
func ObjectiveIDLT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldObjectiveID, v))
}

// ObjectiveIDLTE applies the LTE predicate on the "objective_id" field.
func ObjectiveIDLTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldObjectiveID, v))
}

// ObjectiveIDContains applies the Contains predicate on the "objective_id" field.
func ObjectiveIDContains(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContains(FieldObjectiveID, v))
}

// ObjectiveIDHasPrefix applies the HasPrefix predicate on the "objective_id" field.
func ObjectiveIDHasPrefix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasPrefix(FieldObjectiveID, v))
}

// ObjectiveIDHasSuffix applies the HasSuffix predicate on the "objective_id" field.
func ObjectiveIDHasSuffix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasSuffix(FieldObjectiveID, v))
}

// ObjectiveIDEqualFold applies the EqualFold predicate on the "objective_id" field.
func ObjectiveIDEqualFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEqualFold(FieldObjectiveID, v))
}

// ObjectiveIDContainsFold applies the ContainsFold predicate on the "objective_id" field.
func ObjectiveIDContainsFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContainsFold(FieldObjectiveID, v))
}

// UserAnswerEQ applies the EQ predicate on the "user_answer" field.
func UserAnswerEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldUserAnswer, v))
}

// UserAnswerNEQ applies the NEQ predicate on the "user_answer" field.
func UserAnswerNEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldUserAnswer, v))
}

// UserAnswerIn applies the In predicate on the "user_answer" field.
func UserAnswerIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldUserAnswer, vs...))
}

// UserAnswerNotIn applies the NotIn predicate on the "user_answer" field.
func UserAnswerNotIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldUserAnswer, vs...))
}

// UserAnswerGT applies the GT predicate on the "user_answer" field.
func UserAnswerGT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldUserAnswer, v))
}

// UserAnswerGTE applies the GTE predicate on the "user_answer" field.
func UserAnswerGTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldUserAnswer, v))
}

// UserAnswerLT applies the LT predicate on the "user_answer" field.
func UserAnswerLT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldUserAnswer, v))
}

// UserAnswerLTE applies the LTE predicate on the "user_answer" field.
func UserAnswerLTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldUserAnswer, v))
}

// UserAnswerContains applies the Contains predicate on the "user_answer" field.
func UserAnswerContains(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContains(FieldUserAnswer, v))
}

// UserAnswerHasPrefix applies the HasPrefix predicate on the "user_answer" field.
func UserAnswerHasPrefix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasPrefix(FieldUserAnswer, v))
}

// UserAnswerHasSuffix applies the HasSuffix predicate on the "user_answer" field.
func UserAnswerHasSuffix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasSuffix(FieldUserAnswer, v))
}

// UserAnswerEqualFold applies the EqualFold predicate on the "user_answer" field.
func UserAnswerEqualFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEqualFold(FieldUserAnswer, v))
}

// UserAnswerContainsFold applies the ContainsFold predicate on the "user_answer" field.
func UserAnswerContainsFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContainsFold(FieldUserAnswer, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldConfidence, v))
}

// EmotionTagEQ applies the EQ predicate on the "emotion_tag" field.
func EmotionTagEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldEmotionTag, v))
}

// EmotionTagNEQ applies the NEQ predicate on the "emotion_tag" field.
func EmotionTagNEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldEmotionTag, v))
}

// EmotionTagIn applies the In predicate on the "emotion_tag" field.
func EmotionTagIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldEmotionTag, vs...))
}

// EmotionTagNotIn applies the NotIn predicate on the "emotion_tag" field.
func EmotionTagNotIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldEmotionTag, vs...))
}

// EmotionTagGT applies the GT predicate on the "emotion_tag" field.
func EmotionTagGT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldEmotionTag, v))
}

// EmotionTagGTE applies the GTE predicate on the "emotion_tag" field.
func EmotionTagGTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldEmotionTag, v))
}

// EmotionTagLT applies the LT predicate on the "emotion_tag" field.
func EmotionTagLT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldEmotionTag, v))
}

// EmotionTagLTE applies the LTE predicate on the "emotion_tag" field.
func EmotionTagLTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldEmotionTag, v))
}

// EmotionTagContains applies the Contains predicate on the "emotion_tag" field.
func EmotionTagContains(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContains(FieldEmotionTag, v))
}

// EmotionTagHasPrefix applies the HasPrefix predicate on the "emotion_tag" field.
func EmotionTagHasPrefix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasPrefix(FieldEmotionTag, v))
}

// EmotionTagHasSuffix applies the HasSuffix predicate on the "emotion_tag" field.
func EmotionTagHasSuffix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasSuffix(FieldEmotionTag, v))
}

// EmotionTagEqualFold applies the EqualFold predicate on the "emotion_tag" field.
func EmotionTagEqualFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEqualFold(FieldEmotionTag, v))
}

// EmotionTagContainsFold applies the ContainsFold predicate on the "emotion_tag" field.
func EmotionTagContainsFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContainsFold(FieldEmotionTag, v))
}

// PersonalNotesEQ applies the EQ predicate on the "personal_notes" field.
func PersonalNotesEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldPersonalNotes, v))
}

// PersonalNotesNEQ applies the NEQ predicate on the "personal_notes" field.
func PersonalNotesNEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldPersonalNotes, v))
}

// PersonalNotesIn applies the In predicate on the "personal_notes" field.
func PersonalNotesIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldPersonalNotes, vs...))
}

// PersonalNotesNotIn applies the NotIn predicate on the "personal_notes" field.
func PersonalNotesNotIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldPersonalNotes, vs...))
}

// PersonalNotesGT applies the GT predicate on the "personal_notes" field.
func PersonalNotesGT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldPersonalNotes, v))
}

// PersonalNotesGTE applies the GTE predicate on the "personal_notes" field.
func PersonalNotesGTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldPersonalNotes, v))
}

// PersonalNotesLT applies the LT predicate on the "personal_notes" field.
func PersonalNotesLT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldPersonalNotes, v))
}

// PersonalNotesLTE applies the LTE predicate on the "personal_notes" field.
func PersonalNotesLTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldPersonalNotes, v))
}

// PersonalNotesContains applies the Contains predicate on the "personal_notes" field.
func PersonalNotesContains(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContains(FieldPersonalNotes, v))
}

// PersonalNotesHasPrefix applies the HasPrefix predicate on the "personal_notes" field.
func PersonalNotesHasPrefix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasPrefix(FieldPersonalNotes, v))
}

// PersonalNotesHasSuffix applies the HasSuffix predicate on the "personal_notes" field.
func PersonalNotesHasSuffix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasSuffix(FieldPersonalNotes, v))
}

// PersonalNotesEqualFold applies the EqualFold predicate on the "personal_notes" field.
func PersonalNotesEqualFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEqualFold(FieldPersonalNotes, v))
}

// PersonalNotesContainsFold applies the ContainsFold predicate on the "personal_notes" field.
func PersonalNotesContainsFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContainsFold(FieldPersonalNotes, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldIsCorrect, v))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldAttemptNumber, v))
}

// PreviousScoreEQ applies the EQ predicate on the "previous_score" field.
func PreviousScoreEQ(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldPreviousScore, v))
}

// PreviousScoreNEQ applies the NEQ predicate on the "previous_score" field.
func PreviousScoreNEQ(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldPreviousScore, v))
}

// PreviousScoreIn applies the In predicate on the "previous_score" field.
func PreviousScoreIn(vs ...float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldPreviousScore, vs...))
}

// PreviousScoreNotIn applies the NotIn predicate on the "previous_score" field.
func PreviousScoreNotIn(vs ...float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldPreviousScore, vs...))
}

// PreviousScoreGT applies the GT predicate on the "previous_score" field.
func PreviousScoreGT(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldPreviousScore, v))
}

// PreviousScoreGTE applies the GTE predicate on the "previous_score" field.
func PreviousScoreGTE(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldPreviousScore, v))
}

// PreviousScoreLT applies the LT predicate on the "previous_score" field.
func PreviousScoreLT(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldPreviousScore, v))
}

// PreviousScoreLTE applies the LTE predicate on the "previous_score" field.
func PreviousScoreLTE(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldPreviousScore, v))
}

// PreviousScoreIsNil applies the IsNil predicate on the "previous_score" field.
func PreviousScoreIsNil() predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIsNull(FieldPreviousScore))
}

// PreviousScoreNotNil applies the NotNil predicate on the "previous_score" field.
func PreviousScoreNotNil() predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotNull(FieldPreviousScore))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldScore, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotNull(FieldFeedback))
}

// RetryScheduleIsNil applies the IsNil predicate on the "retry_schedule" field.
func RetryScheduleIsNil() predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIsNull(FieldRetrySchedule))
}

// RetryScheduleNotNil applies the NotNil predicate on the "retry_schedule" field.
func RetryScheduleNotNil() predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotNull(FieldRetrySchedule))
}

// CelebrationMessageEQ applies the EQ predicate on the "celebration_message" field.
func CelebrationMessageEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEQ(FieldCelebrationMessage, v))
}

// CelebrationMessageNEQ applies the NEQ predicate on the "celebration_message" field.
func CelebrationMessageNEQ(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNEQ(FieldCelebrationMessage, v))
}

// CelebrationMessageIn applies the In predicate on the "celebration_message" field.
func CelebrationMessageIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldIn(FieldCelebrationMessage, vs...))
}

// CelebrationMessageNotIn applies the NotIn predicate on the "celebration_message" field.
func CelebrationMessageNotIn(vs ...string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldNotIn(FieldCelebrationMessage, vs...))
}

// CelebrationMessageGT applies the GT predicate on the "celebration_message" field.
func CelebrationMessageGT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGT(FieldCelebrationMessage, v))
}

// CelebrationMessageGTE applies the GTE predicate on the "celebration_message" field.
func CelebrationMessageGTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldGTE(FieldCelebrationMessage, v))
}

// CelebrationMessageLT applies the LT predicate on the "celebration_message" field.
func CelebrationMessageLT(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLT(FieldCelebrationMessage, v))
}

// CelebrationMessageLTE applies the LTE predicate on the "celebration_message" field.
func CelebrationMessageLTE(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldLTE(FieldCelebrationMessage, v))
}

// CelebrationMessageContains applies the Contains predicate on the "celebration_message" field.
func CelebrationMessageContains(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContains(FieldCelebrationMessage, v))
}

// CelebrationMessageHasPrefix applies the HasPrefix predicate on the "celebration_message" field.
func CelebrationMessageHasPrefix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasPrefix(FieldCelebrationMessage, v))
}

// CelebrationMessageHasSuffix applies the HasSuffix predicate on the "celebration_message" field.
func CelebrationMessageHasSuffix(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldHasSuffix(FieldCelebrationMessage, v))
}

// CelebrationMessageEqualFold applies the EqualFold predicate on the "celebration_message" field.
func CelebrationMessageEqualFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldEqualFold(FieldCelebrationMessage, v))
}

// CelebrationMessageContainsFold applies the ContainsFold predicate on the "celebration_message" field.
func CelebrationMessageContainsFold(v string) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.FieldContainsFold(FieldCelebrationMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChallengeAttemptEvent) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChallengeAttemptEvent) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChallengeAttemptEvent) predicate.ChallengeAttemptEvent {
	return predicate.ChallengeAttemptEvent(sql.NotPredicates(p))
}
