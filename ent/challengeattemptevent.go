// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/calibra/ent/challengeattemptevent"
	"github.com/abhisek/calibra/ent/schema"
)

// ChallengeAttemptEvent is the model entity for the ChallengeAttemptEvent schema.
type ChallengeAttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Caller-supplied or generated attempt UUID
	AttemptID string `json:"attempt_id,omitempty"`
	// Challenge that was answered
	ChallengeID string `json:"challenge_id,omitempty"`
	// Learner who answered
	UserID string `json:"user_id,omitempty"`
	// Objective the lineage tracks
	ObjectiveID string `json:"objective_id,omitempty"`
	// Option id the learner chose
	UserAnswer string `json:"user_answer,omitempty"`
	// Confidence before answering, 1-5
	Confidence int `json:"confidence,omitempty"`
	// Self-reported emotion, empty if not given
	EmotionTag string `json:"emotion_tag,omitempty"`
	// Learner's own notes
	PersonalNotes string `json:"personal_notes,omitempty"`
	// Whether the chosen option was correct
	IsCorrect bool `json:"is_correct,omitempty"`
	// 1-based position in the lineage
	AttemptNumber int `json:"attempt_number,omitempty"`
	// Score of the prior attempt in the lineage
	PreviousScore *float64 `json:"previous_score,omitempty"`
	// 100 when correct, 0 otherwise
	Score float64 `json:"score,omitempty"`
	// Corrective feedback, only when incorrect
	Feedback *schema.FeedbackRecord `json:"feedback,omitempty"`
	// Five retry times, only when incorrect
	RetrySchedule []time.Time `json:"retry_schedule,omitempty"`
	// Shown on a correct answer
	CelebrationMessage string `json:"celebration_message,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChallengeAttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case challengeattemptevent.FieldFeedback, challengeattemptevent.FieldRetrySchedule:
			values[i] = new([]byte)
		case challengeattemptevent.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case challengeattemptevent.FieldPreviousScore, challengeattemptevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case challengeattemptevent.FieldID, challengeattemptevent.FieldSequence, challengeattemptevent.FieldConfidence, challengeattemptevent.FieldAttemptNumber:
			values[i] = new(sql.NullInt64)
		case challengeattemptevent.FieldAttemptID, challengeattemptevent.FieldChallengeID, challengeattemptevent.FieldUserID, challengeattemptevent.FieldObjectiveID, challengeattemptevent.FieldUserAnswer, challengeattemptevent.FieldEmotionTag, challengeattemptevent.FieldPersonalNotes, challengeattemptevent.FieldCelebrationMessage:
			values[i] = new(sql.NullString)
		case challengeattemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChallengeAttemptEvent fields.
func (_m *ChallengeAttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case challengeattemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case challengeattemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case challengeattemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case challengeattemptevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case challengeattemptevent.FieldChallengeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_id", values[i])
			} else if value.Valid {
				_m.ChallengeID = value.String
			}
		case challengeattemptevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case challengeattemptevent.FieldObjectiveID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective_id", values[i])
			} else if value.Valid {
				_m.ObjectiveID = value.String
			}
		case challengeattemptevent.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				_m.UserAnswer = value.String
			}
		case challengeattemptevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = int(value.Int64)
			}
		case challengeattemptevent.FieldEmotionTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emotion_tag", values[i])
			} else if value.Valid {
				_m.EmotionTag = value.String
			}
		case challengeattemptevent.FieldPersonalNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field personal_notes", values[i])
			} else if value.Valid {
				_m.PersonalNotes = value.String
			}
		case challengeattemptevent.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case challengeattemptevent.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case challengeattemptevent.FieldPreviousScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_score", values[i])
			} else if value.Valid {
				_m.PreviousScore = new(float64)
				*_m.PreviousScore = value.Float64
			}
		case challengeattemptevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case challengeattemptevent.FieldFeedback:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Feedback); err != nil {
					return fmt.Errorf("unmarshal field feedback: %w", err)
				}
			}
		case challengeattemptevent.FieldRetrySchedule:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field retry_schedule", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RetrySchedule); err != nil {
					return fmt.Errorf("unmarshal field retry_schedule: %w", err)
				}
			}
		case challengeattemptevent.FieldCelebrationMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field celebration_message", values[i])
			} else if value.Valid {
				_m.CelebrationMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChallengeAttemptEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ChallengeAttemptEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChallengeAttemptEvent.
// Note that you need to call ChallengeAttemptEvent.Unwrap() before calling this method if this ChallengeAttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChallengeAttemptEvent) Update() *ChallengeAttemptEventUpdateOne {
	return NewChallengeAttemptEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChallengeAttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChallengeAttemptEvent) Unwrap() *ChallengeAttemptEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChallengeAttemptEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChallengeAttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ChallengeAttemptEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("challenge_id=")
	builder.WriteString(_m.ChallengeID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("objective_id=")
	builder.WriteString(_m.ObjectiveID)
	builder.WriteString(", ")
	builder.WriteString("user_answer=")
	builder.WriteString(_m.UserAnswer)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("emotion_tag=")
	builder.WriteString(_m.EmotionTag)
	builder.WriteString(", ")
	builder.WriteString("personal_notes=")
	builder.WriteString(_m.PersonalNotes)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	if v := _m.PreviousScore; v != nil {
		builder.WriteString("previous_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Feedback))
	builder.WriteString(", ")
	builder.WriteString("retry_schedule=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetrySchedule))
	builder.WriteString(", ")
	builder.WriteString("celebration_message=")
	builder.WriteString(_m.CelebrationMessage)
	builder.WriteByte(')')
	return builder.String()
}

// ChallengeAttemptEvents is a parsable slice of ChallengeAttemptEvent.
type ChallengeAttemptEvents []*ChallengeAttemptEvent
