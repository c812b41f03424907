// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/calibra/ent/poolsnapshot"
)

// PoolSnapshot is the model entity for the PoolSnapshot schema.
type PoolSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global event sequence when the pool was summarized
	Sequence int64 `json:"sequence,omitempty"`
	// TakenAt holds the value of the "taken_at" field.
	TakenAt time.Time `json:"taken_at,omitempty"`
	// Semver of the payload encoding; readers skip other majors
	FormatVersion string `json:"format_version,omitempty"`
	// Opted-in learners in the sample
	Members int `json:"members,omitempty"`
	// JSON-encoded member sample
	Payload      []byte `json:"payload,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PoolSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case poolsnapshot.FieldPayload:
			values[i] = new([]byte)
		case poolsnapshot.FieldID, poolsnapshot.FieldSequence, poolsnapshot.FieldMembers:
			values[i] = new(sql.NullInt64)
		case poolsnapshot.FieldFormatVersion:
			values[i] = new(sql.NullString)
		case poolsnapshot.FieldTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PoolSnapshot fields.
func (_m *PoolSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case poolsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case poolsnapshot.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case poolsnapshot.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		case poolsnapshot.FieldFormatVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format_version", values[i])
			} else if value.Valid {
				_m.FormatVersion = value.String
			}
		case poolsnapshot.FieldMembers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field members", values[i])
			} else if value.Valid {
				_m.Members = int(value.Int64)
			}
		case poolsnapshot.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PoolSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *PoolSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PoolSnapshot.
// Note that you need to call PoolSnapshot.Unwrap() before calling this method if this PoolSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PoolSnapshot) Update() *PoolSnapshotUpdateOne {
	return NewPoolSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PoolSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PoolSnapshot) Unwrap() *PoolSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PoolSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PoolSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("PoolSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("format_version=")
	builder.WriteString(_m.FormatVersion)
	builder.WriteString(", ")
	builder.WriteString("members=")
	builder.WriteString(fmt.Sprintf("%v", _m.Members))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteByte(')')
	return builder.String()
}

// PoolSnapshots is a parsable slice of PoolSnapshot.
type PoolSnapshots []*PoolSnapshot
