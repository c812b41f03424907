// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/calibra/ent/peeroptin"
)

// PeerOptIn is the model entity for the PeerOptIn schema.
type PeerOptIn struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner the preference belongs to
	UserID string `json:"user_id,omitempty"`
	// Whether the learner joins the peer pool
	OptedIn bool `json:"opted_in,omitempty"`
	// When the preference last changed
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PeerOptIn) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case peeroptin.FieldOptedIn:
			values[i] = new(sql.NullBool)
		case peeroptin.FieldID:
			values[i] = new(sql.NullInt64)
		case peeroptin.FieldUserID:
			values[i] = new(sql.NullString)
		case peeroptin.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PeerOptIn fields.
func (_m *PeerOptIn) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case peeroptin.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case peeroptin.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case peeroptin.FieldOptedIn:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field opted_in", values[i])
			} else if value.Valid {
				_m.OptedIn = value.Bool
			}
		case peeroptin.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PeerOptIn.
// This includes values selected through modifiers, order, etc.
func (_m *PeerOptIn) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PeerOptIn.
// Note that you need to call PeerOptIn.Unwrap() before calling this method if this PeerOptIn
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PeerOptIn) Update() *PeerOptInUpdateOne {
	return NewPeerOptInClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PeerOptIn entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PeerOptIn) Unwrap() *PeerOptIn {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PeerOptIn is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PeerOptIn) String() string {
	var builder strings.Builder
	builder.WriteString("PeerOptIn(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("opted_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptedIn))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PeerOptIns is a parsable slice of PeerOptIn.
type PeerOptIns []*PeerOptIn
