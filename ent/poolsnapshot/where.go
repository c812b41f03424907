// Code generated by ent, DO NOT EDIT.

package poolsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/calibra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldSequence, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// FormatVersion applies equality check predicate on the "format_version" field. It's identical to FormatVersionEQ.
func FormatVersion(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldFormatVersion, v))
}

// Members applies equality check predicate on the "members" field. It's identical to MembersEQ.
func Members(v int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldMembers, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldPayload, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLTE(FieldSequence, v))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLTE(FieldTakenAt, v))
}

// FormatVersionEQ applies the EQ predicate on the "format_version" field.
func FormatVersionEQ(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldFormatVersion, v))
}

// FormatVersionNEQ applies the NEQ predicate on the "format_version" field.
func FormatVersionNEQ(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNEQ(FieldFormatVersion, v))
}

// FormatVersionIn applies the In predicate on the "format_version" field.
func FormatVersionIn(vs ...string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldIn(FieldFormatVersion, vs...))
}

// FormatVersionNotIn applies the NotIn predicate on the "format_version" field.
func FormatVersionNotIn(vs ...string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNotIn(FieldFormatVersion, vs...))
}

// FormatVersionGT applies the GT predicate on the "format_version" field.
func FormatVersionGT(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGT(FieldFormatVersion, v))
}

// FormatVersionGTE applies the GTE predicate on the "format_version" field.
func FormatVersionGTE(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGTE(FieldFormatVersion, v))
}

// FormatVersionLT applies the LT predicate on the "format_version" field.
func FormatVersionLT(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLT(FieldFormatVersion, v))
}

// FormatVersionLTE applies the LTE predicate on the "format_version" field.
func FormatVersionLTE(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLTE(FieldFormatVersion, v))
}

// FormatVersionContains applies the Contains predicate on the "format_version" field.
func FormatVersionContains(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldContains(FieldFormatVersion, v))
}

// FormatVersionHasPrefix applies the HasPrefix predicate on the "format_version" field.
func FormatVersionHasPrefix(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldHasPrefix(FieldFormatVersion, v))
}

// FormatVersionHasSuffix applies the HasSuffix predicate on the "format_version" field.
func FormatVersionHasSuffix(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldHasSuffix(FieldFormatVersion, v))
}

// FormatVersionEqualFold applies the EqualFold predicate on the "format_version" field.
func FormatVersionEqualFold(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEqualFold(FieldFormatVersion, v))
}

// FormatVersionContainsFold applies the ContainsFold predicate on the "format_version" field.
func FormatVersionContainsFold(v string) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldContainsFold(FieldFormatVersion, v))
}

// MembersEQ applies the EQ predicate on the "members" field.
func MembersEQ(v int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldMembers, v))
}

// MembersNEQ applies the NEQ predicate on the "members" field.
func MembersNEQ(v int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNEQ(FieldMembers, v))
}

// MembersIn applies the In predicate on the "members" field.
func MembersIn(vs ...int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldIn(FieldMembers, vs...))
}

// MembersNotIn applies the NotIn predicate on the "members" field.
func MembersNotIn(vs ...int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNotIn(FieldMembers, vs...))
}

// MembersGT applies the GT predicate on the "members" field.
func MembersGT(v int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGT(FieldMembers, v))
}

// MembersGTE applies the GTE predicate on the "members" field.
func MembersGTE(v int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGTE(FieldMembers, v))
}

// MembersLT applies the LT predicate on the "members" field.
func MembersLT(v int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLT(FieldMembers, v))
}

// MembersLTE applies the LTE predicate on the "members" field.
func MembersLTE(v int) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLTE(FieldMembers, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.FieldLTE(FieldPayload, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PoolSnapshot) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PoolSnapshot) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PoolSnapshot) predicate.PoolSnapshot {
	return predicate.PoolSnapshot(sql.NotPredicates(p))
}
