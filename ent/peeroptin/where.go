// Code generated by ent, DO NOT EDIT.

package peeroptin

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/calibra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldEQ(FieldUserID, v))
}

// OptedIn applies equality check predicate on the "opted_in" field. It's identical to OptedInEQ.
func OptedIn(v bool) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldEQ(FieldOptedIn, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldContainsFold(FieldUserID, v))
}

// OptedInEQ applies the EQ predicate on the "opted_in" field.
func OptedInEQ(v bool) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldEQ(FieldOptedIn, v))
}

// OptedInNEQ applies the NEQ predicate on the "opted_in" field.
func OptedInNEQ(v bool) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldNEQ(FieldOptedIn, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PeerOptIn) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PeerOptIn) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PeerOptIn) predicate.PeerOptIn {
	return predicate.PeerOptIn(sql.NotPredicates(p))
}
