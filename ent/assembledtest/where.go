// Code generated by ent, DO NOT EDIT.

package assembledtest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEQ(FieldUserID, v))
}

// ConfigID applies equality check predicate on the "config_id" field. It's identical to ConfigIDEQ.
func ConfigID(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEQ(FieldConfigID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldContainsFold(FieldUserID, v))
}

// ConfigIDEQ applies the EQ predicate on the "config_id" field.
func ConfigIDEQ(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEQ(FieldConfigID, v))
}

// ConfigIDNEQ applies the NEQ predicate on the "config_id" field.
func ConfigIDNEQ(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldNEQ(FieldConfigID, v))
}

// ConfigIDIn applies the In predicate on the "config_id" field.
func ConfigIDIn(vs ...string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldIn(FieldConfigID, vs...))
}

// ConfigIDNotIn applies the NotIn predicate on the "config_id" field.
func ConfigIDNotIn(vs ...string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldNotIn(FieldConfigID, vs...))
}

// ConfigIDGT applies the GT predicate on the "config_id" field.
func ConfigIDGT(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldGT(FieldConfigID, v))
}

// ConfigIDGTE applies the GTE predicate on the "config_id" field.
func ConfigIDGTE(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldGTE(FieldConfigID, v))
}

// ConfigIDLT applies the LT predicate on the "config_id" field.
func ConfigIDLT(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldLT(FieldConfigID, v))
}

// ConfigIDLTE applies the LTE predicate on the "config_id" field.
func ConfigIDLTE(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldLTE(FieldConfigID, v))
}

// ConfigIDContains applies the Contains predicate on the "config_id" field.
func ConfigIDContains(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldContains(FieldConfigID, v))
}

// ConfigIDHasPrefix applies the HasPrefix predicate on the "config_id" field.
func ConfigIDHasPrefix(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldHasPrefix(FieldConfigID, v))
}

// ConfigIDHasSuffix applies the HasSuffix predicate on the "config_id" field.
func ConfigIDHasSuffix(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldHasSuffix(FieldConfigID, v))
}

// ConfigIDEqualFold applies the EqualFold predicate on the "config_id" field.
func ConfigIDEqualFold(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEqualFold(FieldConfigID, v))
}

// ConfigIDContainsFold applies the ContainsFold predicate on the "config_id" field.
func ConfigIDContainsFold(v string) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldContainsFold(FieldConfigID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssembledTest {
	return predicate.AssembledTest(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssembledTest) predicate.AssembledTest {
	return predicate.AssembledTest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssembledTest) predicate.AssembledTest {
	return predicate.AssembledTest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssembledTest) predicate.AssembledTest {
	return predicate.AssembledTest(sql.NotPredicates(p))
}
