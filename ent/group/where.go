// Code generated by ent, DO NOT EDIT.

package group

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/greenroomlab/greenroom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldID, id))
}

// ConfigID applies equality check predicate on the "config_id" field. It's identical to ConfigIDEQ.
func ConfigID(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldConfigID, v))
}

// PoolID applies equality check predicate on the "pool_id" field. It's identical to PoolIDEQ.
func PoolID(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldPoolID, v))
}

// Treatment applies equality check predicate on the "treatment" field. It's identical to TreatmentEQ.
func Treatment(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldTreatment, v))
}

// MatchedAt applies equality check predicate on the "matched_at" field. It's identical to MatchedAtEQ.
func MatchedAt(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldMatchedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldStatus, v))
}

// ConfigIDEQ applies the EQ predicate on the "config_id" field.
func ConfigIDEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldConfigID, v))
}

// ConfigIDNEQ applies the NEQ predicate on the "config_id" field.
func ConfigIDNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldConfigID, v))
}

// ConfigIDIn applies the In predicate on the "config_id" field.
func ConfigIDIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldConfigID, vs...))
}

// ConfigIDNotIn applies the NotIn predicate on the "config_id" field.
func ConfigIDNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldConfigID, vs...))
}

// ConfigIDGT applies the GT predicate on the "config_id" field.
func ConfigIDGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldConfigID, v))
}

// ConfigIDGTE applies the GTE predicate on the "config_id" field.
func ConfigIDGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldConfigID, v))
}

// ConfigIDLT applies the LT predicate on the "config_id" field.
func ConfigIDLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldConfigID, v))
}

// ConfigIDLTE applies the LTE predicate on the "config_id" field.
func ConfigIDLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldConfigID, v))
}

// ConfigIDContains applies the Contains predicate on the "config_id" field.
func ConfigIDContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldConfigID, v))
}

// ConfigIDHasPrefix applies the HasPrefix predicate on the "config_id" field.
func ConfigIDHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldConfigID, v))
}

// ConfigIDHasSuffix applies the HasSuffix predicate on the "config_id" field.
func ConfigIDHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldConfigID, v))
}

// ConfigIDEqualFold applies the EqualFold predicate on the "config_id" field.
func ConfigIDEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldConfigID, v))
}

// ConfigIDContainsFold applies the ContainsFold predicate on the "config_id" field.
func ConfigIDContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldConfigID, v))
}

// PoolIDEQ applies the EQ predicate on the "pool_id" field.
func PoolIDEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldPoolID, v))
}

// PoolIDNEQ applies the NEQ predicate on the "pool_id" field.
func PoolIDNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldPoolID, v))
}

// PoolIDIn applies the In predicate on the "pool_id" field.
func PoolIDIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldPoolID, vs...))
}

// PoolIDNotIn applies the NotIn predicate on the "pool_id" field.
func PoolIDNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldPoolID, vs...))
}

// PoolIDGT applies the GT predicate on the "pool_id" field.
func PoolIDGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldPoolID, v))
}

// PoolIDGTE applies the GTE predicate on the "pool_id" field.
func PoolIDGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldPoolID, v))
}

// PoolIDLT applies the LT predicate on the "pool_id" field.
func PoolIDLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldPoolID, v))
}

// PoolIDLTE applies the LTE predicate on the "pool_id" field.
func PoolIDLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldPoolID, v))
}

// PoolIDContains applies the Contains predicate on the "pool_id" field.
func PoolIDContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldPoolID, v))
}

// PoolIDHasPrefix applies the HasPrefix predicate on the "pool_id" field.
func PoolIDHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldPoolID, v))
}

// PoolIDHasSuffix applies the HasSuffix predicate on the "pool_id" field.
func PoolIDHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldPoolID, v))
}

// PoolIDEqualFold applies the EqualFold predicate on the "pool_id" field.
func PoolIDEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldPoolID, v))
}

// PoolIDContainsFold applies the ContainsFold predicate on the "pool_id" field.
func PoolIDContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldPoolID, v))
}

// TreatmentEQ applies the EQ predicate on the "treatment" field.
func TreatmentEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldTreatment, v))
}

// TreatmentNEQ applies the NEQ predicate on the "treatment" field.
func TreatmentNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldTreatment, v))
}

// TreatmentIn applies the In predicate on the "treatment" field.
func TreatmentIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldTreatment, vs...))
}

// TreatmentNotIn applies the NotIn predicate on the "treatment" field.
func TreatmentNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldTreatment, vs...))
}

// TreatmentGT applies the GT predicate on the "treatment" field.
func TreatmentGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldTreatment, v))
}

// TreatmentGTE applies the GTE predicate on the "treatment" field.
func TreatmentGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldTreatment, v))
}

// TreatmentLT applies the LT predicate on the "treatment" field.
func TreatmentLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldTreatment, v))
}

// TreatmentLTE applies the LTE predicate on the "treatment" field.
func TreatmentLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldTreatment, v))
}

// TreatmentContains applies the Contains predicate on the "treatment" field.
func TreatmentContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldTreatment, v))
}

// TreatmentHasPrefix applies the HasPrefix predicate on the "treatment" field.
func TreatmentHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldTreatment, v))
}

// TreatmentHasSuffix applies the HasSuffix predicate on the "treatment" field.
func TreatmentHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldTreatment, v))
}

// TreatmentEqualFold applies the EqualFold predicate on the "treatment" field.
func TreatmentEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldTreatment, v))
}

// TreatmentContainsFold applies the ContainsFold predicate on the "treatment" field.
func TreatmentContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldTreatment, v))
}

// MatchedAtEQ applies the EQ predicate on the "matched_at" field.
func MatchedAtEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldMatchedAt, v))
}

// MatchedAtNEQ applies the NEQ predicate on the "matched_at" field.
func MatchedAtNEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldMatchedAt, v))
}

// MatchedAtIn applies the In predicate on the "matched_at" field.
func MatchedAtIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldMatchedAt, vs...))
}

// MatchedAtNotIn applies the NotIn predicate on the "matched_at" field.
func MatchedAtNotIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldMatchedAt, vs...))
}

// MatchedAtGT applies the GT predicate on the "matched_at" field.
func MatchedAtGT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldMatchedAt, v))
}

// MatchedAtGTE applies the GTE predicate on the "matched_at" field.
func MatchedAtGTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldMatchedAt, v))
}

// MatchedAtLT applies the LT predicate on the "matched_at" field.
func MatchedAtLT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldMatchedAt, v))
}

// MatchedAtLTE applies the LTE predicate on the "matched_at" field.
func MatchedAtLTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldMatchedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Group) predicate.Group {
	return predicate.Group(sql.NotPredicates(p))
}
