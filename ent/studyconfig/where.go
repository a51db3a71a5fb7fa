// Code generated by ent, DO NOT EDIT.

package studyconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/greenroomlab/greenroom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldContainsFold(FieldID, id))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEQ(FieldOwner, v))
}

// RequireAuth applies equality check predicate on the "require_auth" field. It's identical to RequireAuthEQ.
func RequireAuth(v bool) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEQ(FieldRequireAuth, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerIsNil applies the IsNil predicate on the "owner" field.
func OwnerIsNil() predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldIsNull(FieldOwner))
}

// OwnerNotNil applies the NotNil predicate on the "owner" field.
func OwnerNotNil() predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldNotNull(FieldOwner))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldContainsFold(FieldOwner, v))
}

// RequireAuthEQ applies the EQ predicate on the "require_auth" field.
func RequireAuthEQ(v bool) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEQ(FieldRequireAuth, v))
}

// RequireAuthNEQ applies the NEQ predicate on the "require_auth" field.
func RequireAuthNEQ(v bool) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldNEQ(FieldRequireAuth, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudyConfig {
	return predicate.StudyConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyConfig) predicate.StudyConfig {
	return predicate.StudyConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyConfig) predicate.StudyConfig {
	return predicate.StudyConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyConfig) predicate.StudyConfig {
	return predicate.StudyConfig(sql.NotPredicates(p))
}
