// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/greenroomlab/greenroom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldID, id))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldType, v))
}

// ComponentType applies equality check predicate on the "component_type" field. It's identical to ComponentTypeEQ.
func ComponentType(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldComponentType, v))
}

// ComponentID applies equality check predicate on the "component_id" field. It's identical to ComponentIDEQ.
func ComponentID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldComponentID, v))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPageID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSessionID, v))
}

// ConfigID applies equality check predicate on the "config_id" field. It's identical to ConfigIDEQ.
func ConfigID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldConfigID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTimestamp, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIdempotencyKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldType, v))
}

// ComponentTypeEQ applies the EQ predicate on the "component_type" field.
func ComponentTypeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldComponentType, v))
}

// ComponentTypeNEQ applies the NEQ predicate on the "component_type" field.
func ComponentTypeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldComponentType, v))
}

// ComponentTypeIn applies the In predicate on the "component_type" field.
func ComponentTypeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldComponentType, vs...))
}

// ComponentTypeNotIn applies the NotIn predicate on the "component_type" field.
func ComponentTypeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldComponentType, vs...))
}

// ComponentTypeGT applies the GT predicate on the "component_type" field.
func ComponentTypeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldComponentType, v))
}

// ComponentTypeGTE applies the GTE predicate on the "component_type" field.
func ComponentTypeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldComponentType, v))
}

// ComponentTypeLT applies the LT predicate on the "component_type" field.
func ComponentTypeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldComponentType, v))
}

// ComponentTypeLTE applies the LTE predicate on the "component_type" field.
func ComponentTypeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldComponentType, v))
}

// ComponentTypeContains applies the Contains predicate on the "component_type" field.
func ComponentTypeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldComponentType, v))
}

// ComponentTypeHasPrefix applies the HasPrefix predicate on the "component_type" field.
func ComponentTypeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldComponentType, v))
}

// ComponentTypeHasSuffix applies the HasSuffix predicate on the "component_type" field.
func ComponentTypeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldComponentType, v))
}

// ComponentTypeIsNil applies the IsNil predicate on the "component_type" field.
func ComponentTypeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldComponentType))
}

// ComponentTypeNotNil applies the NotNil predicate on the "component_type" field.
func ComponentTypeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldComponentType))
}

// ComponentTypeEqualFold applies the EqualFold predicate on the "component_type" field.
func ComponentTypeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldComponentType, v))
}

// ComponentTypeContainsFold applies the ContainsFold predicate on the "component_type" field.
func ComponentTypeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldComponentType, v))
}

// ComponentIDEQ applies the EQ predicate on the "component_id" field.
func ComponentIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldComponentID, v))
}

// ComponentIDNEQ applies the NEQ predicate on the "component_id" field.
func ComponentIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldComponentID, v))
}

// ComponentIDIn applies the In predicate on the "component_id" field.
func ComponentIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldComponentID, vs...))
}

// ComponentIDNotIn applies the NotIn predicate on the "component_id" field.
func ComponentIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldComponentID, vs...))
}

// ComponentIDGT applies the GT predicate on the "component_id" field.
func ComponentIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldComponentID, v))
}

// ComponentIDGTE applies the GTE predicate on the "component_id" field.
func ComponentIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldComponentID, v))
}

// ComponentIDLT applies the LT predicate on the "component_id" field.
func ComponentIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldComponentID, v))
}

// ComponentIDLTE applies the LTE predicate on the "component_id" field.
func ComponentIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldComponentID, v))
}

// ComponentIDContains applies the Contains predicate on the "component_id" field.
func ComponentIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldComponentID, v))
}

// ComponentIDHasPrefix applies the HasPrefix predicate on the "component_id" field.
func ComponentIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldComponentID, v))
}

// ComponentIDHasSuffix applies the HasSuffix predicate on the "component_id" field.
func ComponentIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldComponentID, v))
}

// ComponentIDIsNil applies the IsNil predicate on the "component_id" field.
func ComponentIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldComponentID))
}

// ComponentIDNotNil applies the NotNil predicate on the "component_id" field.
func ComponentIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldComponentID))
}

// ComponentIDEqualFold applies the EqualFold predicate on the "component_id" field.
func ComponentIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldComponentID, v))
}

// ComponentIDContainsFold applies the ContainsFold predicate on the "component_id" field.
func ComponentIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldComponentID, v))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldPageID, vs...))
}

// PageIDGT applies the GT predicate on the "page_id" field.
func PageIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldPageID, v))
}

// PageIDGTE applies the GTE predicate on the "page_id" field.
func PageIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldPageID, v))
}

// PageIDLT applies the LT predicate on the "page_id" field.
func PageIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldPageID, v))
}

// PageIDLTE applies the LTE predicate on the "page_id" field.
func PageIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldPageID, v))
}

// PageIDContains applies the Contains predicate on the "page_id" field.
func PageIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldPageID, v))
}

// PageIDHasPrefix applies the HasPrefix predicate on the "page_id" field.
func PageIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldPageID, v))
}

// PageIDHasSuffix applies the HasSuffix predicate on the "page_id" field.
func PageIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldPageID, v))
}

// PageIDIsNil applies the IsNil predicate on the "page_id" field.
func PageIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldPageID))
}

// PageIDNotNil applies the NotNil predicate on the "page_id" field.
func PageIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldPageID))
}

// PageIDEqualFold applies the EqualFold predicate on the "page_id" field.
func PageIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldPageID, v))
}

// PageIDContainsFold applies the ContainsFold predicate on the "page_id" field.
func PageIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldPageID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSessionID, v))
}

// ConfigIDEQ applies the EQ predicate on the "config_id" field.
func ConfigIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldConfigID, v))
}

// ConfigIDNEQ applies the NEQ predicate on the "config_id" field.
func ConfigIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldConfigID, v))
}

// ConfigIDIn applies the In predicate on the "config_id" field.
func ConfigIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldConfigID, vs...))
}

// ConfigIDNotIn applies the NotIn predicate on the "config_id" field.
func ConfigIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldConfigID, vs...))
}

// ConfigIDGT applies the GT predicate on the "config_id" field.
func ConfigIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldConfigID, v))
}

// ConfigIDGTE applies the GTE predicate on the "config_id" field.
func ConfigIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldConfigID, v))
}

// ConfigIDLT applies the LT predicate on the "config_id" field.
func ConfigIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldConfigID, v))
}

// ConfigIDLTE applies the LTE predicate on the "config_id" field.
func ConfigIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldConfigID, v))
}

// ConfigIDContains applies the Contains predicate on the "config_id" field.
func ConfigIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldConfigID, v))
}

// ConfigIDHasPrefix applies the HasPrefix predicate on the "config_id" field.
func ConfigIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldConfigID, v))
}

// ConfigIDHasSuffix applies the HasSuffix predicate on the "config_id" field.
func ConfigIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldConfigID, v))
}

// ConfigIDEqualFold applies the EqualFold predicate on the "config_id" field.
func ConfigIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldConfigID, v))
}

// ConfigIDContainsFold applies the ContainsFold predicate on the "config_id" field.
func ConfigIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldConfigID, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldData))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampIsNil applies the IsNil predicate on the "timestamp" field.
func TimestampIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldTimestamp))
}

// TimestampNotNil applies the NotNil predicate on the "timestamp" field.
func TimestampNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldTimestamp))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
