// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/greenroomlab/greenroom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// ConfigID applies equality check predicate on the "config_id" field. It's identical to ConfigIDEQ.
func ConfigID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConfigID, v))
}

// CurrentPageID applies equality check predicate on the "current_page_id" field. It's identical to CurrentPageIDEQ.
func CurrentPageID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentPageID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// ProlificPid applies equality check predicate on the "prolific_pid" field. It's identical to ProlificPidEQ.
func ProlificPid(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProlificPid, v))
}

// ProlificStudyID applies equality check predicate on the "prolific_study_id" field. It's identical to ProlificStudyIDEQ.
func ProlificStudyID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProlificStudyID, v))
}

// ProlificSessionID applies equality check predicate on the "prolific_session_id" field. It's identical to ProlificSessionIDEQ.
func ProlificSessionID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProlificSessionID, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConfigIDEQ applies the EQ predicate on the "config_id" field.
func ConfigIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConfigID, v))
}

// ConfigIDNEQ applies the NEQ predicate on the "config_id" field.
func ConfigIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldConfigID, v))
}

// ConfigIDIn applies the In predicate on the "config_id" field.
func ConfigIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldConfigID, vs...))
}

// ConfigIDNotIn applies the NotIn predicate on the "config_id" field.
func ConfigIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldConfigID, vs...))
}

// ConfigIDGT applies the GT predicate on the "config_id" field.
func ConfigIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldConfigID, v))
}

// ConfigIDGTE applies the GTE predicate on the "config_id" field.
func ConfigIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldConfigID, v))
}

// ConfigIDLT applies the LT predicate on the "config_id" field.
func ConfigIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldConfigID, v))
}

// ConfigIDLTE applies the LTE predicate on the "config_id" field.
func ConfigIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldConfigID, v))
}

// ConfigIDContains applies the Contains predicate on the "config_id" field.
func ConfigIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldConfigID, v))
}

// ConfigIDHasPrefix applies the HasPrefix predicate on the "config_id" field.
func ConfigIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldConfigID, v))
}

// ConfigIDHasSuffix applies the HasSuffix predicate on the "config_id" field.
func ConfigIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldConfigID, v))
}

// ConfigIDEqualFold applies the EqualFold predicate on the "config_id" field.
func ConfigIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldConfigID, v))
}

// ConfigIDContainsFold applies the ContainsFold predicate on the "config_id" field.
func ConfigIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldConfigID, v))
}

// CurrentPageIDEQ applies the EQ predicate on the "current_page_id" field.
func CurrentPageIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentPageID, v))
}

// CurrentPageIDNEQ applies the NEQ predicate on the "current_page_id" field.
func CurrentPageIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCurrentPageID, v))
}

// CurrentPageIDIn applies the In predicate on the "current_page_id" field.
func CurrentPageIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCurrentPageID, vs...))
}

// CurrentPageIDNotIn applies the NotIn predicate on the "current_page_id" field.
func CurrentPageIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCurrentPageID, vs...))
}

// CurrentPageIDGT applies the GT predicate on the "current_page_id" field.
func CurrentPageIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCurrentPageID, v))
}

// CurrentPageIDGTE applies the GTE predicate on the "current_page_id" field.
func CurrentPageIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCurrentPageID, v))
}

// CurrentPageIDLT applies the LT predicate on the "current_page_id" field.
func CurrentPageIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCurrentPageID, v))
}

// CurrentPageIDLTE applies the LTE predicate on the "current_page_id" field.
func CurrentPageIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCurrentPageID, v))
}

// CurrentPageIDContains applies the Contains predicate on the "current_page_id" field.
func CurrentPageIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCurrentPageID, v))
}

// CurrentPageIDHasPrefix applies the HasPrefix predicate on the "current_page_id" field.
func CurrentPageIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCurrentPageID, v))
}

// CurrentPageIDHasSuffix applies the HasSuffix predicate on the "current_page_id" field.
func CurrentPageIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCurrentPageID, v))
}

// CurrentPageIDEqualFold applies the EqualFold predicate on the "current_page_id" field.
func CurrentPageIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCurrentPageID, v))
}

// CurrentPageIDContainsFold applies the ContainsFold predicate on the "current_page_id" field.
func CurrentPageIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCurrentPageID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserID, v))
}

// ProlificPidEQ applies the EQ predicate on the "prolific_pid" field.
func ProlificPidEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProlificPid, v))
}

// ProlificPidNEQ applies the NEQ predicate on the "prolific_pid" field.
func ProlificPidNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProlificPid, v))
}

// ProlificPidIn applies the In predicate on the "prolific_pid" field.
func ProlificPidIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProlificPid, vs...))
}

// ProlificPidNotIn applies the NotIn predicate on the "prolific_pid" field.
func ProlificPidNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProlificPid, vs...))
}

// ProlificPidGT applies the GT predicate on the "prolific_pid" field.
func ProlificPidGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProlificPid, v))
}

// ProlificPidGTE applies the GTE predicate on the "prolific_pid" field.
func ProlificPidGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProlificPid, v))
}

// ProlificPidLT applies the LT predicate on the "prolific_pid" field.
func ProlificPidLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProlificPid, v))
}

// ProlificPidLTE applies the LTE predicate on the "prolific_pid" field.
func ProlificPidLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProlificPid, v))
}

// ProlificPidContains applies the Contains predicate on the "prolific_pid" field.
func ProlificPidContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProlificPid, v))
}

// ProlificPidHasPrefix applies the HasPrefix predicate on the "prolific_pid" field.
func ProlificPidHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProlificPid, v))
}

// ProlificPidHasSuffix applies the HasSuffix predicate on the "prolific_pid" field.
func ProlificPidHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProlificPid, v))
}

// ProlificPidIsNil applies the IsNil predicate on the "prolific_pid" field.
func ProlificPidIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldProlificPid))
}

// ProlificPidNotNil applies the NotNil predicate on the "prolific_pid" field.
func ProlificPidNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldProlificPid))
}

// ProlificPidEqualFold applies the EqualFold predicate on the "prolific_pid" field.
func ProlificPidEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProlificPid, v))
}

// ProlificPidContainsFold applies the ContainsFold predicate on the "prolific_pid" field.
func ProlificPidContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProlificPid, v))
}

// ProlificStudyIDEQ applies the EQ predicate on the "prolific_study_id" field.
func ProlificStudyIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProlificStudyID, v))
}

// ProlificStudyIDNEQ applies the NEQ predicate on the "prolific_study_id" field.
func ProlificStudyIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProlificStudyID, v))
}

// ProlificStudyIDIn applies the In predicate on the "prolific_study_id" field.
func ProlificStudyIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProlificStudyID, vs...))
}

// ProlificStudyIDNotIn applies the NotIn predicate on the "prolific_study_id" field.
func ProlificStudyIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProlificStudyID, vs...))
}

// ProlificStudyIDGT applies the GT predicate on the "prolific_study_id" field.
func ProlificStudyIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProlificStudyID, v))
}

// ProlificStudyIDGTE applies the GTE predicate on the "prolific_study_id" field.
func ProlificStudyIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProlificStudyID, v))
}

// ProlificStudyIDLT applies the LT predicate on the "prolific_study_id" field.
func ProlificStudyIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProlificStudyID, v))
}

// ProlificStudyIDLTE applies the LTE predicate on the "prolific_study_id" field.
func ProlificStudyIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProlificStudyID, v))
}

// ProlificStudyIDContains applies the Contains predicate on the "prolific_study_id" field.
func ProlificStudyIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProlificStudyID, v))
}

// ProlificStudyIDHasPrefix applies the HasPrefix predicate on the "prolific_study_id" field.
func ProlificStudyIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProlificStudyID, v))
}

// ProlificStudyIDHasSuffix applies the HasSuffix predicate on the "prolific_study_id" field.
func ProlificStudyIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProlificStudyID, v))
}

// ProlificStudyIDIsNil applies the IsNil predicate on the "prolific_study_id" field.
func ProlificStudyIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldProlificStudyID))
}

// ProlificStudyIDNotNil applies the NotNil predicate on the "prolific_study_id" field.
func ProlificStudyIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldProlificStudyID))
}

// ProlificStudyIDEqualFold applies the EqualFold predicate on the "prolific_study_id" field.
func ProlificStudyIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProlificStudyID, v))
}

// ProlificStudyIDContainsFold applies the ContainsFold predicate on the "prolific_study_id" field.
func ProlificStudyIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProlificStudyID, v))
}

// ProlificSessionIDEQ applies the EQ predicate on the "prolific_session_id" field.
func ProlificSessionIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProlificSessionID, v))
}

// ProlificSessionIDNEQ applies the NEQ predicate on the "prolific_session_id" field.
func ProlificSessionIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProlificSessionID, v))
}

// ProlificSessionIDIn applies the In predicate on the "prolific_session_id" field.
func ProlificSessionIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProlificSessionID, vs...))
}

// ProlificSessionIDNotIn applies the NotIn predicate on the "prolific_session_id" field.
func ProlificSessionIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProlificSessionID, vs...))
}

// ProlificSessionIDGT applies the GT predicate on the "prolific_session_id" field.
func ProlificSessionIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProlificSessionID, v))
}

// ProlificSessionIDGTE applies the GTE predicate on the "prolific_session_id" field.
func ProlificSessionIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProlificSessionID, v))
}

// ProlificSessionIDLT applies the LT predicate on the "prolific_session_id" field.
func ProlificSessionIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProlificSessionID, v))
}

// ProlificSessionIDLTE applies the LTE predicate on the "prolific_session_id" field.
func ProlificSessionIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProlificSessionID, v))
}

// ProlificSessionIDContains applies the Contains predicate on the "prolific_session_id" field.
func ProlificSessionIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProlificSessionID, v))
}

// ProlificSessionIDHasPrefix applies the HasPrefix predicate on the "prolific_session_id" field.
func ProlificSessionIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProlificSessionID, v))
}

// ProlificSessionIDHasSuffix applies the HasSuffix predicate on the "prolific_session_id" field.
func ProlificSessionIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProlificSessionID, v))
}

// ProlificSessionIDIsNil applies the IsNil predicate on the "prolific_session_id" field.
func ProlificSessionIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldProlificSessionID))
}

// ProlificSessionIDNotNil applies the NotNil predicate on the "prolific_session_id" field.
func ProlificSessionIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldProlificSessionID))
}

// ProlificSessionIDEqualFold applies the EqualFold predicate on the "prolific_session_id" field.
func ProlificSessionIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProlificSessionID, v))
}

// ProlificSessionIDContainsFold applies the ContainsFold predicate on the "prolific_session_id" field.
func ProlificSessionIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProlificSessionID, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
