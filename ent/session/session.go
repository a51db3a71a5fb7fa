// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldConfigID holds the string denoting the config_id field in the database.
	FieldConfigID = "config_id"
	// FieldCurrentPageID holds the string denoting the current_page_id field in the database.
	FieldCurrentPageID = "current_page_id"
	// FieldUserState holds the string denoting the user_state field in the database.
	FieldUserState = "user_state"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldProlificPid holds the string denoting the prolific_pid field in the database.
	FieldProlificPid = "prolific_pid"
	// FieldProlificStudyID holds the string denoting the prolific_study_id field in the database.
	FieldProlificStudyID = "prolific_study_id"
	// FieldProlificSessionID holds the string denoting the prolific_session_id field in the database.
	FieldProlificSessionID = "prolific_session_id"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldConfigID,
	FieldCurrentPageID,
	FieldUserState,
	FieldUserID,
	FieldProlificPid,
	FieldProlificStudyID,
	FieldProlificSessionID,
	FieldEndedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConfigID orders the results by the config_id field.
func ByConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfigID, opts...).ToFunc()
}

// ByCurrentPageID orders the results by the current_page_id field.
func ByCurrentPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPageID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByProlificPid orders the results by the prolific_pid field.
func ByProlificPid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProlificPid, opts...).ToFunc()
}

// ByProlificStudyID orders the results by the prolific_study_id field.
func ByProlificStudyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProlificStudyID, opts...).ToFunc()
}

// ByProlificSessionID orders the results by the prolific_session_id field.
func ByProlificSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProlificSessionID, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
