// Code generated by ent, DO NOT EDIT.

package group

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the group type in the database.
	Label = "group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "group_id"
	// FieldConfigID holds the string denoting the config_id field in the database.
	FieldConfigID = "config_id"
	// FieldPoolID holds the string denoting the pool_id field in the database.
	FieldPoolID = "pool_id"
	// FieldMemberSessionIds holds the string denoting the member_session_ids field in the database.
	FieldMemberSessionIds = "member_session_ids"
	// FieldTreatment holds the string denoting the treatment field in the database.
	FieldTreatment = "treatment"
	// FieldMatchedAt holds the string denoting the matched_at field in the database.
	FieldMatchedAt = "matched_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the group in the database.
	Table = "groups"
)

// Columns holds all SQL columns for group fields.
var Columns = []string{
	FieldID,
	FieldConfigID,
	FieldPoolID,
	FieldMemberSessionIds,
	FieldTreatment,
	FieldMatchedAt,
	FieldStatus,
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
	// DefaultMatchedAt holds the default value on creation for the "matched_at" field.
	DefaultMatchedAt func() time.Time
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
)

// OrderOption defines the ordering options for the Group queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConfigID orders the results by the config_id field.
func ByConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfigID, opts...).ToFunc()
}

// ByPoolID orders the results by the pool_id field.
func ByPoolID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoolID, opts...).ToFunc()
}

// ByTreatment orders the results by the treatment field.
func ByTreatment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTreatment, opts...).ToFunc()
}

// ByMatchedAt orders the results by the matched_at field.
func ByMatchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
