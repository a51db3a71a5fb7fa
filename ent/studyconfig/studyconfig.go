// Code generated by ent, DO NOT EDIT.

package studyconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studyconfig type in the database.
	Label = "study_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "config_id"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldRequireAuth holds the string denoting the require_auth field in the database.
	FieldRequireAuth = "require_auth"
	// FieldGraph holds the string denoting the graph field in the database.
	FieldGraph = "graph"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the studyconfig in the database.
	Table = "configs"
)

// Columns holds all SQL columns for studyconfig fields.
var Columns = []string{
	FieldID,
	FieldOwner,
	FieldRequireAuth,
	FieldGraph,
	FieldCreatedAt,
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
	// DefaultRequireAuth holds the default value on creation for the "require_auth" field.
	DefaultRequireAuth bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the StudyConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByRequireAuth orders the results by the require_auth field.
func ByRequireAuth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireAuth, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
