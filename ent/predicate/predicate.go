// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// IdempotencyKey is the predicate function for idempotencykey builders.
type IdempotencyKey func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// StudyConfig is the predicate function for studyconfig builders.
type StudyConfig func(*sql.Selector)
