// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/greenroomlab/greenroom/ent/chatmessage"
	"github.com/greenroomlab/greenroom/ent/event"
	"github.com/greenroomlab/greenroom/ent/group"
	"github.com/greenroomlab/greenroom/ent/idempotencykey"
	"github.com/greenroomlab/greenroom/ent/schema"
	"github.com/greenroomlab/greenroom/ent/session"
	"github.com/greenroomlab/greenroom/ent/studyconfig"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[6].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[10].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescMatchedAt is the schema descriptor for matched_at field.
	groupDescMatchedAt := groupFields[5].Descriptor()
	// group.DefaultMatchedAt holds the default value on creation for the matched_at field.
	group.DefaultMatchedAt = groupDescMatchedAt.Default.(func() time.Time)
	// groupDescStatus is the schema descriptor for status field.
	groupDescStatus := groupFields[6].Descriptor()
	// group.DefaultStatus holds the default value on creation for the status field.
	group.DefaultStatus = groupDescStatus.Default.(string)
	idempotencykeyFields := schema.IdempotencyKey{}.Fields()
	_ = idempotencykeyFields
	// idempotencykeyDescCreatedAt is the schema descriptor for created_at field.
	idempotencykeyDescCreatedAt := idempotencykeyFields[1].Descriptor()
	// idempotencykey.DefaultCreatedAt holds the default value on creation for the created_at field.
	idempotencykey.DefaultCreatedAt = idempotencykeyDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[9].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[10].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	studyconfigFields := schema.StudyConfig{}.Fields()
	_ = studyconfigFields
	// studyconfigDescRequireAuth is the schema descriptor for require_auth field.
	studyconfigDescRequireAuth := studyconfigFields[2].Descriptor()
	// studyconfig.DefaultRequireAuth holds the default value on creation for the require_auth field.
	studyconfig.DefaultRequireAuth = studyconfigDescRequireAuth.Default.(bool)
	// studyconfigDescCreatedAt is the schema descriptor for created_at field.
	studyconfigDescCreatedAt := studyconfigFields[4].Descriptor()
	// studyconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyconfig.DefaultCreatedAt = studyconfigDescCreatedAt.Default.(func() time.Time)
}
