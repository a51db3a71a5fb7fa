package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/greenroomlab/greenroom/ent"
)

// GroupService persists matched groups. Groups are created once when a
// pool fills and are never resized.
type GroupService struct {
	client *ent.Client
}

// NewGroupService creates a new GroupService
func NewGroupService(client *ent.Client) *GroupService {
	return &GroupService{client: client}
}

// Create records a newly formed group
func (s *GroupService) Create(httpCtx context.Context, configID, poolID string, memberSessionIDs []string, treatment string) (*ent.Group, error) {
	if len(memberSessionIDs) == 0 {
		return nil, NewValidationError("memberSessionIds", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	grp, err := s.client.Group.Create().
		SetID(uuid.New().String()).
		SetConfigID(configID).
		SetPoolID(poolID).
		SetMemberSessionIds(memberSessionIDs).
		SetTreatment(treatment).
		SetMatchedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return grp, nil
}

// Get loads a group by id
func (s *GroupService) Get(httpCtx context.Context, groupID string) (*ent.Group, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	grp, err := s.client.Group.Get(ctx, groupID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return grp, nil
}
