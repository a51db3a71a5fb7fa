// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/greenroomlab/greenroom/ent"
	"github.com/greenroomlab/greenroom/ent/idempotencykey"
)

// IdempotencyService reserves client-supplied idempotency keys for
// advance and state mutations. A reservation is a plain insert guarded
// by the primary key; a constraint violation means the key was already
// used and the caller should replay the prior outcome.
type IdempotencyService struct {
	client *ent.Client
}

// NewIdempotencyService creates a new IdempotencyService
func NewIdempotencyService(client *ent.Client) *IdempotencyService {
	return &IdempotencyService{client: client}
}

// Reserve attempts to claim the key. Returns true when this caller is
// first, false when the key is already reserved.
func (s *IdempotencyService) Reserve(httpCtx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	_, err := s.client.IdempotencyKey.Create().
		SetID(key).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}
	return true, nil
}

// DeleteOlderThan removes reservations created before the cutoff. Used
// by the retention loop so replays after the TTL look like first-time
// requests.
func (s *IdempotencyService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.IdempotencyKey.Delete().
		Where(idempotencykey.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired idempotency keys: %w", err)
	}
	return n, nil
}
