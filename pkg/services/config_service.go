package services

import (
	"context"
	"fmt"
	"time"

	"github.com/greenroomlab/greenroom/ent"
	"github.com/greenroomlab/greenroom/pkg/models"
)

// ConfigService provides read access to study configs. Configs are
// uploaded and compiled elsewhere; the runtime only loads them.
type ConfigService struct {
	client *ent.Client
}

// NewConfigService creates a new ConfigService
func NewConfigService(client *ent.Client) *ConfigService {
	return &ConfigService{client: client}
}

// Get loads a config by id
func (s *ConfigService) Get(httpCtx context.Context, configID string) (*ent.StudyConfig, error) {
	if configID == "" {
		return nil, NewValidationError("configId", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	cfg, err := s.client.StudyConfig.Get(ctx, configID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	return cfg, nil
}

// Create stores a compiled config. Used by fixtures and the upload
// surface that lives outside this runtime.
func (s *ConfigService) Create(httpCtx context.Context, configID, owner string, requireAuth bool, graph models.Graph) (*ent.StudyConfig, error) {
	if configID == "" {
		return nil, NewValidationError("configId", "required")
	}
	if graph.InitialPageID == "" {
		return nil, NewValidationError("graph.initialPageId", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	cfg, err := s.client.StudyConfig.Create().
		SetID(configID).
		SetOwner(owner).
		SetRequireAuth(requireAuth).
		SetGraph(graph).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}
	return cfg, nil
}
