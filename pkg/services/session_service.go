package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"github.com/greenroomlab/greenroom/ent"
	entevent "github.com/greenroomlab/greenroom/ent/event"
	"github.com/greenroomlab/greenroom/ent/predicate"
	"github.com/greenroomlab/greenroom/ent/session"
	"github.com/greenroomlab/greenroom/pkg/assign"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/expr"
	"github.com/greenroomlab/greenroom/pkg/models"
)

// defaultRandomizeStateKey is where randomize stores its condition when
// the request names no state key.
const defaultRandomizeStateKey = "treatment"

// SessionService drives participant sessions through their page graph:
// start/resume, advance, state patches and telemetry events. All mutating
// operations are idempotent via client-supplied keys.
type SessionService struct {
	client      *ent.Client
	bus         *events.Bus
	configs     *ConfigService
	idempotency *IdempotencyService
	assigner    *assign.Assigner

	// forceAuth makes every config behave as requireAuth regardless of
	// its own flag (FORCE_AUTH env).
	forceAuth bool

	logger *slog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client, bus *events.Bus, configs *ConfigService, idempotency *IdempotencyService, assigner *assign.Assigner, forceAuth bool) *SessionService {
	return &SessionService{
		client:      client,
		bus:         bus,
		configs:     configs,
		idempotency: idempotency,
		assigner:    assigner,
		forceAuth:   forceAuth,
		logger:      slog.Default().With("component", "session_service"),
	}
}

// Start creates a session for the config, or resumes the caller's most
// recent one. A prior ended session blocks the caller from starting over
// (ErrSessionBlocked). userID is the authenticated principal, empty for
// anonymous callers.
func (s *SessionService) Start(httpCtx context.Context, req models.StartSessionRequest, userID string) (*models.StartSessionResponse, error) {
	cfg, err := s.configs.Get(httpCtx, req.ConfigID)
	if err != nil {
		return nil, err
	}

	if (cfg.RequireAuth || s.forceAuth) && userID == "" && req.Prolific == nil {
		return nil, ErrAuthRequired
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	prior, err := s.findResumable(ctx, req, userID)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		if prior.EndedAt != nil {
			return nil, ErrSessionBlocked
		}
		s.logger.Info("Resuming session",
			"session_id", prior.ID, "config_id", prior.ConfigID)
		return &models.StartSessionResponse{
			Status:          models.StartStatusResumed,
			SessionSnapshot: s.snapshot(prior, cfg.Graph),
		}, nil
	}

	create := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetConfigID(cfg.ID).
		SetCurrentPageID(cfg.Graph.InitialPageID).
		SetUserState(map[string]interface{}{})
	if userID != "" {
		create.SetUserID(userID)
	}
	if p := req.Prolific; p != nil {
		create.SetProlificPid(p.PID)
		if p.StudyID != "" {
			create.SetProlificStudyID(p.StudyID)
		}
		if p.SessionID != "" {
			create.SetProlificSessionID(p.SessionID)
		}
	}

	sess, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("Created session",
		"session_id", sess.ID, "config_id", sess.ConfigID)
	return &models.StartSessionResponse{
		Status:          models.StartStatusCreated,
		SessionSnapshot: s.snapshot(sess, cfg.Graph),
	}, nil
}

// findResumable returns the caller's newest session for the config,
// looked up by authenticated user first, then by Prolific PID.
func (s *SessionService) findResumable(ctx context.Context, req models.StartSessionRequest, userID string) (*ent.Session, error) {
	q := s.client.Session.Query().
		Where(session.ConfigIDEQ(req.ConfigID)).
		Order(ent.Desc(session.FieldCreatedAt))

	switch {
	case userID != "":
		q = q.Where(session.UserIDEQ(userID))
	case req.Prolific != nil && req.Prolific.PID != "":
		q = q.Where(session.ProlificPidEQ(req.Prolific.PID))
	default:
		return nil, nil
	}

	prior, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up prior session: %w", err)
	}
	return prior, nil
}

// Get returns the session snapshot with its current page resolved.
func (s *SessionService) Get(httpCtx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sess, cfg, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	snap := s.snapshot(sess, cfg.Graph)
	return &snap, nil
}

// Advance moves the session to the target page, either named directly
// or resolved from branch conditions against user_state. The target is
// not validated against the config's page set; an unknown target yields
// an empty placeholder page. Reaching a page flagged end sets endedAt.
func (s *SessionService) Advance(httpCtx context.Context, sessionID string, req models.AdvanceRequest) (*models.SessionSnapshot, error) {
	if req.Target == "" && len(req.Branches) == 0 {
		return nil, NewValidationError("target", "required")
	}
	if req.IdempotencyKey == "" {
		return nil, NewValidationError("idempotencyKey", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	fresh, err := s.idempotency.Reserve(ctx, fmt.Sprintf("advance:%s:%s", sessionID, req.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	if !fresh {
		snap, err := s.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		snap.Deduplicated = true
		return snap, nil
	}

	sess, cfg, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.EndedAt != nil {
		return nil, ErrSessionEnded
	}

	target := req.Target
	if target == "" {
		resolved, ok := expr.ResolveBranch(req.Branches, sess.UserState)
		if !ok {
			return nil, NewValidationError("branches", "no branch matched")
		}
		target = resolved
	}

	page := cfg.Graph.FindPage(target)
	update := s.client.Session.UpdateOneID(sessionID).
		SetCurrentPageID(target).
		SetUpdatedAt(time.Now())
	if page.End {
		update.SetEndedAt(time.Now())
	}

	sess, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to advance session: %w", err)
	}

	data := map[string]interface{}{"pageId": target}
	if sess.EndedAt != nil {
		data["endedAt"] = sess.EndedAt
	}
	s.bus.BroadcastToSession(sessionID, events.NewEvent(events.TypePageChange, data))

	snap := s.snapshot(sess, cfg.Graph)
	return &snap, nil
}

// UpdateState applies client-initiated user_state updates. Paths are
// dotted; reserved characters are rejected. No recursive merging.
func (s *SessionService) UpdateState(httpCtx context.Context, sessionID string, req models.UpdateStateRequest) (*models.UpdateStateResponse, error) {
	if len(req.Updates) == 0 {
		return nil, NewValidationError("updates", "required")
	}
	if req.IdempotencyKey == "" {
		return nil, NewValidationError("idempotencyKey", "required")
	}
	for path := range req.Updates {
		if err := validateStatePath(path); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	fresh, err := s.idempotency.Reserve(ctx, fmt.Sprintf("state:%s:%s", sessionID, req.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	if !fresh {
		return &models.UpdateStateResponse{Success: true, Deduplicated: true}, nil
	}

	if err := s.applyStateUpdates(ctx, sessionID, req.Updates, events.TypeUserStateChange); err != nil {
		return nil, err
	}
	return &models.UpdateStateResponse{Success: true}, nil
}

// PatchUserState applies internal state mutations (matchmaking, agent
// tools, randomize) and broadcasts state_updated per path. No
// idempotency key: callers are already serialized.
func (s *SessionService) PatchUserState(httpCtx context.Context, sessionID string, updates map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()
	return s.applyStateUpdates(ctx, sessionID, updates, events.TypeStateUpdated)
}

// applyStateUpdates loads the state bag, applies every path, persists,
// then broadcasts one event per path. The persisted write always precedes
// the broadcast.
func (s *SessionService) applyStateUpdates(ctx context.Context, sessionID string, updates map[string]interface{}, eventType string) error {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	state := sess.UserState
	if state == nil {
		state = make(map[string]interface{})
	}
	for path, value := range updates {
		setStatePath(state, path, value)
	}

	_, err = s.client.Session.UpdateOneID(sessionID).
		SetUserState(state).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user state: %w", err)
	}

	for path, value := range updates {
		s.bus.BroadcastToSession(sessionID, events.NewEvent(eventType, map[string]interface{}{
			"path":  path,
			"value": value,
		}))
	}
	return nil
}

// SubmitEvent appends a telemetry event for the session. Duplicate
// idempotency keys are reported as deduplicated, never as errors.
func (s *SessionService) SubmitEvent(httpCtx context.Context, sessionID string, req models.SubmitEventRequest) (*models.SubmitEventResponse, error) {
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	data := req.Data
	if data == nil {
		data = map[string]interface{}{}
	}

	create := s.client.Event.Create().
		SetID(uuid.New().String()).
		SetType(req.Type).
		SetSessionID(sess.ID).
		SetConfigID(sess.ConfigID).
		SetPageID(sess.CurrentPageID).
		SetData(data)
	if req.ComponentType != "" {
		create.SetComponentType(req.ComponentType)
	}
	if req.ComponentID != "" {
		create.SetComponentID(req.ComponentID)
	}
	if req.Timestamp != nil {
		create.SetTimestamp(*req.Timestamp)
	}
	if req.IdempotencyKey != "" {
		create.SetIdempotencyKey(req.IdempotencyKey)
	}

	evt, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return &models.SubmitEventResponse{EventID: "duplicate", Deduplicated: true}, nil
		}
		return nil, fmt.Errorf("failed to record event: %w", err)
	}
	return &models.SubmitEventResponse{EventID: evt.ID}, nil
}

// Randomize assigns a condition and stores it under the state key.
// Idempotent per (session, stateKey): an existing value short-circuits.
func (s *SessionService) Randomize(httpCtx context.Context, sessionID string, req models.RandomizeRequest) (*models.RandomizeResponse, error) {
	stateKey := req.StateKey
	if stateKey == "" {
		stateKey = defaultRandomizeStateKey
	}
	if err := validateStatePath(stateKey); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if existing, ok := getStatePath(sess.UserState, stateKey); ok {
		condition, _ := existing.(string)
		return &models.RandomizeResponse{Condition: condition, Existing: true}, nil
	}

	balanceKey := sess.ConfigID + ":" + stateKey
	condition, err := s.assigner.Assign(req.AssignmentType, req.Conditions, balanceKey)
	if err != nil {
		return nil, NewValidationError("assignmentType", err.Error())
	}

	if err := s.applyStateUpdates(ctx, sessionID, map[string]interface{}{stateKey: condition}, events.TypeStateUpdated); err != nil {
		return nil, err
	}
	return &models.RandomizeResponse{Condition: condition}, nil
}

// ResolveGroupMembers returns the ids of sessions whose user_state
// carries the group id. Implements events.GroupResolver.
func (s *SessionService) ResolveGroupMembers(httpCtx context.Context, groupID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ids, err := s.client.Session.Query().
		Where(predicate.Session(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueEQ(session.FieldUserState, groupID, sqljson.Path("chat_group_id")))
		})).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve group members: %w", err)
	}
	return ids, nil
}

// ListSessionEvents returns a session's events in recording order. Used
// by researcher-side export tooling.
func (s *SessionService) ListSessionEvents(httpCtx context.Context, sessionID string) ([]*ent.Event, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.Event.Query().
		Where(entevent.SessionIDEQ(sessionID)).
		Order(ent.Asc(entevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return rows, nil
}

// load fetches a session together with its config.
func (s *SessionService) load(ctx context.Context, sessionID string) (*ent.Session, *ent.StudyConfig, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}
	cfg, err := s.configs.Get(ctx, sess.ConfigID)
	if err != nil {
		return nil, nil, err
	}
	return sess, cfg, nil
}

func (s *SessionService) snapshot(sess *ent.Session, graph models.Graph) models.SessionSnapshot {
	state := sess.UserState
	if state == nil {
		state = map[string]interface{}{}
	}
	return models.SessionSnapshot{
		SessionID:     sess.ID,
		ConfigID:      sess.ConfigID,
		CurrentPageID: sess.CurrentPageID,
		Page:          graph.FindPage(sess.CurrentPageID),
		UserState:     state,
		EndedAt:       sess.EndedAt,
	}
}
