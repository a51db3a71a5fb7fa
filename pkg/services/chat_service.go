package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/greenroomlab/greenroom/ent"
	"github.com/greenroomlab/greenroom/ent/chatmessage"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/models"
)

// AgentTrigger starts agent runs for a group. Implemented by the agent
// runner; set after construction to avoid a dependency cycle.
type AgentTrigger interface {
	TriggerAgents(groupID, sessionID string, requireHistory bool)
}

// ChatService handles multi-party chat: membership checks, message
// persistence, fan-out, and agent trigger dispatch.
type ChatService struct {
	client   *ent.Client
	bus      *events.Bus
	sessions *SessionService

	agents AgentTrigger

	logger *slog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(client *ent.Client, bus *events.Bus, sessions *SessionService) *ChatService {
	return &ChatService{
		client:   client,
		bus:      bus,
		sessions: sessions,
		logger:   slog.Default().With("component", "chat_service"),
	}
}

// SetAgentTrigger wires the agent runner. Called once during startup.
func (s *ChatService) SetAgentTrigger(agents AgentTrigger) {
	s.agents = agents
}

// VerifyMembership checks that the session may address the group: either
// the session is its own group (solo AI chat) or its user_state carries
// the group id.
func (s *ChatService) VerifyMembership(httpCtx context.Context, groupID, sessionID string) error {
	if sessionID == "" {
		return NewValidationError("sessionId", "required")
	}
	if sessionID == groupID {
		return nil
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrForbidden
		}
		return fmt.Errorf("failed to get session: %w", err)
	}
	if gid, _ := sess.UserState["chat_group_id"].(string); gid != groupID {
		return ErrForbidden
	}
	return nil
}

// Send persists a participant message, fans it out to the group, and
// asynchronously triggers agent responses.
func (s *ChatService) Send(httpCtx context.Context, groupID string, req models.SendMessageRequest) (*models.SendMessageResponse, error) {
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	senderType := req.SenderType
	if senderType == "" {
		senderType = models.SenderParticipant
	}
	if senderType != models.SenderParticipant && senderType != models.SenderSystem {
		return nil, NewValidationError("senderType", "must be participant or system")
	}

	if err := s.VerifyMembership(httpCtx, groupID, req.SessionID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetGroupID(groupID).
		SetSenderID(req.SessionID).
		SetSenderType(chatmessage.SenderType(senderType)).
		SetContent(req.Content).
		SetCreatedAt(time.Now())
	if req.IdempotencyKey != "" {
		create.SetIdempotencyKey(req.IdempotencyKey)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) && req.IdempotencyKey != "" {
			// Replay: return the prior record.
			prior, qerr := s.client.ChatMessage.Query().
				Where(chatmessage.IdempotencyKeyEQ(req.IdempotencyKey)).
				Only(ctx)
			if qerr != nil {
				return nil, fmt.Errorf("failed to load deduplicated message: %w", qerr)
			}
			return &models.SendMessageResponse{
				MessageID:    prior.ID,
				CreatedAt:    prior.CreatedAt,
				Deduplicated: true,
			}, nil
		}
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	s.broadcastMessage(ctx, msg)

	// Agent responses run in the background with their own deadline.
	if s.agents != nil {
		go s.agents.TriggerAgents(groupID, req.SessionID, true)
	}

	return &models.SendMessageResponse{MessageID: msg.ID, CreatedAt: msg.CreatedAt}, nil
}

// AddAgentMessage persists an agent's final reply and fans it out.
// Called by the agent runner after a stream completes.
func (s *ChatService) AddAgentMessage(httpCtx context.Context, groupID, senderID, content string) (*ent.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	msg, err := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetGroupID(groupID).
		SetSenderID(senderID).
		SetSenderType(chatmessage.SenderTypeAgent).
		SetContent(content).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist agent message: %w", err)
	}

	s.broadcastMessage(ctx, msg)
	return msg, nil
}

// History returns the group's messages ordered by creation time.
func (s *ChatService) History(httpCtx context.Context, groupID, sessionID string) ([]models.ChatMessageView, error) {
	if err := s.VerifyMembership(httpCtx, groupID, sessionID); err != nil {
		return nil, err
	}

	msgs, err := s.GroupMessages(httpCtx, groupID)
	if err != nil {
		return nil, err
	}

	views := make([]models.ChatMessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, models.ChatMessageView{
			MessageID:  m.ID,
			GroupID:    m.GroupID,
			SenderID:   m.SenderID,
			SenderType: string(m.SenderType),
			Content:    m.Content,
			CreatedAt:  m.CreatedAt,
		})
	}
	return views, nil
}

// GroupMessages returns raw message rows in history order. Used by the
// agent runner to assemble LLM context without a membership check.
func (s *ChatService) GroupMessages(httpCtx context.Context, groupID string) ([]*ent.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	// Secondary sort on id makes equal-timestamp ordering stable.
	msgs, err := s.client.ChatMessage.Query().
		Where(chatmessage.GroupIDEQ(groupID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt, chatmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return msgs, nil
}

// StartAgents triggers agent runs without requiring prior history — the
// first-message path when a chat page mounts.
func (s *ChatService) StartAgents(httpCtx context.Context, groupID, sessionID string) error {
	if err := s.VerifyMembership(httpCtx, groupID, sessionID); err != nil {
		return err
	}
	if s.agents == nil {
		s.logger.Warn("No agent runner wired; start-agents is a no-op", "group_id", groupID)
		return nil
	}
	go s.agents.TriggerAgents(groupID, sessionID, false)
	return nil
}

func (s *ChatService) broadcastMessage(ctx context.Context, msg *ent.ChatMessage) {
	s.bus.BroadcastToGroup(ctx, msg.GroupID, events.NewEvent(events.TypeChatMessage, map[string]interface{}{
		"messageId":  msg.ID,
		"senderId":   msg.SenderID,
		"senderType": string(msg.SenderType),
		"content":    msg.Content,
		"createdAt":  msg.CreatedAt,
	}))
}
