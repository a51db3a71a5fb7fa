// Package agent runs LLM agents against chat groups. A trigger resolves
// the agent roster from the session's current chat page, replays the
// group history, streams the completion to subscribers and persists the
// final reply. At most one run is active per group.
package agent

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/llm"
	"github.com/greenroomlab/greenroom/pkg/models"
	"github.com/greenroomlab/greenroom/pkg/services"
)

// runTimeout bounds one agent's stream, tool dispatch included.
const runTimeout = 60 * time.Second

// errorReply is persisted as the agent's message when its stream fails,
// so participants are not left staring at a silent chat.
const errorReply = "Sorry, I ran into a problem and couldn't respond. Please try again."

// Runner implements services.AgentTrigger. Runs are single-flight per
// group: a trigger that arrives while a group's run is active is
// dropped, and the participant's message is picked up by the next run
// through history replay.
type Runner struct {
	sessions *services.SessionService
	chats    *services.ChatService
	bus      *events.Bus
	llm      llm.Streamer

	mu      sync.RWMutex
	active  map[string]context.CancelFunc // groupID → cancel
	stopped bool
	wg      sync.WaitGroup

	logger *slog.Logger
}

// NewRunner creates a new Runner
func NewRunner(sessions *services.SessionService, chats *services.ChatService, bus *events.Bus, streamer llm.Streamer) *Runner {
	return &Runner{
		sessions: sessions,
		chats:    chats,
		bus:      bus,
		llm:      streamer,
		active:   make(map[string]context.CancelFunc),
		logger:   slog.Default().With("component", "agent_runner"),
	}
}

// Stop cancels all active runs and waits for them to drain. New triggers
// are rejected after Stop.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	for groupID, cancel := range r.active {
		r.logger.Info("Cancelling agent run on shutdown", "group_id", groupID)
		cancel()
	}
	r.mu.Unlock()

	r.wg.Wait()
	r.logger.Info("Agent runner stopped")
}

// TriggerAgents starts the group's agents in the calling goroutine.
// sessionID is the session whose current page defines the agent roster.
// With requireHistory set, agents stay silent until the group has at
// least one message (the send path); without it they may open the
// conversation (the start-agents path).
func (r *Runner) TriggerAgents(groupID, sessionID string, requireHistory bool) {
	ctx, ok := r.acquire(groupID)
	if !ok {
		return
	}
	defer r.release(groupID)

	r.run(ctx, groupID, sessionID, requireHistory)
}

// acquire claims the group's run slot and returns a cancellable context
// detached from any HTTP request. Returns false when the group already
// has an active run or the runner is stopping.
func (r *Runner) acquire(groupID string) (context.Context, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return nil, false
	}
	if _, running := r.active[groupID]; running {
		return nil, false
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.active[groupID] = cancel
	r.wg.Add(1)
	return ctx, true
}

func (r *Runner) release(groupID string) {
	r.mu.Lock()
	if cancel, ok := r.active[groupID]; ok {
		cancel()
		delete(r.active, groupID)
	}
	r.mu.Unlock()
	r.wg.Done()
}

func (r *Runner) run(ctx context.Context, groupID, sessionID string, requireHistory bool) {
	snap, err := r.sessions.Get(ctx, sessionID)
	if err != nil {
		r.logger.Error("Failed to load session for agent run",
			"session_id", sessionID, "error", err)
		return
	}

	specs := agentsForPage(snap.Page)
	if len(specs) == 0 {
		return
	}

	history, err := r.loadHistory(ctx, groupID)
	if err != nil {
		r.logger.Error("Failed to load chat history",
			"group_id", groupID, "error", err)
		return
	}
	if requireHistory && len(history) == 0 {
		return
	}

	// Nobody is listening; skip the run rather than burn tokens. The
	// next trigger after a reconnect replays the full history anyway.
	if r.bus.SubscriberCount(sessionID) == 0 {
		r.logger.Info("Skipping agent run with no subscribers",
			"group_id", groupID, "session_id", sessionID)
		return
	}

	for _, spec := range specs {
		select {
		case <-ctx.Done():
			return
		default:
		}
		reply := r.runAgent(ctx, spec, groupID, sessionID, history)
		if reply != "" {
			// Later agents on the same page see earlier replies.
			history = append(history, llm.Message{Role: llm.RoleAssistant, Content: reply})
		}
	}
}

// runAgent streams one completion, fanning text deltas to the group as
// they arrive, and persists the final reply. Returns the persisted text,
// empty when the agent said nothing.
func (r *Runner) runAgent(parent context.Context, spec agentSpec, groupID, sessionID string, history []llm.Message) string {
	ctx, cancel := context.WithTimeout(parent, runTimeout)
	defer cancel()

	streamID := uuid.New().String()
	senderID := "agent:" + spec.ID

	stream, err := r.llm.Stream(ctx, llm.Request{
		Model:           spec.Model,
		System:          spec.System,
		Tools:           spec.Tools,
		ReasoningEffort: spec.ReasoningEffort,
		MaxTokens:       spec.MaxTokens,
	}, history)
	if err != nil {
		r.logger.Error("Failed to open completion stream",
			"agent", spec.ID, "model", spec.Model, "error", err)
		r.persistReply(groupID, senderID, errorReply)
		return ""
	}

	var fullText string
	var toolCalls []llm.StreamEvent
	failed := false

	for evt := range stream {
		switch evt.Type {
		case llm.EventTextDelta:
			fullText += evt.Text
			r.bus.BroadcastToGroup(ctx, groupID, events.NewEvent(events.TypeChatMessageDelta, map[string]interface{}{
				"streamId":   streamID,
				"groupId":    groupID,
				"senderId":   senderID,
				"senderType": models.SenderAgent,
				"delta":      evt.Text,
				"fullText":   fullText,
			}))
		case llm.EventToolCall:
			toolCalls = append(toolCalls, evt)
		case llm.EventError:
			r.logger.Error("Agent stream failed",
				"agent", spec.ID, "model", spec.Model, "error", evt.Text)
			failed = true
		case llm.EventDone:
			fullText = evt.Text
		}
	}

	if ctx.Err() != nil {
		r.logger.Warn("Agent run cancelled",
			"agent", spec.ID, "group_id", groupID, "error", ctx.Err())
		return ""
	}
	if failed {
		r.persistReply(groupID, senderID, errorReply)
		return ""
	}

	reply := strings.TrimSpace(fullText)
	if reply != "" {
		r.persistReply(groupID, senderID, reply)
	}

	for _, call := range toolCalls {
		r.logToolCall(groupID, sessionID, spec.ID, call)
		r.dispatchTool(groupID, spec.ID, call)
	}
	return reply
}

// persistReply writes the agent's final message with its own deadline so
// a consumed run budget cannot lose the reply.
func (r *Runner) persistReply(groupID, senderID, content string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.chats.AddAgentMessage(ctx, groupID, senderID, content); err != nil {
		r.logger.Error("Failed to persist agent reply",
			"group_id", groupID, "sender_id", senderID, "error", err)
	}
}

// logToolCall records the call in the triggering session's event log.
// Recording failures are logged and swallowed; the dispatch still runs.
func (r *Runner) logToolCall(groupID, sessionID, agentID string, call llm.StreamEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.sessions.SubmitEvent(ctx, sessionID, models.SubmitEventRequest{
		Type:          "agent_tool_call",
		ComponentType: "chat",
		Data: map[string]interface{}{
			"agentId": agentID,
			"groupId": groupID,
			"tool":    call.Name,
			"args":    call.Args,
		},
		IdempotencyKey: uuid.New().String(),
	})
	if err != nil {
		r.logger.Error("Failed to record tool call event",
			"group_id", groupID, "tool", call.Name, "error", err)
	}
}

// dispatchTool applies a tool call's side effects to the group's member
// sessions. Unknown tools are logged and dropped.
func (r *Runner) dispatchTool(groupID, agentID string, call llm.StreamEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch call.Name {
	case "end_chat":
		updates := map[string]interface{}{"chat_ended": true}
		for k, v := range call.Args {
			updates[k] = v
		}
		r.patchMembers(ctx, groupID, updates)
		r.bus.BroadcastToGroup(ctx, groupID, events.NewEvent(events.TypeChatEnded, map[string]interface{}{
			"groupId": groupID,
			"agentId": agentID,
		}))

	case "assign_state":
		path, _ := call.Args["path"].(string)
		if path == "" {
			r.logger.Warn("assign_state call without path", "group_id", groupID, "agent", agentID)
			return
		}
		r.patchMembers(ctx, groupID, map[string]interface{}{path: call.Args["value"]})

	default:
		r.logger.Warn("Dropping unknown tool call",
			"tool", call.Name, "group_id", groupID, "agent", agentID)
	}
}

// patchMembers applies the updates to every member session of the group.
func (r *Runner) patchMembers(ctx context.Context, groupID string, updates map[string]interface{}) {
	members, err := r.sessions.ResolveGroupMembers(ctx, groupID)
	if err != nil {
		r.logger.Error("Failed to resolve group members",
			"group_id", groupID, "error", err)
		return
	}
	// A solo chat's group id is the session id itself and owns no
	// chat_group_id marker.
	found := false
	for _, id := range members {
		if id == groupID {
			found = true
			break
		}
	}
	if !found {
		members = append(members, groupID)
	}

	for _, sid := range members {
		if err := r.sessions.PatchUserState(ctx, sid, updates); err != nil {
			r.logger.Error("Failed to patch member state",
				"group_id", groupID, "session_id", sid, "error", err)
		}
	}
}

// loadHistory converts the group's messages into completion turns.
// Participant and system messages become user turns, agent messages
// assistant turns.
func (r *Runner) loadHistory(ctx context.Context, groupID string) ([]llm.Message, error) {
	msgs, err := r.chats.GroupMessages(ctx, groupID)
	if err != nil {
		return nil, err
	}
	history := make([]llm.Message, 0, len(msgs))
	for _, m := range msgs {
		role := llm.RoleUser
		if string(m.SenderType) == models.SenderAgent {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: m.Content})
	}
	return history, nil
}
