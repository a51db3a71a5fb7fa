package agent

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroomlab/greenroom/pkg/assign"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/llm"
	"github.com/greenroomlab/greenroom/pkg/models"
	"github.com/greenroomlab/greenroom/pkg/services"
	testdb "github.com/greenroomlab/greenroom/test/database"
)

// fakeStreamer replays a scripted event sequence and records the
// history it was given.
type fakeStreamer struct {
	mu      sync.Mutex
	calls   int
	history []llm.Message
	script  []llm.StreamEvent
	release chan struct{} // when set, the stream waits before replaying
}

func (f *fakeStreamer) Stream(ctx context.Context, req llm.Request, history []llm.Message) (<-chan llm.StreamEvent, error) {
	f.mu.Lock()
	f.calls++
	f.history = append([]llm.Message(nil), history...)
	script := f.script
	f.mu.Unlock()

	out := make(chan llm.StreamEvent, len(script)+1)
	go func() {
		defer close(out)
		if f.release != nil {
			select {
			case <-f.release:
			case <-ctx.Done():
				return
			}
		}
		for _, evt := range script {
			select {
			case out <- evt:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (f *fakeStreamer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type runnerEnv struct {
	bus      *events.Bus
	sessions *services.SessionService
	chats    *services.ChatService
	runner   *Runner
	streamer *fakeStreamer
}

func newRunnerEnv(t *testing.T, script []llm.StreamEvent) *runnerEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	bus := events.NewBus()
	t.Cleanup(bus.Stop)

	configs := services.NewConfigService(dbClient.Client)
	idempotency := services.NewIdempotencyService(dbClient.Client)
	assigner := assign.NewAssigner()
	sessions := services.NewSessionService(dbClient.Client, bus, configs, idempotency, assigner, false)
	chats := services.NewChatService(dbClient.Client, bus, sessions)
	bus.SetGroupResolver(sessions)

	streamer := &fakeStreamer{script: script}
	runner := NewRunner(sessions, chats, bus, streamer)
	t.Cleanup(runner.Stop)
	chats.SetAgentTrigger(runner)

	graph := models.Graph{
		InitialPageID: "chat",
		Pages: map[string]models.Page{
			"chat": {
				ID: "chat",
				Components: []models.Component{{
					Type: "chat",
					ID:   "chat-1",
					Props: map[string]interface{}{
						"agents": []interface{}{
							map[string]interface{}{
								"id":     "mediator",
								"model":  "gpt-4o",
								"system": "You mediate.",
							},
						},
					},
				}},
			},
		},
	}
	_, err := configs.Create(context.Background(), "agent-study", "researcher", false, graph)
	require.NoError(t, err)

	return &runnerEnv{bus: bus, sessions: sessions, chats: chats, runner: runner, streamer: streamer}
}

// startSession creates a session on the agent config and opens one
// subscriber so the zero-subscriber gate passes.
func (e *runnerEnv) startSession(t *testing.T) (string, *events.Subscriber) {
	t.Helper()
	resp, err := e.sessions.Start(context.Background(), models.StartSessionRequest{ConfigID: "agent-study"}, "")
	require.NoError(t, err)
	sub := e.bus.Subscribe(resp.SessionID)
	t.Cleanup(func() { e.bus.Unsubscribe(sub) })
	return resp.SessionID, sub
}

func recvEvent(t *testing.T, sub *events.Subscriber, wantType string) events.Event {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case evt, ok := <-sub.Events():
			require.True(t, ok, "subscriber closed while waiting for %s", wantType)
			if evt.Type == wantType {
				return evt
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s event", wantType)
		}
	}
}

func TestRunnerStreamsAndPersistsReply(t *testing.T) {
	env := newRunnerEnv(t, []llm.StreamEvent{
		{Type: llm.EventTextDelta, Text: "Hel"},
		{Type: llm.EventTextDelta, Text: "lo"},
		{Type: llm.EventDone, Text: "Hello"},
	})
	sid, sub := env.startSession(t)
	ctx := context.Background()

	// The participant's message triggers the run through the send path.
	_, err := env.chats.Send(ctx, sid, models.SendMessageRequest{SessionID: sid, Content: "hi"})
	require.NoError(t, err)

	delta := recvEvent(t, sub, events.TypeChatMessageDelta)
	assert.Equal(t, "Hel", delta.Data["delta"])
	assert.Equal(t, "agent:mediator", delta.Data["senderId"])
	assert.NotEmpty(t, delta.Data["streamId"])

	delta = recvEvent(t, sub, events.TypeChatMessageDelta)
	assert.Equal(t, "lo", delta.Data["delta"])
	assert.Equal(t, "Hello", delta.Data["fullText"])

	// The final message retires the streaming bubble.
	final := recvEvent(t, sub, events.TypeChatMessage)
	assert.Equal(t, "Hello", final.Data["content"])
	assert.Equal(t, "agent", final.Data["senderType"])

	msgs, err := env.chats.History(ctx, sid, sid)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Hello", msgs[1].Content)

	// The agent saw the participant's message as a user turn.
	env.streamer.mu.Lock()
	history := env.streamer.history
	env.streamer.mu.Unlock()
	require.Len(t, history, 1)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "hi"}, history[0])
}

func TestRunnerRequireHistoryGate(t *testing.T) {
	env := newRunnerEnv(t, []llm.StreamEvent{
		{Type: llm.EventDone, Text: "unsolicited"},
	})
	sid, _ := env.startSession(t)

	// Send-path semantics with no history: agents stay silent.
	env.runner.TriggerAgents(sid, sid, true)
	assert.Equal(t, 0, env.streamer.callCount())

	// The start-agents path may open the conversation.
	env.runner.TriggerAgents(sid, sid, false)
	assert.Equal(t, 1, env.streamer.callCount())

	msgs, err := env.chats.History(context.Background(), sid, sid)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "unsolicited", msgs[0].Content)
}

func TestRunnerSkipsWithoutSubscribers(t *testing.T) {
	env := newRunnerEnv(t, []llm.StreamEvent{
		{Type: llm.EventDone, Text: "nobody home"},
	})
	resp, err := env.sessions.Start(context.Background(), models.StartSessionRequest{ConfigID: "agent-study"}, "")
	require.NoError(t, err)

	env.runner.TriggerAgents(resp.SessionID, resp.SessionID, false)
	assert.Equal(t, 0, env.streamer.callCount())
}

func TestRunnerToolDispatch(t *testing.T) {
	env := newRunnerEnv(t, []llm.StreamEvent{
		{Type: llm.EventToolCall, Name: "assign_state", Args: map[string]interface{}{"path": "score", "value": float64(7)}},
		{Type: llm.EventToolCall, Name: "end_chat", Args: map[string]interface{}{"deal_reached": true}},
		{Type: llm.EventToolCall, Name: "launch_rockets", Args: map[string]interface{}{}},
		{Type: llm.EventDone, Text: "We're done here."},
	})
	sid, sub := env.startSession(t)
	ctx := context.Background()

	env.runner.TriggerAgents(sid, sid, false)

	recvEvent(t, sub, events.TypeChatEnded)

	snap, err := env.sessions.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, float64(7), snap.UserState["score"])
	assert.Equal(t, true, snap.UserState["chat_ended"])
	assert.Equal(t, true, snap.UserState["deal_reached"])

	// Each call is recorded in the event log; the unknown tool is
	// logged but dispatches nothing.
	rows, err := env.sessions.ListSessionEvents(ctx, sid)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, "agent_tool_call", row.Type)
	}
}

func TestRunnerStreamErrorPersistsApology(t *testing.T) {
	env := newRunnerEnv(t, []llm.StreamEvent{
		{Type: llm.EventTextDelta, Text: "I was about to"},
		{Type: llm.EventError, Text: "rate limited"},
	})
	sid, _ := env.startSession(t)

	env.runner.TriggerAgents(sid, sid, false)

	msgs, err := env.chats.History(context.Background(), sid, sid)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, errorReply, msgs[0].Content)
	assert.Equal(t, models.SenderAgent, msgs[0].SenderType)
}

func TestRunnerSingleFlightPerGroup(t *testing.T) {
	env := newRunnerEnv(t, []llm.StreamEvent{
		{Type: llm.EventDone, Text: "slow reply"},
	})
	env.streamer.release = make(chan struct{})
	sid, _ := env.startSession(t)

	started := make(chan struct{})
	go func() {
		close(started)
		env.runner.TriggerAgents(sid, sid, false)
	}()
	<-started

	// Wait for the first run to claim the slot.
	require.Eventually(t, func() bool {
		env.runner.mu.RLock()
		_, active := env.runner.active[sid]
		env.runner.mu.RUnlock()
		return active
	}, 2*time.Second, 10*time.Millisecond)

	// A second trigger while the run is active is a no-op.
	env.runner.TriggerAgents(sid, sid, false)
	assert.Equal(t, 1, env.streamer.callCount())

	close(env.streamer.release)

	require.Eventually(t, func() bool {
		env.runner.mu.RLock()
		_, active := env.runner.active[sid]
		env.runner.mu.RUnlock()
		return !active
	}, 2*time.Second, 10*time.Millisecond)
}
