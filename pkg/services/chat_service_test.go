package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroomlab/greenroom/ent/chatmessage"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/models"
)

// startChatSession creates a session and, when groupID is non-empty,
// marks it a member of that group.
func startChatSession(t *testing.T, env *testEnv, configID, groupID string) string {
	t.Helper()
	ctx := context.Background()
	start, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: configID}, "")
	require.NoError(t, err)
	if groupID != "" {
		require.NoError(t, env.sessions.PatchUserState(ctx, start.SessionID, map[string]interface{}{
			"chat_group_id": groupID,
		}))
	}
	return start.SessionID
}

func TestVerifyMembership(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "chat-study", false)
	ctx := context.Background()

	member := startChatSession(t, env, "chat-study", "grp-1")
	outsider := startChatSession(t, env, "chat-study", "")

	assert.NoError(t, env.chats.VerifyMembership(ctx, "grp-1", member))

	// Solo chat: the session addresses itself as the group.
	assert.NoError(t, env.chats.VerifyMembership(ctx, outsider, outsider))

	assert.ErrorIs(t, env.chats.VerifyMembership(ctx, "grp-1", outsider), ErrForbidden)
	assert.ErrorIs(t, env.chats.VerifyMembership(ctx, "grp-1", "ghost-session"), ErrForbidden)

	err := env.chats.VerifyMembership(ctx, "grp-1", "")
	assert.True(t, IsValidationError(err))
}

func TestSendMessage(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "chat-study", false)
	ctx := context.Background()

	alice := startChatSession(t, env, "chat-study", "grp-send")
	bob := startChatSession(t, env, "chat-study", "grp-send")

	subBob := env.bus.Subscribe(bob)
	t.Cleanup(func() { env.bus.Unsubscribe(subBob) })

	t.Run("persists and fans out to the group", func(t *testing.T) {
		resp, err := env.chats.Send(ctx, "grp-send", models.SendMessageRequest{
			SessionID: alice,
			Content:   "hello everyone",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.MessageID)
		assert.False(t, resp.Deduplicated)

		evt := recvEvent(t, subBob, events.TypeChatMessage)
		assert.Equal(t, "hello everyone", evt.Data["content"])
		assert.Equal(t, alice, evt.Data["senderId"])
		assert.Equal(t, "participant", evt.Data["senderType"])
	})

	t.Run("replay with idempotency key returns prior message", func(t *testing.T) {
		first, err := env.chats.Send(ctx, "grp-send", models.SendMessageRequest{
			SessionID:      alice,
			Content:        "only once",
			IdempotencyKey: "msg-1",
		})
		require.NoError(t, err)

		second, err := env.chats.Send(ctx, "grp-send", models.SendMessageRequest{
			SessionID:      alice,
			Content:        "only once",
			IdempotencyKey: "msg-1",
		})
		require.NoError(t, err)
		assert.True(t, second.Deduplicated)
		assert.Equal(t, first.MessageID, second.MessageID)
	})

	t.Run("non-member rejected", func(t *testing.T) {
		outsider := startChatSession(t, env, "chat-study", "")
		_, err := env.chats.Send(ctx, "grp-send", models.SendMessageRequest{
			SessionID: outsider,
			Content:   "let me in",
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := env.chats.Send(ctx, "grp-send", models.SendMessageRequest{SessionID: alice})
		assert.True(t, IsValidationError(err), "empty content")

		_, err = env.chats.Send(ctx, "grp-send", models.SendMessageRequest{
			SessionID: alice, Content: "x", SenderType: "agent",
		})
		assert.True(t, IsValidationError(err), "clients may not send as agent")
	})
}

func TestChatHistory(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "chat-study", false)
	ctx := context.Background()

	alice := startChatSession(t, env, "chat-study", "grp-hist")
	bob := startChatSession(t, env, "chat-study", "grp-hist")

	for _, content := range []string{"first", "second"} {
		_, err := env.chats.Send(ctx, "grp-hist", models.SendMessageRequest{
			SessionID: alice, Content: content,
		})
		require.NoError(t, err)
	}
	_, err := env.chats.AddAgentMessage(ctx, "grp-hist", "agent:mediator", "third")
	require.NoError(t, err)

	t.Run("ordered and visible to members", func(t *testing.T) {
		msgs, err := env.chats.History(ctx, "grp-hist", bob)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, "first", msgs[0].Content)
		assert.Equal(t, "second", msgs[1].Content)
		assert.Equal(t, "third", msgs[2].Content)
		assert.Equal(t, models.SenderAgent, msgs[2].SenderType)
		assert.Equal(t, "agent:mediator", msgs[2].SenderID)
	})

	t.Run("hidden from non-members", func(t *testing.T) {
		outsider := startChatSession(t, env, "chat-study", "")
		_, err := env.chats.History(ctx, "grp-hist", outsider)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestChatHistoryStableOrderOnEqualTimestamps(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "chat-study", false)
	ctx := context.Background()

	member := startChatSession(t, env, "chat-study", "grp-tie")

	// Identical created_at, inserted out of id order: history must
	// still come back in a stable order.
	stamp := time.Now().Truncate(time.Millisecond)
	for _, id := range []string{"msg-c", "msg-a", "msg-b"} {
		_, err := env.client.ChatMessage.Create().
			SetID(id).
			SetGroupID("grp-tie").
			SetSenderID(member).
			SetSenderType(chatmessage.SenderTypeParticipant).
			SetContent(id).
			SetCreatedAt(stamp).
			Save(ctx)
		require.NoError(t, err)
	}

	msgs, err := env.chats.History(ctx, "grp-tie", member)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	got := []string{msgs[0].MessageID, msgs[1].MessageID, msgs[2].MessageID}
	assert.Equal(t, []string{"msg-a", "msg-b", "msg-c"}, got)
}

type recordingTrigger struct {
	ch chan [2]string
}

func (r *recordingTrigger) TriggerAgents(groupID, sessionID string, requireHistory bool) {
	r.ch <- [2]string{groupID, sessionID}
}

func TestAgentTriggerDispatch(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "chat-study", false)
	ctx := context.Background()

	solo := startChatSession(t, env, "chat-study", "")
	trigger := &recordingTrigger{ch: make(chan [2]string, 2)}
	env.chats.SetAgentTrigger(trigger)

	_, err := env.chats.Send(ctx, solo, models.SendMessageRequest{
		SessionID: solo, Content: "are you there?",
	})
	require.NoError(t, err)
	assert.Equal(t, [2]string{solo, solo}, <-trigger.ch)

	require.NoError(t, env.chats.StartAgents(ctx, solo, solo))
	assert.Equal(t, [2]string{solo, solo}, <-trigger.ch)
}
