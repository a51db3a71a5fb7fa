package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroomlab/greenroom/ent"
	"github.com/greenroomlab/greenroom/pkg/assign"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/models"
	testdb "github.com/greenroomlab/greenroom/test/database"
)

type testEnv struct {
	client   *ent.Client
	bus      *events.Bus
	sessions *SessionService
	chats    *ChatService
	configs  *ConfigService
}

func newTestEnv(t *testing.T, forceAuth bool) *testEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	bus := events.NewBus()
	t.Cleanup(bus.Stop)

	configs := NewConfigService(dbClient.Client)
	idempotency := NewIdempotencyService(dbClient.Client)
	assigner := assign.NewAssigner()
	sessions := NewSessionService(dbClient.Client, bus, configs, idempotency, assigner, forceAuth)
	chats := NewChatService(dbClient.Client, bus, sessions)
	bus.SetGroupResolver(sessions)

	return &testEnv{
		client:   dbClient.Client,
		bus:      bus,
		sessions: sessions,
		chats:    chats,
		configs:  configs,
	}
}

func testGraph() models.Graph {
	return models.Graph{
		InitialPageID: "intro",
		Pages: map[string]models.Page{
			"intro": {ID: "intro", Components: []models.Component{{Type: "text", ID: "welcome"}}},
			"chat":  {ID: "chat", Components: []models.Component{{Type: "chat", ID: "chat-1"}}},
			"done":  {ID: "done", End: true},
		},
	}
}

func (e *testEnv) seedConfig(t *testing.T, configID string, requireAuth bool) {
	t.Helper()
	_, err := e.configs.Create(context.Background(), configID, "researcher", requireAuth, testGraph())
	require.NoError(t, err)
}

// recvEvent pulls the next event of the wanted type, skipping others.
func recvEvent(t *testing.T, sub *events.Subscriber, wantType string) events.Event {
	t.Helper()
	timeout := time.After(2 * time.Second)
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

func TestStartSession(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "study-1", false)
	ctx := context.Background()

	t.Run("creates anonymous session on open config", func(t *testing.T) {
		resp, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-1"}, "")
		require.NoError(t, err)
		assert.Equal(t, models.StartStatusCreated, resp.Status)
		assert.Equal(t, "intro", resp.CurrentPageID)
		assert.Equal(t, "intro", resp.Page.ID)
		assert.NotEmpty(t, resp.SessionID)
		assert.Nil(t, resp.EndedAt)
	})

	t.Run("unknown config", func(t *testing.T) {
		_, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "nope"}, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("resumes by authenticated user", func(t *testing.T) {
		first, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-1"}, "user-7")
		require.NoError(t, err)
		assert.Equal(t, models.StartStatusCreated, first.Status)

		second, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-1"}, "user-7")
		require.NoError(t, err)
		assert.Equal(t, models.StartStatusResumed, second.Status)
		assert.Equal(t, first.SessionID, second.SessionID)
	})

	t.Run("resumes by prolific pid", func(t *testing.T) {
		req := models.StartSessionRequest{
			ConfigID: "study-1",
			Prolific: &models.ProlificInfo{PID: "PROLIFIC123", StudyID: "st1"},
		}
		first, err := env.sessions.Start(ctx, req, "")
		require.NoError(t, err)

		second, err := env.sessions.Start(ctx, req, "")
		require.NoError(t, err)
		assert.Equal(t, models.StartStatusResumed, second.Status)
		assert.Equal(t, first.SessionID, second.SessionID)
	})

	t.Run("completed participant is blocked", func(t *testing.T) {
		start, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-1"}, "user-done")
		require.NoError(t, err)

		_, err = env.sessions.Advance(ctx, start.SessionID, models.AdvanceRequest{
			Target: "done", IdempotencyKey: "adv-1",
		})
		require.NoError(t, err)

		_, err = env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-1"}, "user-done")
		assert.ErrorIs(t, err, ErrSessionBlocked)
	})
}

func TestStartSession_AuthRequired(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "gated", true)
	ctx := context.Background()

	_, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "gated"}, "")
	assert.ErrorIs(t, err, ErrAuthRequired)

	// A Prolific identity satisfies the gate without sign-in.
	resp, err := env.sessions.Start(ctx, models.StartSessionRequest{
		ConfigID: "gated",
		Prolific: &models.ProlificInfo{PID: "P1"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, models.StartStatusCreated, resp.Status)
}

func TestStartSession_ForceAuth(t *testing.T) {
	env := newTestEnv(t, true)
	env.seedConfig(t, "open", false)

	_, err := env.sessions.Start(context.Background(), models.StartSessionRequest{ConfigID: "open"}, "")
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestAdvance(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "study-adv", false)
	ctx := context.Background()

	start, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-adv"}, "")
	require.NoError(t, err)
	sid := start.SessionID

	sub := env.bus.Subscribe(sid)
	t.Cleanup(func() { env.bus.Unsubscribe(sub) })

	t.Run("moves to target and broadcasts", func(t *testing.T) {
		snap, err := env.sessions.Advance(ctx, sid, models.AdvanceRequest{
			Target: "chat", IdempotencyKey: "k1",
		})
		require.NoError(t, err)
		assert.Equal(t, "chat", snap.CurrentPageID)
		assert.False(t, snap.Deduplicated)

		evt := recvEvent(t, sub, events.TypePageChange)
		assert.Equal(t, "chat", evt.Data["pageId"])
	})

	t.Run("replay with same key is deduplicated", func(t *testing.T) {
		snap, err := env.sessions.Advance(ctx, sid, models.AdvanceRequest{
			Target: "chat", IdempotencyKey: "k1",
		})
		require.NoError(t, err)
		assert.True(t, snap.Deduplicated)
		assert.Equal(t, "chat", snap.CurrentPageID)
	})

	t.Run("unknown target yields placeholder page", func(t *testing.T) {
		snap, err := env.sessions.Advance(ctx, sid, models.AdvanceRequest{
			Target: "mystery", IdempotencyKey: "k2",
		})
		require.NoError(t, err)
		assert.Equal(t, "mystery", snap.CurrentPageID)
		assert.Equal(t, "mystery", snap.Page.ID)
		assert.Empty(t, snap.Page.Components)
	})

	t.Run("end page sets endedAt and blocks further advances", func(t *testing.T) {
		snap, err := env.sessions.Advance(ctx, sid, models.AdvanceRequest{
			Target: "done", IdempotencyKey: "k3",
		})
		require.NoError(t, err)
		require.NotNil(t, snap.EndedAt)

		_, err = env.sessions.Advance(ctx, sid, models.AdvanceRequest{
			Target: "intro", IdempotencyKey: "k4",
		})
		assert.ErrorIs(t, err, ErrSessionEnded)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		_, err := env.sessions.Advance(ctx, sid, models.AdvanceRequest{Target: "chat"})
		assert.True(t, IsValidationError(err))
	})
}

func TestAdvanceWithBranches(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "study-branch", false)
	ctx := context.Background()

	start, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-branch"}, "")
	require.NoError(t, err)
	sid := start.SessionID

	_, err = env.sessions.UpdateState(ctx, sid, models.UpdateStateRequest{
		Updates:        map[string]interface{}{"score": 5},
		IdempotencyKey: "b0",
	})
	require.NoError(t, err)

	t.Run("first matching branch wins", func(t *testing.T) {
		snap, err := env.sessions.Advance(ctx, sid, models.AdvanceRequest{
			Branches: []models.Branch{
				{When: "user_state.score > 10", Target: "bonus"},
				{When: "user_state.score > 1", Target: "chat"},
				{Target: "intro"},
			},
			IdempotencyKey: "b1",
		})
		require.NoError(t, err)
		assert.Equal(t, "chat", snap.CurrentPageID)
	})

	t.Run("default arm catches missing keys", func(t *testing.T) {
		snap, err := env.sessions.Advance(ctx, sid, models.AdvanceRequest{
			Branches: []models.Branch{
				{When: "user_state.absent == 1", Target: "bonus"},
				{Target: "intro"},
			},
			IdempotencyKey: "b2",
		})
		require.NoError(t, err)
		assert.Equal(t, "intro", snap.CurrentPageID)
	})

	t.Run("no branch matched rejected", func(t *testing.T) {
		_, err := env.sessions.Advance(ctx, sid, models.AdvanceRequest{
			Branches:       []models.Branch{{When: "user_state.score > 10", Target: "bonus"}},
			IdempotencyKey: "b3",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestUpdateState(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "study-state", false)
	ctx := context.Background()

	start, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-state"}, "")
	require.NoError(t, err)
	sid := start.SessionID

	sub := env.bus.Subscribe(sid)
	t.Cleanup(func() { env.bus.Unsubscribe(sub) })

	t.Run("applies dotted paths", func(t *testing.T) {
		resp, err := env.sessions.UpdateState(ctx, sid, models.UpdateStateRequest{
			Updates:        map[string]interface{}{"survey.q1": 4, "consent": true},
			IdempotencyKey: "s1",
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)

		snap, err := env.sessions.Get(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, true, snap.UserState["consent"])
		assert.Equal(t, map[string]interface{}{"q1": float64(4)}, snap.UserState["survey"])

		evt := recvEvent(t, sub, events.TypeUserStateChange)
		assert.Contains(t, []interface{}{"survey.q1", "consent"}, evt.Data["path"])
	})

	t.Run("replay does not reapply", func(t *testing.T) {
		resp, err := env.sessions.UpdateState(ctx, sid, models.UpdateStateRequest{
			Updates:        map[string]interface{}{"consent": false},
			IdempotencyKey: "s1",
		})
		require.NoError(t, err)
		assert.True(t, resp.Deduplicated)

		snap, err := env.sessions.Get(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, true, snap.UserState["consent"])
	})

	t.Run("reserved path rejected", func(t *testing.T) {
		_, err := env.sessions.UpdateState(ctx, sid, models.UpdateStateRequest{
			Updates:        map[string]interface{}{"$set": 1},
			IdempotencyKey: "s2",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestPatchUserStateBroadcastsStateUpdated(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "study-patch", false)
	ctx := context.Background()

	start, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-patch"}, "")
	require.NoError(t, err)

	sub := env.bus.Subscribe(start.SessionID)
	t.Cleanup(func() { env.bus.Unsubscribe(sub) })

	err = env.sessions.PatchUserState(ctx, start.SessionID, map[string]interface{}{"treatment": "control"})
	require.NoError(t, err)

	evt := recvEvent(t, sub, events.TypeStateUpdated)
	assert.Equal(t, "treatment", evt.Data["path"])
	assert.Equal(t, "control", evt.Data["value"])
}

func TestSubmitEvent(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "study-evt", false)
	ctx := context.Background()

	start, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-evt"}, "")
	require.NoError(t, err)
	sid := start.SessionID

	t.Run("records event stamped with session context", func(t *testing.T) {
		resp, err := env.sessions.SubmitEvent(ctx, sid, models.SubmitEventRequest{
			Type:           "click",
			ComponentType:  "button",
			ComponentID:    "next",
			Data:           map[string]interface{}{"x": 10},
			IdempotencyKey: "e1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.EventID)
		assert.False(t, resp.Deduplicated)

		rows, err := env.sessions.ListSessionEvents(ctx, sid)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "study-evt", rows[0].ConfigID)
		assert.Equal(t, "intro", rows[0].PageID)
	})

	t.Run("duplicate key reports deduplication", func(t *testing.T) {
		resp, err := env.sessions.SubmitEvent(ctx, sid, models.SubmitEventRequest{
			Type:           "click",
			IdempotencyKey: "e1",
		})
		require.NoError(t, err)
		assert.True(t, resp.Deduplicated)
		assert.Equal(t, "duplicate", resp.EventID)

		rows, err := env.sessions.ListSessionEvents(ctx, sid)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("events without keys always insert", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			_, err := env.sessions.SubmitEvent(ctx, sid, models.SubmitEventRequest{Type: "ping"})
			require.NoError(t, err)
		}
		rows, err := env.sessions.ListSessionEvents(ctx, sid)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})
}

func TestRandomize(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "study-rand", false)
	ctx := context.Background()

	start, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-rand"}, "")
	require.NoError(t, err)
	sid := start.SessionID

	t.Run("assigns and persists", func(t *testing.T) {
		resp, err := env.sessions.Randomize(ctx, sid, models.RandomizeRequest{
			Conditions: []string{"a", "b"},
		})
		require.NoError(t, err)
		assert.Contains(t, []string{"a", "b"}, resp.Condition)
		assert.False(t, resp.Existing)

		snap, err := env.sessions.Get(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, resp.Condition, snap.UserState["treatment"])
	})

	t.Run("repeat call returns existing assignment", func(t *testing.T) {
		first, err := env.sessions.Randomize(ctx, sid, models.RandomizeRequest{
			Conditions: []string{"a", "b"},
		})
		require.NoError(t, err)
		assert.True(t, first.Existing)
	})

	t.Run("custom state key is independent", func(t *testing.T) {
		resp, err := env.sessions.Randomize(ctx, sid, models.RandomizeRequest{
			AssignmentType: "block",
			Conditions:     []string{"x", "y"},
			StateKey:       "arm",
		})
		require.NoError(t, err)
		assert.False(t, resp.Existing)
		assert.Equal(t, "x", resp.Condition, "block assignment cycles deterministically")
	})
}

func TestResolveGroupMembers(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedConfig(t, "study-grp", false)
	ctx := context.Background()

	var members []string
	for i := 0; i < 2; i++ {
		start, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-grp"}, "")
		require.NoError(t, err)
		require.NoError(t, env.sessions.PatchUserState(ctx, start.SessionID, map[string]interface{}{
			"chat_group_id": "grp-42",
		}))
		members = append(members, start.SessionID)
	}
	// A bystander session outside the group.
	_, err := env.sessions.Start(ctx, models.StartSessionRequest{ConfigID: "study-grp"}, "")
	require.NoError(t, err)

	got, err := env.sessions.ResolveGroupMembers(ctx, "grp-42")
	require.NoError(t, err)
	assert.ElementsMatch(t, members, got)
}
