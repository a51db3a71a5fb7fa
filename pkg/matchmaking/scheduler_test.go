package matchmaking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroomlab/greenroom/pkg/assign"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/models"
	"github.com/greenroomlab/greenroom/pkg/services"
	testdb "github.com/greenroomlab/greenroom/test/database"
)

type schedulerEnv struct {
	bus       *events.Bus
	sessions  *services.SessionService
	groups    *services.GroupService
	scheduler *Scheduler
	configID  string
}

func newSchedulerEnv(t *testing.T) *schedulerEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	bus := events.NewBus()
	t.Cleanup(bus.Stop)

	configs := services.NewConfigService(dbClient.Client)
	idempotency := services.NewIdempotencyService(dbClient.Client)
	assigner := assign.NewAssigner()
	sessions := services.NewSessionService(dbClient.Client, bus, configs, idempotency, assigner, false)
	groups := services.NewGroupService(dbClient.Client)
	bus.SetGroupResolver(sessions)

	scheduler := NewScheduler(sessions, groups, assigner, bus)
	t.Cleanup(scheduler.Stop)

	graph := models.Graph{
		InitialPageID: "lobby",
		Pages:         map[string]models.Page{"lobby": {ID: "lobby"}},
	}
	_, err := configs.Create(context.Background(), "mm-study", "researcher", false, graph)
	require.NoError(t, err)

	return &schedulerEnv{
		bus:       bus,
		sessions:  sessions,
		groups:    groups,
		scheduler: scheduler,
		configID:  "mm-study",
	}
}

func (e *schedulerEnv) startSession(t *testing.T) string {
	t.Helper()
	resp, err := e.sessions.Start(context.Background(), models.StartSessionRequest{ConfigID: e.configID}, "")
	require.NoError(t, err)
	return resp.SessionID
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

func TestEnqueueFormsGroupWhenFull(t *testing.T) {
	env := newSchedulerEnv(t)
	ctx := context.Background()

	s1 := env.startSession(t)
	s2 := env.startSession(t)

	sub1 := env.bus.Subscribe(s1)
	t.Cleanup(func() { env.bus.Unsubscribe(sub1) })

	req := models.MatchmakeRequest{
		PoolID:         "duos",
		NumUsers:       2,
		TimeoutSeconds: 30,
		Assignment:     &models.Assignment{Type: "block", Conditions: []string{"red", "blue"}},
	}

	first, err := env.scheduler.Enqueue(ctx, s1, env.configID, req)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusWaiting, first.Status)
	assert.Equal(t, 1, first.Position)

	// Second participant fills the pool and gets the match synchronously.
	second, err := env.scheduler.Enqueue(ctx, s2, env.configID, req)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusMatched, second.Status)
	assert.NotEmpty(t, second.GroupID)
	assert.Equal(t, "red", second.Treatment, "first block assignment for the pool")

	// The waiting participant learns via SSE.
	evt := recvEvent(t, sub1, events.TypeMatchFound)
	assert.Equal(t, second.GroupID, evt.Data["groupId"])
	assert.Equal(t, "red", evt.Data["treatment"])
	assert.Equal(t, 2, evt.Data["memberCount"])

	// Both members carry the group in user_state.
	for _, sid := range []string{s1, s2} {
		snap, err := env.sessions.Get(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, second.GroupID, snap.UserState["chat_group_id"])
		assert.Equal(t, second.GroupID, snap.UserState["group_id"])
		assert.Equal(t, "red", snap.UserState["treatment"])
	}

	// The group row records the members.
	grp, err := env.groups.Get(ctx, second.GroupID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{s1, s2}, grp.MemberSessionIds)
	assert.Equal(t, "duos", grp.PoolID)
}

func TestEnqueueReentry(t *testing.T) {
	env := newSchedulerEnv(t)
	ctx := context.Background()

	sid := env.startSession(t)
	req := models.MatchmakeRequest{PoolID: "duos", NumUsers: 2, TimeoutSeconds: 30}

	first, err := env.scheduler.Enqueue(ctx, sid, env.configID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Position)

	// Re-enqueueing the same pool reports the current position without
	// duplicating the entry.
	again, err := env.scheduler.Enqueue(ctx, sid, env.configID, req)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusWaiting, again.Status)
	assert.Equal(t, 1, again.Position)

	// A different pool supersedes the old reservation.
	other := models.MatchmakeRequest{PoolID: "trios", NumUsers: 3, TimeoutSeconds: 30}
	moved, err := env.scheduler.Enqueue(ctx, sid, env.configID, other)
	require.NoError(t, err)
	assert.Equal(t, 1, moved.Position)

	// The old pool no longer holds the session: a single partner in
	// "duos" waits alone.
	partner := env.startSession(t)
	resp, err := env.scheduler.Enqueue(ctx, partner, env.configID, req)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusWaiting, resp.Status)
	assert.Equal(t, 1, resp.Position)
}

func TestEnqueueValidation(t *testing.T) {
	env := newSchedulerEnv(t)
	ctx := context.Background()
	sid := env.startSession(t)

	cases := []models.MatchmakeRequest{
		{NumUsers: 2, TimeoutSeconds: 30},
		{PoolID: "p", NumUsers: 0, TimeoutSeconds: 30},
		{PoolID: "p", NumUsers: 2, TimeoutSeconds: 0},
	}
	for _, req := range cases {
		_, err := env.scheduler.Enqueue(ctx, sid, env.configID, req)
		assert.True(t, services.IsValidationError(err), "%+v", req)
	}
}

func TestTimeoutBroadcastsAndEvicts(t *testing.T) {
	env := newSchedulerEnv(t)
	ctx := context.Background()

	sid := env.startSession(t)
	sub := env.bus.Subscribe(sid)
	t.Cleanup(func() { env.bus.Unsubscribe(sub) })

	_, err := env.scheduler.Enqueue(ctx, sid, env.configID, models.MatchmakeRequest{
		PoolID:         "slow",
		NumUsers:       2,
		TimeoutSeconds: 1,
		TimeoutTarget:  "solo-task",
	})
	require.NoError(t, err)

	evt := recvEvent(t, sub, events.TypeMatchTimeout)
	assert.Equal(t, "slow", evt.Data["poolId"])
	assert.Equal(t, "solo-task", evt.Data["timeoutTarget"])

	// The reservation is gone.
	assert.Equal(t, models.MatchStatusNotFound, env.scheduler.RemoveSession(sid))
}

func TestRemoveSession(t *testing.T) {
	env := newSchedulerEnv(t)
	ctx := context.Background()

	sid := env.startSession(t)
	_, err := env.scheduler.Enqueue(ctx, sid, env.configID, models.MatchmakeRequest{
		PoolID: "p", NumUsers: 2, TimeoutSeconds: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, models.MatchStatusCancelled, env.scheduler.RemoveSession(sid))
	assert.Equal(t, models.MatchStatusNotFound, env.scheduler.RemoveSession(sid))
}

func TestDisconnectEvictsWaitingSession(t *testing.T) {
	env := newSchedulerEnv(t)
	ctx := context.Background()
	env.bus.SetDisconnectHandler(env.scheduler.HandleDisconnect)

	sid := env.startSession(t)
	sub := env.bus.Subscribe(sid)

	_, err := env.scheduler.Enqueue(ctx, sid, env.configID, models.MatchmakeRequest{
		PoolID: "p", NumUsers: 2, TimeoutSeconds: 30,
	})
	require.NoError(t, err)

	// Closing the last stream evicts the session from its pool.
	env.bus.Unsubscribe(sub)

	require.Eventually(t, func() bool {
		env.scheduler.reverseMu.Lock()
		_, waiting := env.scheduler.reverse[sid]
		env.scheduler.reverseMu.Unlock()
		return !waiting
	}, 2*time.Second, 20*time.Millisecond)
}
