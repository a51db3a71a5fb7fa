package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recv pulls the next event or fails the test after a timeout.
func recv(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case evt, ok := <-sub.Events():
		require.True(t, ok, "subscriber channel closed unexpectedly")
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestSubscribeDeliversConnected(t *testing.T) {
	bus := NewBus()
	defer bus.Stop()

	sub := bus.Subscribe("sess-1")
	defer bus.Unsubscribe(sub)

	evt := recv(t, sub)
	assert.Equal(t, TypeConnected, evt.Type)
	assert.Equal(t, "sess-1", evt.SessionID)
	assert.Equal(t, sub.ID, evt.Data["subscriberId"])
	assert.Equal(t, 1, bus.SubscriberCount("sess-1"))
}

func TestBroadcastToSession(t *testing.T) {
	bus := NewBus()
	defer bus.Stop()

	sub1 := bus.Subscribe("sess-1")
	sub2 := bus.Subscribe("sess-1")
	other := bus.Subscribe("sess-2")
	defer bus.Unsubscribe(sub1)
	defer bus.Unsubscribe(sub2)
	defer bus.Unsubscribe(other)

	// Drain connected events.
	recv(t, sub1)
	recv(t, sub2)
	recv(t, other)

	bus.BroadcastToSession("sess-1", NewEvent(TypePageChange, map[string]interface{}{"pageId": "next"}))

	for _, sub := range []*Subscriber{sub1, sub2} {
		evt := recv(t, sub)
		assert.Equal(t, TypePageChange, evt.Type)
		assert.Equal(t, "next", evt.Data["pageId"])
	}

	select {
	case evt := <-other.Events():
		t.Fatalf("unexpected event for other session: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

type staticResolver struct {
	members map[string][]string
}

func (r *staticResolver) ResolveGroupMembers(_ context.Context, groupID string) ([]string, error) {
	return r.members[groupID], nil
}

func TestBroadcastToGroup(t *testing.T) {
	bus := NewBus()
	defer bus.Stop()
	bus.SetGroupResolver(&staticResolver{members: map[string][]string{
		"grp-1": {"sess-a", "sess-b"},
	}})

	subA := bus.Subscribe("sess-a")
	subB := bus.Subscribe("sess-b")
	defer bus.Unsubscribe(subA)
	defer bus.Unsubscribe(subB)
	recv(t, subA)
	recv(t, subB)

	bus.BroadcastToGroup(context.Background(), "grp-1", NewEvent(TypeChatMessage, map[string]interface{}{"content": "hi"}))

	for _, sub := range []*Subscriber{subA, subB} {
		evt := recv(t, sub)
		assert.Equal(t, TypeChatMessage, evt.Type)
		assert.Equal(t, "grp-1", evt.GroupID)
	}
}

func TestBroadcastToGroupSoloFallback(t *testing.T) {
	bus := NewBus()
	defer bus.Stop()
	bus.SetGroupResolver(&staticResolver{members: map[string][]string{}})

	// Solo AI chat: the session doubles as its own group and carries no
	// chat_group_id marker.
	sub := bus.Subscribe("sess-solo")
	defer bus.Unsubscribe(sub)
	recv(t, sub)

	bus.BroadcastToGroup(context.Background(), "sess-solo", NewEvent(TypeChatMessage, nil))

	evt := recv(t, sub)
	assert.Equal(t, TypeChatMessage, evt.Type)
}

func TestDisconnectHookFiresOnLastUnsubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Stop()

	var mu sync.Mutex
	var disconnected []string
	done := make(chan struct{})
	bus.SetDisconnectHandler(func(sessionID string) {
		mu.Lock()
		disconnected = append(disconnected, sessionID)
		mu.Unlock()
		close(done)
	})

	sub1 := bus.Subscribe("sess-1")
	sub2 := bus.Subscribe("sess-1")

	bus.Unsubscribe(sub1)
	mu.Lock()
	assert.Empty(t, disconnected, "hook must not fire while a subscriber remains")
	mu.Unlock()

	bus.Unsubscribe(sub2)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("disconnect hook never fired")
	}

	mu.Lock()
	assert.Equal(t, []string{"sess-1"}, disconnected)
	mu.Unlock()
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	bus := NewBus()
	defer bus.Stop()

	sub := bus.Subscribe("sess-1")

	// Never consume; overflow the buffer (one slot already holds the
	// connected event).
	for i := 0; i < subscriberBuffer+1; i++ {
		bus.BroadcastToSession("sess-1", NewEvent(TypeStateUpdated, nil))
	}

	assert.Equal(t, 0, bus.SubscriberCount("sess-1"))

	// Channel must be closed so the SSE handler unblocks.
	drained := false
	for !drained {
		select {
		case _, ok := <-sub.Events():
			if !ok {
				drained = true
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber channel was not closed")
		}
	}
}

func TestStopClosesSubscribers(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("sess-1")
	recv(t, sub)

	bus.Stop()

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscriber channel was not closed on stop")
	}
}

func TestDeliverAfterUnsubscribeIsNoOp(t *testing.T) {
	bus := NewBus()
	defer bus.Stop()

	sub := bus.Subscribe("sess-1")
	recv(t, sub)
	bus.Unsubscribe(sub)

	// A broadcaster may still hold this subscriber in a snapshot taken
	// before the unsubscribe; delivery must drop the event, not panic.
	require.NotPanics(t, func() {
		bus.deliver(sub, NewEvent(TypeStateUpdated, nil))
	})

	_, ok := <-sub.Events()
	assert.False(t, ok, "channel must stay closed, no late event")
}

func TestConcurrentBroadcastAndUnsubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Stop()

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					bus.BroadcastToSession("sess-1", NewEvent(TypeStateUpdated, nil))
				}
			}
		}()
	}

	for i := 0; i < 2000; i++ {
		sub := bus.Subscribe("sess-1")
		bus.Unsubscribe(sub)
	}
	close(done)
	wg.Wait()
}
