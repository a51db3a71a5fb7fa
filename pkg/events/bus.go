package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// subscriberBuffer bounds each subscriber's send queue. A consumer that
// falls this far behind is disconnected rather than allowed to stall the
// broadcaster; the client reconnects and refetches current state via REST.
const subscriberBuffer = 64

// heartbeatInterval is how often idle streams receive a heartbeat event so
// proxies don't reap the connection.
const heartbeatInterval = 30 * time.Second

// Subscriber is one SSE connection's view of the bus. Events are consumed
// from Events(); the channel is closed when the subscriber is removed.
type Subscriber struct {
	ID        string
	SessionID string

	// mu orders push against close: a broadcaster may hold a snapshot
	// that includes a subscriber being unsubscribed concurrently, and a
	// send into a closed channel panics.
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

// Events returns the subscriber's event channel. It is closed when the
// subscriber is unsubscribed or dropped for falling behind.
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// push enqueues an event without blocking. Pushing to a closed
// subscriber is a no-op. Returns false only when the queue is full.
func (s *Subscriber) push(evt Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}
	select {
	case s.ch <- evt:
		return true
	default:
		return false
	}
}

func (s *Subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// DisconnectFunc is invoked when a session's last subscriber goes away.
// The matchmaking scheduler uses it to evict waiting participants.
type DisconnectFunc func(sessionID string)

// GroupResolver resolves a chat group id to its member session ids.
// Implemented by the session service (scans user_state.chat_group_id).
type GroupResolver interface {
	ResolveGroupMembers(ctx context.Context, groupID string) ([]string, error)
}

// Bus fans events out to per-session subscribers.
type Bus struct {
	mu       sync.RWMutex
	sessions map[string]map[string]*Subscriber

	hookMu       sync.RWMutex
	onDisconnect DisconnectFunc

	resolverMu sync.RWMutex
	resolver   GroupResolver

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	logger *slog.Logger
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		sessions: make(map[string]map[string]*Subscriber),
		stopCh:   make(chan struct{}),
		logger:   slog.Default().With("component", "event_bus"),
	}
}

// Start launches the heartbeat loop.
func (b *Bus) Start() {
	b.wg.Add(1)
	go b.heartbeatLoop()
}

// Stop terminates the heartbeat loop and closes all subscribers.
func (b *Bus) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
	})
	b.wg.Wait()

	b.mu.Lock()
	subs := b.snapshotAllLocked()
	b.sessions = make(map[string]map[string]*Subscriber)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

// SetDisconnectHandler registers the hook fired when a session's last
// subscriber disconnects. Called once during startup.
func (b *Bus) SetDisconnectHandler(fn DisconnectFunc) {
	b.hookMu.Lock()
	defer b.hookMu.Unlock()
	b.onDisconnect = fn
}

// SetGroupResolver registers the group membership resolver. Called once
// during startup, after the session service is constructed.
func (b *Bus) SetGroupResolver(r GroupResolver) {
	b.resolverMu.Lock()
	defer b.resolverMu.Unlock()
	b.resolver = r
}

// Subscribe registers a new subscriber for a session. The connected event
// is queued immediately so clients can confirm the stream is live.
func (b *Bus) Subscribe(sessionID string) *Subscriber {
	sub := &Subscriber{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		ch:        make(chan Event, subscriberBuffer),
	}

	b.mu.Lock()
	if _, ok := b.sessions[sessionID]; !ok {
		b.sessions[sessionID] = make(map[string]*Subscriber)
	}
	b.sessions[sessionID][sub.ID] = sub
	b.mu.Unlock()

	evt := NewEvent(TypeConnected, map[string]interface{}{"subscriberId": sub.ID})
	evt.SessionID = sessionID
	// The buffer is empty at this point; push only no-ops if Stop closed
	// the subscriber concurrently.
	sub.push(evt)

	return sub
}

// Unsubscribe removes a subscriber and closes its channel. When the
// session has no subscribers left, the disconnect hook fires.
func (b *Bus) Unsubscribe(sub *Subscriber) {
	b.mu.Lock()
	lastForSession := false
	if subs, ok := b.sessions[sub.SessionID]; ok {
		delete(subs, sub.ID)
		if len(subs) == 0 {
			delete(b.sessions, sub.SessionID)
			lastForSession = true
		}
	}
	b.mu.Unlock()

	sub.close()

	if lastForSession {
		b.hookMu.RLock()
		hook := b.onDisconnect
		b.hookMu.RUnlock()
		if hook != nil {
			// Detached: the hook may take pool locks and must not block
			// the disconnecting handler.
			go hook(sub.SessionID)
		}
	}
}

// BroadcastToSession delivers an event to every subscriber of a session.
func (b *Bus) BroadcastToSession(sessionID string, evt Event) {
	evt.SessionID = sessionID
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}

	// Snapshot under the lock, send after releasing it.
	b.mu.RLock()
	subs := make([]*Subscriber, 0, len(b.sessions[sessionID]))
	for _, sub := range b.sessions[sessionID] {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		b.deliver(sub, evt)
	}
}

// BroadcastToGroup delivers an event to every member session of a group.
// Membership is resolved by scanning sessions whose user_state carries the
// group id. The group id itself is included as a session id when not
// already a member, which covers solo AI chats where the session doubles
// as its own group.
func (b *Bus) BroadcastToGroup(ctx context.Context, groupID string, evt Event) {
	evt.GroupID = groupID

	members := b.resolveMembers(ctx, groupID)
	covered := false
	for _, sid := range members {
		if sid == groupID {
			covered = true
		}
		b.BroadcastToSession(sid, evt)
	}
	if !covered {
		b.BroadcastToSession(groupID, evt)
	}
}

func (b *Bus) resolveMembers(ctx context.Context, groupID string) []string {
	b.resolverMu.RLock()
	r := b.resolver
	b.resolverMu.RUnlock()
	if r == nil {
		return nil
	}
	members, err := r.ResolveGroupMembers(ctx, groupID)
	if err != nil {
		b.logger.Error("Failed to resolve group members",
			"group_id", groupID, "error", err)
		return nil
	}
	return members
}

// SubscriberCount returns the number of active subscribers for a session.
func (b *Bus) SubscriberCount(sessionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.sessions[sessionID])
}

// deliver enqueues an event without blocking. A subscriber with a full
// queue is dropped; slow consumers must not stall everyone else.
func (b *Bus) deliver(sub *Subscriber, evt Event) {
	if !sub.push(evt) {
		b.logger.Warn("Dropping slow SSE subscriber",
			"subscriber_id", sub.ID, "session_id", sub.SessionID)
		b.Unsubscribe(sub)
	}
}

func (b *Bus) heartbeatLoop() {
	defer b.wg.Done()
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopCh:
			return
		case <-ticker.C:
			b.mu.RLock()
			subs := b.snapshotAllLocked()
			b.mu.RUnlock()

			evt := NewEvent(TypeHeartbeat, nil)
			for _, sub := range subs {
				e := evt
				e.SessionID = sub.SessionID
				b.deliver(sub, e)
			}
		}
	}
}

// snapshotAllLocked returns all subscribers. Caller must hold mu.
func (b *Bus) snapshotAllLocked() []*Subscriber {
	subs := make([]*Subscriber, 0, len(b.sessions))
	for _, m := range b.sessions {
		for _, sub := range m {
			subs = append(subs, sub)
		}
	}
	return subs
}
