// Package matchmaking implements FIFO pools that form groups of N under
// per-entry timeouts. All pool state is process-local; horizontal scaling
// requires sticky routing so a pool's members land on the same replica.
package matchmaking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/greenroomlab/greenroom/pkg/assign"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/models"
	"github.com/greenroomlab/greenroom/pkg/services"
	"golang.org/x/sync/errgroup"
)

// waitingEntry is one session waiting in a pool. The entry owns its
// timer and must release it on every exit path: match, cancel, timeout,
// disconnect.
type waitingEntry struct {
	sessionID  string
	configID   string
	poolID     string
	enqueuedAt time.Time
	timer      *time.Timer
	cfg        models.MatchmakeRequest
}

// pool is a FIFO list of waiting entries. All mutation happens under mu;
// there is no lock shared across pools.
type pool struct {
	mu      sync.Mutex
	entries []*waitingEntry
}

// Scheduler pairs waiting sessions into groups. Pools are keyed by
// configId:poolId and created on first use; empty pools are deleted
// eagerly to bound memory.
type Scheduler struct {
	poolsMu sync.Mutex
	pools   map[string]*pool

	reverseMu sync.Mutex
	reverse   map[string]string // sessionID → pool key

	sessions *services.SessionService
	groups   *services.GroupService
	assigner *assign.Assigner
	bus      *events.Bus

	wg sync.WaitGroup

	logger *slog.Logger
}

// NewScheduler creates a matchmaking scheduler.
func NewScheduler(sessions *services.SessionService, groups *services.GroupService, assigner *assign.Assigner, bus *events.Bus) *Scheduler {
	return &Scheduler{
		pools:    make(map[string]*pool),
		reverse:  make(map[string]string),
		sessions: sessions,
		groups:   groups,
		assigner: assigner,
		bus:      bus,
		logger:   slog.Default().With("component", "matchmaking"),
	}
}

// Stop cancels all pending timers and waits for in-flight timer and
// disconnect work to finish. Waiting sessions are discarded; clients
// reconnecting after a restart re-enqueue.
func (s *Scheduler) Stop() {
	s.poolsMu.Lock()
	pools := make([]*pool, 0, len(s.pools))
	for _, p := range s.pools {
		pools = append(pools, p)
	}
	s.pools = make(map[string]*pool)
	s.poolsMu.Unlock()

	for _, p := range pools {
		p.mu.Lock()
		for _, e := range p.entries {
			e.timer.Stop()
		}
		p.entries = nil
		p.mu.Unlock()
	}

	s.reverseMu.Lock()
	s.reverse = make(map[string]string)
	s.reverseMu.Unlock()

	s.wg.Wait()
}

// Enqueue adds a session to a pool, forming a group when the pool
// reaches the requested size. The caller that fills the pool receives
// the matched result synchronously; everyone else learns via SSE.
func (s *Scheduler) Enqueue(ctx context.Context, sessionID, configID string, req models.MatchmakeRequest) (*models.MatchmakeResponse, error) {
	if req.PoolID == "" {
		return nil, services.NewValidationError("poolId", "required")
	}
	if req.NumUsers < 1 {
		return nil, services.NewValidationError("num_users", "must be at least 1")
	}
	if req.TimeoutSeconds < 1 {
		return nil, services.NewValidationError("timeoutSeconds", "must be at least 1")
	}

	key := poolKey(configID, req.PoolID)

	// A session waits in at most one pool. Re-enqueueing the same pool
	// reports the current position; a different pool supersedes the old
	// reservation.
	s.reverseMu.Lock()
	existingKey, waiting := s.reverse[sessionID]
	s.reverseMu.Unlock()
	if waiting {
		if existingKey == key {
			if pos := s.position(key, sessionID); pos > 0 {
				return &models.MatchmakeResponse{Status: models.MatchStatusWaiting, Position: pos}, nil
			}
		} else {
			s.remove(sessionID, existingKey)
		}
	}

	entry := &waitingEntry{
		sessionID:  sessionID,
		configID:   configID,
		poolID:     req.PoolID,
		enqueuedAt: time.Now(),
		cfg:        req,
	}

	// lockPool returns with p.mu held, so the pool cannot be reaped
	// between lookup and insertion. The timer starts under the same
	// lock; a pathologically early expiry blocks in remove until the
	// entry is actually in the list.
	p := s.lockPool(key)
	p.entries = append(p.entries, entry)
	entry.timer = time.AfterFunc(time.Duration(req.TimeoutSeconds)*time.Second, func() {
		s.handleTimeout(entry, key)
	})
	position := len(p.entries)

	var members []*waitingEntry
	if len(p.entries) >= req.NumUsers {
		members = p.entries[:req.NumUsers]
		p.entries = append([]*waitingEntry{}, p.entries[req.NumUsers:]...)
		for _, m := range members {
			m.timer.Stop()
		}
	}
	p.mu.Unlock()

	s.reverseMu.Lock()
	if members == nil {
		s.reverse[sessionID] = key
	} else {
		for _, m := range members {
			delete(s.reverse, m.sessionID)
		}
	}
	s.reverseMu.Unlock()

	if members == nil {
		return &models.MatchmakeResponse{Status: models.MatchStatusWaiting, Position: position}, nil
	}

	s.deleteIfEmpty(key)

	groupID, treatment, err := s.formGroup(ctx, configID, req, members)
	if err != nil {
		return nil, err
	}
	return &models.MatchmakeResponse{
		Status:    models.MatchStatusMatched,
		GroupID:   groupID,
		Treatment: treatment,
	}, nil
}

// formGroup persists the group, patches every member's user_state, and
// broadcasts match_found to each member session.
func (s *Scheduler) formGroup(ctx context.Context, configID string, req models.MatchmakeRequest, members []*waitingEntry) (string, string, error) {
	assignType, conditions := "", []string(nil)
	if req.Assignment != nil {
		assignType = req.Assignment.Type
		conditions = req.Assignment.Conditions
	}
	treatment, err := s.assigner.Assign(assignType, conditions, poolKey(configID, req.PoolID))
	if err != nil {
		return "", "", services.NewValidationError("assignment.type", err.Error())
	}

	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.sessionID
	}

	grp, err := s.groups.Create(ctx, configID, req.PoolID, memberIDs, treatment)
	if err != nil {
		return "", "", err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, sid := range memberIDs {
		g.Go(func() error {
			return s.sessions.PatchUserState(gctx, sid, map[string]interface{}{
				"group_id":      grp.ID,
				"chat_group_id": grp.ID,
				"treatment":     treatment,
			})
		})
	}
	if err := g.Wait(); err != nil {
		return "", "", fmt.Errorf("failed to patch matched sessions: %w", err)
	}

	for _, sid := range memberIDs {
		s.bus.BroadcastToSession(sid, events.NewEvent(events.TypeMatchFound, map[string]interface{}{
			"groupId":     grp.ID,
			"treatment":   treatment,
			"memberCount": len(memberIDs),
		}))
	}

	s.logger.Info("Formed group",
		"group_id", grp.ID, "config_id", configID, "pool_id", req.PoolID,
		"members", len(memberIDs), "treatment", treatment)
	return grp.ID, treatment, nil
}

// RemoveSession cancels a session's pool reservation. Returns
// cancelled or not_found.
func (s *Scheduler) RemoveSession(sessionID string) string {
	s.reverseMu.Lock()
	key, ok := s.reverse[sessionID]
	s.reverseMu.Unlock()
	if !ok {
		return models.MatchStatusNotFound
	}
	if !s.remove(sessionID, key) {
		return models.MatchStatusNotFound
	}
	return models.MatchStatusCancelled
}

// HandleDisconnect evicts a session whose last SSE stream closed.
// Registered as the bus disconnect hook.
func (s *Scheduler) HandleDisconnect(sessionID string) {
	s.wg.Add(1)
	defer s.wg.Done()
	if status := s.RemoveSession(sessionID); status == models.MatchStatusCancelled {
		s.logger.Info("Removed disconnected session from pool", "session_id", sessionID)
	}
}

// handleTimeout fires when a waiting entry's timer expires: evict the
// entry (if still waiting) and tell the session where to go next.
func (s *Scheduler) handleTimeout(entry *waitingEntry, key string) {
	s.wg.Add(1)
	defer s.wg.Done()

	if !s.remove(entry.sessionID, key) {
		// Already matched or cancelled; the timer lost the race.
		return
	}

	data := map[string]interface{}{"poolId": entry.poolID}
	if entry.cfg.TimeoutTarget != "" {
		data["timeoutTarget"] = entry.cfg.TimeoutTarget
	}
	s.bus.BroadcastToSession(entry.sessionID, events.NewEvent(events.TypeMatchTimeout, data))

	s.logger.Info("Matchmaking timeout",
		"session_id", entry.sessionID, "pool", key)
}

// remove drops a session from a pool, stops its timer and clears the
// reverse map. Returns false when the session was not waiting there.
func (s *Scheduler) remove(sessionID, key string) bool {
	s.poolsMu.Lock()
	p, ok := s.pools[key]
	s.poolsMu.Unlock()

	removed := false
	if ok {
		p.mu.Lock()
		for i, e := range p.entries {
			if e.sessionID == sessionID {
				e.timer.Stop()
				p.entries = append(p.entries[:i], p.entries[i+1:]...)
				removed = true
				break
			}
		}
		p.mu.Unlock()
	}

	s.reverseMu.Lock()
	if s.reverse[sessionID] == key {
		delete(s.reverse, sessionID)
	}
	s.reverseMu.Unlock()

	if removed {
		s.deleteIfEmpty(key)
	}
	return removed
}

// position returns the 1-based position of a session in a pool, or 0.
func (s *Scheduler) position(key, sessionID string) int {
	s.poolsMu.Lock()
	p, ok := s.pools[key]
	s.poolsMu.Unlock()
	if !ok {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i, e := range p.entries {
		if e.sessionID == sessionID {
			return i + 1
		}
	}
	return 0
}

// lockPool returns the pool for key with its mutex held, creating it if
// absent. Lock order is poolsMu then pool.mu; poolsMu is released before
// returning so slow pool work never blocks other pools.
func (s *Scheduler) lockPool(key string) *pool {
	s.poolsMu.Lock()
	p, ok := s.pools[key]
	if !ok {
		p = &pool{}
		s.pools[key] = p
	}
	p.mu.Lock()
	s.poolsMu.Unlock()
	return p
}

// deleteIfEmpty removes an empty pool from the map. Lock order is
// poolsMu then pool.mu, matching every other path.
func (s *Scheduler) deleteIfEmpty(key string) {
	s.poolsMu.Lock()
	defer s.poolsMu.Unlock()
	p, ok := s.pools[key]
	if !ok {
		return
	}
	p.mu.Lock()
	empty := len(p.entries) == 0
	p.mu.Unlock()
	if empty {
		delete(s.pools, key)
	}
}

func poolKey(configID, poolID string) string {
	return configID + ":" + poolID
}
