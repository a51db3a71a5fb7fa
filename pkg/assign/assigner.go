// Package assign implements treatment assignment strategies. Counter
// state is process-local and non-persistent; restarts reset balance.
package assign

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Assignment strategies.
const (
	StrategyRandom         = "random"
	StrategyBalancedRandom = "balanced_random"
	StrategyBlock          = "block"
)

// DefaultConditions is used when the caller provides no candidate list.
var DefaultConditions = []string{"control", "treatment"}

// balanceState tracks assignment history for one balance key. Each key
// has its own lock; there is no global lock across keys.
type balanceState struct {
	mu     sync.Mutex
	counts map[string]int
	next   int
}

// Assigner picks conditions according to a strategy, keeping per-key
// counters for the balanced strategies.
type Assigner struct {
	mu   sync.Mutex
	keys map[string]*balanceState
}

// NewAssigner creates an Assigner with empty counter state.
func NewAssigner() *Assigner {
	return &Assigner{keys: make(map[string]*balanceState)}
}

// Assign picks a condition from conditions using the given strategy.
// An empty conditions list falls back to DefaultConditions. The balance
// key scopes counters for balanced_random and block; random ignores it.
func (a *Assigner) Assign(strategy string, conditions []string, balanceKey string) (string, error) {
	if len(conditions) == 0 {
		conditions = DefaultConditions
	}

	switch strategy {
	case StrategyRandom, "":
		return conditions[rand.IntN(len(conditions))], nil
	case StrategyBalancedRandom:
		return a.balancedRandom(conditions, balanceKey), nil
	case StrategyBlock:
		return a.block(conditions, balanceKey), nil
	default:
		return "", fmt.Errorf("unknown assignment strategy: %s", strategy)
	}
}

// balancedRandom picks uniformly among the candidates with the minimum
// assignment count for the balance key, then increments the winner.
func (a *Assigner) balancedRandom(conditions []string, balanceKey string) string {
	st := a.state(balanceKey)
	st.mu.Lock()
	defer st.mu.Unlock()

	min := -1
	for _, c := range conditions {
		if n := st.counts[c]; min == -1 || n < min {
			min = n
		}
	}

	lowest := make([]string, 0, len(conditions))
	for _, c := range conditions {
		if st.counts[c] == min {
			lowest = append(lowest, c)
		}
	}

	chosen := lowest[rand.IntN(len(lowest))]
	st.counts[chosen]++
	return chosen
}

// block cycles through the candidates in order per balance key.
func (a *Assigner) block(conditions []string, balanceKey string) string {
	st := a.state(balanceKey)
	st.mu.Lock()
	defer st.mu.Unlock()

	chosen := conditions[st.next%len(conditions)]
	st.next++
	return chosen
}

func (a *Assigner) state(balanceKey string) *balanceState {
	a.mu.Lock()
	defer a.mu.Unlock()
	st, ok := a.keys[balanceKey]
	if !ok {
		st = &balanceState{counts: make(map[string]int)}
		a.keys[balanceKey] = st
	}
	return st
}
