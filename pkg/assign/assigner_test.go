package assign

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign_Random(t *testing.T) {
	a := NewAssigner()

	// Always returns a member of the candidate list.
	for i := 0; i < 100; i++ {
		got, err := a.Assign(StrategyRandom, []string{"A", "B", "C"}, "k")
		require.NoError(t, err)
		assert.Contains(t, []string{"A", "B", "C"}, got)
	}
}

func TestAssign_DefaultsAndErrors(t *testing.T) {
	a := NewAssigner()

	// Empty conditions fall back to the defaults.
	got, err := a.Assign("", nil, "k")
	require.NoError(t, err)
	assert.Contains(t, DefaultConditions, got)

	_, err = a.Assign("nonsense", []string{"A"}, "k")
	assert.Error(t, err)
}

func TestAssign_BalancedRandom_NeverSkewsByMoreThanOne(t *testing.T) {
	a := NewAssigner()
	conditions := []string{"A", "B", "C"}
	counts := map[string]int{}

	for i := 0; i < 300; i++ {
		got, err := a.Assign(StrategyBalancedRandom, conditions, "pool")
		require.NoError(t, err)
		counts[got]++

		min, max := -1, 0
		for _, c := range conditions {
			n := counts[c]
			if min == -1 || n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		assert.LessOrEqual(t, max-min, 1, "skew exceeded 1 after assignment %d", i)
	}

	// Fully balanced after a multiple of len(conditions) assignments.
	assert.Equal(t, 100, counts["A"])
	assert.Equal(t, 100, counts["B"])
	assert.Equal(t, 100, counts["C"])
}

func TestAssign_BalancedRandom_KeysAreIndependent(t *testing.T) {
	a := NewAssigner()

	for i := 0; i < 4; i++ {
		_, err := a.Assign(StrategyBalancedRandom, []string{"A", "B"}, "k1")
		require.NoError(t, err)
	}

	// A fresh key starts from zero counts: first two assignments must
	// cover both conditions.
	first, err := a.Assign(StrategyBalancedRandom, []string{"A", "B"}, "k2")
	require.NoError(t, err)
	second, err := a.Assign(StrategyBalancedRandom, []string{"A", "B"}, "k2")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestAssign_Block_Cycles(t *testing.T) {
	a := NewAssigner()
	conditions := []string{"A", "B", "C"}

	var got []string
	for i := 0; i < 7; i++ {
		c, err := a.Assign(StrategyBlock, conditions, "k")
		require.NoError(t, err)
		got = append(got, c)
	}

	assert.Equal(t, []string{"A", "B", "C", "A", "B", "C", "A"}, got)
}

func TestAssign_ConcurrentBalanced(t *testing.T) {
	a := NewAssigner()
	conditions := []string{"A", "B"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%2)
			for j := 0; j < 50; j++ {
				_, err := a.Assign(StrategyBalancedRandom, conditions, key)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	// 250 assignments per key split exactly across two conditions.
	for _, key := range []string{"k0", "k1"} {
		st := a.state(key)
		st.mu.Lock()
		assert.Equal(t, 125, st.counts["A"], "key %s", key)
		assert.Equal(t, 125, st.counts["B"], "key %s", key)
		st.mu.Unlock()
	}
}
