package lazy

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/thompson/internal/conv"
)

// transitionsPerState bounds the transition table relative to MaxStates.
const transitionsPerState = 64

type transitionKey struct {
	from StateKey
	char rune
}

// Cache memoizes subsets and their successors with bounded memory.
//
// The cache maps StateKey → State and (StateKey, character) → State.
// It is shared by every Runtime of one DFA.
//
// Thread safety: All methods are safe for concurrent access via RWMutex.
//
// Memory management:
//   - States are never evicted individually (no LRU overhead)
//   - When the cache is full it is cleared entirely and refilled on demand
//   - States already held by a runtime stay valid after a clear
type Cache struct {
	// Statistics for cache performance tuning.
	// IMPORTANT: kept first for 8-byte alignment of atomic operations on 32-bit platforms.
	hits   uint64
	misses uint64

	// mu protects states, transitions and clearCount
	mu sync.RWMutex

	states      map[StateKey]*State
	transitions map[transitionKey]*State

	// maxStates is the capacity limit
	maxStates uint32

	// clearCount tracks how many times the cache has been cleared
	clearCount int
}

// NewCache creates a new state cache with the given maximum capacity
func NewCache(maxStates uint32) *Cache {
	return &Cache{
		states:      make(map[StateKey]*State),
		transitions: make(map[transitionKey]*State),
		maxStates:   maxStates,
	}
}

// Get retrieves a state by its key.
// Returns (state, true) if found, (nil, false) if not in cache.
func (c *Cache) Get(key StateKey) (*State, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state, ok := c.states[key]
	return state, ok
}

// Intern returns the cached state equal to state, inserting state if there
// is none. A full cache is cleared before inserting.
func (c *Cache) Intern(state *State) *State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.states[state.key]; ok {
		return existing
	}
	if conv.IntToUint32(len(c.states)) >= c.maxStates {
		c.clearLocked()
	}
	c.states[state.key] = state
	return state
}

// Next returns the memoized successor of from on char.
func (c *Cache) Next(from *State, char rune) (*State, bool) {
	c.mu.RLock()
	to, ok := c.transitions[transitionKey{from: from.key, char: char}]
	c.mu.RUnlock()

	if ok {
		atomic.AddUint64(&c.hits, 1)
	} else {
		atomic.AddUint64(&c.misses, 1)
	}
	return to, ok
}

// SetNext records to as the successor of from on char.
func (c *Cache) SetNext(from *State, char rune, to *State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if uint64(len(c.transitions)) >= uint64(c.maxStates)*transitionsPerState {
		c.clearLocked()
	}
	c.transitions[transitionKey{from: from.key, char: char}] = to
}

// Clear removes every cached state and transition.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Cache) clearLocked() {
	clear(c.states)
	clear(c.transitions)
	c.clearCount++
}

// Size returns the number of cached states
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.states)
}

// IsFull returns true if the next new state would clear the cache
func (c *Cache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return conv.IntToUint32(len(c.states)) >= c.maxStates
}

// ClearCount returns how many times the cache has been cleared
func (c *Cache) ClearCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clearCount
}

// Stats returns transition lookup statistics.
// hitRate is in [0.0, 1.0], and 0 before the first lookup.
func (c *Cache) Stats() (hits, misses uint64, hitRate float64) {
	hits = atomic.LoadUint64(&c.hits)
	misses = atomic.LoadUint64(&c.misses)
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return hits, misses, hitRate
}

// ResetStats zeroes the hit and miss counters
func (c *Cache) ResetStats() {
	atomic.StoreUint64(&c.hits, 0)
	atomic.StoreUint64(&c.misses, 0)
}
