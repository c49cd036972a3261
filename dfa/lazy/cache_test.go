package lazy

import (
	"testing"

	"github.com/coregx/thompson/nfa"
)

func TestNewCache(t *testing.T) {
	c := NewCache(10)
	if c.Size() != 0 {
		t.Errorf("NewCache.Size() = %d, want 0", c.Size())
	}
	if c.IsFull() {
		t.Error("NewCache should not be full")
	}
	if c.ClearCount() != 0 {
		t.Errorf("NewCache.ClearCount() = %d, want 0", c.ClearCount())
	}
	hits, misses, hitRate := c.Stats()
	if hits != 0 || misses != 0 || hitRate != 0 {
		t.Errorf("NewCache.Stats() = (%d, %d, %f), want (0, 0, 0)", hits, misses, hitRate)
	}
}

func TestCacheIntern(t *testing.T) {
	c := NewCache(100)

	first := NewState([]nfa.StateID{3, 1, 2}, false)
	if got := c.Intern(first); got != first {
		t.Error("Intern() of a new state should return it")
	}

	same := NewState([]nfa.StateID{1, 2, 3}, false)
	if got := c.Intern(same); got != first {
		t.Error("Intern() of an equal state should return the cached one")
	}

	if got, ok := c.Get(first.Key()); !ok || got != first {
		t.Error("Get() should find the interned state")
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}
}

func TestCacheClearsWhenFull(t *testing.T) {
	c := NewCache(2)
	c.Intern(NewState([]nfa.StateID{1}, false))
	c.Intern(NewState([]nfa.StateID{2}, false))
	if !c.IsFull() {
		t.Fatal("cache should be full")
	}

	c.Intern(NewState([]nfa.StateID{3}, false))
	if c.ClearCount() != 1 {
		t.Errorf("ClearCount() = %d, want 1", c.ClearCount())
	}
	if c.Size() != 1 {
		t.Errorf("Size() after clear = %d, want 1", c.Size())
	}
}

func TestCacheTransitions(t *testing.T) {
	c := NewCache(10)
	from := c.Intern(NewState([]nfa.StateID{0}, false))
	to := c.Intern(NewState([]nfa.StateID{1}, true))

	if _, ok := c.Next(from, 'a'); ok {
		t.Error("Next() before SetNext should miss")
	}
	c.SetNext(from, 'a', to)
	if got, ok := c.Next(from, 'a'); !ok || got != to {
		t.Error("Next() after SetNext should hit")
	}

	hits, misses, hitRate := c.Stats()
	if hits != 1 || misses != 1 || hitRate != 0.5 {
		t.Errorf("Stats() = (%d, %d, %f), want (1, 1, 0.5)", hits, misses, hitRate)
	}

	c.ResetStats()
	if hits, misses, _ := c.Stats(); hits != 0 || misses != 0 {
		t.Errorf("Stats() after reset = (%d, %d)", hits, misses)
	}

	c.Clear()
	if _, ok := c.Next(from, 'a'); ok {
		t.Error("Next() after Clear should miss")
	}
}

func TestDFAUsesCache(t *testing.T) {
	d := compileDFA(t, "ab", All, DefaultConfig())
	d.IsMatch("ab")
	d.IsMatch("ab")

	hits, _, _ := d.Cache().Stats()
	if hits == 0 {
		t.Error("second run should hit the transition cache")
	}
}

func TestComputeStateKey(t *testing.T) {
	a := NewState([]nfa.StateID{5, 1, 300}, false)
	b := NewState([]nfa.StateID{300, 5, 1}, false)
	c := NewState([]nfa.StateID{1, 5}, false)

	if a.Key() != b.Key() {
		t.Error("equal sets should share a key")
	}
	if a.Key() == c.Key() {
		t.Error("different sets should not share a key")
	}
	if got := a.NFAStates(); got[0] != 1 || got[1] != 5 || got[2] != 300 {
		t.Errorf("NFAStates() = %v, want sorted", got)
	}
	if NewState(nil, false).Key() != ComputeStateKey(nil) {
		t.Error("empty set key mismatch")
	}
}
