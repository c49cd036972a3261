package meta

import (
	"sync"

	"github.com/coregx/thompson/dfa/lazy"
)

// runtimePool hands out lazy DFA runtimes for concurrent searches.
//
// A runtime holds the current subset and closure scratch space, so it is not
// thread-safe. Each search takes its own runtime and returns it afterwards.
// This follows the stdlib regexp pattern of using sync.Pool for concurrent
// safety.
//
// Usage pattern:
//
//	rt := pool.get()
//	defer pool.put(rt)
//	rt.Accept(input)
type runtimePool struct {
	pool sync.Pool
	dfa  *lazy.DFA
}

// newRuntimePool creates a pool of runtimes over d.
func newRuntimePool(d *lazy.DFA) *runtimePool {
	p := &runtimePool{dfa: d}
	p.pool = sync.Pool{
		New: func() any {
			return p.dfa.NewRuntime()
		},
	}
	return p
}

// get retrieves a runtime from the pool, creating one if necessary.
func (p *runtimePool) get() *lazy.Runtime {
	return p.pool.Get().(*lazy.Runtime)
}

// put returns a runtime to the pool for reuse.
func (p *runtimePool) put(rt *lazy.Runtime) {
	if rt == nil {
		return
	}
	rt.Reset()
	p.pool.Put(rt)
}
