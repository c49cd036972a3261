package nfa

import "github.com/coregx/thompson/internal/conv"

// Context hands out state ids for one compilation. Ids increase
// monotonically and are never reused, so fragments assembled from sibling
// subtrees never share states.
//
// A Context is not safe for concurrent use; each compilation owns its own.
type Context struct {
	next  StateID
	limit int
	err   error
}

// NewContext creates an allocator that reports ErrTooComplex once more than
// limit states have been requested. A limit <= 0 means no limit.
func NewContext(limit int) *Context {
	return &Context{limit: limit}
}

// NewState allocates a fresh state id.
func (c *Context) NewState() StateID {
	if c.limit > 0 && int(c.next) >= c.limit && c.err == nil {
		c.err = ErrTooComplex
	}
	id := c.next
	c.next = StateID(conv.IntToUint32(int(c.next) + 1))
	return id
}

// Count returns the number of ids allocated so far.
func (c *Context) Count() int {
	return int(c.next)
}

// Err returns ErrTooComplex once the state limit has been exceeded.
func (c *Context) Err() error {
	return c.err
}
