package continuum

import "sync"

// Continuum accumulates events in arbitrary order and compiles them
// into a Timeline on demand. Compile does not consume the accumulated
// events: every call re-sorts and re-reduces from scratch, so repeated
// calls over the same events yield structurally identical timelines.
//
// Add and Compile are safe for concurrent use; the returned Timeline
// is immutable and needs no further locking.
type Continuum struct {
	mu     sync.Mutex
	events []Event
	opts   []Option
}

// New creates an empty continuum. Options are applied to every
// compilation.
func New(opts ...Option) *Continuum {
	return &Continuum{opts: opts}
}

// Add appends an event. No validation happens at this stage; invalid
// events surface when the continuum is compiled.
func (c *Continuum) Add(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

// AddAll appends multiple events.
func (c *Continuum) AddAll(events ...Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, events...)
}

// Len returns the number of accumulated events.
func (c *Continuum) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// Compile builds a Timeline from the events accumulated so far.
func (c *Continuum) Compile() (*Timeline, error) {
	c.mu.Lock()
	events := make([]Event, len(c.events))
	copy(events, c.events)
	c.mu.Unlock()

	return Compile(events, c.opts...)
}
