// Package store persists the unordered event log. Stores preserve
// insertion order; ordering by date and kind is the compiler's job,
// not the store's.
package store

import (
	"context"
	"sync"

	"github.com/Mindburn-Labs/continuum/pkg/continuum"
)

// EventStore is the persistence boundary for accumulated events.
type EventStore interface {
	// Append adds one event to the log.
	Append(ctx context.Context, ev continuum.Event) error

	// AppendAll adds events in slice order.
	AppendAll(ctx context.Context, events []continuum.Event) error

	// Load returns all events in insertion order.
	Load(ctx context.Context) ([]continuum.Event, error)

	// Len returns the number of stored events.
	Len(ctx context.Context) (int, error)
}

// MemoryStore is an in-memory reference implementation.
type MemoryStore struct {
	mu     sync.RWMutex
	events []continuum.Event
}

// NewMemoryStore creates an empty in-memory event store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: make([]continuum.Event, 0)}
}

func (s *MemoryStore) Append(ctx context.Context, ev continuum.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *MemoryStore) AppendAll(ctx context.Context, events []continuum.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return nil
}

func (s *MemoryStore) Load(ctx context.Context) ([]continuum.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]continuum.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *MemoryStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events), nil
}

// Replay loads every event from the store and compiles the timeline.
func Replay(ctx context.Context, s EventStore, opts ...continuum.Option) (*continuum.Timeline, error) {
	events, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return continuum.Compile(events, opts...)
}
