// Package state provides a small refreshable cache slot. Each fetch is
// tagged with a generation so a slow response can never overwrite the
// result of a newer one.
package state

import (
	"context"
	"sync"
	"time"
)

// FetchFunc loads a fresh value from the backing source
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Slot caches one value with freshness tracking. Safe for concurrent use.
type Slot[T any] struct {
	mu         sync.Mutex
	value      T
	fetchedAt  time.Time
	populated  bool
	generation uint64

	now func() time.Time // test hook
}

// NewSlot returns an empty slot
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{now: time.Now}
}

// Get returns the cached value when it is younger than maxAge, otherwise
// runs fetch. The fetch is tagged with the slot's current generation; if
// Invalidate or a competing Get advances the generation before the fetch
// returns, the stale result is discarded and returned to the caller
// without being stored. Cancellation flows through ctx.
func (s *Slot[T]) Get(ctx context.Context, maxAge time.Duration, fetch FetchFunc[T]) (T, error) {
	s.mu.Lock()
	clock := s.now
	if clock == nil {
		clock = time.Now
	}
	if s.populated && clock().Sub(s.fetchedAt) < maxAge {
		v := s.value
		s.mu.Unlock()
		return v, nil
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	if gen == s.generation {
		s.value = value
		s.fetchedAt = clock()
		s.populated = true
	}
	s.mu.Unlock()
	return value, nil
}

// Peek returns the cached value without triggering a fetch. The second
// result reports whether the slot holds anything.
func (s *Slot[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.populated
}

// Invalidate discards the cached value and advances the generation, so
// in-flight fetches started earlier cannot repopulate the slot
func (s *Slot[T]) Invalidate() {
	s.mu.Lock()
	var zero T
	s.value = zero
	s.populated = false
	s.generation++
	s.mu.Unlock()
}
