// Package cache provides an in-memory key/value store with per-entry
// expiration. It sits in front of the upstream travel-data provider so that
// identical searches within the TTL window skip the expensive remote call.
//
// The store is process-local: multiple server instances each hold independent
// caches, and the staleness window is bounded by the TTL. Expired entries are
// never returned; a background janitor reclaims them so memory stays bounded
// without an eviction-order policy.
package cache

import (
	"sync"
	"time"

	"github.com/xuanthe01656/travelhub/internal/infrastructure/timeutil"
)

// Default store parameters.
const (
	// DefaultTTL applies when Set is called without an explicit TTL.
	DefaultTTL = 30 * time.Minute

	// FlightTTL is shorter because flight prices are more volatile.
	FlightTTL = 15 * time.Minute

	// DefaultSweepInterval is how often the janitor reclaims expired entries.
	DefaultSweepInterval = time.Minute
)

// entry pairs a cached value with its expiration instant.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is a TTL key/value store safe for concurrent use. Two concurrent
// misses for the same key may both go upstream; the second write simply
// overwrites the first. That stampede is accepted rather than suppressed.
type Store[V any] struct {
	mu         sync.RWMutex
	entries    map[string]entry[V]
	defaultTTL time.Duration
	clock      timeutil.Clock

	closeOnce sync.Once
	done      chan struct{}
}

// Option configures a Store.
type Option[V any] func(*Store[V])

// WithClock substitutes the time source, so tests can expire entries without
// sleeping.
func WithClock[V any](clock timeutil.Clock) Option[V] {
	return func(s *Store[V]) {
		s.clock = clock
	}
}

// New creates a Store and starts its janitor goroutine.
// Non-positive defaultTTL or sweepInterval fall back to the package defaults.
// Call Close to stop the janitor.
func New[V any](defaultTTL, sweepInterval time.Duration, opts ...Option[V]) *Store[V] {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}

	s := &Store[V]{
		entries:    make(map[string]entry[V]),
		defaultTTL: defaultTTL,
		clock:      timeutil.NewRealClock(),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.sweep(sweepInterval)

	return s
}

// Get returns the value stored under key. It never returns an expired entry,
// even if the janitor has not reclaimed it yet.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || !s.clock.Now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the store's default TTL.
func (s *Store[V]) Set(key string, value V) {
	s.SetTTL(key, value, s.defaultTTL)
}

// SetTTL stores value under key with an explicit TTL, overwriting any
// existing entry and its expiration. A non-positive ttl uses the default.
func (s *Store[V]) SetTTL(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{
		value:     value,
		expiresAt: s.clock.Now().Add(ttl),
	}
}

// Delete removes the entry for key, if any.
func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Len returns the number of entries currently held, including entries that
// have expired but not yet been swept.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the janitor goroutine. The store remains usable afterwards;
// only the periodic sweep stops.
func (s *Store[V]) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// sweep periodically removes expired entries to bound memory growth.
func (s *Store[V]) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.reclaim()
		case <-s.done:
			return
		}
	}
}

// reclaim deletes every expired entry.
func (s *Store[V]) reclaim() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for key, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}
