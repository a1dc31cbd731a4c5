// package store implements the persistent reactive store shared by the catalog and session components
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/pixelthorn/gdx/internal/storage"
)

// Unsubscribe removes a subscriber registered with [Store.Subscribe].
// Calling it more than once is harmless.
type Unsubscribe func()

// Store holds the authoritative in-memory value of type T and mirrors it to
// durable storage under a single key that the store exclusively owns.
//
// Replace is the only mutation primitive: it writes through to storage first,
// then broadcasts the new value to every subscriber. Storage and memory are
// therefore consistent at every observable instant; a failed storage write
// leaves the in-memory value untouched and is returned to the caller.
type Store[T any] struct {
	key    string
	kv     storage.KV
	logger *log.Logger

	mu    sync.Mutex
	value T

	subMu  sync.Mutex
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New creates a Store over kv at the given key, loading the persisted value.
//
// A missing key or malformed persisted data yields def; malformed data is
// never surfaced to callers, only logged.
func New[T any](kv storage.KV, key string, def T, logger *log.Logger) *Store[T] {
	s := &Store[T]{key: key, kv: kv, logger: logger, value: def}

	raw, ok, err := kv.Get(key)
	if err != nil {
		logger.Warn("failed to read persisted value, using default", "key", key, "error", err)
		return s
	}
	if !ok {
		return s
	}

	var loaded T
	if err := json.Unmarshal(raw, &loaded); err != nil {
		logger.Warn("malformed persisted value, using default", "key", key, "error", err)
		return s
	}

	s.value = loaded
	return s
}

// Snapshot returns the current in-memory value. It never blocks on I/O and never fails.
func (s *Store[T]) Snapshot() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Replace sets the in-memory value, writes it through to durable storage, and
// then notifies every current subscriber with the new value.
//
// If the storage write fails the in-memory value is left unchanged, no
// subscriber is notified, and the error is returned to the caller.
func (s *Store[T]) Replace(v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", s.key, err)
	}

	s.mu.Lock()
	if err := s.kv.Set(s.key, raw); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to persist key %s: %w", s.key, err)
	}
	s.value = v
	s.mu.Unlock()

	s.broadcast(v)
	return nil
}

// Subscribe registers fn to receive the current value immediately and every
// subsequent value on mutation, in emission order, until unsubscribed.
//
// The replay of the current value on subscription is part of the contract,
// not a side effect; consumers rely on it to render initial state.
// Fan-out is synchronous: Replace does not return until every subscriber has
// run, so subscribers must not do long-running work inline. A subscriber may
// itself call Replace; guarding against unbounded recursion is the caller's
// responsibility.
func (s *Store[T]) Subscribe(fn func(T)) Unsubscribe {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	s.subMu.Unlock()

	fn(s.Snapshot())

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// broadcast invokes every subscriber with v, outside the value lock so that
// subscribers may trigger further mutations.
func (s *Store[T]) broadcast(v T) {
	s.subMu.Lock()
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
}
