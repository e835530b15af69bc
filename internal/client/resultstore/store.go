// Package resultstore holds the last assessment result in memory and mirrors
// every write into durable storage so it survives a restart.
//
// Writes are synchronised, reads are not: memory is refreshed from storage
// only when LoadFromStorage is called, never because another process
// changed the stored value.
package resultstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/moodscreen/internal/client/storage"
)

// ErrMalformedResult is returned by LoadFromStorage when the stored blob does
// not decode, or decodes into a value that fails validation.
var ErrMalformedResult = errors.New("malformed stored result")

// Validator is implemented by result types that check themselves after
// decoding.
type Validator interface {
	Validate() error
}

type Store[T any] struct {
	repo storage.Repository
	key  string

	// writeMu serialises writers so memory and storage always end up
	// holding the same last value. mu only guards the fields below.
	writeMu sync.Mutex

	mu     sync.RWMutex
	value  T
	loaded bool

	subMu  sync.Mutex
	subs   map[int]func(T)
	nextID int
}

func New[T any](repo storage.Repository) *Store[T] {
	return &Store[T]{
		repo: repo,
		key:  storage.KeyAssessmentResult,
		subs: make(map[int]func(T)),
	}
}

// Result returns the in-memory value and whether one has been set or loaded.
func (s *Store[T]) Result() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.loaded
}

// SetResult replaces the value wholesale and writes its JSON to storage.
// Memory is updated first; a failing write leaves memory ahead of storage
// and the error is returned. Subscribers hear only about persisted values.
func (s *Store[T]) SetResult(ctx context.Context, v T) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.value = v
	s.loaded = true
	s.mu.Unlock()

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := s.repo.Set(ctx, s.key, b); err != nil {
		return fmt.Errorf("persist result: %w", err)
	}

	s.notify(v)
	return nil
}

// LoadFromStorage overwrites memory with the stored value. When nothing is
// stored, memory is left exactly as it was.
func (s *Store[T]) LoadFromStorage(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	b, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("read result: %w", err)
	}
	if len(b) == 0 {
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResult, err)
	}
	if val, ok := any(v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedResult, err)
		}
	}

	s.mu.Lock()
	s.value = v
	s.loaded = true
	s.mu.Unlock()

	s.notify(v)
	return nil
}

// Clear drops the stored value and resets memory.
func (s *Store[T]) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear result: %w", err)
	}
	s.Forget()
	return nil
}

// Forget resets memory only, for when storage was cleared elsewhere.
func (s *Store[T]) Forget() {
	var zero T
	s.mu.Lock()
	s.value = zero
	s.loaded = false
	s.mu.Unlock()
}

// Subscribe registers fn to be called with every new value. The returned
// function removes the subscription. fn runs while the store holds its write
// lock, so it must not write to the store.
func (s *Store[T]) Subscribe(fn func(T)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store[T]) notify(v T) {
	s.subMu.Lock()
	fns := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
