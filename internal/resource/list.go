// Package resource provides the loading/ready/error container shared by every
// screen and command that shows a remote list
package resource

import (
	"context"
	"sync"
)

// Status is the load state of a remote list
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchFunc loads the full list from the backend
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Snapshot is a consistent copy of a list's state
type Snapshot[T any] struct {
	Status Status
	Items  []T
	Err    error
}

// List holds one remote collection. A failed reload keeps the previously
// loaded items so the screen can keep showing them next to the error.
type List[T any] struct {
	mu     sync.RWMutex
	fetch  FetchFunc[T]
	status Status
	items  []T
	err    error
}

// NewList returns an idle list backed by fetch
func NewList[T any](fetch FetchFunc[T]) *List[T] {
	return &List[T]{fetch: fetch, status: StatusIdle}
}

// Load fetches the list. Idle | Ready | Error -> Loading -> Ready | Error
func (l *List[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	l.status = StatusLoading
	l.mu.Unlock()

	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.status = StatusError
		l.err = err
		return err
	}
	l.status = StatusReady
	l.err = nil
	l.items = items
	return nil
}

// Snapshot returns a copy of the current state
func (l *List[T]) Snapshot() Snapshot[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	items := make([]T, len(l.items))
	copy(items, l.items)
	return Snapshot[T]{Status: l.status, Items: items, Err: l.err}
}

// Items returns a copy of the loaded items
func (l *List[T]) Items() []T {
	return l.Snapshot().Items
}

// Status returns the load state
func (l *List[T]) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

// Remove drops every item for which drop returns true and reports how many
// were removed. Used after a bulk delete to reflect the successful part.
func (l *List[T]) Remove(drop func(T) bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0:0]
	removed := 0
	for _, item := range l.items {
		if drop(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
	return removed
}
