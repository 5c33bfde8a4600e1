// Package memory implements the repositories in process.
// It backs STORE_DRIVER=memory for local development and the service tests.
package memory

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/model"
)

// Store holds every table behind one lock, so conditional writes are atomic.
type Store struct {
	mu sync.RWMutex

	users         *table[model.User]
	videos        *table[model.Video]
	comments      *table[model.Comment]
	tweets        *table[model.Tweet]
	playlists     *table[model.Playlist]
	subscriptions *table[model.Subscription]

	// pairs indexes subscriptions by (subscriber, channel), like the unique
	// index of the database stores.
	pairs map[pairKey]uuid.UUID
}

type pairKey struct {
	subscriber uuid.UUID
	channel    uuid.UUID
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users:         newTable[model.User](),
		videos:        newTable[model.Video](),
		comments:      newTable[model.Comment](),
		tweets:        newTable[model.Tweet](),
		playlists:     newTable[model.Playlist](),
		subscriptions: newTable[model.Subscription](),
		pairs:         make(map[pairKey]uuid.UUID),
	}
}

type table[T any] struct {
	rows map[uuid.UUID]*entry[T]
	next int64
}

type entry[T any] struct {
	seq int64
	val T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]*entry[T])}
}

func (t *table[T]) insert(id uuid.UUID, v T) bool {
	if _, exists := t.rows[id]; exists {
		return false
	}
	t.next++
	t.rows[id] = &entry[T]{seq: t.next, val: v}
	return true
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	e, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return e.val, true
}

func (t *table[T]) put(id uuid.UUID, v T) {
	if e, ok := t.rows[id]; ok {
		e.val = v
	}
}

func (t *table[T]) remove(id uuid.UUID) (T, bool) {
	e, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(t.rows, id)
	return e.val, true
}

// ordered returns the rows in insertion order.
func (t *table[T]) ordered() []T {
	entries := make([]*entry[T], 0, len(t.rows))
	for _, e := range t.rows {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *entry[T]) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.val
	}
	return out
}
