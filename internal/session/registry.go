package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry maps browser session ids to sessions.
type Registry struct {
	mu    sync.Mutex
	store PostStore
	now   func() time.Time
	items map[string]*entry
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewRegistry returns an empty registry whose sessions write to store.
func NewRegistry(store PostStore) *Registry {
	return &Registry{
		store: store,
		now:   time.Now,
		items: make(map[string]*entry),
	}
}

// Start creates a session under a fresh random id.
func (r *Registry) Start() (string, *Session) {
	id := uuid.NewString()
	s := New(r.store)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id] = &entry{session: s, lastSeen: r.now()}
	return id, s
}

// Lookup returns the session for id and marks it as used.
func (r *Registry) Lookup(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.session, true
}

// Prune drops sessions idle for longer than maxIdle and returns how many
// were removed.
func (r *Registry) Prune(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.items {
		if e.lastSeen.Before(cutoff) {
			delete(r.items, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
