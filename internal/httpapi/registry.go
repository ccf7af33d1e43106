package httpapi

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"

	"github.com/vovakirdan/lumen/internal/i18n"
	"github.com/vovakirdan/lumen/internal/puzzle"
)

var (
	// ErrNotFound is returned for unknown session ids.
	ErrNotFound = errors.New("httpapi: session not found")
	// ErrFull is returned when the registry already holds its maximum.
	ErrFull = errors.New("httpapi: too many sessions")
)

// entry is one live puzzle session. Its mutex serializes every request
// touching the session; the registry lock only guards the map.
type entry struct {
	mu       sync.Mutex
	id       string
	player   string
	catalog  *i18n.Catalog
	session  *puzzle.Session
	recorded bool // run already written to the store
}

// Registry is an in-memory, concurrency-safe set of sessions keyed by id.
// State is lost when the process restarts.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	max      int
}

// NewRegistry creates a registry holding at most max sessions.
// A max of zero or less means unlimited.
func NewRegistry(max int) *Registry {
	return &Registry{sessions: make(map[string]*entry), max: max}
}

// add stores e under a fresh id.
func (r *Registry) add(e *entry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.max > 0 && len(r.sessions) >= r.max {
		return "", ErrFull
	}
	id := genID()
	for r.sessions[id] != nil {
		id = genID()
	}
	e.id = id
	r.sessions[id] = e
	return id, nil
}

func (r *Registry) get(id string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (r *Registry) remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// genID creates a 22-char URL-safe random identifier.
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
