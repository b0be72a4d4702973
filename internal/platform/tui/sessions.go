package tui

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// SessionInfo describes one connected SSH session.
type SessionInfo struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
}

// SessionRegistry tracks active sessions.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]SessionInfo
	limit    int // 0 means unlimited
}

// NewSessionRegistry creates a registry admitting at most limit sessions.
func NewSessionRegistry(limit int) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]SessionInfo),
		limit:    max(limit, 0),
	}
}

// Register adds a session. It reports false, leaving the registry
// unchanged, when the registry is full.
func (r *SessionRegistry) Register(info SessionInfo) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[info.ID]; !ok && r.limit > 0 && len(r.sessions) >= r.limit {
		return false
	}
	r.sessions[info.ID] = info
	return true
}

// Unregister removes a session from the registry.
func (r *SessionRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns the active sessions, oldest first.
func (r *SessionRegistry) List() []SessionInfo {
	r.mu.RLock()
	list := make([]SessionInfo, 0, len(r.sessions))
	for _, s := range r.sessions {
		list = append(list, s)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b SessionInfo) int {
		if c := a.Started.Compare(b.Started); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return list
}
