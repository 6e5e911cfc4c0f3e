// Package presence tracks live websocket connections per user. A user is
// online while they hold at least one open connection; the same account may
// connect from several devices at once.
package presence

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Registry is a concurrency-safe map from user id to their open websocket
// connections. It implements service.PresenceTracker.
type Registry struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]map[*websocket.Conn]struct{}
}

// NewRegistry is the constructor for Registry.
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[uuid.UUID]map[*websocket.Conn]struct{}),
	}
}

// Add registers a connection for a user.
func (r *Registry) Add(userID uuid.UUID, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		set = make(map[*websocket.Conn]struct{})
		r.conns[userID] = set
	}
	set[conn] = struct{}{}
}

// Remove unregisters a connection. The user goes offline once their last
// connection is removed.
func (r *Registry) Remove(userID uuid.UUID, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(r.conns, userID)
	}
}

// IsOnline reports whether the user holds at least one live connection.
func (r *Registry) IsOnline(userID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns[userID]) > 0
}

// OnlineCount returns the number of distinct online users.
func (r *Registry) OnlineCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}
