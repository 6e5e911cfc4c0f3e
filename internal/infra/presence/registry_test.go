package presence

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_AddRemove(t *testing.T) {
	registry := NewRegistry()
	userID := uuid.New()
	connA := &websocket.Conn{}
	connB := &websocket.Conn{}

	assert.False(t, registry.IsOnline(userID))

	registry.Add(userID, connA)
	registry.Add(userID, connB)
	assert.True(t, registry.IsOnline(userID))
	assert.Equal(t, 1, registry.OnlineCount())

	// Still online while one connection remains
	registry.Remove(userID, connA)
	assert.True(t, registry.IsOnline(userID))

	registry.Remove(userID, connB)
	assert.False(t, registry.IsOnline(userID))
	assert.Equal(t, 0, registry.OnlineCount())
}

func TestRegistry_RemoveUnknownUser(t *testing.T) {
	registry := NewRegistry()

	// Removing a connection for an unknown user is a no-op
	registry.Remove(uuid.New(), &websocket.Conn{})
	assert.Equal(t, 0, registry.OnlineCount())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID := uuid.New()
			conn := &websocket.Conn{}
			registry.Add(userID, conn)
			registry.IsOnline(userID)
			registry.Remove(userID, conn)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, registry.OnlineCount())
}
