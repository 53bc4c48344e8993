package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func TestHandlePoolEvent(t *testing.T) {
	before := GetMongoMetrics()

	HandlePoolEvent(&event.PoolEvent{Type: event.ConnectionCreated})
	HandlePoolEvent(&event.PoolEvent{Type: event.ConnectionCreated})
	HandlePoolEvent(&event.PoolEvent{Type: event.GetSucceeded})
	HandlePoolEvent(&event.PoolEvent{Type: event.ConnectionReturned})
	HandlePoolEvent(&event.PoolEvent{Type: event.ConnectionClosed})
	HandlePoolEvent(&event.PoolEvent{Type: event.PoolCleared})

	after := GetMongoMetrics()
	assert.Equal(t, before.CreatedConnections+2, after.CreatedConnections)
	assert.Equal(t, before.ClosedConnections+1, after.ClosedConnections)
	assert.Equal(t, before.ActiveConnections+1, after.ActiveConnections)
	assert.Equal(t, before.CheckedOut, after.CheckedOut)
	assert.False(t, after.LastCheckTime.IsZero())
}
