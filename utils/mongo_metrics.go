package utils

import (
	"sync/atomic"
	"time"

	"tonotes/metrics"

	"go.mongodb.org/mongo-driver/event"
)

type MongoMetrics struct {
	ActiveConnections  int64
	CheckedOut         int64
	CreatedConnections int64
	ClosedConnections  int64
	LastCheckTime      time.Time
}

var (
	activeConnections  atomic.Int64
	checkedOut         atomic.Int64
	createdConnections atomic.Int64
	closedConnections  atomic.Int64
	lastEvent          atomic.Int64
)

// NewPoolMonitor tracks the driver's connection pool in process counters and
// the mongo_pool_connections gauge.
func NewPoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{Event: HandlePoolEvent}
}

func HandlePoolEvent(evt *event.PoolEvent) {
	lastEvent.Store(time.Now().UnixNano())
	switch evt.Type {
	case event.ConnectionCreated:
		createdConnections.Add(1)
		activeConnections.Add(1)
	case event.ConnectionClosed:
		closedConnections.Add(1)
		activeConnections.Add(-1)
	case event.GetSucceeded:
		checkedOut.Add(1)
	case event.ConnectionReturned:
		checkedOut.Add(-1)
	default:
		return
	}
	metrics.MongoPoolConnections.WithLabelValues("open").Set(float64(activeConnections.Load()))
	metrics.MongoPoolConnections.WithLabelValues("checked_out").Set(float64(checkedOut.Load()))
}

func GetMongoMetrics() MongoMetrics {
	m := MongoMetrics{
		ActiveConnections:  activeConnections.Load(),
		CheckedOut:         checkedOut.Load(),
		CreatedConnections: createdConnections.Load(),
		ClosedConnections:  closedConnections.Load(),
	}
	if ns := lastEvent.Load(); ns != 0 {
		m.LastCheckTime = time.Unix(0, ns)
	}
	return m
}
