package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the payload served by the health endpoint: liveness plus
// connection pool counters.
type HealthStatus struct {
	Status            string `json:"status"`
	ResponseTime      int64  `json:"response_time_ms"`
	OpenConnections   int    `json:"open_connections"`
	InUse             int    `json:"in_use"`
	Idle              int    `json:"idle"`
	WaitCount         int64  `json:"wait_count"`
	WaitDuration      int64  `json:"wait_duration_ms"`
	MaxOpenConns      int    `json:"max_open_conns"`
	MaxIdleClosed     int64  `json:"max_idle_closed"`
	MaxLifetimeClosed int64  `json:"max_lifetime_closed"`
}

// Health pings the database and reports pool statistics. A failed ping still
// returns a status payload alongside the error so callers can serve it.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:            "healthy",
		ResponseTime:      time.Since(start).Milliseconds(),
		OpenConnections:   stats.OpenConnections,
		InUse:             stats.InUse,
		Idle:              stats.Idle,
		WaitCount:         stats.WaitCount,
		WaitDuration:      stats.WaitDuration.Milliseconds(),
		MaxOpenConns:      stats.MaxOpenConnections,
		MaxIdleClosed:     stats.MaxIdleClosed,
		MaxLifetimeClosed: stats.MaxLifetimeClosed,
	}, nil
}
