package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
)

// HealthStatus describes the database connection pool state.
type HealthStatus struct {
	Connected      bool `json:"connected"`
	OpenConns      int  `json:"open_connections"`
	InUseConns     int  `json:"in_use_connections"`
	IdleConns      int  `json:"idle_connections"`
	MaxOpenAllowed int  `json:"max_open_allowed"`
}

// Health pings the database and returns pool statistics.
func Health(ctx context.Context, db *stdsql.DB) (HealthStatus, error) {
	status := HealthStatus{}

	if err := db.PingContext(ctx); err != nil {
		return status, fmt.Errorf("database ping failed: %w", err)
	}

	stats := db.Stats()
	status.Connected = true
	status.OpenConns = stats.OpenConnections
	status.InUseConns = stats.InUse
	status.IdleConns = stats.Idle
	status.MaxOpenAllowed = stats.MaxOpenConnections

	return status, nil
}
