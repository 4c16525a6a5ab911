package database

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Ping verifies the connection is alive. Used by health endpoints.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close shuts down the pool. Safe to call multiple times.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		log.Println("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Println("[DATABASE] Closing database connection pool...")

	// Close waits for acquired connections to be released before
	// terminating them.
	db.Pool.Close()
	db.Pool = nil

	log.Println("[DATABASE] Connection pool closed successfully")
	return nil
}

// PoolStats is a snapshot of connection pool statistics, exposed by
// the db-status diagnostics endpoint.
type PoolStats struct {
	AcquireCount            int64         `json:"acquire_count"`
	AcquireDuration         time.Duration `json:"acquire_duration"`
	AcquiredConns           int32         `json:"acquired_conns"`
	CanceledAcquireCount    int64         `json:"canceled_acquire_count"`
	ConstructingConns       int32         `json:"constructing_conns"`
	EmptyAcquireCount       int64         `json:"empty_acquire_count"`
	IdleConns               int32         `json:"idle_conns"`
	MaxConns                int32         `json:"max_conns"`
	TotalConns              int32         `json:"total_conns"`
	NewConnsCount           int64         `json:"new_conns_count"`
	MaxLifetimeDestroyCount int64         `json:"max_lifetime_destroy_count"`
	MaxIdleDestroyCount     int64         `json:"max_idle_destroy_count"`
}

// Stats returns a consistent snapshot of pool statistics.
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	rawStats := db.Pool.Stat()

	return &PoolStats{
		AcquiredConns:     rawStats.AcquiredConns(),
		ConstructingConns: rawStats.ConstructingConns(),
		IdleConns:         rawStats.IdleConns(),
		TotalConns:        rawStats.TotalConns(),
		MaxConns:          rawStats.MaxConns(),

		// Cumulative lifetime metrics.
		AcquireCount:         rawStats.AcquireCount(),
		AcquireDuration:      rawStats.AcquireDuration(),
		CanceledAcquireCount: rawStats.CanceledAcquireCount(),
		EmptyAcquireCount:    rawStats.EmptyAcquireCount(),
		NewConnsCount:        rawStats.NewConnsCount(),

		MaxLifetimeDestroyCount: rawStats.MaxLifetimeDestroyCount(),
		MaxIdleDestroyCount:     rawStats.MaxIdleDestroyCount(),
	}, nil
}
