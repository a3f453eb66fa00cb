package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"skinswap/utils"

	_ "github.com/lib/pq"
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

// Open connects to PostgreSQL, retrying while the server is not yet reachable
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			utils.Info("database connected", map[string]any{"attempt": attempt})
			return db, nil
		}
		utils.Warn("database ping failed", map[string]any{
			"attempt": attempt,
			"error":   err.Error(),
		})

		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("connect after %d attempts: %w", connectAttempts, err)
}
