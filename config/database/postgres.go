package database

import (
	"context"
	"fmt"
	"time"

	"demoapps/config"
	"demoapps/pkg/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const pingTimeout = 5 * time.Second

// Postgres opens the blog database. The handle connects lazily: a failed
// startup ping is logged, not returned, and requests fail until the server
// becomes reachable. There is no retry.
func Postgres(ctx context.Context, cfg config.Postgres) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Sugar.Warnf("Database %s on %s:%s is not reachable yet: %v", cfg.Name, cfg.Host, cfg.Port, err)
		return db, nil
	}
	logger.Sugar.Infof("Successfully connected to database %s on %s:%s", cfg.Name, cfg.Host, cfg.Port)
	return db, nil
}
