package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"users-api/internal/config"
	"users-api/internal/logging"
)

type Postgres struct {
	db  *sqlx.DB
	log logging.Logger
}

// NewPostgres opens a pgx-backed pool. Connections are established lazily.
func NewPostgres(cfg config.Postgres, log logging.Logger) (*Postgres, error) {
	db, err := sqlx.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	return &Postgres{
		db:  db,
		log: log.With("driver", config.DriverPostgres, "database", cfg.Database),
	}, nil
}

func (p *Postgres) DB() *sqlx.DB {
	return p.db
}

func (p *Postgres) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := map[string]string{"driver": config.DriverPostgres}

	start := time.Now()
	err := p.db.PingContext(ctx)
	latency := time.Since(start)

	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		p.log.Error(ctx, "db down", "error", err)
		return stats
	}

	stats["status"] = "up"
	stats["latency"] = latency.String()

	dbStats := p.db.Stats()
	stats["connections"] = fmt.Sprintf("%d open, %d in use, %d idle", dbStats.OpenConnections, dbStats.InUse, dbStats.Idle)

	if dbStats.WaitCount > 0 {
		stats["wait_count"] = fmt.Sprintf("%d (total wait: %s)", dbStats.WaitCount, dbStats.WaitDuration)
	}

	return stats
}

func (p *Postgres) Close() error {
	p.log.Info(context.Background(), "disconnecting from database")
	return p.db.Close()
}
