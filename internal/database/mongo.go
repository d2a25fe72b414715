package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"users-api/internal/config"
	"users-api/internal/logging"
)

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    config.Mongo
	log    logging.Logger
}

// NewMongo creates a client for cfg.URI. The client connects lazily; an
// unreachable server at startup is logged, not fatal, and later surfaces as
// store-unavailable errors on each request.
func NewMongo(ctx context.Context, cfg config.Mongo, log logging.Logger) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	m := &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
		cfg:    cfg,
		log:    log.With("driver", config.DriverMongo, "database", cfg.Database),
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		m.log.Warn(ctx, "mongo not reachable at startup", "error", err)
	} else {
		m.log.Info(ctx, "connected to mongo")
	}

	return m, nil
}

// Collection returns the named collection of the configured database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *Mongo) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := map[string]string{"driver": config.DriverMongo}

	start := time.Now()
	err := m.client.Ping(ctx, readpref.Primary())
	latency := time.Since(start)

	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("mongo down: %v", err)
		m.log.Error(ctx, "mongo down", "error", err)
		return stats
	}

	stats["status"] = "up"
	stats["latency"] = latency.String()
	stats["database"] = m.cfg.Database
	return stats
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m.log.Info(ctx, "disconnecting from mongo")
	return m.client.Disconnect(ctx)
}
