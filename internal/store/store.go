package store

import (
	"context"
	"fmt"

	"users-api/internal/config"
	"users-api/internal/database"
	"users-api/internal/logging"
	"users-api/internal/store/user"
)

// Registry holds every domain store together with the backend connection
// that serves them.
type Registry struct {
	Users user.Repository

	backend database.Service
}

// NewRegistry wraps an already constructed repository. backend may be nil for
// stores without an external connection.
func NewRegistry(users user.Repository, backend database.Service) *Registry {
	return &Registry{Users: users, backend: backend}
}

// Open connects the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*Registry, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		db, err := database.NewMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return NewRegistry(user.NewMongoStore(db.Collection(cfg.Mongo.Collection)), db), nil

	case config.DriverPostgres:
		db, err := database.NewPostgres(cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		return NewRegistry(user.NewPostgresStore(db.DB()), db), nil

	case config.DriverMemory:
		log.Warn(ctx, "using in-memory store; data is lost on restart")
		return NewRegistry(user.NewMemoryStore(), nil), nil

	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.StoreDriver)
	}
}

func (r *Registry) Health() map[string]string {
	if r.backend == nil {
		return map[string]string{"driver": config.DriverMemory, "status": "up"}
	}
	return r.backend.Health()
}

func (r *Registry) Close() error {
	if r.backend == nil {
		return nil
	}
	return r.backend.Close()
}
