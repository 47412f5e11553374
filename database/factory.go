package database

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jalexanderII/spatial-todo/config"
	"github.com/sirupsen/logrus"
)

// New creates a ToDoStore based on cfg.StoreBackend.
//
// Supported backends:
//
//	"mongo"  - MongoDB at cfg.DBToken (default)
//	"sqlite" - SQLite database at cfg.DataDir/todos.db
//	"memory" - In-memory (ephemeral, for testing)
//
// A Mongo connection failure is logged and the returned store keeps failing
// every operation with ErrStoreUnavailable, so the server can still start.
func New(ctx context.Context, cfg *config.Config, l *logrus.Logger) (ToDoStore, error) {
	switch cfg.StoreBackend {
	case "mongo", "":
		return StartMongoDB(ctx, cfg, l), nil
	case "sqlite":
		s, err := NewSqliteStore(filepath.Join(cfg.DataDir, "todos.db"), cfg.DBTimeout())
		if err != nil {
			return nil, err
		}
		l.Info("Connected to Database!")
		return s, nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: mongo, sqlite, memory)", cfg.StoreBackend)
	}
}
