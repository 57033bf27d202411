// Package store is the Session Store: the sole shared resource
// in the system's concurrency model. It owns the GORM connection
// to Postgres (or an in-memory SQLite handle in tests), an optional
// Redis client backing the distributed lock / pub-sub / list cache,
// and exposes transactional row-locking so the engine can serialize
// the critical section of a move.
package store

import (
	"gridgame/internal/model"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Store is safe for concurrent use: every method either opens its
// own transaction or performs a single read.
type Store struct {
	db  *gorm.DB
	rdb *redis.Client
}

// New builds a Store. rdb may be nil: the distributed lock, pub/sub,
// and list cache all degrade to no-ops without it (a single-replica
// deployment relies on Postgres row locking alone).
func New(db *gorm.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

// Migrate creates/updates the schema for the engine's three tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&model.User{}, &model.Session{}, &model.Move{})
}
