package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gridgame/internal/model"
	apperr "gridgame/pkg/errors"
	"gridgame/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// distributedLockTTL bounds how long a Redis advisory lock survives a
// crashed holder; it is refreshed by nothing, so it must comfortably
// exceed the time any single move transaction can take.
const distributedLockTTL = 10 * time.Second

// distributedLockPollInterval is how often a blocked caller retries
// the Redis SETNX while waiting for the session lock.
const distributedLockPollInterval = 25 * time.Millisecond

// Tx wraps one locked session's open transaction. The zero value is
// not usable; obtain one from Store.LockSession and always follow it
// with exactly one Commit or Rollback.
type Tx struct {
	db     *gorm.DB
	unlock func()
	done   bool
}

// LockSession begins a transaction and acquires an exclusive row lock
// on the session. The wait is blocking with no
// timeout at this layer; callers impose one via ctx. When rdb is
// configured, a Redis SETNX-based advisory lock is acquired first so
// that multiple API replicas pointed at one Postgres serialize here,
// at the cheap network hop, rather than piling up inside Postgres.
func (s *Store) LockSession(ctx context.Context, sessionID string) (*Tx, *model.Session, error) {
	unlock, err := s.acquireDistributedLock(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		unlock()
		return nil, nil, fmt.Errorf("%w: %v", apperr.ErrStore, tx.Error)
	}

	var session model.Session
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error
	if err != nil {
		tx.Rollback()
		unlock()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.ErrSessionNotFound
		}
		return nil, nil, fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}

	return &Tx{db: tx, unlock: unlock}, &session, nil
}

// Commit persists the transaction's writes and releases the lock.
func (t *Tx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	defer t.unlock()
	if err := t.db.Commit().Error; err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	return nil
}

// Rollback discards the transaction's writes and releases the lock.
// Safe to call after a Commit (no-op), so a deferred Rollback
// following an explicit Commit never undoes committed work.
func (t *Tx) Rollback() {
	if t.done {
		return
	}
	t.done = true
	defer t.unlock()
	t.db.Rollback()
}

// acquireDistributedLock blocks until it owns "lock:session:<id>" in
// Redis, or ctx is cancelled. With no Redis configured it is a no-op:
// Postgres's row lock is the sole serialization point (single-replica
// deployments, and the in-memory SQLite test harness).
func (s *Store) acquireDistributedLock(ctx context.Context, sessionID string) (func(), error) {
	if s.rdb == nil {
		return func() {}, nil
	}

	key := fmt.Sprintf("lock:session:%s", sessionID)
	ticker := time.NewTicker(distributedLockPollInterval)
	defer ticker.Stop()

	for {
		ok, err := s.rdb.SetNX(ctx, key, 1, distributedLockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: redis lock: %v", apperr.ErrStore, err)
		}
		if ok {
			return func() {
				if err := s.rdb.Del(context.Background(), key).Err(); err != nil {
					logger.Log.Warn("failed to release session lock",
						zap.String("sessionID", sessionID), zap.Error(err))
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
