package store

import (
	"context"
	"fmt"

	"gridgame/pkg/logger"

	"go.uber.org/zap"
)

// sessionChannel is the Redis pub/sub channel a future real-time
// gateway would subscribe to. Nothing in this service subscribes to
// it today (clients poll), but the publish doubles as the
// list-cache's invalidation signal.
func sessionChannel(sessionID string) string {
	return fmt.Sprintf("session:%s:updated", sessionID)
}

// PublishSessionUpdated announces that sessionID committed a new
// state. Best-effort: a publish failure is logged, never propagated,
// since no subscriber's correctness depends on it yet.
func (s *Store) PublishSessionUpdated(ctx context.Context, sessionID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Publish(ctx, sessionChannel(sessionID), "updated").Err(); err != nil {
		logger.Log.Warn("failed to publish session update",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	s.invalidateListCache(ctx)
}
