package store

import (
	"context"
	"fmt"

	"gridgame/internal/model"
	apperr "gridgame/pkg/errors"
)

// AppendMove inserts a move within the open transaction, assigning
// MoveNo = 1 + max(existing MoveNo for this session) so values stay
// the contiguous sequence 1..N in insertion order. Must only be
// called on a Tx returned by LockSession so the max-read and insert
// are serialized by the session row lock.
func (t *Tx) AppendMove(move *model.Move) error {
	var maxNo int
	err := t.db.Model(&model.Move{}).
		Where("session_id = ?", move.SessionID).
		Select("COALESCE(MAX(move_no), 0)").
		Scan(&maxNo).Error
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	move.MoveNo = maxNo + 1

	if err := t.db.Create(move).Error; err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	return nil
}

// ListMoves returns a session's moves ordered by MoveNo ascending.
func (s *Store) ListMoves(ctx context.Context, sessionID string) ([]model.Move, error) {
	var moves []model.Move
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("move_no ASC").
		Find(&moves).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	return moves, nil
}

// MoveCounts returns, for every finished session id, how many moves
// it recorded. The leaderboard's efficiency metric divides this by
// two to approximate the winner's own move count.
func (s *Store) MoveCounts(ctx context.Context, sessionIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		SessionID string
		Count     int
	}
	err := s.db.WithContext(ctx).Model(&model.Move{}).
		Select("session_id, COUNT(*) as count").
		Where("session_id IN ?", sessionIDs).
		Group("session_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	for _, r := range rows {
		counts[r.SessionID] = r.Count
	}
	return counts, nil
}
