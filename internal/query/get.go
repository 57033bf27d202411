package query

import (
	"context"

	"gridgame/internal/model"
)

// SessionDetail is the full Session projection: the session
// plus its ordered move log.
type SessionDetail struct {
	Session *model.Session
	Moves   []model.Move
}

// GetSession returns the full projection for id, or
// apperr.ErrSessionNotFound.
func (q *Service) GetSession(ctx context.Context, id string) (*SessionDetail, error) {
	sess, err := q.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	moves, err := q.store.ListMoves(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{Session: sess, Moves: moves}, nil
}
