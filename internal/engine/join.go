package engine

import (
	"context"

	"gridgame/internal/model"
	apperr "gridgame/pkg/errors"
	"gridgame/pkg/logger"

	"go.uber.org/zap"
)

// JoinSession locks the session row, validates
// the joiner, and on success transitions WAITING -> ACTIVE with the
// host moving first.
func (e *Engine) JoinSession(ctx context.Context, sessionID, playerID string) (*model.Session, error) {
	tx, sess, err := e.store.LockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if sess.Status != model.StatusWaiting {
		if playerID == sess.HostID || (sess.GuestID != nil && *sess.GuestID == playerID) {
			// Idempotent re-join: tolerate client retries.
			return sess, tx.Commit()
		}
		if sess.Status == model.StatusFinished {
			return nil, apperr.ErrAlreadyFinished
		}
		return nil, apperr.ErrAlreadyFull
	}

	if playerID == sess.HostID {
		return nil, apperr.ErrCannotJoinOwnSession
	}

	guest, err := tx.GetUser(playerID)
	if err != nil {
		return nil, err
	}

	sess.GuestID = &guest.ID
	sess.GuestName = guest.Name
	sess.GuestIcon = guest.Icon
	sess.Status = model.StatusActive
	hostID := sess.HostID
	sess.CurrentTurn = &hostID

	if err := tx.UpdateSession(sess); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	e.store.PublishSessionUpdated(ctx, sess.ID)
	logger.Log.Info("guest joined session",
		zap.String("sessionID", sess.ID), zap.String("guestID", guest.ID))

	return sess, nil
}
