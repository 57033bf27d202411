package engine

import (
	"context"
	"time"

	"gridgame/internal/model"
	"gridgame/internal/rules"
	apperr "gridgame/pkg/errors"
	"gridgame/pkg/ids"
	"gridgame/pkg/logger"

	"go.uber.org/zap"
)

// SubmitMove runs the move pipeline (validate, mutate, detect,
// commit) under the session's row lock so two racing requests on the
// same session serialize here.
func (e *Engine) SubmitMove(ctx context.Context, sessionID, playerID string, row, col int) (*model.Session, error) {
	tx, sess, err := e.store.LockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	switch sess.Status {
	case model.StatusWaiting:
		return nil, apperr.ErrNotActive
	case model.StatusFinished:
		return nil, apperr.ErrAlreadyFinished
	}

	if playerID != sess.HostID && (sess.GuestID == nil || *sess.GuestID != playerID) {
		return nil, apperr.ErrNotInSession
	}
	if sess.CurrentTurn == nil || playerID != *sess.CurrentTurn {
		return nil, apperr.ErrNotYourTurn
	}

	rs, ok := rules.Lookup(sess.GameType)
	if !ok {
		logger.Log.Error("session has unknown game type",
			zap.String("sessionID", sess.ID), zap.String("gameType", string(sess.GameType)))
		return nil, apperr.ErrInvariantViolation.WithDetail("session has unknown game type " + string(sess.GameType))
	}

	board, err := decodeBoard(sess.Board)
	if err != nil {
		logger.Log.Error("session board is undecodable",
			zap.String("sessionID", sess.ID), zap.Error(err))
		return nil, err
	}

	result := rs.ValidateMove(board, row, col, playerID)
	switch result.Kind {
	case rules.FailureOutOfBounds:
		return nil, apperr.ErrInvalidCoordinates
	case rules.FailureCellOccupied, rules.FailureIllegalGeometry:
		return nil, apperr.ErrCellOccupied
	}

	landRow := result.Row
	board[landRow][col] = playerID

	move := &model.Move{
		ID:        ids.New(),
		SessionID: sess.ID,
		PlayerID:  playerID,
		Row:       landRow,
		Col:       col,
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.AppendMove(move); err != nil {
		return nil, err
	}
	// AppendMove assigned move_no = N+1, which doubles as the total
	// move count the draw check needs.
	moveCount := move.MoveNo

	sess.Board, err = encodeBoard(board)
	if err != nil {
		return nil, err
	}

	switch {
	case rs.CheckWinner(board, landRow, col, playerID):
		winner := playerID
		sess.Winner = &winner
		sess.Status = model.StatusFinished
		sess.CurrentTurn = nil
	case rs.CheckDraw(board, moveCount):
		sess.Draw = true
		sess.Status = model.StatusFinished
		sess.CurrentTurn = nil
	default:
		next := otherPlayer(sess, playerID)
		sess.CurrentTurn = &next
	}

	if err := tx.UpdateSession(sess); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	e.store.PublishSessionUpdated(ctx, sess.ID)
	logger.Log.Info("move committed",
		zap.String("sessionID", sess.ID),
		zap.String("playerID", playerID),
		zap.Int("row", landRow), zap.Int("col", col),
		zap.String("status", string(sess.Status)))

	return sess, nil
}

func otherPlayer(sess *model.Session, playerID string) string {
	if playerID == sess.HostID {
		return *sess.GuestID
	}
	return sess.HostID
}
