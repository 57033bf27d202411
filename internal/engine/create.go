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

// CreateSessionInput is the Engine-level input to CreateSession.
// An empty GameType defaults to tic_tac_toe inside CreateSession.
type CreateSessionInput struct {
	HostID   string
	HostName string
	HostIcon string
	GameIcon string
	GameType model.GameType
}

// CreateSession verifies the host exists, initializes a WAITING
// session with an empty board for GameType, and persists it.
func (e *Engine) CreateSession(ctx context.Context, in CreateSessionInput) (*model.Session, error) {
	gameType := in.GameType
	if gameType == "" {
		gameType = model.GameTicTacToe
	}
	rs, ok := rules.Lookup(gameType)
	if !ok {
		return nil, apperr.ErrUnknownGameType.WithDetail(string(gameType))
	}

	host, err := e.store.GetUser(ctx, in.HostID)
	if err != nil {
		return nil, err
	}

	hostName := in.HostName
	if hostName == "" {
		hostName = host.Name
	}
	hostIcon := in.HostIcon
	if hostIcon == "" {
		hostIcon = host.Icon
	}

	board, err := encodeBoard(rs.InitialBoard())
	if err != nil {
		return nil, err
	}

	sess := &model.Session{
		ID:        ids.New(),
		GameType:  gameType,
		GameIcon:  in.GameIcon,
		HostID:    host.ID,
		HostName:  hostName,
		HostIcon:  hostIcon,
		Status:    model.StatusWaiting,
		Board:     board,
		CreatedAt: time.Now().UTC(),
	}

	if err := e.store.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	logger.Log.Info("session created",
		zap.String("sessionID", sess.ID),
		zap.String("hostID", sess.HostID),
		zap.String("gameType", string(gameType)))

	return sess, nil
}
