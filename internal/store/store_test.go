package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gridgame/internal/model"
	apperr "gridgame/pkg/errors"
	"gridgame/pkg/ids"
	"gridgame/pkg/logger"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int

func newTestStore(t *testing.T) *Store {
	t.Helper()
	if logger.Log == nil {
		logger.InitLogger("debug")
	}

	testDBCounter++
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	s := New(db, nil)
	if err := s.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return s
}

func seedSession(t *testing.T, s *Store) *model.Session {
	t.Helper()
	sess := &model.Session{
		ID:        ids.New(),
		GameType:  model.GameTicTacToe,
		HostID:    "host",
		HostName:  "Host",
		Status:    model.StatusWaiting,
		Board:     datatypes.JSON(`[["","",""],["","",""],["","",""]]`),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.CreateSession(context.Background(), sess); err != nil {
		t.Fatalf("create session: %v", err)
	}
	return sess
}

func TestLockSessionNotFound(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.LockSession(context.Background(), "missing")
	if !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Fatalf("expected session not found, got %v", err)
	}
}

func TestAppendMoveNumbersContiguously(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sess := seedSession(t, s)

	for i := 0; i < 3; i++ {
		tx, _, err := s.LockSession(ctx, sess.ID)
		if err != nil {
			t.Fatalf("lock: %v", err)
		}
		move := &model.Move{
			ID:        ids.New(),
			SessionID: sess.ID,
			PlayerID:  "host",
			Row:       0,
			Col:       i,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.AppendMove(move); err != nil {
			t.Fatalf("append move %d: %v", i, err)
		}
		if move.MoveNo != i+1 {
			t.Fatalf("expected move_no %d, got %d", i+1, move.MoveNo)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("commit: %v", err)
		}
	}

	moves, err := s.ListMoves(ctx, sess.ID)
	if err != nil {
		t.Fatalf("list moves: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(moves))
	}
	for i, m := range moves {
		if m.MoveNo != i+1 {
			t.Fatalf("expected contiguous move_no sequence, got %d at index %d", m.MoveNo, i)
		}
	}
}

func TestRollbackDiscardsWrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sess := seedSession(t, s)

	tx, locked, err := s.LockSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	locked.Status = model.StatusActive
	guest := "guest"
	locked.GuestID = &guest
	if err := tx.UpdateSession(locked); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := tx.AppendMove(&model.Move{
		ID:        ids.New(),
		SessionID: sess.ID,
		PlayerID:  "host",
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	tx.Rollback()

	reloaded, err := s.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != model.StatusWaiting || reloaded.GuestID != nil {
		t.Fatalf("expected rollback to leave the session untouched, got %+v", reloaded)
	}
	moves, err := s.ListMoves(ctx, sess.ID)
	if err != nil {
		t.Fatalf("list moves: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("expected no committed moves after rollback, got %d", len(moves))
	}
}

func TestRollbackAfterCommitIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sess := seedSession(t, s)

	tx, locked, err := s.LockSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	locked.Status = model.StatusActive
	guest := "guest"
	locked.GuestID = &guest
	if err := tx.UpdateSession(locked); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	tx.Rollback()

	reloaded, err := s.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != model.StatusActive {
		t.Fatalf("expected the committed write to survive the late rollback, got %s", reloaded.Status)
	}
}

func TestListSessionsCapsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedSession(t, s)
	seedSession(t, s)

	rows, err := s.ListSessions(ctx, ListFilter{Limit: -5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected a non-positive limit to fall back to the cap, got %d rows", len(rows))
	}
}
