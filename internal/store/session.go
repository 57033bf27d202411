package store

import (
	"context"
	"errors"
	"fmt"

	"gridgame/internal/model"
	apperr "gridgame/pkg/errors"

	"gorm.io/gorm"
)

// CreateSession persists a freshly created session.
func (s *Store) CreateSession(ctx context.Context, sess *model.Session) error {
	if err := s.db.WithContext(ctx).Create(sess).Error; err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	s.invalidateListCache(ctx)
	return nil
}

// GetSession loads a session outside of any lock. Readers outside a
// move transaction may observe a session at any committed state
// and never need lock_session.
func (s *Store) GetSession(ctx context.Context, id string) (*model.Session, error) {
	var sess model.Session
	err := s.db.WithContext(ctx).First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	return &sess, nil
}

// UpdateSession saves the locked session's mutated fields within the
// open transaction. Must only be called between LockSession and
// Commit/Rollback on the Tx it belongs to.
func (t *Tx) UpdateSession(sess *model.Session) error {
	if err := t.db.Save(sess).Error; err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	return nil
}
