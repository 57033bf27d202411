package store

import (
	"context"
	"errors"
	"fmt"

	"gridgame/internal/model"
	apperr "gridgame/pkg/errors"

	"gorm.io/gorm"
)

// CreateUser persists a new user identity. Users are immutable after
// creation.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	return nil
}

// GetUser loads a user by id, or apperr.ErrUserNotFound.
func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	return getUser(s.db.WithContext(ctx), id)
}

// GetUser loads a user through the open transaction. The engine must
// use this form for reads inside a locked critical section; going
// through the Store there would grab a second connection from the
// pool while the transaction holds one.
func (t *Tx) GetUser(id string) (*model.User, error) {
	return getUser(t.db, id)
}

func getUser(db *gorm.DB, id string) (*model.User, error) {
	var u model.User
	err := db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	return &u, nil
}
