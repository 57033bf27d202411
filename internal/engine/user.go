package engine

import (
	"context"
	"time"

	"gridgame/internal/model"
	"gridgame/pkg/ids"
)

// CreateUser mints an opaque id and UTC timestamp for a new identity
// and persists it. The facade parses the request; the write belongs
// to the same store the engine otherwise owns.
func (e *Engine) CreateUser(ctx context.Context, name, icon string) (*model.User, error) {
	u := &model.User{
		ID:        ids.New(),
		Name:      name,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}
	if err := e.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
