// Package engine implements the Session Engine: the
// transactional state machine governing a session's WAITING -> ACTIVE
// -> FINISHED lifecycle, dispatching to the Rules Registry for
// game-specific decisions and to the Session Store for locking and
// persistence.
package engine

import (
	"gridgame/internal/store"
)

// Engine is safe for concurrent use; all state lives in the Store.
type Engine struct {
	store *store.Store
}

func New(s *store.Store) *Engine {
	return &Engine{store: s}
}
