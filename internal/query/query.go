// Package query implements the Query Surface: read-only
// projections that bypass the Session Engine and read committed store
// state directly: get-session, paginated list-sessions, and the
// leaderboard aggregation.
package query

import (
	"gridgame/internal/store"
	"gridgame/pkg/cursor"
)

type Service struct {
	store  *store.Store
	cursor *cursor.Codec
}

func New(s *store.Store, codec *cursor.Codec) *Service {
	return &Service{store: s, cursor: codec}
}
