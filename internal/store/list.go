package store

import (
	"context"
	"fmt"
	"time"

	"gridgame/internal/model"
	apperr "gridgame/pkg/errors"
)

// MaxListLimit is the hard ceiling list_sessions enforces regardless
// of what a caller requests.
const MaxListLimit = 100

// ListFilter selects and paginates sessions for the Query Surface's
// list-sessions operation. Status and HostID are optional
// equality filters; After* encode a keyset cursor position. Sessions
// are returned strictly after (After, AfterID) in the
// created_at DESC, id DESC order, so pagination is stable even as new
// sessions are created concurrently.
type ListFilter struct {
	Status  model.Status
	HostID  string
	Limit   int
	After   *time.Time
	AfterID string
}

// ListSessions returns up to filter.Limit+1 sessions so the caller can
// tell whether another page follows without a separate count query.
func (s *Store) ListSessions(ctx context.Context, filter ListFilter) ([]model.Session, error) {
	limit := filter.Limit
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	q := s.db.WithContext(ctx).Model(&model.Session{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.HostID != "" {
		q = q.Where("host_id = ?", filter.HostID)
	}
	if filter.After != nil && filter.AfterID != "" {
		q = q.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			*filter.After, *filter.After, filter.AfterID)
	}

	var sessions []model.Session
	err := q.Order("created_at DESC, id DESC").Limit(limit + 1).Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	return sessions, nil
}

// ListFinishedSessions returns every FINISHED session, for the
// leaderboard aggregation to fold over. The set of finished
// sessions is expected to be of a scale a single service instance can
// aggregate in memory; a future revision could push this into SQL
// GROUP BY once the schema settles on a normalized players table.
func (s *Store) ListFinishedSessions(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	err := s.db.WithContext(ctx).
		Where("status = ?", model.StatusFinished).
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStore, err)
	}
	return sessions, nil
}
