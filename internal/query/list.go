package query

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"gridgame/internal/model"
	"gridgame/internal/store"
	apperr "gridgame/pkg/errors"
	"gridgame/pkg/logger"

	"go.uber.org/zap"
)

func unixNanoToTime(nanos int64) time.Time {
	return time.Unix(0, nanos)
}

// ListSessionsInput is the Query Surface's list-sessions input:
// optional Status/HostID filters, a caller-supplied Limit (bounded by
// store.MaxListLimit), and an opaque Cursor token from a prior page.
type ListSessionsInput struct {
	Status model.Status
	HostID string
	Limit  int
	Cursor string
}

// ListSessionsResult is {items, nextCursor}; NextCursor is "" when
// there is no further page.
type ListSessionsResult struct {
	Items      []model.Session
	NextCursor string
}

// ListSessions returns sessions ordered by created_at descending with
// id as a stable secondary sort. A short-TTL Redis cache
// keyed by the filter+cursor fingerprint serves repeat polls without
// hitting Postgres; absent Redis this degrades to a plain
// read-through.
func (q *Service) ListSessions(ctx context.Context, in ListSessionsInput) (ListSessionsResult, error) {
	claims, err := q.cursor.Decode(in.Cursor)
	if err != nil {
		return ListSessionsResult{}, apperr.ErrInvalidPaging.WithDetail(err.Error())
	}

	filter := store.ListFilter{
		Status:  in.Status,
		HostID:  in.HostID,
		Limit:   in.Limit,
		AfterID: claims.ID,
	}
	if claims.ID != "" {
		t := unixNanoToTime(claims.CreatedAtUnixNano)
		filter.After = &t
	}

	fingerprint := fingerprintFilter(in)
	cacheKey := q.store.ListCacheKey(ctx, fingerprint)
	if cached, ok := q.store.ListCacheGet(ctx, cacheKey); ok {
		var result ListSessionsResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	rows, err := q.store.ListSessions(ctx, filter)
	if err != nil {
		return ListSessionsResult{}, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > store.MaxListLimit {
		limit = store.MaxListLimit
	}

	result := ListSessionsResult{Items: rows}
	if len(rows) > limit {
		result.Items = rows[:limit]
		last := result.Items[len(result.Items)-1]
		next, err := q.cursor.Encode(last.CreatedAt, last.ID)
		if err != nil {
			logger.Log.Warn("failed to encode next cursor", zap.Error(err))
		} else {
			result.NextCursor = next
		}
	}

	if payload, err := json.Marshal(result); err == nil {
		q.store.ListCacheSet(ctx, cacheKey, string(payload))
	}

	return result, nil
}

func fingerprintFilter(in ListSessionsInput) string {
	raw := fmt.Sprintf("%s|%s|%d|%s", in.Status, in.HostID, in.Limit, in.Cursor)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
