package store

import (
	"context"
	"fmt"
	"time"
)

// listCacheVersionKey is bumped on every session mutation so cached
// list-sessions pages invalidate without tracking individual cache
// keys. Absent Redis, ListCacheGet/Set are no-ops and list_sessions
// simply always reads through to Postgres.
const listCacheVersionKey = "sessions:list:version"
const listCacheTTL = 5 * time.Second

func (s *Store) listCacheVersion(ctx context.Context) int64 {
	if s.rdb == nil {
		return 0
	}
	v, err := s.rdb.Get(ctx, listCacheVersionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (s *Store) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	s.rdb.Incr(ctx, listCacheVersionKey)
}

// ListCacheKey builds the versioned cache key for a given filter
// fingerprint (the query package owns computing that fingerprint).
func (s *Store) ListCacheKey(ctx context.Context, fingerprint string) string {
	return fmt.Sprintf("sessions:list:v%d:%s", s.listCacheVersion(ctx), fingerprint)
}

// ListCacheGet returns a cached JSON payload for key, if present.
func (s *Store) ListCacheGet(ctx context.Context, key string) (string, bool) {
	if s.rdb == nil {
		return "", false
	}
	v, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

// ListCacheSet stores a JSON payload for key with a short TTL.
func (s *Store) ListCacheSet(ctx context.Context, key, payload string) {
	if s.rdb == nil {
		return
	}
	s.rdb.Set(ctx, key, payload, listCacheTTL)
}
