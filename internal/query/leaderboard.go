package query

import (
	"context"
	"sort"

	apperr "gridgame/pkg/errors"
)

// Metric selects the leaderboard's sort dimension.
type Metric string

const (
	MetricWinCount   Metric = "win_count"
	MetricEfficiency Metric = "efficiency"
)

// MaxLeaderboardLimit bounds the requested top-N.
const MaxLeaderboardLimit = 100

// LeaderboardEntry is one player's aggregated record over FINISHED
// sessions.
type LeaderboardEntry struct {
	UserID     string
	Name       string
	Icon       string
	Wins       int
	Losses     int
	Draws      int
	Efficiency *float64 // nil when Wins == 0
}

type playerAccum struct {
	name          string
	icon          string
	wins          int
	losses        int
	draws         int
	movesOverWins int // sum of moves_played across won sessions; halved when efficiency is computed
}

// Leaderboard folds every FINISHED session into per-user win/loss/draw
// counts and an efficiency figure, then sorts per metric.
func (q *Service) Leaderboard(ctx context.Context, metric Metric, limit int) ([]LeaderboardEntry, error) {
	if metric != MetricWinCount && metric != MetricEfficiency {
		return nil, apperr.ErrInvalidMetric.WithDetail(string(metric))
	}
	if limit <= 0 || limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	sessions, err := q.store.ListFinishedSessions(ctx)
	if err != nil {
		return nil, err
	}

	wonSessionIDs := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if s.Winner != nil {
			wonSessionIDs = append(wonSessionIDs, s.ID)
		}
	}
	moveCounts, err := q.store.MoveCounts(ctx, wonSessionIDs)
	if err != nil {
		return nil, err
	}

	accum := map[string]*playerAccum{}
	ensure := func(id, name, icon string) *playerAccum {
		a, ok := accum[id]
		if !ok {
			a = &playerAccum{name: name, icon: icon}
			accum[id] = a
		}
		return a
	}

	for _, s := range sessions {
		if s.GuestID == nil {
			continue
		}
		ensure(s.HostID, s.HostName, s.HostIcon)
		ensure(*s.GuestID, s.GuestName, s.GuestIcon)

		switch {
		case s.Draw:
			accum[s.HostID].draws++
			accum[*s.GuestID].draws++
		case s.Winner != nil:
			winnerID := *s.Winner
			loserID := s.HostID
			if winnerID == s.HostID {
				loserID = *s.GuestID
			}
			winner := accum[winnerID]
			winner.wins++
			if count, ok := moveCounts[s.ID]; ok {
				winner.movesOverWins += count
			}
			if loser, ok := accum[loserID]; ok {
				loser.losses++
			}
		}
	}

	entries := make([]LeaderboardEntry, 0, len(accum))
	for id, a := range accum {
		entry := LeaderboardEntry{
			UserID: id,
			Name:   a.name,
			Icon:   a.icon,
			Wins:   a.wins,
			Losses: a.losses,
			Draws:  a.draws,
		}
		if a.wins > 0 {
			eff := float64(a.movesOverWins) / 2 / float64(a.wins)
			entry.Efficiency = &eff
		}
		entries = append(entries, entry)
	}

	sortEntries(entries, metric)

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func sortEntries(entries []LeaderboardEntry, metric Metric) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch metric {
		case MetricEfficiency:
			if a.Efficiency == nil && b.Efficiency == nil {
				return a.Name < b.Name
			}
			if a.Efficiency == nil {
				return false
			}
			if b.Efficiency == nil {
				return true
			}
			if *a.Efficiency != *b.Efficiency {
				return *a.Efficiency < *b.Efficiency
			}
			return a.Name < b.Name
		default: // MetricWinCount
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
			if a.Losses != b.Losses {
				return a.Losses < b.Losses
			}
			return a.Name < b.Name
		}
	})
}
