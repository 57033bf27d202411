package api

import (
	"encoding/json"

	"gridgame/internal/model"
	"gridgame/internal/query"
)

// ptr returns nil for the empty string, &s otherwise: the boundary
// between the store's "" empty-cell convention and the wire's JSON
// null.
func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toPlayerDTO(id, name, icon string) playerDTO {
	return playerDTO{ID: id, Name: name, Icon: icon}
}

func toBoardDTO(raw []byte) ([][]*string, error) {
	var rows [][]string
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	out := make([][]*string, len(rows))
	for i, row := range rows {
		out[i] = make([]*string, len(row))
		for j, cell := range row {
			out[i][j] = ptr(cell)
		}
	}
	return out, nil
}

func toSessionDTO(sess *model.Session, moves []model.Move) (*sessionDTO, error) {
	board, err := toBoardDTO([]byte(sess.Board))
	if err != nil {
		return nil, err
	}

	players := []playerDTO{toPlayerDTO(sess.HostID, sess.HostName, sess.HostIcon)}
	if sess.GuestID != nil {
		players = append(players, toPlayerDTO(*sess.GuestID, sess.GuestName, sess.GuestIcon))
	}

	moveDTOs := make([]moveDTO, len(moves))
	for i, m := range moves {
		moveDTOs[i] = moveDTO{PlayerID: m.PlayerID, Row: m.Row, Col: m.Col, MoveNo: m.MoveNo}
	}

	return &sessionDTO{
		ID:          sess.ID,
		Players:     players,
		Status:      string(sess.Status),
		CurrentTurn: sess.CurrentTurn,
		Board:       board,
		Moves:       moveDTOs,
		Winner:      sess.Winner,
		Draw:        sess.Draw,
		GameIcon:    ptr(sess.GameIcon),
		CreatedAt:   sess.CreatedAt,
	}, nil
}

func toSessionSummaryDTO(sess model.Session) sessionSummaryDTO {
	players := []playerDTO{toPlayerDTO(sess.HostID, sess.HostName, sess.HostIcon)}
	if sess.GuestID != nil {
		players = append(players, toPlayerDTO(*sess.GuestID, sess.GuestName, sess.GuestIcon))
	}
	return sessionSummaryDTO{
		ID:        sess.ID,
		Host:      toPlayerDTO(sess.HostID, sess.HostName, sess.HostIcon),
		GameIcon:  ptr(sess.GameIcon),
		Status:    string(sess.Status),
		Players:   players,
		CreatedAt: sess.CreatedAt,
	}
}

func toListSessionsResponse(result query.ListSessionsResult) listSessionsResponse {
	items := make([]sessionSummaryDTO, len(result.Items))
	for i, s := range result.Items {
		items[i] = toSessionSummaryDTO(s)
	}
	return listSessionsResponse{Items: items, NextCursor: result.NextCursor}
}

func toLeaderboardDTO(entries []query.LeaderboardEntry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = leaderboardEntryDTO{
			UserID:     e.UserID,
			Name:       e.Name,
			Icon:       e.Icon,
			Wins:       e.Wins,
			Losses:     e.Losses,
			Draws:      e.Draws,
			Efficiency: e.Efficiency,
		}
	}
	return out
}
