package api

import "time"

type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

type playerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type moveDTO struct {
	PlayerID string `json:"playerId"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	MoveNo   int    `json:"moveNo"`
}

// sessionDTO is the canonical wire shape of a session.
type sessionDTO struct {
	ID          string      `json:"id"`
	Players     []playerDTO `json:"players"`
	Status      string      `json:"status"`
	CurrentTurn *string     `json:"currentTurn"`
	Board       [][]*string `json:"board"`
	Moves       []moveDTO   `json:"moves"`
	Winner      *string     `json:"winner"`
	Draw        bool        `json:"draw"`
	GameIcon    *string     `json:"gameIcon"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// sessionSummaryDTO is the compact projection list-sessions returns
// per item.
type sessionSummaryDTO struct {
	ID        string    `json:"id"`
	Host      playerDTO `json:"host"`
	GameIcon  *string   `json:"gameIcon"`
	Status    string    `json:"status"`
	Players   []playerDTO `json:"players"`
	CreatedAt time.Time `json:"createdAt"`
}

type listSessionsResponse struct {
	Items      []sessionSummaryDTO `json:"items"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

type leaderboardEntryDTO struct {
	UserID     string   `json:"userId"`
	Name       string   `json:"name"`
	Icon       string   `json:"icon"`
	Wins       int      `json:"wins"`
	Losses     int      `json:"losses"`
	Draws      int      `json:"draws"`
	Efficiency *float64 `json:"efficiency"`
}

// createUserRequest is the body of POST /users.
type createUserRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// createSessionRequest is the body of POST /sessions.
type createSessionRequest struct {
	HostID   string `json:"hostId" binding:"required"`
	HostName string `json:"hostName"`
	HostIcon string `json:"hostIcon"`
	GameIcon string `json:"gameIcon"`
	GameType string `json:"gameType"`
}

// joinSessionRequest is the body of POST /sessions/{id}/join.
type joinSessionRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

// submitMoveRequest is the body of POST /sessions/{id}/move.
type submitMoveRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}
