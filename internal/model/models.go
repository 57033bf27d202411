// Package model defines the GORM-persisted shapes of the session
// engine's aggregate: User, Session, and Move.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// GameType is the closed set of board games the Rules Registry knows
// how to play.
type GameType string

const (
	GameTicTacToe   GameType = "tic_tac_toe"
	GameConnectFour GameType = "connect_four"
)

// Status is a Session's place in the WAITING -> ACTIVE -> FINISHED
// state machine. FINISHED is absorbing.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusActive   Status = "ACTIVE"
	StatusFinished Status = "FINISHED"
)

// User is an opaque player identity. Immutable after creation; a
// session references users by id only (weak reference, never
// navigated back) so user deletion stays out of scope.
type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"not null"`
	Icon      string
	CreatedAt time.Time
}

// Session is the central aggregate: a two-player
// game's roster, board, and lifecycle state.
type Session struct {
	ID       string   `gorm:"primaryKey;size:36"`
	GameType GameType `gorm:"not null"`
	GameIcon string

	HostID   string `gorm:"not null;index"`
	HostName string
	HostIcon string

	GuestID   *string `gorm:"index"`
	GuestName string
	GuestIcon string

	Status      Status `gorm:"not null;index"`
	CurrentTurn *string

	// Board is a JSON-serialized 2D array of player ids, with "" for
	// an empty cell (rendered as null on the wire); shape dictated by
	// GameType.
	Board datatypes.JSON `gorm:"type:jsonb;not null"`

	Winner *string
	Draw   bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"index"`
}

func (Session) TableName() string { return "sessions" }

// Move is one append-only placement in a session's history, ordered
// by MoveNo (1-based, contiguous per session).
type Move struct {
	ID        string `gorm:"primaryKey;size:36"`
	SessionID string `gorm:"not null;index"`
	PlayerID  string `gorm:"not null"`
	Row       int    `gorm:"not null"`
	Col       int    `gorm:"not null"`
	MoveNo    int    `gorm:"not null"`
	CreatedAt time.Time
}

func (Move) TableName() string { return "moves" }
