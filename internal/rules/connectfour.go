package rules

import "gridgame/internal/model"

const (
	connectFourRows = 6
	connectFourCols = 7
	connectFourRun  = 4
)

type connectFour struct{}

func init() {
	register(model.GameConnectFour, connectFour{})
}

func (connectFour) InitialBoard() Board {
	return newBoard(connectFourRows, connectFourCols)
}

func (connectFour) Dimensions() (rows, cols int) {
	return connectFourRows, connectFourCols
}

// ValidateMove: connect_four moves are parameterized by column only.
// The caller's row is ignored in favor of the lowest empty row the
// rule itself computes. This is the "rule verifies" framing:
// there is no client-chosen row to accept, only a column that is
// either open or full.
func (connectFour) ValidateMove(board Board, row, col int, playerID string) ValidateResult {
	if col < 0 || col >= connectFourCols {
		return ValidateResult{Kind: FailureOutOfBounds}
	}
	if board[0][col] != "" {
		return ValidateResult{Kind: FailureCellOccupied}
	}
	dropRow := -1
	for r := connectFourRows - 1; r >= 0; r-- {
		if board[r][col] == "" {
			dropRow = r
			break
		}
	}
	if dropRow == -1 {
		return ValidateResult{Kind: FailureCellOccupied}
	}
	return ValidateResult{Row: dropRow, Kind: FailureNone}
}

// CheckWinner looks for four contiguous cells through the just-placed
// cell along any of the four axes.
func (connectFour) CheckWinner(board Board, row, col int, playerID string) bool {
	dirs := [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for _, d := range dirs {
		if runLength(board, row, col, d[0], d[1], playerID) >= connectFourRun {
			return true
		}
	}
	return false
}

func (connectFour) CheckDraw(board Board, moveCount int) bool {
	return boardIsFull(board)
}
