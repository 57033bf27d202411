package rules

import "testing"

func TestTicTacToeDiagonalWin(t *testing.T) {
	rs, ok := Lookup("tic_tac_toe")
	if !ok {
		t.Fatal("expected tic_tac_toe to be registered")
	}

	board := rs.InitialBoard()
	moves := []struct {
		player   string
		row, col int
	}{
		{"U1", 0, 0}, {"U2", 0, 1},
		{"U1", 1, 1}, {"U2", 0, 2},
		{"U1", 2, 2},
	}

	var won bool
	for i, m := range moves {
		result := rs.ValidateMove(board, m.row, m.col, m.player)
		if !result.OK() {
			t.Fatalf("move %d: expected ok, got failure kind %v", i, result.Kind)
		}
		board[m.row][m.col] = m.player
		won = rs.CheckWinner(board, m.row, m.col, m.player)
	}

	if !won {
		t.Fatal("expected U1 to win with the diagonal 0,0 1,1 2,2")
	}
}

func TestTicTacToeDraw(t *testing.T) {
	rs, _ := Lookup("tic_tac_toe")
	board := rs.InitialBoard()

	moves := []struct {
		player   string
		row, col int
	}{
		{"U1", 0, 0}, {"U2", 0, 1}, {"U1", 0, 2},
		{"U2", 1, 1}, {"U1", 1, 0}, {"U2", 1, 2},
		{"U1", 2, 1}, {"U2", 2, 0}, {"U1", 2, 2},
	}

	var lastWon bool
	for _, m := range moves {
		board[m.row][m.col] = m.player
		lastWon = rs.CheckWinner(board, m.row, m.col, m.player)
	}

	if lastWon {
		t.Fatal("expected no winner in this sequence")
	}
	if !rs.CheckDraw(board, len(moves)) {
		t.Fatal("expected a full board with no winner to be a draw")
	}
}

func TestTicTacToeOutOfBounds(t *testing.T) {
	rs, _ := Lookup("tic_tac_toe")
	board := rs.InitialBoard()

	result := rs.ValidateMove(board, 3, 0, "U1")
	if result.Kind != FailureOutOfBounds {
		t.Fatalf("expected out of bounds, got %v", result.Kind)
	}
}

func TestTicTacToeCellOccupied(t *testing.T) {
	rs, _ := Lookup("tic_tac_toe")
	board := rs.InitialBoard()
	board[0][0] = "U1"

	result := rs.ValidateMove(board, 0, 0, "U2")
	if result.Kind != FailureCellOccupied {
		t.Fatalf("expected cell occupied, got %v", result.Kind)
	}
}

func TestTicTacToeNoFalseWinOffAxis(t *testing.T) {
	rs, _ := Lookup("tic_tac_toe")
	board := rs.InitialBoard()
	// U1 at (0,1) and (1,0): shares neither row, col, nor either
	// diagonal with a hypothetical third cell at (2,2).
	board[0][1] = "U1"
	board[1][0] = "U1"
	board[2][2] = "U1"

	if rs.CheckWinner(board, 2, 2, "U1") {
		t.Fatal("expected no win: (0,1),(1,0),(2,2) share no line")
	}
}

func TestTicTacToeDimensions(t *testing.T) {
	rs, _ := Lookup("tic_tac_toe")
	rows, cols := rs.Dimensions()
	if rows != 3 || cols != 3 {
		t.Fatalf("expected a 3x3 board, got %dx%d", rows, cols)
	}
	board := rs.InitialBoard()
	if len(board) != rows || len(board[0]) != cols {
		t.Fatalf("expected the initial board to match Dimensions")
	}
}
