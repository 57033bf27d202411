package rules

import "testing"

func TestConnectFourVerticalWin(t *testing.T) {
	rs, ok := Lookup("connect_four")
	if !ok {
		t.Fatal("expected connect_four to be registered")
	}
	board := rs.InitialBoard()

	cols := []struct {
		player string
		col    int
	}{
		{"U1", 3}, {"U2", 4},
		{"U1", 3}, {"U2", 4},
		{"U1", 3}, {"U2", 4},
		{"U1", 3},
	}

	var won bool
	for i, m := range cols {
		result := rs.ValidateMove(board, 0, m.col, m.player)
		if !result.OK() {
			t.Fatalf("move %d: expected ok, got failure kind %v", i, result.Kind)
		}
		board[result.Row][m.col] = m.player
		won = rs.CheckWinner(board, result.Row, m.col, m.player)
	}

	if !won {
		t.Fatal("expected U1 to win with four in column 3")
	}
	for r := 2; r <= 5; r++ {
		if board[r][3] != "U1" {
			t.Fatalf("expected U1 at (%d,3), got %q", r, board[r][3])
		}
	}
}

func TestConnectFourDropRowComputedFromColumn(t *testing.T) {
	rs, _ := Lookup("connect_four")
	board := rs.InitialBoard()

	first := rs.ValidateMove(board, 0, 2, "U1")
	if first.Row != connectFourRows-1 {
		t.Fatalf("expected first drop into column 2 to land on row %d, got %d", connectFourRows-1, first.Row)
	}
	board[first.Row][2] = "U1"

	second := rs.ValidateMove(board, 99, 2, "U2")
	if second.Row != connectFourRows-2 {
		t.Fatalf("expected second drop to land on row %d regardless of requested row, got %d", connectFourRows-2, second.Row)
	}
}

func TestConnectFourColumnFull(t *testing.T) {
	rs, _ := Lookup("connect_four")
	board := rs.InitialBoard()
	for r := 0; r < connectFourRows; r++ {
		board[r][0] = "U1"
	}

	result := rs.ValidateMove(board, 0, 0, "U2")
	if result.Kind != FailureCellOccupied {
		t.Fatalf("expected cell occupied for a full column, got %v", result.Kind)
	}
}

func TestConnectFourNoFloatingPieces(t *testing.T) {
	rs, _ := Lookup("connect_four")
	board := rs.InitialBoard()

	drops := []int{2, 2, 2}
	for _, col := range drops {
		result := rs.ValidateMove(board, 0, col, "U1")
		board[result.Row][col] = "U1"
	}

	for r := connectFourRows - 1; r >= connectFourRows-3; r-- {
		if board[r][2] != "U1" {
			t.Fatalf("expected contiguous stack from the bottom, gap at row %d", r)
		}
	}
	for r := 0; r < connectFourRows-3; r++ {
		if board[r][2] != "" {
			t.Fatalf("expected no pieces above the stack, found one at row %d", r)
		}
	}
}

func TestConnectFourDimensions(t *testing.T) {
	rs, _ := Lookup("connect_four")
	rows, cols := rs.Dimensions()
	if rows != 6 || cols != 7 {
		t.Fatalf("expected a 6x7 board, got %dx%d", rows, cols)
	}
	board := rs.InitialBoard()
	if len(board) != rows || len(board[0]) != cols {
		t.Fatalf("expected the initial board to match Dimensions")
	}
}
