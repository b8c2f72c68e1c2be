package tictactoe

// WinLines lists every line of three cells, rows first, then columns, then diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Winner returns the player owning a complete line, if any.
func Winner(board Board) (Player, bool) {
	for _, line := range WinLines {
		a := board[line[0].Row][line[0].Col]
		b := board[line[1].Row][line[1].Col]
		c := board[line[2].Row][line[2].Col]

		if a != Empty && a == b && b == c {
			if a == MarkX {
				return X, true
			}
			return O, true
		}
	}

	return 0, false
}

// Terminal reports whether the game is over: someone won or the board is full.
func Terminal(board Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	return board.count(Empty) == 0
}

// Utility scores a terminal board: 1 when X won, -1 when O won, 0 otherwise.
// Callers must check Terminal first.
func Utility(board Board) int {
	winner, ok := Winner(board)
	switch {
	case ok && winner == X:
		return 1
	case ok && winner == O:
		return -1
	default:
		return 0
	}
}

// Evaluate classifies the board.
func Evaluate(board Board) Outcome {
	if !Terminal(board) {
		return InProgress
	}

	switch Utility(board) {
	case 1:
		return XWins
	case -1:
		return OWins
	default:
		return Draw
	}
}
