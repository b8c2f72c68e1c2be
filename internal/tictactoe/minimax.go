package tictactoe

// Sentinels sit outside the utility range so the first candidate always replaces them.
const (
	minValue = -2
	maxValue = 2
)

// MinimaxValue returns the game value of the board under perfect play by both sides.
// X maximizes and O minimizes. The whole subtree is searched on every call.
func MinimaxValue(board Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	maximizing := PlayerToMove(board) == X

	value := maxValue
	if maximizing {
		value = minValue
	}

	for _, move := range Actions(board) {
		next, err := Result(board, move)
		if err != nil {
			continue
		}

		child := MinimaxValue(next)
		if maximizing {
			value = max(value, child)
		} else {
			value = min(value, child)
		}
	}

	return value
}

// Minimax returns an optimal move for the player to move, or false when the game is over.
// Among equally good moves the first one in Actions order wins.
func Minimax(board Board) (Move, bool) {
	move, _, ok := Solve(board)
	return move, ok
}

// Solve is Minimax that also reports the value reached by the selected move.
func Solve(board Board) (Move, int, bool) {
	if Terminal(board) {
		return Move{}, Utility(board), false
	}

	maximizing := PlayerToMove(board) == X

	best := maxValue
	if maximizing {
		best = minValue
	}

	var bestMove Move
	for _, move := range Actions(board) {
		next, err := Result(board, move)
		if err != nil {
			continue
		}

		value := MinimaxValue(next)
		if (maximizing && value > best) || (!maximizing && value < best) {
			best = value
			bestMove = move
		}
	}

	return bestMove, best, true
}
