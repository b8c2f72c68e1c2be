package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	// When: create the initial board
	board := InitialState()

	// Then: every cell should be empty
	for _, row := range board {
		for _, cell := range row {
			assert.Equal(t, Empty, cell)
		}
	}
	assert.Len(t, Actions(board), 9)
}

func TestPlayerToMove(t *testing.T) {
	t.Run("X moves first", func(t *testing.T) {
		// Given: the initial board
		board := InitialState()

		// When: resolving the turn
		player := PlayerToMove(board)

		// Then: X should be to move
		assert.Equal(t, X, player)
	})

	t.Run("O moves after X", func(t *testing.T) {
		// Given: a board where X has one more mark than O
		board := mustParse(t, "X.O.X....")

		// When: resolving the turn
		player := PlayerToMove(board)

		// Then: O should be to move
		assert.Equal(t, O, player)
	})

	t.Run("Turn alternates along a game", func(t *testing.T) {
		// Given: the initial board
		board := InitialState()

		for i, move := range []Move{{1, 1}, {0, 0}, {2, 2}, {0, 2}, {0, 1}} {
			// Then: the side to move follows the mark counts
			xs, os := board.count(MarkX), board.count(MarkO)
			if xs == os {
				require.Equal(t, X, PlayerToMove(board), "turn %d", i)
			} else {
				require.Equal(t, xs, os+1)
				require.Equal(t, O, PlayerToMove(board), "turn %d", i)
			}

			var err error
			board, err = Result(board, move)
			require.NoError(t, err)
		}
	})
}

func TestActions(t *testing.T) {
	t.Run("Lists empty cells", func(t *testing.T) {
		// Given: a board with three marks
		board := mustParse(t, "X...O...X")

		// When: enumerating actions
		moves := Actions(board)

		// Then: only the six empty cells should be returned
		assert.ElementsMatch(t, []Move{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}, moves)
	})

	t.Run("Full board has no actions", func(t *testing.T) {
		// Given: a full board
		board := mustParse(t, "XOXXOOOXX")

		// When: enumerating actions
		moves := Actions(board)

		// Then: the result should be empty
		assert.Empty(t, moves)
	})
}

func TestResult(t *testing.T) {
	t.Run("Places the mark of the player to move", func(t *testing.T) {
		// Given: a board where O is to move
		board := mustParse(t, "X........")

		// When: O plays the center
		next, err := Result(board, Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the center holds O
		assert.Equal(t, "X...O....", next.String())
	})

	t.Run("Input board is left unmodified", func(t *testing.T) {
		// Given: a board and a snapshot of it
		board := mustParse(t, "X...O....")
		snapshot := board

		// When: applying a move
		next, err := Result(board, Move{Row: 2, Col: 2})
		require.NoError(t, err)

		// Then: the input is unchanged and the result differs
		assert.Equal(t, snapshot, board)
		assert.NotEqual(t, board, next)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board after X played the corner
		board, err := Result(InitialState(), Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// When: the same move is played again
		_, err = Result(board, Move{Row: 0, Col: 0})

		// Then: ErrInvalidMove should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Error on out of range move", func(t *testing.T) {
		// Given: the initial board
		board := InitialState()

		for _, move := range []Move{{-1, 0}, {0, 3}, {3, 3}, {1, -2}} {
			// When: a move outside the grid is played
			_, err := Result(board, move)

			// Then: ErrInvalidMove should be returned
			assert.ErrorIs(t, err, apperror.ErrInvalidMove, move.String())
		}
	})
}
