package service

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGamePlay() GamePlayService {
	logger := newTestLogger()
	return NewGamePlayService(logger, NewBotService(NewSolverService(logger, nil)))
}

func TestBotService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: O to move while X threatens the top row
		bot := NewBotService(NewSolverService(newTestLogger(), nil))
		board := mustParse(t, "XX..O....")

		// When: the bot makes a turn
		next, turn, err := bot.MakeTurn(ctx, board)

		// Then: O blocks and the input board is unchanged
		require.NoError(t, err)
		assert.Equal(t, "XXO.O....", next.String())
		assert.Equal(t, "O", turn.Player)
		assert.Equal(t, tictactoe.Move{Row: 0, Col: 2}, turn.Move)
		assert.Equal(t, "XX..O....", board.String())
	})

	t.Run("Error on finished game", func(t *testing.T) {
		// Given: a full board
		bot := NewBotService(NewSolverService(newTestLogger(), nil))
		board := mustParse(t, "XOXXOOOXX")

		// When: the bot tries to move
		next, turn, err := bot.MakeTurn(ctx, board)

		// Then: ErrGameFinished should be returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Nil(t, turn)
		assert.Equal(t, board, next)
	})
}

func TestGamePlayService_PlayOut(t *testing.T) {
	t.Run("Optimal play from the initial board is a draw", func(t *testing.T) {
		// When: playing out the empty board
		turns, outcome, err := newGamePlay().PlayOut(context.Background(), tictactoe.InitialState())

		// Then: all nine cells get filled and the game is drawn
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Draw, outcome)
		require.Len(t, turns, 9)
		assert.Equal(t, "X", turns[0].Player)
		assert.Equal(t, "O", turns[1].Player)
		for _, turn := range turns {
			assert.Equal(t, 0, turn.Value)
		}
	})

	t.Run("Converts a winning position", func(t *testing.T) {
		// When: X to move with a win available
		turns, outcome, err := newGamePlay().PlayOut(context.Background(), mustParse(t, "XX.OO...."))

		// Then: X wins in one turn
		require.NoError(t, err)
		assert.Equal(t, tictactoe.XWins, outcome)
		assert.Len(t, turns, 1)
	})

	t.Run("Terminal board needs no turns", func(t *testing.T) {
		// When: playing out a finished game
		turns, outcome, err := newGamePlay().PlayOut(context.Background(), mustParse(t, "XXXOO...."))

		// Then: the outcome is reported directly
		require.NoError(t, err)
		assert.Empty(t, turns)
		assert.Equal(t, tictactoe.XWins, outcome)
	})

	t.Run("Stops on canceled context", func(t *testing.T) {
		// Given: a canceled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: playing out a game
		turns, outcome, err := newGamePlay().PlayOut(ctx, tictactoe.InitialState())

		// Then: the context error is returned before any turn
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, turns)
		assert.Equal(t, tictactoe.InProgress, outcome)
	})
}
