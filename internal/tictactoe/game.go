package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// PlayerToMove derives the side to move from the mark counts. X moves first, so X is
// to move whenever it has not placed more marks than O.
func PlayerToMove(board Board) Player {
	if board.count(MarkX) <= board.count(MarkO) {
		return X
	}
	return O
}

// Actions returns every empty cell of the board in row-major order.
func Actions(board Board) []Move {
	moves := make([]Move, 0, boardSize*boardSize)
	for row := range boardSize {
		for col := range boardSize {
			if board[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Result returns the board after the player to move plays the given move.
// The input board is left untouched.
func Result(board Board, move Move) (Board, error) {
	if !slices.Contains(Actions(board), move) {
		return board, fmt.Errorf("%w: cell %s is not available", apperror.ErrInvalidMove, move)
	}

	next := board
	next[move.Row][move.Col] = PlayerToMove(board).Mark()

	return next, nil
}
