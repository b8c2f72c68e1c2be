package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// String renders the board row-major as nine characters, '.' marking empty cells.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(boardSize * boardSize)

	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case MarkX:
				sb.WriteByte('X')
			case MarkO:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

// ParseBoard reads the notation produced by Board.String. Empty cells may also be
// written as '_', '-' or a space. The mark counts must be reachable from legal play.
func ParseBoard(s string) (Board, error) {
	var board Board

	if len(s) != boardSize*boardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, boardSize*boardSize, len(s))
	}

	for i, ch := range strings.ToUpper(s) {
		var cell Cell
		switch ch {
		case 'X':
			cell = MarkX
		case 'O':
			cell = MarkO
		case '.', '_', '-', ' ':
			cell = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q at %d", apperror.ErrInvalidBoard, ch, i)
		}
		board[i/boardSize][i%boardSize] = cell
	}

	if diff := board.count(MarkX) - board.count(MarkO); diff != 0 && diff != 1 {
		return Board{}, fmt.Errorf("%w: unreachable mark count %s", apperror.ErrInvalidBoard, board)
	}

	return board, nil
}
