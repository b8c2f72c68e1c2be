package tictactoe

import "fmt"

const boardSize = 3

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

// Player is the side to move.
type Player uint8

const (
	X Player = iota + 1
	O
)

func (that Player) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

// Mark returns the cell value the player writes on the board.
func (that Player) Mark() Cell {
	if that == O {
		return MarkO
	}
	return MarkX
}

// Outcome describes the state of a game from the board alone.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Board is a 3x3 grid indexed as [row][col]. It is an array, so assigning or passing
// it copies every cell.
type Board [boardSize][boardSize]Cell

// Move addresses a cell by row and column, both in [0, 2].
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// InitialState returns the empty board X starts from.
func InitialState() Board {
	return Board{}
}

func (that Board) count(mark Cell) int {
	n := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				n++
			}
		}
	}
	return n
}
