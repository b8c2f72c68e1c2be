package entity

import "github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"

// Solution is the optimal move for a position together with the value it secures.
type Solution struct {
	Board string         `json:"board"`
	Move  tictactoe.Move `json:"move"`
	Value int            `json:"value"`
}

// Turn is one step of a played-out game.
type Turn struct {
	Player string         `json:"player"`
	Move   tictactoe.Move `json:"move"`
	Board  string         `json:"board"`
	Value  int            `json:"value"`
}
