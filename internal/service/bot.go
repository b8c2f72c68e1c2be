package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type BotService interface {
	MakeTurn(ctx context.Context, board tictactoe.Board) (tictactoe.Board, *entity.Turn, error)
}

type botService struct {
	solverService SolverService
}

func NewBotService(solverService SolverService) BotService {
	return &botService{
		solverService: solverService,
	}
}

// MakeTurn - plays the optimal move for whichever side is to move.
func (that *botService) MakeTurn(ctx context.Context, board tictactoe.Board) (tictactoe.Board, *entity.Turn, error) {
	solution, err := that.solverService.BestMove(ctx, board)
	if err != nil {
		return board, nil, fmt.Errorf("failed to find best move: %w", err)
	}

	player := tictactoe.PlayerToMove(board)

	next, err := tictactoe.Result(board, solution.Move)
	if err != nil {
		return board, nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return next, &entity.Turn{
		Player: player.String(),
		Move:   solution.Move,
		Board:  next.String(),
		Value:  solution.Value,
	}, nil
}
