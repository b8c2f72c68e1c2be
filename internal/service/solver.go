package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type solutionRepo interface {
	Save(ctx context.Context, solution *entity.Solution) error
	GetByBoard(ctx context.Context, board tictactoe.Board) (*entity.Solution, error)
}

type SolverService interface {
	BestMove(ctx context.Context, board tictactoe.Board) (*entity.Solution, error)
}

type solverService struct {
	logger *slog.Logger

	solutionRepo solutionRepo
}

// NewSolverService - solutionRepo may be nil, every position is then searched from scratch.
func NewSolverService(logger *slog.Logger, solutionRepo solutionRepo) SolverService {
	return &solverService{
		logger:       logger.With("component", "solver"),
		solutionRepo: solutionRepo,
	}
}

func (that *solverService) BestMove(ctx context.Context, board tictactoe.Board) (*entity.Solution, error) {
	if tictactoe.Terminal(board) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameFinished, board)
	}

	if solution, ok := that.cached(ctx, board); ok {
		return solution, nil
	}

	move, value, ok := tictactoe.Solve(board)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameFinished, board)
	}

	solution := &entity.Solution{
		Board: board.String(),
		Move:  move,
		Value: value,
	}

	that.logger.Debug("position solved", "board", solution.Board, "move", move.String(), "value", value)

	if that.solutionRepo != nil {
		if err := that.solutionRepo.Save(ctx, solution); err != nil {
			that.logger.Warn("could not cache solution", "board", solution.Board, "error", err)
		}
	}

	return solution, nil
}

func (that *solverService) cached(ctx context.Context, board tictactoe.Board) (*entity.Solution, bool) {
	if that.solutionRepo == nil {
		return nil, false
	}

	solution, err := that.solutionRepo.GetByBoard(ctx, board)
	switch {
	case errors.Is(err, apperror.ErrSolutionNotFound):
		return nil, false
	case err != nil:
		that.logger.Warn("could not read cached solution", "board", board.String(), "error", err)
		return nil, false
	}

	// a stale entry must still describe a legal move on this board
	if _, err = tictactoe.Result(board, solution.Move); err != nil {
		that.logger.Warn("ignoring cached solution", "board", board.String(), "error", err)
		return nil, false
	}

	that.logger.Debug("solution cache hit", "board", solution.Board)

	return solution, true
}
