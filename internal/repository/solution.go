package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const solutionKeyPrefix = "solution:"

type SolutionRepository interface {
	Save(ctx context.Context, solution *entity.Solution) error
	GetByBoard(ctx context.Context, board tictactoe.Board) (*entity.Solution, error)
	DeleteByBoard(ctx context.Context, board tictactoe.Board) error
}

type dbSolution struct {
	client *redis.Client
}

func NewSolutionRepository(client *redis.Client) SolutionRepository {
	return &dbSolution{
		client: client,
	}
}

func solutionKey(board string) string {
	return solutionKeyPrefix + board
}

func (that *dbSolution) Save(ctx context.Context, solution *entity.Solution) error {
	solutionJSON, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("could not marshal solution: %w", err)
	}

	if err = that.client.Set(ctx, solutionKey(solution.Board), solutionJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}

func (that *dbSolution) GetByBoard(ctx context.Context, board tictactoe.Board) (*entity.Solution, error) {
	response, err := that.client.Get(ctx, solutionKey(board.String())).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSolutionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	var solution entity.Solution
	if err = json.Unmarshal([]byte(response), &solution); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return &solution, nil
}

func (that *dbSolution) DeleteByBoard(ctx context.Context, board tictactoe.Board) error {
	if err := that.client.Del(ctx, solutionKey(board.String())).Err(); err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	return nil
}
