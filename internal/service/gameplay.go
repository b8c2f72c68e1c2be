package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type GamePlayService interface {
	PlayOut(ctx context.Context, board tictactoe.Board) ([]*entity.Turn, tictactoe.Outcome, error)
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
	}
}

// PlayOut - lets the bot play both sides from board until the game is over.
func (that *gamePlayService) PlayOut(ctx context.Context, board tictactoe.Board) ([]*entity.Turn, tictactoe.Outcome, error) {
	turns := make([]*entity.Turn, 0, len(tictactoe.Actions(board)))

	for !tictactoe.Terminal(board) {
		if err := ctx.Err(); err != nil {
			return turns, tictactoe.InProgress, fmt.Errorf("play out interrupted: %w", err)
		}

		next, turn, err := that.botService.MakeTurn(ctx, board)
		if err != nil {
			return turns, tictactoe.InProgress, fmt.Errorf("failed to make turn: %w", err)
		}

		that.logger.Info("turn played",
			"number", len(turns)+1,
			"player", turn.Player,
			"move", turn.Move.String(),
			"board", turn.Board,
			"value", turn.Value,
		)

		turns = append(turns, turn)
		board = next
	}

	outcome := tictactoe.Evaluate(board)
	that.logger.Info("game over", "outcome", outcome.String(), "board", board.String())

	return turns, outcome, nil
}
