package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - solves the configured position and plays it out with optimal moves for both sides.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	board, err := tictactoe.ParseBoard(conf.StartBoard)
	if err != nil {
		return fmt.Errorf("bad start board: %w", err)
	}

	var solutionRepo repository.SolutionRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		solutionRepo = repository.NewSolutionRepository(redisStorage)
	}

	return Play(ctx, logger, solutionRepo, board)
}

// Play - plays out board and logs the result. solutionRepo may be nil.
func Play(ctx context.Context, logger *slog.Logger, solutionRepo repository.SolutionRepository, board tictactoe.Board) error {
	log := logger.With("component", "app")

	solverService := service.NewSolverService(logger, solutionRepo)
	botService := service.NewBotService(solverService)
	gamePlayService := service.NewGamePlayService(logger, botService)

	log.Info("Starting play out", "board", board.String(), "to_move", tictactoe.PlayerToMove(board).String())

	turns, outcome, err := gamePlayService.PlayOut(ctx, board)
	if err != nil {
		return fmt.Errorf("play out failed: %w", err)
	}

	log.Info("Play out finished", "turns", len(turns), "outcome", outcome.String())

	return nil
}
