package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunPlay - plays one game on in/out and records the result.
func RunPlay(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scoreboard, closeStorage, err := newScoreboard(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	var opts []tictactoe.Option
	if conf.NoColor {
		opts = append(opts, tictactoe.WithColor(false))
	}

	game := entity.NewGame()
	controller := tictactoe.NewGameController(logger, in, out, opts...)

	if _, err = controller.Play(ctx, game); err != nil {
		return fmt.Errorf("game was not finished: %w", err)
	}

	if _, err = scoreboard.Record(ctx, game); err != nil {
		log.Error("could not record result", "error", err)
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// RunStats - prints the tally and the most recent results.
func RunStats(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer, recent int) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scoreboard, closeStorage, err := newScoreboard(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	stats, err := scoreboard.Stats(ctx)
	if err != nil {
		return fmt.Errorf("could not load stats: %w", err)
	}

	if recent < 0 {
		recent = conf.Redis.RecentLimit
	}

	results, err := scoreboard.Recent(ctx, recent)
	if err != nil {
		return fmt.Errorf("could not load recent results: %w", err)
	}

	printStats(out, stats, results)

	return nil
}

func newScoreboard(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.Scoreboard, func(), error) {
	log := logger.With("component", "app")

	if !conf.Redis.Enabled {
		log.Debug("redis disabled, results are kept in memory")
		return usecase.NewScoreboard(logger, repository.NewMemoryResultRepository()), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, storage.Options{
		Addr:     conf.Redis.GetRedisAddr(),
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return usecase.NewScoreboard(logger, repository.NewResultRepository(redisStorage)), closeStorage, nil
}

func printStats(out io.Writer, stats *entity.Stats, results []*entity.Result) {
	fmt.Fprintf(out, "Games played: %d\n", stats.Total)
	fmt.Fprintf(out, "Player 1 wins: %d\n", stats.Player1Wins)
	fmt.Fprintf(out, "Player 2 wins: %d\n", stats.Player2Wins)
	fmt.Fprintf(out, "Ties: %d\n", stats.Ties)

	if len(results) == 0 {
		return
	}

	fmt.Fprintf(out, "\nRecent games:\n")
	for _, result := range results {
		summary := "tie"
		if result.Status == entity.StatusWon {
			summary = result.Winner.String() + " won"
		}

		fmt.Fprintf(out, "%s  %s  %-14s %d moves\n",
			result.FinishedAt.Format("2006-01-02 15:04"), result.ID, summary, result.Moves)
	}
}
