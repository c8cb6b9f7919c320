package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Result, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

// Scoreboard records finished games and reports the tally.
type Scoreboard struct {
	logger     *slog.Logger
	resultRepo resultRepo

	now   func() time.Time
	newID func() string
}

func NewScoreboard(logger *slog.Logger, resultRepo resultRepo) *Scoreboard {
	return &Scoreboard{
		logger:     logger.With("component", "scoreboard"),
		resultRepo: resultRepo,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Record - saves the outcome of an ended game.
func (that *Scoreboard) Record(ctx context.Context, game *entity.Game) (*entity.Result, error) {
	log := that.logger.With("method", "Record")

	if !game.HasEnded() {
		return nil, apperror.ErrGameNotFinished
	}

	result := entity.NewResult(that.newID(), game, that.now())

	if err := that.resultRepo.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	log.Info("result recorded", "id", result.ID, "status", result.Status, "winner", result.Winner.Mark())

	return result, nil
}

func (that *Scoreboard) Result(ctx context.Context, id string) (*entity.Result, error) {
	result, err := that.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return result, nil
}

func (that *Scoreboard) Stats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.resultRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

// Recent returns the last limit results, newest first.
func (that *Scoreboard) Recent(ctx context.Context, limit int) ([]*entity.Result, error) {
	results, err := that.resultRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent results: %w", err)
	}

	return results, nil
}
