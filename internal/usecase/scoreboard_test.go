package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var errRedisDown = errors.New("redis down")

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func (that *mockResultRepo) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	args := that.Called(ctx, id)
	result, _ := args.Get(0).(*entity.Result)
	return result, args.Error(1)
}

func (that *mockResultRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Result, error) {
	args := that.Called(ctx, limit)
	results, _ := args.Get(0).([]*entity.Result)
	return results, args.Error(1)
}

func (that *mockResultRepo) Stats(ctx context.Context) (*entity.Stats, error) {
	args := that.Called(ctx)
	stats, _ := args.Get(0).(*entity.Stats)
	return stats, args.Error(1)
}

func newTestScoreboard(t *testing.T) (*Scoreboard, *mockResultRepo) {
	t.Helper()

	repo := &mockResultRepo{}
	t.Cleanup(func() { repo.AssertExpectations(t) })

	scoreboard := NewScoreboard(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
	scoreboard.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	scoreboard.newID = func() string { return "result-1" }

	return scoreboard, repo
}

func wonGame(t *testing.T) *entity.Game {
	t.Helper()

	game := entity.NewGame()
	for _, cell := range []int{0, 3, 1, 4, 2} {
		require.NoError(t, game.MakeTurn(cell))
	}

	return game
}

func TestScoreboard_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves a finished game", func(t *testing.T) {
		// Given: a won game and a repository accepting the save
		scoreboard, repo := newTestScoreboard(t)
		game := wonGame(t)

		repo.On("Save", ctx, mock.MatchedBy(func(result *entity.Result) bool {
			return result.ID == "result-1" && result.Winner == entity.Player1
		})).Return(nil).Once()

		// When: recording it
		result, err := scoreboard.Record(ctx, game)

		// Then: the result describes the win
		require.NoError(t, err)
		assert.Equal(t, entity.NewResult("result-1", game, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)), result)
	})

	t.Run("Rejects a game in progress", func(t *testing.T) {
		// Given: a game with moves left
		scoreboard, _ := newTestScoreboard(t)

		// When: recording it
		result, err := scoreboard.Record(ctx, entity.NewGame())

		// Then: nothing is saved
		require.ErrorIs(t, err, apperror.ErrGameNotFinished)
		assert.Nil(t, result)
	})

	t.Run("Returns the storage error", func(t *testing.T) {
		scoreboard, repo := newTestScoreboard(t)
		repo.On("Save", ctx, mock.AnythingOfType("*entity.Result")).Return(errRedisDown).Once()

		result, err := scoreboard.Record(ctx, wonGame(t))

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, result)
	})

	t.Run("Generates distinct IDs by default", func(t *testing.T) {
		repo := &mockResultRepo{}
		repo.On("Save", ctx, mock.Anything).Return(nil).Twice()
		scoreboard := NewScoreboard(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)

		first, err := scoreboard.Record(ctx, wonGame(t))
		require.NoError(t, err)
		second, err := scoreboard.Record(ctx, wonGame(t))
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		repo.AssertExpectations(t)
	})
}

func TestScoreboard_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("Stats", func(t *testing.T) {
		scoreboard, repo := newTestScoreboard(t)
		repo.On("Stats", ctx).Return(&entity.Stats{Player1Wins: 2, Total: 2}, nil).Once()

		stats, err := scoreboard.Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, &entity.Stats{Player1Wins: 2, Total: 2}, stats)
	})

	t.Run("Stats error", func(t *testing.T) {
		scoreboard, repo := newTestScoreboard(t)
		repo.On("Stats", ctx).Return(nil, errRedisDown).Once()

		stats, err := scoreboard.Stats(ctx)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, stats)
	})

	t.Run("Recent", func(t *testing.T) {
		scoreboard, repo := newTestScoreboard(t)
		results := []*entity.Result{{ID: "b"}, {ID: "a"}}
		repo.On("ListRecent", ctx, 2).Return(results, nil).Once()

		recent, err := scoreboard.Recent(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, results, recent)
	})

	t.Run("Result not found", func(t *testing.T) {
		scoreboard, repo := newTestScoreboard(t)
		repo.On("GetByID", ctx, "missing").Return(nil, apperror.ErrNotFound).Once()

		result, err := scoreboard.Result(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, result)
	})
}
