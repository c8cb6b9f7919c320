package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	resultsListKey  = "results"
	resultsStatsKey = "results:stats"

	statsPlayer1 = "player1"
	statsPlayer2 = "player2"
	statsTie     = "tie"
	statsTotal   = "total"
)

var ErrResultNotFound = fmt.Errorf("result %w", apperror.ErrNotFound)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Result, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - stores the result, indexes it as the newest one and bumps the counters in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
		pipe.LPush(ctx, resultsListKey, result.ID)
		pipe.HIncrBy(ctx, resultsStatsKey, statsField(result), 1)
		pipe.HIncrBy(ctx, resultsStatsKey, statsTotal, 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// ListRecent returns up to limit results, newest first.
func (that *dbResult) ListRecent(ctx context.Context, limit int) ([]*entity.Result, error) {
	if limit <= 0 {
		return []*entity.Result{}, nil
	}

	ids, err := that.client.LRange(ctx, resultsListKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list result ids: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.Result{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, resultKeyPrefix+id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	results := make([]*entity.Result, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var result entity.Result
		if err = json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}

		results = append(results, &result)
	}

	return results, nil
}

func (that *dbResult) Stats(ctx context.Context) (*entity.Stats, error) {
	fields, err := that.client.HGetAll(ctx, resultsStatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := &entity.Stats{}
	for field, target := range map[string]*int{
		statsPlayer1: &stats.Player1Wins,
		statsPlayer2: &stats.Player2Wins,
		statsTie:     &stats.Ties,
		statsTotal:   &stats.Total,
	} {
		value, ok := fields[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("invalid %s counter %q: %w", field, value, err)
		}
	}

	return stats, nil
}

func statsField(result *entity.Result) string {
	switch {
	case result.Status == entity.StatusTie:
		return statsTie
	case result.Winner == entity.Player1:
		return statsPlayer1
	default:
		return statsPlayer2
	}
}
