package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type memoryResult struct {
	mu      sync.RWMutex
	results map[string]entity.Result
	order   []string
	stats   entity.Stats
}

// NewMemoryResultRepository keeps results for the lifetime of the process.
func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{
		results: make(map[string]entity.Result),
	}
}

func (that *memoryResult) Save(_ context.Context, result *entity.Result) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.results[result.ID] = copyResult(result)
	that.order = append(that.order, result.ID)
	that.stats.Add(result)

	return nil
}

func (that *memoryResult) GetByID(_ context.Context, id string) (*entity.Result, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	result, ok := that.results[id]
	if !ok {
		return nil, ErrResultNotFound
	}

	stored := copyResult(&result)
	return &stored, nil
}

func (that *memoryResult) ListRecent(_ context.Context, limit int) ([]*entity.Result, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	results := make([]*entity.Result, 0, min(max(limit, 0), len(that.order)))
	for i := len(that.order) - 1; i >= 0 && len(results) < limit; i-- {
		result := that.results[that.order[i]]
		stored := copyResult(&result)
		results = append(results, &stored)
	}

	return results, nil
}

func (that *memoryResult) Stats(_ context.Context) (*entity.Stats, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	stats := that.stats
	return &stats, nil
}

func copyResult(result *entity.Result) entity.Result {
	stored := *result
	if result.Line != nil {
		stored.Line = append([]int(nil), result.Line...)
	}

	return stored
}
