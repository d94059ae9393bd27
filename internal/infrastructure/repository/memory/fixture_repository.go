package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/oddstack/prediction-league/internal/domain/fixture"
)

type FixtureRepository struct {
	mu      sync.RWMutex
	byRound map[int64][]fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	byRound := make(map[int64][]fixture.Fixture)
	for _, f := range fixtures {
		byRound[f.RoundID] = append(byRound[f.RoundID], f)
	}
	for roundID := range byRound {
		items := byRound[roundID]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ID < items[j].ID
		})
		byRound[roundID] = items
	}
	return &FixtureRepository{byRound: byRound}
}

func (r *FixtureRepository) ListByRound(_ context.Context, roundID int64) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byRound[roundID]
	out := make([]fixture.Fixture, len(items))
	copy(out, items)
	return out, nil
}
