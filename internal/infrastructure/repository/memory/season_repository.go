package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/season"
)

type SeasonRepository struct {
	mu    sync.RWMutex
	items map[int64]season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	items := make(map[int64]season.Season, len(seasons))
	for _, s := range seasons {
		items[s.ID] = s
	}
	return &SeasonRepository{items: items}
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID int64) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[seasonID]
	if !ok {
		return season.Season{}, false, nil
	}
	return s, true, nil
}

func (r *SeasonRepository) ListEligibleForDetermination(_ context.Context, compType competition.Type) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.items))
	for _, s := range r.items {
		if !s.IsCompleted() {
			continue
		}
		if compType == competition.TypeCup && !s.CupActive {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
