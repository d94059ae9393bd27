package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/oddstack/prediction-league/internal/domain/round"
)

type RoundRepository struct {
	mu    sync.RWMutex
	items map[int64]round.BettingRound
	bets  *BetRepository
}

func NewRoundRepository(rounds []round.BettingRound, bets *BetRepository) *RoundRepository {
	items := make(map[int64]round.BettingRound, len(rounds))
	for _, r := range rounds {
		items[r.ID] = r
	}
	return &RoundRepository{items: items, bets: bets}
}

func (r *RoundRepository) ListByCompetition(_ context.Context, competitionID int64) ([]round.BettingRound, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]round.BettingRound, 0, len(r.items))
	for _, item := range r.items {
		if item.CompetitionID == competitionID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *RoundRepository) ListScoredWithoutUserBet(_ context.Context, userID string, competitionID int64) ([]round.MissedRound, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]round.MissedRound, 0)
	for _, item := range r.items {
		if item.CompetitionID != competitionID || item.Status != round.StatusScored {
			continue
		}
		if r.bets != nil && r.bets.HasBetInRound(userID, item.ID) {
			continue
		}
		out = append(out, round.MissedRound{ID: item.ID, Name: item.Name})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
