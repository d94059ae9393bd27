package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/oddstack/prediction-league/internal/domain/bet"
	"github.com/oddstack/prediction-league/internal/domain/fixture"
	"github.com/oddstack/prediction-league/internal/domain/round"
)

type betKey struct {
	userID    string
	fixtureID int64
}

// BetRepository keeps bets in memory, together with enough round and fixture
// topology to answer the competition-scoped queries.
type BetRepository struct {
	mu               sync.RWMutex
	bets             map[betKey]bet.UserBet
	roundByFixture   map[int64]int64
	competitionRound map[int64]int64
	fixturesByRound  map[int64][]int64
}

func NewBetRepository(rounds []round.BettingRound, fixtures []fixture.Fixture, bets []bet.UserBet) *BetRepository {
	repo := &BetRepository{
		bets:             make(map[betKey]bet.UserBet, len(bets)),
		roundByFixture:   make(map[int64]int64, len(fixtures)),
		competitionRound: make(map[int64]int64, len(rounds)),
		fixturesByRound:  make(map[int64][]int64),
	}
	for _, r := range rounds {
		repo.competitionRound[r.ID] = r.CompetitionID
	}
	for _, f := range fixtures {
		repo.roundByFixture[f.ID] = f.RoundID
		repo.fixturesByRound[f.RoundID] = append(repo.fixturesByRound[f.RoundID], f.ID)
	}
	for _, b := range bets {
		repo.bets[betKey{userID: b.UserID, fixtureID: b.FixtureID}] = b
	}
	return repo
}

func (r *BetRepository) InsertBatch(_ context.Context, bets []bet.UserBet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate the whole batch before touching state so a conflict leaves
	// nothing half-written.
	for _, b := range bets {
		key := betKey{userID: b.UserID, fixtureID: b.FixtureID}
		if _, exists := r.bets[key]; exists {
			return fmt.Errorf("user %s fixture %d: %w", b.UserID, b.FixtureID, bet.ErrDuplicate)
		}
	}
	for _, b := range bets {
		r.bets[betKey{userID: b.UserID, fixtureID: b.FixtureID}] = b
	}
	return nil
}

func (r *BetRepository) HasAnyInCompetition(_ context.Context, userID string, competitionID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for key := range r.bets {
		if key.userID != userID {
			continue
		}
		roundID, ok := r.roundByFixture[key.fixtureID]
		if !ok {
			continue
		}
		if r.competitionRound[roundID] == competitionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *BetRepository) ListParticipantTotalsByRound(_ context.Context, roundID int64) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totalsByUser := make(map[string]int)
	for _, fixtureID := range r.fixturesByRound[roundID] {
		for key, b := range r.bets {
			if key.fixtureID != fixtureID {
				continue
			}
			totalsByUser[key.userID] += b.PointsAwarded
		}
	}

	out := make([]int, 0, len(totalsByUser))
	for _, total := range totalsByUser {
		out = append(out, total)
	}
	return out, nil
}

// HasBetInRound reports whether the user bet on any fixture of the round.
func (r *BetRepository) HasBetInRound(userID string, roundID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, fixtureID := range r.fixturesByRound[roundID] {
		if _, ok := r.bets[betKey{userID: userID, fixtureID: fixtureID}]; ok {
			return true
		}
	}
	return false
}
