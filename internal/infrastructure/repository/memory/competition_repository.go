package memory

import (
	"context"
	"sync"

	"github.com/oddstack/prediction-league/internal/domain/competition"
)

type CompetitionRepository struct {
	mu        sync.RWMutex
	contexts  map[int64]competition.Context
	currentID int64
}

// NewCompetitionRepository keeps the supplied contexts and marks currentID
// as the one CurrentContext resolves to. A currentID of zero means no
// competition is currently running.
func NewCompetitionRepository(contexts []competition.Context, currentID int64) *CompetitionRepository {
	byID := make(map[int64]competition.Context, len(contexts))
	for _, c := range contexts {
		byID[c.CompetitionID] = c
	}
	return &CompetitionRepository{contexts: byID, currentID: currentID}
}

func (r *CompetitionRepository) CurrentContext(ctx context.Context) (competition.Context, bool, error) {
	r.mu.RLock()
	currentID := r.currentID
	r.mu.RUnlock()
	if currentID == 0 {
		return competition.Context{}, false, nil
	}
	return r.ContextByCompetition(ctx, currentID)
}

func (r *CompetitionRepository) ContextByCompetition(_ context.Context, competitionID int64) (competition.Context, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contexts[competitionID]
	return c, ok, nil
}

// SetCurrent switches the competition CurrentContext resolves to.
func (r *CompetitionRepository) SetCurrent(competitionID int64) {
	r.mu.Lock()
	r.currentID = competitionID
	r.mu.Unlock()
}
