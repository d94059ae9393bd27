package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/winner"
)

type winnerKey struct {
	seasonID int64
	compType competition.Type
}

type WinnerRepository struct {
	mu   sync.RWMutex
	sets map[winnerKey][]winner.Record
}

func NewWinnerRepository() *WinnerRepository {
	return &WinnerRepository{sets: make(map[winnerKey][]winner.Record)}
}

func (r *WinnerRepository) ListBySeason(_ context.Context, seasonID int64, compType competition.Type) ([]winner.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.sets[winnerKey{seasonID: seasonID, compType: compType}]
	out := make([]winner.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Username < out[j].Username
	})
	return out, nil
}

func (r *WinnerRepository) InsertBatch(_ context.Context, records []winner.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("winner batch cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := winnerKey{seasonID: records[0].SeasonID, compType: records[0].Type}
	for _, record := range records {
		if record.SeasonID != key.seasonID || record.Type != key.compType {
			return fmt.Errorf("winner batch mixes season/competition keys")
		}
	}
	if _, exists := r.sets[key]; exists {
		return winner.ErrAlreadyDetermined
	}

	out := make([]winner.Record, len(records))
	copy(out, records)
	r.sets[key] = out
	return nil
}
