package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/points"
)

// PointRecord is one raw ledger row as seeded into the memory store.
type PointRecord struct {
	SeasonID int64
	Type     competition.Type
	UserID   string
	Username string
	Points   int
}

type PointsRepository struct {
	mu      sync.RWMutex
	records []PointRecord
}

func NewPointsRepository(records []PointRecord) *PointsRepository {
	out := make([]PointRecord, len(records))
	copy(out, records)
	return &PointsRepository{records: out}
}

func (r *PointsRepository) ListTotalsBySeason(_ context.Context, seasonID int64, compType competition.Type) ([]points.Total, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totalByUser := make(map[string]*points.Total)
	order := make([]string, 0)
	for _, record := range r.records {
		if record.SeasonID != seasonID || record.Type != compType {
			continue
		}
		if existing, ok := totalByUser[record.UserID]; ok {
			existing.Points += record.Points
			continue
		}
		totalByUser[record.UserID] = &points.Total{
			UserID:   record.UserID,
			Username: record.Username,
			Points:   record.Points,
		}
		order = append(order, record.UserID)
	}

	sort.Strings(order)
	out := make([]points.Total, 0, len(order))
	for _, userID := range order {
		out = append(out, *totalByUser[userID])
	}
	return out, nil
}
