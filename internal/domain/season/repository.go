package season

import (
	"context"

	"github.com/oddstack/prediction-league/internal/domain/competition"
)

type Repository interface {
	GetByID(ctx context.Context, seasonID int64) (Season, bool, error)
	// ListEligibleForDetermination returns completed seasons whose relevant
	// competition-type flag is active, ordered by season id ascending.
	ListEligibleForDetermination(ctx context.Context, compType competition.Type) ([]Season, error)
}
