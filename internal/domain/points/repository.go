package points

import (
	"context"

	"github.com/oddstack/prediction-league/internal/domain/competition"
)

// Repository reads the per-round point ledger owned by the match scoring
// subsystem. The reconciliation engine never writes point records.
type Repository interface {
	ListTotalsBySeason(ctx context.Context, seasonID int64, compType competition.Type) ([]Total, error)
}
