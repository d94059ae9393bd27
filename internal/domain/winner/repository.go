package winner

import (
	"context"

	"github.com/oddstack/prediction-league/internal/domain/competition"
)

type Repository interface {
	// ListBySeason returns the committed winner set for the key, ordered by
	// username ascending, or an empty slice when undetermined.
	ListBySeason(ctx context.Context, seasonID int64, compType competition.Type) ([]Record, error)
	// InsertBatch writes the full winner set in one transaction. When another
	// writer already committed a set for the key it returns
	// ErrAlreadyDetermined and writes nothing.
	InsertBatch(ctx context.Context, records []Record) error
}
