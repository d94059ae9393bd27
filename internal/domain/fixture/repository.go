package fixture

import "context"

type Repository interface {
	// ListByRound returns the round's fixtures ordered by fixture id ascending.
	ListByRound(ctx context.Context, roundID int64) ([]Fixture, error)
}
