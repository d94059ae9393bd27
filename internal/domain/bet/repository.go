package bet

import "context"

type Repository interface {
	// InsertBatch writes all bets in one transaction; either every row
	// commits or none do.
	InsertBatch(ctx context.Context, bets []UserBet) error
	// HasAnyInCompetition reports whether the user has at least one bet on
	// any fixture of any round in the competition.
	HasAnyInCompetition(ctx context.Context, userID string, competitionID int64) (bool, error)
	// ListParticipantTotalsByRound returns, for each user with at least one
	// bet in the round, that user's summed awarded points across the round's
	// fixtures.
	ListParticipantTotalsByRound(ctx context.Context, roundID int64) ([]int, error)
}
