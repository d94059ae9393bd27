package round

import "context"

type Repository interface {
	ListByCompetition(ctx context.Context, competitionID int64) ([]BettingRound, error)
	// ListScoredWithoutUserBet returns every scored round of the competition
	// in which the user has no bet on any fixture, ordered by round id
	// ascending. A round with even a single bet from the user is excluded.
	ListScoredWithoutUserBet(ctx context.Context, userID string, competitionID int64) ([]MissedRound, error)
}
