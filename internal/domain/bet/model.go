package bet

import (
	"errors"
	"time"
)

// ErrDuplicate is returned when an insert would create a second bet for the
// same (user, fixture) pair. The batch that triggered it writes nothing.
var ErrDuplicate = errors.New("bet already exists for user and fixture")

// UserBet records one user's pick for one fixture together with the points it
// earned. At most one bet exists per (user, fixture); backfilled bets are
// written by the reconciliation engine with all timestamps set to processing
// time.
type UserBet struct {
	UserID        string
	FixtureID     int64
	PointsAwarded int
	SubmittedAt   time.Time
}
