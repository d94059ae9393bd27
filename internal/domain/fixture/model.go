package fixture

import "time"

// Fixture is one schedulable match belonging to exactly one round. The id is
// the ordering key used for deterministic backfill distribution.
type Fixture struct {
	ID        int64
	RoundID   int64
	HomeTeam  string
	AwayTeam  string
	KickoffAt time.Time
}
