package backfill

// FixturePoints is the point value a backfilled bet will carry for one
// fixture of the round.
type FixturePoints struct {
	FixtureID int64
	Points    int
}

// Plan describes the fair-share backfill for one missed round: the late
// joiner receives exactly the total of the worst existing participant, never
// more and never less. The plan is pure data; the orchestrator either commits
// it or discards it in dry-run mode.
type Plan struct {
	RoundID                 int64
	RoundName               string
	PointsAwarded           int
	MinimumParticipantScore int
	ParticipantCount        int
	Fixtures                []FixturePoints
}

// BuildPlan computes the fair-share distribution for a round. fixtureIDs must
// be in ascending id order; one point goes to each fixture in turn until the
// running total reaches the minimum existing participant score, zero
// thereafter. No participants means zero points across the board.
//
// The walk assumes each fixture contributes at most one point to a round
// total, which is the scoring granularity everywhere else in the product. A
// scheme awarding more than one point per fixture would need a different
// distribution to keep the sum invariant.
func BuildPlan(roundID int64, roundName string, fixtureIDs []int64, participantTotals []int) Plan {
	minimum := 0
	for idx, total := range participantTotals {
		if idx == 0 || total < minimum {
			minimum = total
		}
	}
	if minimum < 0 {
		minimum = 0
	}
	if minimum > len(fixtureIDs) {
		minimum = len(fixtureIDs)
	}

	fixtures := make([]FixturePoints, 0, len(fixtureIDs))
	awarded := 0
	for _, fixtureID := range fixtureIDs {
		value := 0
		if awarded < minimum {
			value = 1
			awarded++
		}
		fixtures = append(fixtures, FixturePoints{FixtureID: fixtureID, Points: value})
	}

	return Plan{
		RoundID:                 roundID,
		RoundName:               roundName,
		PointsAwarded:           awarded,
		MinimumParticipantScore: minimum,
		ParticipantCount:        len(participantTotals),
		Fixtures:                fixtures,
	}
}
