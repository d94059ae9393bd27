package round

const (
	StatusOpen    = "open"
	StatusScoring = "scoring"
	StatusScored  = "scored"
)

// BettingRound is a scored unit of fixtures within a season. Status moves
// forward only: open -> scoring -> scored.
type BettingRound struct {
	ID            int64
	SeasonID      int64
	CompetitionID int64
	Name          string
	Status        string
}

// MissedRound is a scored round in which a given user placed no bets.
type MissedRound struct {
	ID   int64
	Name string
}
