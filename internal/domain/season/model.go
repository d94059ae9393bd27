package season

import "time"

// Season is one competition instance over time. CompletedAt stays nil until
// the final round is scored; winner records are only written afterwards.
type Season struct {
	ID            int64
	CompetitionID int64
	Name          string
	CompletedAt   *time.Time
	CupActive     bool
}

func (s Season) IsCompleted() bool {
	return s.CompletedAt != nil && !s.CompletedAt.IsZero()
}
