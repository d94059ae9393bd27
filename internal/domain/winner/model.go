package winner

import (
	"errors"
	"time"

	"github.com/oddstack/prediction-league/internal/domain/competition"
)

// ErrAlreadyDetermined is returned by a repository when a batch insert loses
// the race against a concurrent determination for the same key. Callers fall
// back to reading the committed set.
var ErrAlreadyDetermined = errors.New("winners already determined for season and competition type")

// Record is one determined winner for a (season, competition type) key. For a
// given key either no records exist or a complete set does, one row per tied
// or untied winner; the rows themselves are the durable idempotency marker.
type Record struct {
	SeasonID     int64
	Type         competition.Type
	UserID       string
	Username     string
	TotalPoints  int
	Rank         int
	DeterminedAt time.Time
}
