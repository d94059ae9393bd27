package standings

import (
	"sort"

	"github.com/oddstack/prediction-league/internal/domain/points"
)

// Entry is one ranked leaderboard row. Rank follows standard competition
// ranking ("1224"): tied entries share a rank and the next distinct points
// value skips past the tied group. IsTied is set when at least one other
// entry holds the same points value.
type Entry struct {
	UserID   string
	Username string
	Points   int
	Rank     int
	IsTied   bool
}

// Rank orders totals by points descending, breaking ties by username
// ascending so repeated runs over the same ledger produce identical output.
func Rank(totals []points.Total) []Entry {
	if len(totals) == 0 {
		return []Entry{}
	}

	entries := make([]Entry, 0, len(totals))
	for _, total := range totals {
		entries = append(entries, Entry{
			UserID:   total.UserID,
			Username: total.Username,
			Points:   total.Points,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Username < entries[j].Username
	})

	for idx := range entries {
		if idx == 0 {
			entries[idx].Rank = 1
			continue
		}
		if entries[idx].Points == entries[idx-1].Points {
			entries[idx].Rank = entries[idx-1].Rank
			continue
		}
		entries[idx].Rank = idx + 1
	}

	for idx := range entries {
		prevTied := idx > 0 && entries[idx-1].Points == entries[idx].Points
		nextTied := idx < len(entries)-1 && entries[idx+1].Points == entries[idx].Points
		entries[idx].IsTied = prevTied || nextTied
	}

	return entries
}

// TopRanked returns every entry holding rank 1. The requested count is
// advisory: a tied leading group is never truncated to fit it.
func TopRanked(entries []Entry, requested int) []Entry {
	if requested < 1 {
		requested = 1
	}
	out := make([]Entry, 0, requested)
	for _, entry := range entries {
		if entry.Rank == 1 {
			out = append(out, entry)
		}
	}
	return out
}
