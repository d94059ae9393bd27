package points

// Total is one user's aggregated points for a season/competition-type scope,
// summed across that user's per-round point records.
type Total struct {
	UserID   string
	Username string
	Points   int
}
