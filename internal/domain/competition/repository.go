package competition

import "context"

// Repository resolves competition scope for callers that do not name one.
type Repository interface {
	// CurrentContext returns the active competition and its running season.
	CurrentContext(ctx context.Context) (Context, bool, error)
	// ContextByCompetition resolves the context of a specific competition.
	ContextByCompetition(ctx context.Context, competitionID int64) (Context, bool, error)
}
