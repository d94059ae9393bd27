package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oddstack/prediction-league/internal/domain/fixture"
	qb "github.com/oddstack/prediction-league/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListByRound(ctx context.Context, roundID int64) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("round_id", roundID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by round query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures by round: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.Fixture{
			ID:        row.ID,
			RoundID:   row.RoundID,
			HomeTeam:  row.HomeTeam,
			AwayTeam:  row.AwayTeam,
			KickoffAt: row.KickoffAt,
		})
	}
	return out, nil
}
