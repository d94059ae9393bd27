package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oddstack/prediction-league/internal/domain/competition"
	qb "github.com/oddstack/prediction-league/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) CurrentContext(ctx context.Context) (competition.Context, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(
			qb.Eq("is_current", true),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Context{}, false, fmt.Errorf("build current competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Context{}, false, nil
		}
		return competition.Context{}, false, fmt.Errorf("get current competition: %w", err)
	}

	return r.contextWithLatestSeason(ctx, row)
}

func (r *CompetitionRepository) ContextByCompetition(ctx context.Context, competitionID int64) (competition.Context, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(
			qb.Eq("id", competitionID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return competition.Context{}, false, fmt.Errorf("build get competition by id query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Context{}, false, nil
		}
		return competition.Context{}, false, fmt.Errorf("get competition by id: %w", err)
	}

	return r.contextWithLatestSeason(ctx, row)
}

func (r *CompetitionRepository) contextWithLatestSeason(ctx context.Context, row competitionTableModel) (competition.Context, bool, error) {
	query, args, err := qb.Select("id").From("seasons").
		Where(
			qb.Eq("competition_id", row.ID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Context{}, false, fmt.Errorf("build latest season query: %w", err)
	}

	var seasonID int64
	if err := r.db.GetContext(ctx, &seasonID, query, args...); err != nil {
		if isNotFound(err) {
			// A competition without a season cannot scope any work.
			return competition.Context{}, false, nil
		}
		return competition.Context{}, false, fmt.Errorf("get latest season: %w", err)
	}

	return competition.Context{
		CompetitionID: row.ID,
		SeasonID:      seasonID,
		Name:          row.Name,
	}, true, nil
}
