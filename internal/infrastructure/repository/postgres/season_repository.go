package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/season"
	qb "github.com/oddstack/prediction-league/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season by id query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by id: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) ListEligibleForDetermination(ctx context.Context, compType competition.Type) ([]season.Season, error) {
	conditions := []qb.Condition{
		qb.IsNotNull("completed_at"),
		qb.IsNull("deleted_at"),
	}
	if compType == competition.TypeCup {
		conditions = append(conditions, qb.Eq("cup_active", true))
	}

	query, args, err := qb.Select("*").From("seasons").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build eligible seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select eligible seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:            row.ID,
		CompetitionID: row.CompetitionID,
		Name:          row.Name,
		CompletedAt:   nullableUnixToTime(row.CompletedAt),
		CupActive:     row.CupActive,
	}
}
