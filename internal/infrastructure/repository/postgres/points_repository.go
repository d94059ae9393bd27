package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/points"
	qb "github.com/oddstack/prediction-league/internal/platform/querybuilder"
)

type PointsRepository struct {
	db *sqlx.DB
}

func NewPointsRepository(db *sqlx.DB) *PointsRepository {
	return &PointsRepository{db: db}
}

func (r *PointsRepository) ListTotalsBySeason(ctx context.Context, seasonID int64, compType competition.Type) ([]points.Total, error) {
	query, args, err := qb.Select("user_id", "username", "SUM(points) AS points").
		From("user_point_records").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("competition_type", string(compType)),
			qb.IsNull("deleted_at"),
		).
		GroupBy("user_id", "username").
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build season totals query: %w", err)
	}

	var rows []pointsTotalRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season totals: %w", err)
	}

	out := make([]points.Total, 0, len(rows))
	for _, row := range rows {
		out = append(out, points.Total{
			UserID:   row.UserID,
			Username: row.Username,
			Points:   row.Points,
		})
	}
	return out, nil
}
