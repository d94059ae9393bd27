package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oddstack/prediction-league/internal/domain/round"
	qb "github.com/oddstack/prediction-league/internal/platform/querybuilder"
)

type RoundRepository struct {
	db *sqlx.DB
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

func (r *RoundRepository) ListByCompetition(ctx context.Context, competitionID int64) ([]round.BettingRound, error) {
	query, args, err := qb.Select("*").From("betting_rounds").
		Where(
			qb.Eq("competition_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rounds by competition query: %w", err)
	}

	var rows []bettingRoundTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rounds by competition: %w", err)
	}

	out := make([]round.BettingRound, 0, len(rows))
	for _, row := range rows {
		out = append(out, round.BettingRound{
			ID:            row.ID,
			SeasonID:      row.SeasonID,
			CompetitionID: row.CompetitionID,
			Name:          row.Name,
			Status:        row.Status,
		})
	}
	return out, nil
}

func (r *RoundRepository) ListScoredWithoutUserBet(ctx context.Context, userID string, competitionID int64) ([]round.MissedRound, error) {
	query, args, err := qb.Select("id", "name").From("betting_rounds").
		Where(
			qb.Eq("competition_id", competitionID),
			qb.Eq("status", round.StatusScored),
			qb.IsNull("deleted_at"),
			qb.Expr(`NOT EXISTS (
SELECT 1 FROM user_bets ub
JOIN fixtures f ON f.id = ub.fixture_id AND f.deleted_at IS NULL
WHERE f.round_id = betting_rounds.id
  AND ub.user_id = ?
  AND ub.deleted_at IS NULL
)`, userID),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build missed rounds query: %w", err)
	}

	var rows []missedRoundRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select missed rounds: %w", err)
	}

	out := make([]round.MissedRound, 0, len(rows))
	for _, row := range rows {
		out = append(out, round.MissedRound{ID: row.ID, Name: row.Name})
	}
	return out, nil
}
