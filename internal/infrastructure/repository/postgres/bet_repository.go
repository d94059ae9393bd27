package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oddstack/prediction-league/internal/domain/bet"
	qb "github.com/oddstack/prediction-league/internal/platform/querybuilder"
)

type BetRepository struct {
	db *sqlx.DB
}

func NewBetRepository(db *sqlx.DB) *BetRepository {
	return &BetRepository{db: db}
}

func (r *BetRepository) InsertBatch(ctx context.Context, bets []bet.UserBet) error {
	if len(bets) == 0 {
		return nil
	}

	models := make([]userBetInsertModel, 0, len(bets))
	for _, b := range bets {
		models = append(models, userBetInsertModel{
			UserID:        b.UserID,
			FixtureID:     b.FixtureID,
			PointsAwarded: b.PointsAwarded,
			SubmittedAt:   timeToUnix(b.SubmittedAt),
		})
	}

	query, args, err := qb.InsertModels("user_bets", models, "")
	if err != nil {
		return fmt.Errorf("build insert bets query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert bets: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert bets: %w: %w", bet.ErrDuplicate, err)
		}
		return fmt.Errorf("insert bets: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert bets tx: %w", err)
	}
	return nil
}

func (r *BetRepository) HasAnyInCompetition(ctx context.Context, userID string, competitionID int64) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").
		From("user_bets ub JOIN fixtures f ON f.id = ub.fixture_id JOIN betting_rounds br ON br.id = f.round_id").
		Where(
			qb.Eq("ub.user_id", userID),
			qb.Eq("br.competition_id", competitionID),
			qb.IsNull("ub.deleted_at"),
			qb.IsNull("f.deleted_at"),
			qb.IsNull("br.deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build count bets in competition query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("count bets in competition: %w", err)
	}
	return count > 0, nil
}

func (r *BetRepository) ListParticipantTotalsByRound(ctx context.Context, roundID int64) ([]int, error) {
	query, args, err := qb.Select("ub.user_id AS user_id", "SUM(ub.points_awarded) AS points").
		From("user_bets ub JOIN fixtures f ON f.id = ub.fixture_id").
		Where(
			qb.Eq("f.round_id", roundID),
			qb.IsNull("ub.deleted_at"),
			qb.IsNull("f.deleted_at"),
		).
		GroupBy("ub.user_id").
		OrderBy("ub.user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build participant totals query: %w", err)
	}

	var rows []participantTotalRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select participant totals: %w", err)
	}

	totals := make([]int, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, row.Points)
	}
	return totals, nil
}
