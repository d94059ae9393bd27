package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/winner"
	qb "github.com/oddstack/prediction-league/internal/platform/querybuilder"
)

type WinnerRepository struct {
	db *sqlx.DB
}

func NewWinnerRepository(db *sqlx.DB) *WinnerRepository {
	return &WinnerRepository{db: db}
}

func (r *WinnerRepository) ListBySeason(ctx context.Context, seasonID int64, compType competition.Type) ([]winner.Record, error) {
	query, args, err := qb.Select("*").From("winner_records").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("competition_type", string(compType)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("username").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select winners query: %w", err)
	}

	var rows []winnerRecordTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select winners: %w", err)
	}

	out := make([]winner.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, winner.Record{
			SeasonID:     row.SeasonID,
			Type:         competition.Type(row.CompetitionType),
			UserID:       row.UserID,
			Username:     row.Username,
			TotalPoints:  row.TotalPoints,
			Rank:         row.Rank,
			DeterminedAt: unixToTime(row.DeterminedAt),
		})
	}
	return out, nil
}

func (r *WinnerRepository) InsertBatch(ctx context.Context, records []winner.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("winner batch cannot be empty")
	}

	models := make([]winnerRecordInsertModel, 0, len(records))
	for _, rec := range records {
		models = append(models, winnerRecordInsertModel{
			SeasonID:        rec.SeasonID,
			CompetitionType: string(rec.Type),
			UserID:          rec.UserID,
			Username:        rec.Username,
			TotalPoints:     rec.TotalPoints,
			Rank:            rec.Rank,
			DeterminedAt:    timeToUnix(rec.DeterminedAt),
		})
	}

	query, args, err := qb.InsertModels("winner_records", models, "")
	if err != nil {
		return fmt.Errorf("build insert winners query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert winners: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			// A concurrent determination committed first; its set stands.
			return winner.ErrAlreadyDetermined
		}
		return fmt.Errorf("insert winners: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert winners tx: %w", err)
	}
	return nil
}
