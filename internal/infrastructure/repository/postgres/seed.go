package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oddstack/prediction-league/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo dataset when the database is empty. It is a
// no-op once any competition exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM competitions WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count competitions for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range memory.SeedCompetitions() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO competitions (id, name, is_current)
VALUES (:id, :name, :is_current)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":         c.CompetitionID,
			"name":       c.Name,
			"is_current": c.CompetitionID == memory.CompetitionIDLiga1,
		})
		if err != nil {
			return fmt.Errorf("bind seed competition %d query: %w", c.CompetitionID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed competition %d: %w", c.CompetitionID, err)
		}
	}

	for _, s := range memory.SeedSeasons() {
		var completedAt any
		if s.CompletedAt != nil {
			completedAt = s.CompletedAt.Unix()
		}
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO seasons (id, competition_id, name, completed_at, cup_active)
VALUES (:id, :competition_id, :name, :completed_at, :cup_active)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":             s.ID,
			"competition_id": s.CompetitionID,
			"name":           s.Name,
			"completed_at":   completedAt,
			"cup_active":     s.CupActive,
		})
		if err != nil {
			return fmt.Errorf("bind seed season %d query: %w", s.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed season %d: %w", s.ID, err)
		}
	}

	for _, r := range memory.SeedRounds() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO betting_rounds (id, season_id, competition_id, name, status)
VALUES (:id, :season_id, :competition_id, :name, :status)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":             r.ID,
			"season_id":      r.SeasonID,
			"competition_id": r.CompetitionID,
			"name":           r.Name,
			"status":         r.Status,
		})
		if err != nil {
			return fmt.Errorf("bind seed round %d query: %w", r.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed round %d: %w", r.ID, err)
		}
	}

	for _, f := range memory.SeedFixtures() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO fixtures (id, round_id, home_team, away_team, kickoff_at)
VALUES (:id, :round_id, :home_team, :away_team, :kickoff_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":         f.ID,
			"round_id":   f.RoundID,
			"home_team":  f.HomeTeam,
			"away_team":  f.AwayTeam,
			"kickoff_at": f.KickoffAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed fixture %d query: %w", f.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed fixture %d: %w", f.ID, err)
		}
	}

	for _, u := range memory.SeedUsers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO users (id, username, created_at)
VALUES (:id, :username, :created_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":         u.ID,
			"username":   u.Username,
			"created_at": u.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed user %s query: %w", u.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	for _, b := range memory.SeedBets() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO user_bets (user_id, fixture_id, points_awarded, submitted_at)
VALUES (:user_id, :fixture_id, :points_awarded, :submitted_at)
ON CONFLICT (user_id, fixture_id) WHERE deleted_at IS NULL DO NOTHING`, map[string]any{
			"user_id":        b.UserID,
			"fixture_id":     b.FixtureID,
			"points_awarded": b.PointsAwarded,
			"submitted_at":   b.SubmittedAt.Unix(),
		})
		if err != nil {
			return fmt.Errorf("bind seed bet %s/%d query: %w", b.UserID, b.FixtureID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed bet %s/%d: %w", b.UserID, b.FixtureID, err)
		}
	}

	for _, p := range memory.SeedPointRecords() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO user_point_records (season_id, competition_type, user_id, username, points)
VALUES (:season_id, :competition_type, :user_id, :username, :points)`, map[string]any{
			"season_id":        p.SeasonID,
			"competition_type": string(p.Type),
			"user_id":          p.UserID,
			"username":         p.Username,
			"points":           p.Points,
		})
		if err != nil {
			return fmt.Errorf("bind seed point record %s query: %w", p.UserID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed point record %s: %w", p.UserID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
