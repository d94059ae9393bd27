package postgres

import "time"

type fixtureTableModel struct {
	ID        int64      `db:"id"`
	RoundID   int64      `db:"round_id"`
	HomeTeam  string     `db:"home_team"`
	AwayTeam  string     `db:"away_team"`
	KickoffAt time.Time  `db:"kickoff_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
