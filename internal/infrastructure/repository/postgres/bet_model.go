package postgres

import "time"

type userBetTableModel struct {
	ID            int64      `db:"id"`
	UserID        string     `db:"user_id"`
	FixtureID     int64      `db:"fixture_id"`
	PointsAwarded int        `db:"points_awarded"`
	SubmittedAt   int64      `db:"submitted_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type userBetInsertModel struct {
	UserID        string `db:"user_id"`
	FixtureID     int64  `db:"fixture_id"`
	PointsAwarded int    `db:"points_awarded"`
	SubmittedAt   int64  `db:"submitted_at"`
}

type participantTotalRowModel struct {
	UserID string `db:"user_id"`
	Points int    `db:"points"`
}
