package postgres

import "time"

type winnerRecordTableModel struct {
	ID              int64      `db:"id"`
	SeasonID        int64      `db:"season_id"`
	CompetitionType string     `db:"competition_type"`
	UserID          string     `db:"user_id"`
	Username        string     `db:"username"`
	TotalPoints     int        `db:"total_points"`
	Rank            int        `db:"rank"`
	DeterminedAt    int64      `db:"determined_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type winnerRecordInsertModel struct {
	SeasonID        int64  `db:"season_id"`
	CompetitionType string `db:"competition_type"`
	UserID          string `db:"user_id"`
	Username        string `db:"username"`
	TotalPoints     int    `db:"total_points"`
	Rank            int    `db:"rank"`
	DeterminedAt    int64  `db:"determined_at"`
}
