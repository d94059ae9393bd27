package postgres

import "time"

type bettingRoundTableModel struct {
	ID            int64      `db:"id"`
	SeasonID      int64      `db:"season_id"`
	CompetitionID int64      `db:"competition_id"`
	Name          string     `db:"name"`
	Status        string     `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type missedRoundRowModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
