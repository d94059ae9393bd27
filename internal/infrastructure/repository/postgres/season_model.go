package postgres

import (
	"database/sql"
	"time"
)

type seasonTableModel struct {
	ID            int64         `db:"id"`
	CompetitionID int64         `db:"competition_id"`
	Name          string        `db:"name"`
	CompletedAt   sql.NullInt64 `db:"completed_at"`
	CupActive     bool          `db:"cup_active"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
	DeletedAt     *time.Time    `db:"deleted_at"`
}
