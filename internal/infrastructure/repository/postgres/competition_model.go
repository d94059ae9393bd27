package postgres

import "time"

type competitionTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	IsCurrent bool       `db:"is_current"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
