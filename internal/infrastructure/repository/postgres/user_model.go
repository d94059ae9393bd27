package postgres

import "time"

type userTableModel struct {
	ID        string     `db:"id"`
	Username  string     `db:"username"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
