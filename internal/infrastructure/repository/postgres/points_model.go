package postgres

type pointsTotalRowModel struct {
	UserID   string `db:"user_id"`
	Username string `db:"username"`
	Points   int    `db:"points"`
}
