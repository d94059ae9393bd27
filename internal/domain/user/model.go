package user

import "time"

// User is the slice of the account profile the reconciliation engine reads.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}
