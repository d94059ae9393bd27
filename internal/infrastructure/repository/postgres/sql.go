package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// isUniqueViolation matches postgres error code 23505 (unique_violation).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func unixToTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func timeToUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func nullableUnixToTime(sec sql.NullInt64) *time.Time {
	if !sec.Valid {
		return nil
	}
	t := time.Unix(sec.Int64, 0).UTC()
	return &t
}
