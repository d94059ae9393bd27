package competition

import "fmt"

// Type distinguishes the point ledgers tracked per season. The league
// competition runs over every round; the cup is the last-round-special
// side competition with its own ledger and winners.
type Type string

const (
	TypeLeague Type = "league"
	TypeCup    Type = "cup"
)

func ParseType(value string) (Type, error) {
	switch Type(value) {
	case TypeLeague, TypeCup:
		return Type(value), nil
	default:
		return "", fmt.Errorf("unknown competition type %q", value)
	}
}

// Context is the competition scope a user call resolves to when no explicit
// competition is supplied.
type Context struct {
	CompetitionID int64
	SeasonID      int64
	Name          string
}
