package memory

import (
	"time"

	"github.com/oddstack/prediction-league/internal/domain/bet"
	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/fixture"
	"github.com/oddstack/prediction-league/internal/domain/round"
	"github.com/oddstack/prediction-league/internal/domain/season"
	"github.com/oddstack/prediction-league/internal/domain/user"
)

const (
	CompetitionIDLiga1   int64 = 1
	CompetitionIDPremier int64 = 2

	SeasonIDLiga1   int64 = 11
	SeasonIDPremier int64 = 12
)

func SeedCompetitions() []competition.Context {
	return []competition.Context{
		{CompetitionID: CompetitionIDLiga1, SeasonID: SeasonIDLiga1, Name: "Liga 1 Indonesia 2025/2026"},
		{CompetitionID: CompetitionIDPremier, SeasonID: SeasonIDPremier, Name: "Premier League 2025/2026"},
	}
}

func SeedSeasons() []season.Season {
	liga1Done := time.Date(2026, 5, 24, 22, 0, 0, 0, time.UTC)
	return []season.Season{
		{
			ID:            SeasonIDLiga1,
			CompetitionID: CompetitionIDLiga1,
			Name:          "2025/2026",
			CompletedAt:   &liga1Done,
			CupActive:     true,
		},
		{
			ID:            SeasonIDPremier,
			CompetitionID: CompetitionIDPremier,
			Name:          "2025/2026",
			CompletedAt:   nil,
			CupActive:     false,
		},
	}
}

func SeedRounds() []round.BettingRound {
	return []round.BettingRound{
		{ID: 101, SeasonID: SeasonIDLiga1, CompetitionID: CompetitionIDLiga1, Name: "Pekan 1", Status: round.StatusScored},
		{ID: 102, SeasonID: SeasonIDLiga1, CompetitionID: CompetitionIDLiga1, Name: "Pekan 2", Status: round.StatusScored},
		{ID: 103, SeasonID: SeasonIDLiga1, CompetitionID: CompetitionIDLiga1, Name: "Pekan 3", Status: round.StatusOpen},
		{ID: 201, SeasonID: SeasonIDPremier, CompetitionID: CompetitionIDPremier, Name: "Matchweek 1", Status: round.StatusScored},
		{ID: 202, SeasonID: SeasonIDPremier, CompetitionID: CompetitionIDPremier, Name: "Matchweek 2", Status: round.StatusScoring},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{ID: 1001, RoundID: 101, HomeTeam: "Persija Jakarta", AwayTeam: "Persib Bandung", KickoffAt: time.Date(2026, 2, 14, 19, 0, 0, 0, time.UTC)},
		{ID: 1002, RoundID: 101, HomeTeam: "Persebaya Surabaya", AwayTeam: "Bali United", KickoffAt: time.Date(2026, 2, 15, 12, 30, 0, 0, time.UTC)},
		{ID: 1003, RoundID: 102, HomeTeam: "Persib Bandung", AwayTeam: "Persebaya Surabaya", KickoffAt: time.Date(2026, 2, 21, 12, 30, 0, 0, time.UTC)},
		{ID: 1004, RoundID: 102, HomeTeam: "Bali United", AwayTeam: "Persija Jakarta", KickoffAt: time.Date(2026, 2, 22, 12, 30, 0, 0, time.UTC)},
		{ID: 1005, RoundID: 103, HomeTeam: "Persija Jakarta", AwayTeam: "Persebaya Surabaya", KickoffAt: time.Date(2026, 2, 28, 12, 30, 0, 0, time.UTC)},
		{ID: 2001, RoundID: 201, HomeTeam: "Arsenal", AwayTeam: "Liverpool", KickoffAt: time.Date(2026, 2, 14, 15, 0, 0, 0, time.UTC)},
		{ID: 2002, RoundID: 202, HomeTeam: "Liverpool", AwayTeam: "Arsenal", KickoffAt: time.Date(2026, 2, 21, 15, 0, 0, 0, time.UTC)},
	}
}

func SeedUsers() []user.User {
	return []user.User{
		{ID: "usr-andi", Username: "andi", CreatedAt: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)},
		{ID: "usr-budi", Username: "budi", CreatedAt: time.Date(2026, 1, 6, 9, 30, 0, 0, time.UTC)},
		{ID: "usr-cici", Username: "cici", CreatedAt: time.Date(2026, 1, 9, 14, 15, 0, 0, time.UTC)},
		{ID: "usr-dewi", Username: "dewi", CreatedAt: time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)},
	}
}

func SeedBets() []bet.UserBet {
	return []bet.UserBet{
		{UserID: "usr-andi", FixtureID: 1001, PointsAwarded: 3, SubmittedAt: time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)},
		{UserID: "usr-andi", FixtureID: 1002, PointsAwarded: 1, SubmittedAt: time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)},
		{UserID: "usr-andi", FixtureID: 1003, PointsAwarded: 0, SubmittedAt: time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)},
		{UserID: "usr-andi", FixtureID: 1004, PointsAwarded: 3, SubmittedAt: time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)},
		{UserID: "usr-budi", FixtureID: 1001, PointsAwarded: 1, SubmittedAt: time.Date(2026, 2, 13, 18, 0, 0, 0, time.UTC)},
		{UserID: "usr-budi", FixtureID: 1002, PointsAwarded: 3, SubmittedAt: time.Date(2026, 2, 13, 18, 0, 0, 0, time.UTC)},
		{UserID: "usr-cici", FixtureID: 1003, PointsAwarded: 1, SubmittedAt: time.Date(2026, 2, 19, 21, 0, 0, 0, time.UTC)},
		{UserID: "usr-cici", FixtureID: 1004, PointsAwarded: 1, SubmittedAt: time.Date(2026, 2, 19, 21, 0, 0, 0, time.UTC)},
	}
}

func SeedPointRecords() []PointRecord {
	return []PointRecord{
		{SeasonID: SeasonIDLiga1, Type: competition.TypeLeague, UserID: "usr-andi", Username: "andi", Points: 7},
		{SeasonID: SeasonIDLiga1, Type: competition.TypeLeague, UserID: "usr-budi", Username: "budi", Points: 4},
		{SeasonID: SeasonIDLiga1, Type: competition.TypeLeague, UserID: "usr-cici", Username: "cici", Points: 2},
		{SeasonID: SeasonIDLiga1, Type: competition.TypeCup, UserID: "usr-andi", Username: "andi", Points: 3},
		{SeasonID: SeasonIDLiga1, Type: competition.TypeCup, UserID: "usr-cici", Username: "cici", Points: 3},
	}
}
