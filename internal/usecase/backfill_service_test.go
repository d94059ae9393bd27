package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/oddstack/prediction-league/internal/domain/fixture"
	"github.com/oddstack/prediction-league/internal/infrastructure/repository/memory"
)

type failingFixtureRepo struct {
	inner       *memory.FixtureRepository
	failRoundID int64
}

func (r *failingFixtureRepo) ListByRound(ctx context.Context, roundID int64) ([]fixture.Fixture, error) {
	if roundID == r.failRoundID {
		return nil, errors.New("fixture store unavailable")
	}
	return r.inner.ListByRound(ctx, roundID)
}

type seededBackfillRepos struct {
	users        *memory.UserRepository
	competitions *memory.CompetitionRepository
	rounds       *memory.RoundRepository
	fixtures     *memory.FixtureRepository
	bets         *memory.BetRepository
}

func newSeededBackfillRepos() seededBackfillRepos {
	bets := memory.NewBetRepository(memory.SeedRounds(), memory.SeedFixtures(), memory.SeedBets())
	return seededBackfillRepos{
		users:        memory.NewUserRepository(memory.SeedUsers()),
		competitions: memory.NewCompetitionRepository(memory.SeedCompetitions(), memory.CompetitionIDLiga1),
		rounds:       memory.NewRoundRepository(memory.SeedRounds(), bets),
		fixtures:     memory.NewFixtureRepository(memory.SeedFixtures()),
		bets:         bets,
	}
}

func (r seededBackfillRepos) service() *BackfillService {
	return NewBackfillService(r.users, r.competitions, r.rounds, r.fixtures, r.bets, nil)
}

func TestBackfillService_ApplyForUser_LateJoinerGetsWorstParticipantShare(t *testing.T) {
	repos := newSeededBackfillRepos()
	service := repos.service()

	result, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "usr-dewi"})
	if err != nil {
		t.Fatalf("apply backfill failed: %v", err)
	}

	if result.CompetitionID != memory.CompetitionIDLiga1 {
		t.Fatalf("expected current competition resolved, got %d", result.CompetitionID)
	}
	if result.RoundsProcessed != 2 {
		t.Fatalf("expected both scored rounds processed, got %d", result.RoundsProcessed)
	}
	// Round 101 worst total is 4, clamped to its 2 fixtures; round 102
	// worst total is 2 across 2 fixtures.
	if result.TotalPointsAwarded != 4 {
		t.Fatalf("expected 4 total points awarded, got %d", result.TotalPointsAwarded)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no round errors, got %v", result.Errors)
	}

	if result.Rounds[0].RoundID != 101 || result.Rounds[1].RoundID != 102 {
		t.Fatalf("expected rounds in ascending id order, got %d then %d", result.Rounds[0].RoundID, result.Rounds[1].RoundID)
	}

	hasBets, err := repos.bets.HasAnyInCompetition(t.Context(), "usr-dewi", memory.CompetitionIDLiga1)
	if err != nil {
		t.Fatalf("check persisted bets failed: %v", err)
	}
	if !hasBets {
		t.Fatalf("expected backfill bets persisted for the late joiner")
	}
}

func TestBackfillService_ApplyForUser_SecondRunFindsNothingLeft(t *testing.T) {
	repos := newSeededBackfillRepos()
	service := repos.service()

	if _, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "usr-dewi"}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}

	second, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "usr-dewi"})
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if second.RoundsProcessed != 0 || second.TotalPointsAwarded != 0 {
		t.Fatalf("expected nothing left to backfill, got %d rounds %d points", second.RoundsProcessed, second.TotalPointsAwarded)
	}
}

func TestBackfillService_ApplyForUser_DryRunPersistsNothing(t *testing.T) {
	repos := newSeededBackfillRepos()
	service := repos.service()

	result, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "usr-dewi", DryRun: true})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	if !result.DryRun {
		t.Fatalf("expected dry run flag echoed in result")
	}
	if result.TotalPointsAwarded != 4 {
		t.Fatalf("dry run must still compute the plan, got %d points", result.TotalPointsAwarded)
	}

	hasBets, err := repos.bets.HasAnyInCompetition(t.Context(), "usr-dewi", memory.CompetitionIDLiga1)
	if err != nil {
		t.Fatalf("check persisted bets failed: %v", err)
	}
	if hasBets {
		t.Fatalf("dry run must not persist bets")
	}
}

func TestBackfillService_ApplyForUser_SkipsRoundsTheUserAlreadyBetIn(t *testing.T) {
	repos := newSeededBackfillRepos()
	service := repos.service()

	// budi bet in round 101 but skipped round 102.
	result, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "usr-budi"})
	if err != nil {
		t.Fatalf("apply for mid-competition user failed: %v", err)
	}

	if result.RoundsProcessed != 1 || result.Rounds[0].RoundID != 102 {
		t.Fatalf("expected only round 102 backfilled, got %+v", result.Rounds)
	}
}

func TestBackfillService_ApplyForUser_UnknownUser(t *testing.T) {
	service := newSeededBackfillRepos().service()

	if _, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "usr-ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBackfillService_ApplyForUser_BlankUserID(t *testing.T) {
	service := newSeededBackfillRepos().service()

	if _, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestBackfillService_ApplyForUser_NoCurrentCompetitionIsEmptyResult(t *testing.T) {
	repos := newSeededBackfillRepos()
	repos.competitions.SetCurrent(0)
	service := repos.service()

	result, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "usr-dewi"})
	if err != nil {
		t.Fatalf("apply without current competition failed: %v", err)
	}
	if result.CompetitionID != 0 || result.RoundsProcessed != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestBackfillService_ApplyForUser_UnknownExplicitCompetition(t *testing.T) {
	service := newSeededBackfillRepos().service()

	if _, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "usr-dewi", CompetitionID: 999}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown competition, got %v", err)
	}
}

func TestBackfillService_ApplyForUser_OneRoundFailureDoesNotAbortOthers(t *testing.T) {
	repos := newSeededBackfillRepos()
	service := NewBackfillService(
		repos.users,
		repos.competitions,
		repos.rounds,
		&failingFixtureRepo{inner: repos.fixtures, failRoundID: 101},
		repos.bets,
		nil,
	)

	result, err := service.ApplyForUser(t.Context(), ApplyInput{UserID: "usr-dewi"})
	if err != nil {
		t.Fatalf("apply with one failing round errored outright: %v", err)
	}

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "round 101") {
		t.Fatalf("expected one error naming round 101, got %v", result.Errors)
	}
	if result.RoundsProcessed != 1 || result.Rounds[0].RoundID != 102 {
		t.Fatalf("expected round 102 still processed, got %+v", result.Rounds)
	}
}

func TestBackfillService_CheckIfUserNeedsBackfill(t *testing.T) {
	service := newSeededBackfillRepos().service()

	check, err := service.CheckIfUserNeedsBackfill(t.Context(), "usr-dewi")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !check.NeedsBackfill {
		t.Fatalf("expected the late joiner to need a backfill")
	}
	if check.RoundsMissed != 2 || check.PointsAvailable != 4 {
		t.Fatalf("unexpected check numbers: %+v", check)
	}
	if check.CompetitionID != memory.CompetitionIDLiga1 {
		t.Fatalf("expected current competition in check, got %d", check.CompetitionID)
	}

	andiCheck, err := service.CheckIfUserNeedsBackfill(t.Context(), "usr-andi")
	if err != nil {
		t.Fatalf("check for full participant failed: %v", err)
	}
	if andiCheck.NeedsBackfill {
		t.Fatalf("expected no backfill needed for a full participant, got %+v", andiCheck)
	}
}

func TestBackfillService_CheckIfUserNeedsBackfill_NoCurrentCompetition(t *testing.T) {
	repos := newSeededBackfillRepos()
	repos.competitions.SetCurrent(0)
	service := repos.service()

	check, err := service.CheckIfUserNeedsBackfill(t.Context(), "usr-dewi")
	if err != nil {
		t.Fatalf("check without current competition failed: %v", err)
	}
	if check.NeedsBackfill || check.CompetitionID != 0 {
		t.Fatalf("expected empty check, got %+v", check)
	}
}

func TestBackfillService_PreviewForUser_IsRepeatable(t *testing.T) {
	repos := newSeededBackfillRepos()
	service := repos.service()

	for run := 0; run < 2; run++ {
		preview, err := service.PreviewForUser(t.Context(), "usr-dewi", 0)
		if err != nil {
			t.Fatalf("preview run %d failed: %v", run, err)
		}
		if preview.TotalPointsAwarded != 4 {
			t.Fatalf("preview run %d: expected 4 points, got %d", run, preview.TotalPointsAwarded)
		}
	}
}

func TestBackfillService_IsUserFirstBetInCompetition(t *testing.T) {
	service := newSeededBackfillRepos().service()

	isFirst, err := service.IsUserFirstBetInCompetition(t.Context(), "usr-dewi", memory.CompetitionIDLiga1)
	if err != nil {
		t.Fatalf("first-bet check failed: %v", err)
	}
	if !isFirst {
		t.Fatalf("expected dewi to be a first-time bettor")
	}

	isFirst, err = service.IsUserFirstBetInCompetition(t.Context(), "usr-budi", 0)
	if err != nil {
		t.Fatalf("first-bet check via current competition failed: %v", err)
	}
	if isFirst {
		t.Fatalf("expected budi's existing bets to count")
	}
}

func TestBackfillService_IsUserFirstBetInCompetition_BlankUser(t *testing.T) {
	service := newSeededBackfillRepos().service()

	if _, err := service.IsUserFirstBetInCompetition(t.Context(), "", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
