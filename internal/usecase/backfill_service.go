package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/oddstack/prediction-league/internal/domain/backfill"
	"github.com/oddstack/prediction-league/internal/domain/bet"
	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/fixture"
	"github.com/oddstack/prediction-league/internal/domain/round"
	"github.com/oddstack/prediction-league/internal/domain/user"
	"github.com/oddstack/prediction-league/internal/platform/logging"
)

// BackfillService grants a late-joining user retroactive points for rounds
// scored before they participated, sized to the worst existing participant so
// joining late is never an advantage or a penalty.
type BackfillService struct {
	userRepo        user.Repository
	competitionRepo competition.Repository
	roundRepo       round.Repository
	fixtureRepo     fixture.Repository
	betRepo         bet.Repository
	logger          *logging.Logger
	now             func() time.Time
}

type ApplyInput struct {
	UserID string
	// CompetitionID zero resolves the current competition context.
	CompetitionID int64
	DryRun        bool
}

// BackfillResult aggregates per-round plans. A single round's failure never
// aborts the remaining rounds; it lands in Errors instead.
type BackfillResult struct {
	UserID             string
	CompetitionID      int64
	CompetitionName    string
	DryRun             bool
	RoundsProcessed    int
	TotalPointsAwarded int
	Rounds             []backfill.Plan
	Errors             []string
}

// BackfillCheck reports whether a backfill is warranted for the user in the
// current competition.
type BackfillCheck struct {
	UserID          string
	NeedsBackfill   bool
	CompetitionID   int64
	CompetitionName string
	RoundsMissed    int
	PointsAvailable int
}

func NewBackfillService(
	userRepo user.Repository,
	competitionRepo competition.Repository,
	roundRepo round.Repository,
	fixtureRepo fixture.Repository,
	betRepo bet.Repository,
	logger *logging.Logger,
) *BackfillService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BackfillService{
		userRepo:        userRepo,
		competitionRepo: competitionRepo,
		roundRepo:       roundRepo,
		fixtureRepo:     fixtureRepo,
		betRepo:         betRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// ApplyForUser computes fair-share backfills for every scored round the user
// missed and, unless DryRun is set, persists one bet row per fixture in a
// single batch per round. Rounds process in ascending id order; failures are
// collected per round.
func (s *BackfillService) ApplyForUser(ctx context.Context, input ApplyInput) (BackfillResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.ApplyForUser")
	defer span.End()

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return BackfillResult{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	_, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return BackfillResult{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	result := BackfillResult{
		UserID: userID,
		DryRun: input.DryRun,
		Rounds: []backfill.Plan{},
		Errors: []string{},
	}

	competitionID := input.CompetitionID
	if competitionID <= 0 {
		compCtx, ok, err := s.competitionRepo.CurrentContext(ctx)
		if err != nil {
			return BackfillResult{}, fmt.Errorf("resolve current competition: %w", err)
		}
		if !ok {
			// Nothing to backfill against; not an error.
			return result, nil
		}
		competitionID = compCtx.CompetitionID
		result.CompetitionName = compCtx.Name
	} else {
		compCtx, ok, err := s.competitionRepo.ContextByCompetition(ctx, competitionID)
		if err != nil {
			return BackfillResult{}, fmt.Errorf("resolve competition %d: %w", competitionID, err)
		}
		if !ok {
			return BackfillResult{}, fmt.Errorf("%w: competition=%d", ErrNotFound, competitionID)
		}
		result.CompetitionName = compCtx.Name
	}
	result.CompetitionID = competitionID

	missed, err := s.roundRepo.ListScoredWithoutUserBet(ctx, userID, competitionID)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("list missed rounds user=%s competition=%d: %w", userID, competitionID, err)
	}

	sort.SliceStable(missed, func(i, j int) bool {
		return missed[i].ID < missed[j].ID
	})

	processedAt := s.now().UTC()
	for _, missedRound := range missed {
		plan, err := s.backfillRound(ctx, userID, missedRound, input.DryRun, processedAt)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("round %d (%s): %v", missedRound.ID, missedRound.Name, err))
			continue
		}
		result.RoundsProcessed++
		result.TotalPointsAwarded += plan.PointsAwarded
		result.Rounds = append(result.Rounds, plan)
	}

	s.logger.InfoContext(ctx, "backfill run finished",
		"user_id", userID,
		"competition_id", competitionID,
		"dry_run", input.DryRun,
		"rounds_processed", result.RoundsProcessed,
		"total_points_awarded", result.TotalPointsAwarded,
		"round_errors", len(result.Errors),
	)

	return result, nil
}

func (s *BackfillService) backfillRound(
	ctx context.Context,
	userID string,
	missedRound round.MissedRound,
	dryRun bool,
	processedAt time.Time,
) (backfill.Plan, error) {
	fixtures, err := s.fixtureRepo.ListByRound(ctx, missedRound.ID)
	if err != nil {
		return backfill.Plan{}, fmt.Errorf("list fixtures: %w", err)
	}

	totals, err := s.betRepo.ListParticipantTotalsByRound(ctx, missedRound.ID)
	if err != nil {
		return backfill.Plan{}, fmt.Errorf("list participant totals: %w", err)
	}

	fixtureIDs := make([]int64, 0, len(fixtures))
	for _, item := range fixtures {
		fixtureIDs = append(fixtureIDs, item.ID)
	}

	plan := backfill.BuildPlan(missedRound.ID, missedRound.Name, fixtureIDs, totals)
	if dryRun {
		return plan, nil
	}

	bets := make([]bet.UserBet, 0, len(plan.Fixtures))
	for _, assignment := range plan.Fixtures {
		bets = append(bets, bet.UserBet{
			UserID:        userID,
			FixtureID:     assignment.FixtureID,
			PointsAwarded: assignment.Points,
			SubmittedAt:   processedAt,
		})
	}
	if len(bets) > 0 {
		if err := s.betRepo.InsertBatch(ctx, bets); err != nil {
			return backfill.Plan{}, fmt.Errorf("insert backfill bets: %w", err)
		}
	}

	return plan, nil
}

// PreviewForUser is a read-only dry run, safe to call repeatedly.
func (s *BackfillService) PreviewForUser(ctx context.Context, userID string, competitionID int64) (BackfillResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.PreviewForUser")
	defer span.End()

	return s.ApplyForUser(ctx, ApplyInput{
		UserID:        userID,
		CompetitionID: competitionID,
		DryRun:        true,
	})
}

// CheckIfUserNeedsBackfill previews against the current competition and
// reports whether applying would do anything.
func (s *BackfillService) CheckIfUserNeedsBackfill(ctx context.Context, userID string) (BackfillCheck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.CheckIfUserNeedsBackfill")
	defer span.End()

	compCtx, ok, err := s.competitionRepo.CurrentContext(ctx)
	if err != nil {
		return BackfillCheck{}, fmt.Errorf("resolve current competition: %w", err)
	}
	if !ok {
		return BackfillCheck{UserID: strings.TrimSpace(userID)}, nil
	}

	preview, err := s.PreviewForUser(ctx, userID, compCtx.CompetitionID)
	if err != nil {
		return BackfillCheck{}, err
	}

	return BackfillCheck{
		UserID:          preview.UserID,
		NeedsBackfill:   preview.RoundsProcessed > 0,
		CompetitionID:   compCtx.CompetitionID,
		CompetitionName: compCtx.Name,
		RoundsMissed:    preview.RoundsProcessed,
		PointsAvailable: preview.TotalPointsAwarded,
	}, nil
}

// IsUserFirstBetInCompetition reports whether the user has placed no bet on
// any round of the competition. Callers use it to distinguish genuine late
// joiners from mid-competition users who skipped a round by choice.
func (s *BackfillService) IsUserFirstBetInCompetition(ctx context.Context, userID string, competitionID int64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.IsUserFirstBetInCompetition")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if competitionID <= 0 {
		compCtx, ok, err := s.competitionRepo.CurrentContext(ctx)
		if err != nil {
			return false, fmt.Errorf("resolve current competition: %w", err)
		}
		if !ok {
			return false, fmt.Errorf("%w: no current competition", ErrNotFound)
		}
		competitionID = compCtx.CompetitionID
	}

	hasBet, err := s.betRepo.HasAnyInCompetition(ctx, userID, competitionID)
	if err != nil {
		return false, fmt.Errorf("check existing bets user=%s competition=%d: %w", userID, competitionID, err)
	}

	return !hasBet, nil
}
