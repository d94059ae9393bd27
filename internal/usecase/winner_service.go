package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/points"
	"github.com/oddstack/prediction-league/internal/domain/season"
	"github.com/oddstack/prediction-league/internal/domain/standings"
	"github.com/oddstack/prediction-league/internal/domain/winner"
	"github.com/oddstack/prediction-league/internal/platform/logging"
	"github.com/oddstack/prediction-league/internal/platform/resilience"
)

const defaultSweepWorkers = 4

// WinnerService determines season winners from the point ledger. A key is
// either undetermined or determined, one way; the committed winner rows are
// the durable idempotency marker, so repeat calls return the original set.
type WinnerService struct {
	seasonRepo season.Repository
	pointsRepo points.Repository
	winnerRepo winner.Repository
	logger     *logging.Logger
	now        func() time.Time

	determineFlight resilience.SingleFlight
}

// Determination is the outcome of one winner determination call.
type Determination struct {
	SeasonID          int64
	Type              competition.Type
	Winners           []winner.Record
	AlreadyDetermined bool
}

type SweepInput struct {
	Type       competition.Type
	MaxWorkers int
}

type SweepSeasonError struct {
	SeasonID int64
	Message  string
}

// SweepResult aggregates a batch run across all eligible seasons. One
// season's failure never aborts the others.
type SweepResult struct {
	SeasonIDs      []int64
	Determinations []Determination
	Errors         []SweepSeasonError
}

func NewWinnerService(
	seasonRepo season.Repository,
	pointsRepo points.Repository,
	winnerRepo winner.Repository,
	logger *logging.Logger,
) *WinnerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WinnerService{
		seasonRepo: seasonRepo,
		pointsRepo: pointsRepo,
		winnerRepo: winnerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// DetermineWinners resolves the winner set for one (season, competition type)
// key. An existing committed set is returned verbatim with
// AlreadyDetermined=true; otherwise the point ledger is aggregated, ranked,
// and the full rank-1 group persisted in one atomic batch. Zero participants
// is a valid outcome that persists nothing.
func (s *WinnerService) DetermineWinners(ctx context.Context, seasonID int64, compType competition.Type) (Determination, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WinnerService.DetermineWinners")
	defer span.End()

	if seasonID <= 0 {
		return Determination{}, fmt.Errorf("%w: season id must be greater than zero", ErrInvalidInput)
	}
	if _, err := competition.ParseType(string(compType)); err != nil {
		return Determination{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	key := fmt.Sprintf("winners:determine:%d:%s", seasonID, compType)
	value, err, _ := s.determineFlight.Do(key, func() (any, error) {
		return s.determineWinnersOnce(ctx, seasonID, compType)
	})
	if err != nil {
		return Determination{}, err
	}

	determination, ok := value.(Determination)
	if !ok {
		return Determination{}, fmt.Errorf("unexpected determination result type %T", value)
	}
	return determination, nil
}

func (s *WinnerService) determineWinnersOnce(ctx context.Context, seasonID int64, compType competition.Type) (Determination, error) {
	existing, err := s.winnerRepo.ListBySeason(ctx, seasonID, compType)
	if err != nil {
		return Determination{}, fmt.Errorf("list existing winners season=%d type=%s: %w", seasonID, compType, err)
	}
	if len(existing) > 0 {
		if err := validateWinnerSet(existing); err != nil {
			return Determination{}, fmt.Errorf("%w: season=%d type=%s: %v", ErrInvariantViolation, seasonID, compType, err)
		}
		return Determination{
			SeasonID:          seasonID,
			Type:              compType,
			Winners:           existing,
			AlreadyDetermined: true,
		}, nil
	}

	totals, err := s.pointsRepo.ListTotalsBySeason(ctx, seasonID, compType)
	if err != nil {
		return Determination{}, fmt.Errorf("list point totals season=%d type=%s: %w", seasonID, compType, err)
	}

	entries := standings.Rank(totals)
	winners := standings.TopRanked(entries, 1)
	if len(winners) == 0 {
		s.logger.InfoContext(ctx, "no participants for winner determination",
			"season_id", seasonID, "competition_type", compType)
		return Determination{
			SeasonID: seasonID,
			Type:     compType,
			Winners:  []winner.Record{},
		}, nil
	}

	determinedAt := s.now().UTC()
	records := make([]winner.Record, 0, len(winners))
	for _, entry := range winners {
		records = append(records, winner.Record{
			SeasonID:     seasonID,
			Type:         compType,
			UserID:       entry.UserID,
			Username:     entry.Username,
			TotalPoints:  entry.Points,
			Rank:         entry.Rank,
			DeterminedAt: determinedAt,
		})
	}

	if err := s.winnerRepo.InsertBatch(ctx, records); err != nil {
		if errors.Is(err, winner.ErrAlreadyDetermined) {
			// A concurrent determination committed first; its set wins.
			committed, readErr := s.winnerRepo.ListBySeason(ctx, seasonID, compType)
			if readErr != nil {
				return Determination{}, fmt.Errorf("reread winners after lost race season=%d type=%s: %w", seasonID, compType, readErr)
			}
			if err := validateWinnerSet(committed); err != nil {
				return Determination{}, fmt.Errorf("%w: season=%d type=%s: %v", ErrInvariantViolation, seasonID, compType, err)
			}
			return Determination{
				SeasonID:          seasonID,
				Type:              compType,
				Winners:           committed,
				AlreadyDetermined: true,
			}, nil
		}
		return Determination{}, fmt.Errorf("insert winners season=%d type=%s: %w", seasonID, compType, err)
	}

	s.logger.InfoContext(ctx, "winners determined",
		"season_id", seasonID,
		"competition_type", compType,
		"winner_count", len(records),
		"total_points", records[0].TotalPoints,
	)

	return Determination{
		SeasonID: seasonID,
		Type:     compType,
		Winners:  records,
	}, nil
}

// DetermineForEligibleSeasons sweeps every completed season whose
// competition-type flag is active. Seasons touch disjoint rows, so they run
// on a bounded worker pool; results come back sorted by season id.
func (s *WinnerService) DetermineForEligibleSeasons(ctx context.Context, input SweepInput) (SweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WinnerService.DetermineForEligibleSeasons")
	defer span.End()

	if _, err := competition.ParseType(string(input.Type)); err != nil {
		return SweepResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	seasons, err := s.seasonRepo.ListEligibleForDetermination(ctx, input.Type)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list eligible seasons type=%s: %w", input.Type, err)
	}

	result := SweepResult{
		SeasonIDs:      make([]int64, 0, len(seasons)),
		Determinations: make([]Determination, 0, len(seasons)),
		Errors:         make([]SweepSeasonError, 0),
	}
	for _, item := range seasons {
		result.SeasonIDs = append(result.SeasonIDs, item.ID)
	}
	if len(seasons) == 0 {
		return result, nil
	}

	workerCount := input.MaxWorkers
	if workerCount < 1 {
		workerCount = defaultSweepWorkers
	}
	if workerCount > len(seasons) {
		workerCount = len(seasons)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SweepResult{}, fmt.Errorf("create determination worker pool: %w", err)
	}
	defer pool.Release()

	type seasonOutcome struct {
		seasonID      int64
		determination Determination
		err           error
	}

	outcomes := make(chan seasonOutcome, len(seasons))
	var workers sync.WaitGroup
	for _, item := range seasons {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			determination, err := s.DetermineWinners(ctx, item.ID, input.Type)
			outcomes <- seasonOutcome{seasonID: item.ID, determination: determination, err: err}
		}); err != nil {
			workers.Done()
			return SweepResult{}, fmt.Errorf("submit season %d to worker pool: %w", item.ID, err)
		}
	}

	workers.Wait()
	close(outcomes)

	for outcome := range outcomes {
		if outcome.err != nil {
			result.Errors = append(result.Errors, SweepSeasonError{
				SeasonID: outcome.seasonID,
				Message:  outcome.err.Error(),
			})
			continue
		}
		result.Determinations = append(result.Determinations, outcome.determination)
	}

	sort.SliceStable(result.Determinations, func(i, j int) bool {
		return result.Determinations[i].SeasonID < result.Determinations[j].SeasonID
	})
	sort.SliceStable(result.Errors, func(i, j int) bool {
		return result.Errors[i].SeasonID < result.Errors[j].SeasonID
	})

	if len(result.Errors) > 0 {
		s.logger.WarnContext(ctx, "winner sweep finished with season errors",
			"competition_type", input.Type,
			"season_count", len(seasons),
			"error_count", len(result.Errors),
		)
	}

	return result, nil
}

func validateWinnerSet(records []winner.Record) error {
	topPoints := 0
	topSeen := false
	for _, record := range records {
		if record.Rank < 1 {
			return fmt.Errorf("winner record for user %s has rank %d", record.UserID, record.Rank)
		}
		if record.Rank != 1 {
			continue
		}
		if topSeen && record.TotalPoints != topPoints {
			return fmt.Errorf("rank-1 winners disagree on total points (%d vs %d)", topPoints, record.TotalPoints)
		}
		topPoints = record.TotalPoints
		topSeen = true
	}
	if !topSeen {
		return fmt.Errorf("winner set has %d records but no rank-1 entry", len(records))
	}
	return nil
}
