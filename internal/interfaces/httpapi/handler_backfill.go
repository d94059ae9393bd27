package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/oddstack/prediction-league/internal/domain/backfill"
	"github.com/oddstack/prediction-league/internal/usecase"
)

type applyBackfillRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	CompetitionID int64  `json:"competition_id" validate:"omitempty,min=1"`
	DryRun        bool   `json:"dry_run"`
}

type fixturePointsDTO struct {
	FixtureID int64 `json:"fixture_id"`
	Points    int   `json:"points"`
}

type backfillPlanDTO struct {
	RoundID                 int64              `json:"round_id"`
	RoundName               string             `json:"round_name"`
	PointsAwarded           int                `json:"points_awarded"`
	MinimumParticipantScore int                `json:"minimum_participant_score"`
	ParticipantCount        int                `json:"participant_count"`
	Fixtures                []fixturePointsDTO `json:"fixtures"`
}

type backfillResultDTO struct {
	UserID             string            `json:"user_id"`
	CompetitionID      int64             `json:"competition_id"`
	CompetitionName    string            `json:"competition_name"`
	DryRun             bool              `json:"dry_run"`
	RoundsProcessed    int               `json:"rounds_processed"`
	TotalPointsAwarded int               `json:"total_points_awarded"`
	Rounds             []backfillPlanDTO `json:"rounds"`
	Errors             []string          `json:"errors,omitempty"`
}

type backfillCheckDTO struct {
	UserID          string `json:"user_id"`
	NeedsBackfill   bool   `json:"needs_backfill"`
	CompetitionID   int64  `json:"competition_id"`
	CompetitionName string `json:"competition_name"`
	RoundsMissed    int    `json:"rounds_missed"`
	PointsAvailable int    `json:"points_available"`
}

type firstBetDTO struct {
	UserID        string `json:"user_id"`
	CompetitionID int64  `json:"competition_id"`
	FirstBet      bool   `json:"first_bet"`
}

func (h *Handler) ApplyBackfill(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyBackfill")
	defer span.End()

	var req applyBackfillRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.backfillService.ApplyForUser(ctx, usecase.ApplyInput{
		UserID:        req.UserID,
		CompetitionID: req.CompetitionID,
		DryRun:        req.DryRun,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "apply backfill failed", "user_id", req.UserID, "competition_id", req.CompetitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, backfillResultToDTO(result))
}

func (h *Handler) PreviewBackfill(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewBackfill")
	defer span.End()

	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(ctx, w, fmt.Errorf("%w: user_id query parameter is required", usecase.ErrInvalidInput))
		return
	}
	competitionID, err := optionalInt64Query(r, "competition_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.backfillService.PreviewForUser(ctx, userID, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "preview backfill failed", "user_id", userID, "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, backfillResultToDTO(result))
}

func (h *Handler) CheckBackfill(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckBackfill")
	defer span.End()

	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(ctx, w, fmt.Errorf("%w: user_id query parameter is required", usecase.ErrInvalidInput))
		return
	}

	check, err := h.backfillService.CheckIfUserNeedsBackfill(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "backfill check failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, backfillCheckDTO{
		UserID:          check.UserID,
		NeedsBackfill:   check.NeedsBackfill,
		CompetitionID:   check.CompetitionID,
		CompetitionName: check.CompetitionName,
		RoundsMissed:    check.RoundsMissed,
		PointsAvailable: check.PointsAvailable,
	})
}

func (h *Handler) CheckFirstBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckFirstBet")
	defer span.End()

	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(ctx, w, fmt.Errorf("%w: user_id query parameter is required", usecase.ErrInvalidInput))
		return
	}
	competitionID, err := optionalInt64Query(r, "competition_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	firstBet, err := h.backfillService.IsUserFirstBetInCompetition(ctx, userID, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "first bet check failed", "user_id", userID, "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, firstBetDTO{
		UserID:        userID,
		CompetitionID: competitionID,
		FirstBet:      firstBet,
	})
}

func optionalInt64Query(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}

func backfillResultToDTO(result usecase.BackfillResult) backfillResultDTO {
	rounds := make([]backfillPlanDTO, 0, len(result.Rounds))
	for _, plan := range result.Rounds {
		rounds = append(rounds, backfillPlanToDTO(plan))
	}
	return backfillResultDTO{
		UserID:             result.UserID,
		CompetitionID:      result.CompetitionID,
		CompetitionName:    result.CompetitionName,
		DryRun:             result.DryRun,
		RoundsProcessed:    result.RoundsProcessed,
		TotalPointsAwarded: result.TotalPointsAwarded,
		Rounds:             rounds,
		Errors:             result.Errors,
	}
}

func backfillPlanToDTO(plan backfill.Plan) backfillPlanDTO {
	fixtures := make([]fixturePointsDTO, 0, len(plan.Fixtures))
	for _, fp := range plan.Fixtures {
		fixtures = append(fixtures, fixturePointsDTO{FixtureID: fp.FixtureID, Points: fp.Points})
	}
	return backfillPlanDTO{
		RoundID:                 plan.RoundID,
		RoundName:               plan.RoundName,
		PointsAwarded:           plan.PointsAwarded,
		MinimumParticipantScore: plan.MinimumParticipantScore,
		ParticipantCount:        plan.ParticipantCount,
		Fixtures:                fixtures,
	}
}
