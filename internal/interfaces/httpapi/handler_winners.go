package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/winner"
	"github.com/oddstack/prediction-league/internal/usecase"
)

type determineWinnersRequest struct {
	CompetitionType string `json:"competition_type" validate:"required,oneof=league cup"`
}

type sweepWinnersRequest struct {
	CompetitionType string `json:"competition_type" validate:"required,oneof=league cup"`
	MaxWorkers      int    `json:"max_workers" validate:"omitempty,min=1,max=64"`
}

type winnerRecordDTO struct {
	SeasonID        int64  `json:"season_id"`
	CompetitionType string `json:"competition_type"`
	UserID          string `json:"user_id"`
	Username        string `json:"username"`
	TotalPoints     int    `json:"total_points"`
	Rank            int    `json:"rank"`
	DeterminedAt    string `json:"determined_at"`
}

type determinationDTO struct {
	SeasonID          int64             `json:"season_id"`
	CompetitionType   string            `json:"competition_type"`
	AlreadyDetermined bool              `json:"already_determined"`
	Winners           []winnerRecordDTO `json:"winners"`
}

type sweepErrorDTO struct {
	SeasonID int64  `json:"season_id"`
	Message  string `json:"message"`
}

type sweepResultDTO struct {
	SeasonIDs      []int64            `json:"season_ids"`
	Determinations []determinationDTO `json:"determinations"`
	Errors         []sweepErrorDTO    `json:"errors"`
}

func (h *Handler) DetermineSeasonWinners(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DetermineSeasonWinners")
	defer span.End()

	seasonID, err := strconv.ParseInt(r.PathValue("seasonID"), 10, 64)
	if err != nil || seasonID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: season id must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	var req determineWinnersRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	compType, err := competition.ParseType(req.CompetitionType)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	determination, err := h.winnerService.DetermineWinners(ctx, seasonID, compType)
	if err != nil {
		h.logger.ErrorContext(ctx, "determine winners failed", "season_id", seasonID, "competition_type", compType, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, determinationToDTO(determination))
}

func (h *Handler) SweepSeasonWinners(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SweepSeasonWinners")
	defer span.End()

	var req sweepWinnersRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	compType, err := competition.ParseType(req.CompetitionType)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.winnerService.DetermineForEligibleSeasons(ctx, usecase.SweepInput{
		Type:       compType,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "winner sweep failed", "competition_type", compType, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sweepResultToDTO(result))
}

func determinationToDTO(d usecase.Determination) determinationDTO {
	return determinationDTO{
		SeasonID:          d.SeasonID,
		CompetitionType:   string(d.Type),
		AlreadyDetermined: d.AlreadyDetermined,
		Winners:           winnersToDTO(d.Winners),
	}
}

func winnersToDTO(records []winner.Record) []winnerRecordDTO {
	out := make([]winnerRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, winnerRecordDTO{
			SeasonID:        rec.SeasonID,
			CompetitionType: string(rec.Type),
			UserID:          rec.UserID,
			Username:        rec.Username,
			TotalPoints:     rec.TotalPoints,
			Rank:            rec.Rank,
			DeterminedAt:    rec.DeterminedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func sweepResultToDTO(result usecase.SweepResult) sweepResultDTO {
	determinations := make([]determinationDTO, 0, len(result.Determinations))
	for _, d := range result.Determinations {
		determinations = append(determinations, determinationToDTO(d))
	}
	errs := make([]sweepErrorDTO, 0, len(result.Errors))
	for _, e := range result.Errors {
		errs = append(errs, sweepErrorDTO{SeasonID: e.SeasonID, Message: e.Message})
	}
	return sweepResultDTO{
		SeasonIDs:      result.SeasonIDs,
		Determinations: determinations,
		Errors:         errs,
	}
}
