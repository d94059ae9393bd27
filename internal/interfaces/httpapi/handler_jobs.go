package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/usecase"
)

type scheduleSweepRequest struct {
	CompetitionType string `json:"competition_type" validate:"required,oneof=league cup"`
	DelaySeconds    int    `json:"delay_seconds" validate:"omitempty,min=0,max=86400"`
}

type scheduleSweepResponse struct {
	CompetitionType string `json:"competition_type"`
	DelaySeconds    int    `json:"delay_seconds"`
	DeduplicationID string `json:"deduplication_id"`
}

// ScheduleWinnerSweep enqueues a delayed callback to the internal sweep route
// instead of running the sweep inline. Deduplication keys on the competition
// type so repeated schedule calls within the queue window collapse.
func (h *Handler) ScheduleWinnerSweep(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleWinnerSweep")
	defer span.End()

	if h.jobPublisher == nil {
		writeError(ctx, w, fmt.Errorf("%w: job publisher is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req scheduleSweepRequest
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

	deduplicationID := "winner-sweep-" + string(compType)
	payload := map[string]any{"competition_type": string(compType)}
	delay := time.Duration(req.DelaySeconds) * time.Second

	if err := h.jobPublisher.Enqueue(ctx, "/v1/internal/jobs/sweep-winners", payload, delay, deduplicationID); err != nil {
		h.logger.ErrorContext(ctx, "schedule winner sweep failed", "competition_type", compType, "error", err)
		writeError(ctx, w, fmt.Errorf("%w: enqueue winner sweep: %v", usecase.ErrDependencyUnavailable, err))
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, scheduleSweepResponse{
		CompetitionType: string(compType),
		DelaySeconds:    req.DelaySeconds,
		DeduplicationID: deduplicationID,
	})
}
