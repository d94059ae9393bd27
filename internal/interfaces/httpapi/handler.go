package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/oddstack/prediction-league/internal/platform/logging"
	"github.com/oddstack/prediction-league/internal/usecase"
)

// JobPublisher schedules delayed callbacks to the internal job routes.
type JobPublisher interface {
	Enqueue(ctx context.Context, path string, payload any, delay time.Duration, deduplicationID string) error
}

type Handler struct {
	winnerService   *usecase.WinnerService
	backfillService *usecase.BackfillService
	jobPublisher    JobPublisher
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	winnerService *usecase.WinnerService,
	backfillService *usecase.BackfillService,
	jobPublisher JobPublisher,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		winnerService:   winnerService,
		backfillService: backfillService,
		jobPublisher:    jobPublisher,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSONBody fills target from the request body. An empty body leaves the
// target at its zero value so optional-payload endpoints stay callable.
func decodeJSONBody(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
