package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/oddstack/prediction-league/internal/infrastructure/repository/memory"
	"github.com/oddstack/prediction-league/internal/usecase"
)

const testJobToken = "test-job-token"

type recordingJobPublisher struct {
	path    string
	payload any
	delay   time.Duration
	dedupID string
	called  bool
}

func (p *recordingJobPublisher) Enqueue(_ context.Context, path string, payload any, delay time.Duration, deduplicationID string) error {
	p.called = true
	p.path = path
	p.payload = payload
	p.delay = delay
	p.dedupID = deduplicationID
	return nil
}

func newTestRouter(t *testing.T, publisher JobPublisher) http.Handler {
	t.Helper()

	bets := memory.NewBetRepository(memory.SeedRounds(), memory.SeedFixtures(), memory.SeedBets())
	winnerService := usecase.NewWinnerService(
		memory.NewSeasonRepository(memory.SeedSeasons()),
		memory.NewPointsRepository(memory.SeedPointRecords()),
		memory.NewWinnerRepository(),
		nil,
	)
	backfillService := usecase.NewBackfillService(
		memory.NewUserRepository(memory.SeedUsers()),
		memory.NewCompetitionRepository(memory.SeedCompetitions(), memory.CompetitionIDLiga1),
		memory.NewRoundRepository(memory.SeedRounds(), bets),
		memory.NewFixtureRepository(memory.SeedFixtures()),
		bets,
		nil,
	)

	handler := NewHandler(winnerService, backfillService, publisher, nil)
	return NewRouter(handler, nil, []string{"*"}, testJobToken)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_DetermineSeasonWinners(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/seasons/11/winners/determine",
		strings.NewReader(`{"competition_type":"league"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	winners, ok := data["winners"].([]any)
	if !ok || len(winners) != 1 {
		t.Fatalf("expected one winner, got %v", data["winners"])
	}
	first, _ := winners[0].(map[string]any)
	if got, _ := first["user_id"].(string); got != "usr-andi" {
		t.Fatalf("expected winner usr-andi, got %v", first["user_id"])
	}
	if already, _ := data["already_determined"].(bool); already {
		t.Fatalf("first determination must not report already determined")
	}
}

func TestRouter_DetermineSeasonWinners_BadSeasonID(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/seasons/abc/winners/determine",
		strings.NewReader(`{"competition_type":"league"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_DetermineSeasonWinners_MissingType(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/seasons/11/winners/determine", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty body, got %d", rec.Code)
	}
}

func TestRouter_ApplyBackfill_DryRun(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/backfill/apply",
		strings.NewReader(`{"user_id":"usr-dewi","dry_run":true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if dryRun, _ := data["dry_run"].(bool); !dryRun {
		t.Fatalf("expected dry_run echoed, got %v", data)
	}
	if total, _ := data["total_points_awarded"].(float64); total != 4 {
		t.Fatalf("expected 4 total points, got %v", data["total_points_awarded"])
	}
}

func TestRouter_ApplyBackfill_UnknownUser(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/backfill/apply",
		strings.NewReader(`{"user_id":"usr-ghost"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_CheckBackfill(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/backfill/check?user_id=usr-dewi", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if needs, _ := data["needs_backfill"].(bool); !needs {
		t.Fatalf("expected needs_backfill=true, got %v", data)
	}
}

func TestRouter_PreviewBackfill_RequiresUserID(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/backfill/preview", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_CheckFirstBet(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/backfill/first-bet?user_id=usr-dewi", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if firstBet, _ := data["first_bet"].(bool); !firstBet {
		t.Fatalf("expected first_bet=true for the late joiner, got %v", data)
	}
}

func TestRouter_SweepWinners_RequiresJobToken(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sweep-winners",
		strings.NewReader(`{"competition_type":"league"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}
}

func TestRouter_SweepWinners_WithToken(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sweep-winners",
		strings.NewReader(`{"competition_type":"league"}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	seasonIDs, _ := data["season_ids"].([]any)
	if len(seasonIDs) != 1 {
		t.Fatalf("expected one eligible season, got %v", data["season_ids"])
	}
}

func TestRouter_ScheduleSweep_EnqueuesWithDedup(t *testing.T) {
	publisher := &recordingJobPublisher{}
	router := newTestRouter(t, publisher)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/schedule-sweep",
		strings.NewReader(`{"competition_type":"cup","delay_seconds":60}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if !publisher.called {
		t.Fatalf("expected publisher to be called")
	}
	if publisher.path != "/v1/internal/jobs/sweep-winners" {
		t.Fatalf("unexpected enqueue path: %s", publisher.path)
	}
	if publisher.dedupID != "winner-sweep-cup" {
		t.Fatalf("unexpected deduplication id: %s", publisher.dedupID)
	}
	if publisher.delay != time.Minute {
		t.Fatalf("unexpected delay: %s", publisher.delay)
	}
}

func TestRouter_ScheduleSweep_NoPublisherConfigured(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/schedule-sweep",
		strings.NewReader(`{"competition_type":"league"}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
