package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/seasons/{seasonID}/winners/determine", handler.DetermineSeasonWinners)
	mux.HandleFunc("POST /v1/backfill/apply", handler.ApplyBackfill)
	mux.HandleFunc("GET /v1/backfill/preview", handler.PreviewBackfill)
	mux.HandleFunc("GET /v1/backfill/check", handler.CheckBackfill)
	mux.HandleFunc("GET /v1/backfill/first-bet", handler.CheckFirstBet)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sweep-winners", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.SweepSeasonWinners)))
	mux.Handle("POST /v1/internal/jobs/schedule-sweep", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ScheduleWinnerSweep)))
}
