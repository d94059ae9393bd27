package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/oddstack/prediction-league/external/jobqueue"
	"github.com/oddstack/prediction-league/internal/config"
	"github.com/oddstack/prediction-league/internal/domain/bet"
	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/fixture"
	"github.com/oddstack/prediction-league/internal/domain/points"
	"github.com/oddstack/prediction-league/internal/domain/round"
	"github.com/oddstack/prediction-league/internal/domain/season"
	"github.com/oddstack/prediction-league/internal/domain/user"
	"github.com/oddstack/prediction-league/internal/domain/winner"
	"github.com/oddstack/prediction-league/internal/infrastructure/repository/memory"
	"github.com/oddstack/prediction-league/internal/infrastructure/repository/postgres"
	"github.com/oddstack/prediction-league/internal/interfaces/httpapi"
	"github.com/oddstack/prediction-league/internal/platform/logging"
	"github.com/oddstack/prediction-league/internal/platform/resilience"
	"github.com/oddstack/prediction-league/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
)

type repositories struct {
	seasons      season.Repository
	rounds       round.Repository
	fixtures     fixture.Repository
	bets         bet.Repository
	points       points.Repository
	winners      winner.Repository
	users        user.Repository
	competitions competition.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	winnerSvc := usecase.NewWinnerService(repos.seasons, repos.points, repos.winners, logger)
	backfillSvc := usecase.NewBackfillService(
		repos.users,
		repos.competitions,
		repos.rounds,
		repos.fixtures,
		repos.bets,
		logger,
	)

	var publisher httpapi.JobPublisher
	if cfg.QStashEnabled {
		publisher = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			Timeout:          cfg.QStashTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	handler := httpapi.NewHandler(winnerSvc, backfillSvc, publisher, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("DB_URL empty, using seeded in-memory repositories")
		return buildMemoryRepositories(), nil
	}

	db, err := connectDB(cfg)
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgres.BootstrapSeed(seedCtx, db); err != nil {
		logger.Warn("bootstrap seed skipped", "error", err)
	}

	return repositories{
		seasons:      postgres.NewSeasonRepository(db),
		rounds:       postgres.NewRoundRepository(db),
		fixtures:     postgres.NewFixtureRepository(db),
		bets:         postgres.NewBetRepository(db),
		points:       postgres.NewPointsRepository(db),
		winners:      postgres.NewWinnerRepository(db),
		users:        postgres.NewUserRepository(db),
		competitions: postgres.NewCompetitionRepository(db),
	}, nil
}

func buildMemoryRepositories() repositories {
	rounds := memory.SeedRounds()
	fixtures := memory.SeedFixtures()

	betRepo := memory.NewBetRepository(rounds, fixtures, memory.SeedBets())

	return repositories{
		seasons:      memory.NewSeasonRepository(memory.SeedSeasons()),
		rounds:       memory.NewRoundRepository(rounds, betRepo),
		fixtures:     memory.NewFixtureRepository(fixtures),
		bets:         betRepo,
		points:       memory.NewPointsRepository(memory.SeedPointRecords()),
		winners:      memory.NewWinnerRepository(),
		users:        memory.NewUserRepository(memory.SeedUsers()),
		competitions: memory.NewCompetitionRepository(memory.SeedCompetitions(), memory.CompetitionIDLiga1),
	}
}

func connectDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
