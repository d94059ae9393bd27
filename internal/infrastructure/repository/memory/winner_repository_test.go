package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/oddstack/prediction-league/internal/domain/competition"
	"github.com/oddstack/prediction-league/internal/domain/winner"
)

func TestWinnerRepository_InsertBatchThenList(t *testing.T) {
	repo := NewWinnerRepository()
	at := time.Date(2026, 5, 25, 8, 0, 0, 0, time.UTC)

	err := repo.InsertBatch(t.Context(), []winner.Record{
		{SeasonID: 11, Type: competition.TypeLeague, UserID: "usr-b", Username: "budi", TotalPoints: 9, Rank: 1, DeterminedAt: at},
		{SeasonID: 11, Type: competition.TypeLeague, UserID: "usr-a", Username: "andi", TotalPoints: 9, Rank: 1, DeterminedAt: at},
	})
	if err != nil {
		t.Fatalf("insert batch failed: %v", err)
	}

	records, err := repo.ListBySeason(t.Context(), 11, competition.TypeLeague)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Username != "andi" || records[1].Username != "budi" {
		t.Fatalf("expected username ascending order, got %s then %s", records[0].Username, records[1].Username)
	}
}

func TestWinnerRepository_SecondInsertForSameKeyIsRejected(t *testing.T) {
	repo := NewWinnerRepository()
	record := winner.Record{SeasonID: 11, Type: competition.TypeCup, UserID: "usr-a", Username: "andi", TotalPoints: 3, Rank: 1}

	if err := repo.InsertBatch(t.Context(), []winner.Record{record}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := repo.InsertBatch(t.Context(), []winner.Record{record})
	if !errors.Is(err, winner.ErrAlreadyDetermined) {
		t.Fatalf("expected already determined, got %v", err)
	}

	records, err := repo.ListBySeason(t.Context(), 11, competition.TypeCup)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("rejected insert must leave the committed set intact, got %d records", len(records))
	}
}

func TestWinnerRepository_KeysAreIndependent(t *testing.T) {
	repo := NewWinnerRepository()

	if err := repo.InsertBatch(t.Context(), []winner.Record{
		{SeasonID: 11, Type: competition.TypeLeague, UserID: "usr-a", Username: "andi", TotalPoints: 7, Rank: 1},
	}); err != nil {
		t.Fatalf("league insert failed: %v", err)
	}
	if err := repo.InsertBatch(t.Context(), []winner.Record{
		{SeasonID: 11, Type: competition.TypeCup, UserID: "usr-c", Username: "cici", TotalPoints: 3, Rank: 1},
	}); err != nil {
		t.Fatalf("cup insert for the same season must succeed: %v", err)
	}

	cup, err := repo.ListBySeason(t.Context(), 11, competition.TypeCup)
	if err != nil {
		t.Fatalf("list cup failed: %v", err)
	}
	if len(cup) != 1 || cup[0].UserID != "usr-c" {
		t.Fatalf("unexpected cup set: %+v", cup)
	}
}

func TestWinnerRepository_RejectsEmptyAndMixedBatches(t *testing.T) {
	repo := NewWinnerRepository()

	if err := repo.InsertBatch(t.Context(), nil); err == nil {
		t.Fatalf("expected error for empty batch")
	}

	err := repo.InsertBatch(t.Context(), []winner.Record{
		{SeasonID: 11, Type: competition.TypeLeague, UserID: "usr-a", Username: "andi", Rank: 1},
		{SeasonID: 12, Type: competition.TypeLeague, UserID: "usr-b", Username: "budi", Rank: 1},
	})
	if err == nil {
		t.Fatalf("expected error for mixed-key batch")
	}

	records, listErr := repo.ListBySeason(t.Context(), 11, competition.TypeLeague)
	if listErr != nil {
		t.Fatalf("list failed: %v", listErr)
	}
	if len(records) != 0 {
		t.Fatalf("rejected batch must write nothing, got %d records", len(records))
	}
}
