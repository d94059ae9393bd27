package backfill

import "testing"

func TestBuildPlan_AwardsMinimumParticipantScore(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(101, "Pekan 1", []int64{1001, 1002, 1003, 1004}, []int{4, 2, 3})

	if plan.MinimumParticipantScore != 2 {
		t.Fatalf("expected minimum 2, got %d", plan.MinimumParticipantScore)
	}
	if plan.PointsAwarded != 2 {
		t.Fatalf("expected 2 points awarded, got %d", plan.PointsAwarded)
	}
	if plan.ParticipantCount != 3 {
		t.Fatalf("expected participant count 3, got %d", plan.ParticipantCount)
	}

	wantPoints := []int{1, 1, 0, 0}
	for idx, assignment := range plan.Fixtures {
		if assignment.Points != wantPoints[idx] {
			t.Fatalf("fixture %d: expected %d points, got %d", assignment.FixtureID, wantPoints[idx], assignment.Points)
		}
	}
}

func TestBuildPlan_SumOfFixturePointsEqualsAwarded(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(102, "Pekan 2", []int64{1, 2, 3, 4, 5}, []int{3, 7})

	sum := 0
	for _, assignment := range plan.Fixtures {
		sum += assignment.Points
	}
	if sum != plan.PointsAwarded {
		t.Fatalf("fixture points sum %d disagrees with PointsAwarded %d", sum, plan.PointsAwarded)
	}
	if plan.PointsAwarded != 3 {
		t.Fatalf("expected 3 points awarded, got %d", plan.PointsAwarded)
	}
}

func TestBuildPlan_ZeroScoringParticipantDragsMinimumToZero(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(103, "Pekan 3", []int64{1, 2, 3}, []int{2, 0, 3})

	if plan.MinimumParticipantScore != 0 {
		t.Fatalf("expected minimum 0, got %d", plan.MinimumParticipantScore)
	}
	if plan.PointsAwarded != 0 {
		t.Fatalf("expected 0 points awarded, got %d", plan.PointsAwarded)
	}
	for _, assignment := range plan.Fixtures {
		if assignment.Points != 0 {
			t.Fatalf("fixture %d: expected 0 points, got %d", assignment.FixtureID, assignment.Points)
		}
	}
}

func TestBuildPlan_ClampsMinimumToFixtureCount(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(103, "Pekan 3", []int64{1, 2}, []int{5, 9})

	if plan.PointsAwarded != 2 {
		t.Fatalf("expected awards clamped to 2 fixtures, got %d", plan.PointsAwarded)
	}
	for _, assignment := range plan.Fixtures {
		if assignment.Points != 1 {
			t.Fatalf("fixture %d: expected 1 point under clamp, got %d", assignment.FixtureID, assignment.Points)
		}
	}
}

func TestBuildPlan_NoParticipantsAwardsNothing(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(104, "Pekan 4", []int64{1, 2, 3}, nil)

	if plan.PointsAwarded != 0 {
		t.Fatalf("expected 0 points without participants, got %d", plan.PointsAwarded)
	}
	if len(plan.Fixtures) != 3 {
		t.Fatalf("expected a zero-point assignment per fixture, got %d", len(plan.Fixtures))
	}
	for _, assignment := range plan.Fixtures {
		if assignment.Points != 0 {
			t.Fatalf("fixture %d: expected 0 points, got %d", assignment.FixtureID, assignment.Points)
		}
	}
}

func TestBuildPlan_NegativeMinimumTreatedAsZero(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(105, "Pekan 5", []int64{1, 2}, []int{-3, 4})

	if plan.MinimumParticipantScore != 0 {
		t.Fatalf("expected negative minimum floored at 0, got %d", plan.MinimumParticipantScore)
	}
	if plan.PointsAwarded != 0 {
		t.Fatalf("expected 0 points awarded, got %d", plan.PointsAwarded)
	}
}

func TestBuildPlan_FillsFixturesInAscendingOrder(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(106, "Pekan 6", []int64{10, 20, 30}, []int{1})

	if plan.Fixtures[0].FixtureID != 10 || plan.Fixtures[0].Points != 1 {
		t.Fatalf("expected the lowest fixture id to receive the point, got %+v", plan.Fixtures[0])
	}
	if plan.Fixtures[1].Points != 0 || plan.Fixtures[2].Points != 0 {
		t.Fatalf("expected remaining fixtures at 0 points, got %+v", plan.Fixtures)
	}
}
