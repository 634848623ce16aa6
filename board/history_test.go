package board_test

import (
	"testing"
	"time"

	"github.com/fordlabs/peoplemover/board"
)

// =============================================================================
// HISTORY RECONSTRUCTION TESTS
// =============================================================================

func TestBuildHistory_HankScenario(t *testing.T) {
	// GIVEN: Hank's three assignments across Hanky Product, the unassigned
	//        bucket, and Product 3
	// WHEN: History is rebuilt with now = 2020-01-05
	// THEN: The rendered lines match, durations inclusive

	catalog := []board.Product{
		{ID: 1, Name: "Hanky Product"},
		{ID: 2, Name: "unassigned"},
		{ID: 3, Name: "Product 3"},
	}

	vacationEnd := board.NewDate(2019, time.December, 31)
	product3End := board.NewDate(2019, time.November, 30)
	assignments := []board.Assignment{
		{ProductID: 1, StartDate: board.NewDate(2020, time.January, 1)},
		{ProductID: 2, StartDate: board.NewDate(2019, time.December, 1), EndDate: &vacationEnd},
		{ProductID: 3, StartDate: board.NewDate(2019, time.October, 1), EndDate: &product3End},
	}

	now := board.NewDate(2020, time.January, 5)
	history := board.BuildHistory(assignments, catalog, now)

	wantLines := []string{
		"Hanky Product 01/01/2020 - Current (5 days)",
		"Unassigned 12/01/2019 - 12/31/2019 (31 days)",
		"Product 3 10/01/2019 - 11/30/2019 (61 days)",
	}
	if len(history) != len(wantLines) {
		t.Fatalf("expected %d entries, got %d", len(wantLines), len(history))
	}
	for i, want := range wantLines {
		if got := history[i].Line(); got != want {
			t.Errorf("entry %d:\n  expected %q\n  got      %q", i, want, got)
		}
	}
}

func TestBuildHistory_ExcludesFutureAssignments(t *testing.T) {
	// The cutoff is wall-clock "now", regardless of any viewing date.
	catalog := []board.Product{{ID: 1, Name: "Widget"}}
	now := board.NewDate(2020, time.March, 10)

	assignments := []board.Assignment{
		{ProductID: 1, StartDate: now.AddDays(1)},  // future, excluded
		{ProductID: 1, StartDate: now},             // starts today, included
		{ProductID: 1, StartDate: now.AddDays(-5)}, // past, included
	}

	history := board.BuildHistory(assignments, catalog, now)
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	for _, e := range history {
		if e.StartDate.After(now) {
			t.Errorf("entry starting %s is after now %s", e.StartDate, now)
		}
	}
}

func TestBuildHistory_UnknownProduct(t *testing.T) {
	assignments := []board.Assignment{
		{ProductID: 42, StartDate: board.NewDate(2020, time.January, 1)},
	}

	history := board.BuildHistory(assignments, nil, board.NewDate(2020, time.January, 1))
	if len(history) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(history))
	}
	if history[0].ProductName != "Unknown Product" {
		t.Errorf("expected Unknown Product, got %q", history[0].ProductName)
	}
}

func TestBuildHistory_SameDayAssignmentIsOneDay(t *testing.T) {
	day := board.NewDate(2020, time.February, 3)
	catalog := []board.Product{{ID: 1, Name: "Widget"}}
	assignments := []board.Assignment{
		{ProductID: 1, StartDate: day, EndDate: &day},
	}

	history := board.BuildHistory(assignments, catalog, day.AddDays(30))
	if history[0].DurationDays != 1 {
		t.Errorf("expected 1 day, got %d", history[0].DurationDays)
	}
	if got := history[0].Line(); got != "Widget 02/03/2020 - 02/03/2020 (1 day)" {
		t.Errorf("singular label expected, got %q", got)
	}
}

func TestBuildHistory_NoAssignments(t *testing.T) {
	history := board.BuildHistory(nil, nil, board.Today())
	if len(history) != 0 {
		t.Errorf("expected empty history, got %d entries", len(history))
	}
}
