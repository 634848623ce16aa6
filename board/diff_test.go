package board_test

import (
	"testing"
	"time"

	"github.com/fordlabs/peoplemover/board"
)

// =============================================================================
// DESIRED ASSIGNMENT TESTS
// =============================================================================

func TestDesiredAssignments_CarriesForwardPlaceholder(t *testing.T) {
	// GIVEN: An open placeholder assignment on product 10
	// WHEN: The form keeps product 10 selected and adds product 20
	// THEN: Product 10 stays a placeholder, product 20 defaults to false

	open := []board.Assignment{
		{ID: 1, ProductID: 10, Placeholder: true, StartDate: board.NewDate(2020, time.January, 1)},
	}

	desired := board.DesiredAssignments([]int64{10, 20}, open)

	want := []board.ProductSelection{
		{ProductID: 10, Placeholder: true},
		{ProductID: 20, Placeholder: false},
	}
	if len(desired) != len(want) {
		t.Fatalf("expected %d selections, got %d", len(want), len(desired))
	}
	for i := range want {
		if desired[i] != want[i] {
			t.Errorf("selection %d: expected %+v, got %+v", i, want[i], desired[i])
		}
	}
}

func TestDesiredAssignments_ClosedAssignmentDoesNotCarryForward(t *testing.T) {
	end := board.NewDate(2020, time.February, 1)
	closed := []board.Assignment{
		{ID: 1, ProductID: 10, Placeholder: true, StartDate: board.NewDate(2020, time.January, 1), EndDate: &end},
	}

	desired := board.DesiredAssignments([]int64{10}, closed)
	if desired[0].Placeholder {
		t.Error("placeholder of a closed assignment must not carry forward")
	}
}

func TestDesiredAssignments_EmptySelection(t *testing.T) {
	open := []board.Assignment{{ID: 1, ProductID: 10}}
	desired := board.DesiredAssignments(nil, open)
	if len(desired) != 0 {
		t.Errorf("empty selection must yield an empty list, got %d entries", len(desired))
	}
}

// =============================================================================
// IDEMPOTENCE GUARD TESTS
// =============================================================================

func TestSelectionUnchanged_OrderInsensitive(t *testing.T) {
	open := []board.Assignment{
		{ID: 1, ProductID: 10, Placeholder: false},
		{ID: 2, ProductID: 20, Placeholder: true},
	}
	desired := []board.ProductSelection{
		{ProductID: 20, Placeholder: true},
		{ProductID: 10, Placeholder: false},
	}

	if !board.SelectionUnchanged(open, desired) {
		t.Error("same set in different order must count as unchanged")
	}
}

func TestSelectionUnchanged_DetectsChanges(t *testing.T) {
	open := []board.Assignment{
		{ID: 1, ProductID: 10, Placeholder: false},
	}

	// Different product
	if board.SelectionUnchanged(open, []board.ProductSelection{{ProductID: 20}}) {
		t.Error("different product must count as changed")
	}
	// Placeholder flip on the same product
	if board.SelectionUnchanged(open, []board.ProductSelection{{ProductID: 10, Placeholder: true}}) {
		t.Error("placeholder flip must count as changed")
	}
	// Added product
	if board.SelectionUnchanged(open, []board.ProductSelection{{ProductID: 10}, {ProductID: 20}}) {
		t.Error("added product must count as changed")
	}
	// Removed product
	if board.SelectionUnchanged(open, nil) {
		t.Error("removed product must count as changed")
	}
}

func TestSelectionUnchanged_IgnoresClosedAssignments(t *testing.T) {
	end := board.NewDate(2020, time.March, 1)
	assignments := []board.Assignment{
		{ID: 1, ProductID: 10},
		{ID: 2, ProductID: 20, EndDate: &end}, // closed, must not count
	}

	if !board.SelectionUnchanged(assignments, []board.ProductSelection{{ProductID: 10}}) {
		t.Error("closed assignments must not participate in the comparison")
	}
}
