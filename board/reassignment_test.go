package board_test

import (
	"testing"

	"github.com/fordlabs/peoplemover/board"
)

// snapshot helpers: a product with the given people assigned.
func productWith(id int64, name string, people ...board.Person) board.Product {
	p := board.Product{ID: id, Name: name}
	for _, person := range people {
		p.Assignments = append(p.Assignments, board.Assignment{
			PersonID: person.ID,
			Person:   person,
		})
	}
	return p
}

// =============================================================================
// REASSIGNMENT DETECTION TESTS
// =============================================================================

func TestComputeReassignments_MoveYieldsOnePairedRecord(t *testing.T) {
	// GIVEN: Hank on Product A before, on Product B after
	// THEN: Exactly one record {origin: A, destination: B}, not an
	//       independent add plus remove

	hank := board.Person{ID: 1, Name: "Hank"}
	oldSnap := []board.Product{productWith(10, "A", hank), productWith(20, "B")}
	newSnap := []board.Product{productWith(10, "A"), productWith(20, "B", hank)}

	got := board.ComputeReassignments(oldSnap, newSnap)

	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d: %+v", len(got), got)
	}
	r := got[0]
	if r.Person.ID != 1 || r.Origin != "A" || r.Destination != "B" {
		t.Errorf("expected Hank A→B, got %+v", r)
	}
}

func TestComputeReassignments_NewlyAssigned(t *testing.T) {
	hank := board.Person{ID: 1, Name: "Hank"}
	oldSnap := []board.Product{productWith(10, "A")}
	newSnap := []board.Product{productWith(10, "A", hank)}

	got := board.ComputeReassignments(oldSnap, newSnap)

	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Origin != "" || got[0].Destination != "A" {
		t.Errorf("expected absent origin and destination A, got %+v", got[0])
	}
	if got[0].Description() != "Assigned to A" {
		t.Errorf("unexpected description %q", got[0].Description())
	}
}

func TestComputeReassignments_CancelledToUnassigned(t *testing.T) {
	// GIVEN: Hank's last product is removed; the board parks him on the
	//        unassigned sentinel
	// THEN: One record with the origin name and absent destination,
	//       displayed as "{origin} assignment cancelled"

	hank := board.Person{ID: 1, Name: "Hank"}
	oldSnap := []board.Product{
		productWith(10, "Vacation", hank),
		productWith(99, "unassigned"),
	}
	newSnap := []board.Product{
		productWith(10, "Vacation"),
		productWith(99, "unassigned", hank),
	}

	got := board.ComputeReassignments(oldSnap, newSnap)

	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d: %+v", len(got), got)
	}
	if got[0].Origin != "Vacation" || got[0].Destination != "" {
		t.Errorf("expected origin Vacation with absent destination, got %+v", got[0])
	}
	if got[0].Description() != "Vacation assignment cancelled" {
		t.Errorf("unexpected description %q", got[0].Description())
	}
}

func TestComputeReassignments_UnchangedPersonEmitsNothing(t *testing.T) {
	hank := board.Person{ID: 1, Name: "Hank"}
	snap := []board.Product{productWith(10, "A", hank)}

	if got := board.ComputeReassignments(snap, snap); len(got) != 0 {
		t.Errorf("unchanged snapshot must emit nothing, got %+v", got)
	}
}

func TestComputeReassignments_OrderFollowsNewSnapshot(t *testing.T) {
	// GIVEN: Two moved people, appearing in the new snapshot as Bea then Abe
	// THEN: Records come out in that order, no re-sort by name

	abe := board.Person{ID: 1, Name: "Abe"}
	bea := board.Person{ID: 2, Name: "Bea"}

	oldSnap := []board.Product{
		productWith(10, "A", abe, bea),
		productWith(20, "B"),
		productWith(30, "C"),
	}
	newSnap := []board.Product{
		productWith(20, "B", bea),
		productWith(30, "C", abe),
		productWith(10, "A"),
	}

	got := board.ComputeReassignments(oldSnap, newSnap)

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Person.Name != "Bea" || got[1].Person.Name != "Abe" {
		t.Errorf("expected new-snapshot order Bea, Abe; got %s, %s",
			got[0].Person.Name, got[1].Person.Name)
	}
}

func TestComputeReassignments_DeletedPersonAppendsCancellation(t *testing.T) {
	// A person missing from the new snapshot entirely (deleted, not parked
	// on unassigned) still yields a cancellation, after new-snapshot records.

	abe := board.Person{ID: 1, Name: "Abe"}
	gone := board.Person{ID: 2, Name: "Gone"}

	oldSnap := []board.Product{productWith(10, "A", abe, gone)}
	newSnap := []board.Product{productWith(10, "A"), productWith(20, "B", abe)}

	got := board.ComputeReassignments(oldSnap, newSnap)

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(got), got)
	}
	if got[0].Person.Name != "Abe" {
		t.Errorf("new-snapshot person first, got %s", got[0].Person.Name)
	}
	if got[1].Person.Name != "Gone" || got[1].Origin != "A" || got[1].Destination != "" {
		t.Errorf("expected trailing cancellation for Gone, got %+v", got[1])
	}
}

func TestComputeReassignments_MultiProductChange(t *testing.T) {
	// Two removals and one addition: one paired move plus one cancellation.
	hank := board.Person{ID: 1, Name: "Hank"}

	oldSnap := []board.Product{
		productWith(10, "A", hank),
		productWith(20, "B", hank),
		productWith(30, "C"),
	}
	newSnap := []board.Product{
		productWith(10, "A"),
		productWith(20, "B"),
		productWith(30, "C", hank),
	}

	got := board.ComputeReassignments(oldSnap, newSnap)

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(got), got)
	}
	if got[0].Origin != "A" || got[0].Destination != "C" {
		t.Errorf("expected paired A→C first, got %+v", got[0])
	}
	if got[1].Origin != "B" || got[1].Destination != "" {
		t.Errorf("expected B cancellation second, got %+v", got[1])
	}
}
