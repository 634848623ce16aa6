/*
reconcile_test.go - Reconciler behavior against a real store

Covers the write rules:
- New selections open assignments starting on the effective date
- Superseded assignments close the day before, or are deleted when they
  never took effect
- Placeholder-only changes update in place without touching dates
- Empty selections fall back to the unassigned product
- Unchanged selections write nothing
*/
package board_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fordlabs/peoplemover/board"
	"github.com/fordlabs/peoplemover/store/memory"
)

type reconcileFixture struct {
	store      *memory.Store
	reconciler *board.Reconciler
	spaceUUID  string
	person     board.Person
	unassigned board.Product
	mobility   board.Product
	charging   board.Product
}

func newReconcileFixture(t *testing.T) *reconcileFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	space := board.Space{UUID: "space-1", Name: "Test"}
	if err := store.SaveSpace(ctx, space); err != nil {
		t.Fatalf("SaveSpace: %v", err)
	}

	f := &reconcileFixture{
		store:      store,
		reconciler: &board.Reconciler{Store: store},
		spaceUUID:  space.UUID,
		person:     board.Person{SpaceUUID: space.UUID, Name: "Ada Lovelace"},
		unassigned: board.Product{SpaceUUID: space.UUID, Name: board.UnassignedProductName, StartDate: board.NewDate(2020, time.January, 1)},
		mobility:   board.Product{SpaceUUID: space.UUID, Name: "Mobility", StartDate: board.NewDate(2020, time.January, 1)},
		charging:   board.Product{SpaceUUID: space.UUID, Name: "Charging", StartDate: board.NewDate(2020, time.January, 1)},
	}
	if err := store.SavePerson(ctx, &f.person); err != nil {
		t.Fatalf("SavePerson: %v", err)
	}
	for _, p := range []*board.Product{&f.unassigned, &f.mobility, &f.charging} {
		if err := store.SaveProduct(ctx, p); err != nil {
			t.Fatalf("SaveProduct: %v", err)
		}
	}
	return f
}

func (f *reconcileFixture) apply(t *testing.T, effective board.Date, desired []board.ProductSelection) ([]board.Assignment, bool) {
	t.Helper()
	active, wrote, err := f.reconciler.Apply(context.Background(), f.spaceUUID, f.person, effective, desired)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return active, wrote
}

func (f *reconcileFixture) allAssignments(t *testing.T) []board.Assignment {
	t.Helper()
	all, err := f.store.ListAssignmentsByPerson(context.Background(), f.spaceUUID, f.person.ID)
	if err != nil {
		t.Fatalf("ListAssignmentsByPerson: %v", err)
	}
	return all
}

func TestReconciler_MoveClosesDayBefore(t *testing.T) {
	f := newReconcileFixture(t)

	// GIVEN: Ada on Mobility since Jan 1
	f.apply(t, board.NewDate(2020, time.January, 1),
		[]board.ProductSelection{{ProductID: f.mobility.ID}})

	// WHEN: Moved to Charging effective Feb 1
	active, wrote := f.apply(t, board.NewDate(2020, time.February, 1),
		[]board.ProductSelection{{ProductID: f.charging.ID}})

	// THEN: Charging opens Feb 1, Mobility closes Jan 31
	if !wrote {
		t.Fatal("expected a write for a changed selection")
	}
	if len(active) != 1 || active[0].ProductID != f.charging.ID {
		t.Fatalf("expected one active Charging assignment, got %+v", active)
	}
	for _, a := range f.allAssignments(t) {
		if a.ProductID == f.mobility.ID {
			if a.EndDate == nil || a.EndDate.String() != "2020-01-31" {
				t.Errorf("expected Mobility to close 2020-01-31, got %v", a.EndDate)
			}
		}
	}
}

func TestReconciler_SameDayReplacementDeletesNeverEffective(t *testing.T) {
	f := newReconcileFixture(t)

	// GIVEN: Ada assigned to Mobility effective Jan 15
	f.apply(t, board.NewDate(2020, time.January, 15),
		[]board.ProductSelection{{ProductID: f.mobility.ID}})

	// WHEN: Replaced with Charging the same day
	f.apply(t, board.NewDate(2020, time.January, 15),
		[]board.ProductSelection{{ProductID: f.charging.ID}})

	// THEN: The Mobility record is gone, not closed Jan 14
	all := f.allAssignments(t)
	if len(all) != 1 {
		t.Fatalf("expected one record, got %d", len(all))
	}
	if all[0].ProductID != f.charging.ID {
		t.Errorf("expected surviving record on Charging, got %+v", all[0])
	}
}

func TestReconciler_PlaceholderChangeKeepsIdentity(t *testing.T) {
	f := newReconcileFixture(t)

	first, _ := f.apply(t, board.NewDate(2020, time.January, 1),
		[]board.ProductSelection{{ProductID: f.mobility.ID}})

	active, wrote := f.apply(t, board.NewDate(2020, time.March, 1),
		[]board.ProductSelection{{ProductID: f.mobility.ID, Placeholder: true}})

	if !wrote {
		t.Fatal("expected a write for a placeholder flip")
	}
	if len(active) != 1 {
		t.Fatalf("expected one active assignment, got %d", len(active))
	}
	if active[0].ID != first[0].ID {
		t.Errorf("expected the assignment to keep its id, got %d vs %d", active[0].ID, first[0].ID)
	}
	if !active[0].Placeholder {
		t.Error("expected placeholder set")
	}
	if active[0].StartDate.String() != "2020-01-01" {
		t.Errorf("expected start date untouched, got %v", active[0].StartDate)
	}
}

func TestReconciler_UnchangedSelectionWritesNothing(t *testing.T) {
	f := newReconcileFixture(t)

	first, _ := f.apply(t, board.NewDate(2020, time.January, 1),
		[]board.ProductSelection{{ProductID: f.mobility.ID}})

	active, wrote := f.apply(t, board.NewDate(2020, time.June, 1),
		[]board.ProductSelection{{ProductID: f.mobility.ID}})

	if wrote {
		t.Fatal("expected zero writes for an unchanged selection")
	}
	if len(active) != 1 || active[0].ID != first[0].ID || active[0].StartDate.String() != "2020-01-01" {
		t.Fatalf("expected the original assignment untouched, got %+v", active)
	}
}

func TestReconciler_EmptySelectionMovesToUnassigned(t *testing.T) {
	f := newReconcileFixture(t)

	f.apply(t, board.NewDate(2020, time.January, 1),
		[]board.ProductSelection{{ProductID: f.mobility.ID}})

	active, wrote := f.apply(t, board.NewDate(2020, time.February, 1), nil)

	if !wrote {
		t.Fatal("expected a write")
	}
	if len(active) != 1 || active[0].ProductID != f.unassigned.ID {
		t.Fatalf("expected a single unassigned assignment, got %+v", active)
	}
}

func TestReconciler_MissingUnassignedProduct(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	space := board.Space{UUID: "space-x", Name: "No Sentinel"}
	if err := store.SaveSpace(ctx, space); err != nil {
		t.Fatalf("SaveSpace: %v", err)
	}
	person := board.Person{SpaceUUID: space.UUID, Name: "Ada Lovelace"}
	if err := store.SavePerson(ctx, &person); err != nil {
		t.Fatalf("SavePerson: %v", err)
	}

	r := &board.Reconciler{Store: store}
	_, _, err := r.Apply(ctx, space.UUID, person, board.NewDate(2020, time.January, 1), nil)
	if !errors.Is(err, board.ErrUnassignedMissing) {
		t.Fatalf("expected ErrUnassignedMissing, got %v", err)
	}
}
