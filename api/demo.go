/*
demo.go - Demo space seeding

PURPOSE:
  Populates a freshly created store with a small but realistic space so the
  server is explorable immediately after startup. Also used by tests that
  want a board with real shape instead of hand-built fixtures.

THE DEMO SPACE:
  One space ("FordLabs Demo") with a role, a person tag, a location, three
  products plus the sentinel unassigned product, and four people in various
  states: assigned, moved last week, unassigned, and archived.
*/
package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fordlabs/peoplemover/board"
)

// LoadDemoSpace seeds the store with the demo space and returns its uuid.
func LoadDemoSpace(ctx context.Context, store board.Store) (string, error) {
	today := board.Today()

	space := board.Space{
		UUID:      uuid.NewString(),
		Name:      "FordLabs Demo",
		CreatedAt: nowUTC(),
	}
	if err := store.SaveSpace(ctx, space); err != nil {
		return "", fmt.Errorf("seed space: %w", err)
	}

	// Tags
	engineer := board.Tag{SpaceUUID: space.UUID, Kind: board.TagKindRole, Name: "Software Engineer"}
	designer := board.Tag{SpaceUUID: space.UUID, Kind: board.TagKindRole, Name: "Product Designer"}
	anchor := board.Tag{SpaceUUID: space.UUID, Kind: board.TagKindPersonTag, Name: "Anchor"}
	dearborn := board.Tag{SpaceUUID: space.UUID, Kind: board.TagKindLocation, Name: "Dearborn"}
	for _, t := range []*board.Tag{&engineer, &designer, &anchor, &dearborn} {
		if err := store.SaveTag(ctx, t); err != nil {
			return "", fmt.Errorf("seed tag %q: %w", t.Name, err)
		}
	}

	// Products
	unassigned := board.Product{
		SpaceUUID: space.UUID,
		Name:      board.UnassignedProductName,
		StartDate: today.AddDays(-90),
	}
	mobility := board.Product{
		SpaceUUID:  space.UUID,
		Name:       "Mobility Platform",
		LocationID: &dearborn.ID,
		StartDate:  today.AddDays(-90),
	}
	charging := board.Product{
		SpaceUUID: space.UUID,
		Name:      "Charging Network",
		StartDate: today.AddDays(-60),
	}
	retired := board.Product{
		SpaceUUID: space.UUID,
		Name:      "Legacy Kiosk",
		StartDate: today.AddDays(-90),
	}
	retiredEnd := today.AddDays(-30)
	retired.EndDate = &retiredEnd
	for _, p := range []*board.Product{&unassigned, &mobility, &charging, &retired} {
		if err := store.SaveProduct(ctx, p); err != nil {
			return "", fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	// People
	newSince := today.AddDays(-7)
	ada := board.Person{
		SpaceUUID:  space.UUID,
		Name:       "Ada Lovelace",
		ExternalID: "alovela1",
		RoleID:     &engineer.ID,
		TagIDs:     []int64{anchor.ID},
	}
	grace := board.Person{
		SpaceUUID:  space.UUID,
		Name:       "Grace Hopper",
		ExternalID: "ghopper",
		RoleID:     &designer.ID,
		New:        true,
		NewSince:   &newSince,
	}
	alan := board.Person{
		SpaceUUID:  space.UUID,
		Name:       "Alan Turing",
		ExternalID: "aturing",
		RoleID:     &engineer.ID,
	}
	archiveDate := today.AddDays(-14)
	katherine := board.Person{
		SpaceUUID:   space.UUID,
		Name:        "Katherine Johnson",
		ExternalID:  "kjohnso2",
		RoleID:      &engineer.ID,
		ArchiveDate: &archiveDate,
	}
	for _, p := range []*board.Person{&ada, &grace, &alan, &katherine} {
		if err := store.SavePerson(ctx, p); err != nil {
			return "", fmt.Errorf("seed person %q: %w", p.Name, err)
		}
	}

	// Assignments: Ada has been on Mobility for months. Grace moved from
	// unassigned to Charging last week. Alan sits on the unassigned product.
	movedOn := today.AddDays(-7)
	graceOldEnd := movedOn.AddDays(-1)
	assignments := []*board.Assignment{
		{SpaceUUID: space.UUID, PersonID: ada.ID, ProductID: mobility.ID, StartDate: today.AddDays(-80)},
		{SpaceUUID: space.UUID, PersonID: grace.ID, ProductID: unassigned.ID, StartDate: today.AddDays(-30), EndDate: &graceOldEnd},
		{SpaceUUID: space.UUID, PersonID: grace.ID, ProductID: charging.ID, StartDate: movedOn},
		{SpaceUUID: space.UUID, PersonID: alan.ID, ProductID: unassigned.ID, StartDate: today.AddDays(-20), Placeholder: true},
	}
	for _, a := range assignments {
		if err := store.SaveAssignment(ctx, a); err != nil {
			return "", fmt.Errorf("seed assignment: %w", err)
		}
	}

	return space.UUID, nil
}
