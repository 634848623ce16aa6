/*
snapshot.go - Product snapshots as of a viewing date

PURPOSE:
  Assembles the board state the client renders: every product in a space
  with the assignments active on the requested date nested inside, people
  attached, and each product's assignments in canonical order.

  Snapshots are also the inputs to reassignment detection: two snapshots of
  adjacent dates diffed by ComputeReassignments.
*/
package board

import "context"

// SnapshotBuilder assembles date-scoped product snapshots from a Store.
type SnapshotBuilder struct {
	Store Store
}

// ProductsAsOf returns all products of a space with the assignments active
// on the given date nested inside, sorted by the canonical comparator.
func (sb *SnapshotBuilder) ProductsAsOf(ctx context.Context, spaceUUID string, onDate Date) ([]Product, error) {
	people, err := sb.Store.ListPeople(ctx, spaceUUID)
	if err != nil {
		return nil, err
	}
	personByID := make(map[int64]Person, len(people))
	for _, p := range people {
		personByID[p.ID] = p
	}

	tagNames, err := sb.TagNames(ctx, spaceUUID)
	if err != nil {
		return nil, err
	}

	products, err := sb.Store.ListProducts(ctx, spaceUUID)
	if err != nil {
		return nil, err
	}
	assignments, err := sb.Store.ListAssignments(ctx, spaceUUID)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[int64][]Assignment)
	for _, a := range assignments {
		if !IsActiveAssignment(a, onDate) {
			continue
		}
		a.Person = personByID[a.PersonID]
		byProduct[a.ProductID] = append(byProduct[a.ProductID], a)
	}

	for i := range products {
		nested := byProduct[products[i].ID]
		SortAssignments(nested, tagNames)
		products[i].Assignments = nested
	}
	return products, nil
}

// TagNames returns an id-to-name index across every tag kind of a space.
func (sb *SnapshotBuilder) TagNames(ctx context.Context, spaceUUID string) (map[int64]string, error) {
	names := make(map[int64]string)
	for _, kind := range []TagKind{TagKindRole, TagKindPersonTag, TagKindProductTag, TagKindLocation} {
		tags, err := sb.Store.ListTags(ctx, spaceUUID, kind)
		if err != nil {
			return nil, err
		}
		for _, t := range tags {
			names[t.ID] = t.Name
		}
	}
	return names, nil
}
