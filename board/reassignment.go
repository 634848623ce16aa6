/*
reassignment.go - Before/after snapshot diffing

PURPOSE:
  Given two product snapshots of the same space (before and after a mutating
  operation, or adjacent viewing dates), compute per-person reassignment
  records: origin product → destination product, with one-way records for
  pure additions and cancellations.

CONTRACT:
  ComputeReassignments is a pure two-argument function over plain snapshot
  data. Callers are responsible for capturing both snapshots explicitly;
  nothing here depends on fetch or render timing.

ORDERING:
  Records are emitted in the order their owning persons first appear in the
  new snapshot. Persons present only in the old snapshot (deleted outright,
  not merely unassigned) come afterward, in old-snapshot order.

EDGE CASE:
  A person moved from product A to product B in a single transaction yields
  exactly ONE record pairing origin and destination, never an independent
  add and remove.
*/
package board

import "slices"

// personProducts is one person's real-product membership within a snapshot.
// The unassigned sentinel never contributes a product name: a person parked
// there has an empty set.
type personProducts struct {
	person   Person
	products []string
}

// ComputeReassignments diffs two snapshots of the same space and returns one
// record per net per-person change.
func ComputeReassignments(oldSnapshot, newSnapshot []Product) []Reassignment {
	before, beforeOrder := collectByPerson(oldSnapshot)
	after, afterOrder := collectByPerson(newSnapshot)

	var out []Reassignment

	for _, personID := range afterOrder {
		cur := after[personID]
		var prev []string
		if b, ok := before[personID]; ok {
			prev = b.products
		}
		out = append(out, diffPerson(cur.person, prev, cur.products)...)
	}

	// Persons that vanished from the snapshot entirely: every prior product
	// becomes a cancellation.
	for _, personID := range beforeOrder {
		if _, ok := after[personID]; ok {
			continue
		}
		b := before[personID]
		out = append(out, diffPerson(b.person, b.products, nil)...)
	}

	return out
}

// diffPerson emits records for one person given sorted before/after product
// name sets. Removed and added names are paired positionally; leftovers emit
// one-way records.
func diffPerson(person Person, before, after []string) []Reassignment {
	removed := subtract(before, after)
	added := subtract(after, before)

	var out []Reassignment
	i := 0
	for ; i < len(removed) && i < len(added); i++ {
		out = append(out, Reassignment{Person: person, Origin: removed[i], Destination: added[i]})
	}
	for _, name := range removed[i:] {
		out = append(out, Reassignment{Person: person, Origin: name})
	}
	for _, name := range added[i:] {
		out = append(out, Reassignment{Person: person, Destination: name})
	}
	return out
}

// collectByPerson groups a snapshot's assignments by person, recording each
// person's sorted real-product names and first-appearance order.
func collectByPerson(snapshot []Product) (map[int64]*personProducts, []int64) {
	byPerson := make(map[int64]*personProducts)
	var order []int64

	for _, p := range snapshot {
		unassigned := IsUnassignedProduct(p)
		for _, a := range p.Assignments {
			pp, ok := byPerson[a.PersonID]
			if !ok {
				pp = &personProducts{person: a.Person}
				byPerson[a.PersonID] = pp
				order = append(order, a.PersonID)
			}
			if !unassigned {
				pp.products = append(pp.products, p.Name)
			}
		}
	}

	for _, pp := range byPerson {
		slices.Sort(pp.products)
	}
	return byPerson, order
}

// subtract returns the elements of a not present in b, preserving a's order.
func subtract(a, b []string) []string {
	var out []string
	for _, s := range a {
		if !slices.Contains(b, s) {
			out = append(out, s)
		}
	}
	return out
}
