/*
reconcile.go - Applying a desired assignment state

PURPOSE:
  Takes the desired end-state computed by the diff builder and makes the
  person's stored assignments match it as of an effective date.

RULES:
  - An empty desired set moves the person to the space's unassigned product.
  - An unchanged selection performs zero writes (idempotence guard).
  - Superseded open assignments close the day before the effective date;
    an assignment that would close before it started never took effect and
    is deleted instead, preserving the end-after-start invariant.
  - Surviving assignments keep their identity; only a changed placeholder
    flag is written back.
*/
package board

import "context"

// Reconciler applies desired assignment states against a Store.
type Reconciler struct {
	Store Store
}

// Apply reconciles a person's assignments to the desired selections as of
// effectiveDate and returns the person's assignments active on that date.
// The second return value reports whether anything was written; an unchanged
// selection performs zero writes.
func (r *Reconciler) Apply(ctx context.Context, spaceUUID string, person Person, effectiveDate Date, desired []ProductSelection) ([]Assignment, bool, error) {
	target := desired
	if len(target) == 0 {
		unassigned, err := r.Store.GetProductByName(ctx, spaceUUID, UnassignedProductName)
		if err != nil {
			return nil, false, err
		}
		if unassigned == nil {
			return nil, false, ErrUnassignedMissing
		}
		target = []ProductSelection{{ProductID: unassigned.ID}}
	}

	existing, err := r.Store.ListAssignmentsByPerson(ctx, spaceUUID, person.ID)
	if err != nil {
		return nil, false, err
	}
	var open []Assignment
	for _, a := range existing {
		if a.IsOpen() {
			open = append(open, a)
		}
	}

	if SelectionUnchanged(open, target) {
		return activeOn(existing, effectiveDate), false, nil
	}

	wanted := make(map[int64]ProductSelection, len(target))
	for _, sel := range target {
		wanted[sel.ProductID] = sel
	}

	// Close, delete, or update what is already open.
	covered := make(map[int64]bool)
	for _, a := range open {
		sel, keep := wanted[a.ProductID]
		if keep {
			covered[a.ProductID] = true
			if a.Placeholder != sel.Placeholder {
				a.Placeholder = sel.Placeholder
				if err := r.Store.SaveAssignment(ctx, &a); err != nil {
					return nil, false, err
				}
			}
			continue
		}

		end := effectiveDate.AddDays(-1)
		if end.Before(a.StartDate) {
			if err := r.Store.DeleteAssignment(ctx, spaceUUID, a.ID); err != nil {
				return nil, false, err
			}
			continue
		}
		a.EndDate = &end
		if err := r.Store.SaveAssignment(ctx, &a); err != nil {
			return nil, false, err
		}
	}

	// Open what is newly selected.
	for _, sel := range target {
		if covered[sel.ProductID] {
			continue
		}
		a := Assignment{
			SpaceUUID:   spaceUUID,
			PersonID:    person.ID,
			ProductID:   sel.ProductID,
			StartDate:   effectiveDate,
			Placeholder: sel.Placeholder,
		}
		if err := r.Store.SaveAssignment(ctx, &a); err != nil {
			return nil, false, err
		}
	}

	refreshed, err := r.Store.ListAssignmentsByPerson(ctx, spaceUUID, person.ID)
	if err != nil {
		return nil, false, err
	}
	return activeOn(refreshed, effectiveDate), true, nil
}

func activeOn(assignments []Assignment, onDate Date) []Assignment {
	var out []Assignment
	for _, a := range assignments {
		if IsActiveAssignment(a, onDate) {
			out = append(out, a)
		}
	}
	return out
}
