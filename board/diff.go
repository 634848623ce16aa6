/*
diff.go - Assignment diff builder

PURPOSE:
  When a person's edit form is submitted, the selected products describe the
  desired end-state of that person's assignments as of the effective date.
  This file computes that end-state and the guard that skips redundant
  submissions.

ALGORITHM (DesiredAssignments):
  1. For each selected product, carry forward the placeholder flag of the
     person's open assignment for that product if one exists, else default
     to false.
  2. An empty selection yields an empty list; the reconciler interprets that
     as "move to unassigned".

ALGORITHM (SelectionUnchanged):
  Value equality on the {productID, placeholder} set of open assignments vs
  the desired selections, order-insensitive. When true, no write should be
  made at all: no network call, no reassignment-detection noise.
*/
package board

// ProductSelection is one desired (productId, placeholder) pair.
type ProductSelection struct {
	ProductID   int64
	Placeholder bool
}

// DesiredAssignments computes the ordered desired end-state for a person
// given the selected product ids and the person's currently open
// assignments. Placeholder flags of surviving assignments carry forward.
func DesiredAssignments(selectedProductIDs []int64, open []Assignment) []ProductSelection {
	placeholders := make(map[int64]bool, len(open))
	for _, a := range open {
		if a.IsOpen() {
			placeholders[a.ProductID] = a.Placeholder
		}
	}

	desired := make([]ProductSelection, 0, len(selectedProductIDs))
	for _, id := range selectedProductIDs {
		desired = append(desired, ProductSelection{
			ProductID:   id,
			Placeholder: placeholders[id],
		})
	}
	return desired
}

// SelectionUnchanged reports whether the desired selections are value-equal
// to the person's open assignments, ignoring order. Callers use this as an
// idempotence guard: an unchanged selection must produce zero writes.
func SelectionUnchanged(open []Assignment, desired []ProductSelection) bool {
	current := make(map[ProductSelection]int)
	n := 0
	for _, a := range open {
		if !a.IsOpen() {
			continue
		}
		current[ProductSelection{ProductID: a.ProductID, Placeholder: a.Placeholder}]++
		n++
	}
	if n != len(desired) {
		return false
	}
	for _, sel := range desired {
		if current[sel] == 0 {
			return false
		}
		current[sel]--
	}
	return true
}
