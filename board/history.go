/*
history.go - Assignment history reconstruction

PURPOSE:
  Rebuilds a person's product tenure history from their full assignment
  record list, for the history drawer.

RULES:
  - Assignments starting strictly after "now" are excluded. The cutoff is
    wall-clock time, not the viewing date: a future-dated move never shows
    in history even while the board is viewed on that future date.
  - Product names resolve through the catalog; an unresolvable id displays
    as "Unknown Product"; the unassigned sentinel displays capitalized.
  - Duration is the inclusive day count to the end date, or to "now" for
    open assignments, and never less than one day.
  - Output order mirrors input order; no re-sort is applied.
*/
package board

const unknownProductName = "Unknown Product"
const unassignedDisplayName = "Unassigned"

// BuildHistory reconstructs a person's tenure history from their assignment
// records. An empty input yields an empty history.
func BuildHistory(assignments []Assignment, catalog []Product, now Date) []HistoryEntry {
	names := make(map[int64]string, len(catalog))
	for _, p := range catalog {
		names[p.ID] = p.Name
	}

	var out []HistoryEntry
	for _, a := range assignments {
		if a.StartDate.After(now) {
			continue
		}

		name, ok := names[a.ProductID]
		switch {
		case !ok:
			name = unknownProductName
		case name == UnassignedProductName:
			name = unassignedDisplayName
		}

		end := now
		if a.EndDate != nil {
			end = *a.EndDate
		}
		duration := DaysBetween(a.StartDate, end)
		if duration < 1 {
			duration = 1
		}

		out = append(out, HistoryEntry{
			ProductName:  name,
			StartDate:    a.StartDate,
			EndDate:      a.EndDate,
			DurationDays: duration,
		})
	}
	return out
}
