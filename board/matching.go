/*
matching.go - Person/product matching rules

PURPOSE:
  Predicates that decide how an entity relates to a viewing date (active,
  archived, unassigned) and whether a person passes the board's role/tag
  filters. Also the canonical sort order for assignments within a product.

SEMANTICS WORTH NOTING:
  - Archived is STRICTLY before the viewing date: a person archived on the
    viewing date itself still shows.
  - Empty filter sets always match; filtering only narrows.
  - Sorting is stable across equal keys with assignment id as the final
    tiebreaker, so board columns never reshuffle between fetches.
*/
package board

import (
	"cmp"
	"slices"
	"strings"
)

// =============================================================================
// PREDICATES
// =============================================================================

// IsUnassignedProduct reports whether p is the space's sentinel bucket.
func IsUnassignedProduct(p Product) bool {
	return p.Name == UnassignedProductName
}

// IsActiveProduct reports whether p is running on the given date:
// started on or before it, and not yet ended.
func IsActiveProduct(p Product, onDate Date) bool {
	if p.StartDate.After(onDate) {
		return false
	}
	return p.EndDate == nil || p.EndDate.SameOrAfter(onDate)
}

// IsArchivedProduct reports whether p ended strictly before the given date.
func IsArchivedProduct(p Product, onDate Date) bool {
	return p.EndDate != nil && p.EndDate.Before(onDate)
}

// IsArchivedPerson reports whether the person's archive date exists and is
// strictly before the given date.
func IsArchivedPerson(p Person, onDate Date) bool {
	return p.ArchiveDate != nil && p.ArchiveDate.Before(onDate)
}

// IsActiveAssignment reports whether a covers the given date.
func IsActiveAssignment(a Assignment, onDate Date) bool {
	if a.StartDate.After(onDate) {
		return false
	}
	return a.EndDate == nil || a.EndDate.SameOrAfter(onDate)
}

// =============================================================================
// FILTERS
// =============================================================================

// MatchesFilters reports whether a person passes the selected role and
// person-tag filters. Both dimensions must pass; an empty filter set passes
// everyone. Role matches by exact name; tags match if at least one of the
// person's tags is selected. tagNames resolves tag ids to names.
func MatchesFilters(p Person, roleFilters, tagFilters []string, tagNames map[int64]string) bool {
	if len(roleFilters) > 0 {
		role := ""
		if p.RoleID != nil {
			role = tagNames[*p.RoleID]
		}
		if !slices.Contains(roleFilters, role) {
			return false
		}
	}

	if len(tagFilters) > 0 {
		matched := false
		for _, id := range p.TagIDs {
			if slices.Contains(tagFilters, tagNames[id]) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// =============================================================================
// SORTING
// =============================================================================

// SortAssignments orders assignments within a product: role name first
// (case-sensitive, empty string for roleless people), then person name,
// then assignment id as a stable tiebreaker.
func SortAssignments(assignments []Assignment, tagNames map[int64]string) {
	roleOf := func(a Assignment) string {
		if a.Person.RoleID == nil {
			return ""
		}
		return tagNames[*a.Person.RoleID]
	}

	slices.SortStableFunc(assignments, func(a, b Assignment) int {
		if c := strings.Compare(roleOf(a), roleOf(b)); c != 0 {
			return c
		}
		if c := strings.Compare(a.Person.Name, b.Person.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
