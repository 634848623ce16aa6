/*
Package board provides the assignment reconciliation engine.

PURPOSE:
  This package contains the domain types and pure algorithms behind a
  people-to-product assignment board: who is on which product as of a viewing
  date, what changes when a person is reassigned, and how a person's
  assignment history reads back.

KEY CONCEPTS IN THIS FILE (types.go):
  - Space: a tenant holding its own people, products, roles, and tags
  - Person/Product: the two sides of an assignment
  - Assignment: person-to-product relation bounded by start/end dates
  - Tag: a kind-discriminated label (role, person tag, product tag, location)
  - Reassignment/HistoryEntry: derived records, never persisted

DESIGN PRINCIPLES:
  1. Purity: the algorithms here take snapshots as plain data and return
     derived data; persistence and HTTP live elsewhere
  2. Day granularity: every boundary is a calendar date (see dates.go)
  3. Explicit variants: tag kinds are a discriminated field, not loosely
     shaped objects

SEE ALSO:
  - matching.go: active/archived predicates and filter matching
  - diff.go: desired-assignment computation for form submissions
  - reassignment.go: before/after snapshot diffing
  - history.go: tenure history reconstruction
*/
package board

import (
	"fmt"
	"time"
)

// UnassignedProductName is the sentinel product name. Every space carries
// exactly one product with this name; people with no real product are
// assigned to it.
const UnassignedProductName = "unassigned"

// =============================================================================
// SPACE
// =============================================================================

// Space is a tenant/workspace. All other entities are scoped to one space.
type Space struct {
	UUID      string
	Name      string
	CreatedAt time.Time
}

// =============================================================================
// TAG - Kind-discriminated label
// =============================================================================

type TagKind string

const (
	TagKindRole       TagKind = "role"
	TagKindPersonTag  TagKind = "person_tag"
	TagKindProductTag TagKind = "product_tag"
	TagKindLocation   TagKind = "location"
)

// Tag is a named label within a space. The Kind field discriminates the
// variant: a role, a person tag, a product tag, or a location.
type Tag struct {
	ID        int64
	SpaceUUID string
	Kind      TagKind
	Name      string
}

// =============================================================================
// PERSON
// =============================================================================

type Person struct {
	ID        int64
	SpaceUUID string
	Name      string

	// ExternalID is an optional CDSID-like corporate identifier.
	ExternalID string

	// RoleID references a TagKindRole tag; nil = no role.
	RoleID *int64

	Notes string

	// New marks a recently added person; NewSince records when.
	New      bool
	NewSince *Date

	// TagIDs reference TagKindPersonTag tags.
	TagIDs []int64

	// ArchiveDate, when set, marks the person inactive strictly after that
	// date.
	ArchiveDate *Date
}

// =============================================================================
// PRODUCT
// =============================================================================

type Product struct {
	ID        int64
	SpaceUUID string
	Name      string

	// LocationID references a TagKindLocation tag; nil = no location.
	LocationID *int64

	// TagIDs reference TagKindProductTag tags.
	TagIDs []int64

	StartDate Date
	EndDate   *Date // nil = no planned end

	// Assignments is populated on snapshots (products as of a viewing date).
	Assignments []Assignment
}

// =============================================================================
// ASSIGNMENT
// =============================================================================

// Assignment relates a Person to a Product from StartDate until EndDate.
// A nil EndDate means the assignment is still open. For a given person and
// product at most one assignment may be open at a time.
type Assignment struct {
	ID        int64
	SpaceUUID string
	PersonID  int64
	ProductID int64

	// Person is populated when the assignment is nested in a snapshot.
	Person Person

	StartDate Date
	EndDate   *Date

	// Placeholder marks a TBD/backfill slot rather than a committed person.
	Placeholder bool
}

// IsOpen reports whether the assignment has no end date.
func (a Assignment) IsOpen() bool { return a.EndDate == nil }

// =============================================================================
// DERIVED RECORDS
// =============================================================================

// Reassignment describes one person's product change between two snapshots.
// An empty Origin means newly assigned; an empty Destination means the
// assignment was cancelled with no replacement.
type Reassignment struct {
	Person      Person
	Origin      string
	Destination string
}

// Description renders the drawer line for this reassignment.
func (r Reassignment) Description() string {
	switch {
	case r.Origin == "":
		return fmt.Sprintf("Assigned to %s", r.Destination)
	case r.Destination == "":
		return fmt.Sprintf("%s assignment cancelled", r.Origin)
	default:
		return fmt.Sprintf("%s → %s", r.Origin, r.Destination)
	}
}

// HistoryEntry is one tenure in a person's assignment history.
type HistoryEntry struct {
	ProductName  string
	StartDate    Date
	EndDate      *Date // nil = current
	DurationDays int
}

// Line renders the display line, e.g.
// "Product 3 10/01/2019 - 11/30/2019 (61 days)" or
// "Hanky Product 01/01/2020 - Current (5 days)".
func (e HistoryEntry) Line() string {
	end := "Current"
	if e.EndDate != nil {
		end = e.EndDate.FormatUS()
	}
	unit := "days"
	if e.DurationDays == 1 {
		unit = "day"
	}
	return fmt.Sprintf("%s %s - %s (%d %s)", e.ProductName, e.StartDate.FormatUS(), end, e.DurationDays, unit)
}
