/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the domain
  model from the wire contract. Dates cross the wire as YYYY-MM-DD strings;
  absent dates are omitted.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
*/
package api

import (
	"time"

	"github.com/fordlabs/peoplemover/board"
)

// =============================================================================
// SPACES
// =============================================================================

type SpaceDTO struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type CreateSpaceRequest struct {
	Name string `json:"name"`
}

func toSpaceDTO(s board.Space) SpaceDTO {
	return SpaceDTO{
		UUID:      s.UUID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// =============================================================================
// TAGS
// =============================================================================

type TagDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TagRequest struct {
	Name string `json:"name"`
}

func toTagDTO(t board.Tag) TagDTO {
	return TagDTO{ID: t.ID, Name: t.Name}
}

// =============================================================================
// PEOPLE
// =============================================================================

type PersonDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ExternalID  string  `json:"externalId,omitempty"`
	RoleID      *int64  `json:"roleId,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	New         bool    `json:"new"`
	NewSince    string  `json:"newSince,omitempty"`
	TagIDs      []int64 `json:"tagIds,omitempty"`
	ArchiveDate string  `json:"archiveDate,omitempty"`
}

type PersonRequest struct {
	Name        string  `json:"name"`
	ExternalID  string  `json:"externalId"`
	RoleID      *int64  `json:"roleId"`
	Notes       string  `json:"notes"`
	New         bool    `json:"new"`
	NewSince    string  `json:"newSince"`
	TagIDs      []int64 `json:"tagIds"`
	ArchiveDate string  `json:"archiveDate"`
}

func toPersonDTO(p board.Person) PersonDTO {
	return PersonDTO{
		ID:          p.ID,
		Name:        p.Name,
		ExternalID:  p.ExternalID,
		RoleID:      p.RoleID,
		Notes:       p.Notes,
		New:         p.New,
		NewSince:    formatDatePtr(p.NewSince),
		TagIDs:      p.TagIDs,
		ArchiveDate: formatDatePtr(p.ArchiveDate),
	}
}

// =============================================================================
// PRODUCTS & ASSIGNMENTS
// =============================================================================

type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	LocationID  *int64          `json:"locationId,omitempty"`
	TagIDs      []int64         `json:"tagIds,omitempty"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate,omitempty"`
	Archived    bool            `json:"archived"`
	Assignments []AssignmentDTO `json:"assignments"`
}

type ProductRequest struct {
	Name       string  `json:"name"`
	LocationID *int64  `json:"locationId"`
	TagIDs     []int64 `json:"tagIds"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
}

type AssignmentDTO struct {
	ID          int64      `json:"id"`
	ProductID   int64      `json:"productId"`
	Person      *PersonDTO `json:"person,omitempty"`
	PersonID    int64      `json:"personId"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate,omitempty"`
	Placeholder bool       `json:"placeholder"`
}

// SelectionRequest is one desired (productId, placeholder) pair. A nil
// placeholder means "carry forward whatever the open assignment has".
type SelectionRequest struct {
	ProductID   int64 `json:"productId"`
	Placeholder *bool `json:"placeholder"`
}

type CreateAssignmentsRequest struct {
	RequestedDate string             `json:"requestedDate"`
	Products      []SelectionRequest `json:"products"`
}

func toAssignmentDTO(a board.Assignment, withPerson bool) AssignmentDTO {
	dto := AssignmentDTO{
		ID:          a.ID,
		ProductID:   a.ProductID,
		PersonID:    a.PersonID,
		StartDate:   a.StartDate.String(),
		EndDate:     formatDatePtr(a.EndDate),
		Placeholder: a.Placeholder,
	}
	if withPerson {
		p := toPersonDTO(a.Person)
		dto.Person = &p
	}
	return dto
}

func toProductDTO(p board.Product, onDate board.Date) ProductDTO {
	assignments := make([]AssignmentDTO, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		assignments = append(assignments, toAssignmentDTO(a, true))
	}
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		LocationID:  p.LocationID,
		TagIDs:      p.TagIDs,
		StartDate:   p.StartDate.String(),
		EndDate:     formatDatePtr(p.EndDate),
		Archived:    board.IsArchivedProduct(p, onDate),
		Assignments: assignments,
	}
}

// =============================================================================
// DERIVED RECORDS
// =============================================================================

type ReassignmentDTO struct {
	Person      PersonDTO `json:"person"`
	Origin      string    `json:"originProductName,omitempty"`
	Destination string    `json:"destinationProductName,omitempty"`
	Description string    `json:"description"`
}

func toReassignmentDTO(r board.Reassignment) ReassignmentDTO {
	return ReassignmentDTO{
		Person:      toPersonDTO(r.Person),
		Origin:      r.Origin,
		Destination: r.Destination,
		Description: r.Description(),
	}
}

type HistoryEntryDTO struct {
	ProductName  string `json:"productName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current"`
	DurationDays int    `json:"durationDays"`
	Line         string `json:"line"`
}

func toHistoryEntryDTO(e board.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ProductName:  e.ProductName,
		StartDate:    e.StartDate.String(),
		EndDate:      formatDatePtr(e.EndDate),
		Current:      e.EndDate == nil,
		DurationDays: e.DurationDays,
		Line:         e.Line(),
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func formatDatePtr(d *board.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// parseDatePtr parses an optional wire date; empty means absent.
func parseDatePtr(s string) (*board.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := board.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
