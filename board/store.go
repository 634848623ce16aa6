/*
store.go - Persistence interface for the board

PURPOSE:
  Defines the interface between the domain/API logic and the database.
  Different implementations can use SQLite or in-memory storage.

SCOPING:
  Every read and delete is scoped by space uuid: a handler can never reach
  entities of another tenant through this interface.

ID ASSIGNMENT:
  Save* methods take pointers and assign the ID on insert (ID == 0).
  A non-zero ID updates the existing row.

IMPLEMENTATIONS:
  - store/sqlite: production SQLite store
  - store/memory: in-memory store for tests
*/
package board

import "context"

// Store is the persistence boundary for all board entities.
type Store interface {
	// Spaces
	SaveSpace(ctx context.Context, space Space) error
	GetSpace(ctx context.Context, uuid string) (*Space, error)

	// Tags (roles, person tags, product tags, locations)
	SaveTag(ctx context.Context, tag *Tag) error
	GetTag(ctx context.Context, spaceUUID string, id int64) (*Tag, error)
	ListTags(ctx context.Context, spaceUUID string, kind TagKind) ([]Tag, error)
	DeleteTag(ctx context.Context, spaceUUID string, id int64) error

	// People
	SavePerson(ctx context.Context, person *Person) error
	GetPerson(ctx context.Context, spaceUUID string, id int64) (*Person, error)
	ListPeople(ctx context.Context, spaceUUID string) ([]Person, error)
	// DeletePerson removes the person and cascades their assignments.
	DeletePerson(ctx context.Context, spaceUUID string, id int64) error

	// Products
	SaveProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, spaceUUID string, id int64) (*Product, error)
	// GetProductByName resolves a product by exact name (used for the
	// unassigned sentinel lookup).
	GetProductByName(ctx context.Context, spaceUUID, name string) (*Product, error)
	ListProducts(ctx context.Context, spaceUUID string) ([]Product, error)
	// DeleteProduct removes the product and cascades its assignments.
	DeleteProduct(ctx context.Context, spaceUUID string, id int64) error

	// Assignments
	SaveAssignment(ctx context.Context, assignment *Assignment) error
	DeleteAssignment(ctx context.Context, spaceUUID string, id int64) error
	ListAssignmentsByPerson(ctx context.Context, spaceUUID string, personID int64) ([]Assignment, error)
	ListAssignments(ctx context.Context, spaceUUID string) ([]Assignment, error)
}
