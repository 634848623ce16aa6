// Package memory provides an in-memory board.Store for testing and dev.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/fordlabs/peoplemover/board"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Store struct {
	mu sync.RWMutex

	spaces      map[string]board.Space
	tags        map[int64]board.Tag
	people      map[int64]board.Person
	products    map[int64]board.Product
	assignments map[int64]board.Assignment

	nextID int64
}

func New() *Store {
	return &Store{
		spaces:      make(map[string]board.Space),
		tags:        make(map[int64]board.Tag),
		people:      make(map[int64]board.Person),
		products:    make(map[int64]board.Product),
		assignments: make(map[int64]board.Assignment),
	}
}

func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

// =============================================================================
// SPACES
// =============================================================================

func (s *Store) SaveSpace(_ context.Context, space board.Space) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces[space.UUID] = space
	return nil
}

func (s *Store) GetSpace(_ context.Context, uuid string) (*board.Space, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	space, ok := s.spaces[uuid]
	if !ok {
		return nil, nil
	}
	return &space, nil
}

// =============================================================================
// TAGS
// =============================================================================

func (s *Store) SaveTag(_ context.Context, tag *board.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tags {
		if existing.SpaceUUID == tag.SpaceUUID && existing.Kind == tag.Kind &&
			existing.Name == tag.Name && existing.ID != tag.ID {
			return board.ErrDuplicateName
		}
	}

	if tag.ID == 0 {
		tag.ID = s.allocID()
	}
	s.tags[tag.ID] = *tag
	return nil
}

func (s *Store) GetTag(_ context.Context, spaceUUID string, id int64) (*board.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tag, ok := s.tags[id]
	if !ok || tag.SpaceUUID != spaceUUID {
		return nil, nil
	}
	return &tag, nil
}

func (s *Store) ListTags(_ context.Context, spaceUUID string, kind board.TagKind) ([]board.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []board.Tag
	for _, tag := range s.tags {
		if tag.SpaceUUID == spaceUUID && tag.Kind == kind {
			out = append(out, tag)
		}
	}
	slices.SortFunc(out, func(a, b board.Tag) int { return int(a.ID - b.ID) })
	return out, nil
}

func (s *Store) DeleteTag(_ context.Context, spaceUUID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tag, ok := s.tags[id]
	if !ok || tag.SpaceUUID != spaceUUID {
		return board.ErrTagNotFound
	}
	delete(s.tags, id)
	return nil
}

// =============================================================================
// PEOPLE
// =============================================================================

func (s *Store) SavePerson(_ context.Context, person *board.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if person.ID == 0 {
		person.ID = s.allocID()
	}
	stored := *person
	stored.TagIDs = slices.Clone(person.TagIDs)
	s.people[person.ID] = stored
	return nil
}

func (s *Store) GetPerson(_ context.Context, spaceUUID string, id int64) (*board.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	person, ok := s.people[id]
	if !ok || person.SpaceUUID != spaceUUID {
		return nil, nil
	}
	person.TagIDs = slices.Clone(person.TagIDs)
	return &person, nil
}

func (s *Store) ListPeople(_ context.Context, spaceUUID string) ([]board.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []board.Person
	for _, person := range s.people {
		if person.SpaceUUID == spaceUUID {
			person.TagIDs = slices.Clone(person.TagIDs)
			out = append(out, person)
		}
	}
	slices.SortFunc(out, func(a, b board.Person) int { return int(a.ID - b.ID) })
	return out, nil
}

func (s *Store) DeletePerson(_ context.Context, spaceUUID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	person, ok := s.people[id]
	if !ok || person.SpaceUUID != spaceUUID {
		return board.ErrPersonNotFound
	}
	delete(s.people, id)
	for aid, a := range s.assignments {
		if a.PersonID == id {
			delete(s.assignments, aid)
		}
	}
	return nil
}

// =============================================================================
// PRODUCTS
// =============================================================================

func (s *Store) SaveProduct(_ context.Context, product *board.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.SpaceUUID == product.SpaceUUID && existing.Name == product.Name &&
			existing.ID != product.ID {
			return board.ErrDuplicateName
		}
	}

	if product.ID == 0 {
		product.ID = s.allocID()
	}
	stored := *product
	stored.TagIDs = slices.Clone(product.TagIDs)
	stored.Assignments = nil
	s.products[product.ID] = stored
	return nil
}

func (s *Store) GetProduct(_ context.Context, spaceUUID string, id int64) (*board.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok || product.SpaceUUID != spaceUUID {
		return nil, nil
	}
	product.TagIDs = slices.Clone(product.TagIDs)
	return &product, nil
}

func (s *Store) GetProductByName(_ context.Context, spaceUUID, name string) (*board.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, product := range s.products {
		if product.SpaceUUID == spaceUUID && product.Name == name {
			product.TagIDs = slices.Clone(product.TagIDs)
			return &product, nil
		}
	}
	return nil, nil
}

func (s *Store) ListProducts(_ context.Context, spaceUUID string) ([]board.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []board.Product
	for _, product := range s.products {
		if product.SpaceUUID == spaceUUID {
			product.TagIDs = slices.Clone(product.TagIDs)
			out = append(out, product)
		}
	}
	slices.SortFunc(out, func(a, b board.Product) int { return int(a.ID - b.ID) })
	return out, nil
}

func (s *Store) DeleteProduct(_ context.Context, spaceUUID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok || product.SpaceUUID != spaceUUID {
		return board.ErrProductNotFound
	}
	delete(s.products, id)
	for aid, a := range s.assignments {
		if a.ProductID == id {
			delete(s.assignments, aid)
		}
	}
	return nil
}

// =============================================================================
// ASSIGNMENTS
// =============================================================================

func (s *Store) SaveAssignment(_ context.Context, assignment *board.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if assignment.ID == 0 {
		assignment.ID = s.allocID()
	}
	stored := *assignment
	stored.Person = board.Person{} // persisted form carries ids only
	s.assignments[assignment.ID] = stored
	return nil
}

func (s *Store) DeleteAssignment(_ context.Context, spaceUUID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assignments[id]
	if !ok || a.SpaceUUID != spaceUUID {
		return nil
	}
	delete(s.assignments, id)
	return nil
}

func (s *Store) ListAssignmentsByPerson(_ context.Context, spaceUUID string, personID int64) ([]board.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []board.Assignment
	for _, a := range s.assignments {
		if a.SpaceUUID == spaceUUID && a.PersonID == personID {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b board.Assignment) int { return int(a.ID - b.ID) })
	return out, nil
}

func (s *Store) ListAssignments(_ context.Context, spaceUUID string) ([]board.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []board.Assignment
	for _, a := range s.assignments {
		if a.SpaceUUID == spaceUUID {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b board.Assignment) int { return int(a.ID - b.ID) })
	return out, nil
}
