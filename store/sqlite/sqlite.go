/*
Package sqlite provides the SQLite-backed implementation of board.Store.

PURPOSE:
  Production persistence for spaces, tags, people, products, and
  assignments. The same patterns apply to PostgreSQL with minor dialect
  differences.

KEY TABLES:
  spaces:       Tenant records keyed by uuid
  tags:         Kind-discriminated labels (role/person_tag/product_tag/location)
  people:       Person records plus person_tags join table
  products:     Product records plus product_tags join table
  assignments:  Person-to-product relations with start/end dates

INVARIANTS ENFORCED HERE:
  - UNIQUE(space_uuid, name) on products: duplicate product names surface as
    board.ErrDuplicateName (mapped to HTTP 409 upstream)
  - UNIQUE(space_uuid, kind, name) on tags: same treatment
  - Partial unique index on open assignments: at most one open assignment
    per (person, product)

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of WAL mode. Multiple readers
  don't block; a single writer at a time.

USAGE:
  store, err := sqlite.New("./data/peoplemover.db")
  // ":memory:" for tests

SEE ALSO:
  - board/store.go: Interface definition
  - store/memory: In-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/fordlabs/peoplemover/board"
)

// Store implements board.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS spaces (
		uuid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		space_uuid TEXT NOT NULL,
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		UNIQUE(space_uuid, kind, name)
	);
	CREATE INDEX IF NOT EXISTS idx_tags_space_kind ON tags(space_uuid, kind);

	CREATE TABLE IF NOT EXISTS people (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		space_uuid TEXT NOT NULL,
		name TEXT NOT NULL,
		external_id TEXT,
		role_id INTEGER,
		notes TEXT,
		is_new BOOLEAN DEFAULT FALSE,
		new_since TEXT,
		archive_date TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_people_space ON people(space_uuid);

	CREATE TABLE IF NOT EXISTS person_tags (
		person_id INTEGER NOT NULL,
		tag_id INTEGER NOT NULL,
		PRIMARY KEY (person_id, tag_id)
	);

	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		space_uuid TEXT NOT NULL,
		name TEXT NOT NULL,
		location_id INTEGER,
		start_date TEXT NOT NULL,
		end_date TEXT,
		UNIQUE(space_uuid, name)
	);
	CREATE INDEX IF NOT EXISTS idx_products_space ON products(space_uuid);

	CREATE TABLE IF NOT EXISTS product_tags (
		product_id INTEGER NOT NULL,
		tag_id INTEGER NOT NULL,
		PRIMARY KEY (product_id, tag_id)
	);

	CREATE TABLE IF NOT EXISTS assignments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		space_uuid TEXT NOT NULL,
		person_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT,
		placeholder BOOLEAN DEFAULT FALSE
	);
	CREATE INDEX IF NOT EXISTS idx_assignments_space ON assignments(space_uuid);
	CREATE INDEX IF NOT EXISTS idx_assignments_person ON assignments(person_id);

	-- At most one open assignment per (person, product)
	CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_open
		ON assignments(person_id, product_id) WHERE end_date IS NULL;
	`
	_, err := s.db.Exec(schema)
	return err
}

// mapConstraint translates sqlite uniqueness violations to domain errors.
func mapConstraint(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return board.ErrDuplicateName
	}
	return err
}

// =============================================================================
// DATE HELPERS - Dates persist as YYYY-MM-DD text
// =============================================================================

func dateToSQL(d board.Date) string { return d.String() }

func datePtrToSQL(d *board.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func dateFromSQL(s string) (board.Date, error) {
	return board.ParseDate(s)
}

func datePtrFromSQL(ns sql.NullString) (*board.Date, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := board.ParseDate(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func int64PtrToSQL(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64PtrFromSQL(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

// =============================================================================
// SPACES
// =============================================================================

func (s *Store) SaveSpace(ctx context.Context, space board.Space) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO spaces (uuid, name, created_at) VALUES (?, ?, ?)
		ON CONFLICT(uuid) DO UPDATE SET name = excluded.name`,
		space.UUID, space.Name, space.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

func (s *Store) GetSpace(ctx context.Context, uuid string) (*board.Space, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT uuid, name, created_at FROM spaces WHERE uuid = ?`, uuid)

	var space board.Space
	var createdAt string
	if err := row.Scan(&space.UUID, &space.Name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, err
	}
	space.CreatedAt = t
	return &space, nil
}

// =============================================================================
// TAGS
// =============================================================================

func (s *Store) SaveTag(ctx context.Context, tag *board.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tag.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO tags (space_uuid, kind, name) VALUES (?, ?, ?)`,
			tag.SpaceUUID, string(tag.Kind), tag.Name)
		if err != nil {
			return mapConstraint(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		tag.ID = id
		return nil
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE tags SET name = ? WHERE id = ? AND space_uuid = ?`,
		tag.Name, tag.ID, tag.SpaceUUID)
	return mapConstraint(err)
}

func (s *Store) GetTag(ctx context.Context, spaceUUID string, id int64) (*board.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, space_uuid, kind, name FROM tags WHERE id = ? AND space_uuid = ?`,
		id, spaceUUID)

	var tag board.Tag
	var kind string
	if err := row.Scan(&tag.ID, &tag.SpaceUUID, &kind, &tag.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	tag.Kind = board.TagKind(kind)
	return &tag, nil
}

func (s *Store) ListTags(ctx context.Context, spaceUUID string, kind board.TagKind) ([]board.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, space_uuid, kind, name FROM tags
		 WHERE space_uuid = ? AND kind = ? ORDER BY id`,
		spaceUUID, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []board.Tag
	for rows.Next() {
		var tag board.Tag
		var k string
		if err := rows.Scan(&tag.ID, &tag.SpaceUUID, &k, &tag.Name); err != nil {
			return nil, err
		}
		tag.Kind = board.TagKind(k)
		out = append(out, tag)
	}
	return out, rows.Err()
}

func (s *Store) DeleteTag(ctx context.Context, spaceUUID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM tags WHERE id = ? AND space_uuid = ?`, id, spaceUUID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return board.ErrTagNotFound
	}
	_, err = s.db.ExecContext(ctx, `DELETE FROM person_tags WHERE tag_id = ?`, id)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `DELETE FROM product_tags WHERE tag_id = ?`, id)
	return err
}

// =============================================================================
// PEOPLE
// =============================================================================

func (s *Store) SavePerson(ctx context.Context, person *board.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if person.ID == 0 {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO people (space_uuid, name, external_id, role_id, notes, is_new, new_since, archive_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			person.SpaceUUID, person.Name, person.ExternalID,
			int64PtrToSQL(person.RoleID), person.Notes, person.New,
			datePtrToSQL(person.NewSince), datePtrToSQL(person.ArchiveDate))
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		person.ID = id
	} else {
		_, err := tx.ExecContext(ctx, `
			UPDATE people SET name = ?, external_id = ?, role_id = ?, notes = ?,
				is_new = ?, new_since = ?, archive_date = ?
			WHERE id = ? AND space_uuid = ?`,
			person.Name, person.ExternalID, int64PtrToSQL(person.RoleID),
			person.Notes, person.New, datePtrToSQL(person.NewSince),
			datePtrToSQL(person.ArchiveDate), person.ID, person.SpaceUUID)
		if err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM person_tags WHERE person_id = ?`, person.ID); err != nil {
		return err
	}
	for _, tagID := range person.TagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO person_tags (person_id, tag_id) VALUES (?, ?)`,
			person.ID, tagID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetPerson(ctx context.Context, spaceUUID string, id int64) (*board.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, space_uuid, name, external_id, role_id, notes, is_new, new_since, archive_date
		FROM people WHERE id = ? AND space_uuid = ?`, id, spaceUUID)

	person, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.loadPersonTags(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

func (s *Store) ListPeople(ctx context.Context, spaceUUID string) ([]board.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, space_uuid, name, external_id, role_id, notes, is_new, new_since, archive_date
		FROM people WHERE space_uuid = ? ORDER BY id`, spaceUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []board.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *person)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := s.loadPersonTags(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Store) DeletePerson(ctx context.Context, spaceUUID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM people WHERE id = ? AND space_uuid = ?`, id, spaceUUID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return board.ErrPersonNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM person_tags WHERE person_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM assignments WHERE person_id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*board.Person, error) {
	var person board.Person
	var externalID, notes sql.NullString
	var roleID sql.NullInt64
	var newSince, archiveDate sql.NullString

	if err := row.Scan(&person.ID, &person.SpaceUUID, &person.Name,
		&externalID, &roleID, &notes, &person.New, &newSince, &archiveDate); err != nil {
		return nil, err
	}
	person.ExternalID = externalID.String
	person.Notes = notes.String
	person.RoleID = int64PtrFromSQL(roleID)

	var err error
	if person.NewSince, err = datePtrFromSQL(newSince); err != nil {
		return nil, err
	}
	if person.ArchiveDate, err = datePtrFromSQL(archiveDate); err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *Store) loadPersonTags(ctx context.Context, person *board.Person) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag_id FROM person_tags WHERE person_id = ? ORDER BY tag_id`, person.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	person.TagIDs = nil
	for rows.Next() {
		var tagID int64
		if err := rows.Scan(&tagID); err != nil {
			return err
		}
		person.TagIDs = append(person.TagIDs, tagID)
	}
	return rows.Err()
}

// =============================================================================
// PRODUCTS
// =============================================================================

func (s *Store) SaveProduct(ctx context.Context, product *board.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if product.ID == 0 {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO products (space_uuid, name, location_id, start_date, end_date)
			VALUES (?, ?, ?, ?, ?)`,
			product.SpaceUUID, product.Name, int64PtrToSQL(product.LocationID),
			dateToSQL(product.StartDate), datePtrToSQL(product.EndDate))
		if err != nil {
			return mapConstraint(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		product.ID = id
	} else {
		_, err := tx.ExecContext(ctx, `
			UPDATE products SET name = ?, location_id = ?, start_date = ?, end_date = ?
			WHERE id = ? AND space_uuid = ?`,
			product.Name, int64PtrToSQL(product.LocationID),
			dateToSQL(product.StartDate), datePtrToSQL(product.EndDate),
			product.ID, product.SpaceUUID)
		if err != nil {
			return mapConstraint(err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM product_tags WHERE product_id = ?`, product.ID); err != nil {
		return err
	}
	for _, tagID := range product.TagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO product_tags (product_id, tag_id) VALUES (?, ?)`,
			product.ID, tagID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetProduct(ctx context.Context, spaceUUID string, id int64) (*board.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, space_uuid, name, location_id, start_date, end_date
		FROM products WHERE id = ? AND space_uuid = ?`, id, spaceUUID)
	return s.scanProductWithTags(ctx, row)
}

func (s *Store) GetProductByName(ctx context.Context, spaceUUID, name string) (*board.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, space_uuid, name, location_id, start_date, end_date
		FROM products WHERE space_uuid = ? AND name = ?`, spaceUUID, name)
	return s.scanProductWithTags(ctx, row)
}

func (s *Store) scanProductWithTags(ctx context.Context, row rowScanner) (*board.Product, error) {
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.loadProductTags(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Store) ListProducts(ctx context.Context, spaceUUID string) ([]board.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, space_uuid, name, location_id, start_date, end_date
		FROM products WHERE space_uuid = ? ORDER BY id`, spaceUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []board.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := s.loadProductTags(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Store) DeleteProduct(ctx context.Context, spaceUUID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM products WHERE id = ? AND space_uuid = ?`, id, spaceUUID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return board.ErrProductNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM product_tags WHERE product_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM assignments WHERE product_id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func scanProduct(row rowScanner) (*board.Product, error) {
	var product board.Product
	var locationID sql.NullInt64
	var startDate string
	var endDate sql.NullString

	if err := row.Scan(&product.ID, &product.SpaceUUID, &product.Name,
		&locationID, &startDate, &endDate); err != nil {
		return nil, err
	}
	product.LocationID = int64PtrFromSQL(locationID)

	var err error
	if product.StartDate, err = dateFromSQL(startDate); err != nil {
		return nil, err
	}
	if product.EndDate, err = datePtrFromSQL(endDate); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) loadProductTags(ctx context.Context, product *board.Product) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag_id FROM product_tags WHERE product_id = ? ORDER BY tag_id`, product.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	product.TagIDs = nil
	for rows.Next() {
		var tagID int64
		if err := rows.Scan(&tagID); err != nil {
			return err
		}
		product.TagIDs = append(product.TagIDs, tagID)
	}
	return rows.Err()
}

// =============================================================================
// ASSIGNMENTS
// =============================================================================

func (s *Store) SaveAssignment(ctx context.Context, assignment *board.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if assignment.ID == 0 {
		res, err := s.db.ExecContext(ctx, `
			INSERT INTO assignments (space_uuid, person_id, product_id, start_date, end_date, placeholder)
			VALUES (?, ?, ?, ?, ?, ?)`,
			assignment.SpaceUUID, assignment.PersonID, assignment.ProductID,
			dateToSQL(assignment.StartDate), datePtrToSQL(assignment.EndDate),
			assignment.Placeholder)
		if err != nil {
			return mapConstraint(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		assignment.ID = id
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE assignments SET person_id = ?, product_id = ?, start_date = ?, end_date = ?, placeholder = ?
		WHERE id = ? AND space_uuid = ?`,
		assignment.PersonID, assignment.ProductID, dateToSQL(assignment.StartDate),
		datePtrToSQL(assignment.EndDate), assignment.Placeholder,
		assignment.ID, assignment.SpaceUUID)
	return mapConstraint(err)
}

func (s *Store) DeleteAssignment(ctx context.Context, spaceUUID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM assignments WHERE id = ? AND space_uuid = ?`, id, spaceUUID)
	return err
}

func (s *Store) ListAssignmentsByPerson(ctx context.Context, spaceUUID string, personID int64) ([]board.Assignment, error) {
	return s.queryAssignments(ctx, `
		SELECT id, space_uuid, person_id, product_id, start_date, end_date, placeholder
		FROM assignments WHERE space_uuid = ? AND person_id = ? ORDER BY id`,
		spaceUUID, personID)
}

func (s *Store) ListAssignments(ctx context.Context, spaceUUID string) ([]board.Assignment, error) {
	return s.queryAssignments(ctx, `
		SELECT id, space_uuid, person_id, product_id, start_date, end_date, placeholder
		FROM assignments WHERE space_uuid = ? ORDER BY id`,
		spaceUUID)
}

func (s *Store) queryAssignments(ctx context.Context, query string, args ...any) ([]board.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []board.Assignment
	for rows.Next() {
		var a board.Assignment
		var startDate string
		var endDate sql.NullString
		if err := rows.Scan(&a.ID, &a.SpaceUUID, &a.PersonID, &a.ProductID,
			&startDate, &endDate, &a.Placeholder); err != nil {
			return nil, err
		}
		if a.StartDate, err = dateFromSQL(startDate); err != nil {
			return nil, err
		}
		if a.EndDate, err = datePtrFromSQL(endDate); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
