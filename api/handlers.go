/*
handlers.go - HTTP API handlers for spaces, people, products, and tags

PURPOSE:
  Exposes the board engine via REST. Handles HTTP request/response, JSON
  serialization, and delegates to domain logic.

ENDPOINTS (see server.go for the full route table):
  Spaces:
    POST   /api/spaces                       Create space (+ unassigned product)
    GET    /api/spaces/{uuid}                Get space

  Products:
    GET    /api/spaces/{uuid}/products       Board snapshot as of requestedDate
    POST   /api/spaces/{uuid}/products       Create product
    PUT    /api/spaces/{uuid}/products/{id}  Update product
    DELETE /api/spaces/{uuid}/products/{id}  Delete product (not the sentinel)

  People:
    GET    /api/spaces/{uuid}/people         List people (role/personTag filters)
    POST   /api/spaces/{uuid}/people         Create person
    PUT    /api/spaces/{uuid}/people/{id}    Update person
    DELETE /api/spaces/{uuid}/people/{id}    Delete person (cascades assignments)

  Tags (roles, person-tags, product-tags, locations):
    GET/POST under the collection, PUT/DELETE under /{tagId}

ERROR HANDLING:
  Domain errors map to HTTP statuses:
  - 400: Validation errors, unknown space (the client redirects on these)
  - 404: Missing person/product/tag inside a valid space
  - 409: Name conflicts (duplicate product or tag name)
  - 500: Everything else
*/
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fordlabs/peoplemover/board"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store      board.Store
	Snapshots  *board.SnapshotBuilder
	Reconciler *board.Reconciler
}

// NewHandler creates a new handler backed by the given store.
func NewHandler(store board.Store) *Handler {
	return &Handler{
		Store:      store,
		Snapshots:  &board.SnapshotBuilder{Store: store},
		Reconciler: &board.Reconciler{Store: store},
	}
}

// =============================================================================
// SPACE HANDLERS
// =============================================================================

// CreateSpace creates a space together with its sentinel unassigned product.
func (h *Handler) CreateSpace(w http.ResponseWriter, r *http.Request) {
	var req CreateSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Space name is required", nil)
		return
	}

	space := board.Space{
		UUID:      uuid.NewString(),
		Name:      req.Name,
		CreatedAt: nowUTC(),
	}
	if err := h.Store.SaveSpace(r.Context(), space); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create space", err)
		return
	}

	unassigned := board.Product{
		SpaceUUID: space.UUID,
		Name:      board.UnassignedProductName,
		StartDate: board.Today(),
	}
	if err := h.Store.SaveProduct(r.Context(), &unassigned); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create space", err)
		return
	}

	writeJSON(w, http.StatusCreated, toSpaceDTO(space))
}

// GetSpace returns a single space. An unknown uuid is a 400, which clients
// treat as "redirect to the error page".
func (h *Handler) GetSpace(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	writeJSON(w, http.StatusOK, toSpaceDTO(*space))
}

// space resolves the space from the URL, writing the error response itself
// when the space doesn't exist.
func (h *Handler) space(w http.ResponseWriter, r *http.Request) *board.Space {
	spaceUUID := chi.URLParam(r, "spaceUUID")
	space, err := h.Store.GetSpace(r.Context(), spaceUUID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up space", err)
		return nil
	}
	if space == nil {
		writeError(w, http.StatusBadRequest, "Invalid space", board.ErrSpaceNotFound)
		return nil
	}
	return space
}

// =============================================================================
// PRODUCT HANDLERS
// =============================================================================

// ListProducts returns the board snapshot: all products of the space with
// the assignments active on requestedDate nested inside.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	onDate, ok := h.requestedDate(w, r)
	if !ok {
		return
	}

	products, err := h.Snapshots.ProductsAsOf(r.Context(), space.UUID, onDate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list products", err)
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p, onDate))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateProduct creates a product in a space.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	product, ok := h.decodeProduct(w, r, space.UUID, 0)
	if !ok {
		return
	}
	if err := h.Store.SaveProduct(r.Context(), product); err != nil {
		writeDomainError(w, "Failed to create product", err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductDTO(*product, board.Today()))
}

// UpdateProduct updates an existing product.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	id, ok := h.pathID(w, r, "productID")
	if !ok {
		return
	}
	existing, err := h.Store.GetProduct(r.Context(), space.UUID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up product", err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Product not found", board.ErrProductNotFound)
		return
	}

	product, ok := h.decodeProduct(w, r, space.UUID, id)
	if !ok {
		return
	}
	if err := h.Store.SaveProduct(r.Context(), product); err != nil {
		writeDomainError(w, "Failed to update product", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductDTO(*product, board.Today()))
}

// DeleteProduct removes a product and its assignments. The sentinel
// unassigned product cannot be deleted.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	id, ok := h.pathID(w, r, "productID")
	if !ok {
		return
	}
	product, err := h.Store.GetProduct(r.Context(), space.UUID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up product", err)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "Product not found", board.ErrProductNotFound)
		return
	}
	if board.IsUnassignedProduct(*product) {
		writeError(w, http.StatusBadRequest, "The unassigned product cannot be deleted", nil)
		return
	}

	if err := h.Store.DeleteProduct(r.Context(), space.UUID, id); err != nil {
		writeDomainError(w, "Failed to delete product", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeProduct(w http.ResponseWriter, r *http.Request, spaceUUID string, id int64) (*board.Product, bool) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return nil, false
	}

	start := board.Today()
	if req.StartDate != "" {
		var err error
		if start, err = board.ParseDate(req.StartDate); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid startDate", err)
			return nil, false
		}
	}
	end, err := parseDatePtr(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid endDate", err)
		return nil, false
	}

	product := &board.Product{
		ID:         id,
		SpaceUUID:  spaceUUID,
		Name:       req.Name,
		LocationID: req.LocationID,
		TagIDs:     req.TagIDs,
		StartDate:  start,
		EndDate:    end,
	}
	if err := board.ValidateProduct(*product); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), err)
		return nil, false
	}
	return product, true
}

// =============================================================================
// PEOPLE HANDLERS
// =============================================================================

// ListPeople lists a space's people. Repeated role= and personTag= query
// parameters narrow the result; empty filter sets match everyone.
func (h *Handler) ListPeople(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}

	people, err := h.Store.ListPeople(r.Context(), space.UUID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list people", err)
		return
	}

	roleFilters := r.URL.Query()["role"]
	tagFilters := r.URL.Query()["personTag"]

	var tagNames map[int64]string
	if len(roleFilters) > 0 || len(tagFilters) > 0 {
		if tagNames, err = h.Snapshots.TagNames(r.Context(), space.UUID); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to resolve tags", err)
			return
		}
	}

	dtos := make([]PersonDTO, 0, len(people))
	for _, p := range people {
		if !board.MatchesFilters(p, roleFilters, tagFilters, tagNames) {
			continue
		}
		dtos = append(dtos, toPersonDTO(p))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreatePerson creates a person in a space.
func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	person, ok := h.decodePerson(w, r, space.UUID, 0)
	if !ok {
		return
	}
	if err := h.Store.SavePerson(r.Context(), person); err != nil {
		writeDomainError(w, "Failed to create person", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPersonDTO(*person))
}

// UpdatePerson updates an existing person.
func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	id, ok := h.pathID(w, r, "personID")
	if !ok {
		return
	}
	existing, err := h.Store.GetPerson(r.Context(), space.UUID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up person", err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Person not found", board.ErrPersonNotFound)
		return
	}

	person, ok := h.decodePerson(w, r, space.UUID, id)
	if !ok {
		return
	}
	if err := h.Store.SavePerson(r.Context(), person); err != nil {
		writeDomainError(w, "Failed to update person", err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonDTO(*person))
}

// DeletePerson removes a person; the store cascades their assignments.
func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	id, ok := h.pathID(w, r, "personID")
	if !ok {
		return
	}
	if err := h.Store.DeletePerson(r.Context(), space.UUID, id); err != nil {
		writeDomainError(w, "Failed to delete person", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodePerson(w http.ResponseWriter, r *http.Request, spaceUUID string, id int64) (*board.Person, bool) {
	var req PersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return nil, false
	}

	newSince, err := parseDatePtr(req.NewSince)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid newSince", err)
		return nil, false
	}
	archiveDate, err := parseDatePtr(req.ArchiveDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid archiveDate", err)
		return nil, false
	}

	person := &board.Person{
		ID:          id,
		SpaceUUID:   spaceUUID,
		Name:        req.Name,
		ExternalID:  req.ExternalID,
		RoleID:      req.RoleID,
		Notes:       req.Notes,
		New:         req.New,
		NewSince:    newSince,
		TagIDs:      req.TagIDs,
		ArchiveDate: archiveDate,
	}
	if err := board.ValidatePerson(*person); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), err)
		return nil, false
	}
	return person, true
}

// =============================================================================
// TAG HANDLERS - shared across roles, person tags, product tags, locations
// =============================================================================

func (h *Handler) ListTags(kind board.TagKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		space := h.space(w, r)
		if space == nil {
			return
		}
		tags, err := h.Store.ListTags(r.Context(), space.UUID, kind)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list tags", err)
			return
		}
		dtos := make([]TagDTO, 0, len(tags))
		for _, t := range tags {
			dtos = append(dtos, toTagDTO(t))
		}
		writeJSON(w, http.StatusOK, dtos)
	}
}

func (h *Handler) CreateTag(kind board.TagKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		space := h.space(w, r)
		if space == nil {
			return
		}
		var req TagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		tag := board.Tag{SpaceUUID: space.UUID, Kind: kind, Name: req.Name}
		if err := board.ValidateTag(tag); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), err)
			return
		}
		if err := h.Store.SaveTag(r.Context(), &tag); err != nil {
			writeDomainError(w, "Failed to create tag", err)
			return
		}
		writeJSON(w, http.StatusCreated, toTagDTO(tag))
	}
}

func (h *Handler) UpdateTag(kind board.TagKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		space := h.space(w, r)
		if space == nil {
			return
		}
		id, ok := h.pathID(w, r, "tagID")
		if !ok {
			return
		}
		existing, err := h.Store.GetTag(r.Context(), space.UUID, id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to look up tag", err)
			return
		}
		if existing == nil || existing.Kind != kind {
			writeError(w, http.StatusNotFound, "Tag not found", board.ErrTagNotFound)
			return
		}

		var req TagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		tag := board.Tag{ID: id, SpaceUUID: space.UUID, Kind: kind, Name: req.Name}
		if err := board.ValidateTag(tag); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), err)
			return
		}
		if err := h.Store.SaveTag(r.Context(), &tag); err != nil {
			writeDomainError(w, "Failed to update tag", err)
			return
		}
		writeJSON(w, http.StatusOK, toTagDTO(tag))
	}
}

func (h *Handler) DeleteTag(kind board.TagKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		space := h.space(w, r)
		if space == nil {
			return
		}
		id, ok := h.pathID(w, r, "tagID")
		if !ok {
			return
		}
		existing, err := h.Store.GetTag(r.Context(), space.UUID, id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to look up tag", err)
			return
		}
		if existing == nil || existing.Kind != kind {
			writeError(w, http.StatusNotFound, "Tag not found", board.ErrTagNotFound)
			return
		}
		if err := h.Store.DeleteTag(r.Context(), space.UUID, id); err != nil {
			writeDomainError(w, "Failed to delete tag", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// requestedDate parses the requestedDate query parameter, defaulting to
// today when absent.
func (h *Handler) requestedDate(w http.ResponseWriter, r *http.Request) (board.Date, bool) {
	raw := r.URL.Query().Get("requestedDate")
	if raw == "" {
		return board.Today(), true
	}
	d, err := board.ParseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid requestedDate", err)
		return board.Date{}, false
	}
	return d, true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id", err)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := errorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps domain errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case board.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error(), err)
	case board.IsConflict(err):
		writeError(w, http.StatusConflict, "Name already in use", err)
	case board.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
