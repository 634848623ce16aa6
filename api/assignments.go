/*
assignments.go - Assignment submission, history, and reassignment endpoints

PURPOSE:
  The write path of the board: a client submits a person's full product
  selection as of a date and the reconciler makes storage match it. The two
  read paths here are derived views over the same assignment records:
  per-person history and the daily reassignment digest.
*/
package api

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/fordlabs/peoplemover/board"
	"github.com/fordlabs/peoplemover/metrics"
)

// =============================================================================
// ASSIGNMENT SUBMISSION
// =============================================================================

// CreateAssignments replaces a person's product selection as of the
// requested date. Submitting the current selection again performs no writes
// and returns the assignments already in effect.
func (h *Handler) CreateAssignments(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	personID, ok := h.pathID(w, r, "personID")
	if !ok {
		return
	}
	person, err := h.Store.GetPerson(r.Context(), space.UUID, personID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up person", err)
		return
	}
	if person == nil {
		writeError(w, http.StatusNotFound, "Person not found", board.ErrPersonNotFound)
		return
	}

	var req CreateAssignmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	effective := board.Today()
	if req.RequestedDate != "" {
		if effective, err = board.ParseDate(req.RequestedDate); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid requestedDate", err)
			return
		}
	}

	desired, ok := h.desiredSelections(w, r, space.UUID, personID, req.Products)
	if !ok {
		return
	}

	active, wrote, err := h.Reconciler.Apply(r.Context(), space.UUID, *person, effective, desired)
	if err != nil {
		writeDomainError(w, "Failed to save assignments", err)
		return
	}
	if !wrote {
		metrics.AssignmentWritesSkipped.Inc()
	}

	dtos := make([]AssignmentDTO, 0, len(active))
	for _, a := range active {
		dtos = append(dtos, toAssignmentDTO(a, false))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// desiredSelections validates the submitted product ids and resolves each
// selection's placeholder flag. A nil placeholder in the request keeps
// whatever the person's open assignment on that product already has.
func (h *Handler) desiredSelections(w http.ResponseWriter, r *http.Request, spaceUUID string, personID int64, selections []SelectionRequest) ([]board.ProductSelection, bool) {
	var selectedIDs []int64
	for _, sel := range selections {
		product, err := h.Store.GetProduct(r.Context(), spaceUUID, sel.ProductID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to look up product", err)
			return nil, false
		}
		if product == nil {
			writeError(w, http.StatusNotFound, "Product not found", board.ErrProductNotFound)
			return nil, false
		}
		selectedIDs = append(selectedIDs, sel.ProductID)
	}

	existing, err := h.Store.ListAssignmentsByPerson(r.Context(), spaceUUID, personID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up assignments", err)
		return nil, false
	}
	var open []board.Assignment
	for _, a := range existing {
		if a.IsOpen() {
			open = append(open, a)
		}
	}

	desired := board.DesiredAssignments(selectedIDs, open)
	for i, sel := range selections {
		if sel.Placeholder != nil {
			desired[i].Placeholder = *sel.Placeholder
		}
	}
	return desired, true
}

// =============================================================================
// ASSIGNMENT HISTORY
// =============================================================================

// GetAssignmentHistory returns a person's assignments as rendered history
// entries, newest first, future-dated assignments excluded.
func (h *Handler) GetAssignmentHistory(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	personID, ok := h.pathID(w, r, "personID")
	if !ok {
		return
	}
	person, err := h.Store.GetPerson(r.Context(), space.UUID, personID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up person", err)
		return
	}
	if person == nil {
		writeError(w, http.StatusNotFound, "Person not found", board.ErrPersonNotFound)
		return
	}

	assignments, err := h.Store.ListAssignmentsByPerson(r.Context(), space.UUID, personID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up assignments", err)
		return
	}

	products, err := h.Store.ListProducts(r.Context(), space.UUID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up products", err)
		return
	}

	entries := board.BuildHistory(assignments, products, board.Today())
	slices.SortStableFunc(entries, func(a, b board.HistoryEntry) int {
		switch {
		case a.StartDate.After(b.StartDate):
			return -1
		case b.StartDate.After(a.StartDate):
			return 1
		default:
			return 0
		}
	})

	dtos := make([]HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, toHistoryEntryDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// REASSIGNMENT DIGEST
// =============================================================================

// GetReassignments diffs the board snapshot of the day before the requested
// date against the snapshot of the requested date and returns what changed.
func (h *Handler) GetReassignments(w http.ResponseWriter, r *http.Request) {
	space := h.space(w, r)
	if space == nil {
		return
	}
	onDate, ok := h.requestedDate(w, r)
	if !ok {
		return
	}

	before, err := h.Snapshots.ProductsAsOf(r.Context(), space.UUID, onDate.AddDays(-1))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build snapshot", err)
		return
	}
	after, err := h.Snapshots.ProductsAsOf(r.Context(), space.UUID, onDate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build snapshot", err)
		return
	}

	changes := board.ComputeReassignments(before, after)
	metrics.ReassignmentsComputed.Add(float64(len(changes)))

	dtos := make([]ReassignmentDTO, 0, len(changes))
	for _, c := range changes {
		dtos = append(dtos, toReassignmentDTO(c))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
