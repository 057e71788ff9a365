package restapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	eventStore "crudtask/internal/adapters/storage/event"
	"crudtask/internal/domain/event"
	"crudtask/internal/domain/ident"
)

// handleEvents serves the /events collection. The store already returns
// events ordered by date ascending, so the ?_sort/_order hints the client
// sends are satisfied without inspecting them.
func (h *handlers) handleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		events, err := h.stores.EventStore.List(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, events)
	case http.MethodPost:
		var entity event.Event
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if entity.ID.IsZero() {
			entity.ID = ident.ID(uuid.NewString())
		}
		if err := h.stores.EventStore.Save(r.Context(), entity); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entity)
	default:
		methodNotAllowed(w)
	}
}

// handleEventByID serves /events/{id}.
func (h *handlers) handleEventByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/events/")
	if id == "" || strings.Contains(id, "/") {
		writeMessage(w, http.StatusNotFound, "Not found")
		return
	}

	entity, err := h.stores.EventStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Not found")
		} else {
			internalError(w, err)
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, entity)
	case http.MethodPatch:
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		entity.ID = ident.ID(id)
		if err := h.stores.EventStore.Save(r.Context(), entity); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entity)
	case http.MethodDelete:
		if err := h.stores.EventStore.Delete(r.Context(), id); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		methodNotAllowed(w)
	}
}

// handleRegistrations serves the /registrations collection.
// GET supports exact-match ?eventId= and ?userId= filters, which the client
// uses for its duplicate-registration check.
func (h *handlers) handleRegistrations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		regs, err := h.stores.RegistrationStore.List(r.Context(), eventStore.RegistrationFilter{
			EventID: r.URL.Query().Get("eventId"),
			UserID:  r.URL.Query().Get("userId"),
		})
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, regs)
	case http.MethodPost:
		var entity event.Registration
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if entity.ID.IsZero() {
			entity.ID = ident.ID(uuid.NewString())
		}
		if err := h.stores.RegistrationStore.Save(r.Context(), entity); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entity)
	default:
		methodNotAllowed(w)
	}
}
