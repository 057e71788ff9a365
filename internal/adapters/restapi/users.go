package restapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	userStore "crudtask/internal/adapters/storage/user"
	"crudtask/internal/domain/ident"
	"crudtask/internal/domain/user"
)

// handleUsers serves the /users collection.
// GET supports an exact-match ?email= filter. POST assigns a fresh id when
// the payload carries none.
func (h *handlers) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		users, err := h.stores.UserStore.List(r.Context(), userStore.ListFilter{
			Email: r.URL.Query().Get("email"),
		})
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	case http.MethodPost:
		var entity user.User
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if entity.ID.IsZero() {
			entity.ID = ident.ID(uuid.NewString())
		}
		if err := h.stores.UserStore.Save(r.Context(), entity); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entity)
	default:
		methodNotAllowed(w)
	}
}

// handleUserByID serves /users/{id}.
func (h *handlers) handleUserByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/users/")
	if id == "" || strings.Contains(id, "/") {
		writeMessage(w, http.StatusNotFound, "Not found")
		return
	}

	entity, err := h.stores.UserStore.GetByID(r.Context(), id)
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
		// json-server merge semantics: decode the patch over the stored
		// entity so absent fields keep their values.
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		entity.ID = ident.ID(id)
		if err := h.stores.UserStore.Save(r.Context(), entity); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entity)
	case http.MethodDelete:
		if err := h.stores.UserStore.Delete(r.Context(), id); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		methodNotAllowed(w)
	}
}
