package restapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"crudtask/internal/domain/ident"
	"crudtask/internal/domain/task"
)

// handleTasks serves the /tasks collection. The client always fetches the
// full collection and filters on its side, so GET takes no parameters.
func (h *handlers) handleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		tasks, err := h.stores.TaskStore.List(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tasks)
	case http.MethodPost:
		var entity task.Task
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if entity.ID.IsZero() {
			entity.ID = ident.ID(uuid.NewString())
		}
		if err := h.stores.TaskStore.Save(r.Context(), entity); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entity)
	default:
		methodNotAllowed(w)
	}
}

// handleTaskByID serves /tasks/{id}.
func (h *handlers) handleTaskByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/tasks/")
	if id == "" || strings.Contains(id, "/") {
		writeMessage(w, http.StatusNotFound, "Not found")
		return
	}

	entity, err := h.stores.TaskStore.GetByID(r.Context(), id)
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
		if err := h.stores.TaskStore.Save(r.Context(), entity); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entity)
	case http.MethodDelete:
		if err := h.stores.TaskStore.Delete(r.Context(), id); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		methodNotAllowed(w)
	}
}
