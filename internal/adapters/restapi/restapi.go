// Package restapi is a development stand-in for the task-management REST
// backend. It implements the wire contract the client is written against
// (flat JSON resources, query filters, PATCH merges, {"message"} error
// envelope) on top of SQLite, so the app runs end-to-end without an
// external service.
package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	eventStore "crudtask/internal/adapters/storage/event"
	taskStore "crudtask/internal/adapters/storage/task"
	userStore "crudtask/internal/adapters/storage/user"
)

// Stores holds all storage dependencies of the stub backend.
type Stores struct {
	UserStore         userStore.Store
	TaskStore         taskStore.Store
	EventStore        eventStore.Store
	RegistrationStore eventStore.RegistrationStore
}

// NewMux wires the stub backend's HTTP handlers.
func NewMux(s *Stores) http.Handler {
	h := &handlers{stores: s}

	mux := http.NewServeMux()
	mux.HandleFunc("/users", h.handleUsers)
	mux.HandleFunc("/users/", h.handleUserByID)
	mux.HandleFunc("/tasks", h.handleTasks)
	mux.HandleFunc("/tasks/", h.handleTaskByID)
	mux.HandleFunc("/events", h.handleEvents)
	mux.HandleFunc("/events/", h.handleEventByID)
	mux.HandleFunc("/registrations", h.handleRegistrations)
	return mux
}

type handlers struct {
	stores *Stores
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode_response_failed", "error", err)
	}
}

// writeMessage writes the {"message"} error envelope the client expects.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// internalError logs the real error and returns a generic message.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	writeMessage(w, http.StatusInternalServerError, "internal server error")
}

// methodNotAllowed rejects unsupported methods on a resource.
func methodNotAllowed(w http.ResponseWriter) {
	writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
}
