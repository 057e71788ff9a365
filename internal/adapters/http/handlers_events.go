package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"crudtask/internal/adapters/api"
	"crudtask/internal/adapters/http/middleware"
	"crudtask/internal/application/orchestrators"
	"crudtask/internal/application/projections"
	"crudtask/internal/domain/event"
	"crudtask/internal/domain/ident"
)

// handleUserEvents lists events soonest first with the viewer's registration
// status. Registration failures come back through the ?error= banner.
func handleUserEvents(w http.ResponseWriter, r *http.Request) error {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	rows, err := projections.QueryUserEvents(r.Context(), ident.ID(sess.UserID),
		projections.UserEventsDeps{Events: backend})
	if err != nil {
		return err
	}

	renderView(w, r, "user_events.html", map[string]any{
		"Title":  "Events",
		"Rows":   rows,
		"Banner": r.URL.Query().Get("error"),
	})
	return nil
}

// handleUserEventRegister handles POST /user/events/register.
func handleUserEventRegister(w http.ResponseWriter, r *http.Request) error {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return nil
	}

	eventID := ident.ID(r.FormValue("eventId"))
	err := orchestrators.ExecuteRegisterToEvent(r.Context(), eventID, ident.ID(sess.UserID),
		orchestrators.RegisterToEventDeps{Events: backend})
	if err != nil {
		switch {
		case errors.Is(err, event.ErrNotFound),
			errors.Is(err, event.ErrFull),
			errors.Is(err, event.ErrAlreadyRegistered):
			http.Redirect(w, r, "/user/events?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return nil
		}
		return err
	}

	http.Redirect(w, r, "/user/events", http.StatusSeeOther)
	return nil
}

// handleAdminEvents renders the event management table with an inline edit
// slot and the creation form.
func handleAdminEvents(w http.ResponseWriter, r *http.Request) error {
	events, err := backend.ListEvents(r.Context())
	if err != nil {
		return err
	}

	renderView(w, r, "admin_events.html", map[string]any{
		"Title":  "Events",
		"Events": events,
		"EditID": r.URL.Query().Get("edit"),
		"Banner": r.URL.Query().Get("error"),
	})
	return nil
}

// eventFromForm builds an event from the admin form fields.
func eventFromForm(r *http.Request) event.Event {
	capacity, _ := strconv.Atoi(r.FormValue("capacity"))
	return event.Event{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
		Location:    r.FormValue("location"),
		Capacity:    capacity,
	}
}

// redirectEventError sends the admin back to the table with a banner.
func redirectEventError(w http.ResponseWriter, r *http.Request, err error) {
	http.Redirect(w, r, "/admin/events?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
}

// handleAdminEventCreate handles POST /admin/events/create.
func handleAdminEventCreate(w http.ResponseWriter, r *http.Request) error {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return nil
	}

	e := eventFromForm(r)
	if err := e.Validate(); err != nil {
		redirectEventError(w, r, err)
		return nil
	}

	if _, err := backend.CreateEvent(r.Context(), e); err != nil {
		return err
	}
	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
	return nil
}

// handleAdminEventUpdate handles POST /admin/events/update (the inline edit save).
func handleAdminEventUpdate(w http.ResponseWriter, r *http.Request) error {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return nil
	}

	e := eventFromForm(r)
	if err := e.Validate(); err != nil {
		redirectEventError(w, r, err)
		return nil
	}

	id := ident.ID(r.FormValue("id"))
	patch := event.Patch{
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Capacity:    e.Capacity,
	}
	if _, err := backend.PatchEvent(r.Context(), id, patch); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			redirectEventError(w, r, event.ErrNotFound)
			return nil
		}
		return err
	}
	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
	return nil
}

// handleAdminEventDelete handles POST /admin/events/delete.
func handleAdminEventDelete(w http.ResponseWriter, r *http.Request) error {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return nil
	}

	id := ident.ID(r.FormValue("id"))
	if err := backend.DeleteEvent(r.Context(), id); err != nil {
		return err
	}
	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
	return nil
}
