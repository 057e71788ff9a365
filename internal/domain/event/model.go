package event

import (
	"errors"
	"sort"
	"strings"

	"crudtask/internal/domain/ident"
)

// Domain errors
var (
	ErrNotFound          = errors.New("Event not found.")
	ErrFull              = errors.New("Event is full.")
	ErrAlreadyRegistered = errors.New("You are already registered for this event.")
	ErrEmptyName         = errors.New("Event name is required.")
	ErrBadCapacity       = errors.New("Capacity must be at least 1.")
)

// Event mirrors a backend event record.
// INVARIANT: 0 <= RegisteredCount <= Capacity, maintained by incrementing on
// each successful registration (best-effort, see RegisterToEvent).
type Event struct {
	ID              ident.ID `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Date            string   `json:"date,omitempty"`
	Location        string   `json:"location,omitempty"`
	Capacity        int      `json:"capacity"`
	RegisteredCount int      `json:"registeredCount"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

// Registration mirrors a backend registration record.
// INVARIANT: at most one registration per (EventID, UserID) pair — checked
// before insert, not enforced atomically.
type Registration struct {
	ID        ident.ID `json:"id"`
	EventID   ident.ID `json:"eventId"`
	UserID    ident.ID `json:"userId"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// Patch is the partial update written by the admin edit form.
type Patch struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	UpdatedAt   string `json:"updatedAt"`
}

// Validate checks if the Event has valid data.
// PRE: Event struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if e.Capacity < 1 {
		return ErrBadCapacity
	}
	return nil
}

// IsFull returns true when no seats remain.
// INVARIANT: Event fields are not mutated
func (e *Event) IsFull() bool {
	return e.RegisteredCount >= e.Capacity
}

// SeatsLeft returns the remaining capacity, never negative.
func (e *Event) SeatsLeft() int {
	left := e.Capacity - e.RegisteredCount
	if left < 0 {
		return 0
	}
	return left
}

// SortByDateAsc returns a copy of the list ordered by date ascending, the
// order the backend uses for the events listing. Dates are compared as the
// wire strings (ISO dates sort lexicographically); empty dates sort first.
func SortByDateAsc(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
