package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"crudtask/internal/domain/event"
	"crudtask/internal/domain/ident"
)

// ListEvents retrieves all events ordered by date ascending. The sort query
// parameters are passed through for backends that honor them; the result is
// re-sorted client-side regardless.
func (c *Client) ListEvents(ctx context.Context) ([]event.Event, error) {
	var events []event.Event
	if err := c.get(ctx, "/events?_sort=date&_order=asc", &events); err != nil {
		return nil, err
	}
	return event.SortByDateAsc(events), nil
}

// GetEvent retrieves a single event by id.
// PRE: id is non-empty
// POST: A missing event maps to event.ErrNotFound
func (c *Client) GetEvent(ctx context.Context, id ident.ID) (event.Event, error) {
	var e event.Event
	if err := c.get(ctx, "/events/"+url.PathEscape(id.String()), &e); err != nil {
		if apiErr, ok := err.(*Error); ok && apiErr.IsNotFound() {
			return event.Event{}, event.ErrNotFound
		}
		return event.Event{}, err
	}
	return e, nil
}

// CreateEvent creates an event record with a zero registration count and
// creation timestamps.
// PRE: e has been validated
func (c *Client) CreateEvent(ctx context.Context, e event.Event) (event.Event, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	e.RegisteredCount = 0
	e.CreatedAt = now
	e.UpdatedAt = now

	var created event.Event
	err := c.post(ctx, "/events", e, &created)
	return created, err
}

// PatchEvent applies a partial update to an event, stamping UpdatedAt.
// PRE: id exists
func (c *Client) PatchEvent(ctx context.Context, id ident.ID, p event.Patch) (event.Event, error) {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	var updated event.Event
	err := c.patch(ctx, "/events/"+url.PathEscape(id.String()), p, &updated)
	return updated, err
}

// DeleteEvent removes an event record.
// PRE: id is non-empty
func (c *Client) DeleteEvent(ctx context.Context, id ident.ID) error {
	return c.delete(ctx, "/events/"+url.PathEscape(id.String()))
}

// ListRegistrations retrieves registrations for an (event, user) pair. An
// empty eventID matches every event, which is how a user's full registration
// list is fetched.
// PRE: userID is non-empty
func (c *Client) ListRegistrations(ctx context.Context, eventID, userID ident.ID) ([]event.Registration, error) {
	var regs []event.Registration
	path := fmt.Sprintf("/registrations?eventId=%s&userId=%s",
		url.QueryEscape(eventID.String()), url.QueryEscape(userID.String()))
	err := c.get(ctx, path, &regs)
	return regs, err
}

// CreateRegistration creates a registration record with a creation timestamp.
// PRE: the capacity and duplicate checks have already passed
func (c *Client) CreateRegistration(ctx context.Context, eventID, userID ident.ID) (event.Registration, error) {
	reg := event.Registration{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	var created event.Registration
	err := c.post(ctx, "/registrations", reg, &created)
	return created, err
}

// IncrementRegisteredCount bumps an event's registration counter.
// PRE: e is the freshly fetched event
// POST: registeredCount is e.RegisteredCount+1 on the backend
func (c *Client) IncrementRegisteredCount(ctx context.Context, e event.Event) error {
	body := struct {
		RegisteredCount int    `json:"registeredCount"`
		UpdatedAt       string `json:"updatedAt"`
	}{
		RegisteredCount: e.RegisteredCount + 1,
		UpdatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	return c.patch(ctx, "/events/"+url.PathEscape(e.ID.String()), body, nil)
}
