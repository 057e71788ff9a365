package orchestrators

import (
	"context"
	"log/slog"

	"crudtask/internal/domain/event"
	"crudtask/internal/domain/ident"
)

// EventAPIForRegistration defines the backend surface needed by RegisterToEvent.
type EventAPIForRegistration interface {
	GetEvent(ctx context.Context, id ident.ID) (event.Event, error)
	ListRegistrations(ctx context.Context, eventID, userID ident.ID) ([]event.Registration, error)
	CreateRegistration(ctx context.Context, eventID, userID ident.ID) (event.Registration, error)
	IncrementRegisteredCount(ctx context.Context, e event.Event) error
}

// RegisterToEventDeps holds dependencies for RegisterToEvent.
type RegisterToEventDeps struct {
	Events EventAPIForRegistration
}

// ExecuteRegisterToEvent registers a user for an event.
// PRE: eventID and userID are non-empty
// POST: On success a registration exists and the event's counter is one higher
// INVARIANT: The capacity and duplicate checks run before any write; a full
// or already-joined event produces no writes at all
func ExecuteRegisterToEvent(ctx context.Context, eventID, userID ident.ID, deps RegisterToEventDeps) error {
	e, err := deps.Events.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if e.IsFull() {
		return event.ErrFull
	}

	existing, err := deps.Events.ListRegistrations(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return event.ErrAlreadyRegistered
	}

	if _, err := deps.Events.CreateRegistration(ctx, eventID, userID); err != nil {
		return err
	}

	// The counter update is a second write; if it fails the registration
	// still stands and the count lags by one until the next admin edit.
	if err := deps.Events.IncrementRegisteredCount(ctx, e); err != nil {
		slog.Warn("registered_count_update_failed", "event_id", eventID.String(), "error", err.Error())
	}

	slog.Info("event_registration", "event_id", eventID.String(), "user_id", userID.String())
	return nil
}
