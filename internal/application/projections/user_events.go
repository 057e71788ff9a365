package projections

import (
	"context"

	"crudtask/internal/domain/event"
	"crudtask/internal/domain/ident"
)

// EventRow pairs an event with the viewer's registration status.
type EventRow struct {
	event.Event
	Registered bool
	SeatsLeft  int
}

// UserEventsDeps holds dependencies for QueryUserEvents.
type UserEventsDeps struct {
	Events EventAPI
}

// QueryUserEvents lists all events soonest first, marking the ones the
// viewer has already joined.
// PRE: userID is non-empty
// POST: Rows sorted by date ascending; Registered is true for joined events
func QueryUserEvents(ctx context.Context, userID ident.ID, deps UserEventsDeps) ([]EventRow, error) {
	events, err := deps.Events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	mine, err := deps.Events.ListRegistrations(ctx, "", userID)
	if err != nil {
		return nil, err
	}

	joined := make(map[string]bool, len(mine))
	for _, reg := range mine {
		joined[reg.EventID.String()] = true
	}

	rows := make([]EventRow, 0, len(events))
	for _, e := range event.SortByDateAsc(events) {
		rows = append(rows, EventRow{
			Event:      e,
			Registered: joined[e.ID.String()],
			SeatsLeft:  e.SeatsLeft(),
		})
	}
	return rows, nil
}
