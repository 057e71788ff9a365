// Package projections builds read models for the views: task lists with
// search state applied, dashboard stats and event listings with the
// viewer's registration status resolved.
package projections

import (
	"context"

	"crudtask/internal/domain/event"
	"crudtask/internal/domain/ident"
	"crudtask/internal/domain/task"
	"crudtask/internal/domain/user"
)

// TaskAPI is the backend surface shared by the task projections.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]task.Task, error)
}

// UserAPI is the backend surface shared by the user projections.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]user.User, error)
}

// EventAPI is the backend surface shared by the event projections.
type EventAPI interface {
	ListEvents(ctx context.Context) ([]event.Event, error)
	ListRegistrations(ctx context.Context, eventID, userID ident.ID) ([]event.Registration, error)
}
