package event

import (
	"context"

	domain "crudtask/internal/domain/event"
)

// Store persists Event state for the stub backend.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Save(ctx context.Context, value domain.Event) error
	Delete(ctx context.Context, id string) error
}

// RegistrationStore persists Registration state for the stub backend.
type RegistrationStore interface {
	List(ctx context.Context, filter RegistrationFilter) ([]domain.Registration, error)
	Save(ctx context.Context, value domain.Registration) error
	Delete(ctx context.Context, id string) error
}

// RegistrationFilter carries filtering parameters for registration lists.
type RegistrationFilter struct {
	EventID string // exact match when non-empty
	UserID  string // exact match when non-empty
}
