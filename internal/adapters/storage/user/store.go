package user

import (
	"context"

	domain "crudtask/internal/domain/user"
)

// Store persists User state for the stub backend.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context, filter ListFilter) ([]domain.User, error)
	Save(ctx context.Context, value domain.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Email string // exact match when non-empty
}
