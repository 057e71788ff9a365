package task

import (
	"context"

	domain "crudtask/internal/domain/task"
)

// Store persists Task state for the stub backend.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, value domain.Task) error
	Delete(ctx context.Context, id string) error
}
