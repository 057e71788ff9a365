package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"crudtask/internal/domain/ident"
	"crudtask/internal/domain/task"
)

// TaskAPIForActions defines the backend surface needed by the task write
// orchestrators.
type TaskAPIForActions interface {
	GetTask(ctx context.Context, id ident.ID) (task.Task, error)
	CreateTask(ctx context.Context, t task.Task) (task.Task, error)
	PatchTask(ctx context.Context, id ident.ID, p task.Patch) (task.Task, error)
	DeleteTask(ctx context.Context, id ident.ID) error
}

// TaskActionDeps holds dependencies for the task write orchestrators.
type TaskActionDeps struct {
	Tasks TaskAPIForActions
}

// Actor identifies who is performing a task write.
type Actor struct {
	UserID  ident.ID
	IsAdmin bool
}

var (
	ErrNotTaskOwnerEdit   = errors.New("You can only edit your own tasks.")
	ErrNotTaskOwnerDelete = errors.New("You can only delete your own tasks.")
)

// CreateTaskInput carries input for task creation.
type CreateTaskInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	DueDate     string
}

// ExecuteCreateTask creates a task owned by the actor.
// PRE: actor.UserID is non-empty
// POST: Task created with status pending and fresh timestamps
func ExecuteCreateTask(ctx context.Context, actor Actor, input CreateTaskInput, deps TaskActionDeps) (task.Task, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	t := task.Task{
		ID:          ident.ID(uuid.NewString()),
		UserID:      actor.UserID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Status:      task.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}

	created, err := deps.Tasks.CreateTask(ctx, t)
	if err != nil {
		return task.Task{}, err
	}
	slog.Info("task_created", "task_id", created.ID.String(), "user_id", actor.UserID.String())
	return created, nil
}

// UpdateTaskInput carries the editable fields of a task.
type UpdateTaskInput struct {
	Title       string
	Description string
	DueDate     string
	Status      string
}

// ExecuteUpdateTask applies an edit to a task after an ownership check.
// PRE: taskID is non-empty
// POST: Task patched with a fresh UpdatedAt
// INVARIANT: Non-admin actors can only touch tasks they own
func ExecuteUpdateTask(ctx context.Context, actor Actor, taskID ident.ID, input UpdateTaskInput, deps TaskActionDeps) (task.Task, error) {
	current, err := deps.Tasks.GetTask(ctx, taskID)
	if err != nil {
		return task.Task{}, err
	}
	if !actor.IsAdmin && !current.OwnedBy(actor.UserID) {
		return task.Task{}, ErrNotTaskOwnerEdit
	}

	patch := task.Patch{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      input.Status,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := patch.Validate(); err != nil {
		return task.Task{}, err
	}

	updated, err := deps.Tasks.PatchTask(ctx, taskID, patch)
	if err != nil {
		return task.Task{}, err
	}
	slog.Info("task_updated", "task_id", taskID.String(), "actor_id", actor.UserID.String(), "admin", actor.IsAdmin)
	return updated, nil
}

// ExecuteDeleteTask removes a task after an ownership check.
// PRE: taskID is non-empty
// POST: Task no longer exists on the backend
// INVARIANT: Non-admin actors can only delete tasks they own
func ExecuteDeleteTask(ctx context.Context, actor Actor, taskID ident.ID, deps TaskActionDeps) error {
	current, err := deps.Tasks.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin && !current.OwnedBy(actor.UserID) {
		return ErrNotTaskOwnerDelete
	}

	if err := deps.Tasks.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	slog.Info("task_deleted", "task_id", taskID.String(), "actor_id", actor.UserID.String(), "admin", actor.IsAdmin)
	return nil
}
