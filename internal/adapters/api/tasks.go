package api

import (
	"context"
	"net/url"

	"crudtask/internal/domain/ident"
	"crudtask/internal/domain/task"
)

// ListTasks retrieves the entire task collection. Ownership filtering and
// sorting happen client-side; the backend's query parameters are not relied
// on for either (see projections).
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	err := c.get(ctx, "/tasks", &tasks)
	return tasks, err
}

// GetTask retrieves a single task by id.
// PRE: id is non-empty
func (c *Client) GetTask(ctx context.Context, id ident.ID) (task.Task, error) {
	var t task.Task
	err := c.get(ctx, "/tasks/"+url.PathEscape(id.String()), &t)
	return t, err
}

// CreateTask creates a task record.
// PRE: t has been validated; UserID and timestamps are set by the caller
// POST: Returns the created record including its assigned id
func (c *Client) CreateTask(ctx context.Context, t task.Task) (task.Task, error) {
	var created task.Task
	err := c.post(ctx, "/tasks", t, &created)
	return created, err
}

// PatchTask applies a partial update to a task.
// PRE: id exists; p carries all editable fields plus the new UpdatedAt
func (c *Client) PatchTask(ctx context.Context, id ident.ID, p task.Patch) (task.Task, error) {
	var updated task.Task
	err := c.patch(ctx, "/tasks/"+url.PathEscape(id.String()), p, &updated)
	return updated, err
}

// DeleteTask removes a task record.
// PRE: id is non-empty
func (c *Client) DeleteTask(ctx context.Context, id ident.ID) error {
	return c.delete(ctx, "/tasks/"+url.PathEscape(id.String()))
}
