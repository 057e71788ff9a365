package projections

import (
	"context"

	"crudtask/internal/domain/task"
)

// AdminTaskRow pairs a task with its owner's display name.
type AdminTaskRow struct {
	task.Task
	OwnerName string // "Unknown" when the owner no longer exists
}

// AdminTasksView is the read model for the admin task table.
type AdminTasksView struct {
	Rows  []AdminTaskRow
	Stats task.Stats // computed over every task in the system
	State task.TableState
}

// AdminTasksDeps holds dependencies for QueryAdminTasks.
type AdminTasksDeps struct {
	Tasks TaskAPI
	Users UserAPI
}

// QueryAdminTasks builds the task table across all users, resolving owner
// names for display.
// PRE: none
// POST: Rows contains every task matching the search state, newest first
func QueryAdminTasks(ctx context.Context, state task.TableState, deps AdminTasksDeps) (AdminTasksView, error) {
	all, err := deps.Tasks.ListTasks(ctx)
	if err != nil {
		return AdminTasksView{}, err
	}
	users, err := deps.Users.ListUsers(ctx)
	if err != nil {
		return AdminTasksView{}, err
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID.String()] = u.Name
	}

	filtered := task.SortByCreatedAtDesc(task.Filter(all, state))
	rows := make([]AdminTaskRow, 0, len(filtered))
	for _, t := range filtered {
		name, ok := names[t.UserID.String()]
		if !ok {
			name = "Unknown"
		}
		rows = append(rows, AdminTaskRow{Task: t, OwnerName: name})
	}

	return AdminTasksView{
		Rows:  rows,
		Stats: task.ComputeStats(all),
		State: state,
	}, nil
}
