package projections

import (
	"context"

	"crudtask/internal/domain/ident"
	"crudtask/internal/domain/task"
)

// UserTasksView is the read model for the user's task table and dashboard.
type UserTasksView struct {
	Tasks []task.Task // owned tasks with search/filter applied, newest first
	Stats task.Stats  // computed over ALL owned tasks, not the filtered view
	State task.TableState
}

// UserTasksDeps holds dependencies for QueryUserTasks.
type UserTasksDeps struct {
	Tasks TaskAPI
}

// QueryUserTasks builds the task table for one user. The backend returns the
// full collection; ownership and search are applied here.
// PRE: userID is non-empty
// POST: Tasks contains only tasks owned by userID, sorted newest first
// INVARIANT: Stats reflects the unfiltered owned set
func QueryUserTasks(ctx context.Context, userID ident.ID, state task.TableState, deps UserTasksDeps) (UserTasksView, error) {
	all, err := deps.Tasks.ListTasks(ctx)
	if err != nil {
		return UserTasksView{}, err
	}

	owned := make([]task.Task, 0, len(all))
	for _, t := range all {
		if t.OwnedBy(userID) {
			owned = append(owned, t)
		}
	}

	filtered := task.Filter(owned, state)
	return UserTasksView{
		Tasks: task.SortByCreatedAtDesc(filtered),
		Stats: task.ComputeStats(owned),
		State: state,
	}, nil
}
