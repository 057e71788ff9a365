package projections

import (
	"context"
	"sort"

	"crudtask/internal/domain/task"
	"crudtask/internal/domain/user"
)

// AdminUserRow pairs a user with their task count.
type AdminUserRow struct {
	user.Identity
	CreatedAt string
	TaskCount int
}

// AdminUsersDeps holds dependencies for QueryAdminUsers.
type AdminUsersDeps struct {
	Users UserAPI
	Tasks TaskAPI
}

// QueryAdminUsers lists every account, newest first, with per-user task
// counts. Password hashes never leave this function.
// PRE: none
// POST: Rows sorted by CreatedAt descending
func QueryAdminUsers(ctx context.Context, deps AdminUsersDeps) ([]AdminUserRow, error) {
	users, err := deps.Users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := deps.Tasks.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(users))
	for _, t := range tasks {
		counts[t.UserID.String()]++
	}

	rows := make([]AdminUserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, AdminUserRow{
			Identity:  u.Identity(),
			CreatedAt: u.CreatedAt,
			TaskCount: counts[u.ID.String()],
		})
	}

	// RFC 3339 timestamps order correctly as strings.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt > rows[j].CreatedAt
	})
	return rows, nil
}

// AdminDashboardView is the read model for the admin overview cards.
type AdminDashboardView struct {
	UserCount  int
	EventCount int
	Stats      task.Stats
}

// AdminDashboardDeps holds dependencies for QueryAdminDashboard.
type AdminDashboardDeps struct {
	Users  UserAPI
	Tasks  TaskAPI
	Events EventAPI
}

// QueryAdminDashboard aggregates system-wide totals for the admin landing page.
func QueryAdminDashboard(ctx context.Context, deps AdminDashboardDeps) (AdminDashboardView, error) {
	users, err := deps.Users.ListUsers(ctx)
	if err != nil {
		return AdminDashboardView{}, err
	}
	tasks, err := deps.Tasks.ListTasks(ctx)
	if err != nil {
		return AdminDashboardView{}, err
	}
	events, err := deps.Events.ListEvents(ctx)
	if err != nil {
		return AdminDashboardView{}, err
	}

	return AdminDashboardView{
		UserCount:  len(users),
		EventCount: len(events),
		Stats:      task.ComputeStats(tasks),
	}, nil
}
