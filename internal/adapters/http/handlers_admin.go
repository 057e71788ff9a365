package web

import (
	"net/http"

	"crudtask/internal/application/listutil"
	"crudtask/internal/application/projections"
	"crudtask/internal/domain/task"
)

// handleAdminDashboard shows the system-wide totals.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) error {
	view, err := projections.QueryAdminDashboard(r.Context(), projections.AdminDashboardDeps{
		Users:  backend,
		Tasks:  backend,
		Events: backend,
	})
	if err != nil {
		return err
	}

	renderView(w, r, "admin_dashboard.html", map[string]any{
		"Title":      "Admin dashboard",
		"UserCount":  view.UserCount,
		"EventCount": view.EventCount,
		"Stats":      view.Stats,
	})
	return nil
}

// handleAdminTasks renders the all-users task table. Admins get the same
// inline edit slot as users but no ownership restrictions.
func handleAdminTasks(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	state := listutil.ParseTableState(query)

	view, err := projections.QueryAdminTasks(r.Context(), state, projections.AdminTasksDeps{
		Tasks: backend,
		Users: backend,
	})
	if err != nil {
		return err
	}

	renderView(w, r, "admin_tasks.html", map[string]any{
		"Title":    "All tasks",
		"Rows":     view.Rows,
		"Stats":    view.Stats,
		"State":    view.State,
		"EditID":   listutil.EditSlot(query),
		"Banner":   query.Get("error"),
		"Statuses": task.Statuses,
	})
	return nil
}

// handleAdminTaskUpdate handles POST /admin/tasks/update.
func handleAdminTaskUpdate(w http.ResponseWriter, r *http.Request) error {
	return handleTaskUpdate(w, r, "/admin/tasks")
}

// handleAdminTaskDelete handles POST /admin/tasks/delete.
func handleAdminTaskDelete(w http.ResponseWriter, r *http.Request) error {
	return handleTaskDelete(w, r, "/admin/tasks")
}

// handleAdminUsers lists every account with task counts, newest first.
func handleAdminUsers(w http.ResponseWriter, r *http.Request) error {
	rows, err := projections.QueryAdminUsers(r.Context(), projections.AdminUsersDeps{
		Users: backend,
		Tasks: backend,
	})
	if err != nil {
		return err
	}

	renderView(w, r, "admin_users.html", map[string]any{
		"Title": "Users",
		"Rows":  rows,
	})
	return nil
}
