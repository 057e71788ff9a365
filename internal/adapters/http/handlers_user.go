package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"crudtask/internal/adapters/http/middleware"
	"crudtask/internal/application/listutil"
	"crudtask/internal/application/orchestrators"
	"crudtask/internal/application/projections"
	"crudtask/internal/domain/ident"
	"crudtask/internal/domain/task"
	"crudtask/internal/domain/user"
)

// actorFromSession builds the orchestrator actor for the current request.
func actorFromSession(sess middleware.Session) orchestrators.Actor {
	return orchestrators.Actor{
		UserID:  ident.ID(sess.UserID),
		IsAdmin: sess.Role == user.RoleAdmin,
	}
}

// taskListURL rebuilds a task list URL, carrying the search state through a
// redirect and optionally attaching an error banner. The edit slot is always
// cleared.
func taskListURL(base string, state task.TableState, banner string) string {
	q := url.Values{}
	if state.Q != "" {
		q.Set("q", state.Q)
	}
	if state.Filter != "" && state.Filter != task.FilterAll {
		q.Set("filter", state.Filter)
	}
	if banner != "" {
		q.Set("error", banner)
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

// handleUserDashboard shows the stats cards and the five newest tasks.
func handleUserDashboard(w http.ResponseWriter, r *http.Request) error {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	view, err := projections.QueryUserTasks(r.Context(), ident.ID(sess.UserID),
		task.TableState{Filter: task.FilterAll}, projections.UserTasksDeps{Tasks: backend})
	if err != nil {
		return err
	}

	recent := view.Tasks
	if len(recent) > 5 {
		recent = recent[:5]
	}

	renderView(w, r, "user_dashboard.html", map[string]any{
		"Title":  "Dashboard",
		"Stats":  view.Stats,
		"Recent": recent,
	})
	return nil
}

// handleUserTasks renders the task table. Search, filter and the inline edit
// slot all live in the URL query, so the whole table state survives a reload
// and resets on navigation.
func handleUserTasks(w http.ResponseWriter, r *http.Request) error {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	query := r.URL.Query()
	state := listutil.ParseTableState(query)

	view, err := projections.QueryUserTasks(r.Context(), ident.ID(sess.UserID), state,
		projections.UserTasksDeps{Tasks: backend})
	if err != nil {
		return err
	}

	renderView(w, r, "user_tasks.html", map[string]any{
		"Title":    "My tasks",
		"Tasks":    view.Tasks,
		"Stats":    view.Stats,
		"State":    view.State,
		"EditID":   listutil.EditSlot(query),
		"Banner":   query.Get("error"),
		"Statuses": task.Statuses,
	})
	return nil
}

// handleUserTaskNew renders the creation form.
func handleUserTaskNew(w http.ResponseWriter, r *http.Request) error {
	renderView(w, r, "user_task_new.html", map[string]any{
		"Title":      "New task",
		"Categories": task.Categories,
		"Priorities": task.Priorities,
		"Form":       map[string]string{},
		"Errors":     map[string]string{},
	})
	return nil
}

// handleUserTaskCreate handles POST /user/tasks/create.
func handleUserTaskCreate(w http.ResponseWriter, r *http.Request) error {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return nil
	}

	input := orchestrators.CreateTaskInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Priority:    r.FormValue("priority"),
		DueDate:     r.FormValue("dueDate"),
	}

	_, err := orchestrators.ExecuteCreateTask(r.Context(), actorFromSession(sess), input,
		orchestrators.TaskActionDeps{Tasks: backend})
	if err != nil {
		if errors.Is(err, task.ErrEmptyTitle) {
			renderView(w, r, "user_task_new.html", map[string]any{
				"Title":      "New task",
				"Categories": task.Categories,
				"Priorities": task.Priorities,
				"Form": map[string]string{
					"title":       input.Title,
					"description": input.Description,
					"category":    input.Category,
					"priority":    input.Priority,
					"dueDate":     input.DueDate,
				},
				"Errors": map[string]string{"title": err.Error()},
			})
			return nil
		}
		return err
	}

	http.Redirect(w, r, "/user/tasks", http.StatusSeeOther)
	return nil
}

// handleUserTaskUpdate handles POST /user/tasks/update (the inline edit save).
func handleUserTaskUpdate(w http.ResponseWriter, r *http.Request) error {
	return handleTaskUpdate(w, r, "/user/tasks")
}

// handleUserTaskDelete handles POST /user/tasks/delete.
func handleUserTaskDelete(w http.ResponseWriter, r *http.Request) error {
	return handleTaskDelete(w, r, "/user/tasks")
}

// handleTaskUpdate is shared by the user and admin tables; only the redirect
// target differs. Ownership is enforced by the orchestrator.
func handleTaskUpdate(w http.ResponseWriter, r *http.Request, listPath string) error {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return nil
	}

	state := listutil.ParseTableState(r.Form)
	taskID := ident.ID(r.FormValue("id"))
	input := orchestrators.UpdateTaskInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: r.FormValue("description"),
		DueDate:     r.FormValue("dueDate"),
		Status:      r.FormValue("status"),
	}

	_, err := orchestrators.ExecuteUpdateTask(r.Context(), actorFromSession(sess), taskID, input,
		orchestrators.TaskActionDeps{Tasks: backend})
	if err != nil {
		if banner, ok := userFacingTaskError(err); ok {
			http.Redirect(w, r, taskListURL(listPath, state, banner), http.StatusSeeOther)
			return nil
		}
		return err
	}

	http.Redirect(w, r, taskListURL(listPath, state, ""), http.StatusSeeOther)
	return nil
}

// handleTaskDelete is shared by the user and admin tables.
func handleTaskDelete(w http.ResponseWriter, r *http.Request, listPath string) error {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return nil
	}

	state := listutil.ParseTableState(r.Form)
	taskID := ident.ID(r.FormValue("id"))

	err := orchestrators.ExecuteDeleteTask(r.Context(), actorFromSession(sess), taskID,
		orchestrators.TaskActionDeps{Tasks: backend})
	if err != nil {
		if banner, ok := userFacingTaskError(err); ok {
			http.Redirect(w, r, taskListURL(listPath, state, banner), http.StatusSeeOther)
			return nil
		}
		return err
	}

	http.Redirect(w, r, taskListURL(listPath, state, ""), http.StatusSeeOther)
	return nil
}

// userFacingTaskError maps task write failures to banner text. Anything else
// bubbles up to the blanket catch.
func userFacingTaskError(err error) (string, bool) {
	switch {
	case errors.Is(err, orchestrators.ErrNotTaskOwnerEdit),
		errors.Is(err, orchestrators.ErrNotTaskOwnerDelete),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidStatus):
		return err.Error(), true
	}
	return "", false
}

// handleUserProfile shows the account card with the employee number and the
// viewer's task count.
func handleUserProfile(w http.ResponseWriter, r *http.Request) error {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	view, err := projections.QueryUserTasks(r.Context(), ident.ID(sess.UserID),
		task.TableState{Filter: task.FilterAll}, projections.UserTasksDeps{Tasks: backend})
	if err != nil {
		return err
	}

	renderView(w, r, "user_profile.html", map[string]any{
		"Title":      "Profile",
		"Name":       sess.Name,
		"Email":      sess.Email,
		"Role":       sess.Role,
		"EmployeeID": employeeID(sess.UserID),
		"TaskCount":  view.Stats.Total,
	})
	return nil
}

// employeeID formats a user id as a display badge. Numeric ids are padded;
// opaque ids keep a short uppercase prefix.
func employeeID(id string) string {
	if n, err := strconv.Atoi(id); err == nil {
		return fmt.Sprintf("CZ-%05d", n)
	}
	short := id
	if len(short) > 5 {
		short = short[:5]
	}
	return "CZ-" + strings.ToUpper(short)
}
