package web

import (
	"net/http"

	"crudtask/internal/adapters/http/middleware"
	"crudtask/internal/domain/user"
)

// handlerFunc is a route handler that may fail. Errors that reach the
// dispatcher are unexpected; domain errors are rendered by the handlers
// themselves.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// Route declares one path with its access rules. The rules are data, not
// code, so the whole access policy is visible in a single table.
type Route struct {
	Path       string // exact path
	Handler    handlerFunc
	Protected  bool   // requires a session
	PublicOnly bool   // logged-in users are redirected away
	Role       string // required role when non-empty (implies Protected)
}

// routes is the full route table. Order does not matter; lookup is by exact
// path, and anything else falls through to the not-found handler.
var routes = []Route{
	{Path: "/", Handler: handleRoot},
	{Path: "/login", Handler: handleLogin, PublicOnly: true},
	{Path: "/register", Handler: handleRegister, PublicOnly: true},
	{Path: "/logout", Handler: handleLogout, Protected: true},

	{Path: "/user/dashboard", Handler: handleUserDashboard, Protected: true, Role: user.RoleUser},
	{Path: "/user/tasks", Handler: handleUserTasks, Protected: true, Role: user.RoleUser},
	{Path: "/user/tasks/new", Handler: handleUserTaskNew, Protected: true, Role: user.RoleUser},
	{Path: "/user/tasks/create", Handler: handleUserTaskCreate, Protected: true, Role: user.RoleUser},
	{Path: "/user/tasks/update", Handler: handleUserTaskUpdate, Protected: true, Role: user.RoleUser},
	{Path: "/user/tasks/delete", Handler: handleUserTaskDelete, Protected: true, Role: user.RoleUser},
	{Path: "/user/profile", Handler: handleUserProfile, Protected: true, Role: user.RoleUser},
	{Path: "/user/events", Handler: handleUserEvents, Protected: true, Role: user.RoleUser},
	{Path: "/user/events/register", Handler: handleUserEventRegister, Protected: true, Role: user.RoleUser},

	{Path: "/admin/dashboard", Handler: handleAdminDashboard, Protected: true, Role: user.RoleAdmin},
	{Path: "/admin/tasks", Handler: handleAdminTasks, Protected: true, Role: user.RoleAdmin},
	{Path: "/admin/tasks/update", Handler: handleAdminTaskUpdate, Protected: true, Role: user.RoleAdmin},
	{Path: "/admin/tasks/delete", Handler: handleAdminTaskDelete, Protected: true, Role: user.RoleAdmin},
	{Path: "/admin/users", Handler: handleAdminUsers, Protected: true, Role: user.RoleAdmin},
	{Path: "/admin/events", Handler: handleAdminEvents, Protected: true, Role: user.RoleAdmin},
	{Path: "/admin/events/create", Handler: handleAdminEventCreate, Protected: true, Role: user.RoleAdmin},
	{Path: "/admin/events/update", Handler: handleAdminEventUpdate, Protected: true, Role: user.RoleAdmin},
	{Path: "/admin/events/delete", Handler: handleAdminEventDelete, Protected: true, Role: user.RoleAdmin},
}

// registerRoutes installs the dispatcher. Every path goes through the same
// guard so no route can forget an access check.
func registerRoutes(mux *http.ServeMux) {
	table := make(map[string]Route, len(routes))
	for _, route := range routes {
		table[route.Path] = route
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		route, ok := table[r.URL.Path]
		if !ok {
			handleNotFound(w, r)
			return
		}
		if !guard(w, r, route) {
			return
		}
		if err := route.Handler(w, r); err != nil {
			renderError(w, r, err)
		}
	})
}

// guard applies the route's access rules. It returns false when a redirect
// was already written.
// INVARIANT: checks run in order: public-only, then auth, then role
func guard(w http.ResponseWriter, r *http.Request, route Route) bool {
	session, loggedIn := middleware.GetSessionFromContext(r.Context())

	if route.PublicOnly && loggedIn {
		http.Redirect(w, r, homeForRole(session.Role), http.StatusSeeOther)
		return false
	}
	if (route.Protected || route.Role != "") && !loggedIn {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return false
	}
	if route.Role != "" && session.Role != route.Role {
		// Wrong role lands on its own home, never an error page.
		http.Redirect(w, r, homeForRole(session.Role), http.StatusSeeOther)
		return false
	}
	return true
}

// homeForRole maps a role to its landing page.
func homeForRole(role string) string {
	if role == user.RoleAdmin {
		return "/admin/dashboard"
	}
	return "/user/dashboard"
}

// handleRoot routes the bare domain to wherever the visitor belongs.
func handleRoot(w http.ResponseWriter, r *http.Request) error {
	session, loggedIn := middleware.GetSessionFromContext(r.Context())
	if !loggedIn {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil
	}
	http.Redirect(w, r, homeForRole(session.Role), http.StatusSeeOther)
	return nil
}
