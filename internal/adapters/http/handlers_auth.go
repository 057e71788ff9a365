package web

import (
	"errors"
	"net/http"
	"strings"

	"crudtask/internal/adapters/http/middleware"
	"crudtask/internal/application/orchestrators"
	"crudtask/internal/domain/user"
	"crudtask/internal/domain/validate"
)

// loginFormErrors maps field names to messages for re-rendering the form.
type loginForm struct {
	Email  string
	Errors map[string]string
}

// handleLogin handles GET (form) and POST (credential check) for /login.
func handleLogin(w http.ResponseWriter, r *http.Request) error {
	if r.Method == "GET" {
		data := map[string]any{
			"Title": "Log in",
			"Form":  loginForm{Errors: map[string]string{}},
		}
		if r.URL.Query().Get("registered") == "1" {
			data["Notice"] = "Account created. Please log in."
		}
		renderView(w, r, "login.html", data)
		return nil
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return nil
	}
	form := loginForm{
		Email:  strings.TrimSpace(r.FormValue("email")),
		Errors: map[string]string{},
	}
	password := r.FormValue("password")

	if !validate.IsEmail(form.Email) {
		form.Errors["email"] = "Please enter a valid email."
	}
	if validate.IsEmpty(password) {
		form.Errors["password"] = "Password is required."
	}
	if len(form.Errors) > 0 {
		renderView(w, r, "login.html", map[string]any{"Title": "Log in", "Form": form})
		return nil
	}

	identity, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    form.Email,
		Password: password,
	}, orchestrators.LoginDeps{Users: backend})
	if err != nil {
		if errors.Is(err, orchestrators.ErrInvalidCredentials) {
			form.Errors["form"] = err.Error()
			renderView(w, r, "login.html", map[string]any{"Title": "Log in", "Form": form})
			return nil
		}
		return err
	}

	token, err := sessions.Create(r.Context(), identity)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, homeForRole(identity.Role), http.StatusSeeOther)
	return nil
}

type registerForm struct {
	Name   string
	Email  string
	Errors map[string]string
}

// handleRegister handles GET (form) and POST (account creation) for /register.
// A successful registration sends the user to the login page; it never starts
// a session itself.
func handleRegister(w http.ResponseWriter, r *http.Request) error {
	if r.Method == "GET" {
		renderView(w, r, "register.html", map[string]any{
			"Title": "Create account",
			"Form":  registerForm{Errors: map[string]string{}},
		})
		return nil
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return nil
	}
	form := registerForm{
		Name:   strings.TrimSpace(r.FormValue("name")),
		Email:  strings.TrimSpace(r.FormValue("email")),
		Errors: map[string]string{},
	}
	password := r.FormValue("password")
	confirm := r.FormValue("confirm")

	if validate.IsEmpty(form.Name) {
		form.Errors["name"] = user.ErrEmptyName.Error()
	}
	if !validate.IsEmail(form.Email) {
		form.Errors["email"] = user.ErrInvalidEmail.Error()
	}
	if validate.IsEmpty(password) {
		form.Errors["password"] = "Password is required."
	} else if !validate.MinLength(password, user.MinPasswordLength) {
		form.Errors["password"] = user.ErrPasswordTooShort.Error()
	}
	if password != confirm {
		form.Errors["confirm"] = "Passwords do not match."
	}
	if len(form.Errors) > 0 {
		renderView(w, r, "register.html", map[string]any{"Title": "Create account", "Form": form})
		return nil
	}

	_, err := orchestrators.ExecuteRegister(r.Context(), orchestrators.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: password,
	}, orchestrators.RegisterDeps{
		Users:       backend,
		EmailSender: emailSender,
		EmailFrom:   emailFromAddress,
		EmailReply:  emailReplyTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, orchestrators.ErrEmailTaken):
			form.Errors["email"] = err.Error()
		case errors.Is(err, user.ErrEmptyName),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrEmptyPassword),
			errors.Is(err, user.ErrPasswordTooShort):
			form.Errors["form"] = err.Error()
		default:
			return err
		}
		renderView(w, r, "register.html", map[string]any{"Title": "Create account", "Form": form})
		return nil
	}

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
	return nil
}

// handleLogout tears down the session and returns to the login page.
func handleLogout(w http.ResponseWriter, r *http.Request) error {
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(r.Context(), token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return nil
}
