// Package orchestrators coordinates multi-step operations against the task
// backend: credential checks, account creation, ownership-gated task writes
// and event registration.
package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"crudtask/internal/domain/user"
)

// UserAPIForLogin defines the backend surface needed by Login.
type UserAPIForLogin interface {
	ListUsersByEmail(ctx context.Context, email string) ([]user.User, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Users UserAPIForLogin
}

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords. The message is identical in both cases so a login probe cannot
// tell which one failed.
var ErrInvalidCredentials = errors.New("Invalid credentials.")

// ExecuteLogin validates credentials and returns the identity for session creation.
// PRE: none (empty input fails with ErrInvalidCredentials)
// POST: Returns the matched identity on success
// INVARIANT: The error for "no such user" and "wrong password" is the same value
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (user.Identity, error) {
	if input.Email == "" || input.Password == "" {
		return user.Identity{}, ErrInvalidCredentials
	}

	matches, err := deps.Users.ListUsersByEmail(ctx, input.Email)
	if err != nil {
		return user.Identity{}, err
	}
	if len(matches) == 0 {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "not_found")
		return user.Identity{}, ErrInvalidCredentials
	}

	u := matches[0]
	if !u.CheckPassword(input.Password) {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "wrong_password")
		return user.Identity{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "email", input.Email, "role", u.Role)
	return u.Identity(), nil
}
