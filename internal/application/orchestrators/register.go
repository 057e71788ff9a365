package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"crudtask/internal/adapters/email"
	"crudtask/internal/domain/user"
)

// UserAPIForRegister defines the backend surface needed by Register.
type UserAPIForRegister interface {
	ListUsersByEmail(ctx context.Context, email string) ([]user.User, error)
	CreateUser(ctx context.Context, u user.User) (user.User, error)
}

// RegisterInput carries input for the register orchestrator.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterDeps holds dependencies for Register. EmailSender may be nil, in
// which case no welcome email is sent.
type RegisterDeps struct {
	Users       UserAPIForRegister
	EmailSender email.Sender
	EmailFrom   string
	EmailReply  string
}

var ErrEmailTaken = errors.New("Email already exists.")

// ExecuteRegister coordinates self-service account creation. New accounts
// always get the regular user role; admins are provisioned out of band.
// PRE: none (invalid input fails with a domain validation error)
// POST: User created with a bcrypt password hash; welcome email sent best-effort
// INVARIANT: The duplicate check happens before the create call
func ExecuteRegister(ctx context.Context, input RegisterInput, deps RegisterDeps) (user.Identity, error) {
	candidate := user.User{
		Name:      input.Name,
		Email:     input.Email,
		Role:      user.RoleUser,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := candidate.Validate(); err != nil {
		return user.Identity{}, err
	}
	if err := candidate.SetPassword(input.Password); err != nil {
		return user.Identity{}, err
	}

	// Uniqueness is checked here rather than enforced by the backend, so two
	// concurrent registrations for the same email can both succeed. The
	// backend keeps whatever was written; login picks the first match.
	existing, err := deps.Users.ListUsersByEmail(ctx, input.Email)
	if err != nil {
		return user.Identity{}, err
	}
	if len(existing) > 0 {
		return user.Identity{}, ErrEmailTaken
	}

	created, err := deps.Users.CreateUser(ctx, candidate)
	if err != nil {
		return user.Identity{}, err
	}

	slog.Info("auth_event", "event", "user_registered", "email", created.Email)

	if deps.EmailSender != nil {
		sendWelcomeEmail(ctx, deps, created)
	}

	return created.Identity(), nil
}

// sendWelcomeEmail is best-effort: a provider failure never fails the registration.
func sendWelcomeEmail(ctx context.Context, deps RegisterDeps, u user.User) {
	req := email.SendRequest{
		To:      []string{u.Email},
		From:    deps.EmailFrom,
		Subject: "Welcome to CRUDTASK",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your account is ready. Log in to start managing your tasks.</p>",
			u.Name),
		ReplyTo: deps.EmailReply,
	}
	if _, err := deps.EmailSender.Send(ctx, req); err != nil {
		slog.Warn("welcome_email_failed", "email", u.Email, "error", err.Error())
	}
}
