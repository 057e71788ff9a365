package restapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	userStore "crudtask/internal/adapters/storage/user"
	"crudtask/internal/domain/ident"
	"crudtask/internal/domain/user"
)

// SeedAdmin creates the initial admin account when the user table is empty.
// PRE: store is initialized
// POST: an admin user exists, or the table already had users and nothing
// was written
func SeedAdmin(ctx context.Context, store userStore.Store, email, password string) error {
	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := user.User{
		ID:        ident.ID(uuid.NewString()),
		Name:      "Admin",
		Email:     email,
		Role:      user.RoleAdmin,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := store.Save(ctx, admin); err != nil {
		return err
	}

	slog.Info("admin_seeded", "email", email)
	return nil
}
