package user_test

import (
	"testing"

	"crudtask/internal/domain/user"
)

// TestUser_Validate tests validation of User.
func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    user.User
		wantErr bool
	}{
		{
			name:    "valid user",
			user:    user.User{Name: "John Doe", Email: "john@university.edu", Role: user.RoleUser},
			wantErr: false,
		},
		{
			name:    "valid admin",
			user:    user.User{Name: "Admin", Email: "admin@crudtask.dev", Role: user.RoleAdmin},
			wantErr: false,
		},
		{
			name:    "empty name",
			user:    user.User{Name: "  ", Email: "john@university.edu", Role: user.RoleUser},
			wantErr: true,
		},
		{
			name:    "bad email",
			user:    user.User{Name: "John", Email: "not-an-email", Role: user.RoleUser},
			wantErr: true,
		},
		{
			name:    "invalid role",
			user:    user.User{Name: "John", Email: "john@university.edu", Role: "superadmin"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("User.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestUser_SetPassword_CheckPassword tests hashing and verification.
func TestUser_SetPassword_CheckPassword(t *testing.T) {
	u := user.User{Name: "John", Email: "john@university.edu", Role: user.RoleUser}

	if err := u.SetPassword("short"); err != user.ErrPasswordTooShort {
		t.Errorf("SetPassword(short) error = %v, want ErrPasswordTooShort", err)
	}
	if err := u.SetPassword(""); err != user.ErrEmptyPassword {
		t.Errorf("SetPassword(empty) error = %v, want ErrEmptyPassword", err)
	}

	if err := u.SetPassword("correct horse"); err != nil {
		t.Fatalf("SetPassword error = %v", err)
	}
	if u.Password == "correct horse" {
		t.Error("Password stored in plaintext")
	}
	if !u.CheckPassword("correct horse") {
		t.Error("CheckPassword rejected the correct password")
	}
	if u.CheckPassword("wrong password") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

// TestUser_CheckPassword_EmptyHash verifies an unset hash never matches.
func TestUser_CheckPassword_EmptyHash(t *testing.T) {
	u := user.User{}
	if u.CheckPassword("") {
		t.Error("empty hash must not match any password")
	}
}

// TestUser_Identity verifies the reduced view drops password material.
func TestUser_Identity(t *testing.T) {
	u := user.User{ID: "7", Name: "John", Email: "john@university.edu", Role: user.RoleUser}
	if err := u.SetPassword("correct horse"); err != nil {
		t.Fatalf("SetPassword error = %v", err)
	}

	id := u.Identity()
	if id.ID != "7" || id.Name != "John" || id.Email != "john@university.edu" || id.Role != user.RoleUser {
		t.Errorf("Identity() = %+v", id)
	}
}

// TestInitials tests avatar initials derivation.
func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two names", "John Doe", "JD"},
		{"single name", "plato", "P"},
		{"extra spaces", "  ada   lovelace ", "AL"},
		{"empty", "", "U"},
		{"three names keeps two", "Ana Maria Silva", "AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := user.Initials(tt.in); got != tt.want {
				t.Errorf("Initials(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
