package user

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"crudtask/internal/domain/ident"
	"crudtask/internal/domain/validate"
)

// Role constants
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleUser}

// Domain errors
var (
	ErrEmptyName        = errors.New("Full name is required.")
	ErrInvalidEmail     = errors.New("Please enter a valid email.")
	ErrInvalidRole      = errors.New("role must be one of: admin, user")
	ErrEmptyPassword    = errors.New("Password is required.")
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters.")
)

// User mirrors a backend user record. Password carries the bcrypt hash on
// the wire, never a plaintext value.
type User struct {
	ID        ident.ID `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	Role      string   `json:"role"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// Identity is the reduced session-safe view of a User: no password material.
type Identity struct {
	ID    ident.ID `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  string   `json:"role"`
}

// Validate checks if the User has valid data.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if validate.IsEmpty(u.Name) {
		return ErrEmptyName
	}
	if !validate.IsEmail(u.Email) {
		return ErrInvalidEmail
	}
	if !isValidRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

// Identity returns the session-safe view of the user.
// INVARIANT: User fields are not mutated
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// SetPassword hashes and stores a password using bcrypt.
// PRE: plaintext is non-empty and >= MinPasswordLength characters
// POST: Password is set to the bcrypt hash
func (u *User) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if !validate.MinLength(plaintext, MinPasswordLength) {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: Password holds a bcrypt hash
// INVARIANT: User fields are not mutated
func (u *User) CheckPassword(plaintext string) bool {
	if u.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext)) == nil
}

// IsAdmin returns true if the user has the admin role.
// INVARIANT: User fields are not mutated
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Initials derives the one-or-two letter avatar initials from a name.
func Initials(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "U"
	}
	out := string([]rune(parts[0])[0])
	if len(parts) > 1 {
		out += string([]rune(parts[1])[0])
	}
	return strings.ToUpper(out)
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
