package session

import "context"

// Record is the persisted form of an authenticated session.
type Record struct {
	Token     string
	UserID    string
	Name      string
	Email     string
	Role      string
	CreatedAt string // RFC 3339
}

// Store persists session state so logins survive a restart. The in-memory
// session holder writes through on every mutation and hydrates from here at
// startup.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Delete(ctx context.Context, token string) error
	LoadAll(ctx context.Context) ([]Record, error)
}
