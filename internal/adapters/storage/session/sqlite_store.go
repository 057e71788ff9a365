package session

import (
	"context"
	"database/sql"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new session store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a session record.
// PRE: rec.Token is non-empty
// POST: Record is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, rec Record) error {
	query := `INSERT INTO session (token, user_id, name, email, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(token) DO UPDATE SET
			user_id=excluded.user_id,
			name=excluded.name,
			email=excluded.email,
			role=excluded.role,
			created_at=excluded.created_at`
	_, err := s.db.ExecContext(ctx, query,
		rec.Token, rec.UserID, rec.Name, rec.Email, rec.Role, rec.CreatedAt)
	return err
}

// Delete removes a session record by token.
// PRE: token is non-empty
// POST: Record with the given token is removed
func (s *SQLiteStore) Delete(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE token = ?", token)
	return err
}

// LoadAll retrieves every persisted session record. Rows that fail to scan
// are skipped rather than failing the hydrate — corrupt persisted state is
// treated as "no session".
func (s *SQLiteStore) LoadAll(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT token, user_id, name, email, role, created_at FROM session")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Token, &rec.UserID, &rec.Name, &rec.Email, &rec.Role, &rec.CreatedAt); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
