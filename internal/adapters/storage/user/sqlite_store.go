package user

import (
	"context"
	"database/sql"
	"fmt"

	"crudtask/internal/domain/ident"
	domain "crudtask/internal/domain/user"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new user store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const userColumns = "id, name, email, password, role, created_at"

// GetByID retrieves a User by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM user WHERE id = ?", id)
	entity, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return domain.User{}, fmt.Errorf("user not found: %w", err)
	}
	return entity, err
}

// List retrieves Users based on the filter.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM user"
	var args []any
	if filter.Email != "" {
		query += " WHERE email = ?"
		args = append(args, filter.Email)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		entity, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}
	return users, rows.Err()
}

// Save persists a User to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.User) error {
	query := `INSERT INTO user (id, name, email, password, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			email=excluded.email,
			password=excluded.password,
			role=excluded.role,
			created_at=excluded.created_at`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID.String(), entity.Name, entity.Email, entity.Password, entity.Role, entity.CreatedAt)
	return err
}

// Delete removes a User from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM user WHERE id = ?", id)
	return err
}

// Count returns the number of users.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM user").Scan(&count)
	return count, err
}

func scanUser(scan func(dest ...any) error) (domain.User, error) {
	var entity domain.User
	var id string
	err := scan(&id, &entity.Name, &entity.Email, &entity.Password, &entity.Role, &entity.CreatedAt)
	if err != nil {
		return domain.User{}, err
	}
	entity.ID = ident.ID(id)
	return entity, nil
}
