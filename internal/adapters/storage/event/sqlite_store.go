package event

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	domain "crudtask/internal/domain/event"
	"crudtask/internal/domain/ident"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new event store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const eventColumns = "id, name, description, date, location, capacity, registered_count, created_at, updated_at"

// GetByID retrieves an Event by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Event, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM event WHERE id = ?", id)
	entity, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Event{}, fmt.Errorf("event not found: %w", err)
	}
	return entity, err
}

// List retrieves all Events ordered by date.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+eventColumns+" FROM event ORDER BY date ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		entity, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, entity)
	}
	return events, rows.Err()
}

// Save persists an Event to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Event) error {
	query := `INSERT INTO event (id, name, description, date, location, capacity, registered_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			description=excluded.description,
			date=excluded.date,
			location=excluded.location,
			capacity=excluded.capacity,
			registered_count=excluded.registered_count,
			created_at=excluded.created_at,
			updated_at=excluded.updated_at`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID.String(), entity.Name, entity.Description, entity.Date, entity.Location,
		entity.Capacity, entity.RegisteredCount, entity.CreatedAt, entity.UpdatedAt)
	return err
}

// Delete removes an Event from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM event WHERE id = ?", id)
	return err
}

func scanEvent(scan func(dest ...any) error) (domain.Event, error) {
	var entity domain.Event
	var id string
	err := scan(&id, &entity.Name, &entity.Description, &entity.Date, &entity.Location,
		&entity.Capacity, &entity.RegisteredCount, &entity.CreatedAt, &entity.UpdatedAt)
	if err != nil {
		return domain.Event{}, err
	}
	entity.ID = ident.ID(id)
	return entity, nil
}

// RegistrationSQLiteStore implements RegistrationStore using SQLite.
type RegistrationSQLiteStore struct {
	db *sql.DB
}

// NewRegistrationSQLiteStore creates a new registration store.
func NewRegistrationSQLiteStore(db *sql.DB) *RegistrationSQLiteStore {
	return &RegistrationSQLiteStore{db: db}
}

// List retrieves Registrations based on the filter.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *RegistrationSQLiteStore) List(ctx context.Context, filter RegistrationFilter) ([]domain.Registration, error) {
	var queryBuilder strings.Builder
	var args []any
	var where []string

	queryBuilder.WriteString("SELECT id, event_id, user_id, created_at FROM registration")
	if filter.EventID != "" {
		where = append(where, "event_id = ?")
		args = append(args, filter.EventID)
	}
	if filter.UserID != "" {
		where = append(where, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if len(where) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []domain.Registration{}
	for rows.Next() {
		var entity domain.Registration
		var id, eventID, userID string
		if err := rows.Scan(&id, &eventID, &userID, &entity.CreatedAt); err != nil {
			return nil, err
		}
		entity.ID = ident.ID(id)
		entity.EventID = ident.ID(eventID)
		entity.UserID = ident.ID(userID)
		regs = append(regs, entity)
	}
	return regs, rows.Err()
}

// Save persists a Registration to the database.
// PRE: the duplicate check has already been made by the caller
// POST: Entity is persisted (insert or update)
func (s *RegistrationSQLiteStore) Save(ctx context.Context, entity domain.Registration) error {
	query := `INSERT INTO registration (id, event_id, user_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			event_id=excluded.event_id,
			user_id=excluded.user_id,
			created_at=excluded.created_at`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID.String(), entity.EventID.String(), entity.UserID.String(), entity.CreatedAt)
	return err
}

// Delete removes a Registration from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *RegistrationSQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM registration WHERE id = ?", id)
	return err
}
