package task

import (
	"context"
	"database/sql"
	"fmt"

	"crudtask/internal/domain/ident"
	domain "crudtask/internal/domain/task"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new task store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const taskColumns = "id, title, description, category, priority, status, due_date, user_id, created_at, updated_at"

// GetByID retrieves a Task by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Task, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM task WHERE id = ?", id)
	entity, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Task{}, fmt.Errorf("task not found: %w", err)
	}
	return entity, err
}

// List retrieves all Tasks.
// POST: Returns every stored task in insertion order
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+taskColumns+" FROM task")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		entity, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, entity)
	}
	return tasks, rows.Err()
}

// Save persists a Task to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Task) error {
	query := `INSERT INTO task (id, title, description, category, priority, status, due_date, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			description=excluded.description,
			category=excluded.category,
			priority=excluded.priority,
			status=excluded.status,
			due_date=excluded.due_date,
			user_id=excluded.user_id,
			created_at=excluded.created_at,
			updated_at=excluded.updated_at`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID.String(), entity.Title, entity.Description, entity.Category, entity.Priority,
		entity.Status, entity.DueDate, entity.UserID.String(), entity.CreatedAt, entity.UpdatedAt)
	return err
}

// Delete removes a Task from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM task WHERE id = ?", id)
	return err
}

func scanTask(scan func(dest ...any) error) (domain.Task, error) {
	var entity domain.Task
	var id, userID string
	err := scan(&id, &entity.Title, &entity.Description, &entity.Category, &entity.Priority,
		&entity.Status, &entity.DueDate, &userID, &entity.CreatedAt, &entity.UpdatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	entity.ID = ident.ID(id)
	entity.UserID = ident.ID(userID)
	return entity, nil
}
