package task

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"crudtask/internal/domain/ident"
)

// Status constants
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Filter constants for TableState.Filter.
const (
	FilterAll       = "all"
	FilterPending   = StatusPending
	FilterCompleted = StatusCompleted
)

// Statuses lists all valid task statuses in display order.
var Statuses = []string{StatusPending, StatusInProgress, StatusCompleted}

// Categories and Priorities are the fixed choices offered on the create form.
var (
	Categories = []string{"Mathematics", "Physics", "History", "Computer Science", "Literature", "Other"}
	Priorities = []string{"Low", "Medium", "High"}
)

// Domain errors
var (
	ErrEmptyTitle    = errors.New("Task title is required.")
	ErrInvalidStatus = errors.New("status must be one of: pending, in_progress, completed")
)

// Task mirrors a backend task record. Timestamps stay as the wire strings;
// records written before the client existed may carry none at all.
type Task struct {
	ID          ident.ID `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Status      string   `json:"status"`
	DueDate     string   `json:"dueDate,omitempty"`
	UserID      ident.ID `json:"userId"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// Patch is the partial update written by the inline edit form. All fields
// are sent on every save; UpdatedAt is stamped by the caller.
type Patch struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
	UpdatedAt   string `json:"updatedAt"`
}

// Validate checks if the Patch carries valid data.
// PRE: Patch struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Patch) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if !IsValidStatus(p.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// TableState is the ephemeral search/filter selection applied to list views.
// It travels in the URL query so it survives re-renders of the same view.
type TableState struct {
	Q      string
	Filter string // all, pending, completed
}

// Stats summarizes a task list for the dashboard cards.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Progress  int // percent, 0 when Total is 0
}

// Validate checks if the Task has valid data.
// PRE: Task struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !IsValidStatus(t.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// OwnedBy reports whether the task belongs to the given user, comparing
// normalized ids so numeric and string forms never diverge.
// INVARIANT: Task fields are not mutated
func (t *Task) OwnedBy(userID ident.ID) bool {
	return ident.Norm(string(t.UserID)) == ident.Norm(string(userID))
}

// IsValidStatus returns true for a known task status.
func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Filter derives the visible list from the full list and the table state:
// status filter first, then a case-insensitive substring match of the query
// against title or description. The input slice is never mutated.
// POST: Returns the input unchanged in content when state is {"", all}
func Filter(tasks []Task, state TableState) []Task {
	filtered := make([]Task, 0, len(tasks))

	for _, t := range tasks {
		switch state.Filter {
		case FilterPending:
			if t.Status != StatusPending {
				continue
			}
		case FilterCompleted:
			if t.Status != StatusCompleted {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	q := strings.ToLower(strings.TrimSpace(state.Q))
	if q == "" {
		return filtered
	}

	matched := filtered[:0]
	for _, t := range filtered {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			matched = append(matched, t)
		}
	}
	return matched
}

// ComputeStats counts tasks by status and derives the overall progress.
// POST: Progress is 0 when the list is empty (no division by zero)
func ComputeStats(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusCompleted:
			s.Completed++
		case StatusPending:
			s.Pending++
		}
	}
	if s.Total > 0 {
		s.Progress = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// SortByCreatedAtDesc returns a copy of the list ordered newest first.
// Missing or unparseable timestamps sort as epoch zero, so they land last.
func SortByCreatedAtDesc(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return parseCreatedAt(out[i].CreatedAt).After(parseCreatedAt(out[j].CreatedAt))
	})
	return out
}

// parseCreatedAt parses a wire timestamp, falling back to epoch zero.
// Backend records carry RFC 3339 stamps; hand-seeded ones may be bare dates.
func parseCreatedAt(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", v); err == nil {
		return ts
	}
	return time.Time{}
}

// StatusLabel maps a status to its display label.
func StatusLabel(status string) string {
	switch status {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return status
	}
}
