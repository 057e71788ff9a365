// Package listutil parses list view parameters from request queries.
package listutil

import (
	"net/url"

	"crudtask/internal/domain/task"
)

// ParseTableState extracts the search query and status filter from URL query
// values. Unknown filter values fall back to "all", so a hand-edited URL can
// never put the task table in an invalid state.
// PRE: none
// POST: returns a TableState whose Filter is one of all/pending/completed
func ParseTableState(q url.Values) task.TableState {
	state := task.TableState{
		Q:      q.Get("q"),
		Filter: q.Get("filter"),
	}
	if !isValidFilter(state.Filter) {
		state.Filter = task.FilterAll
	}
	return state
}

// EditSlot extracts the id of the row currently in edit mode, if any.
// An empty string means every row renders in read mode.
func EditSlot(q url.Values) string {
	return q.Get("edit")
}

func isValidFilter(f string) bool {
	switch f {
	case task.FilterAll, task.FilterPending, task.FilterCompleted:
		return true
	}
	return false
}
