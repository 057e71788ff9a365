package listutil

import (
	"net/url"
	"testing"

	"crudtask/internal/domain/task"
)

func TestParseTableState(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  task.TableState
	}{
		{"empty query", "", task.TableState{Q: "", Filter: task.FilterAll}},
		{"search only", "q=report", task.TableState{Q: "report", Filter: task.FilterAll}},
		{"pending filter", "filter=pending", task.TableState{Q: "", Filter: task.FilterPending}},
		{"completed filter", "filter=completed", task.TableState{Q: "", Filter: task.FilterCompleted}},
		{"explicit all", "filter=all", task.TableState{Q: "", Filter: task.FilterAll}},
		{"invalid filter falls back", "filter=bogus", task.TableState{Q: "", Filter: task.FilterAll}},
		{"search and filter", "q=demo&filter=pending", task.TableState{Q: "demo", Filter: task.FilterPending}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			got := ParseTableState(q)
			if got != tt.want {
				t.Errorf("ParseTableState(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestEditSlot(t *testing.T) {
	q, _ := url.ParseQuery("edit=t42")
	if got := EditSlot(q); got != "t42" {
		t.Errorf("EditSlot = %q, want t42", got)
	}
	q, _ = url.ParseQuery("")
	if got := EditSlot(q); got != "" {
		t.Errorf("EditSlot = %q, want empty", got)
	}
}
