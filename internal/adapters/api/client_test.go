package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"crudtask/internal/domain/event"
)

// TestClient_ErrorMessageFromEnvelope verifies the backend's message field
// is surfaced verbatim on non-2xx responses.
func TestClient_ErrorMessageFromEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Email already exists."}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.get(context.Background(), "/users", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Message != "Email already exists." {
		t.Errorf("Message = %q, want the envelope message verbatim", apiErr.Message)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", apiErr.Status)
	}
}

// TestClient_GenericErrorMessage verifies the fallback message when the
// response carries no message field.
func TestClient_GenericErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream broke"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.get(context.Background(), "/tasks", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "Request failed (502)" {
		t.Errorf("Error() = %q, want %q", err.Error(), "Request failed (502)")
	}
}

// TestClient_DecodesJSONBody verifies request headers and response decoding.
func TestClient_DecodesJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"numeric id decodes"},{"id":"1b76","title":"string id decodes"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	tasks, err := c.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}
	if tasks[0].ID != "1" || tasks[1].ID != "1b76" {
		t.Errorf("ids = %q, %q; want normalized \"1\", \"1b76\"", tasks[0].ID, tasks[1].ID)
	}
}

// TestClient_GetEvent_NotFound verifies 404s map to the domain error.
func TestClient_GetEvent_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetEvent(context.Background(), "missing")
	if err != event.ErrNotFound {
		t.Errorf("GetEvent error = %v, want event.ErrNotFound", err)
	}
}

// TestClient_ListEvents_SortsByDate verifies client-side date ordering even
// when the backend ignores the sort parameters.
func TestClient_ListEvents_SortsByDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"b","date":"2024-09-01","capacity":5},{"id":"a","date":"2024-02-01","capacity":5}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	events, err := c.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents error = %v", err)
	}
	if events[0].ID != "a" || events[1].ID != "b" {
		t.Errorf("order = %s, %s; want a, b", events[0].ID, events[1].ID)
	}
}
