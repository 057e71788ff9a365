package ident_test

import (
	"encoding/json"
	"testing"

	"crudtask/internal/domain/ident"
)

// TestID_UnmarshalJSON tests decoding ids from string, number, and null forms.
func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want ident.ID
	}{
		{"string id", `"1b76"`, "1b76"},
		{"numeric id", `42`, "42"},
		{"null id", `null`, ""},
		{"numeric string id", `"7"`, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ident.ID
			if err := json.Unmarshal([]byte(tt.json), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.json, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.json, got, tt.want)
			}
		})
	}
}

// TestID_UnmarshalJSON_Invalid tests that non-scalar ids are rejected.
func TestID_UnmarshalJSON_Invalid(t *testing.T) {
	var got ident.ID
	if err := json.Unmarshal([]byte(`{"id":1}`), &got); err == nil {
		t.Error("expected error for object id, got nil")
	}
}

// TestNorm tests normalization of mixed identifier types.
func TestNorm(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want ident.ID
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"int", 7, "7"},
		{"int64", int64(12), "12"},
		{"float", float64(3), "3"},
		{"json number", json.Number("19"), "19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ident.Norm(tt.in); got != tt.want {
				t.Errorf("Norm(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestNorm_NumericStringEquality verifies a numeric id and its string form compare equal.
func TestNorm_NumericStringEquality(t *testing.T) {
	if ident.Norm(3) != ident.Norm("3") {
		t.Error("Norm(3) and Norm(\"3\") should be equal")
	}
}

// TestID_MarshalJSON verifies ids always serialize as strings.
func TestID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ident.ID("5"))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `"5"` {
		t.Errorf("Marshal = %s, want \"5\"", data)
	}
}
