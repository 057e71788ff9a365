package validate_test

import (
	"testing"

	"crudtask/internal/domain/validate"
)

// TestIsEmpty tests blank detection.
func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty string", "", true},
		{"spaces only", "   ", true},
		{"tab and newline", "\t\n", true},
		{"non-empty", "x", false},
		{"padded non-empty", "  x  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validate.IsEmpty(tt.in); got != tt.want {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestIsEmail tests the email shape predicate.
func TestIsEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "student@university.edu", true},
		{"valid with trim", "  student@university.edu  ", true},
		{"missing at", "student.university.edu", false},
		{"missing tld", "student@university", false},
		{"spaces inside", "stu dent@university.edu", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validate.IsEmail(tt.in); got != tt.want {
				t.Errorf("IsEmail(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestMinLength tests the minimum-length predicate.
func TestMinLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want bool
	}{
		{"exactly n", "12345678", 8, true},
		{"longer", "123456789", 8, true},
		{"shorter", "1234567", 8, false},
		{"padding does not count", "  1234567  ", 8, false},
		{"empty", "", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validate.MinLength(tt.in, tt.n); got != tt.want {
				t.Errorf("MinLength(%q, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
