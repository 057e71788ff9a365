// Package validate holds the pure form-input predicates shared by the web handlers.
package validate

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmpty returns true when the value is blank after trimming whitespace.
func IsEmpty(v string) bool {
	return strings.TrimSpace(v) == ""
}

// IsEmail returns true when the value has the shape local@domain.tld.
func IsEmail(v string) bool {
	return emailPattern.MatchString(strings.TrimSpace(v))
}

// MinLength returns true when the trimmed value has at least n characters.
func MinLength(v string, n int) bool {
	return len(strings.TrimSpace(v)) >= n
}
