// Package ident normalizes record identifiers from the backend API.
//
// The backend does not guarantee an identifier type: seeded records carry
// numeric ids while records created through the client carry string ids.
// Every comparison in the app goes through ID so the two never mix up.
package ident

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a record identifier normalized to its string form.
type ID string

// Norm converts an arbitrary identifier value to its normalized string form.
// PRE: none
// POST: Returns "" for nil, the decimal form for numbers, the value otherwise
func Norm(v any) ID {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return ID(t)
	case float64:
		return ID(strconv.FormatFloat(t, 'f', -1, 64))
	case int:
		return ID(strconv.Itoa(t))
	case int64:
		return ID(strconv.FormatInt(t, 10))
	case json.Number:
		return ID(t.String())
	default:
		return ID(fmt.Sprintf("%v", t))
	}
}

// String returns the normalized identifier.
func (id ID) String() string {
	return string(id)
}

// IsZero returns true when no identifier is present.
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts a JSON string, number, or null.
// PRE: data is valid JSON
// POST: id holds the normalized string form; null becomes ""
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON always emits the string form so ids written by this client
// stay consistently typed.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}
