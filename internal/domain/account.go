package domain

import (
	"encoding/json"
	"strings"
	"unicode"
)

// AccountID is an opaque account identifier. It is always handled as a
// string: an id like "0053629" keeps its leading zeros through every
// serialization and lookup boundary.
type AccountID string

const maxAccountIDLen = 128

// ParseAccountID validates a raw string and returns it as an AccountID.
func ParseAccountID(raw string) (AccountID, error) {
	if raw != strings.TrimSpace(raw) {
		return "", &ValidationError{Field: "account", Reason: "must not have leading or trailing whitespace"}
	}
	if raw == "" {
		return "", &ValidationError{Field: "account", Reason: "must not be empty"}
	}
	if len(raw) > maxAccountIDLen {
		return "", &ValidationError{Field: "account", Reason: "too long"}
	}
	for _, r := range raw {
		if unicode.IsControl(r) {
			return "", &ValidationError{Field: "account", Reason: "must not contain control characters"}
		}
	}
	return AccountID(raw), nil
}

func (a AccountID) String() string { return string(a) }

// UnmarshalJSON accepts only JSON strings. A bare numeral in the document
// (the symptom of an id having passed through numeric coercion) is rejected
// rather than silently adopted.
func (a *AccountID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &ValidationError{Field: "account", Reason: "must be a JSON string, not a numeral"}
	}
	id, err := ParseAccountID(s)
	if err != nil {
		return err
	}
	*a = id
	return nil
}
