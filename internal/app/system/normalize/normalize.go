// Package normalize canonicalizes user-supplied field values before they are
// validated or stored.
package normalize

import "strings"

// Email lowercases and trims an email address. Two registrations that differ
// only in case must hit the same stored document in the duplicate pre-check.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Status lowercases and trims a status value ("lost", "found").
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Text trims surrounding whitespace from free-text fields.
func Text(s string) string {
	return strings.TrimSpace(s)
}

// Tags trims each tag and drops empties, preserving order.
func Tags(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
