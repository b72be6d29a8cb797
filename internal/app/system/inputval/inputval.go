// Package inputval validates request fields at the HTTP boundary.
// Validation runs after normalization, before anything reaches a store.
package inputval

import (
	"net/mail"
	"strings"
	"time"
)

// IsValidEmail reports whether s is a plausible email address.
// Addresses with display names ("User <user@example.com>") are rejected;
// only the bare addr-spec form is accepted.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// ParseAddress accepts display-name forms; require the exact addr-spec.
	if addr.Address != s {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return false
	}
	return true
}

// Required reports whether s is non-empty after trimming.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ParseTimestamp parses an optional RFC 3339 timestamp string.
// Empty input yields (nil, true); malformed input yields (nil, false).
func ParseTimestamp(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, false
	}
	t = t.UTC()
	return &t, true
}
