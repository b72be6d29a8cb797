// Package htmlsanitize strips unsafe HTML from user-generated content
// before it is persisted. Forum posts and comments pass through here.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows common formatting markup but removes scripts, event
// handlers, and javascript: URLs.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe HTML removed. Plain text passes through
// unchanged.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
