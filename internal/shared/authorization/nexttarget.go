package authorization

import "strings"

// DefaultNextTarget is where a resumed request lands when the requested
// target cannot be trusted.
const DefaultNextTarget = "/"

// SafeNextTarget validates a post-login redirect target. Only same-origin
// relative paths survive; absolute URLs, scheme-relative ("//host") and
// backslash variants are replaced with the default landing page so a crafted
// "next" parameter cannot bounce the user off-site.
func SafeNextTarget(raw string) string {
	if raw == "" {
		return DefaultNextTarget
	}
	if !strings.HasPrefix(raw, "/") {
		return DefaultNextTarget
	}
	if strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return DefaultNextTarget
	}
	if strings.ContainsAny(raw, "\r\n") {
		return DefaultNextTarget
	}
	return raw
}
