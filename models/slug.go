package models

import "strings"

// Slugify derives a URL-safe slug from a title: lowercase, whitespace runs
// collapsed to single hyphens, everything outside [a-z0-9-] stripped.
// Deterministic; performs no uniqueness check against the database.
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	lastHyphen := false
	for _, r := range lowered {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastHyphen = true
			}
		case r == '-':
			b.WriteRune('-')
			lastHyphen = false
		}
	}

	return strings.Trim(b.String(), "-")
}
