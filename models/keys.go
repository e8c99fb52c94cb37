package models

import "strings"

// NormalizeKey canonicalizes the case-insensitive string keys used for store
// lookups (routeId, busNumber, source, destination).
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
