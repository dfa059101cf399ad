package domain

import (
	"regexp"
)

// Validation Helpers

var (
	zoneIDRegex    = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]*$`)
	sessionIDRegex = regexp.MustCompile(`^[a-zA-Z0-9\-_.]+$`)
)

// IsValidZoneID checks if the string is a well-formed zone identifier
// (lowercase alphanumeric with dashes, as used by the seed zones).
func IsValidZoneID(id string) bool {
	if len(id) == 0 || len(id) > 64 {
		return false
	}
	return zoneIDRegex.MatchString(id)
}

// IsValidSessionID checks if a client-supplied session token is safe to
// store. Tokens are opaque; only shape is enforced.
func IsValidSessionID(sid string) bool {
	if len(sid) == 0 || len(sid) > 128 {
		return false
	}
	return sessionIDRegex.MatchString(sid)
}
