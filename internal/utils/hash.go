package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// routeTimeWidth is the length of a zero-padded "HH:MM" time.
const routeTimeWidth = 5

// RouteFingerprint returns a stable hex SHA-256 identifier of a route.
//
// Source and destination are trimmed and lowercased; time is trimmed and
// left-padded with '0' to "HH:MM" width, so "9:05" and "09:05" agree. The
// three parts are joined with '-' before hashing.
//
// No endpoint uses it yet.
func RouteFingerprint(source, destination, time string) string {
	key := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(source)),
		strings.ToLower(strings.TrimSpace(destination)),
		padTime(strings.TrimSpace(time)),
	}, "-")

	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func padTime(t string) string {
	if len(t) >= routeTimeWidth {
		return t
	}

	return strings.Repeat("0", routeTimeWidth-len(t)) + t
}
