// Package user identifies the person operating the client so the backend
// can attribute assignments and bookings in its logs.
package user

import (
	"os"
	"os/user"
	"strings"
)

// Header carries the operator name on every backend request
const Header = "X-Plantel-User"

// Unknown is reported when no name can be found
const Unknown = "unknown"

// GetCurrentUsername returns the current system username.
// It tries, in order: PLANTEL_USER, the OS account, the USER variable and
// finally Unknown.
func GetCurrentUsername() string {
	if name := strings.TrimSpace(os.Getenv("PLANTEL_USER")); name != "" {
		return name
	}

	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username
	}

	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return Unknown
}

// FromHeader returns the operator named in a request header value, or
// Unknown when the header is missing
func FromHeader(value string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return Unknown
}
