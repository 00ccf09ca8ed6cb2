package types

import (
	"fmt"
	"strings"
	"time"
)

// Role is the backend-assigned account role.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a role string received from the backend.
// Anything other than the two known roles is rejected at the boundary.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(s)) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// String returns the string form of the role.
func (r Role) String() string { return string(r) }

// IsAdmin reports whether the role grants administrative actions.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// SessionState enumerates the session lifecycle.
//
// The session starts in StateRestoring, moves exactly once to either
// StateAnonymous or StateAuthenticated during restore, and never returns
// to StateRestoring for the lifetime of the process.
type SessionState int

const (
	StateRestoring SessionState = iota
	StateAnonymous
	StateAuthenticated
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Timestamp wraps time.Time to accept the backend's timestamp formats.
// FastAPI serialises naive datetimes without a zone offset, which the
// stock time.Time decoder refuses.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
}

// UnmarshalJSON decodes a JSON timestamp in any accepted layout.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// MarshalJSON encodes the timestamp as RFC 3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}
