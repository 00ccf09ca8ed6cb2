package commands

import "fmt"

// requireLogin rejects commands early when no session is present. The
// backend is still the authority; this only saves a doomed round trip.
func requireLogin() error {
	if !wire.Session.IsAuthenticated() {
		return fmt.Errorf("not logged in; run: kiib login <username>")
	}
	return nil
}

// requireAdmin additionally rejects non-admin sessions for admin-only
// operations, mirroring the backend's 403.
func requireAdmin() error {
	if err := requireLogin(); err != nil {
		return err
	}
	if role, ok := wire.Session.Role(); !ok || !role.IsAdmin() {
		return fmt.Errorf("this action requires the admin role")
	}
	return nil
}
