package interfaces

import domaintypes "kiib/internal/domain/types"

// CredentialStore persists the bearer credential between runs. It is the
// only shared mutable resource in the client: the API client reads it on
// every request and evicts it on an authorisation failure, the session
// service writes it on login and logout.
type CredentialStore interface {
	// SaveCredential stores the credential, replacing any previous one.
	SaveCredential(cred domaintypes.Credential) error

	// LoadCredential returns the stored credential, if any. A missing
	// credential is (zero, false, nil), not an error.
	LoadCredential() (domaintypes.Credential, bool, error)

	// ClearCredential removes the stored credential. Clearing an absent
	// credential is a no-op.
	ClearCredential() error
}
