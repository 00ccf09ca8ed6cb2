package interfaces

import (
	"context"

	domaintypes "kiib/internal/domain/types"
)

// SessionService is the single source of truth for authentication state.
// It owns the in-memory projection of the persisted credential and is the
// only component allowed to mutate it outside the API client's 401 path.
type SessionService interface {
	// Restore initialises the session from persisted storage. Called once
	// at process start; synchronous; never fails. A credential that cannot
	// be read restores to anonymous.
	Restore()

	// Login records the credential and transitions to authenticated.
	// The token is trusted as handed in; no format validation.
	Login(token string, role domaintypes.Role) error

	// Logout clears the credential and transitions to anonymous.
	// Idempotent: a logout while anonymous is a no-op.
	Logout() error

	// Invalidate flips the in-memory state to anonymous after the API
	// client evicted the persisted credential on a 401.
	Invalidate()

	IsAuthenticated() bool
	Role() (domaintypes.Role, bool)
	Loading() bool
	State() domaintypes.SessionState

	// Claims decodes the stored access token without verification, for
	// display purposes only.
	Claims() (domaintypes.TokenClaims, error)
}

// AccountService exposes profile operations.
type AccountService interface {
	Profile(ctx context.Context) (domaintypes.UserProfile, error)
	Update(ctx context.Context, update domaintypes.ProfileUpdate) (domaintypes.UserProfile, error)
	Register(ctx context.Context, reg domaintypes.Registration) (domaintypes.UserProfile, error)
}

// LedgerService exposes the points ledger.
type LedgerService interface {
	// History fetches the caller's transactions and refreshes the offline
	// cache on success.
	History(ctx context.Context) ([]domaintypes.Transaction, error)

	// CachedHistory returns the transactions from the last successful fetch.
	CachedHistory(ctx context.Context) ([]domaintypes.Transaction, error)

	Accrue(ctx context.Context, req domaintypes.AccrueRequest) (domaintypes.AccrueResult, error)

	// Verify checks each transaction's Ed25519 signature against the given
	// hex-encoded admin public key.
	Verify(txs []domaintypes.Transaction, adminPublicKeyHex string) []error
}

// PostsService exposes announcement posts.
type PostsService interface {
	List(ctx context.Context) ([]domaintypes.Post, error)
	CachedList(ctx context.Context) ([]domaintypes.Post, error)
	Create(ctx context.Context, draft domaintypes.PostDraft) (domaintypes.Post, error)
	Delete(ctx context.Context, id int64) error
}

// AchievementsService submits achievement files for review.
type AchievementsService interface {
	Upload(ctx context.Context, path string) error
}
