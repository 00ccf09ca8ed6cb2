package interfaces

import (
	"context"
	"io"

	domaintypes "kiib/internal/domain/types"
)

// APIClient is the single choke point for all backend calls, all with
// context. Implementations attach the stored bearer credential to every
// outgoing request and evict it when the backend answers 401; beyond that
// eviction side effect every failure is propagated to the caller unchanged.
type APIClient interface {
	// Login exchanges form-encoded credentials for a bearer token and role.
	Login(ctx context.Context, username, password string) (domaintypes.Credential, error)

	// Register creates a new student account.
	Register(ctx context.Context, reg domaintypes.Registration) (domaintypes.UserProfile, error)

	// Me fetches the authenticated account's profile.
	Me(ctx context.Context) (domaintypes.UserProfile, error)

	// UpdateProfile partially updates the caller's own profile.
	UpdateProfile(ctx context.Context, update domaintypes.ProfileUpdate) (domaintypes.UserProfile, error)

	// History returns the caller's ledger transactions, newest first.
	History(ctx context.Context) ([]domaintypes.Transaction, error)

	// Accrue credits points to a student. Admin-only on the backend.
	Accrue(ctx context.Context, req domaintypes.AccrueRequest) (domaintypes.AccrueResult, error)

	// ListPosts returns all announcement posts, newest first.
	ListPosts(ctx context.Context) ([]domaintypes.Post, error)

	// CreatePost publishes an announcement. Admin-only on the backend.
	CreatePost(ctx context.Context, draft domaintypes.PostDraft) (domaintypes.Post, error)

	// DeletePost removes an announcement. Admin-only on the backend.
	DeletePost(ctx context.Context, id int64) error

	// UploadAchievement submits a file for review.
	UploadAchievement(ctx context.Context, filename string, r io.Reader) error
}
