package account

import (
	"context"

	"kiib/internal/domain"
)

// Service exposes profile operations over the API client.
type Service struct {
	client domain.APIClient
}

// New returns an account service backed by the given API client.
func New(client domain.APIClient) *Service { return &Service{client: client} }

// Profile fetches the authenticated account's profile.
func (s *Service) Profile(ctx context.Context) (domain.UserProfile, error) {
	return s.client.Me(ctx)
}

// Update partially updates the caller's own profile and returns the result.
func (s *Service) Update(ctx context.Context, update domain.ProfileUpdate) (domain.UserProfile, error) {
	return s.client.UpdateProfile(ctx, update)
}

// Register creates a new student account. Registration does not log in;
// the caller logs in afterwards with the same credentials.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (domain.UserProfile, error) {
	return s.client.Register(ctx, reg)
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
