package posts

import (
	"context"
	"fmt"

	"kiib/internal/cache"
	"kiib/internal/domain"
)

// Service exposes announcement posts over the API client.
type Service struct {
	client domain.APIClient
	cache  *cache.Cache
}

// New returns a posts service. cache may be nil to disable the offline
// snapshot.
func New(client domain.APIClient, c *cache.Cache) *Service {
	return &Service{client: client, cache: c}
}

// List fetches all posts and refreshes the offline cache on success.
// A cache write failure does not fail the fetch.
func (s *Service) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.ReplacePosts(ctx, posts)
	}
	return posts, nil
}

// CachedList returns the posts from the last successful fetch.
func (s *Service) CachedList(ctx context.Context) ([]domain.Post, error) {
	if s.cache == nil {
		return nil, fmt.Errorf("offline cache disabled")
	}
	return s.cache.Posts(ctx)
}

// Create publishes an announcement. The backend enforces the admin role.
func (s *Service) Create(ctx context.Context, draft domain.PostDraft) (domain.Post, error) {
	return s.client.CreatePost(ctx, draft)
}

// Delete removes an announcement. The backend enforces the admin role.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.client.DeletePost(ctx, id)
}

// Compile-time assertion that Service implements domain.PostsService.
var _ domain.PostsService = (*Service)(nil)
