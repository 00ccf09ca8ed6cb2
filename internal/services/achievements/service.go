package achievements

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"kiib/internal/domain"
)

// Service submits achievement files for review.
type Service struct {
	client domain.APIClient
}

// New returns an achievements service backed by the given API client.
func New(client domain.APIClient) *Service { return &Service{client: client} }

// Upload sends the file at path to the backend for review. The file is
// streamed under its base name; validation happens server-side.
func (s *Service) Upload(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open achievement file: %w", err)
	}
	defer f.Close()

	return s.client.UploadAchievement(ctx, filepath.Base(path), f)
}

// Compile-time assertion that Service implements domain.AchievementsService.
var _ domain.AchievementsService = (*Service)(nil)
