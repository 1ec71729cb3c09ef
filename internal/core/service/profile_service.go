package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/electromart/marketplace-api/internal/api/metrics"
	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

// ProfileService reads and partially updates the caller's own account.
type ProfileService struct {
	users  ports.UserRepository
	images ports.ImageStore
	log    zerolog.Logger
}

func NewProfileService(users ports.UserRepository, images ports.ImageStore, log zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, images: images, log: log}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Update applies a partial profile edit. When a new image is supplied, the
// previous one is deleted after the record points at the replacement; a
// failed deletion is logged and counted but never fails the update.
func (s *ProfileService) Update(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	current, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch := ports.ProfilePatch{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	if input.Image != nil {
		path, err := s.images.Save(ctx, ports.ImageKindProfile, *input.Image)
		if err != nil {
			return nil, err
		}
		patch.ProfileImage = &path
	}

	updated, err := s.users.UpdateProfile(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	if patch.ProfileImage != nil && current.ProfileImage != "" {
		if err := s.images.Remove(current.ProfileImage); err != nil {
			metrics.OrphanImageCleanupFailures.Inc()
			s.log.Warn().Err(err).
				Str("user_id", userID).
				Str("image", current.ProfileImage).
				Msg("failed to delete replaced profile image")
		}
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}
