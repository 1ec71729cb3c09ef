package ports

import (
	"context"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// UpdateProfileInput carries a partial profile edit. Nil fields are left
// unchanged. Image, when present, replaces the stored profile picture and the
// previous file is removed best-effort.
type UpdateProfileInput struct {
	Name  *string
	Email *string
	Phone *string
	Image *ImageUpload
}

// ProfileService exposes the authenticated user's own account.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
}
