package ports

import (
	"context"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched; a non-nil pointer to an empty string clears the field (phone may
// legitimately be reset to "").
type ProfilePatch struct {
	Name         *string
	Email        *string
	Phone        *string
	ProfileImage *string
}

// RegistrationBucket is one month of signups, used by the admin dashboard.
type RegistrationBucket struct {
	Year  int
	Month int
	Count int
}

// UserRepository defines persistence operations for user accounts.
// Email uniqueness is enforced by a unique index; Create surfaces a
// duplicate-key violation as domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)

	// Admin queries.
	List(ctx context.Context) ([]*domain.User, error)
	Recent(ctx context.Context, limit int) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	RegistrationTrend(ctx context.Context, months int) ([]RegistrationBucket, error)
	Delete(ctx context.Context, id string) error
}
