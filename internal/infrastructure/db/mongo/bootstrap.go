package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// Bootstrap ensures indexes on all collections and seeds the administrative
// account. It runs once at process start, before the server accepts traffic.
func Bootstrap(ctx context.Context, users *UserRepository, products *ProductRepository, notifications *NotificationRepository, adminEmail, adminPassword string, log zerolog.Logger) error {
	if err := users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := products.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("product indexes: %w", err)
	}
	if err := notifications.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("notification indexes: %w", err)
	}

	return seedAdmin(ctx, users, adminEmail, adminPassword, log)
}

// seedAdmin creates the admin account if it does not exist yet. The admin is
// an ordinary user record with the admin role; its credentials go through the
// same bcrypt path as everyone else's.
func seedAdmin(ctx context.Context, users *UserRepository, email, password string, log zerolog.Logger) error {
	if password == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set, skipping admin account seed")
		return nil
	}

	_, err := users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("look up admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := users.Create(ctx, admin); err != nil {
		// A concurrent replica may have seeded it first.
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("seed admin account: %w", err)
	}

	log.Info().Str("email", email).Msg("admin account seeded")
	return nil
}
