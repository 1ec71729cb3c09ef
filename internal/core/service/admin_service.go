package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

const (
	recentLimit        = 5
	topCategoriesLimit = 10
	trendMonths        = 12
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// AdminService implements the dashboard reporting queries and the moderation
// delete operations.
type AdminService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewAdminService(users ports.UserRepository, products ports.ProductRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, products: products, log: log}
}

// Stats assembles the full dashboard payload: headline totals, the last five
// users and products, the top-10 categories, and the monthly signup trend.
func (s *AdminService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	categories, err := s.products.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}

	recentUsers, err := s.users.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}

	recentProducts, err := s.products.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent products: %w", err)
	}

	categoryStats, err := s.products.TopCategories(ctx, topCategoriesLimit)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}

	trend, err := s.users.RegistrationTrend(ctx, trendMonths)
	if err != nil {
		return nil, fmt.Errorf("registration trend: %w", err)
	}

	return &ports.DashboardStats{
		Totals: ports.DashboardTotals{
			TotalUsers:      userCount,
			TotalProducts:   productCount,
			TotalCategories: len(categories),
		},
		RecentUsers:       recentUsers,
		RecentProducts:    recentProducts,
		CategoryStats:     categoryStats,
		RegistrationTrend: formatTrend(trend),
	}, nil
}

// formatTrend renders year/month buckets as chart labels, e.g. "Jan 2026".
func formatTrend(buckets []ports.RegistrationBucket) []ports.MonthlySignups {
	out := make([]ports.MonthlySignups, 0, len(buckets))
	for _, b := range buckets {
		if b.Month < 1 || b.Month > 12 {
			continue
		}
		out = append(out, ports.MonthlySignups{
			Month: fmt.Sprintf("%s %d", monthNames[b.Month-1], b.Year),
			Users: b.Count,
		})
	}
	return out
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.ListAll(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted by admin")
	return nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted by admin")
	return nil
}
