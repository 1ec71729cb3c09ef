package ports

import (
	"context"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// DashboardTotals is the headline counter row of the admin dashboard.
type DashboardTotals struct {
	TotalUsers      int64
	TotalProducts   int64
	TotalCategories int
}

// MonthlySignups is one point of the registration trend chart, e.g.
// {Month: "Jan 2026", Users: 42}.
type MonthlySignups struct {
	Month string
	Users int
}

// DashboardStats aggregates everything the admin dashboard renders in one
// response.
type DashboardStats struct {
	Totals            DashboardTotals
	RecentUsers       []*domain.User
	RecentProducts    []*domain.Product
	CategoryStats     []CategoryCount
	RegistrationTrend []MonthlySignups
}

// AdminService defines reporting and moderation operations. Handlers gate all
// of these behind the admin role.
type AdminService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	DeleteUser(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error
}
