package ports

import (
	"context"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// CategoryCount is one row of the admin dashboard's top-categories table.
type CategoryCount struct {
	Category string
	Count    int
}

// ProductRepository defines persistence operations for listings.
// All list queries return newest-first.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	ListAll(ctx context.Context) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Product, error)

	// Admin queries.
	Recent(ctx context.Context, limit int) ([]*domain.Product, error)
	Count(ctx context.Context) (int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryCount, error)
	Delete(ctx context.Context, id string) error
}
