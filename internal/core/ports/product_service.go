package ports

import (
	"context"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// AddProductInput carries all data needed to create a listing. ContactEmail
// and ContactPhone are frozen into the embedded seller snapshot exactly as
// submitted.
type AddProductInput struct {
	Name         string
	Category     string
	Price        float64
	Description  string
	SellerID     string
	ContactEmail string
	ContactPhone string
	Image        *ImageUpload
}

// ProductService defines use-case operations for listings.
type ProductService interface {
	Add(ctx context.Context, input AddProductInput) (*domain.Product, error)
	ListAll(ctx context.Context) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Product, error)
}
