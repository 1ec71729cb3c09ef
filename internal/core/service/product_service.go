package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/electromart/marketplace-api/internal/api/metrics"
	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

// ProductService implements listing creation and the public browse queries.
type ProductService struct {
	products ports.ProductRepository
	images   ports.ImageStore
	log      zerolog.Logger
}

func NewProductService(products ports.ProductRepository, images ports.ImageStore, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, images: images, log: log}
}

// Add creates a listing owned by the caller. The seller's contact details are
// frozen into the product document as submitted and never re-synced with the
// live user record.
func (s *ProductService) Add(ctx context.Context, input ports.AddProductInput) (*domain.Product, error) {
	if !domain.ValidCategory(input.Category) {
		return nil, domain.ErrInvalidCategory
	}

	imagePath := ""
	if input.Image != nil {
		path, err := s.images.Save(ctx, ports.ImageKindProduct, *input.Image)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}

	product := &domain.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		Image:       imagePath,
		Seller: domain.Seller{
			UserID: input.SellerID,
			Email:  input.ContactEmail,
			Phone:  input.ContactPhone,
		},
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.log.Info().
		Str("product_id", created.ID).
		Str("category", created.Category).
		Str("seller_id", created.Seller.UserID).
		Msg("product added")

	return created, nil
}

func (s *ProductService) ListAll(ctx context.Context) ([]*domain.Product, error) {
	return s.products.ListAll(ctx)
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.products.ListByCategory(ctx, category)
}

func (s *ProductService) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Product, error) {
	return s.products.ListBySeller(ctx, sellerID)
}
