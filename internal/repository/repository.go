package repository

import (
	"context"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"
)

// ShopRepository defines the interface for shop data access operations.
type ShopRepository interface {
	// GetAll retrieves all shops with their declared categories.
	GetAll(ctx context.Context) ([]model.Shop, error)

	// GetByID retrieves a single shop by its ID, including categories.
	// Returns nil (no error) when the shop does not exist.
	GetByID(ctx context.Context, id string) (*model.Shop, error)
}

// ProductRepository defines the interface for product data access
// operations. Products are returned in a stable order so that repeated
// filter passes over the same batch stay deterministic.
type ProductRepository interface {
	// GetByShop retrieves the full product batch of a shop.
	GetByShop(ctx context.Context, shopID string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns nil (no error) when the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}
