package service

import (
	"context"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/attribute"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/filter"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/stock"
)

// ProductView is a product together with the derived display values a
// card needs: the stock badge and the short attribute subset.
type ProductView struct {
	Product       model.Product         `json:"product"`
	Badge         stock.Badge           `json:"badge"`
	KeyAttributes []attribute.Formatted `json:"keyAttributes"`
}

// ProductDetail carries the full formatted attribute list for a detail view.
type ProductDetail struct {
	Product    model.Product         `json:"product"`
	Badge      stock.Badge           `json:"badge"`
	Attributes []attribute.Formatted `json:"attributes"`
}

// FilterResult is the outcome of one catalog filter pass. Degraded marks
// results computed by the local fallback after a remote failure; the
// product list itself is always populated on a best-effort basis.
type FilterResult struct {
	Shop        model.Shop    `json:"shop"`
	Products    []ProductView `json:"products"`
	Total       int           `json:"total"`
	Source      filter.Source `json:"source"`
	Degraded    bool          `json:"degraded"`
	FilterError string        `json:"filterError,omitempty"`
}

// CatalogService defines the catalog operations exposed to transport.
type CatalogService interface {
	// ListShops retrieves all shops.
	ListShops(ctx context.Context) ([]model.Shop, error)

	// GetShop retrieves a single shop by ID.
	GetShop(ctx context.Context, id string) (*model.Shop, error)

	// Categories derives the distinct, sorted category set of a shop's
	// product batch.
	Categories(ctx context.Context, shopID string) ([]model.Category, error)

	// FilterProducts runs one filtering pass over a shop's product batch.
	FilterProducts(ctx context.Context, shopID string, criteria filter.Criteria, authoritative bool) (*FilterResult, error)

	// GetProduct retrieves a single product with its full formatted
	// attribute list.
	GetProduct(ctx context.Context, id string) (*ProductDetail, error)
}
