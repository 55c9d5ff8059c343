package repository

import (
	"context"
	"sort"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/rs/zerolog"
)

// memoryStore holds an in-memory catalog. Used in demo mode, where the
// catalog is loaded once from a fixture batch and is read-only afterwards;
// no locking is needed.
type memoryStore struct {
	shops    []model.Shop
	products map[string][]model.Product // keyed by shop id, dataset order
	byID     map[string]model.Product
}

// memoryShopRepository implements ShopRepository over a memoryStore.
type memoryShopRepository struct {
	store  *memoryStore
	logger zerolog.Logger
}

// memoryProductRepository implements ProductRepository over a memoryStore.
type memoryProductRepository struct {
	store  *memoryStore
	logger zerolog.Logger
}

// NewMemoryRepositories creates shop and product repositories backed by
// the given in-memory catalog.
func NewMemoryRepositories(shops []model.Shop, products []model.Product, logger zerolog.Logger) (ShopRepository, ProductRepository) {
	store := &memoryStore{
		shops:    make([]model.Shop, len(shops)),
		products: make(map[string][]model.Product),
		byID:     make(map[string]model.Product, len(products)),
	}

	copy(store.shops, shops)
	sort.SliceStable(store.shops, func(i, j int) bool { return store.shops[i].Name < store.shops[j].Name })

	for _, p := range products {
		store.products[p.ShopID] = append(store.products[p.ShopID], p)
		store.byID[p.ID] = p
	}

	logger = logger.With().Str("repository", "memory").Logger()
	logger.Info().
		Int("shops", len(shops)).
		Int("products", len(products)).
		Msg("in-memory catalog initialised")

	return &memoryShopRepository{store: store, logger: logger},
		&memoryProductRepository{store: store, logger: logger}
}

// GetAll retrieves all shops with their declared categories.
func (r *memoryShopRepository) GetAll(ctx context.Context) ([]model.Shop, error) {
	out := make([]model.Shop, len(r.store.shops))
	copy(out, r.store.shops)
	return out, nil
}

// GetByID retrieves a single shop by its ID.
func (r *memoryShopRepository) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	for _, s := range r.store.shops {
		if s.ID == id {
			shop := s
			return &shop, nil
		}
	}
	r.logger.Debug().Str("shop_id", id).Msg("shop not found")
	return nil, nil
}

// GetByShop retrieves the product batch of a shop in dataset order.
func (r *memoryProductRepository) GetByShop(ctx context.Context, shopID string) ([]model.Product, error) {
	batch := r.store.products[shopID]
	out := make([]model.Product, len(batch))
	copy(out, batch)
	return out, nil
}

// GetByID retrieves a single product by its ID.
func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if p, ok := r.store.byID[id]; ok {
		return &p, nil
	}
	r.logger.Debug().Str("product_id", id).Msg("product not found")
	return nil, nil
}
