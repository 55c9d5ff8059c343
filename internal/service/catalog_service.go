package service

import (
	"context"
	"fmt"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/attribute"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/catalog"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/filter"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/repository"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/stock"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	pipeline    *filter.Pipeline
	parser      *attribute.Parser
	stocks      *stock.Evaluator
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
	pipeline *filter.Pipeline,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		shopRepo:    shopRepo,
		productRepo: productRepo,
		pipeline:    pipeline,
		parser:      attribute.NewParser(logger),
		stocks:      stock.NewEvaluator(logger),
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// ListShops retrieves all shops.
func (s *catalogService) ListShops(ctx context.Context) ([]model.Shop, error) {
	shops, err := s.shopRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list shops")
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	s.logger.Debug().Int("count", len(shops)).Msg("retrieved shops")

	return shops, nil
}

// GetShop retrieves a single shop by ID.
func (s *catalogService) GetShop(ctx context.Context, id string) (*model.Shop, error) {
	if id == "" {
		s.logger.Warn().Msg("shop ID is empty")
		return nil, model.ErrShopNotFound
	}

	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("shop_id", id).Msg("failed to get shop by ID")
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	if shop == nil {
		s.logger.Debug().Str("shop_id", id).Msg("shop not found")
		return nil, model.ErrShopNotFound
	}

	return shop, nil
}

// Categories derives the distinct, sorted category set of a shop's product
// batch, resolved against the categories the shop declares.
func (s *catalogService) Categories(ctx context.Context, shopID string) ([]model.Category, error) {
	shop, err := s.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetByShop(ctx, shopID)
	if err != nil {
		s.logger.Error().Err(err).Str("shop_id", shopID).Msg("failed to get products for category extraction")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return catalog.ExtractCategories(products, shop.Categories), nil
}

// FilterProducts runs one filtering pass over a shop's product batch and
// decorates the surviving products with their display values.
func (s *catalogService) FilterProducts(ctx context.Context, shopID string, criteria filter.Criteria, authoritative bool) (*FilterResult, error) {
	shop, err := s.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetByShop(ctx, shopID)
	if err != nil {
		s.logger.Error().Err(err).Str("shop_id", shopID).Msg("failed to get product batch")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	outcome := s.pipeline.Apply(ctx, filter.Request{
		Shop:          *shop,
		Products:      products,
		Criteria:      criteria,
		Authoritative: authoritative,
	})

	result := &FilterResult{
		Shop:     *shop,
		Products: s.views(outcome.Products),
		Total:    len(outcome.Products),
		Source:   outcome.Source,
		Degraded: outcome.Status != filter.StatusOK,
	}
	if outcome.Err != nil {
		result.FilterError = outcome.Err.Error()
	}

	s.logger.Debug().
		Str("shop_id", shopID).
		Int("batch", len(products)).
		Int("matched", result.Total).
		Str("source", string(outcome.Source)).
		Bool("degraded", result.Degraded).
		Msg("filtered products")

	return result, nil
}

// GetProduct retrieves a single product with its full formatted attribute
// list for a detail view.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*ProductDetail, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	rec, _ := s.parser.Parse(*product)
	attrs := attribute.Decode(rec)

	return &ProductDetail{
		Product:    *product,
		Badge:      s.stocks.Badge(*product),
		Attributes: attribute.AllAttributes(attrs),
	}, nil
}

// views decorates filtered products with card display values.
func (s *catalogService) views(products []model.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		rec, _ := s.parser.Parse(p)
		attrs := attribute.Decode(rec)
		out = append(out, ProductView{
			Product:       p,
			Badge:         s.stocks.Badge(p),
			KeyAttributes: attribute.CardAttributes(attrs),
		})
	}
	return out
}
