package repository

import (
	"context"
	"fmt"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// shopRepository implements the ShopRepository interface using PostgreSQL.
type shopRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewShopRepository creates a new PostgreSQL-backed shop repository.
func NewShopRepository(pool *pgxpool.Pool, logger zerolog.Logger) ShopRepository {
	return &shopRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "shop").Logger(),
	}
}

// GetAll retrieves all shops with their declared categories.
func (r *shopRepository) GetAll(ctx context.Context) ([]model.Shop, error) {
	query := `
		SELECT id, name, shop_type
		FROM shops
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query shops")
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	var shops []model.Shop
	for rows.Next() {
		var s model.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Vertical); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan shop row")
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating shop rows")
		return nil, fmt.Errorf("error iterating shops: %w", err)
	}

	for i := range shops {
		categories, err := r.categoriesOf(ctx, shops[i].ID)
		if err != nil {
			return nil, err
		}
		shops[i].Categories = categories
	}

	return shops, nil
}

// GetByID retrieves a single shop by its ID, including categories.
func (r *shopRepository) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	query := `
		SELECT id, name, shop_type
		FROM shops
		WHERE id = $1
	`

	var s model.Shop
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Vertical)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("shop_id", id).Msg("shop not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("shop_id", id).Msg("failed to query shop")
		return nil, fmt.Errorf("failed to query shop: %w", err)
	}

	categories, err := r.categoriesOf(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Categories = categories

	return &s, nil
}

// categoriesOf loads the categories a shop declares.
func (r *shopRepository) categoriesOf(ctx context.Context, shopID string) ([]model.Category, error) {
	query := `
		SELECT id, name, shop_id
		FROM categories
		WHERE shop_id = $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, shopID)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", shopID).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ShopID); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
