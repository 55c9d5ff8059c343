package integration

import (
	"context"
	"testing"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/filter"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/repository"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The full local stack over a real database: repositories, pipeline and
// service, no HTTP.
func TestCatalogService_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()

	shopRepo := repository.NewShopRepository(testDB.Pool, logger)
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	pipeline := filter.NewPipeline(nil, logger)
	svc := service.NewCatalogService(shopRepo, productRepo, pipeline, logger)

	ctx := context.Background()

	CleanupDB(t, testDB.Pool)
	SeedCatalog(t, testDB.Pool)

	t.Run("Vertical filtering over a stored batch", func(t *testing.T) {
		criteria := filter.Criteria{
			Brewery: &filter.BreweryCriteria{HopVariety: "Cascade"},
		}

		result, err := svc.FilterProducts(ctx, "SHOP-BREW", criteria, false)
		require.NoError(t, err)
		assert.False(t, result.Degraded)
		require.Equal(t, 1, result.Total)
		assert.Equal(t, "P001", result.Products[0].Product.ID)
		assert.Equal(t, "En stock (25)", result.Products[0].Badge.Text)
	})

	t.Run("Stock bucket filtering", func(t *testing.T) {
		criteria := filter.Criteria{StockStatus: model.StockStatusOut}

		result, err := svc.FilterProducts(ctx, "SHOP-BREW", criteria, false)
		require.NoError(t, err)

		// The stout has zero stock; the accessory without attributes folds
		// into the same bucket.
		ids := make([]string, 0, result.Total)
		for _, v := range result.Products {
			ids = append(ids, v.Product.ID)
		}
		assert.ElementsMatch(t, []string{"P003", "P004"}, ids)
	})

	t.Run("Derived categories resolve names and sort", func(t *testing.T) {
		categories, err := svc.Categories(ctx, "SHOP-BREW")
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Blondes", categories[0].Name)
		assert.Equal(t, "IPA", categories[1].Name)
	})

	t.Run("Product detail carries formatted attributes", func(t *testing.T) {
		detail, err := svc.GetProduct(ctx, "P005")
		require.NoError(t, err)
		assert.Equal(t, "Darjeeling de printemps", detail.Product.Name)
		assert.NotEmpty(t, detail.Attributes)
	})
}
