package catalog

import (
	"testing"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCategories(t *testing.T) {
	known := []model.Category{
		{ID: "CAT-EPICES", Name: "Épices", ShopID: "SHOP1"},
		{ID: "CAT-THES", Name: "Thés verts", ShopID: "SHOP1"},
		{ID: "CAT-ACCESSOIRES", Name: "Accessoires", ShopID: "SHOP1"},
	}

	products := []model.Product{
		{ID: "P1", CategoryID: "CAT-THES", ShopID: "SHOP1"},
		{ID: "P2", CategoryID: "CAT-EPICES", ShopID: "SHOP1"},
		{ID: "P3", CategoryID: "CAT-THES", ShopID: "SHOP1"},
		{ID: "P4", CategoryID: "CAT-EPICES", ShopID: "SHOP1"},
	}

	out := ExtractCategories(products, known)

	// Distinct, resolved to display names, sorted with French collation:
	// the accented É sorts with plain E, before T.
	require.Len(t, out, 2)
	assert.Equal(t, "Épices", out[0].Name)
	assert.Equal(t, "Thés verts", out[1].Name)
}

func TestExtractCategories_UnknownIDKeepsIdentity(t *testing.T) {
	products := []model.Product{
		{ID: "P1", CategoryID: "CAT-MYSTERE", ShopID: "SHOP1"},
	}

	out := ExtractCategories(products, nil)

	require.Len(t, out, 1)
	assert.Equal(t, "CAT-MYSTERE", out[0].ID)
	assert.Equal(t, "CAT-MYSTERE", out[0].Name)
	assert.Equal(t, "SHOP1", out[0].ShopID)
}

func TestExtractCategories_SkipsUncategorizedProducts(t *testing.T) {
	known := []model.Category{{ID: "CAT1", Name: "Blondes", ShopID: "SHOP1"}}
	products := []model.Product{
		{ID: "P1", CategoryID: "", ShopID: "SHOP1"},
		{ID: "P2", CategoryID: "CAT1", ShopID: "SHOP1"},
	}

	out := ExtractCategories(products, known)

	require.Len(t, out, 1)
	assert.Equal(t, "CAT1", out[0].ID)
}

func TestExtractCategories_EmptyBatch(t *testing.T) {
	out := ExtractCategories(nil, []model.Category{{ID: "CAT1", Name: "Blondes"}})

	// Declared but unreferenced categories are not part of the batch view.
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestExtractCategories_Deterministic(t *testing.T) {
	known := []model.Category{
		{ID: "CAT-B", Name: "Brunes", ShopID: "SHOP1"},
		{ID: "CAT-A", Name: "Ambrées", ShopID: "SHOP1"},
	}
	products := []model.Product{
		{ID: "P1", CategoryID: "CAT-B"},
		{ID: "P2", CategoryID: "CAT-A"},
	}

	first := ExtractCategories(products, known)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractCategories(products, known))
	}

	// Order follows the display name, not the batch encounter order.
	assert.Equal(t, "Ambrées", first[0].Name)
	assert.Equal(t, "Brunes", first[1].Name)
}

func TestExtractCategories_TiesBreakOnID(t *testing.T) {
	known := []model.Category{
		{ID: "CAT-2", Name: "Tisanes", ShopID: "SHOP1"},
		{ID: "CAT-1", Name: "Tisanes", ShopID: "SHOP1"},
	}
	products := []model.Product{
		{ID: "P1", CategoryID: "CAT-2"},
		{ID: "P2", CategoryID: "CAT-1"},
	}

	out := ExtractCategories(products, known)

	require.Len(t, out, 2)
	assert.Equal(t, "CAT-1", out[0].ID)
	assert.Equal(t, "CAT-2", out[1].ID)
}
