package stock

import (
	"fmt"
	"testing"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func productWithStock(stock int) model.Product {
	return model.Product{
		ID:         "P001",
		Attributes: fmt.Sprintf(`{"stock": %d}`, stock),
	}
}

func TestEvaluator_IsOutOfStock(t *testing.T) {
	e := NewEvaluator(zerolog.Nop())

	tests := []struct {
		name    string
		product model.Product
		expect  bool
	}{
		{"Stock of zero is out of stock", productWithStock(0), true},
		{"Positive stock is not out of stock", productWithStock(5), false},
		{"No attributes is not out of stock", model.Product{ID: "P001"}, false},
		{"No stock field is not out of stock", model.Product{ID: "P001", Attributes: `{"grade_qualite": "FTGFOP"}`}, false},
		{"Malformed attributes is not out of stock", model.Product{ID: "P001", Attributes: `oops{`}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, e.IsOutOfStock(tt.product))
		})
	}
}

func TestEvaluator_HasLowStock(t *testing.T) {
	e := NewEvaluator(zerolog.Nop())

	tests := []struct {
		name    string
		product model.Product
		expect  bool
	}{
		{"Below threshold", productWithStock(5), true},
		{"Zero stock also satisfies low stock", productWithStock(0), true},
		{"Exactly at threshold is not low", productWithStock(LowStockThreshold), false},
		{"Above threshold", productWithStock(25), false},
		{"No stock field", model.Product{ID: "P001", Attributes: `{}`}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, e.HasLowStock(tt.product))
		})
	}
}

func TestEvaluator_Badge(t *testing.T) {
	e := NewEvaluator(zerolog.Nop())

	tests := []struct {
		name    string
		product model.Product
		expect  Badge
	}{
		{"Out of stock", productWithStock(0), Badge{Color: ColorRed, Text: "Rupture"}},
		{"Low stock", productWithStock(5), Badge{Color: ColorOrange, Text: "Stock faible (5)"}},
		{"In stock", productWithStock(25), Badge{Color: ColorGreen, Text: "En stock (25)"}},
		{"Threshold itself shows in stock", productWithStock(LowStockThreshold), Badge{Color: ColorGreen, Text: "En stock (10)"}},
		{"No attributes at all", model.Product{ID: "P001"}, Badge{Color: ColorGray, Text: "Stock inconnu"}},
		{"No stock field", model.Product{ID: "P001", Attributes: `{"type_peau": "mixte"}`}, Badge{Color: ColorGray, Text: "Stock inconnu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, e.Badge(tt.product))
		})
	}
}

// Badge outcomes are mutually exclusive and total: every product lands in
// exactly one of the four.
func TestEvaluator_BadgeTotality(t *testing.T) {
	e := NewEvaluator(zerolog.Nop())

	known := map[string]bool{
		ColorRed: true, ColorOrange: true, ColorGreen: true, ColorGray: true,
	}

	for s := 0; s <= 30; s++ {
		badge := e.Badge(productWithStock(s))
		assert.True(t, known[badge.Color], "stock %d produced unknown badge color %q", s, badge.Color)
	}
	assert.True(t, known[e.Badge(model.Product{}).Color])
}

func TestBucket(t *testing.T) {
	ptr := func(v int) *int { return &v }

	tests := []struct {
		name   string
		stock  *int
		expect model.StockStatus
	}{
		{"Nil stock folds into out of stock", nil, model.StockStatusOut},
		{"Zero stock", ptr(0), model.StockStatusOut},
		{"One", ptr(1), model.StockStatusLow},
		{"Threshold is still low for the bucket filter", ptr(LowStockThreshold), model.StockStatusLow},
		{"Above threshold", ptr(LowStockThreshold + 1), model.StockStatusIn},
		{"Large stock", ptr(500), model.StockStatusIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Bucket(tt.stock))
		})
	}
}

// Bucket disjointness: for any defined stock count exactly one bucket holds.
func TestBucketDisjointness(t *testing.T) {
	for s := 0; s <= 100; s++ {
		v := s
		bucket := Bucket(&v)

		matches := 0
		for _, candidate := range []model.StockStatus{model.StockStatusIn, model.StockStatusLow, model.StockStatusOut} {
			if bucket == candidate {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "stock %d matched %d buckets", s, matches)
	}
}
