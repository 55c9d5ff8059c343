package filter

import (
	"strings"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/stock"
)

// blank reports whether a search term carries no constraint.
func blank(term string) bool {
	return strings.TrimSpace(term) == ""
}

// matchesCategory passes every product when no category is requested.
func matchesCategory(p model.Product, categoryID string) bool {
	return categoryID == "" || p.CategoryID == categoryID
}

// matchesSearch is a case-insensitive substring match over the product
// name, description and the raw serialized attribute payload. Search is
// lexical over the stored text, not semantic over typed fields.
func matchesSearch(p model.Product, term string) bool {
	if blank(term) {
		return true
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Attributes), needle)
}

// matchesPrice checks the product price against independently optional
// bounds. A missing bound is unbounded.
func matchesPrice(p model.Product, min, max *float64) bool {
	if min != nil && p.Price < *min {
		return false
	}
	if max != nil && p.Price > *max {
		return false
	}
	return true
}

// matchesStockStatus checks bucket membership. The bucket mapping folds a
// missing stock field into out_of_stock (see stock.Bucket).
func matchesStockStatus(stockCount *int, status model.StockStatus) bool {
	if status == "" {
		return true
	}
	return stock.Bucket(stockCount) == status
}
