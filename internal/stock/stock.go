// Package stock derives stock-level facts and display badges from parsed
// product attributes, independently of the shop vertical.
package stock

import (
	"fmt"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/attribute"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/rs/zerolog"
)

// LowStockThreshold is the stock count under which a product is flagged as
// running low. The badge treats the threshold itself as in stock; the
// low_stock filter bucket includes it. Both readings are covered by tests.
const LowStockThreshold = 10

// Badge colors.
const (
	ColorRed    = "red"
	ColorOrange = "orange"
	ColorGreen  = "green"
	ColorGray   = "gray"
)

// Badge is the display badge derived from a product's stock level.
type Badge struct {
	Color string `json:"color"`
	Text  string `json:"text"`
}

// Evaluator derives stock facts from product attribute payloads.
type Evaluator struct {
	parser *attribute.Parser
}

// NewEvaluator creates a stock evaluator with its own attribute parser.
func NewEvaluator(logger zerolog.Logger) *Evaluator {
	return &Evaluator{
		parser: attribute.NewParser(logger),
	}
}

// StockOf returns the product's stock count, or nil when the product has
// no attributes or no numeric stock field.
func (e *Evaluator) StockOf(p model.Product) *int {
	rec, ok := e.parser.Parse(p)
	if !ok {
		return nil
	}
	return attribute.Decode(rec).Stock
}

// IsOutOfStock reports whether the product's stock field exists and equals
// exactly zero. A product without a stock field is not out of stock.
func (e *Evaluator) IsOutOfStock(p model.Product) bool {
	s := e.StockOf(p)
	return s != nil && *s == 0
}

// HasLowStock reports whether the stock field exists and is strictly below
// the low-stock threshold. Zero stock also satisfies this predicate;
// callers must check IsOutOfStock first for correct badge precedence.
func (e *Evaluator) HasLowStock(p model.Product) bool {
	s := e.StockOf(p)
	return s != nil && *s < LowStockThreshold
}

// Badge derives the stock badge for a product. The four outcomes are
// mutually exclusive and cover every product.
func (e *Evaluator) Badge(p model.Product) Badge {
	s := e.StockOf(p)
	switch {
	case s == nil:
		return Badge{Color: ColorGray, Text: "Stock inconnu"}
	case *s == 0:
		return Badge{Color: ColorRed, Text: "Rupture"}
	case *s < LowStockThreshold:
		return Badge{Color: ColorOrange, Text: fmt.Sprintf("Stock faible (%d)", *s)}
	default:
		return Badge{Color: ColorGreen, Text: fmt.Sprintf("En stock (%d)", *s)}
	}
}

// Bucket maps a stock count to its filter bucket. A nil count is folded
// into out_of_stock: for filtering purposes an unknown stock means the
// product cannot be sold, even though the badge shows it as unknown.
func Bucket(s *int) model.StockStatus {
	switch {
	case s == nil || *s == 0:
		return model.StockStatusOut
	case *s <= LowStockThreshold:
		return model.StockStatusLow
	default:
		return model.StockStatusIn
	}
}
