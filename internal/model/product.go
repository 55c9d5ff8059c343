package model

import "time"

// Product represents a catalog product belonging to a shop. Attributes
// carries the vertical-specific payload as raw JSON; it is empty for
// products without specialized data and is parsed lazily by the attribute
// package rather than at load time.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	CategoryID  string    `json:"categoryId" db:"category_id"`
	ShopID      string    `json:"shopId" db:"shop_id"`
	Attributes  string    `json:"attributes,omitempty" db:"attributes"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// StockStatus identifies a stock-level bucket used by the universal
// stock filter.
type StockStatus string

const (
	StockStatusIn  StockStatus = "in_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusOut StockStatus = "out_of_stock"
)

// Valid reports whether s is a known stock bucket.
func (s StockStatus) Valid() bool {
	switch s {
	case StockStatusIn, StockStatusLow, StockStatusOut:
		return true
	}
	return false
}
