package model

// Category groups products within a shop. Categories are both declared by
// the shop and derived from product batches; the two views must agree by ID.
type Category struct {
	ID     string `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	ShopID string `json:"shopId" db:"shop_id"`
}
