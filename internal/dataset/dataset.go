// Package dataset loads catalog fixture batches (shops and products) from
// JSON files, locally or from S3 with a local fallback. It backs the demo
// mode and test seeding.
package dataset

import (
	"context"
	"fmt"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"
)

// Batch is a full catalog fixture: the shops and their product batches.
type Batch struct {
	Shops    []model.Shop    `json:"shops"`
	Products []model.Product `json:"products"`
}

// Validate checks the referential integrity of a loaded batch: every shop
// carries a known vertical and every product references a declared shop.
func (b *Batch) Validate() error {
	shopIDs := make(map[string]struct{}, len(b.Shops))
	for _, s := range b.Shops {
		if !s.Vertical.Valid() {
			return fmt.Errorf("shop %s: %w", s.ID, model.ErrInvalidVertical)
		}
		shopIDs[s.ID] = struct{}{}
	}
	for _, p := range b.Products {
		if _, ok := shopIDs[p.ShopID]; !ok {
			return fmt.Errorf("product %s references unknown shop %s", p.ID, p.ShopID)
		}
	}
	return nil
}

// Loader loads a catalog batch from a named source.
type Loader interface {
	// Load reads and decodes the batch at the given path or key.
	Load(ctx context.Context, path string) (*Batch, error)
}
