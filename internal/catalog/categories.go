// Package catalog derives aggregate views from product batches.
package catalog

import (
	"sort"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ExtractCategories collects the distinct categories referenced by a
// product batch, resolved against the categories the shop declares, sorted
// by display name with French collation. A product without a category
// association contributes nothing. An id the shop does not declare still
// appears, with the id standing in as its display name: identity is what
// is collected, the shop/batch agreement is the caller's contract.
// Pure function of its inputs; deterministic.
func ExtractCategories(products []model.Product, known []model.Category) []model.Category {
	index := make(map[string]model.Category, len(known))
	for _, c := range known {
		index[c.ID] = c
	}

	seen := make(map[string]struct{}, len(products))
	out := make([]model.Category, 0, len(known))
	for _, p := range products {
		if p.CategoryID == "" {
			continue
		}
		if _, ok := seen[p.CategoryID]; ok {
			continue
		}
		seen[p.CategoryID] = struct{}{}

		if c, ok := index[p.CategoryID]; ok {
			out = append(out, c)
		} else {
			out = append(out, model.Category{ID: p.CategoryID, Name: p.CategoryID, ShopID: p.ShopID})
		}
	}

	// collate.Collator is not safe for concurrent use; build one per call.
	coll := collate.New(language.French)
	sort.SliceStable(out, func(i, j int) bool {
		if cmp := coll.CompareString(out[i].Name, out[j].Name); cmp != 0 {
			return cmp < 0
		}
		return out[i].ID < out[j].ID
	})

	return out
}
