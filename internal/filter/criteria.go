// Package filter implements the composable filter pipeline: universal and
// vertical-specific predicates over an in-memory product batch, the
// local/remote strategy decision, and the fallback chain used when the
// remote collaborator is unavailable.
package filter

import "github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

// AlcoholBand names one of the fixed alcohol-degree ranges a brewery
// filter can select instead of explicit bounds.
type AlcoholBand string

const (
	BandLight      AlcoholBand = "light"
	BandMedium     AlcoholBand = "medium"
	BandStrong     AlcoholBand = "strong"
	BandVeryStrong AlcoholBand = "very_strong"
)

// Alcohol band boundaries, in degrees. Each band is inclusive of its lower
// bound and exclusive of its upper bound; very_strong is unbounded above.
const (
	bandLightMin  = 3.0
	bandMediumMin = 5.0
	bandStrongMin = 7.0
	bandVeryMin   = 10.0
)

// Contains reports whether a degree falls inside the band.
func (b AlcoholBand) Contains(degree float64) bool {
	switch b {
	case BandLight:
		return degree >= bandLightMin && degree < bandMediumMin
	case BandMedium:
		return degree >= bandMediumMin && degree < bandStrongMin
	case BandStrong:
		return degree >= bandStrongMin && degree < bandVeryMin
	case BandVeryStrong:
		return degree >= bandVeryMin
	}
	return false
}

// BreweryCriteria are the brewery-specific filter fields.
type BreweryCriteria struct {
	DegreeMin    *float64      `json:"degre_alcool_min,omitempty"`
	DegreeMax    *float64      `json:"degre_alcool_max,omitempty"`
	IBUMin       *float64      `json:"amertume_ibu_min,omitempty"`
	IBUMax       *float64      `json:"amertume_ibu_max,omitempty"`
	HopVariety   string        `json:"type_houblon,omitempty"`
	AlcoholBands []AlcoholBand `json:"alcohol_bands,omitempty"`
}

func (c *BreweryCriteria) empty() bool {
	return c == nil || (c.DegreeMin == nil && c.DegreeMax == nil &&
		c.IBUMin == nil && c.IBUMax == nil &&
		c.HopVariety == "" && len(c.AlcoholBands) == 0)
}

// TeaCriteria are the tea-shop-specific filter fields.
type TeaCriteria struct {
	PlantationOrigin string `json:"origine_plantation,omitempty"`
	QualityGrade     string `json:"grade_qualite,omitempty"`
}

func (c *TeaCriteria) empty() bool {
	return c == nil || (c.PlantationOrigin == "" && c.QualityGrade == "")
}

// BeautyCriteria are the beauty-shop-specific filter fields.
type BeautyCriteria struct {
	SkinType     string `json:"type_peau,omitempty"`
	BioCertified *bool  `json:"certification_bio,omitempty"`
}

func (c *BeautyCriteria) empty() bool {
	return c == nil || (c.SkinType == "" && c.BioCertified == nil)
}

// HerbCriteria are the herb-shop-specific filter fields.
type HerbCriteria struct {
	TraditionalUse string `json:"usage_traditionnel,omitempty"`
	DosageForm     string `json:"forme_galenique,omitempty"`
}

func (c *HerbCriteria) empty() bool {
	return c == nil || (c.TraditionalUse == "" && c.DosageForm == "")
}

// Criteria is the sparse filter-request object: a universal part that
// applies to every vertical and one optional group per vertical. Callers
// construct a fresh Criteria per filter action; the pipeline never mutates
// it. Groups for foreign verticals may be present and are ignored — only
// the group matching the active shop's vertical is ever evaluated.
type Criteria struct {
	CategoryID  string            `json:"categoryId,omitempty"`
	Search      string            `json:"search,omitempty"`
	PriceMin    *float64          `json:"priceMin,omitempty"`
	PriceMax    *float64          `json:"priceMax,omitempty"`
	StockStatus model.StockStatus `json:"stockStatus,omitempty"`

	Brewery *BreweryCriteria `json:"brewery,omitempty"`
	Tea     *TeaCriteria     `json:"teaShop,omitempty"`
	Beauty  *BeautyCriteria  `json:"beautyShop,omitempty"`
	Herb    *HerbCriteria    `json:"herbShop,omitempty"`
}

// HasVerticalFields reports whether any vertical group carries at least
// one populated field, regardless of which vertical it targets.
func (c Criteria) HasVerticalFields() bool {
	return !c.Brewery.empty() || !c.Tea.empty() || !c.Beauty.empty() || !c.Herb.empty()
}

// verticalFieldsFor reports whether the group for the given vertical is
// populated.
func (c Criteria) verticalFieldsFor(v model.Vertical) bool {
	switch v {
	case model.VerticalBrewery:
		return !c.Brewery.empty()
	case model.VerticalTeaShop:
		return !c.Tea.empty()
	case model.VerticalBeautyShop:
		return !c.Beauty.empty()
	case model.VerticalHerbShop:
		return !c.Herb.empty()
	}
	return false
}

// CategoryOnly reports whether category membership is the only constraint:
// no vertical fields, no price bound, no stock bucket, blank search term.
func (c Criteria) CategoryOnly() bool {
	return !c.HasVerticalFields() &&
		c.PriceMin == nil && c.PriceMax == nil &&
		c.StockStatus == "" && blank(c.Search)
}
