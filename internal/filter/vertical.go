package filter

import (
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/attribute"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"
)

// matchesVertical evaluates the criteria group matching the shop's
// vertical against the classified attributes, field by field with AND
// semantics. Groups targeting other verticals are ignored. When the active
// group is populated, a product that failed classification — or classified
// as a different variant — fails unconditionally: products without usable
// attributes are excluded from vertical-filtered results by construction.
func matchesVertical(attrs attribute.Attributes, c Criteria, vertical model.Vertical) bool {
	if !c.verticalFieldsFor(vertical) {
		return true
	}
	if attrs.Variant != attribute.VariantFor(vertical) {
		return false
	}

	switch vertical {
	case model.VerticalBrewery:
		return matchesBrewery(attrs.Brewery, c.Brewery)
	case model.VerticalTeaShop:
		return matchesTea(attrs.Tea, c.Tea)
	case model.VerticalBeautyShop:
		return matchesBeauty(attrs.Beauty, c.Beauty)
	case model.VerticalHerbShop:
		return matchesHerb(attrs.Herb, c.Herb)
	}
	return false
}

func matchesBrewery(a *attribute.BreweryAttributes, c *BreweryCriteria) bool {
	if c.DegreeMin != nil && a.AlcoholDegree < *c.DegreeMin {
		return false
	}
	if c.DegreeMax != nil && a.AlcoholDegree > *c.DegreeMax {
		return false
	}
	if c.IBUMin != nil && a.BitternessIBU < *c.IBUMin {
		return false
	}
	if c.IBUMax != nil && a.BitternessIBU > *c.IBUMax {
		return false
	}
	if c.HopVariety != "" && a.HopVariety != c.HopVariety {
		return false
	}
	if len(c.AlcoholBands) > 0 && !inAnyBand(a.AlcoholDegree, c.AlcoholBands) {
		return false
	}
	return true
}

// inAnyBand is the disjunction across the supplied band labels.
func inAnyBand(degree float64, bands []AlcoholBand) bool {
	for _, b := range bands {
		if b.Contains(degree) {
			return true
		}
	}
	return false
}

func matchesTea(a *attribute.TeaShopAttributes, c *TeaCriteria) bool {
	if c.PlantationOrigin != "" && a.PlantationOrigin != c.PlantationOrigin {
		return false
	}
	if c.QualityGrade != "" && a.QualityGrade != c.QualityGrade {
		return false
	}
	return true
}

func matchesBeauty(a *attribute.BeautyShopAttributes, c *BeautyCriteria) bool {
	if c.SkinType != "" && a.SkinType != c.SkinType {
		return false
	}
	if c.BioCertified != nil && a.BioCertified != *c.BioCertified {
		return false
	}
	return true
}

func matchesHerb(a *attribute.HerbShopAttributes, c *HerbCriteria) bool {
	if c.TraditionalUse != "" && a.TraditionalUse != c.TraditionalUse {
		return false
	}
	if c.DosageForm != "" && a.DosageForm != c.DosageForm {
		return false
	}
	return true
}
