package filter

import (
	"testing"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/attribute"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/stretchr/testify/assert"
)

func breweryAttrs(degree, ibu float64, hop string) attribute.Attributes {
	return attribute.Attributes{
		Variant: attribute.VariantBrewery,
		Brewery: &attribute.BreweryAttributes{
			AlcoholDegree: degree,
			BitternessIBU: ibu,
			HopVariety:    hop,
		},
	}
}

func TestMatchesVertical_Brewery(t *testing.T) {
	ipa := breweryAttrs(6.5, 45, "Cascade")

	tests := []struct {
		name     string
		criteria *BreweryCriteria
		expect   bool
	}{
		{"Nil group passes", nil, true},
		{"Empty group passes", &BreweryCriteria{}, true},
		{"Degree within bounds", &BreweryCriteria{DegreeMin: floatPtr(5), DegreeMax: floatPtr(8)}, true},
		{"Degree min inclusive", &BreweryCriteria{DegreeMin: floatPtr(6.5)}, true},
		{"Degree above max", &BreweryCriteria{DegreeMax: floatPtr(6)}, false},
		{"IBU within bounds", &BreweryCriteria{IBUMin: floatPtr(40), IBUMax: floatPtr(50)}, true},
		{"IBU below min", &BreweryCriteria{IBUMin: floatPtr(60)}, false},
		{"Hop exact match", &BreweryCriteria{HopVariety: "Cascade"}, true},
		{"Hop mismatch", &BreweryCriteria{HopVariety: "Saaz"}, false},
		{"Hop match is case-sensitive", &BreweryCriteria{HopVariety: "cascade"}, false},
		{"Matching band", &BreweryCriteria{AlcoholBands: []AlcoholBand{BandMedium}}, true},
		{"Band disjunction, second band matches", &BreweryCriteria{AlcoholBands: []AlcoholBand{BandLight, BandMedium}}, true},
		{"No band matches", &BreweryCriteria{AlcoholBands: []AlcoholBand{BandVeryStrong}}, false},
		{"Bounds and bands compose with AND", &BreweryCriteria{DegreeMin: floatPtr(7), AlcoholBands: []AlcoholBand{BandMedium}}, false},
		{"All fields satisfied together", &BreweryCriteria{DegreeMin: floatPtr(6), IBUMax: floatPtr(50), HopVariety: "Cascade", AlcoholBands: []AlcoholBand{BandMedium}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{Brewery: tt.criteria}
			assert.Equal(t, tt.expect, matchesVertical(ipa, c, model.VerticalBrewery))
		})
	}
}

func TestMatchesVertical_TeaShop(t *testing.T) {
	darjeeling := attribute.Attributes{
		Variant: attribute.VariantTeaShop,
		Tea: &attribute.TeaShopAttributes{
			PlantationOrigin: "Darjeeling",
			QualityGrade:     "FTGFOP",
			HarvestYear:      2023,
		},
	}

	tests := []struct {
		name     string
		criteria *TeaCriteria
		expect   bool
	}{
		{"Empty group passes", &TeaCriteria{}, true},
		{"Origin match", &TeaCriteria{PlantationOrigin: "Darjeeling"}, true},
		{"Origin mismatch", &TeaCriteria{PlantationOrigin: "Assam"}, false},
		{"Grade match", &TeaCriteria{QualityGrade: "FTGFOP"}, true},
		{"Both fields must hold", &TeaCriteria{PlantationOrigin: "Darjeeling", QualityGrade: "BOP"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{Tea: tt.criteria}
			assert.Equal(t, tt.expect, matchesVertical(darjeeling, c, model.VerticalTeaShop))
		})
	}
}

func TestMatchesVertical_BeautyShop(t *testing.T) {
	cream := attribute.Attributes{
		Variant: attribute.VariantBeautyShop,
		Beauty: &attribute.BeautyShopAttributes{
			SkinType:     "mixte",
			BioCertified: true,
		},
	}

	tests := []struct {
		name     string
		criteria *BeautyCriteria
		expect   bool
	}{
		{"Skin type match", &BeautyCriteria{SkinType: "mixte"}, true},
		{"Skin type mismatch", &BeautyCriteria{SkinType: "sèche"}, false},
		{"Bio certified required and present", &BeautyCriteria{BioCertified: boolPtr(true)}, true},
		{"Explicitly non-bio filter excludes certified product", &BeautyCriteria{BioCertified: boolPtr(false)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{Beauty: tt.criteria}
			assert.Equal(t, tt.expect, matchesVertical(cream, c, model.VerticalBeautyShop))
		})
	}
}

func TestMatchesVertical_HerbShop(t *testing.T) {
	verbena := attribute.Attributes{
		Variant: attribute.VariantHerbShop,
		Herb: &attribute.HerbShopAttributes{
			ActivePrinciples: "verbénaline",
			TraditionalUse:   "digestion",
			DosageForm:       "tisane",
		},
	}

	tests := []struct {
		name     string
		criteria *HerbCriteria
		expect   bool
	}{
		{"Use match", &HerbCriteria{TraditionalUse: "digestion"}, true},
		{"Use mismatch", &HerbCriteria{TraditionalUse: "sommeil"}, false},
		{"Form match", &HerbCriteria{DosageForm: "tisane"}, true},
		{"Both must hold", &HerbCriteria{TraditionalUse: "digestion", DosageForm: "gélule"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{Herb: tt.criteria}
			assert.Equal(t, tt.expect, matchesVertical(verbena, c, model.VerticalHerbShop))
		})
	}
}

// Products whose attributes failed classification are excluded whenever the
// active vertical group carries constraints.
func TestMatchesVertical_UnclassifiedProduct(t *testing.T) {
	unknown := attribute.Attributes{Variant: attribute.VariantUnknown}

	t.Run("Excluded when group is populated", func(t *testing.T) {
		c := Criteria{Brewery: &BreweryCriteria{HopVariety: "Cascade"}}
		assert.False(t, matchesVertical(unknown, c, model.VerticalBrewery))
	})

	t.Run("Passes when no vertical constraint is active", func(t *testing.T) {
		assert.True(t, matchesVertical(unknown, Criteria{}, model.VerticalBrewery))
	})
}

// A criteria group targeting a different vertical than the shop's is inert.
func TestMatchesVertical_ForeignGroupIgnored(t *testing.T) {
	darjeeling := attribute.Attributes{
		Variant: attribute.VariantTeaShop,
		Tea:     &attribute.TeaShopAttributes{PlantationOrigin: "Darjeeling"},
	}

	// A brewery group on a tea shop imposes nothing, even when the product
	// could never satisfy it.
	c := Criteria{Brewery: &BreweryCriteria{HopVariety: "Cascade"}}
	assert.True(t, matchesVertical(darjeeling, c, model.VerticalTeaShop))

	// The tea group stays active alongside the foreign one.
	c.Tea = &TeaCriteria{PlantationOrigin: "Assam"}
	assert.False(t, matchesVertical(darjeeling, c, model.VerticalTeaShop))
}

// A product from the wrong variant fails against a populated group even if
// its fields could lexically satisfy the constraints.
func TestMatchesVertical_VariantMismatch(t *testing.T) {
	ipa := breweryAttrs(6.5, 45, "Cascade")
	c := Criteria{Tea: &TeaCriteria{PlantationOrigin: "Darjeeling"}}

	assert.False(t, matchesVertical(ipa, c, model.VerticalTeaShop))
}
