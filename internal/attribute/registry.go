package attribute

import "github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

// Attribute payload field keys. These are the wire names carried by product
// attribute payloads; they are never spelled inline outside this file.
const (
	KeyStock = "stock"

	// Brewery
	KeyAlcoholDegree = "degre_alcool"
	KeyBitternessIBU = "amertume_ibu"
	KeyHopVariety    = "type_houblon"
	KeyVolumeCl      = "volume_cl"

	// Tea shop
	KeyPlantationOrigin = "origine_plantation"
	KeyQualityGrade     = "grade_qualite"
	KeyHarvestYear      = "annee_recolte"

	// Beauty shop
	KeySkinType          = "type_peau"
	KeyActiveIngredients = "ingredients_actifs"
	KeyBioCertified      = "certification_bio"
	KeyContentMl         = "contenance_ml"

	// Herb shop
	KeyActivePrinciples = "principes_actifs"
	KeyTraditionalUse   = "usage_traditionnel"
	KeyDosageForm       = "forme_galenique"
)

// Variant tags the vertical schema an attribute record satisfies.
// VariantUnknown covers absent, malformed and unclassifiable payloads.
type Variant string

const (
	VariantBrewery    Variant = Variant(model.VerticalBrewery)
	VariantTeaShop    Variant = Variant(model.VerticalTeaShop)
	VariantBeautyShop Variant = Variant(model.VerticalBeautyShop)
	VariantHerbShop   Variant = Variant(model.VerticalHerbShop)
	VariantUnknown    Variant = "unknown"
)

// VariantFor maps a shop vertical to its attribute variant.
func VariantFor(v model.Vertical) Variant {
	if !v.Valid() {
		return VariantUnknown
	}
	return Variant(v)
}

// signature is the pair of fields whose joint presence identifies a vertical.
// Pairs are vertical-exclusive by construction: no key appears in two
// signatures, which is what makes first-match-wins classification safe.
type signature struct {
	variant Variant
	keys    [2]string
}

// registry holds the recognizers in their fixed evaluation order.
var registry = []signature{
	{VariantBrewery, [2]string{KeyAlcoholDegree, KeyBitternessIBU}},
	{VariantTeaShop, [2]string{KeyPlantationOrigin, KeyQualityGrade}},
	{VariantBeautyShop, [2]string{KeySkinType, KeyActiveIngredients}},
	{VariantHerbShop, [2]string{KeyActivePrinciples, KeyTraditionalUse}},
}

// SignatureKeys returns the signature field pair for a variant, or nil for
// VariantUnknown. Exposed for tests that verify signature exclusivity.
func SignatureKeys(v Variant) []string {
	for _, sig := range registry {
		if sig.variant == v {
			return []string{sig.keys[0], sig.keys[1]}
		}
	}
	return nil
}
