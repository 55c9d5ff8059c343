package attribute

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		variant Variant
	}{
		{
			name:    "Brewery signature",
			record:  Record{KeyAlcoholDegree: 6.5, KeyBitternessIBU: 45.0, KeyStock: 25.0},
			variant: VariantBrewery,
		},
		{
			name:    "Tea shop signature",
			record:  Record{KeyPlantationOrigin: "Darjeeling", KeyQualityGrade: "FTGFOP", KeyStock: 12.0},
			variant: VariantTeaShop,
		},
		{
			name:    "Beauty shop signature",
			record:  Record{KeySkinType: "mixte", KeyActiveIngredients: "acide hyaluronique", KeyBioCertified: true},
			variant: VariantBeautyShop,
		},
		{
			name:    "Herb shop signature",
			record:  Record{KeyActivePrinciples: "flavonoïdes", KeyTraditionalUse: "digestion", KeyDosageForm: "tisane"},
			variant: VariantHerbShop,
		},
		{
			name:    "Half a signature does not classify",
			record:  Record{KeyAlcoholDegree: 6.5, KeyStock: 25.0},
			variant: VariantUnknown,
		},
		{
			name:    "Stock alone does not classify",
			record:  Record{KeyStock: 3.0},
			variant: VariantUnknown,
		},
		{
			name:    "Empty record",
			record:  Record{},
			variant: VariantUnknown,
		},
		{
			name:    "Nil record",
			record:  nil,
			variant: VariantUnknown,
		},
		{
			name: "Pathological record carrying two signatures resolves by fixed order",
			record: Record{
				KeyAlcoholDegree: 6.5, KeyBitternessIBU: 45.0,
				KeyPlantationOrigin: "Assam", KeyQualityGrade: "TGFOP",
			},
			variant: VariantBrewery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.variant, Classify(tt.record))
		})
	}
}

// Signature pairs must stay pairwise disjoint: that is what makes the
// fixed recognizer order irrelevant for well-formed payloads.
func TestSignatureKeysAreVerticalExclusive(t *testing.T) {
	variants := []Variant{VariantBrewery, VariantTeaShop, VariantBeautyShop, VariantHerbShop}

	seen := make(map[string]Variant)
	for _, v := range variants {
		keys := SignatureKeys(v)
		assert.Len(t, keys, 2)
		for _, k := range keys {
			owner, dup := seen[k]
			assert.False(t, dup, "signature key %q shared by %s and %s", k, owner, v)
			seen[k] = v
		}
	}

	assert.Nil(t, SignatureKeys(VariantUnknown))
}

// TestClassifyExclusivity verifies that any well-formed record generated
// from one vertical's schema classifies as exactly that vertical,
// whatever extra non-signature fields it carries.
func TestClassifyExclusivity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	variants := []Variant{VariantBrewery, VariantTeaShop, VariantBeautyShop, VariantHerbShop}

	properties.Property("generated records classify as their source schema", prop.ForAll(
		func(variantIdx int, numericValue float64, textValue string, stock int) bool {
			variant := variants[variantIdx%len(variants)]

			rec := Record{KeyStock: float64(stock)}
			for _, key := range SignatureKeys(variant) {
				// The recognizers test field presence, not type, so any
				// value shape must do.
				if textValue != "" {
					rec[key] = textValue
				} else {
					rec[key] = numericValue
				}
			}

			return Classify(rec) == variant
		},
		gen.IntRange(0, 3),
		gen.Float64Range(0, 100),
		gen.AlphaString(),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

func TestVariantFor(t *testing.T) {
	assert.Equal(t, VariantBrewery, VariantFor("brewery"))
	assert.Equal(t, VariantHerbShop, VariantFor("herbShop"))
	assert.Equal(t, VariantUnknown, VariantFor("bakery"))
	assert.Equal(t, VariantUnknown, VariantFor(""))
}
