package attribute

import (
	"fmt"
	"strconv"
)

// Display group labels for detail views.
const (
	GroupCharacteristics = "Caractéristiques"
	GroupOrigin          = "Origine"
	GroupAvailability    = "Disponibilité"
)

// Formatted is a display-ready attribute value.
type Formatted struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	Group string `json:"group"`
}

// CardAttributes derives the short attribute subset shown on a product
// card: three or four fields per vertical, always ending with stock.
// Unknown variants yield only the stock entry when a stock field exists.
func CardAttributes(a Attributes) []Formatted {
	var out []Formatted

	switch a.Variant {
	case VariantBrewery:
		out = append(out,
			Formatted{Key: KeyAlcoholDegree, Label: "Degré d'alcool", Value: formatDegree(a.Brewery.AlcoholDegree), Group: GroupCharacteristics},
			Formatted{Key: KeyBitternessIBU, Label: "Amertume", Value: formatIBU(a.Brewery.BitternessIBU), Group: GroupCharacteristics},
			Formatted{Key: KeyHopVariety, Label: "Houblon", Value: a.Brewery.HopVariety, Group: GroupOrigin},
		)
	case VariantTeaShop:
		out = append(out,
			Formatted{Key: KeyPlantationOrigin, Label: "Origine", Value: a.Tea.PlantationOrigin, Group: GroupOrigin},
			Formatted{Key: KeyQualityGrade, Label: "Grade", Value: a.Tea.QualityGrade, Group: GroupCharacteristics},
		)
	case VariantBeautyShop:
		out = append(out,
			Formatted{Key: KeySkinType, Label: "Type de peau", Value: a.Beauty.SkinType, Group: GroupCharacteristics},
			Formatted{Key: KeyBioCertified, Label: "Bio", Value: formatBool(a.Beauty.BioCertified), Group: GroupCharacteristics},
		)
	case VariantHerbShop:
		out = append(out,
			Formatted{Key: KeyTraditionalUse, Label: "Usage", Value: a.Herb.TraditionalUse, Group: GroupCharacteristics},
			Formatted{Key: KeyDosageForm, Label: "Forme", Value: a.Herb.DosageForm, Group: GroupCharacteristics},
		)
	}

	if a.Stock != nil {
		out = append(out, Formatted{Key: KeyStock, Label: "Stock", Value: strconv.Itoa(*a.Stock), Group: GroupAvailability})
	}

	return out
}

// AllAttributes derives the full formatted attribute list for a detail
// view, grouped by display label.
func AllAttributes(a Attributes) []Formatted {
	var out []Formatted

	switch a.Variant {
	case VariantBrewery:
		out = append(out,
			Formatted{Key: KeyAlcoholDegree, Label: "Degré d'alcool", Value: formatDegree(a.Brewery.AlcoholDegree), Group: GroupCharacteristics},
			Formatted{Key: KeyBitternessIBU, Label: "Amertume", Value: formatIBU(a.Brewery.BitternessIBU), Group: GroupCharacteristics},
		)
		if a.Brewery.VolumeCl > 0 {
			out = append(out, Formatted{Key: KeyVolumeCl, Label: "Volume", Value: formatFloat(a.Brewery.VolumeCl) + " cl", Group: GroupCharacteristics})
		}
		if a.Brewery.HopVariety != "" {
			out = append(out, Formatted{Key: KeyHopVariety, Label: "Houblon", Value: a.Brewery.HopVariety, Group: GroupOrigin})
		}
	case VariantTeaShop:
		out = append(out,
			Formatted{Key: KeyQualityGrade, Label: "Grade", Value: a.Tea.QualityGrade, Group: GroupCharacteristics},
			Formatted{Key: KeyPlantationOrigin, Label: "Plantation", Value: a.Tea.PlantationOrigin, Group: GroupOrigin},
		)
		if a.Tea.HarvestYear > 0 {
			out = append(out, Formatted{Key: KeyHarvestYear, Label: "Récolte", Value: strconv.Itoa(a.Tea.HarvestYear), Group: GroupOrigin})
		}
	case VariantBeautyShop:
		out = append(out,
			Formatted{Key: KeySkinType, Label: "Type de peau", Value: a.Beauty.SkinType, Group: GroupCharacteristics},
			Formatted{Key: KeyActiveIngredients, Label: "Actifs", Value: a.Beauty.ActiveIngredients, Group: GroupCharacteristics},
			Formatted{Key: KeyBioCertified, Label: "Certification bio", Value: formatBool(a.Beauty.BioCertified), Group: GroupCharacteristics},
		)
		if a.Beauty.ContentMl > 0 {
			out = append(out, Formatted{Key: KeyContentMl, Label: "Contenance", Value: formatFloat(a.Beauty.ContentMl) + " ml", Group: GroupCharacteristics})
		}
	case VariantHerbShop:
		out = append(out,
			Formatted{Key: KeyActivePrinciples, Label: "Principes actifs", Value: a.Herb.ActivePrinciples, Group: GroupCharacteristics},
			Formatted{Key: KeyTraditionalUse, Label: "Usage traditionnel", Value: a.Herb.TraditionalUse, Group: GroupCharacteristics},
			Formatted{Key: KeyDosageForm, Label: "Forme galénique", Value: a.Herb.DosageForm, Group: GroupCharacteristics},
		)
	}

	if a.Stock != nil {
		out = append(out, Formatted{Key: KeyStock, Label: "Stock", Value: strconv.Itoa(*a.Stock), Group: GroupAvailability})
	}

	return out
}

func formatDegree(v float64) string {
	return formatFloat(v) + "°"
}

func formatIBU(v float64) string {
	return fmt.Sprintf("%s IBU", formatFloat(v))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "Oui"
	}
	return "Non"
}
