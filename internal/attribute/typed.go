package attribute

// BreweryAttributes is the typed record for brewery products.
type BreweryAttributes struct {
	AlcoholDegree float64
	BitternessIBU float64
	HopVariety    string
	VolumeCl      float64
}

// TeaShopAttributes is the typed record for tea shop products.
type TeaShopAttributes struct {
	PlantationOrigin string
	QualityGrade     string
	HarvestYear      int
}

// BeautyShopAttributes is the typed record for beauty shop products.
type BeautyShopAttributes struct {
	SkinType          string
	ActiveIngredients string
	BioCertified      bool
	ContentMl         float64
}

// HerbShopAttributes is the typed record for herb shop products.
type HerbShopAttributes struct {
	ActivePrinciples string
	TraditionalUse   string
	DosageForm       string
}

// Attributes is the tagged variant produced by the classification boundary.
// Exactly the pointer matching Variant is non-nil; all four are nil for
// VariantUnknown. Stock is set whenever the record carries a numeric stock
// field, independent of classification.
type Attributes struct {
	Variant Variant
	Brewery *BreweryAttributes
	Tea     *TeaShopAttributes
	Beauty  *BeautyShopAttributes
	Herb    *HerbShopAttributes
	Stock   *int
}

// Decode classifies an untyped record and recovers its typed variant. This
// is the single boundary between heuristic field inspection and the tagged
// representation the rest of the system consumes. A nil record decodes to
// VariantUnknown with no stock.
func Decode(rec Record) Attributes {
	attrs := Attributes{Variant: Classify(rec)}
	if rec == nil {
		return attrs
	}

	if stock, ok := intField(rec, KeyStock); ok {
		attrs.Stock = &stock
	}

	switch attrs.Variant {
	case VariantBrewery:
		b := &BreweryAttributes{}
		b.AlcoholDegree, _ = floatField(rec, KeyAlcoholDegree)
		b.BitternessIBU, _ = floatField(rec, KeyBitternessIBU)
		b.HopVariety, _ = stringField(rec, KeyHopVariety)
		b.VolumeCl, _ = floatField(rec, KeyVolumeCl)
		attrs.Brewery = b
	case VariantTeaShop:
		t := &TeaShopAttributes{}
		t.PlantationOrigin, _ = stringField(rec, KeyPlantationOrigin)
		t.QualityGrade, _ = stringField(rec, KeyQualityGrade)
		t.HarvestYear, _ = intField(rec, KeyHarvestYear)
		attrs.Tea = t
	case VariantBeautyShop:
		b := &BeautyShopAttributes{}
		b.SkinType, _ = stringField(rec, KeySkinType)
		b.ActiveIngredients, _ = stringField(rec, KeyActiveIngredients)
		b.BioCertified, _ = boolField(rec, KeyBioCertified)
		b.ContentMl, _ = floatField(rec, KeyContentMl)
		attrs.Beauty = b
	case VariantHerbShop:
		h := &HerbShopAttributes{}
		h.ActivePrinciples, _ = stringField(rec, KeyActivePrinciples)
		h.TraditionalUse, _ = stringField(rec, KeyTraditionalUse)
		h.DosageForm, _ = stringField(rec, KeyDosageForm)
		attrs.Herb = h
	}

	return attrs
}

// floatField reads a numeric field. JSON numbers decode as float64.
func floatField(rec Record, key string) (float64, bool) {
	v, ok := rec[key].(float64)
	return v, ok
}

// intField reads a numeric field and truncates it to an integer.
func intField(rec Record, key string) (int, bool) {
	v, ok := rec[key].(float64)
	if !ok {
		return 0, false
	}
	return int(v), true
}

func stringField(rec Record, key string) (string, bool) {
	v, ok := rec[key].(string)
	return v, ok
}

func boolField(rec Record, key string) (bool, bool) {
	v, ok := rec[key].(bool)
	return v, ok
}
