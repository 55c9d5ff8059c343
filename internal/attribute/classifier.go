package attribute

// Classify determines which vertical schema an untyped record satisfies.
// Recognizers run in the registry's fixed order (brewery, tea shop, beauty
// shop, herb shop) and the first match wins. Signature pairs are
// vertical-exclusive, so order only matters for pathological payloads
// crafted to carry fields from several verticals at once.
func Classify(rec Record) Variant {
	if rec == nil {
		return VariantUnknown
	}
	for _, sig := range registry {
		if hasKeys(rec, sig.keys) {
			return sig.variant
		}
	}
	return VariantUnknown
}

func hasKeys(rec Record, keys [2]string) bool {
	for _, k := range keys {
		if _, ok := rec[k]; !ok {
			return false
		}
	}
	return true
}
