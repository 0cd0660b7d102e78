package variant

// Merge reconciles freshly expanded combinations with previously saved
// overrides. It is a total left join keyed by Key equality: every combination
// comes back, carrying the override's quantity/price when its key matches one,
// and its existing defaults otherwise.
//
// Matching is by canonical key, never by slice order, because overrides may
// have been saved while the variation types were defined in a different order.
// Overrides that match no combination (orphaned after an options edit) are
// ignored.
func Merge(combos []Combination, overrides []Override) []Combination {
	byKey := make(map[string]Override, len(overrides))
	for _, ov := range overrides {
		byKey[NewKey(ov.OptionIDs).String()] = ov
	}

	merged := make([]Combination, 0, len(combos))
	for _, combo := range combos {
		if ov, ok := byKey[combo.Key().String()]; ok {
			combo.Quantity = ov.Quantity
			combo.Price = ov.Price
		}
		merged = append(merged, combo)
	}
	return merged
}
