package variant

import "github.com/shopspring/decimal"

// Expand produces the cartesian product of a product's variation types: one
// Combination per way of picking a single option from every type, each carrying
// the supplied default quantity and price.
//
// Output order is deterministic and follows definition order: types in the
// order given, options in the order they appear within each type. A type with
// zero options makes the whole product empty, which is a valid result: such a
// product simply has no purchasable combinations.
func Expand(types []VariationType, defaultQuantity int32, defaultPrice decimal.Decimal) []Combination {
	result := [][]Selection{{}}

	for _, vt := range types {
		next := make([][]Selection, 0, len(result)*len(vt.Options))
		for _, partial := range result {
			for _, opt := range vt.Options {
				extended := make([]Selection, len(partial), len(partial)+1)
				copy(extended, partial)
				extended = append(extended, Selection{
					TypeID:     vt.ID,
					TypeName:   vt.Name,
					OptionID:   opt.ID,
					OptionName: opt.Name,
				})
				next = append(next, extended)
			}
		}
		result = next
	}

	combos := make([]Combination, 0, len(result))
	for _, selections := range result {
		combos = append(combos, Combination{
			Selections: selections,
			Quantity:   defaultQuantity,
			Price:      defaultPrice,
		})
	}
	return combos
}
