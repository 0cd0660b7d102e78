// Package variant holds the combinatorial core of the catalog: expansion of a
// product's variation types into purchasable combinations, canonical identity
// for a set of selected options, and merging of expanded combinations with
// operator-saved per-variant price/quantity rows.
package variant

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Option is a single choice within a variation type (e.g. "Red" within "Color").
type Option struct {
	ID    uuid.UUID
	Name  string
	Image string
}

// VariationType is one attribute axis of a product with its ordered options.
// Option ids are unique within a type.
type VariationType struct {
	ID      uuid.UUID
	Name    string
	Options []Option
}

// Selection records one chosen option together with the type it belongs to.
type Selection struct {
	TypeID     uuid.UUID
	TypeName   string
	OptionID   uuid.UUID
	OptionName string
}

// Combination is one purchasable variant: exactly one selection per variation
// type, plus the quantity/price that apply to it.
type Combination struct {
	Selections []Selection
	Quantity   int32
	Price      decimal.Decimal
}

// Key returns the canonical identity of the combination's option set.
func (c Combination) Key() Key {
	ids := make([]uuid.UUID, 0, len(c.Selections))
	for _, sel := range c.Selections {
		ids = append(ids, sel.OptionID)
	}
	return NewKey(ids)
}

// Override is an operator-saved quantity/price for one exact option
// combination. At most one override exists per (product, key).
type Override struct {
	OptionIDs []uuid.UUID
	Quantity  int32
	Price     decimal.Decimal
}
