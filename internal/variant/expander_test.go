package variant_test

import (
	"testing"

	"go-market-api/internal/variant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeType(name string, optionNames ...string) variant.VariationType {
	vt := variant.VariationType{ID: uuid.New(), Name: name}
	for _, n := range optionNames {
		vt.Options = append(vt.Options, variant.Option{ID: uuid.New(), Name: n})
	}
	return vt
}

func TestExpand_ColorSize(t *testing.T) {
	color := makeType("Color", "Red", "Blue")
	size := makeType("Size", "S", "M")
	price := decimal.NewFromInt(20)

	combos := variant.Expand([]variant.VariationType{color, size}, 5, price)

	assert.Len(t, combos, 4)

	names := make([][2]string, 0, len(combos))
	for _, c := range combos {
		assert.Len(t, c.Selections, 2)
		assert.Equal(t, int32(5), c.Quantity)
		assert.True(t, price.Equal(c.Price))
		names = append(names, [2]string{c.Selections[0].OptionName, c.Selections[1].OptionName})
	}

	// Definition order of types and options drives the output order.
	assert.Equal(t, [][2]string{
		{"Red", "S"}, {"Red", "M"}, {"Blue", "S"}, {"Blue", "M"},
	}, names)
}

func TestExpand_CombinationCount(t *testing.T) {
	cases := []struct {
		name    string
		counts  []int
		expects int
	}{
		{"no_types", nil, 1},
		{"single_type", []int{3}, 3},
		{"two_types", []int{2, 4}, 8},
		{"three_types", []int{2, 3, 2}, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			types := make([]variant.VariationType, 0, len(tc.counts))
			for _, n := range tc.counts {
				vt := variant.VariationType{ID: uuid.New(), Name: "T"}
				for j := 0; j < n; j++ {
					vt.Options = append(vt.Options, variant.Option{ID: uuid.New()})
				}
				types = append(types, vt)
			}

			combos := variant.Expand(types, 1, decimal.Zero)
			assert.Len(t, combos, tc.expects)
			for _, c := range combos {
				assert.Len(t, c.Selections, len(tc.counts))
			}
		})
	}
}

func TestExpand_TypeWithoutOptionsYieldsNothing(t *testing.T) {
	color := makeType("Color", "Red", "Blue")
	empty := variant.VariationType{ID: uuid.New(), Name: "Material"}

	combos := variant.Expand([]variant.VariationType{color, empty}, 1, decimal.Zero)
	assert.Empty(t, combos)
}

func TestExpand_OneSelectionPerType(t *testing.T) {
	color := makeType("Color", "Red", "Blue", "Green")
	size := makeType("Size", "S", "M")

	combos := variant.Expand([]variant.VariationType{color, size}, 1, decimal.Zero)

	for _, c := range combos {
		seen := map[uuid.UUID]int{}
		for _, sel := range c.Selections {
			seen[sel.TypeID]++
		}
		assert.Equal(t, 1, seen[color.ID])
		assert.Equal(t, 1, seen[size.ID])
	}
}
