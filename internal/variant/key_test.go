package variant_test

import (
	"testing"

	"go-market-api/internal/variant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKey_NormalizeIsOrderIndependent(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	k1 := variant.NewKey([]uuid.UUID{a, b, c})
	k2 := variant.NewKey([]uuid.UUID{c, a, b})
	k3 := variant.NewKey([]uuid.UUID{b, c, a})

	assert.True(t, k1.Equal(k2))
	assert.True(t, k2.Equal(k3))
	assert.Equal(t, k1.String(), k2.String())
	assert.Equal(t, k1.String(), k3.String())
}

func TestKey_DifferentSetsAreNotEqual(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.False(t, variant.NewKey([]uuid.UUID{a}).Equal(variant.NewKey([]uuid.UUID{b})))
	assert.False(t, variant.NewKey([]uuid.UUID{a}).Equal(variant.NewKey([]uuid.UUID{a, b})))
}

func TestKey_EmptySelection(t *testing.T) {
	k := variant.NewKey(nil)
	assert.Equal(t, "[]", k.String())
	assert.Equal(t, 0, k.Len())
}

func TestParseKey_RoundTrip(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	orig := variant.NewKey([]uuid.UUID{b, a})
	parsed, err := variant.ParseKey(orig.String())
	assert.NoError(t, err)
	assert.True(t, orig.Equal(parsed))
	assert.Equal(t, orig.OptionIDs(), parsed.OptionIDs())
}

func TestParseKey_Malformed(t *testing.T) {
	_, err := variant.ParseKey("{not an array}")
	assert.Error(t, err)

	_, err = variant.ParseKey(`["not-a-uuid"]`)
	assert.Error(t, err)
}

func TestParseKey_Empty(t *testing.T) {
	k, err := variant.ParseKey("")
	assert.NoError(t, err)
	assert.Equal(t, 0, k.Len())
}

func TestKeyForSelection(t *testing.T) {
	red := variant.Option{ID: uuid.New(), Name: "Red"}
	blue := variant.Option{ID: uuid.New(), Name: "Blue"}
	small := variant.Option{ID: uuid.New(), Name: "S"}

	types := []variant.VariationType{
		{ID: uuid.New(), Name: "Color", Options: []variant.Option{red, blue}},
		{ID: uuid.New(), Name: "Size", Options: []variant.Option{small}},
	}

	t.Run("valid_selection", func(t *testing.T) {
		k, err := variant.KeyForSelection(types, []uuid.UUID{small.ID, red.ID})
		assert.NoError(t, err)
		assert.Equal(t, 2, k.Len())
	})

	t.Run("wrong_option_count", func(t *testing.T) {
		_, err := variant.KeyForSelection(types, []uuid.UUID{red.ID})
		assert.ErrorIs(t, err, variant.ErrInvalidSelection)
	})

	t.Run("unknown_option", func(t *testing.T) {
		_, err := variant.KeyForSelection(types, []uuid.UUID{red.ID, uuid.New()})
		assert.ErrorIs(t, err, variant.ErrInvalidSelection)
	})

	t.Run("two_options_same_type", func(t *testing.T) {
		_, err := variant.KeyForSelection(types, []uuid.UUID{red.ID, blue.ID})
		assert.ErrorIs(t, err, variant.ErrInvalidSelection)
	})

	t.Run("empty_selection_without_types", func(t *testing.T) {
		k, err := variant.KeyForSelection(nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, k.Len())
	})

	t.Run("empty_selection_with_types", func(t *testing.T) {
		_, err := variant.KeyForSelection(types, nil)
		assert.ErrorIs(t, err, variant.ErrInvalidSelection)
	})
}
