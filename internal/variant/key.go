package variant

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrInvalidSelection is returned when a selection does not name exactly one
// option per variation type of the product.
var ErrInvalidSelection = errors.New("selection must contain exactly one option per variation type")

// Key is the canonical, order-independent identity of a set of selected
// option ids. Two selections with the same options in any input order produce
// equal keys and an identical serialized form, which is also what gets
// persisted and compared against in storage.
type Key struct {
	ids       []uuid.UUID
	canonical string
}

// NewKey normalizes the given option ids into a Key: ids are sorted ascending
// and serialized as a JSON array of id strings.
func NewKey(optionIDs []uuid.UUID) Key {
	ids := make([]uuid.UUID, len(optionIDs))
	copy(ids, optionIDs)
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	raw, _ := json.Marshal(strs)

	return Key{ids: ids, canonical: string(raw)}
}

// KeyForSelection builds a Key for a selection against a product's variation
// types. It fails with ErrInvalidSelection unless the selection contains
// exactly one option per type, each belonging to a distinct type. A product
// with no variation types accepts only the empty selection.
func KeyForSelection(types []VariationType, optionIDs []uuid.UUID) (Key, error) {
	if len(optionIDs) != len(types) {
		return Key{}, fmt.Errorf("%w: got %d options for %d variation types", ErrInvalidSelection, len(optionIDs), len(types))
	}

	seenTypes := make(map[uuid.UUID]struct{}, len(types))
	for _, optionID := range optionIDs {
		typeID, ok := typeOfOption(types, optionID)
		if !ok {
			return Key{}, fmt.Errorf("%w: option %s does not belong to the product", ErrInvalidSelection, optionID)
		}
		if _, dup := seenTypes[typeID]; dup {
			return Key{}, fmt.Errorf("%w: two options from the same variation type", ErrInvalidSelection)
		}
		seenTypes[typeID] = struct{}{}
	}

	return NewKey(optionIDs), nil
}

// ParseKey deserializes a stored canonical form back into a Key. The input is
// re-normalized, so a key round-trips regardless of how it was produced.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return NewKey(nil), nil
	}
	var strs []string
	if err := json.Unmarshal([]byte(s), &strs); err != nil {
		return Key{}, fmt.Errorf("malformed variant key %q: %w", s, err)
	}
	ids := make([]uuid.UUID, len(strs))
	for i, raw := range strs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return Key{}, fmt.Errorf("malformed option id in variant key: %w", err)
		}
		ids[i] = id
	}
	return NewKey(ids), nil
}

// String returns the canonical serialized form.
func (k Key) String() string {
	if k.canonical == "" {
		return "[]"
	}
	return k.canonical
}

// Equal reports exact set equality. No partial or subset matching.
func (k Key) Equal(other Key) bool {
	return k.String() == other.String()
}

// OptionIDs returns the normalized option ids, ascending.
func (k Key) OptionIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(k.ids))
	copy(out, k.ids)
	return out
}

// Len returns the number of options in the key.
func (k Key) Len() int {
	return len(k.ids)
}

func typeOfOption(types []VariationType, optionID uuid.UUID) (uuid.UUID, bool) {
	for _, vt := range types {
		for _, opt := range vt.Options {
			if opt.ID == optionID {
				return vt.ID, true
			}
		}
	}
	return uuid.Nil, false
}
