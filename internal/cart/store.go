package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-market-api/internal/variant"
)

// Store is the line-item storage contract both cart backends satisfy
// identically. Lines are keyed by (owner, productID, key); key comparison is
// always against the canonical serialized form.
//
//go:generate mockgen -source=store.go -destination=../mock/cart/store_mock.go -package=mock
type Store interface {
	// Add merges into an existing line for the same (owner, productID, key)
	// by incrementing its quantity, or creates a new line with a fresh id.
	Add(ctx context.Context, owner Owner, productID uuid.UUID, key variant.Key, quantity int32, price decimal.Decimal) error

	// UpdateQuantity sets (not increments) the quantity of the matching
	// line. Absent line is a no-op.
	UpdateQuantity(ctx context.Context, owner Owner, productID uuid.UUID, key variant.Key, quantity int32) error

	// Remove deletes the matching line. Absent line is a no-op.
	Remove(ctx context.Context, owner Owner, productID uuid.UUID, key variant.Key) error

	// List returns all lines for the owner in backend-natural order.
	List(ctx context.Context, owner Owner) ([]Line, error)

	// Clear removes every line for the owner.
	Clear(ctx context.Context, owner Owner) error
}
