package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-market-api/internal/variant"
)

// Owner identifies whose cart a request operates on: an account id for
// authenticated callers, a client-held token for guests. Exactly one side is
// set; the backend is selected from it once per request.
type Owner struct {
	UserID     uuid.UUID
	GuestToken string
}

func (o Owner) Authenticated() bool {
	return o.UserID != uuid.Nil
}

// Line is one raw cart line as a backend stores it: the selected option set in
// canonical form, the quantity, and the unit price captured at add time.
type Line struct {
	ID        string
	ProductID uuid.UUID
	Key       variant.Key
	Quantity  int32
	Price     decimal.Decimal
}

type ItemOptionType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ItemOption struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Type ItemOptionType `json:"type"`
}

type ItemVendor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EnrichedItem is the read-only projection of a cart line joined with product
// and option data. Assembled at read time, never persisted.
type EnrichedItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Slug      string          `json:"slug"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int32           `json:"quantity"`
	OptionIDs []string        `json:"optionIds"`
	Options   []ItemOption    `json:"options"`
	Image     string          `json:"image"`
	Vendor    ItemVendor      `json:"vendor"`
}

type AddItemRequest struct {
	Quantity  *int32   `json:"quantity" validate:"omitempty,min=1"`
	OptionIDs []string `json:"optionIds"`
}

type UpdateQuantityRequest struct {
	Quantity  int32    `json:"quantity" validate:"min=0"`
	OptionIDs []string `json:"optionIds" validate:"required"`
}

type RemoveItemRequest struct {
	OptionIDs []string `json:"optionIds" validate:"required"`
}

type CartResponse struct {
	Items         []EnrichedItem  `json:"items"`
	TotalQuantity int32           `json:"totalQuantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}
