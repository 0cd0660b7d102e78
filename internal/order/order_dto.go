package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is one vendor's slice of a checkout. A cart spanning three vendors
// produces three orders, each carrying its own fee breakdown.
type Order struct {
	ID             uuid.UUID
	OrderNumber    string
	UserID         uuid.UUID
	VendorID       uuid.UUID
	Status         string
	Subtotal       decimal.Decimal
	PlatformFee    decimal.Decimal
	PaymentFee     decimal.Decimal
	VendorEarnings decimal.Decimal
	PlacedAt       time.Time
}

// Item snapshots a cart line at checkout time. Title and price are copied so
// later catalog edits never rewrite order history.
type Item struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	ProductID     uuid.UUID
	TitleSnapshot string
	OptionIDs     string
	UnitPrice     decimal.Decimal
	Quantity      int32
	TotalPrice    decimal.Decimal
}

// VendorContact is what the notification pipeline needs to reach a vendor.
type VendorContact struct {
	StoreName string
	Email     string
}

// OrderPlacedPayload is the outbox/broker payload for an ORDER_PLACED event.
type OrderPlacedPayload struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	VendorID    string `json:"vendor_id"`
	UserID      string `json:"user_id"`
}

type OrderItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	TitleSnapshot string          `json:"title"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int32           `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

type OrderResponse struct {
	ID             string              `json:"id"`
	OrderNumber    string              `json:"orderNumber"`
	Status         string              `json:"status"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	PlatformFee    decimal.Decimal     `json:"platformFee"`
	PaymentFee     decimal.Decimal     `json:"paymentFee"`
	VendorEarnings decimal.Decimal     `json:"vendorEarnings"`
	PlacedAt       time.Time           `json:"placedAt"`
	Items          []OrderItemResponse `json:"items"`
}

// CheckoutResponse lists every per-vendor order a checkout produced.
type CheckoutResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}
