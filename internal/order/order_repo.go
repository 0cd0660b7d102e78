package order

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-market-api/internal/shared/database/dbx"
	"go-market-api/internal/shared/database/helper"
)

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbx.DBTX) Repository

	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) error

	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]Item, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]Order, error)

	GetVendorContact(ctx context.Context, vendorID uuid.UUID) (VendorContact, error)
}

type CreateOrderParams struct {
	OrderNumber    string
	UserID         uuid.UUID
	VendorID       uuid.UUID
	Status         string
	Subtotal       decimal.Decimal
	PlatformFee    decimal.Decimal
	PaymentFee     decimal.Decimal
	VendorEarnings decimal.Decimal
}

type CreateOrderItemParams struct {
	OrderID       uuid.UUID
	ProductID     uuid.UUID
	TitleSnapshot string
	OptionIDs     string
	UnitPrice     decimal.Decimal
	Quantity      int32
	TotalPrice    decimal.Decimal
}

type repository struct {
	db dbx.DBTX
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx dbx.DBTX) Repository {
	return &repository{db: tx}
}

const orderColumns = `
	id, order_number, user_id, vendor_id, status,
	subtotal, platform_fee, payment_fee, vendor_earnings, placed_at
`

func scanOrder(row interface{ Scan(...any) error }) (Order, error) {
	var o Order
	var subtotal, platformFee, paymentFee, earnings string
	if err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.VendorID, &o.Status,
		&subtotal, &platformFee, &paymentFee, &earnings, &o.PlacedAt); err != nil {
		return Order{}, err
	}
	o.Subtotal = helper.DecimalFromString(subtotal)
	o.PlatformFee = helper.DecimalFromString(platformFee)
	o.PaymentFee = helper.DecimalFromString(paymentFee)
	o.VendorEarnings = helper.DecimalFromString(earnings)
	return o, nil
}

func (r *repository) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (id, order_number, user_id, vendor_id, status,
			subtotal, platform_fee, payment_fee, vendor_earnings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+orderColumns,
		uuid.New(), arg.OrderNumber, arg.UserID, arg.VendorID, arg.Status,
		arg.Subtotal.String(), arg.PlatformFee.String(), arg.PaymentFee.String(), arg.VendorEarnings.String())
	return scanOrder(row)
}

func (r *repository) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_items (id, order_id, product_id, title_snapshot,
			variation_type_option_ids, unit_price, quantity, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), arg.OrderID, arg.ProductID, arg.TitleSnapshot,
		arg.OptionIDs, arg.UnitPrice.String(), arg.Quantity, arg.TotalPrice.String())
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1`, id)
	return scanOrder(row)
}

func (r *repository) GetItems(ctx context.Context, orderID uuid.UUID) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, title_snapshot,
			variation_type_option_ids, unit_price, quantity, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var unitPrice, totalPrice string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.TitleSnapshot,
			&it.OptionIDs, &unitPrice, &it.Quantity, &totalPrice); err != nil {
			return nil, err
		}
		it.UnitPrice = helper.DecimalFromString(unitPrice)
		it.TotalPrice = helper.DecimalFromString(totalPrice)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY placed_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) GetVendorContact(ctx context.Context, vendorID uuid.UUID) (VendorContact, error) {
	var contact VendorContact
	err := r.db.QueryRowContext(ctx, `
		SELECT v.store_name, u.email
		FROM vendors v
		JOIN users u ON u.id = v.user_id
		WHERE v.id = $1`, vendorID).Scan(&contact.StoreName, &contact.Email)
	return contact, err
}
