package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-market-api/internal/cart"
	"go-market-api/internal/email"
	ordererrors "go-market-api/internal/order/errors"
	"go-market-api/internal/outbox"
	"go-market-api/internal/pkg/apperror"
)

// Marketplace fee schedule, applied per vendor order.
var (
	platformFeeRate = decimal.RequireFromString("0.10")
	paymentFeeRate  = decimal.RequireFromString("0.029")
	paymentFeeFixed = decimal.RequireFromString("0.30")
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	// Checkout turns the caller's cart into one order per vendor, records an
	// ORDER_PLACED outbox event for each, and clears the cart.
	Checkout(ctx context.Context, userID string) (CheckoutResponse, error)

	List(ctx context.Context, userID string, page, limit int32) ([]OrderResponse, error)
	Detail(ctx context.Context, userID, orderID string) (OrderResponse, error)

	// NotifyVendorOrderPlaced sends the vendor email for a placed order. It is
	// invoked by the broker consumer, not by the request path.
	NotifyVendorOrderPlaced(ctx context.Context, orderID uuid.UUID) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	carts      *cart.Service
	emails     email.Service
	logger     *zap.Logger
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Carts      *cart.Service
	Emails     email.Service
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Carts == nil {
		panic("cart service cannot be nil")
	}
	if deps.Emails == nil {
		deps.Emails = email.NewNoopService()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		carts:      deps.Carts,
		emails:     deps.Emails,
		logger:     deps.Logger,
	}
}

// vendorGroup collects one vendor's cart items during checkout.
type vendorGroup struct {
	vendorID uuid.UUID
	items    []cart.EnrichedItem
}

func (s *service) Checkout(ctx context.Context, userID string) (CheckoutResponse, error) {
	logger := s.logger.With(zap.String("user_id", userID))

	uid, err := uuid.Parse(userID)
	if err != nil {
		return CheckoutResponse{}, apperror.Wrap(err, apperror.CodeUnauthorized, "user not authenticated", http.StatusUnauthorized)
	}

	owner := cart.Owner{UserID: uid}
	session := s.carts.Session(owner)
	items := session.Items(ctx)
	if len(items) == 0 {
		return CheckoutResponse{}, ordererrors.ErrCartEmpty
	}

	groups, err := groupByVendor(items)
	if err != nil {
		logger.Error("cart items carry malformed vendor ids", zap.Error(err))
		return CheckoutResponse{}, ordererrors.ErrCheckoutFailed.Wrap(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return CheckoutResponse{}, ordererrors.ErrCheckoutFailed.Wrap(err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
			logger.Warn("checkout transaction rolled back")
		}
	}()

	qtx := s.repo.WithTx(tx)
	obx := s.outboxRepo.WithTx(tx)

	res := CheckoutResponse{Total: decimal.Zero}
	for _, group := range groups {
		subtotal := decimal.Zero
		for _, item := range group.items {
			subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
		}
		platformFee := subtotal.Mul(platformFeeRate).Round(2)
		paymentFee := subtotal.Mul(paymentFeeRate).Add(paymentFeeFixed).Round(2)
		earnings := subtotal.Sub(platformFee).Sub(paymentFee)

		orderNumber := newOrderNumber()
		o, err := qtx.CreateOrder(ctx, CreateOrderParams{
			OrderNumber:    orderNumber,
			UserID:         uid,
			VendorID:       group.vendorID,
			Status:         "PENDING",
			Subtotal:       subtotal,
			PlatformFee:    platformFee,
			PaymentFee:     paymentFee,
			VendorEarnings: earnings,
		})
		if err != nil {
			logger.Error("failed to create order record",
				zap.String("order_number", orderNumber), zap.Error(err))
			return CheckoutResponse{}, ordererrors.ErrCheckoutFailed.Wrap(err)
		}

		orderRes := toOrderResponse(o, nil)
		for _, item := range group.items {
			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return CheckoutResponse{}, ordererrors.ErrCheckoutFailed.Wrap(err)
			}
			lineTotal := item.Price.Mul(decimal.NewFromInt32(item.Quantity))
			if err := qtx.CreateOrderItem(ctx, CreateOrderItemParams{
				OrderID:       o.ID,
				ProductID:     productID,
				TitleSnapshot: item.Title,
				OptionIDs:     strings.Join(item.OptionIDs, ","),
				UnitPrice:     item.Price,
				Quantity:      item.Quantity,
				TotalPrice:    lineTotal,
			}); err != nil {
				logger.Error("failed to create order item",
					zap.String("product_id", item.ProductID), zap.Error(err))
				return CheckoutResponse{}, ordererrors.ErrCheckoutFailed.Wrap(err)
			}
			orderRes.Items = append(orderRes.Items, OrderItemResponse{
				ProductID:     item.ProductID,
				TitleSnapshot: item.Title,
				UnitPrice:     item.Price,
				Quantity:      item.Quantity,
				TotalPrice:    lineTotal,
			})
		}

		payload, _ := json.Marshal(OrderPlacedPayload{
			OrderID:     o.ID.String(),
			OrderNumber: o.OrderNumber,
			VendorID:    o.VendorID.String(),
			UserID:      userID,
		})
		if err := obx.CreateEvent(ctx, outbox.CreateEventParams{
			ID:            uuid.New(),
			AggregateType: "ORDER",
			AggregateID:   o.ID,
			EventType:     "ORDER_PLACED",
			Payload:       payload,
		}); err != nil {
			logger.Error("failed to create outbox event", zap.Error(err))
			return CheckoutResponse{}, ordererrors.ErrCheckoutFailed.Wrap(err)
		}

		res.Orders = append(res.Orders, orderRes)
		res.Total = res.Total.Add(subtotal)
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit checkout", zap.Error(err))
		return CheckoutResponse{}, ordererrors.ErrCheckoutFailed.Wrap(err)
	}
	committed = true

	// The cart is emptied after the orders are durable. A failure here leaves
	// a stale cart but never a lost order.
	if err := s.carts.Clear(ctx, owner); err != nil {
		logger.Warn("failed to clear cart after checkout", zap.Error(err))
	}

	logger.Info("checkout success", zap.Int("orders", len(res.Orders)))
	return res, nil
}

func (s *service) List(ctx context.Context, userID string, page, limit int32) ([]OrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnauthorized, "user not authenticated", http.StatusUnauthorized)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, err := s.repo.ListByUser(ctx, uid, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, toOrderResponse(o, nil))
	}
	return res, nil
}

func (s *service) Detail(ctx context.Context, userID, orderID string) (OrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return OrderResponse{}, ordererrors.ErrInvalidOrderID
	}

	o, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, ordererrors.ErrOrderNotFound
		}
		return OrderResponse{}, err
	}

	// Callers only see their own orders.
	if o.UserID.String() != userID {
		return OrderResponse{}, ordererrors.ErrOrderNotFound
	}

	items, err := s.repo.GetItems(ctx, oid)
	if err != nil {
		return OrderResponse{}, err
	}

	return toOrderResponse(o, items), nil
}

func (s *service) NotifyVendorOrderPlaced(ctx context.Context, orderID uuid.UUID) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order %s: %w", orderID, err)
	}

	items, err := s.repo.GetItems(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}

	contact, err := s.repo.GetVendorContact(ctx, o.VendorID)
	if err != nil {
		return fmt.Errorf("load vendor contact: %w", err)
	}

	lines := make([]email.NewOrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, email.NewOrderLine{
			Title:     it.TitleSnapshot,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	return s.emails.SendNewOrderEmail(ctx, contact.Email, contact.StoreName, email.NewOrderEmail{
		OrderNumber:    o.OrderNumber,
		Lines:          lines,
		Subtotal:       o.Subtotal,
		PlatformFee:    o.PlatformFee,
		PaymentFee:     o.PaymentFee,
		VendorEarnings: o.VendorEarnings,
	})
}

// groupByVendor preserves first-seen vendor order so checkout output is
// stable for a given cart.
func groupByVendor(items []cart.EnrichedItem) ([]vendorGroup, error) {
	var groups []vendorGroup
	index := map[uuid.UUID]int{}
	for _, item := range items {
		vendorID, err := uuid.Parse(item.Vendor.ID)
		if err != nil {
			return nil, fmt.Errorf("vendor id %q: %w", item.Vendor.ID, err)
		}
		i, seen := index[vendorID]
		if !seen {
			groups = append(groups, vendorGroup{vendorID: vendorID})
			i = len(groups) - 1
			index[vendorID] = i
		}
		groups[i].items = append(groups[i].items, item)
	}
	return groups, nil
}

func newOrderNumber() string {
	return fmt.Sprintf("MKT-%d-%s", time.Now().Unix(), strings.ToUpper(uuid.NewString()[:4]))
}

func toOrderResponse(o Order, items []Item) OrderResponse {
	res := OrderResponse{
		ID:             o.ID.String(),
		OrderNumber:    o.OrderNumber,
		Status:         o.Status,
		Subtotal:       o.Subtotal,
		PlatformFee:    o.PlatformFee,
		PaymentFee:     o.PaymentFee,
		VendorEarnings: o.VendorEarnings,
		PlacedAt:       o.PlacedAt,
	}
	for _, it := range items {
		res.Items = append(res.Items, OrderItemResponse{
			ID:            it.ID.String(),
			ProductID:     it.ProductID.String(),
			TitleSnapshot: it.TitleSnapshot,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			TotalPrice:    it.TotalPrice,
		})
	}
	return res
}
