package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-market-api/internal/cart"
	carterrors "go-market-api/internal/cart/errors"
	mockcart "go-market-api/internal/mock/cart"
	mockproduct "go-market-api/internal/mock/product"
	"go-market-api/internal/product"
	"go-market-api/internal/variant"
)

type fixture struct {
	accounts *mockcart.MockStore
	guests   *mockcart.MockStore
	products *mockproduct.MockService
	svc      *cart.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		accounts: mockcart.NewMockStore(ctrl),
		guests:   mockcart.NewMockStore(ctrl),
		products: mockproduct.NewMockService(ctrl),
	}
	f.svc = cart.NewService(cart.Deps{
		Accounts: f.accounts,
		Guests:   f.guests,
		Products: f.products,
	})
	return f
}

func TestSession_AddItem(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	optionIDs := []uuid.UUID{uuid.New(), uuid.New()}
	key := variant.NewKey(optionIDs)
	price := decimal.NewFromFloat(19.99)

	t.Run("success_authenticated_goes_to_account_store", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		f.products.EXPECT().
			PriceForOptions(ctx, productID, optionIDs).
			Return(key, price, nil)
		f.accounts.EXPECT().
			Add(ctx, owner, productID, key, int32(2), price).
			Return(nil)

		err := f.svc.Session(owner).AddItem(ctx, productID, 2, optionIDs)
		assert.NoError(t, err)
	})

	t.Run("success_guest_goes_to_guest_store", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{GuestToken: uuid.NewString()}

		f.products.EXPECT().
			PriceForOptions(ctx, productID, optionIDs).
			Return(key, price, nil)
		f.guests.EXPECT().
			Add(ctx, owner, productID, key, int32(1), price).
			Return(nil)

		err := f.svc.Session(owner).AddItem(ctx, productID, 1, optionIDs)
		assert.NoError(t, err)
	})

	t.Run("nil_options_fall_back_to_default_selection", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		f.products.EXPECT().
			DefaultSelection(ctx, productID).
			Return(optionIDs, nil)
		f.products.EXPECT().
			PriceForOptions(ctx, productID, optionIDs).
			Return(key, price, nil)
		f.accounts.EXPECT().
			Add(ctx, owner, productID, key, int32(1), price).
			Return(nil)

		err := f.svc.Session(owner).AddItem(ctx, productID, 1, nil)
		assert.NoError(t, err)
	})

	t.Run("error_zero_quantity", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Session(cart.Owner{UserID: uuid.New()}).AddItem(ctx, productID, 0, optionIDs)
		assert.ErrorIs(t, err, carterrors.ErrInvalidQuantity)
	})

	t.Run("error_pricing_failure_propagates", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		f.products.EXPECT().
			PriceForOptions(ctx, productID, optionIDs).
			Return(variant.Key{}, decimal.Zero, errors.New("invalid selection"))

		err := f.svc.Session(owner).AddItem(ctx, productID, 1, optionIDs)
		assert.Error(t, err)
	})

	t.Run("error_store_failure_wraps_storage_unavailable", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		f.products.EXPECT().
			PriceForOptions(ctx, productID, optionIDs).
			Return(key, price, nil)
		f.accounts.EXPECT().
			Add(ctx, owner, productID, key, int32(1), price).
			Return(errors.New("connection refused"))

		err := f.svc.Session(owner).AddItem(ctx, productID, 1, optionIDs)
		assert.ErrorIs(t, err, carterrors.ErrStorageUnavailable)
	})
}

func TestSession_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	optionIDs := []uuid.UUID{uuid.New()}
	key := variant.NewKey(optionIDs)

	t.Run("success_sets_quantity", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		f.accounts.EXPECT().
			UpdateQuantity(ctx, owner, productID, key, int32(5)).
			Return(nil)

		err := f.svc.Session(owner).UpdateItemQuantity(ctx, productID, 5, optionIDs)
		assert.NoError(t, err)
	})

	t.Run("zero_quantity_removes_the_line", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		f.accounts.EXPECT().
			Remove(ctx, owner, productID, key).
			Return(nil)

		err := f.svc.Session(owner).UpdateItemQuantity(ctx, productID, 0, optionIDs)
		assert.NoError(t, err)
	})

	t.Run("error_negative_quantity", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Session(cart.Owner{UserID: uuid.New()}).UpdateItemQuantity(ctx, productID, -1, optionIDs)
		assert.ErrorIs(t, err, carterrors.ErrInvalidQuantity)
	})
}

func TestSession_Items(t *testing.T) {
	ctx := context.Background()

	vendorID := uuid.New()
	productID := uuid.New()
	colorRed := uuid.New()
	sizeM := uuid.New()
	colorTypeID := uuid.New()
	sizeTypeID := uuid.New()

	line := cart.Line{
		ID:        uuid.NewString(),
		ProductID: productID,
		Key:       variant.NewKey([]uuid.UUID{colorRed, sizeM}),
		Quantity:  2,
		Price:     decimal.NewFromInt(25),
	}

	catalog := map[uuid.UUID]product.Product{
		productID: {
			ID:         productID,
			Title:      "Canvas Tote",
			Slug:       "canvas-tote",
			Price:      decimal.NewFromInt(25),
			Image:      "tote.jpg",
			VendorID:   vendorID,
			VendorName: "Craft Goods",
		},
	}
	options := map[uuid.UUID]product.OptionDetail{
		colorRed: {ID: colorRed, Name: "Red", Image: "tote-red.jpg", TypeID: colorTypeID, TypeName: "Color"},
		sizeM:    {ID: sizeM, Name: "M", TypeID: sizeTypeID, TypeName: "Size"},
	}

	t.Run("enriches_lines_with_catalog_data", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		f.accounts.EXPECT().List(ctx, owner).Return([]cart.Line{line}, nil)
		f.products.EXPECT().GetProductsByIDs(ctx, gomock.Any()).Return(catalog, nil)
		f.products.EXPECT().GetOptionsByIDs(ctx, gomock.Any()).Return(options, nil)

		items := f.svc.Session(owner).Items(ctx)
		require.Len(t, items, 1)

		item := items[0]
		assert.Equal(t, "Canvas Tote", item.Title)
		assert.Equal(t, int32(2), item.Quantity)
		assert.True(t, item.Price.Equal(decimal.NewFromInt(25)))
		assert.Len(t, item.Options, 2)
		assert.Equal(t, "Craft Goods", item.Vendor.Name)
		// First option image wins over the product image.
		assert.Equal(t, "tote-red.jpg", item.Image)
	})

	t.Run("memoizes_within_a_session", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		f.accounts.EXPECT().List(ctx, owner).Return([]cart.Line{line}, nil).Times(1)
		f.products.EXPECT().GetProductsByIDs(ctx, gomock.Any()).Return(catalog, nil).Times(1)
		f.products.EXPECT().GetOptionsByIDs(ctx, gomock.Any()).Return(options, nil).Times(1)

		session := f.svc.Session(owner)
		first := session.Items(ctx)
		second := session.Items(ctx)
		assert.Equal(t, first, second)
	})

	t.Run("read_failure_degrades_to_empty_cart", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{GuestToken: uuid.NewString()}

		f.guests.EXPECT().List(ctx, owner).Return(nil, errors.New("redis down"))

		items := f.svc.Session(owner).Items(ctx)
		assert.Empty(t, items)
	})

	t.Run("failed_read_is_not_cached", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		f.accounts.EXPECT().List(ctx, owner).Return(nil, errors.New("db down"))
		f.accounts.EXPECT().List(ctx, owner).Return([]cart.Line{line}, nil)
		f.products.EXPECT().GetProductsByIDs(ctx, gomock.Any()).Return(catalog, nil)
		f.products.EXPECT().GetOptionsByIDs(ctx, gomock.Any()).Return(options, nil)

		session := f.svc.Session(owner)
		assert.Empty(t, session.Items(ctx))
		assert.Len(t, session.Items(ctx), 1)
	})

	t.Run("skips_lines_whose_product_is_gone", func(t *testing.T) {
		f := newFixture(t)
		owner := cart.Owner{UserID: uuid.New()}

		ghost := cart.Line{
			ID:        uuid.NewString(),
			ProductID: uuid.New(),
			Key:       variant.NewKey(nil),
			Quantity:  1,
			Price:     decimal.NewFromInt(10),
		}
		f.accounts.EXPECT().List(ctx, owner).Return([]cart.Line{line, ghost}, nil)
		f.products.EXPECT().GetProductsByIDs(ctx, gomock.Any()).Return(catalog, nil)
		f.products.EXPECT().GetOptionsByIDs(ctx, gomock.Any()).Return(options, nil)

		items := f.svc.Session(owner).Items(ctx)
		require.Len(t, items, 1)
		assert.Equal(t, "Canvas Tote", items[0].Title)
	})
}

func TestSession_Totals(t *testing.T) {
	ctx := context.Background()
	owner := cart.Owner{UserID: uuid.New()}

	p1 := uuid.New()
	p2 := uuid.New()
	vendorID := uuid.New()
	lines := []cart.Line{
		{ID: uuid.NewString(), ProductID: p1, Key: variant.NewKey(nil), Quantity: 2, Price: decimal.NewFromFloat(9.50)},
		{ID: uuid.NewString(), ProductID: p2, Key: variant.NewKey(nil), Quantity: 1, Price: decimal.NewFromInt(40)},
	}
	catalog := map[uuid.UUID]product.Product{
		p1: {ID: p1, Title: "Mug", Slug: "mug", VendorID: vendorID},
		p2: {ID: p2, Title: "Poster", Slug: "poster", VendorID: vendorID},
	}

	f := newFixture(t)
	f.accounts.EXPECT().List(ctx, owner).Return(lines, nil)
	f.products.EXPECT().GetProductsByIDs(ctx, gomock.Any()).Return(catalog, nil)
	f.products.EXPECT().GetOptionsByIDs(ctx, gomock.Any()).Return(map[uuid.UUID]product.OptionDetail{}, nil)

	session := f.svc.Session(owner)
	assert.Equal(t, int32(3), session.TotalQuantity(ctx))
	assert.True(t, session.TotalPrice(ctx).Equal(decimal.NewFromInt(59)))
}

func TestService_Migrate(t *testing.T) {
	ctx := context.Background()
	guestToken := uuid.NewString()
	userID := uuid.New()
	guestOwner := cart.Owner{GuestToken: guestToken}
	accountOwner := cart.Owner{UserID: userID}

	productID := uuid.New()
	key := variant.NewKey([]uuid.UUID{uuid.New()})
	price := decimal.NewFromInt(12)

	t.Run("replays_guest_lines_then_clears_the_blob", func(t *testing.T) {
		f := newFixture(t)

		f.guests.EXPECT().
			List(ctx, guestOwner).
			Return([]cart.Line{{ID: uuid.NewString(), ProductID: productID, Key: key, Quantity: 3, Price: price}}, nil)
		f.accounts.EXPECT().
			Add(ctx, accountOwner, productID, key, int32(3), price).
			Return(nil)
		f.guests.EXPECT().
			Clear(ctx, guestOwner).
			Return(nil)

		err := f.svc.Migrate(ctx, guestToken, userID)
		assert.NoError(t, err)
	})

	t.Run("error_account_write_failure_keeps_guest_blob", func(t *testing.T) {
		f := newFixture(t)

		f.guests.EXPECT().
			List(ctx, guestOwner).
			Return([]cart.Line{{ID: uuid.NewString(), ProductID: productID, Key: key, Quantity: 1, Price: price}}, nil)
		f.accounts.EXPECT().
			Add(ctx, accountOwner, productID, key, int32(1), price).
			Return(errors.New("db down"))

		err := f.svc.Migrate(ctx, guestToken, userID)
		assert.ErrorIs(t, err, carterrors.ErrStorageUnavailable)
	})
}
