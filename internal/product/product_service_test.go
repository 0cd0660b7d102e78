package product_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock "go-market-api/internal/mock/product"
	"go-market-api/internal/product"
	producterrors "go-market-api/internal/product/errors"
	"go-market-api/internal/variant"
)

func twoTypeCatalog() (types []variant.VariationType, red, blue, small, medium uuid.UUID) {
	red, blue = uuid.New(), uuid.New()
	small, medium = uuid.New(), uuid.New()
	types = []variant.VariationType{
		{
			ID:   uuid.New(),
			Name: "Color",
			Options: []variant.Option{
				{ID: red, Name: "Red"},
				{ID: blue, Name: "Blue"},
			},
		},
		{
			ID:   uuid.New(),
			Name: "Size",
			Options: []variant.Option{
				{ID: small, Name: "S"},
				{ID: medium, Name: "M"},
			},
		},
	}
	return types, red, blue, small, medium
}

func TestService_PriceForOptions(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	basePrice := decimal.NewFromInt(50)

	t.Run("override_price_wins_on_exact_match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := product.NewService(repo, nil)

		types, red, _, small, _ := twoTypeCatalog()
		selection := []uuid.UUID{red, small}
		key := variant.NewKey(selection)

		repo.EXPECT().GetByID(ctx, productID).Return(product.Product{ID: productID, Price: basePrice}, nil)
		repo.EXPECT().GetVariationTypes(ctx, productID).Return(types, nil)
		repo.EXPECT().GetOverrideByKey(ctx, productID, key.String()).
			Return(variant.Override{OptionIDs: selection, Quantity: 5, Price: decimal.NewFromInt(65)}, nil)

		gotKey, price, err := svc.PriceForOptions(ctx, productID, selection)
		require.NoError(t, err)
		assert.True(t, gotKey.Equal(key))
		assert.True(t, price.Equal(decimal.NewFromInt(65)))
	})

	t.Run("base_price_when_no_override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := product.NewService(repo, nil)

		types, _, blue, _, medium := twoTypeCatalog()
		selection := []uuid.UUID{blue, medium}
		key := variant.NewKey(selection)

		repo.EXPECT().GetByID(ctx, productID).Return(product.Product{ID: productID, Price: basePrice}, nil)
		repo.EXPECT().GetVariationTypes(ctx, productID).Return(types, nil)
		repo.EXPECT().GetOverrideByKey(ctx, productID, key.String()).
			Return(variant.Override{}, sql.ErrNoRows)

		_, price, err := svc.PriceForOptions(ctx, productID, selection)
		require.NoError(t, err)
		assert.True(t, price.Equal(basePrice))
	})

	t.Run("selection_order_does_not_change_the_key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := product.NewService(repo, nil)

		types, red, _, small, _ := twoTypeCatalog()
		key := variant.NewKey([]uuid.UUID{red, small})

		repo.EXPECT().GetByID(ctx, productID).Return(product.Product{ID: productID, Price: basePrice}, nil)
		repo.EXPECT().GetVariationTypes(ctx, productID).Return(types, nil)
		repo.EXPECT().GetOverrideByKey(ctx, productID, key.String()).
			Return(variant.Override{}, sql.ErrNoRows)

		gotKey, _, err := svc.PriceForOptions(ctx, productID, []uuid.UUID{small, red})
		require.NoError(t, err)
		assert.True(t, gotKey.Equal(key))
	})

	t.Run("error_product_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := product.NewService(repo, nil)

		repo.EXPECT().GetByID(ctx, productID).Return(product.Product{}, sql.ErrNoRows)

		_, _, err := svc.PriceForOptions(ctx, productID, nil)
		assert.ErrorIs(t, err, producterrors.ErrProductNotFound)
	})

	t.Run("error_invalid_selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := product.NewService(repo, nil)

		types, red, _, _, _ := twoTypeCatalog()

		repo.EXPECT().GetByID(ctx, productID).Return(product.Product{ID: productID, Price: basePrice}, nil)
		repo.EXPECT().GetVariationTypes(ctx, productID).Return(types, nil)

		// Only one of the two types covered.
		_, _, err := svc.PriceForOptions(ctx, productID, []uuid.UUID{red})
		assert.ErrorIs(t, err, producterrors.ErrInvalidSelection)
	})
}

func TestService_DefaultSelection(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("first_option_of_each_type_in_definition_order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := product.NewService(repo, nil)

		types, red, _, small, _ := twoTypeCatalog()
		repo.EXPECT().GetVariationTypes(ctx, productID).Return(types, nil)

		ids, err := svc.DefaultSelection(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{red, small}, ids)
	})

	t.Run("empty_types_yield_empty_selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := product.NewService(repo, nil)

		repo.EXPECT().GetVariationTypes(ctx, productID).Return(nil, nil)

		ids, err := svc.DefaultSelection(ctx, productID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestService_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("success_with_variation_types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := product.NewService(repo, nil)

		productID := uuid.New()
		types, _, _, _, _ := twoTypeCatalog()

		repo.EXPECT().GetBySlug(ctx, "canvas-tote").Return(product.Product{
			ID:    productID,
			Title: "Canvas Tote",
			Slug:  "canvas-tote",
			Price: decimal.NewFromInt(25),
		}, nil)
		repo.EXPECT().GetVariationTypes(ctx, productID).Return(types, nil)

		res, err := svc.GetBySlug(ctx, "canvas-tote")
		require.NoError(t, err)
		assert.Equal(t, "Canvas Tote", res.Title)
		require.Len(t, res.VariationTypes, 2)
		assert.Equal(t, "Color", res.VariationTypes[0].Name)
		assert.Len(t, res.VariationTypes[0].Options, 2)
	})

	t.Run("error_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := product.NewService(repo, nil)

		repo.EXPECT().GetBySlug(ctx, "missing").Return(product.Product{}, sql.ErrNoRows)

		_, err := svc.GetBySlug(ctx, "missing")
		assert.ErrorIs(t, err, producterrors.ErrProductNotFound)
	})
}

func TestService_GetProductsByIDs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := product.NewService(repo, nil)

	idA := uuid.New()
	idB := uuid.New()
	repo.EXPECT().GetByIDs(ctx, []uuid.UUID{idA, idB}).Return([]product.Product{
		{ID: idA, Title: "Mug"},
	}, nil)

	byID, err := svc.GetProductsByIDs(ctx, []uuid.UUID{idA, idB})
	require.NoError(t, err)
	assert.Len(t, byID, 1)
	assert.Equal(t, "Mug", byID[idA].Title)
	_, found := byID[idB]
	assert.False(t, found)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := product.NewService(repo, nil)

	// Out-of-range paging falls back to the defaults.
	repo.EXPECT().List(ctx, int32(24), int32(0)).Return([]product.Product{}, nil)

	_, err := svc.List(ctx, 0, 500)
	assert.NoError(t, err)
}

func TestService_ErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := product.NewService(repo, nil)

	dbErr := errors.New("db down")
	repo.EXPECT().GetByIDs(ctx, gomock.Any()).Return(nil, dbErr)

	_, err := svc.GetProductsByIDs(ctx, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, dbErr)
}
