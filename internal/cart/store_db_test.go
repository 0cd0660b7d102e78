package cart_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-market-api/internal/cart"
	"go-market-api/internal/variant"
)

func TestDBStore_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := cart.NewDBStore(db)
	ctx := context.Background()
	owner := cart.Owner{UserID: uuid.New()}
	productID := uuid.New()
	key := variant.NewKey([]uuid.UUID{uuid.New(), uuid.New()})
	price := decimal.NewFromFloat(19.99)

	mock.ExpectExec("INSERT INTO cart_items").
		WithArgs(sqlmock.AnyArg(), owner.UserID, productID, key.String(), int32(2), price.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Add(ctx, owner, productID, key, 2, price)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_UpdateQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := cart.NewDBStore(db)
	ctx := context.Background()
	owner := cart.Owner{UserID: uuid.New()}
	productID := uuid.New()
	key := variant.NewKey([]uuid.UUID{uuid.New()})

	mock.ExpectExec("UPDATE cart_items").
		WithArgs(owner.UserID, productID, key.String(), int32(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.UpdateQuantity(ctx, owner, productID, key, 6)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := cart.NewDBStore(db)
	ctx := context.Background()
	owner := cart.Owner{UserID: uuid.New()}
	productID := uuid.New()
	key := variant.NewKey([]uuid.UUID{uuid.New()})

	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(owner.UserID, productID, key.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Remove(ctx, owner, productID, key)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := cart.NewDBStore(db)
	ctx := context.Background()
	owner := cart.Owner{UserID: uuid.New()}

	lineID := uuid.New()
	productID := uuid.New()
	key := variant.NewKey([]uuid.UUID{uuid.New(), uuid.New()})

	rows := sqlmock.NewRows([]string{"id", "product_id", "variation_type_option_ids", "quantity", "price"}).
		AddRow(lineID.String(), productID.String(), key.String(), int32(3), "24.00")

	mock.ExpectQuery("SELECT (.+) FROM cart_items").
		WithArgs(owner.UserID).
		WillReturnRows(rows)

	lines, err := store.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, lineID.String(), lines[0].ID)
	assert.Equal(t, productID, lines[0].ProductID)
	assert.True(t, lines[0].Key.Equal(key))
	assert.Equal(t, int32(3), lines[0].Quantity)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(24)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_Clear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := cart.NewDBStore(db)
	ctx := context.Background()
	owner := cart.Owner{UserID: uuid.New()}

	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(owner.UserID).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = store.Clear(ctx, owner)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
