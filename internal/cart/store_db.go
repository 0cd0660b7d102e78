package cart

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-market-api/internal/shared/database/dbx"
	"go-market-api/internal/shared/database/helper"
	"go-market-api/internal/variant"
)

// dbStore is the authenticated backend: cart lines persisted per account in
// postgres. The option-set column always holds the canonical key form, so
// equality is a plain column comparison.
type dbStore struct {
	db dbx.DBTX
}

func NewDBStore(db *sql.DB) Store {
	return &dbStore{db: db}
}

// Add relies on the unique (user_id, product_id, variation_type_option_ids)
// index and increments in SQL, so concurrent adds for the same line (multiple
// tabs, double submits) never lose updates. Price is left untouched on the
// increment path: it was captured when the line was first added.
func (s *dbStore) Add(ctx context.Context, owner Owner, productID uuid.UUID, key variant.Key, quantity int32, price decimal.Decimal) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_items (id, user_id, product_id, variation_type_option_ids, quantity, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, product_id, variation_type_option_ids)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()`,
		uuid.New(), owner.UserID, productID, key.String(), quantity, price.String())
	return err
}

func (s *dbStore) UpdateQuantity(ctx context.Context, owner Owner, productID uuid.UUID, key variant.Key, quantity int32) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $4, updated_at = NOW()
		WHERE user_id = $1 AND product_id = $2 AND variation_type_option_ids = $3`,
		owner.UserID, productID, key.String(), quantity)
	return err
}

func (s *dbStore) Remove(ctx context.Context, owner Owner, productID uuid.UUID, key variant.Key) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1 AND product_id = $2 AND variation_type_option_ids = $3`,
		owner.UserID, productID, key.String())
	return err
}

func (s *dbStore) List(ctx context.Context, owner Owner) ([]Line, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, product_id, variation_type_option_ids, quantity, price
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at`, owner.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var (
			id     uuid.UUID
			line   Line
			rawKey string
			price  string
		)
		if err := rows.Scan(&id, &line.ProductID, &rawKey, &line.Quantity, &price); err != nil {
			return nil, err
		}
		key, err := variant.ParseKey(rawKey)
		if err != nil {
			return nil, err
		}
		line.ID = id.String()
		line.Key = key
		line.Price = helper.DecimalFromString(price)
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *dbStore) Clear(ctx context.Context, owner Owner) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, owner.UserID)
	return err
}
