package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"go-market-api/internal/shared/database/dbx"
	"go-market-api/internal/shared/database/helper"
	"go-market-api/internal/variant"
)

//go:generate mockgen -source=product_repo.go -destination=../mock/product/product_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbx.DBTX) Repository

	List(ctx context.Context, limit, offset int32) ([]Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	GetOptionsByIDs(ctx context.Context, ids []uuid.UUID) ([]OptionDetail, error)
	GetVariationTypes(ctx context.Context, productID uuid.UUID) ([]variant.VariationType, error)

	GetOverrides(ctx context.Context, productID uuid.UUID) ([]variant.Override, error)
	GetOverrideByKey(ctx context.Context, productID uuid.UUID, key string) (variant.Override, error)
	UpsertOverride(ctx context.Context, arg UpsertOverrideParams) error
}

type UpsertOverrideParams struct {
	ProductID uuid.UUID
	Key       string
	Quantity  int32
	Price     decimal.Decimal
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

const productColumns = `
	p.id, p.title, p.slug, p.price, p.quantity, p.image, p.vendor_id, v.store_name
`

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var p Product
	var price string
	var image sql.NullString
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &price, &p.Quantity, &image, &p.VendorID, &p.VendorName); err != nil {
		return Product{}, err
	}
	p.Price = helper.DecimalFromString(price)
	p.Image = helper.NullStringValue(image)
	return p, nil
}

func (r *repository) List(ctx context.Context, limit, offset int32) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN vendors v ON v.id = p.vendor_id
		WHERE p.published = TRUE
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN vendors v ON v.id = p.vendor_id
		WHERE p.id = $1`, id)
	return scanProduct(row)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN vendors v ON v.id = p.vendor_id
		WHERE p.slug = $1 AND p.published = TRUE`, slug)
	return scanProduct(row)
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN vendors v ON v.id = p.vendor_id
		WHERE p.id = ANY($1) AND p.published = TRUE`, pq.Array(uuidStrings(ids)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetOptionsByIDs(ctx context.Context, ids []uuid.UUID) ([]OptionDetail, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.name, o.image, t.id, t.name
		FROM variation_type_options o
		JOIN variation_types t ON t.id = o.variation_type_id
		WHERE o.id = ANY($1)`, pq.Array(uuidStrings(ids)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []OptionDetail
	for rows.Next() {
		var opt OptionDetail
		var image sql.NullString
		if err := rows.Scan(&opt.ID, &opt.Name, &image, &opt.TypeID, &opt.TypeName); err != nil {
			return nil, err
		}
		opt.Image = helper.NullStringValue(image)
		options = append(options, opt)
	}
	return options, rows.Err()
}

// GetVariationTypes returns the product's types with options, both in
// definition (position) order. That order drives expansion output ordering.
func (r *repository) GetVariationTypes(ctx context.Context, productID uuid.UUID) ([]variant.VariationType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.name, o.id, o.name, o.image
		FROM variation_types t
		LEFT JOIN variation_type_options o ON o.variation_type_id = t.id
		WHERE t.product_id = $1
		ORDER BY t.position, o.position`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []variant.VariationType
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			typeID     uuid.UUID
			typeName   string
			optionID   uuid.NullUUID
			optionName sql.NullString
			image      sql.NullString
		)
		if err := rows.Scan(&typeID, &typeName, &optionID, &optionName, &image); err != nil {
			return nil, err
		}

		i, seen := index[typeID]
		if !seen {
			types = append(types, variant.VariationType{ID: typeID, Name: typeName})
			i = len(types) - 1
			index[typeID] = i
		}
		if optionID.Valid {
			types[i].Options = append(types[i].Options, variant.Option{
				ID:    optionID.UUID,
				Name:  helper.NullStringValue(optionName),
				Image: helper.NullStringValue(image),
			})
		}
	}
	return types, rows.Err()
}

func (r *repository) GetOverrides(ctx context.Context, productID uuid.UUID) ([]variant.Override, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT variation_type_option_ids, quantity, price
		FROM variant_overrides
		WHERE product_id = $1`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []variant.Override
	for rows.Next() {
		ov, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, ov)
	}
	return overrides, rows.Err()
}

func (r *repository) GetOverrideByKey(ctx context.Context, productID uuid.UUID, key string) (variant.Override, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT variation_type_option_ids, quantity, price
		FROM variant_overrides
		WHERE product_id = $1 AND variation_type_option_ids = $2`, productID, key)
	return scanOverride(row)
}

// UpsertOverride keeps at most one row per (product, key). The key column
// always holds the canonical serialized form, so equality lookups never
// compare raw unsorted lists.
func (r *repository) UpsertOverride(ctx context.Context, arg UpsertOverrideParams) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO variant_overrides (id, product_id, variation_type_option_ids, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, variation_type_option_ids)
		DO UPDATE SET quantity = EXCLUDED.quantity, price = EXCLUDED.price, updated_at = NOW()`,
		uuid.New(), arg.ProductID, arg.Key, arg.Quantity, arg.Price.String())
	return err
}

func scanOverride(row interface{ Scan(...any) error }) (variant.Override, error) {
	var (
		rawKey   string
		quantity int32
		price    string
	)
	if err := row.Scan(&rawKey, &quantity, &price); err != nil {
		return variant.Override{}, err
	}
	key, err := variant.ParseKey(rawKey)
	if err != nil {
		return variant.Override{}, fmt.Errorf("stored override key: %w", err)
	}
	return variant.Override{
		OptionIDs: key.OptionIDs(),
		Quantity:  quantity,
		Price:     helper.DecimalFromString(price),
	}, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
