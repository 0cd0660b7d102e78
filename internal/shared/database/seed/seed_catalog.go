package seed

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedCatalog creates a demo vendor with one variant-bearing product plus a
// customer account, enough to exercise the cart and checkout flows locally.
func SeedCatalog(db *sql.DB) error {
	ctx := context.Background()

	log.Println("Seeding demo catalog...")

	vendorUserID, err := seedUser(ctx, db, "vendor@example.com", "Vendor Demo", "vendor")
	if err != nil {
		return err
	}
	if _, err := seedUser(ctx, db, "customer@example.com", "Customer Demo", "customer"); err != nil {
		return err
	}
	if _, err := seedUser(ctx, db, "admin@example.com", "Admin Demo", "admin"); err != nil {
		return err
	}

	vendorID := uuid.New()
	if err := exec(ctx, db, `
		INSERT INTO vendors (id, user_id, store_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`,
		vendorID, vendorUserID, "Demo Outfitters"); err != nil {
		return err
	}

	productID := uuid.New()
	if err := exec(ctx, db, `
		INSERT INTO products (id, vendor_id, title, slug, price, quantity, published)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		ON CONFLICT (slug) DO NOTHING`,
		productID, vendorID, "Classic Tee", "classic-tee", "25.00", 100); err != nil {
		return err
	}

	if err := seedVariationType(ctx, db, productID, "Color", 0, []string{"Red", "Blue"}); err != nil {
		return err
	}
	if err := seedVariationType(ctx, db, productID, "Size", 1, []string{"S", "M", "L"}); err != nil {
		return err
	}

	log.Println("Seeding done")
	return nil
}

func seedUser(ctx context.Context, db *sql.DB, email, name, role string) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	if err := exec(ctx, db, `
		INSERT INTO users (id, email, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING`,
		id, email, name, string(hash), role); err != nil {
		return uuid.Nil, err
	}

	// The insert may have been a no-op; read the id back either way.
	err = db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	return id, err
}

func seedVariationType(ctx context.Context, db *sql.DB, productID uuid.UUID, name string, position int, options []string) error {
	typeID := uuid.New()
	if err := exec(ctx, db, `
		INSERT INTO variation_types (id, product_id, name, position)
		VALUES ($1, $2, $3, $4)`,
		typeID, productID, name, position); err != nil {
		return err
	}

	for i, opt := range options {
		if err := exec(ctx, db, `
			INSERT INTO variation_type_options (id, variation_type_id, name, position)
			VALUES ($1, $2, $3, $4)`,
			uuid.New(), typeID, opt, i); err != nil {
			return err
		}
	}
	return nil
}

func exec(ctx context.Context, db *sql.DB, query string, args ...any) error {
	_, err := db.ExecContext(ctx, query, args...)
	return err
}
