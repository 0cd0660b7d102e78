package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-market-api/internal/blobstore"
	"go-market-api/internal/variant"
)

// Guest carts live in a single blob per client token, expiring a year after
// the last write. Every mutation reads the whole blob, changes the map in
// memory and writes the whole blob back. Concurrent tabs are last-write-wins:
// an anonymous identity has nothing server-side to coordinate on.
const guestBlobTTL = 365 * 24 * time.Hour

type guestStore struct {
	blobs blobstore.Store
}

func NewGuestStore(blobs blobstore.Store) Store {
	return &guestStore{blobs: blobs}
}

// guestLine is the blob-internal line record. The blob layout is private to
// this backend.
type guestLine struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	OptionIDs []string        `json:"option_ids"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func lineKey(productID uuid.UUID, key variant.Key) string {
	return productID.String() + "_" + key.String()
}

func (s *guestStore) Add(ctx context.Context, owner Owner, productID uuid.UUID, key variant.Key, quantity int32, price decimal.Decimal) error {
	lines, err := s.readBlob(ctx, owner)
	if err != nil {
		return err
	}

	k := lineKey(productID, key)
	if existing, ok := lines[k]; ok {
		existing.Quantity += quantity
		// The guest path refreshes the captured price on repeat adds; the
		// account path deliberately does not. See DESIGN.md.
		existing.Price = price
		lines[k] = existing
	} else {
		optionIDs := make([]string, 0, key.Len())
		for _, id := range key.OptionIDs() {
			optionIDs = append(optionIDs, id.String())
		}
		lines[k] = guestLine{
			ID:        uuid.NewString(),
			ProductID: productID.String(),
			OptionIDs: optionIDs,
			Quantity:  quantity,
			Price:     price,
		}
	}

	return s.writeBlob(ctx, owner, lines)
}

func (s *guestStore) UpdateQuantity(ctx context.Context, owner Owner, productID uuid.UUID, key variant.Key, quantity int32) error {
	lines, err := s.readBlob(ctx, owner)
	if err != nil {
		return err
	}

	k := lineKey(productID, key)
	existing, ok := lines[k]
	if !ok {
		return nil
	}
	existing.Quantity = quantity
	lines[k] = existing

	return s.writeBlob(ctx, owner, lines)
}

func (s *guestStore) Remove(ctx context.Context, owner Owner, productID uuid.UUID, key variant.Key) error {
	lines, err := s.readBlob(ctx, owner)
	if err != nil {
		return err
	}

	delete(lines, lineKey(productID, key))

	return s.writeBlob(ctx, owner, lines)
}

func (s *guestStore) List(ctx context.Context, owner Owner) ([]Line, error) {
	lines, err := s.readBlob(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]Line, 0, len(lines))
	for _, gl := range lines {
		productID, err := uuid.Parse(gl.ProductID)
		if err != nil {
			return nil, fmt.Errorf("malformed product id in guest cart: %w", err)
		}
		optionIDs := make([]uuid.UUID, 0, len(gl.OptionIDs))
		for _, raw := range gl.OptionIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("malformed option id in guest cart: %w", err)
			}
			optionIDs = append(optionIDs, id)
		}
		out = append(out, Line{
			ID:        gl.ID,
			ProductID: productID,
			Key:       variant.NewKey(optionIDs),
			Quantity:  gl.Quantity,
			Price:     gl.Price,
		})
	}
	return out, nil
}

func (s *guestStore) Clear(ctx context.Context, owner Owner) error {
	return s.blobs.Delete(ctx, owner.GuestToken)
}

func (s *guestStore) readBlob(ctx context.Context, owner Owner) (map[string]guestLine, error) {
	raw, err := s.blobs.Get(ctx, owner.GuestToken)
	if errors.Is(err, blobstore.ErrNotFound) {
		return map[string]guestLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := map[string]guestLine{}
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("malformed guest cart blob: %w", err)
	}
	return lines, nil
}

func (s *guestStore) writeBlob(ctx context.Context, owner Owner, lines map[string]guestLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	// Every write refreshes the expiry.
	return s.blobs.Set(ctx, owner.GuestToken, string(raw), guestBlobTTL)
}
