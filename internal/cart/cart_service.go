package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	carterrors "go-market-api/internal/cart/errors"
	"go-market-api/internal/product"
	"go-market-api/internal/variant"
)

// Service wires the two cart backends to the catalog. It is a long-lived
// singleton; per-request state lives on the Session it hands out.
type Service struct {
	accounts Store
	guests   Store
	products product.Service
	logger   *zap.Logger
}

type Deps struct {
	Accounts Store
	Guests   Store
	Products product.Service
	Logger   *zap.Logger
}

func NewService(deps Deps) *Service {
	if deps.Accounts == nil {
		panic("account cart store cannot be nil")
	}
	if deps.Guests == nil {
		panic("guest cart store cannot be nil")
	}
	if deps.Products == nil {
		panic("product service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Service{
		accounts: deps.Accounts,
		guests:   deps.Guests,
		products: deps.Products,
		logger:   deps.Logger,
	}
}

// Session binds a Service to one caller for the duration of one request. The
// backend is chosen here, once, from the owner identity, never re-decided
// per operation.
func (s *Service) Session(owner Owner) *Session {
	store := s.guests
	if owner.Authenticated() {
		store = s.accounts
	}
	return &Session{svc: s, owner: owner, store: store}
}

// Clear drops every line of the owner's cart.
func (s *Service) Clear(ctx context.Context, owner Owner) error {
	return s.Session(owner).store.Clear(ctx, owner)
}

// Migrate replays a guest cart into the account backend after login, merging
// by option-set identity through the same add semantics as a regular add,
// then discards the guest blob.
func (s *Service) Migrate(ctx context.Context, guestToken string, userID uuid.UUID) error {
	guestOwner := Owner{GuestToken: guestToken}
	lines, err := s.guests.List(ctx, guestOwner)
	if err != nil {
		return carterrors.ErrStorageUnavailable.Wrap(err)
	}

	accountOwner := Owner{UserID: userID}
	for _, line := range lines {
		if err := s.accounts.Add(ctx, accountOwner, line.ProductID, line.Key, line.Quantity, line.Price); err != nil {
			return carterrors.ErrStorageUnavailable.Wrap(err)
		}
	}

	return s.guests.Clear(ctx, guestOwner)
}

// Session is the per-request view of one owner's cart. It is not safe for
// concurrent use and must not outlive the request: the memoized read below
// assumes a single caller.
type Session struct {
	svc   *Service
	owner Owner
	store Store

	cached []EnrichedItem
	loaded bool
}

// AddItem resolves price for the selection (defaulting to the first option of
// each variation type when none is given) and merges the line into the cart.
func (c *Session) AddItem(ctx context.Context, productID uuid.UUID, quantity int32, optionIDs []uuid.UUID) error {
	if quantity < 1 {
		return carterrors.ErrInvalidQuantity
	}

	if optionIDs == nil {
		defaults, err := c.svc.products.DefaultSelection(ctx, productID)
		if err != nil {
			return err
		}
		optionIDs = defaults
	}

	key, price, err := c.svc.products.PriceForOptions(ctx, productID, optionIDs)
	if err != nil {
		return err
	}

	if err := c.store.Add(ctx, c.owner, productID, key, quantity, price); err != nil {
		return carterrors.ErrStorageUnavailable.Wrap(err)
	}

	c.invalidate()
	return nil
}

// UpdateItemQuantity sets the line's quantity. Zero removes the line instead
// of leaving a zero-quantity entry behind.
func (c *Session) UpdateItemQuantity(ctx context.Context, productID uuid.UUID, quantity int32, optionIDs []uuid.UUID) error {
	if quantity < 0 {
		return carterrors.ErrInvalidQuantity
	}
	if quantity == 0 {
		return c.RemoveItem(ctx, productID, optionIDs)
	}

	if err := c.store.UpdateQuantity(ctx, c.owner, productID, variant.NewKey(optionIDs), quantity); err != nil {
		return carterrors.ErrStorageUnavailable.Wrap(err)
	}

	c.invalidate()
	return nil
}

// RemoveItem deletes the matching line; removing an absent line is a no-op.
func (c *Session) RemoveItem(ctx context.Context, productID uuid.UUID, optionIDs []uuid.UUID) error {
	if err := c.store.Remove(ctx, c.owner, productID, variant.NewKey(optionIDs)); err != nil {
		return carterrors.ErrStorageUnavailable.Wrap(err)
	}

	c.invalidate()
	return nil
}

// Items returns the enriched cart, computed once per session. Read failures
// (backend down, malformed stored data, lookups failing) degrade to an empty
// cart and are logged; a storefront cart display prefers availability over
// failing the page. Mutations never swallow errors this way.
func (c *Session) Items(ctx context.Context) []EnrichedItem {
	if c.loaded {
		return c.cached
	}

	items, err := c.load(ctx)
	if err != nil {
		c.svc.logger.Error("cart read degraded to empty",
			zap.Bool("authenticated", c.owner.Authenticated()),
			zap.Error(err))
		return []EnrichedItem{}
	}

	c.cached = items
	c.loaded = true
	return c.cached
}

// TotalQuantity folds quantities over the enriched items.
func (c *Session) TotalQuantity(ctx context.Context) int32 {
	var total int32
	for _, item := range c.Items(ctx) {
		total += item.Quantity
	}
	return total
}

// TotalPrice folds quantity×price over the enriched items.
func (c *Session) TotalPrice(ctx context.Context) decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items(ctx) {
		total = total.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	return total
}

func (c *Session) invalidate() {
	c.cached = nil
	c.loaded = false
}

// load reads the raw lines and joins them with catalog data using exactly two
// batched lookups, regardless of line count. Lines whose product is gone from
// sale are skipped, not surfaced as errors.
func (c *Session) load(ctx context.Context) ([]EnrichedItem, error) {
	lines, err := c.store.List(ctx, c.owner)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []EnrichedItem{}, nil
	}

	productIDs := make([]uuid.UUID, 0, len(lines))
	seenProducts := map[uuid.UUID]struct{}{}
	var optionIDs []uuid.UUID
	seenOptions := map[uuid.UUID]struct{}{}
	for _, line := range lines {
		if _, ok := seenProducts[line.ProductID]; !ok {
			seenProducts[line.ProductID] = struct{}{}
			productIDs = append(productIDs, line.ProductID)
		}
		for _, id := range line.Key.OptionIDs() {
			if _, ok := seenOptions[id]; !ok {
				seenOptions[id] = struct{}{}
				optionIDs = append(optionIDs, id)
			}
		}
	}

	products, err := c.svc.products.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	options, err := c.svc.products.GetOptionsByIDs(ctx, optionIDs)
	if err != nil {
		return nil, err
	}

	items := make([]EnrichedItem, 0, len(lines))
	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			// Product withdrawn or deleted since it was added.
			continue
		}

		ids := line.Key.OptionIDs()
		rawIDs := make([]string, 0, len(ids))
		itemOptions := make([]ItemOption, 0, len(ids))
		image := ""
		for _, id := range ids {
			rawIDs = append(rawIDs, id.String())
			opt, ok := options[id]
			if !ok {
				continue
			}
			if image == "" && opt.Image != "" {
				image = opt.Image
			}
			itemOptions = append(itemOptions, ItemOption{
				ID:   opt.ID.String(),
				Name: opt.Name,
				Type: ItemOptionType{
					ID:   opt.TypeID.String(),
					Name: opt.TypeName,
				},
			})
		}
		if image == "" {
			image = p.Image
		}

		items = append(items, EnrichedItem{
			ID:        line.ID,
			ProductID: p.ID.String(),
			Title:     p.Title,
			Slug:      p.Slug,
			Price:     line.Price,
			Quantity:  line.Quantity,
			OptionIDs: rawIDs,
			Options:   itemOptions,
			Image:     image,
			Vendor: ItemVendor{
				ID:   p.VendorID.String(),
				Name: p.VendorName,
			},
		})
	}
	return items, nil
}
