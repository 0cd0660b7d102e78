package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	producterrors "go-market-api/internal/product/errors"
	"go-market-api/internal/variant"
)

//go:generate mockgen -source=product_service.go -destination=../mock/product/product_service_mock.go -package=mock
type Service interface {
	// Storefront reads
	List(ctx context.Context, page, limit int32) ([]ProductResponse, error)
	GetBySlug(ctx context.Context, slug string) (ProductDetailResponse, error)

	// Batched lookups for cart enrichment. Maps are keyed by id; absent ids
	// are simply missing from the result, never an error.
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Product, error)
	GetOptionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]OptionDetail, error)

	// Variant pricing
	PriceForOptions(ctx context.Context, productID uuid.UUID, optionIDs []uuid.UUID) (variant.Key, decimal.Decimal, error)
	DefaultSelection(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if repo == nil {
		panic("product repository cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context, page, limit int32) ([]ProductResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 24
	}

	products, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (ProductDetailResponse, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductDetailResponse{}, producterrors.ErrProductNotFound
		}
		return ProductDetailResponse{}, err
	}

	types, err := s.repo.GetVariationTypes(ctx, p.ID)
	if err != nil {
		return ProductDetailResponse{}, err
	}

	return ProductDetailResponse{
		ProductResponse: toProductResponse(p),
		Quantity:        p.Quantity,
		VariationTypes:  toVariationTypeResponses(types),
	}, nil
}

func (s *service) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Product, error) {
	products, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func (s *service) GetOptionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]OptionDetail, error) {
	options, err := s.repo.GetOptionsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]OptionDetail, len(options))
	for _, opt := range options {
		byID[opt.ID] = opt
	}
	return byID, nil
}

// PriceForOptions resolves the effective unit price for a selection: the
// override price when the exact combination was customized, the product's
// base price otherwise. The validated canonical key is returned alongside so
// callers store exactly what was priced.
func (s *service) PriceForOptions(ctx context.Context, productID uuid.UUID, optionIDs []uuid.UUID) (variant.Key, decimal.Decimal, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return variant.Key{}, decimal.Zero, producterrors.ErrProductNotFound
		}
		return variant.Key{}, decimal.Zero, err
	}

	types, err := s.repo.GetVariationTypes(ctx, productID)
	if err != nil {
		return variant.Key{}, decimal.Zero, err
	}

	key, err := variant.KeyForSelection(types, optionIDs)
	if err != nil {
		return variant.Key{}, decimal.Zero, producterrors.ErrInvalidSelection.Wrap(err)
	}

	ov, err := s.repo.GetOverrideByKey(ctx, productID, key.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return key, p.Price, nil
		}
		return variant.Key{}, decimal.Zero, err
	}
	return key, ov.Price, nil
}

// DefaultSelection picks the first option of each variation type, in
// definition order. This is the stable default used by quick add-to-cart.
func (s *service) DefaultSelection(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error) {
	types, err := s.repo.GetVariationTypes(ctx, productID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(types))
	for _, vt := range types {
		if len(vt.Options) == 0 {
			continue
		}
		ids = append(ids, vt.Options[0].ID)
	}
	return ids, nil
}
