package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	producterrors "go-market-api/internal/product/errors"
	"go-market-api/internal/variant"
)

// VariationsService backs the vendor-facing variations editor: Load expands
// the product's variation types into every purchasable combination and folds
// in previously saved overrides; Save writes the edited rows back as
// overrides keyed by canonical option set.
//
//go:generate mockgen -source=variations_service.go -destination=../mock/product/variations_service_mock.go -package=mock
type VariationsService interface {
	Load(ctx context.Context, productID string) ([]CombinationResponse, error)
	Save(ctx context.Context, productID string, req SaveVariationsRequest) error
}

type variationsService struct {
	db       *sql.DB
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewVariationsService(db *sql.DB, repo Repository, logger *zap.Logger) VariationsService {
	if db == nil {
		panic("db cannot be nil")
	}
	if repo == nil {
		panic("product repository cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &variationsService{
		db:       db,
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *variationsService) Load(ctx context.Context, productID string) ([]CombinationResponse, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, producterrors.ErrInvalidProductID
	}

	p, err := s.repo.GetByID(ctx, pid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, producterrors.ErrProductNotFound
		}
		return nil, err
	}

	types, err := s.repo.GetVariationTypes(ctx, pid)
	if err != nil {
		return nil, err
	}

	overrides, err := s.repo.GetOverrides(ctx, pid)
	if err != nil {
		return nil, err
	}

	merged := variant.Merge(variant.Expand(types, p.Quantity, p.Price), overrides)

	res := make([]CombinationResponse, 0, len(merged))
	for _, combo := range merged {
		selections := make([]SelectionResponse, 0, len(combo.Selections))
		for _, sel := range combo.Selections {
			selections = append(selections, SelectionResponse{
				TypeID:     sel.TypeID.String(),
				TypeName:   sel.TypeName,
				OptionID:   sel.OptionID.String(),
				OptionName: sel.OptionName,
			})
		}
		res = append(res, CombinationResponse{
			Selections: selections,
			Quantity:   combo.Quantity,
			Price:      combo.Price,
		})
	}
	return res, nil
}

func (s *variationsService) Save(ctx context.Context, productID string, req SaveVariationsRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return producterrors.ErrInvalidSelection.Wrap(err)
	}

	pid, err := uuid.Parse(productID)
	if err != nil {
		return producterrors.ErrInvalidProductID
	}

	types, err := s.repo.GetVariationTypes(ctx, pid)
	if err != nil {
		return err
	}

	// Validate every row before touching storage.
	rows := make([]UpsertOverrideParams, 0, len(req.Variations))
	for _, row := range req.Variations {
		optionIDs := make([]uuid.UUID, 0, len(row.OptionIDs))
		for _, raw := range row.OptionIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return producterrors.ErrInvalidSelection.Wrap(err)
			}
			optionIDs = append(optionIDs, id)
		}

		key, err := variant.KeyForSelection(types, optionIDs)
		if err != nil {
			return producterrors.ErrInvalidSelection.Wrap(err)
		}

		rows = append(rows, UpsertOverrideParams{
			ProductID: pid,
			Key:       key.String(),
			Quantity:  row.Quantity,
			Price:     row.Price,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return producterrors.ErrVariationsFailed.Wrap(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, arg := range rows {
		if err := qtx.UpsertOverride(ctx, arg); err != nil {
			s.logger.Error("failed to upsert variant override",
				zap.String("product_id", productID),
				zap.String("key", arg.Key),
				zap.Error(err))
			return producterrors.ErrVariationsFailed.Wrap(err)
		}
	}

	return tx.Commit()
}
