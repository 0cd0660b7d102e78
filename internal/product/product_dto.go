package product

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-market-api/internal/variant"
)

// Product is the catalog row as the rest of the app sees it, vendor identity
// already joined in.
type Product struct {
	ID         uuid.UUID
	Title      string
	Slug       string
	Price      decimal.Decimal
	Quantity   int32
	Image      string
	VendorID   uuid.UUID
	VendorName string
}

// OptionDetail is a variation type option joined with its parent type, as
// needed for cart enrichment and the storefront variant picker.
type OptionDetail struct {
	ID       uuid.UUID
	Name     string
	Image    string
	TypeID   uuid.UUID
	TypeName string
}

type VendorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Slug   string          `json:"slug"`
	Price  decimal.Decimal `json:"price"`
	Image  string          `json:"image"`
	Vendor VendorResponse  `json:"vendor"`
}

type OptionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type VariationTypeResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Options []OptionResponse `json:"options"`
}

type ProductDetailResponse struct {
	ProductResponse
	Quantity       int32                   `json:"quantity"`
	VariationTypes []VariationTypeResponse `json:"variationTypes"`
}

type SelectionResponse struct {
	TypeID     string `json:"typeId"`
	TypeName   string `json:"typeName"`
	OptionID   string `json:"optionId"`
	OptionName string `json:"optionName"`
}

// CombinationResponse is one row of the admin variations editor: an expanded
// combination with its effective quantity/price after merging saved overrides.
type CombinationResponse struct {
	Selections []SelectionResponse `json:"selections"`
	Quantity   int32               `json:"quantity"`
	Price      decimal.Decimal     `json:"price"`
}

type VariationRowRequest struct {
	OptionIDs []string        `json:"optionIds" validate:"required,min=1"`
	Quantity  int32           `json:"quantity" validate:"min=0"`
	Price     decimal.Decimal `json:"price"`
}

type SaveVariationsRequest struct {
	Variations []VariationRowRequest `json:"variations" validate:"required,dive"`
}

func toVariationTypeResponses(types []variant.VariationType) []VariationTypeResponse {
	res := make([]VariationTypeResponse, 0, len(types))
	for _, vt := range types {
		opts := make([]OptionResponse, 0, len(vt.Options))
		for _, opt := range vt.Options {
			opts = append(opts, OptionResponse{
				ID:    opt.ID.String(),
				Name:  opt.Name,
				Image: opt.Image,
			})
		}
		res = append(res, VariationTypeResponse{
			ID:      vt.ID.String(),
			Name:    vt.Name,
			Options: opts,
		})
	}
	return res
}

func toProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID.String(),
		Title: p.Title,
		Slug:  p.Slug,
		Price: p.Price,
		Image: p.Image,
		Vendor: VendorResponse{
			ID:   p.VendorID.String(),
			Name: p.VendorName,
		},
	}
}
