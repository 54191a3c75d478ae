package model

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// BulkDiscountTier is one step of a product's volume pricing. Discount is a
// fraction, 0.05 meaning five percent.
type BulkDiscountTier struct {
	MinQty   int     `json:"min_qty"`
	Discount float64 `json:"discount"`
	Label    string  `json:"label,omitempty"`
}

type Product struct {
	ID                string             `json:"id"`
	SupplierID        string             `json:"supplier_id"`
	Name              string             `json:"name"`
	Category          string             `json:"category"`
	PricePerUnit      float64            `json:"price_per_unit"`
	Unit              string             `json:"unit"`
	QuantityAvailable int                `json:"quantity_available"`
	BulkDiscountTiers []BulkDiscountTier `json:"bulk_discount_tiers"`
	ImageURL          string             `json:"image_url"`
	Description       string             `json:"description"`
	CreatedAt         Timestamp          `json:"created_at"`
	UpdatedAt         Timestamp          `json:"updated_at"`
}

// BulkPrice is a display row of the bulk pricing panel.
type BulkPrice struct {
	MinQty int    `json:"min_qty"`
	Unit   string `json:"unit"`
	Price  string `json:"price"`
	Label  string `json:"label,omitempty"`
}

// BulkPrices returns the discounted unit price of every tier, in the order
// the backend sent them.
func (p Product) BulkPrices() []BulkPrice {
	if len(p.BulkDiscountTiers) == 0 {
		return nil
	}
	unit := decimal.NewFromFloat(p.PricePerUnit)
	out := make([]BulkPrice, 0, len(p.BulkDiscountTiers))
	for _, tier := range p.BulkDiscountTiers {
		factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(tier.Discount))
		out = append(out, BulkPrice{
			MinQty: tier.MinQty,
			Unit:   p.Unit,
			Price:  unit.Mul(factor).StringFixed(2),
			Label:  tier.Label,
		})
	}
	return out
}

// ProductCard is the catalog rendering of a product.
type ProductCard struct {
	Product
	Price      string      `json:"price"`
	BulkPrices []BulkPrice `json:"bulk_prices"`
}

func NewProductCard(p Product) ProductCard {
	return ProductCard{
		Product:    p,
		Price:      FormatAmount(p.PricePerUnit),
		BulkPrices: p.BulkPrices(),
	}
}

// FormatAmount renders a money amount with two decimals.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// ProductFilter narrows a stall's product listing. Empty fields apply no
// constraint.
type ProductFilter struct {
	Category    string `json:"category"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	MinQuantity string `json:"min_quantity"`
}

// Query encodes the non-empty filter fields.
func (f ProductFilter) Query() url.Values {
	q := url.Values{}
	setIfPresent(q, "category", f.Category)
	setIfPresent(q, "min_price", f.MinPrice)
	setIfPresent(q, "max_price", f.MaxPrice)
	setIfPresent(q, "min_quantity", f.MinQuantity)
	return q
}

// ProductForm holds the add-product inputs as typed by the supplier; price
// and quantity stay text until submission.
type ProductForm struct {
	Name              string             `json:"name" validate:"required"`
	Category          string             `json:"category" validate:"required,oneof=Vegetables Fruits Spices Herbs"`
	PricePerUnit      string             `json:"price_per_unit" validate:"required"`
	Unit              string             `json:"unit" validate:"required"`
	QuantityAvailable string             `json:"quantity_available" validate:"required"`
	Description       string             `json:"description"`
	ImageURL          string             `json:"image_url"`
	BulkDiscountTiers []BulkDiscountTier `json:"bulk_discount_tiers"`
}

// DefaultProductForm is the blank form, pre-filled with two example tiers.
func DefaultProductForm() ProductForm {
	return ProductForm{
		Category: constant.Categories[0],
		Unit:     constant.DefaultProductUnit,
		ImageURL: constant.DefaultProductImage,
		BulkDiscountTiers: []BulkDiscountTier{
			{MinQty: 10, Discount: 0.05, Label: "10+ kg: 5% off"},
			{MinQty: 25, Discount: 0.10, Label: "25+ kg: 10% off"},
		},
	}
}

// CreateProductRequest is the typed body of POST /products.
type CreateProductRequest struct {
	Name              string             `json:"name"`
	Category          string             `json:"category"`
	PricePerUnit      float64            `json:"price_per_unit"`
	Unit              string             `json:"unit"`
	QuantityAvailable int                `json:"quantity_available"`
	BulkDiscountTiers []BulkDiscountTier `json:"bulk_discount_tiers"`
	ImageURL          string             `json:"image_url"`
	Description       string             `json:"description"`
}

// Request coerces the price to a decimal number and the quantity to an
// integer.
func (f ProductForm) Request() (*CreateProductRequest, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(f.PricePerUnit))
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	qty, err := strconv.Atoi(strings.TrimSpace(f.QuantityAvailable))
	if err != nil || qty < 0 {
		return nil, ErrInvalidQuantity
	}
	tiers := f.BulkDiscountTiers
	if tiers == nil {
		tiers = []BulkDiscountTier{}
	}
	return &CreateProductRequest{
		Name:              f.Name,
		Category:          f.Category,
		PricePerUnit:      price.InexactFloat64(),
		Unit:              f.Unit,
		QuantityAvailable: qty,
		BulkDiscountTiers: tiers,
		ImageURL:          f.ImageURL,
		Description:       f.Description,
	}, nil
}
