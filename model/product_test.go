package model_test

import (
	"testing"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_BulkPrices(t *testing.T) {
	p := model.Product{
		PricePerUnit: 3.50,
		Unit:         "kg",
		BulkDiscountTiers: []model.BulkDiscountTier{
			{MinQty: 10, Discount: 0.05, Label: "10+ kg: 5% off"},
			{MinQty: 25, Discount: 0.10, Label: "25+ kg: 10% off"},
			{MinQty: 50, Discount: 0.15},
		},
	}

	got := p.BulkPrices()

	want := []model.BulkPrice{
		{MinQty: 10, Unit: "kg", Price: "3.33", Label: "10+ kg: 5% off"},
		{MinQty: 25, Unit: "kg", Price: "3.15", Label: "25+ kg: 10% off"},
		{MinQty: 50, Unit: "kg", Price: "2.98"},
	}
	assert.Equal(t, want, got)
}

func TestProduct_BulkPricesNoTiers(t *testing.T) {
	assert.Nil(t, model.Product{PricePerUnit: 2}.BulkPrices())
}

func TestNewProductCard(t *testing.T) {
	card := model.NewProductCard(model.Product{ID: "p1", PricePerUnit: 2, Unit: "kg"})
	assert.Equal(t, "2.00", card.Price)
	assert.Equal(t, "p1", card.ID)
	assert.Nil(t, card.BulkPrices)
}

func TestProductForm_Request(t *testing.T) {
	tests := []struct {
		name    string
		form    model.ProductForm
		wantErr error
		check   func(t *testing.T, req *model.CreateProductRequest)
	}{
		{
			name: "coerces price and quantity",
			form: func() model.ProductForm {
				f := model.DefaultProductForm()
				f.Name = "Tomatoes"
				f.PricePerUnit = " 3.75 "
				f.QuantityAvailable = "120"
				return f
			}(),
			check: func(t *testing.T, req *model.CreateProductRequest) {
				assert.Equal(t, 3.75, req.PricePerUnit)
				assert.Equal(t, 120, req.QuantityAvailable)
				assert.Equal(t, "Vegetables", req.Category)
				assert.Equal(t, "kg", req.Unit)
				assert.Len(t, req.BulkDiscountTiers, 2)
			},
		},
		{
			name: "nil tiers become an empty list",
			form: model.ProductForm{Name: "x", PricePerUnit: "1", QuantityAvailable: "1"},
			check: func(t *testing.T, req *model.CreateProductRequest) {
				assert.NotNil(t, req.BulkDiscountTiers)
				assert.Empty(t, req.BulkDiscountTiers)
			},
		},
		{
			name:    "price not a number",
			form:    model.ProductForm{PricePerUnit: "abc", QuantityAvailable: "1"},
			wantErr: model.ErrInvalidPrice,
		},
		{
			name:    "negative price",
			form:    model.ProductForm{PricePerUnit: "-1", QuantityAvailable: "1"},
			wantErr: model.ErrInvalidPrice,
		},
		{
			name:    "fractional quantity",
			form:    model.ProductForm{PricePerUnit: "1", QuantityAvailable: "2.5"},
			wantErr: model.ErrInvalidQuantity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.form.Request()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			tt.check(t, req)
		})
	}
}

func TestDefaultProductForm(t *testing.T) {
	f := model.DefaultProductForm()
	assert.Equal(t, "Vegetables", f.Category)
	assert.Equal(t, "kg", f.Unit)
	assert.Empty(t, f.Name)
	assert.Empty(t, f.PricePerUnit)
	assert.Equal(t, []model.BulkDiscountTier{
		{MinQty: 10, Discount: 0.05, Label: "10+ kg: 5% off"},
		{MinQty: 25, Discount: 0.10, Label: "25+ kg: 10% off"},
	}, f.BulkDiscountTiers)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "5.50", model.FormatAmount(5.5))
	assert.Equal(t, "0.00", model.FormatAmount(0))
	assert.Equal(t, "0.30", model.FormatAmount(0.1+0.2))
}
