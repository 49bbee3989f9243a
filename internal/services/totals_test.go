package services

import (
	"errors"
	"testing"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals_SingleLine(t *testing.T) {
	totals, err := ComputeTotals([]models.LineItem{
		{Description: "Panneau publicitaire", Quantity: 2, UnitPrice: 1000},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2000), totals.Subtotal)
	assert.Equal(t, int64(2000), totals.Total, "without tax, total equals subtotal")
}

func TestComputeTotals_PercentDiscount(t *testing.T) {
	totals, err := ComputeTotals([]models.LineItem{
		{Description: "Encart magazine", Quantity: 3, UnitPrice: 1000, Discount: 10},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2700), totals.Subtotal, "3 x 1000 at -10% should be 2700")
}

func TestComputeTotals_MixedLines(t *testing.T) {
	totals, err := ComputeTotals([]models.LineItem{
		{Description: "Prestation photo", Quantity: 1, UnitPrice: 500, Discount: 50},
		{Description: "Tirages", Quantity: 2, UnitPrice: 250},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(750), totals.Subtotal)
}

func TestComputeTotals_RoundsHalfToEven(t *testing.T) {
	// 1 x 25 at -10% = 22.5, banker's rounding lands on the even 22.
	totals, err := ComputeTotals([]models.LineItem{
		{Description: "Flyer", Quantity: 1, UnitPrice: 25, Discount: 10},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(22), totals.Subtotal)

	// 1 x 35 at -10% = 31.5 rounds to 32, not 31.
	totals, err = ComputeTotals([]models.LineItem{
		{Description: "Affiche", Quantity: 1, UnitPrice: 35, Discount: 10},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(32), totals.Subtotal)
}

func TestComputeTotals_RoundsPerLineNotOnSum(t *testing.T) {
	// Each line is 22.5 rounded to 22; summing before rounding would give 45.
	totals, err := ComputeTotals([]models.LineItem{
		{Description: "Ligne A", Quantity: 1, UnitPrice: 25, Discount: 10},
		{Description: "Ligne B", Quantity: 1, UnitPrice: 25, Discount: 10},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(44), totals.Subtotal)
}

func TestComputeTotals_FractionalQuantity(t *testing.T) {
	totals, err := ComputeTotals([]models.LineItem{
		{Description: "Conseil en communication", Quantity: 2.5, UnitPrice: 10000, Unit: "heure"},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(25000), totals.Subtotal, "2.5 hours at 10000 should be 25000")

	// 1.5 x 25 at -10% = 33.75, rounded to 34.
	totals, err = ComputeTotals([]models.LineItem{
		{Description: "Impression au mètre", Quantity: 1.5, UnitPrice: 25, Discount: 10},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(34), totals.Subtotal)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	totals, err := ComputeTotals(nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Total)
}

func TestComputeTotals_FullDiscount(t *testing.T) {
	totals, err := ComputeTotals([]models.LineItem{
		{Description: "Offert", Quantity: 4, UnitPrice: 9000, Discount: 100},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), totals.Subtotal)
}

func TestComputeTotals_InvalidQuantity(t *testing.T) {
	_, err := ComputeTotals([]models.LineItem{
		{Description: "OK", Quantity: 1, UnitPrice: 100},
		{Description: "KO", Quantity: 0, UnitPrice: 100},
	})

	var invalid *models.InvalidLineItemError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, 1, invalid.Index)
	assert.Equal(t, "quantity", invalid.Field)
}

func TestComputeTotals_NegativePrice(t *testing.T) {
	_, err := ComputeTotals([]models.LineItem{
		{Description: "KO", Quantity: 1, UnitPrice: -5},
	})

	var invalid *models.InvalidLineItemError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, "unit_price", invalid.Field)
}

func TestComputeTotals_DiscountOutOfRange(t *testing.T) {
	for _, discount := range []float64{-1, 100.5} {
		_, err := ComputeTotals([]models.LineItem{
			{Description: "KO", Quantity: 1, UnitPrice: 100, Discount: discount},
		})

		var invalid *models.InvalidLineItemError
		assert.True(t, errors.As(err, &invalid))
		assert.Equal(t, "discount", invalid.Field)
	}
}
