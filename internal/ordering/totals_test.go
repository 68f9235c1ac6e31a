package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunch_manager/internal/models"
)

func TestLineTotals(t *testing.T) {
	// 3 × 12.50: tax 4.875 rounds half away from zero to 4.88
	totals, err := LineTotals(3, decimal.RequireFromString("12.50"))
	require.NoError(t, err)

	assert.Equal(t, "37.50", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "4.88", totals.Tax.StringFixed(2))
	assert.Equal(t, "42.38", totals.Total.StringFixed(2))
}

func TestLineTotalsExactDecimals(t *testing.T) {
	// 0.1-style values that drift under binary floats stay exact
	totals, err := LineTotals(3, decimal.RequireFromString("0.10"))
	require.NoError(t, err)

	assert.Equal(t, "0.30", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "0.04", totals.Tax.StringFixed(2))
	assert.Equal(t, "0.34", totals.Total.StringFixed(2))
}

func TestLineTotalsNegativePriceFailsLoudly(t *testing.T) {
	_, err := LineTotals(1, decimal.RequireFromString("-5.00"))
	assert.ErrorIs(t, err, ErrInvalidUnitPrice)
}

func TestLineTotalsZero(t *testing.T) {
	totals, err := LineTotals(0, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	assert.Equal(t, "0.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", totals.Total.StringFixed(2))
}

func totalsOrder(quantity int, unitPrice string) models.Order {
	return models.Order{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
}

func TestSumOrderTotalsTaxesTheAggregate(t *testing.T) {
	// three lines of 1 × 0.05: per-line tax rounds to 0.01 each (0.03
	// summed), aggregate-then-tax gives round(0.15 × 0.13) = 0.02
	orders := []models.Order{
		totalsOrder(1, "0.05"),
		totalsOrder(1, "0.05"),
		totalsOrder(1, "0.05"),
	}

	aggregate, err := SumOrderTotals(orders)
	require.NoError(t, err)
	assert.Equal(t, "0.15", aggregate.Subtotal.StringFixed(2))
	assert.Equal(t, "0.02", aggregate.Tax.StringFixed(2))
	assert.Equal(t, "0.17", aggregate.Total.StringFixed(2))

	perLineTax := decimal.Zero
	for _, order := range orders {
		line, err := OrderTotals(order)
		require.NoError(t, err)
		perLineTax = perLineTax.Add(line.Tax)
	}
	assert.Equal(t, "0.03", perLineTax.StringFixed(2), "per-line rounding compounds; the aggregate path must not")
}

func TestSumOrderTotalsNegativePrice(t *testing.T) {
	_, err := SumOrderTotals([]models.Order{totalsOrder(1, "-1.00")})
	assert.ErrorIs(t, err, ErrInvalidUnitPrice)
}

func TestSumOrderTotalsEmpty(t *testing.T) {
	totals, err := SumOrderTotals(nil)
	require.NoError(t, err)
	assert.Equal(t, "0.00", totals.Total.StringFixed(2))
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(-3))
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(1))
	assert.Equal(t, 7, ClampQuantity(7))
	assert.Equal(t, 10, ClampQuantity(10))
	assert.Equal(t, 10, ClampQuantity(99))
}
