package ordering

import (
	"errors"

	"github.com/shopspring/decimal"

	"lunch_manager/internal/models"
)

// HST applied to every order.
var taxRate = decimal.RequireFromString("0.13")

var ErrInvalidUnitPrice = errors.New("unit price must be a non-negative amount")

const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Totals is the money breakdown for one order line or an aggregate of lines.
// All values are rounded to two decimals, half away from zero.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// LineTotals computes subtotal, tax, and total for a single order line.
// A negative unit price fails loudly rather than producing a silent zero.
func LineTotals(quantity int, unitPrice decimal.Decimal) (Totals, error) {
	if unitPrice.IsNegative() {
		return Totals{}, ErrInvalidUnitPrice
	}
	subtotal := decimal.NewFromInt(int64(quantity)).Mul(unitPrice).Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}

// OrderTotals computes the breakdown for one stored order.
func OrderTotals(order models.Order) (Totals, error) {
	return LineTotals(order.Quantity, order.UnitPrice)
}

// SumOrderTotals aggregates many orders the numerically correct way: sum the
// subtotals first, then tax the sum once, so per-line rounding never
// compounds across a large day.
func SumOrderTotals(orders []models.Order) (Totals, error) {
	subtotal := decimal.Zero
	for _, order := range orders {
		if order.UnitPrice.IsNegative() {
			return Totals{}, ErrInvalidUnitPrice
		}
		subtotal = subtotal.Add(decimal.NewFromInt(int64(order.Quantity)).Mul(order.UnitPrice))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}

// ClampQuantity forces a requested quantity into the allowed [1,10] range.
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
