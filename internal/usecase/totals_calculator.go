package usecase

import (
	"github.com/shopspring/decimal"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase/interfaces"
)

// DefaultTotalsCalculator computes cart totals from tax-inclusive line
// prices.
type DefaultTotalsCalculator struct{}

var _ interfaces.ITotalsCalculator = DefaultTotalsCalculator{}

func (DefaultTotalsCalculator) Totals(cart *entities.Cart) entities.OrderTotals {
	total := decimal.Zero
	taxTotal := decimal.Zero

	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)

	for _, item := range cart.Lines {
		lineTotal := item.PlacedPrice.Mul(decimal.NewFromInt(item.Quantity))
		total = total.Add(lineTotal)

		divisor := one.Add(item.TaxRate.Div(hundred))
		taxTotal = taxTotal.Add(lineTotal.Sub(lineTotal.Div(divisor)))
	}

	return entities.OrderTotals{Total: total, TaxTotal: taxTotal.Round(2)}
}
