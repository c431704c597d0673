package interfaces

import "klarna_checkout/internal/domain/entities"

// ITotalsCalculator computes cart totals. The checkout usecase never sums
// amounts itself; totals always come from the host platform's calculator.
type ITotalsCalculator interface {
	Totals(cart *entities.Cart) entities.OrderTotals
}
