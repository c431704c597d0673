package mapping

import (
	"github.com/shopspring/decimal"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/pkg"
)

// BuildOrderLines converts the cart's line items into gateway order lines,
// one per item, preserving cart order.
//
// Only physical order lines are emitted; the gateway computes and injects
// its own shipping and tax lines downstream.
func BuildOrderLines(cart *entities.Cart) []entities.OrderLine {
	lines := make([]entities.OrderLine, 0, len(cart.Lines))
	for _, item := range cart.Lines {
		lines = append(lines, ToOrderLine(item, cart.Currency))
	}
	return lines
}

// ToOrderLine converts a single cart line item. Amounts are minor units;
// prices are tax-inclusive, so the line tax is backed out of the total using
// the gateway's tax-rate convention (hundredths of a percent).
func ToOrderLine(item entities.LineItem, currency string) entities.OrderLine {
	unitPrice := pkg.MinorUnits(item.PlacedPrice, currency)
	totalAmount := unitPrice * item.Quantity
	taxRate := item.TaxRate.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	totalTax := totalAmount - totalAmount*10000/(10000+taxRate)

	return entities.OrderLine{
		Type:           "physical",
		Reference:      item.Code,
		Name:           item.DisplayName,
		Quantity:       item.Quantity,
		UnitPrice:      unitPrice,
		TaxRate:        taxRate,
		TotalAmount:    totalAmount,
		TotalTaxAmount: totalTax,
	}
}
