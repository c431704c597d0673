package response

import "klarna_checkout/internal/domain/entities"

type CartLineResponse struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
	Quantity    int64  `json:"quantity"`
	PlacedPrice string `json:"placed_price"`
	TaxRate     string `json:"tax_rate"`
}

type CartResponse struct {
	ID              string             `json:"id"`
	CustomerID      string             `json:"customer_id,omitempty"`
	MarketID        string             `json:"market_id"`
	Currency        string             `json:"currency"`
	Lines           []CartLineResponse `json:"lines"`
	CheckoutOrderID string             `json:"checkout_order_id,omitempty"`
}

func FromCart(c entities.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLineResponse{
			Code:        l.Code,
			DisplayName: l.DisplayName,
			Quantity:    l.Quantity,
			PlacedPrice: l.PlacedPrice.String(),
			TaxRate:     l.TaxRate.String(),
		})
	}
	return CartResponse{
		ID:              c.ID,
		CustomerID:      c.CustomerID,
		MarketID:        c.Market.ID,
		Currency:        c.Currency,
		Lines:           lines,
		CheckoutOrderID: c.CheckoutOrderID(),
	}
}
