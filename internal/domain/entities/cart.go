package entities

import "github.com/shopspring/decimal"

// CheckoutOrderIDField is the cart property that links the host cart with the
// Klarna checkout order. Its presence drives create-vs-update branching.
const CheckoutOrderIDField = "klarna_checkout_order_id"

// Market describes the sales market a cart belongs to.
//
// Countries are ISO 3166-1 alpha-3 codes; the first configured country is
// used as the purchase country when creating a checkout order.
type Market struct {
	ID        string   `json:"id"`
	Countries []string `json:"countries"`
}

// FirstCountry returns the market's primary country code (3-letter) or "".
func (m Market) FirstCountry() string {
	if len(m.Countries) == 0 {
		return ""
	}
	return m.Countries[0]
}

// LineItem is a purchasable entry in a cart.
//
// Monetary representation:
//   - PlacedPrice is the tax-inclusive unit price.
//   - TaxRate is a percentage (e.g. 25 for 25% VAT).
type LineItem struct {
	Code        string          `json:"code"`
	DisplayName string          `json:"display_name"`
	Quantity    int64           `json:"quantity"`
	PlacedPrice decimal.Decimal `json:"placed_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// Cart is the in-progress order aggregate owned by this service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (klarna_order_id-index): klarna_order_id (mirrors the
//     CheckoutOrderIDField property for reverse lookup)
//
// Properties is an extensible bag; at most one checkout order id is stored
// per cart at a time (under CheckoutOrderIDField).
type Cart struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	Market     Market            `json:"market"`
	Currency   string            `json:"currency"`
	Lines      []LineItem        `json:"lines"`
	Properties map[string]string `json:"properties,omitempty"`
}

// CheckoutOrderID returns the stored external order id, or "".
func (c *Cart) CheckoutOrderID() string {
	return c.Properties[CheckoutOrderIDField]
}

// SetCheckoutOrderID stores the external order id on the property bag.
func (c *Cart) SetCheckoutOrderID(orderID string) {
	if c.Properties == nil {
		c.Properties = map[string]string{}
	}
	c.Properties[CheckoutOrderIDField] = orderID
}
