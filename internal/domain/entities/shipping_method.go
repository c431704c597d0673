package entities

import "github.com/shopspring/decimal"

// ShippingMethod is a shipping method configured for a market.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (market_id-index): market_id
type ShippingMethod struct {
	ID          string          `json:"id"`
	MarketID    string          `json:"market_id"`
	DisplayName string          `json:"display_name"`
	Description string          `json:"description,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
	IsDefault   bool            `json:"is_default"`
}
