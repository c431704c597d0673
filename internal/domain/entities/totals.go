package entities

import "github.com/shopspring/decimal"

// OrderTotals is the host platform's computed cart totals (tax-inclusive
// grand total plus the tax portion).
type OrderTotals struct {
	Total    decimal.Decimal `json:"total"`
	TaxTotal decimal.Decimal `json:"tax_total"`
}
