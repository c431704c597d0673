package pkg

import "github.com/shopspring/decimal"

// Currencies without a minor unit; everything else uses two decimals.
var zeroDecimalCurrencies = map[string]struct{}{
	"ISK": {},
	"JPY": {},
	"KRW": {},
}

// MinorUnits converts a decimal monetary value into the gateway's minor-unit
// integer representation for the given ISO 4217 currency, rounding half away
// from zero.
func MinorUnits(v decimal.Decimal, currency string) int64 {
	if _, ok := zeroDecimalCurrencies[currency]; ok {
		return v.Round(0).IntPart()
	}
	return v.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
