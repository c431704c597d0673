package pkg

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		value    decimal.Decimal
		currency string
		want     int64
	}{
		{"two decimal currency", decimal.NewFromInt(100), "USD", 10000},
		{"fractional amount rounds", decimal.NewFromFloat(49.995), "EUR", 5000},
		{"zero decimal currency", decimal.NewFromInt(1500), "JPY", 1500},
		{"zero decimal currency rounds fractions", decimal.NewFromFloat(1500.4), "JPY", 1500},
		{"zero amount", decimal.Zero, "SEK", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinorUnits(tt.value, tt.currency); got != tt.want {
				t.Fatalf("MinorUnits(%s, %s) = %d, want %d", tt.value, tt.currency, got, tt.want)
			}
		})
	}
}
