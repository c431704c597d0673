package entities

import (
	"encoding/json"
	"fmt"
)

// CheckoutSystemKeyword is the fixed system name under which the Klarna
// checkout payment method is registered.
const CheckoutSystemKeyword = "KlarnaCheckout"

// checkoutConfigurationKeySuffix is the parameter key suffix; the full key is
// prefixed with the market id (e.g. "US_KlarnaCheckoutConfiguration").
const checkoutConfigurationKeySuffix = "KlarnaCheckoutConfiguration"

// CheckoutConfiguration holds the per-market gateway connection settings
// stored as a JSON blob on the payment-method record.
type CheckoutConfiguration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	APIURL   string `json:"api_url"`
}

// IsEmpty reports whether the configuration carries no usable connection.
func (c CheckoutConfiguration) IsEmpty() bool {
	return c.Username == "" && c.Password == "" && c.APIURL == ""
}

// PaymentMethod is a configured payment method record.
//
// Storage model (DynamoDB):
//   - PK: system_keyword#language
//
// Parameters is a flat key/value bag; market-scoped configuration blobs live
// under "<marketID>_KlarnaCheckoutConfiguration".
type PaymentMethod struct {
	ID            string            `json:"id"`
	SystemKeyword string            `json:"system_keyword"`
	Language      string            `json:"language"`
	Parameters    map[string]string `json:"parameters,omitempty"`
}

// CheckoutConfigurationForMarket resolves the connection configuration for a
// market. A missing or malformed blob yields the zero configuration, never an
// error.
func (p PaymentMethod) CheckoutConfigurationForMarket(marketID string) CheckoutConfiguration {
	raw, ok := p.Parameters[fmt.Sprintf("%s_%s", marketID, checkoutConfigurationKeySuffix)]
	if !ok {
		return CheckoutConfiguration{}
	}

	var cfg CheckoutConfiguration
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return CheckoutConfiguration{}
	}
	return cfg
}
