package entities

// GatewayFault captures a gateway-reported failure (API error or transport
// failure) so callers can branch on the outcome without parsing logs.
type GatewayFault struct {
	ErrorCode     string   `json:"error_code,omitempty"`
	Messages      []string `json:"messages,omitempty"`
	CorrelationID string   `json:"correlation_id,omitempty"`
}
