package entities

// OrderAddress is the host-side address record attached to carts and orders.
//
// CountryCode is ISO 3166-1 alpha-3. Daytime/evening phone are kept separate
// the way the commerce platform models them.
type OrderAddress struct {
	ID                 string `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Line1              string `json:"line1"`
	Line2              string `json:"line2,omitempty"`
	City               string `json:"city"`
	PostalCode         string `json:"postal_code"`
	RegionName         string `json:"region_name,omitempty"`
	RegionCode         string `json:"region_code,omitempty"`
	CountryCode        string `json:"country_code"`
	Email              string `json:"email,omitempty"`
	DaytimePhoneNumber string `json:"daytime_phone_number,omitempty"`
	EveningPhoneNumber string `json:"evening_phone_number,omitempty"`
}
