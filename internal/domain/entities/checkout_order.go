package entities

// Klarna Checkout v3 order resource. Field names follow the gateway wire
// schema; amounts are minor units (cents), tax rates are hundredths of a
// percent (2500 = 25%).

// Address is the gateway-side address schema (2-letter country codes).
type Address struct {
	GivenName      string `json:"given_name,omitempty"`
	FamilyName     string `json:"family_name,omitempty"`
	StreetAddress  string `json:"street_address,omitempty"`
	StreetAddress2 string `json:"street_address2,omitempty"`
	PostalCode     string `json:"postal_code,omitempty"`
	City           string `json:"city,omitempty"`
	Region         string `json:"region,omitempty"`
	Country        string `json:"country,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// OrderLine is a single purchasable entry in the checkout order payload.
// Shipping and tax lines never appear here; the gateway injects its own.
type OrderLine struct {
	Type           string `json:"type,omitempty"`
	Reference      string `json:"reference"`
	Name           string `json:"name"`
	Quantity       int64  `json:"quantity"`
	UnitPrice      int64  `json:"unit_price"`
	TaxRate        int64  `json:"tax_rate"`
	TotalAmount    int64  `json:"total_amount"`
	TotalTaxAmount int64  `json:"total_tax_amount"`
}

// ShippingOption is one selectable shipping method offered to the gateway.
type ShippingOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	TaxAmount   int64  `json:"tax_amount"`
	TaxRate     int64  `json:"tax_rate"`
	PreSelected bool   `json:"preselected"`
}

// MerchantURLs are the callback endpoints the gateway redirects to or pushes
// against. The {checkout.order.id} placeholder is substituted by the gateway.
type MerchantURLs struct {
	Terms        string `json:"terms"`
	Checkout     string `json:"checkout"`
	Confirmation string `json:"confirmation"`
	Push         string `json:"push"`
}

// CheckoutOrder is the gateway-side order snapshot. OrderID is assigned by
// the gateway on creation; identity is immutable, content is replaced on
// every fetch/update.
type CheckoutOrder struct {
	OrderID          string           `json:"order_id,omitempty"`
	Status           string           `json:"status,omitempty"`
	PurchaseCountry  string           `json:"purchase_country,omitempty"`
	PurchaseCurrency string           `json:"purchase_currency,omitempty"`
	Locale           string           `json:"locale,omitempty"`
	OrderAmount      int64            `json:"order_amount"`
	OrderTaxAmount   int64            `json:"order_tax_amount"`
	OrderLines       []OrderLine      `json:"order_lines,omitempty"`
	ShippingOptions  []ShippingOption `json:"shipping_options,omitempty"`
	BillingAddress   *Address         `json:"billing_address,omitempty"`
	ShippingAddress  *Address         `json:"shipping_address,omitempty"`
	MerchantURLs     *MerchantURLs    `json:"merchant_urls,omitempty"`
	HTMLSnippet      string           `json:"html_snippet,omitempty"`
}

// CheckoutOrderPatch is the partial-update payload sent against an existing
// checkout order id.
type CheckoutOrderPatch struct {
	OrderAmount     int64            `json:"order_amount"`
	OrderTaxAmount  int64            `json:"order_tax_amount"`
	OrderLines      []OrderLine      `json:"order_lines,omitempty"`
	ShippingOptions []ShippingOption `json:"shipping_options,omitempty"`
}
