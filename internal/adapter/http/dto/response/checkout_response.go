package response

import (
	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase"
)

type CheckoutOrderResponse struct {
	OrderID          string                    `json:"order_id"`
	Status           string                    `json:"status,omitempty"`
	PurchaseCountry  string                    `json:"purchase_country,omitempty"`
	PurchaseCurrency string                    `json:"purchase_currency,omitempty"`
	Locale           string                    `json:"locale,omitempty"`
	OrderAmount      int64                     `json:"order_amount"`
	OrderTaxAmount   int64                     `json:"order_tax_amount"`
	OrderLines       []entities.OrderLine      `json:"order_lines,omitempty"`
	ShippingOptions  []entities.ShippingOption `json:"shipping_options,omitempty"`
	HTMLSnippet      string                    `json:"html_snippet,omitempty"`
}

func FromCheckoutOrder(o entities.CheckoutOrder) CheckoutOrderResponse {
	return CheckoutOrderResponse{
		OrderID:          o.OrderID,
		Status:           o.Status,
		PurchaseCountry:  o.PurchaseCountry,
		PurchaseCurrency: o.PurchaseCurrency,
		Locale:           o.Locale,
		OrderAmount:      o.OrderAmount,
		OrderTaxAmount:   o.OrderTaxAmount,
		OrderLines:       o.OrderLines,
		ShippingOptions:  o.ShippingOptions,
		HTMLSnippet:      o.HTMLSnippet,
	}
}

// SyncResponse reports one synchronization round. Synced=false means the
// gateway round did not happen; Fault carries the provider diagnostics.
type SyncResponse struct {
	Synced bool                   `json:"synced"`
	Order  *CheckoutOrderResponse `json:"order,omitempty"`
	Fault  *entities.GatewayFault `json:"fault,omitempty"`
}

func FromSyncResult(r usecase.SyncResult) SyncResponse {
	resp := SyncResponse{Synced: r.Synced(), Fault: r.Fault}
	if r.Order != nil {
		order := FromCheckoutOrder(*r.Order)
		resp.Order = &order
	}
	return resp
}
