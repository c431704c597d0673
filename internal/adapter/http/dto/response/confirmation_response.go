package response

import (
	"time"

	"klarna_checkout/internal/usecase"
)

type ConfirmationResponse struct {
	OrderNumber      int       `json:"order_number"`
	TrackingNumber   string    `json:"tracking_number,omitempty"`
	Currency         string    `json:"currency"`
	Created          time.Time `json:"created"`
	IsKlarnaCheckout bool      `json:"is_klarna_checkout"`
	HTMLSnippet      string    `json:"html_snippet,omitempty"`
}

func FromConfirmationView(v usecase.ConfirmationView) ConfirmationResponse {
	return ConfirmationResponse{
		OrderNumber:      v.Order.OrderNumber,
		TrackingNumber:   v.Order.TrackingNumber,
		Currency:         v.Order.Currency,
		Created:          v.Order.Created,
		IsKlarnaCheckout: v.IsKlarnaCheckout,
		HTMLSnippet:      v.HTMLSnippet,
	}
}
