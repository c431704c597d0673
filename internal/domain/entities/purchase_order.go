package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one captured payment on a purchase order.
type Payment struct {
	PaymentMethodID string          `json:"payment_method_id"`
	Amount          decimal.Decimal `json:"amount"`
}

// PurchaseOrder is a completed (paid) order.
//
// Storage model (DynamoDB):
//   - PK: order_number
//   - GSI1 (tracking_number-index): tracking_number
//
// The checkout order id, when the order was paid through Klarna, is carried
// over from the cart's property bag under CheckoutOrderIDField.
type PurchaseOrder struct {
	OrderNumber    int               `json:"order_number"`
	TrackingNumber string            `json:"tracking_number"`
	CustomerID     string            `json:"customer_id"`
	Market         Market            `json:"market"`
	Currency       string            `json:"currency"`
	Created        time.Time         `json:"created"`
	Lines          []LineItem        `json:"lines"`
	Payments       []Payment         `json:"payments,omitempty"`
	Properties     map[string]string `json:"properties,omitempty"`
}

// CheckoutOrderID returns the stored external order id, or "".
func (o *PurchaseOrder) CheckoutOrderID() string {
	return o.Properties[CheckoutOrderIDField]
}

// FirstPayment returns the first payment on the order, or nil.
func (o *PurchaseOrder) FirstPayment() *Payment {
	if len(o.Payments) == 0 {
		return nil
	}
	return &o.Payments[0]
}
