package interfaces

import (
	"context"
	"errors"

	"klarna_checkout/internal/domain/entities"
)

// ErrCheckoutNotConfigured is returned by ICheckoutClientSource when no
// usable Klarna checkout payment method exists for the current locale.
var ErrCheckoutNotConfigured = errors.New("klarna checkout not configured")

// IGatewayError is implemented by gateway errors that carry the provider's
// structured error payload.
type IGatewayError interface {
	error
	GatewayFault() entities.GatewayFault
}

// ICheckoutClient abstracts the gateway's checkout-order REST resource
// (create / fetch / partial update).
type ICheckoutClient interface {
	CreateOrder(ctx context.Context, order entities.CheckoutOrder) (entities.CheckoutOrder, error)
	FetchOrder(ctx context.Context, orderID string) (entities.CheckoutOrder, error)
	UpdateOrder(ctx context.Context, orderID string, patch entities.CheckoutOrderPatch) (entities.CheckoutOrder, error)
}

// ICheckoutClientSource resolves (and reuses) the authenticated gateway
// client for the current locale's payment method. Callers must handle
// ErrCheckoutNotConfigured.
type ICheckoutClientSource interface {
	Client(ctx context.Context) (ICheckoutClient, error)
}
