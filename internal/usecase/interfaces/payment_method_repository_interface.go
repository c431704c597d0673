package interfaces

import (
	"context"

	"klarna_checkout/internal/domain/entities"
)

// IPaymentMethodRepository resolves configured payment-method records.
// A missing record returns a zero-value method, not an error.
type IPaymentMethodRepository interface {
	GetBySystemName(ctx context.Context, systemKeyword, language string) (entities.PaymentMethod, error)
}
