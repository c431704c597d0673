package interfaces

import (
	"context"

	"klarna_checkout/internal/domain/entities"
)

// ICartRepository abstracts DynamoDB persistence for Cart.
//
// GetByCheckoutOrderID is the reverse lookup used after gateway callbacks:
// it resolves the single cart whose stored gateway order id matches. A miss
// returns a zero-value cart, not an error.
type ICartRepository interface {
	GetByID(ctx context.Context, id string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) (entities.Cart, error)
	GetByCheckoutOrderID(ctx context.Context, orderID string) (entities.Cart, error)
}
