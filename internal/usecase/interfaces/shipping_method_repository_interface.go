package interfaces

import (
	"context"

	"klarna_checkout/internal/domain/entities"
)

// IShippingMethodRepository lists the shipping methods configured for a
// market.
type IShippingMethodRepository interface {
	ListByMarket(ctx context.Context, marketID string) ([]entities.ShippingMethod, error)
}
