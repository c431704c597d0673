package interfaces

import (
	"context"

	"klarna_checkout/internal/domain/entities"
)

// IPurchaseOrderRepository abstracts DynamoDB persistence for PurchaseOrder.
// Misses return a zero-value order, not an error.
type IPurchaseOrderRepository interface {
	GetByOrderNumber(ctx context.Context, orderNumber int) (entities.PurchaseOrder, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (entities.PurchaseOrder, error)
}
