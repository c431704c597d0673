package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase/interfaces"
)

var ErrOrderNotFound = errors.New("order not found")

// ConfirmationQuery selects the order to confirm. Exactly one key applies;
// priority is Preview > OrderNumber > TrackingNumber.
type ConfirmationQuery struct {
	Preview        bool
	OrderNumber    int
	TrackingNumber string
}

// ConfirmationView is the confirmation page view model. When the order was
// paid through Klarna checkout, HTMLSnippet carries the provider-rendered
// confirmation fragment.
type ConfirmationView struct {
	Order            entities.PurchaseOrder
	HTMLSnippet      string
	IsKlarnaCheckout bool
}

// IConfirmationUseCase resolves a purchase order and builds the
// confirmation view.
type IConfirmationUseCase interface {
	GetConfirmation(ctx context.Context, query ConfirmationQuery) (ConfirmationView, error)
}

// ICheckoutOrderGetter is the slice of the checkout usecase the confirmation
// flow needs.
type ICheckoutOrderGetter interface {
	GetOrder(ctx context.Context, orderID string) (entities.CheckoutOrder, error)
}

type ConfirmationUseCase struct {
	orders         interfaces.IPurchaseOrderRepository
	paymentMethods interfaces.IPaymentMethodRepository
	checkout       ICheckoutOrderGetter
	locale         string
}

var _ IConfirmationUseCase = (*ConfirmationUseCase)(nil)

func NewConfirmationUseCase(
	orders interfaces.IPurchaseOrderRepository,
	paymentMethods interfaces.IPaymentMethodRepository,
	checkout ICheckoutOrderGetter,
	locale string,
) *ConfirmationUseCase {
	return &ConfirmationUseCase{
		orders:         orders,
		paymentMethods: paymentMethods,
		checkout:       checkout,
		locale:         locale,
	}
}

func (u *ConfirmationUseCase) GetConfirmation(ctx context.Context, query ConfirmationQuery) (ConfirmationView, error) {
	var order entities.PurchaseOrder
	var err error

	switch {
	case query.Preview:
		order = fakePurchaseOrder()
	case query.OrderNumber > 0:
		order, err = u.orders.GetByOrderNumber(ctx, query.OrderNumber)
	case query.TrackingNumber != "":
		order, err = u.orders.GetByTrackingNumber(ctx, query.TrackingNumber)
	default:
		return ConfirmationView{}, ErrOrderNotFound
	}
	if err != nil {
		return ConfirmationView{}, err
	}
	if order.OrderNumber == 0 {
		return ConfirmationView{}, ErrOrderNotFound
	}

	view := ConfirmationView{Order: order}

	paymentMethod, err := u.paymentMethods.GetBySystemName(ctx, entities.CheckoutSystemKeyword, u.locale)
	if err != nil {
		log.Printf("[confirmation][usecase] payment method lookup failed order_number=%d err=%v", order.OrderNumber, err)
		return view, nil
	}

	firstPayment := order.FirstPayment()
	if paymentMethod.ID == "" || firstPayment == nil ||
		firstPayment.PaymentMethodID != paymentMethod.ID || order.CheckoutOrderID() == "" {
		return view, nil
	}

	klarnaOrder, err := u.checkout.GetOrder(ctx, order.CheckoutOrderID())
	if err != nil {
		// The page still renders without the provider fragment.
		log.Printf("[confirmation][usecase] checkout order fetch failed order_number=%d order_id=%s err=%v",
			order.OrderNumber, order.CheckoutOrderID(), err)
		return view, nil
	}

	view.HTMLSnippet = klarnaOrder.HTMLSnippet
	view.IsKlarnaCheckout = true
	return view, nil
}

// fakePurchaseOrder fabricates a synthetic order for editor preview; preview
// never queries the order index.
func fakePurchaseOrder() entities.PurchaseOrder {
	return entities.PurchaseOrder{
		OrderNumber:    1,
		TrackingNumber: "PO" + uuid.NewString()[:8],
		Currency:       "USD",
		Market:         entities.Market{ID: "US", Countries: []string{"USA"}},
		Created:        time.Now().UTC(),
		Lines: []entities.LineItem{
			{
				Code:        "SKU-SAMPLE",
				DisplayName: "Sample product",
				Quantity:    1,
				PlacedPrice: decimal.NewFromInt(100),
				TaxRate:     decimal.NewFromInt(25),
			},
		},
	}
}
