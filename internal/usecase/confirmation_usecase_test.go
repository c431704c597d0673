package usecase

import (
	"context"
	"errors"
	"testing"

	"klarna_checkout/internal/domain/entities"
	mock_interfaces "klarna_checkout/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type stubOrderGetter struct {
	order entities.CheckoutOrder
	err   error
	calls int
}

func (s *stubOrderGetter) GetOrder(_ context.Context, _ string) (entities.CheckoutOrder, error) {
	s.calls++
	return s.order, s.err
}

func confirmedOrder() entities.PurchaseOrder {
	return entities.PurchaseOrder{
		OrderNumber:    42,
		TrackingNumber: "PO42",
		Currency:       "USD",
		Market:         entities.Market{ID: "US", Countries: []string{"USA"}},
		Payments: []entities.Payment{
			{PaymentMethodID: "pm-klarna", Amount: decimal.NewFromInt(250)},
		},
		Properties: map[string]string{
			entities.CheckoutOrderIDField: "kco-42",
		},
	}
}

func newConfirmationFixture(t *testing.T) (*mock_interfaces.MockIPurchaseOrderRepository, *mock_interfaces.MockIPaymentMethodRepository, *stubOrderGetter, *ConfirmationUseCase) {
	ctrl := gomock.NewController(t)
	orders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
	paymentMethods := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
	getter := &stubOrderGetter{order: entities.CheckoutOrder{OrderID: "kco-42", HTMLSnippet: "<div id=\"klarna\"></div>"}}
	uc := NewConfirmationUseCase(orders, paymentMethods, getter, "en-US")
	return orders, paymentMethods, getter, uc
}

func TestConfirmationUseCase_QueryPriority(t *testing.T) {
	t.Run("preview wins over both numbers", func(t *testing.T) {
		_, paymentMethods, _, uc := newConfirmationFixture(t)
		paymentMethods.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(entities.PaymentMethod{}, nil)

		view, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{
			Preview:        true,
			OrderNumber:    42,
			TrackingNumber: "PO42",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Order.OrderNumber != 1 {
			t.Fatalf("expected synthetic preview order, got %+v", view.Order)
		}
	})

	t.Run("order number wins over tracking number", func(t *testing.T) {
		orders, paymentMethods, _, uc := newConfirmationFixture(t)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), 42).Return(confirmedOrder(), nil)
		paymentMethods.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(entities.PaymentMethod{}, nil)

		view, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{
			OrderNumber:    42,
			TrackingNumber: "PO99",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Order.OrderNumber != 42 {
			t.Fatalf("expected order 42, got %+v", view.Order)
		}
	})

	t.Run("tracking number alone", func(t *testing.T) {
		orders, paymentMethods, _, uc := newConfirmationFixture(t)
		orders.EXPECT().GetByTrackingNumber(gomock.Any(), "PO42").Return(confirmedOrder(), nil)
		paymentMethods.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(entities.PaymentMethod{}, nil)

		view, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{TrackingNumber: "PO42"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Order.TrackingNumber != "PO42" {
			t.Fatalf("expected order PO42, got %+v", view.Order)
		}
	})

	t.Run("empty query is not found", func(t *testing.T) {
		_, _, _, uc := newConfirmationFixture(t)

		_, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("missing order is not found", func(t *testing.T) {
		orders, _, _, uc := newConfirmationFixture(t)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), 42).Return(entities.PurchaseOrder{}, nil)

		_, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{OrderNumber: 42})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestConfirmationUseCase_Snippet(t *testing.T) {
	t.Run("attaches snippet for checkout orders", func(t *testing.T) {
		orders, paymentMethods, _, uc := newConfirmationFixture(t)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), 42).Return(confirmedOrder(), nil)
		paymentMethods.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(entities.PaymentMethod{ID: "pm-klarna", SystemKeyword: entities.CheckoutSystemKeyword}, nil)

		view, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{OrderNumber: 42})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.IsKlarnaCheckout || view.HTMLSnippet != "<div id=\"klarna\"></div>" {
			t.Fatalf("expected snippet view, got %+v", view)
		}
	})

	t.Run("skips snippet when paid with a different method", func(t *testing.T) {
		orders, paymentMethods, getter, uc := newConfirmationFixture(t)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), 42).Return(confirmedOrder(), nil)
		paymentMethods.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(entities.PaymentMethod{ID: "pm-other"}, nil)

		view, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{OrderNumber: 42})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.IsKlarnaCheckout || view.HTMLSnippet != "" {
			t.Fatalf("expected plain view, got %+v", view)
		}
		if getter.calls != 0 {
			t.Fatalf("gateway must not be queried, got %d calls", getter.calls)
		}
	})

	t.Run("skips snippet when the order has no checkout id", func(t *testing.T) {
		orders, paymentMethods, getter, uc := newConfirmationFixture(t)
		order := confirmedOrder()
		delete(order.Properties, entities.CheckoutOrderIDField)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), 42).Return(order, nil)
		paymentMethods.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(entities.PaymentMethod{ID: "pm-klarna"}, nil)

		view, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{OrderNumber: 42})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.IsKlarnaCheckout || view.HTMLSnippet != "" {
			t.Fatalf("expected plain view, got %+v", view)
		}
		if getter.calls != 0 {
			t.Fatalf("gateway must not be queried, got %d calls", getter.calls)
		}
	})

	t.Run("renders without snippet when the gateway fetch fails", func(t *testing.T) {
		orders, paymentMethods, getter, uc := newConfirmationFixture(t)
		getter.err = errors.New("gateway down")
		orders.EXPECT().GetByOrderNumber(gomock.Any(), 42).Return(confirmedOrder(), nil)
		paymentMethods.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(entities.PaymentMethod{ID: "pm-klarna"}, nil)

		view, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{OrderNumber: 42})
		if err != nil {
			t.Fatalf("fetch failures must not break the page, got %v", err)
		}
		if view.IsKlarnaCheckout || view.HTMLSnippet != "" {
			t.Fatalf("expected degraded view, got %+v", view)
		}
	})

	t.Run("renders without snippet when the method lookup fails", func(t *testing.T) {
		orders, paymentMethods, getter, uc := newConfirmationFixture(t)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), 42).Return(confirmedOrder(), nil)
		paymentMethods.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(entities.PaymentMethod{}, errors.New("db"))

		view, err := uc.GetConfirmation(context.Background(), ConfirmationQuery{OrderNumber: 42})
		if err != nil {
			t.Fatalf("lookup failures must not break the page, got %v", err)
		}
		if view.Order.OrderNumber != 42 || view.IsKlarnaCheckout {
			t.Fatalf("expected degraded view, got %+v", view)
		}
		if getter.calls != 0 {
			t.Fatalf("gateway must not be queried, got %d calls", getter.calls)
		}
	})
}
