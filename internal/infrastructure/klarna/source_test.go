package klarna

import (
	"context"
	"errors"
	"testing"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase/interfaces"
	mock_interfaces "klarna_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func configuredPaymentMethod() entities.PaymentMethod {
	return entities.PaymentMethod{
		ID:            "pm-klarna",
		SystemKeyword: entities.CheckoutSystemKeyword,
		Language:      "en-US",
		Parameters: map[string]string{
			"US_KlarnaCheckoutConfiguration": `{"username":"merchant","password":"secret","api_url":"https://api.playground.klarna.com"}`,
		},
	}
}

func TestClientSource(t *testing.T) {
	t.Run("memoizes the resolved client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		repo.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(configuredPaymentMethod(), nil).Times(1)

		source := NewClientSource(repo, "en-US", "US")

		first, err := source.Client(context.Background())
		if err != nil {
			t.Fatalf("first resolve: %v", err)
		}
		second, err := source.Client(context.Background())
		if err != nil {
			t.Fatalf("second resolve: %v", err)
		}
		if first != second {
			t.Fatal("expected the same client instance on repeat access")
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		repo.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(entities.PaymentMethod{}, nil)

		source := NewClientSource(repo, "en-US", "US")

		_, err := source.Client(context.Background())
		if !errors.Is(err, interfaces.ErrCheckoutNotConfigured) {
			t.Fatalf("expected ErrCheckoutNotConfigured, got %v", err)
		}
	})

	t.Run("market without configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		repo.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
			Return(configuredPaymentMethod(), nil)

		source := NewClientSource(repo, "en-US", "SE")

		_, err := source.Client(context.Background())
		if !errors.Is(err, ErrMissingCheckoutConfiguration) {
			t.Fatalf("expected ErrMissingCheckoutConfiguration, got %v", err)
		}
	})

	t.Run("repository failure is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		repoErr := errors.New("db down")
		gomock.InOrder(
			repo.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
				Return(entities.PaymentMethod{}, repoErr),
			repo.EXPECT().GetBySystemName(gomock.Any(), entities.CheckoutSystemKeyword, "en-US").
				Return(configuredPaymentMethod(), nil),
		)

		source := NewClientSource(repo, "en-US", "US")

		if _, err := source.Client(context.Background()); !errors.Is(err, repoErr) {
			t.Fatalf("expected repository error, got %v", err)
		}
		if _, err := source.Client(context.Background()); err != nil {
			t.Fatalf("expected recovery after failure, got %v", err)
		}
	})
}
