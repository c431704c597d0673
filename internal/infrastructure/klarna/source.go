package klarna

import (
	"context"
	"log"
	"sync"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase/interfaces"
)

// ClientSource resolves the authenticated gateway client for the Klarna
// checkout payment method under a (locale, market) scope.
//
// Resolution runs on every cold access; the first successfully built client
// is reused for the source's remaining lifetime. A new source must be
// created to pick up configuration changes.
type ClientSource struct {
	paymentMethods interfaces.IPaymentMethodRepository
	locale         string
	marketID       string

	mu     sync.Mutex
	client interfaces.ICheckoutClient
}

var _ interfaces.ICheckoutClientSource = (*ClientSource)(nil)

func NewClientSource(paymentMethods interfaces.IPaymentMethodRepository, locale, marketID string) *ClientSource {
	return &ClientSource{paymentMethods: paymentMethods, locale: locale, marketID: marketID}
}

func (s *ClientSource) Client(ctx context.Context) (interfaces.ICheckoutClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	paymentMethod, err := s.paymentMethods.GetBySystemName(ctx, entities.CheckoutSystemKeyword, s.locale)
	if err != nil {
		return nil, err
	}
	if paymentMethod.SystemKeyword == "" {
		log.Printf("[checkout][gateway] payment method %s not configured for locale=%s", entities.CheckoutSystemKeyword, s.locale)
		return nil, interfaces.ErrCheckoutNotConfigured
	}

	cfg := paymentMethod.CheckoutConfigurationForMarket(s.marketID)
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	s.client = client
	return s.client, nil
}
