package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/domain/mapping"
	"klarna_checkout/internal/usecase/interfaces"
	"klarna_checkout/pkg"
)

var (
	ErrInvalidCartID  = errors.New("invalid cart id")
	ErrInvalidOrderID = errors.New("invalid checkout order id")
	ErrCartNotFound   = errors.New("cart not found")
)

// orderIDPlaceholder is substituted by the gateway with the assigned order id
// when it invokes the merchant callback URLs.
const orderIDPlaceholder = "{checkout.order.id}"

// SyncResult is the typed outcome of one synchronization round against the
// gateway.
//
// Order is nil when the round did not happen (gateway API error or transport
// failure); Fault then carries the provider's error code, message list and
// correlation id. Callers may retry on a later checkout step.
type SyncResult struct {
	Order *entities.CheckoutOrder
	Fault *entities.GatewayFault
}

// Synced reports whether the gateway accepted the round.
func (r SyncResult) Synced() bool { return r.Order != nil }

// ICheckoutUseCase keeps carts synchronized with the gateway's
// checkout-order resource.
//
// CreateOrUpdateOrder branches on the cart's stored order id: absent/blank
// means create, anything else means update against that id.
type ICheckoutUseCase interface {
	SyncCart(ctx context.Context, cartID string) (SyncResult, error)
	CreateOrUpdateOrder(ctx context.Context, cart *entities.Cart) (SyncResult, error)
	CreateOrder(ctx context.Context, cart *entities.Cart) (SyncResult, error)
	UpdateOrder(ctx context.Context, orderID string, cart *entities.Cart) (SyncResult, error)
	GetOrder(ctx context.Context, orderID string) (entities.CheckoutOrder, error)
	GetCartByOrderID(ctx context.Context, orderID string) (entities.Cart, error)
}

type CheckoutUseCase struct {
	totals          interfaces.ITotalsCalculator
	carts           interfaces.ICartRepository
	shippingMethods interfaces.IShippingMethodRepository
	clients         interfaces.ICheckoutClientSource
	locale          string
	merchantBaseURL string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	totals interfaces.ITotalsCalculator,
	carts interfaces.ICartRepository,
	shippingMethods interfaces.IShippingMethodRepository,
	clients interfaces.ICheckoutClientSource,
	locale string,
	merchantBaseURL string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		totals:          totals,
		carts:           carts,
		shippingMethods: shippingMethods,
		clients:         clients,
		locale:          locale,
		merchantBaseURL: strings.TrimSuffix(merchantBaseURL, "/"),
	}
}

func (u *CheckoutUseCase) SyncCart(ctx context.Context, cartID string) (SyncResult, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return SyncResult{}, ErrInvalidCartID
	}

	cart, err := u.carts.GetByID(ctx, cartID)
	if err != nil {
		return SyncResult{}, err
	}
	if cart.ID == "" {
		return SyncResult{}, ErrCartNotFound
	}
	return u.CreateOrUpdateOrder(ctx, &cart)
}

func (u *CheckoutUseCase) CreateOrUpdateOrder(ctx context.Context, cart *entities.Cart) (SyncResult, error) {
	orderID := cart.CheckoutOrderID()
	if strings.TrimSpace(orderID) == "" {
		return u.CreateOrder(ctx, cart)
	}
	return u.UpdateOrder(ctx, orderID, cart)
}

func (u *CheckoutUseCase) CreateOrder(ctx context.Context, cart *entities.Cart) (SyncResult, error) {
	client, err := u.clients.Client(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	lines := mapping.BuildOrderLines(cart)
	totals := u.totals.Totals(cart)

	orderData := entities.CheckoutOrder{
		PurchaseCountry:  mapping.TwoLetterCountryCode(cart.Market.FirstCountry()),
		PurchaseCurrency: cart.Currency,
		Locale:           u.locale,
		OrderAmount:      pkg.MinorUnits(totals.Total, cart.Currency),
		OrderTaxAmount:   pkg.MinorUnits(totals.TaxTotal, cart.Currency),
		OrderLines:       lines,
		MerchantURLs:     u.merchantURLs(),
	}

	created, err := client.CreateOrder(ctx, orderData)
	if err != nil {
		return SyncResult{Fault: gatewayFault("create", cart.ID, err)}, nil
	}

	// Re-fetch the canonical snapshot; the create response may be partial.
	fetched, err := client.FetchOrder(ctx, created.OrderID)
	if err != nil {
		return SyncResult{Fault: gatewayFault("create-fetch", cart.ID, err)}, nil
	}

	cart.SetCheckoutOrderID(fetched.OrderID)
	if _, err := u.carts.Save(ctx, *cart); err != nil {
		return SyncResult{}, err
	}
	log.Printf("[checkout][usecase] create success cart_id=%s order_id=%s", cart.ID, fetched.OrderID)

	return SyncResult{Order: &fetched}, nil
}

func (u *CheckoutUseCase) UpdateOrder(ctx context.Context, orderID string, cart *entities.Cart) (SyncResult, error) {
	client, err := u.clients.Client(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	totals := u.totals.Totals(cart)

	methods, err := u.shippingMethods.ListByMarket(ctx, cart.Market.ID)
	if err != nil {
		return SyncResult{}, err
	}

	patch := entities.CheckoutOrderPatch{
		OrderAmount:     pkg.MinorUnits(totals.Total, cart.Currency),
		OrderTaxAmount:  pkg.MinorUnits(totals.TaxTotal, cart.Currency),
		OrderLines:      mapping.BuildOrderLines(cart),
		ShippingOptions: shippingOptions(methods, cart.Currency),
	}

	updated, err := client.UpdateOrder(ctx, orderID, patch)
	if err != nil {
		// The stored order id stays untouched; a later round may retry.
		return SyncResult{Fault: gatewayFault("update", cart.ID, err)}, nil
	}
	log.Printf("[checkout][usecase] update success cart_id=%s order_id=%s", cart.ID, orderID)

	return SyncResult{Order: &updated}, nil
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, orderID string) (entities.CheckoutOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CheckoutOrder{}, ErrInvalidOrderID
	}

	client, err := u.clients.Client(ctx)
	if err != nil {
		return entities.CheckoutOrder{}, err
	}
	return client.FetchOrder(ctx, orderID)
}

func (u *CheckoutUseCase) GetCartByOrderID(ctx context.Context, orderID string) (entities.Cart, error) {
	if _, err := u.GetOrder(ctx, orderID); err != nil {
		return entities.Cart{}, err
	}

	cart, err := u.carts.GetByCheckoutOrderID(ctx, orderID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.ID == "" {
		return entities.Cart{}, ErrCartNotFound
	}

	// TODO: compare the fetched checkout order snapshot with the cart

	return cart, nil
}

func (u *CheckoutUseCase) merchantURLs() *entities.MerchantURLs {
	return &entities.MerchantURLs{
		Terms:        u.merchantBaseURL + "/toc",
		Checkout:     u.merchantBaseURL + "/checkout?klarna_order_id=" + orderIDPlaceholder,
		Confirmation: u.merchantBaseURL + "/thank-you?klarna_order_id=" + orderIDPlaceholder,
		Push:         u.merchantBaseURL + "/create_order?klarna_order_id=" + orderIDPlaceholder,
	}
}

func shippingOptions(methods []entities.ShippingMethod, currency string) []entities.ShippingOption {
	options := make([]entities.ShippingOption, 0, len(methods))
	for _, method := range methods {
		options = append(options, entities.ShippingOption{
			ID:          method.ID,
			Name:        method.DisplayName,
			Description: method.Description,
			Price:       pkg.MinorUnits(method.BasePrice, currency),
			PreSelected: method.IsDefault,
			// Placeholder values carried over from the upstream integration.
			TaxAmount: 1,
			TaxRate:   1,
		})
	}
	return options
}

func gatewayFault(op, cartID string, err error) *entities.GatewayFault {
	var gwErr interfaces.IGatewayError
	if errors.As(err, &gwErr) {
		fault := gwErr.GatewayFault()
		log.Printf("[checkout][usecase] %s gateway error cart_id=%s code=%s correlation_id=%s messages=%v",
			op, cartID, fault.ErrorCode, fault.CorrelationID, fault.Messages)
		return &fault
	}

	log.Printf("[checkout][usecase] %s transport error cart_id=%s err=%v", op, cartID, err)
	return &entities.GatewayFault{Messages: []string{err.Error()}}
}
