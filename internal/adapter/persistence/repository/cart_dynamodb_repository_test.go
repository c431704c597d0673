package repository

import (
	"testing"

	"klarna_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCartItemRoundTrip(t *testing.T) {
	cart := entities.Cart{
		ID:         "cart-1",
		CustomerID: "cust-1",
		Market:     entities.Market{ID: "US", Countries: []string{"USA"}},
		Currency:   "USD",
		Lines: []entities.LineItem{
			{Code: "SKU-1", DisplayName: "Shirt", Quantity: 2, PlacedPrice: decimal.NewFromFloat(49.99), TaxRate: decimal.NewFromInt(25)},
		},
	}
	cart.SetCheckoutOrderID("kco-1")

	it := toCartItem(cart)
	if it.KlarnaOrderID != "kco-1" {
		t.Fatalf("expected mirrored order id attribute, got %q", it.KlarnaOrderID)
	}
	if it.Lines[0].PlacedPrice != "49.99" {
		t.Fatalf("expected string encoded price, got %q", it.Lines[0].PlacedPrice)
	}

	back := fromCartItem(it)
	if back.ID != cart.ID || back.Currency != cart.Currency || back.Market.ID != cart.Market.ID {
		t.Fatalf("cart fields changed: %+v", back)
	}
	if back.CheckoutOrderID() != "kco-1" {
		t.Fatalf("order id lost: %q", back.CheckoutOrderID())
	}
	if !back.Lines[0].PlacedPrice.Equal(cart.Lines[0].PlacedPrice) {
		t.Fatalf("price changed: %s", back.Lines[0].PlacedPrice)
	}
	if !back.Lines[0].TaxRate.Equal(cart.Lines[0].TaxRate) {
		t.Fatalf("tax rate changed: %s", back.Lines[0].TaxRate)
	}
}

func TestCartItemWithoutOrderID(t *testing.T) {
	it := toCartItem(entities.Cart{ID: "cart-2", Currency: "SEK"})
	if it.KlarnaOrderID != "" {
		t.Fatalf("expected empty mirror attribute, got %q", it.KlarnaOrderID)
	}
}
