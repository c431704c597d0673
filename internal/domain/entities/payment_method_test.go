package entities

import "testing"

func TestCheckoutConfigurationForMarket(t *testing.T) {
	t.Run("resolves market scoped blob", func(t *testing.T) {
		method := PaymentMethod{
			ID:            "pm-1",
			SystemKeyword: CheckoutSystemKeyword,
			Language:      "en-US",
			Parameters: map[string]string{
				"US_KlarnaCheckoutConfiguration": `{"username":"merchant","password":"secret","api_url":"https://api.playground.klarna.com"}`,
				"SE_KlarnaCheckoutConfiguration": `{"username":"merchant-se","password":"secret-se","api_url":"https://api.klarna.com"}`,
			},
		}

		cfg := method.CheckoutConfigurationForMarket("US")
		if cfg.Username != "merchant" || cfg.Password != "secret" {
			t.Fatalf("unexpected credentials: %+v", cfg)
		}
		if cfg.APIURL != "https://api.playground.klarna.com" {
			t.Fatalf("unexpected api url: %q", cfg.APIURL)
		}

		se := method.CheckoutConfigurationForMarket("SE")
		if se.Username != "merchant-se" {
			t.Fatalf("market prefix ignored: %+v", se)
		}
	})

	t.Run("missing blob yields zero configuration", func(t *testing.T) {
		method := PaymentMethod{Parameters: map[string]string{}}
		cfg := method.CheckoutConfigurationForMarket("US")
		if !cfg.IsEmpty() {
			t.Fatalf("expected empty configuration, got %+v", cfg)
		}
	})

	t.Run("malformed blob yields zero configuration", func(t *testing.T) {
		method := PaymentMethod{
			Parameters: map[string]string{
				"US_KlarnaCheckoutConfiguration": "{not json",
			},
		}
		cfg := method.CheckoutConfigurationForMarket("US")
		if !cfg.IsEmpty() {
			t.Fatalf("expected empty configuration, got %+v", cfg)
		}
	})

	t.Run("nil parameters", func(t *testing.T) {
		cfg := PaymentMethod{}.CheckoutConfigurationForMarket("US")
		if !cfg.IsEmpty() {
			t.Fatalf("expected empty configuration, got %+v", cfg)
		}
	})
}

func TestCheckoutConfigurationIsEmpty(t *testing.T) {
	if (CheckoutConfiguration{}).IsEmpty() != true {
		t.Fatal("zero value must be empty")
	}
	if (CheckoutConfiguration{APIURL: "https://api.klarna.com"}).IsEmpty() {
		t.Fatal("configuration with an api url is not empty")
	}
}
