package mapping

import (
	"testing"

	"klarna_checkout/internal/domain/entities"
)

func TestToCheckoutAddress(t *testing.T) {
	t.Run("maps full US address", func(t *testing.T) {
		address := ToCheckoutAddress(entities.OrderAddress{
			FirstName:          "Jane",
			LastName:           "Doe",
			Line1:              "100 Main St",
			Line2:              "Apt 4",
			City:               "Seattle",
			PostalCode:         "98101",
			RegionName:         "Washington",
			CountryCode:        "USA",
			Email:              "jane@example.com",
			DaytimePhoneNumber: "555-0100",
		})

		if address.Country != "US" {
			t.Fatalf("expected country US, got %q", address.Country)
		}
		if address.Region != "WA" {
			t.Fatalf("expected region WA, got %q", address.Region)
		}
		if address.GivenName != "Jane" || address.FamilyName != "Doe" {
			t.Fatalf("unexpected names: %+v", address)
		}
		if address.Phone != "555-0100" {
			t.Fatalf("expected daytime phone, got %q", address.Phone)
		}
	})

	t.Run("falls back to evening phone", func(t *testing.T) {
		address := ToCheckoutAddress(entities.OrderAddress{
			CountryCode:        "SWE",
			EveningPhoneNumber: "555-0199",
		})
		if address.Phone != "555-0199" {
			t.Fatalf("expected evening phone, got %q", address.Phone)
		}
	})

	t.Run("unknown region maps to empty", func(t *testing.T) {
		address := ToCheckoutAddress(entities.OrderAddress{
			CountryCode: "USA",
			RegionName:  "Atlantis",
		})
		if address.Region != "" {
			t.Fatalf("expected empty region, got %q", address.Region)
		}
	})

	t.Run("missing country leaves region empty", func(t *testing.T) {
		address := ToCheckoutAddress(entities.OrderAddress{RegionName: "Washington"})
		if address.Country != "" || address.Region != "" {
			t.Fatalf("expected empty country and region, got %+v", address)
		}
	})
}

func TestToOrderAddress(t *testing.T) {
	t.Run("maps back with canonical region name", func(t *testing.T) {
		orderAddress := ToOrderAddress(entities.Address{
			GivenName:      "Jane",
			FamilyName:     "Doe",
			StreetAddress:  "100 Main St",
			StreetAddress2: "Apt 4",
			City:           "Seattle",
			PostalCode:     "98101",
			Region:         "WA",
			Country:        "US",
			Email:          "jane@example.com",
			Phone:          "555-0100",
		}, nil)

		if orderAddress.CountryCode != "USA" {
			t.Fatalf("expected country USA, got %q", orderAddress.CountryCode)
		}
		if orderAddress.RegionName != "Washington" || orderAddress.RegionCode != "Washington" {
			t.Fatalf("unexpected region: %+v", orderAddress)
		}
		if orderAddress.ID != "100 Main StApt 4Seattle" {
			t.Fatalf("unexpected synthesized id: %q", orderAddress.ID)
		}
		if orderAddress.DaytimePhoneNumber != "555-0100" {
			t.Fatalf("expected phone on daytime slot, got %+v", orderAddress)
		}
	})

	t.Run("round trip preserves the address", func(t *testing.T) {
		original := entities.OrderAddress{
			FirstName:          "Sven",
			LastName:           "Svensson",
			Line1:              "Storgatan 1",
			City:               "Stockholm",
			PostalCode:         "111 22",
			CountryCode:        "SWE",
			Email:              "sven@example.com",
			DaytimePhoneNumber: "08-123456",
		}

		back := ToOrderAddress(ToCheckoutAddress(original), nil)

		if back.FirstName != original.FirstName || back.LastName != original.LastName {
			t.Fatalf("names changed: %+v", back)
		}
		if back.Line1 != original.Line1 || back.City != original.City || back.PostalCode != original.PostalCode {
			t.Fatalf("street data changed: %+v", back)
		}
		if back.CountryCode != "SWE" {
			t.Fatalf("country changed: %q", back.CountryCode)
		}
		if back.DaytimePhoneNumber != original.DaytimePhoneNumber {
			t.Fatalf("phone changed: %q", back.DaytimePhoneNumber)
		}
	})
}
