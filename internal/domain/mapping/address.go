package mapping

import (
	"fmt"

	"klarna_checkout/internal/domain/entities"
)

// ToCheckoutAddress maps a host order address into the gateway address
// schema. Region is only populated when both country and region name are
// present; unknown regions map to "".
func ToCheckoutAddress(orderAddress entities.OrderAddress) entities.Address {
	address := entities.Address{
		GivenName:      orderAddress.FirstName,
		FamilyName:     orderAddress.LastName,
		StreetAddress:  orderAddress.Line1,
		StreetAddress2: orderAddress.Line2,
		PostalCode:     orderAddress.PostalCode,
		City:           orderAddress.City,
		Country:        TwoLetterCountryCode(orderAddress.CountryCode),
		Email:          orderAddress.Email,
		Phone:          phoneNumber(orderAddress),
	}
	if orderAddress.CountryCode != "" && orderAddress.RegionName != "" {
		address.Region = RegionCode(TwoLetterCountryCode(orderAddress.CountryCode), orderAddress.RegionName)
	}
	return address
}

// ToOrderAddress reconstructs a host order address from a gateway address.
//
// The synthesized id concatenates street lines and city; it is a
// display/debug key only and must never be used for lookups.
func ToOrderAddress(address entities.Address, _ *entities.Cart) entities.OrderAddress {
	orderAddress := entities.OrderAddress{
		ID:                 fmt.Sprintf("%s%s%s", address.StreetAddress, address.StreetAddress2, address.City),
		FirstName:          address.GivenName,
		LastName:           address.FamilyName,
		Line1:              address.StreetAddress,
		Line2:              address.StreetAddress2,
		PostalCode:         address.PostalCode,
		City:               address.City,
		CountryCode:        ThreeLetterCountryCode(address.Country),
		Email:              address.Email,
		DaytimePhoneNumber: address.Phone,
	}
	if address.Country != "" && address.Region != "" {
		name := RegionName(address.Country, address.Region)
		orderAddress.RegionName = name
		orderAddress.RegionCode = name
	}
	return orderAddress
}

func phoneNumber(orderAddress entities.OrderAddress) string {
	if orderAddress.DaytimePhoneNumber != "" {
		return orderAddress.DaytimePhoneNumber
	}
	return orderAddress.EveningPhoneNumber
}
