package address

import "github.com/google/uuid"

var (
	AddressDowntownCafe = uuid.MustParse("b4c2d1e0-0002-4e00-8000-000000000001")
	AddressRiversideBar = uuid.MustParse("b4c2d1e0-0002-4e00-8000-000000000002")
	AddressHotelKitchen = uuid.MustParse("b4c2d1e0-0002-4e00-8000-000000000003")
)

// SeedAddresses returns the demo account's saved delivery locations.
func SeedAddresses() []DeliveryAddress {
	return []DeliveryAddress{
		{
			ID:           AddressDowntownCafe,
			Label:        "Main cafe",
			BusinessName: "Harbor Light Cafe",
			Street:       "412 Grant Ave",
			City:         "Portland",
			State:        "OR",
			ZipCode:      "97204",
			Instructions: "Loading dock on 5th, ring twice.",
			IsDefault:    true,
		},
		{
			ID:           AddressRiversideBar,
			Label:        "Riverside location",
			BusinessName: "Harbor Light Riverside",
			Street:       "88 Waterfront Way",
			City:         "Portland",
			State:        "OR",
			ZipCode:      "97209",
			IsDefault:    false,
		},
		{
			ID:           AddressHotelKitchen,
			Label:        "Hotel contract",
			BusinessName: "The Alder Hotel",
			Street:       "1020 SW Alder St",
			City:         "Portland",
			State:        "OR",
			ZipCode:      "97205",
			Instructions: "Deliveries before 6am only.",
			IsDefault:    false,
		},
	}
}
