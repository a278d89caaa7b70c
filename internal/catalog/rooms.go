package catalog

import "github.com/MarkoPoloResearchLab/staybook/pkg/booking"

type roomSeed struct {
	id          string
	name        string
	roomType    booking.RoomType
	priceCents  booking.AmountCents
	maxGuests   int
	description string
	amenities   []string
	image       string
}

var defaultRooms = []roomSeed{
	{
		id:          "1",
		name:        "Alpine Deluxe",
		roomType:    booking.RoomTypeDeluxe,
		priceCents:  25000,
		maxGuests:   2,
		description: "Panoramic mountain views, a king-size bed, a private balcony and a rain shower.",
		amenities:   []string{"King Bed", "Mountain View", "Balcony", "Free Wi-Fi", "Smart TV", "Mini Bar"},
		image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800&q=80",
	},
	{
		id:          "2",
		name:        "Urban Suite",
		roomType:    booking.RoomTypeSuite,
		priceCents:  45000,
		maxGuests:   3,
		description: "A separate living area and kitchenette behind floor-to-ceiling skyline windows.",
		amenities:   []string{"King Bed", "City View", "Living Room", "Kitchenette", "Work Desk", "Bathtub"},
		image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&q=80",
	},
	{
		id:          "3",
		name:        "Cozy Standard",
		roomType:    booking.RoomTypeStandard,
		priceCents:  12000,
		maxGuests:   2,
		description: "The essentials for a solo traveler or a couple.",
		amenities:   []string{"Queen Bed", "Garden View", "Free Wi-Fi", "Coffee Maker"},
		image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800&q=80",
	},
	{
		id:          "4",
		name:        "Lakeside Retreat",
		roomType:    booking.RoomTypeDeluxe,
		priceCents:  28000,
		maxGuests:   2,
		description: "Direct lake access and a private terrace.",
		amenities:   []string{"King Bed", "Lake View", "Terrace", "Fireplace"},
		image:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&q=80",
	},
	{
		id:          "5",
		name:        "Family Suite",
		roomType:    booking.RoomTypeSuite,
		priceCents:  50000,
		maxGuests:   4,
		description: "Two bedrooms, two bathrooms and a large shared living area.",
		amenities:   []string{"2 Queen Beds", "Living Room", "2 Bathrooms", "Game Console"},
		image:       "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=800&q=80",
	},
	{
		id:          "6",
		name:        "Business Executive",
		roomType:    booking.RoomTypeStandard,
		priceCents:  18000,
		maxGuests:   2,
		description: "An ergonomic desk, high-speed internet and a lounge chair.",
		amenities:   []string{"Queen Bed", "Work Desk", "High-Speed Wi-Fi", "Lounge Chair"},
		image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=800&q=80",
	},
}

// Default returns the built-in six-room inventory.
func Default() *Catalog {
	rooms := make([]booking.Room, 0, len(defaultRooms))
	for _, seed := range defaultRooms {
		roomID, err := booking.NewRoomID(seed.id)
		if err != nil {
			panic(err)
		}
		rooms = append(rooms, booking.Room{
			ID:            roomID,
			Name:          seed.name,
			Type:          seed.roomType,
			PricePerNight: seed.priceCents,
			MaxGuests:     seed.maxGuests,
			Description:   seed.description,
			Amenities:     seed.amenities,
			Images:        []string{seed.image},
		})
	}
	catalog, err := New(rooms...)
	if err != nil {
		panic(err)
	}
	return catalog
}
