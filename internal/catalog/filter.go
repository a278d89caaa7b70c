package catalog

import "github.com/MarkoPoloResearchLab/staybook/pkg/booking"

// Filter narrows a room listing. Zero bounds are open; an empty Types set matches every type.
type Filter struct {
	MinPrice booking.AmountCents
	MaxPrice booking.AmountCents
	Types    []booking.RoomType
}

// Matches reports whether room passes the filter. Price bounds are inclusive.
func (filter Filter) Matches(room booking.Room) bool {
	if filter.MinPrice > 0 && room.PricePerNight < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && room.PricePerNight > filter.MaxPrice {
		return false
	}
	if len(filter.Types) == 0 {
		return true
	}
	for _, roomType := range filter.Types {
		if roomType == room.Type {
			return true
		}
	}
	return false
}

// Rooms lists the rooms accepted by filter in catalog order.
func (catalog *Catalog) Rooms(filter Filter) []booking.Room {
	matched := make([]booking.Room, 0, len(catalog.rooms))
	for _, room := range catalog.rooms {
		if filter.Matches(room) {
			matched = append(matched, cloneRoom(room))
		}
	}
	return matched
}
