// Package catalog serves the read-only room inventory the booking service prices against.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
)

// Catalog is an immutable, in-memory set of rooms.
type Catalog struct {
	rooms []booking.Room
	byID  map[booking.RoomID]booking.Room
}

// New validates rooms and builds a Catalog. Room order is preserved for listings.
func New(rooms ...booking.Room) (*Catalog, error) {
	catalog := &Catalog{
		rooms: make([]booking.Room, 0, len(rooms)),
		byID:  make(map[booking.RoomID]booking.Room, len(rooms)),
	}
	for index, room := range rooms {
		if err := validateRoom(room); err != nil {
			return nil, fmt.Errorf("room %d: %w", index, err)
		}
		if _, exists := catalog.byID[room.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate room id %s", booking.ErrInvalidRoomID, room.ID)
		}
		stored := cloneRoom(room)
		catalog.rooms = append(catalog.rooms, stored)
		catalog.byID[room.ID] = stored
	}
	return catalog, nil
}

// FindRoom returns the room with the given id or booking.ErrRoomNotFound.
func (catalog *Catalog) FindRoom(_ context.Context, roomID booking.RoomID) (booking.Room, error) {
	room, ok := catalog.byID[roomID]
	if !ok {
		return booking.Room{}, fmt.Errorf("%w: %s", booking.ErrRoomNotFound, roomID)
	}
	return cloneRoom(room), nil
}

// Len reports how many rooms the catalog holds.
func (catalog *Catalog) Len() int {
	return len(catalog.rooms)
}

// Types lists the distinct room types present, sorted.
func (catalog *Catalog) Types() []booking.RoomType {
	seen := make(map[booking.RoomType]struct{})
	types := make([]booking.RoomType, 0, 3)
	for _, room := range catalog.rooms {
		if _, ok := seen[room.Type]; ok {
			continue
		}
		seen[room.Type] = struct{}{}
		types = append(types, room.Type)
	}
	sort.Slice(types, func(left, right int) bool { return types[left] < types[right] })
	return types
}

func validateRoom(room booking.Room) error {
	if room.ID.String() == "" {
		return fmt.Errorf("%w: empty value", booking.ErrInvalidRoomID)
	}
	if strings.TrimSpace(room.Name) == "" {
		return fmt.Errorf("%w: room %s has no name", booking.ErrInvalidServiceConfig, room.ID)
	}
	if _, err := booking.ParseRoomType(room.Type.String()); err != nil {
		return err
	}
	if room.PricePerNight <= 0 {
		return fmt.Errorf("%w: room %s price must be positive", booking.ErrInvalidAmountCents, room.ID)
	}
	if room.MaxGuests <= 0 {
		return fmt.Errorf("%w: room %s must sleep at least one guest", booking.ErrInvalidServiceConfig, room.ID)
	}
	return nil
}

func cloneRoom(room booking.Room) booking.Room {
	room.Amenities = append([]string(nil), room.Amenities...)
	room.Images = append([]string(nil), room.Images...)
	return room
}
