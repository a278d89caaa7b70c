package catalog

import (
	"fmt"
	"strings"

	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
	"github.com/spf13/viper"
)

const roomsConfigKey = "rooms"

type roomEntry struct {
	ID                 string   `mapstructure:"id"`
	Name               string   `mapstructure:"name"`
	Type               string   `mapstructure:"type"`
	PricePerNightCents int64    `mapstructure:"price_per_night_cents"`
	MaxGuests          int      `mapstructure:"max_guests"`
	Description        string   `mapstructure:"description"`
	Amenities          []string `mapstructure:"amenities"`
	Images             []string `mapstructure:"images"`
}

// LoadFile reads a catalog from a YAML, JSON or TOML file with a top-level "rooms" list.
func LoadFile(path string) (*Catalog, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: catalog path is empty", booking.ErrInvalidServiceConfig)
	}
	reader := viper.New()
	reader.SetConfigFile(trimmed)
	if err := reader.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", trimmed, err)
	}
	var entries []roomEntry
	if err := reader.UnmarshalKey(roomsConfigKey, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", trimmed, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: catalog %s lists no rooms", booking.ErrInvalidServiceConfig, trimmed)
	}
	rooms := make([]booking.Room, 0, len(entries))
	for _, entry := range entries {
		room, err := entry.toRoom()
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", trimmed, err)
		}
		rooms = append(rooms, room)
	}
	return New(rooms...)
}

func (entry roomEntry) toRoom() (booking.Room, error) {
	roomID, err := booking.NewRoomID(entry.ID)
	if err != nil {
		return booking.Room{}, err
	}
	roomType, err := booking.ParseRoomType(entry.Type)
	if err != nil {
		return booking.Room{}, err
	}
	price, err := booking.NewPositiveAmountCents(entry.PricePerNightCents)
	if err != nil {
		return booking.Room{}, fmt.Errorf("room %s: %w", roomID, err)
	}
	return booking.Room{
		ID:            roomID,
		Name:          strings.TrimSpace(entry.Name),
		Type:          roomType,
		PricePerNight: price,
		MaxGuests:     entry.MaxGuests,
		Description:   entry.Description,
		Amenities:     entry.Amenities,
		Images:        entry.Images,
	}, nil
}
