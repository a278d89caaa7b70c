package httpapi

import (
	"time"

	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
)

type createBookingRequest struct {
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

type roomPayload struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	PricePerNightCents int64    `json:"price_per_night_cents"`
	MaxGuests          int      `json:"max_guests"`
	Description        string   `json:"description"`
	Amenities          []string `json:"amenities"`
	Images             []string `json:"images"`
}

type bookingPayload struct {
	ID              string `json:"id"`
	RoomID          string `json:"room_id"`
	RoomName        string `json:"room_name"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Nights          int    `json:"nights"`
	TotalPriceCents int64  `json:"total_price_cents"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	CreatedAt       string `json:"created_at"`
}

type rangePayload struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type feePayload struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

type quotePayload struct {
	RoomID           string       `json:"room_id"`
	CheckIn          string       `json:"check_in"`
	CheckOut         string       `json:"check_out"`
	Nights           int          `json:"nights"`
	NightlyRateCents int64        `json:"nightly_rate_cents"`
	SubtotalCents    int64        `json:"subtotal_cents"`
	Fees             []feePayload `json:"fees"`
	TotalCents       int64        `json:"total_cents"`
}

type refundQuotePayload struct {
	BookingID     string `json:"booking_id"`
	Percentage    int    `json:"percentage"`
	AmountCents   int64  `json:"amount_cents"`
	PaymentStatus string `json:"payment_status"`
	NoticeSeconds int64  `json:"notice_seconds"`
}

type refundPayload struct {
	ID          string `json:"id"`
	BookingID   string `json:"booking_id"`
	AmountCents int64  `json:"amount_cents"`
	Percentage  int    `json:"percentage"`
	Date        string `json:"date"`
}

func toRoomPayload(room booking.Room) roomPayload {
	return roomPayload{
		ID:                 room.ID.String(),
		Name:               room.Name,
		Type:               room.Type.String(),
		PricePerNightCents: room.PricePerNight.Int64(),
		MaxGuests:          room.MaxGuests,
		Description:        room.Description,
		Amenities:          room.Amenities,
		Images:             room.Images,
	}
}

func toBookingPayload(record booking.Booking) bookingPayload {
	return bookingPayload{
		ID:              record.ID.String(),
		RoomID:          record.RoomID.String(),
		RoomName:        record.RoomName,
		CheckIn:         booking.FormatDate(record.Stay.CheckIn),
		CheckOut:        booking.FormatDate(record.Stay.CheckOut),
		Nights:          record.Stay.Nights(),
		TotalPriceCents: record.TotalPrice.Int64(),
		Status:          record.Status.String(),
		PaymentStatus:   record.PaymentStatus.String(),
		CreatedAt:       record.CreatedAt.UTC().Format(time.RFC3339),
	}
}
