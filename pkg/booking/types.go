package booking

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AmountCents is an integer currency amount in cents.
type AmountCents int64

// NewAmountCents validates a non-negative amount.
func NewAmountCents(raw int64) (AmountCents, error) {
	if raw < 0 {
		return 0, fmt.Errorf("%w: must not be negative", ErrInvalidAmountCents)
	}
	return AmountCents(raw), nil
}

// NewPositiveAmountCents validates an amount that must be strictly positive.
func NewPositiveAmountCents(raw int64) (AmountCents, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmountCents)
	}
	return AmountCents(raw), nil
}

// Int64 returns the raw cents value.
func (amount AmountCents) Int64() int64 {
	return int64(amount)
}

// String renders the amount as dollars and cents.
func (amount AmountCents) String() string {
	sign := ""
	value := int64(amount)
	if value < 0 {
		sign = "-"
		value = -value
	}
	return fmt.Sprintf("%s$%d.%02d", sign, value/100, value%100)
}

// UserID identifies the owner of a booking.
type UserID struct {
	value string
}

// NewUserID validates and normalizes a user id.
func NewUserID(raw string) (UserID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UserID{}, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	return UserID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id UserID) String() string {
	return id.value
}

// RoomID identifies a catalog room.
type RoomID struct {
	value string
}

// NewRoomID validates and normalizes a room id.
func NewRoomID(raw string) (RoomID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RoomID{}, fmt.Errorf("%w: empty value", ErrInvalidRoomID)
	}
	return RoomID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id RoomID) String() string {
	return id.value
}

// BookingID identifies a booking.
type BookingID struct {
	value string
}

// NewBookingID validates and normalizes a booking id.
func NewBookingID(raw string) (BookingID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return BookingID{}, fmt.Errorf("%w: empty value", ErrInvalidBookingID)
	}
	return BookingID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id BookingID) String() string {
	return id.value
}

// RefundID identifies a refund record.
type RefundID struct {
	value string
}

// NewRefundID validates and normalizes a refund id.
func NewRefundID(raw string) (RefundID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RefundID{}, fmt.Errorf("%w: empty value", ErrInvalidRefundID)
	}
	return RefundID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id RefundID) String() string {
	return id.value
}

// BookingStatus defines the booking lifecycle.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ParseBookingStatus validates a raw status value.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	switch BookingStatus(strings.TrimSpace(raw)) {
	case BookingStatusConfirmed:
		return BookingStatusConfirmed, nil
	case BookingStatusCancelled:
		return BookingStatusCancelled, nil
	case BookingStatusCompleted:
		return BookingStatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBookingStatus, raw)
	}
}

// String returns the raw status.
func (status BookingStatus) String() string {
	return string(status)
}

// PaymentStatus tracks the money side of a booking.
type PaymentStatus string

const (
	PaymentStatusPaid            PaymentStatus = "paid"
	PaymentStatusRefunded        PaymentStatus = "refunded"
	PaymentStatusPartialRefunded PaymentStatus = "partial_refunded"
)

// ParsePaymentStatus validates a raw payment status value.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch PaymentStatus(strings.TrimSpace(raw)) {
	case PaymentStatusPaid:
		return PaymentStatusPaid, nil
	case PaymentStatusRefunded:
		return PaymentStatusRefunded, nil
	case PaymentStatusPartialRefunded:
		return PaymentStatusPartialRefunded, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, raw)
	}
}

// String returns the raw payment status.
func (status PaymentStatus) String() string {
	return string(status)
}

// RoomType classifies catalog rooms.
type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
)

// ParseRoomType validates a raw room type.
func ParseRoomType(raw string) (RoomType, error) {
	switch RoomType(strings.ToLower(strings.TrimSpace(raw))) {
	case RoomTypeStandard:
		return RoomTypeStandard, nil
	case RoomTypeDeluxe:
		return RoomTypeDeluxe, nil
	case RoomTypeSuite:
		return RoomTypeSuite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRoomType, raw)
	}
}

// String returns the raw room type.
func (roomType RoomType) String() string {
	return string(roomType)
}

// Room is immutable reference data owned by the catalog.
type Room struct {
	ID            RoomID
	Name          string
	Type          RoomType
	PricePerNight AmountCents
	MaxGuests     int
	Description   string
	Amenities     []string
	Images        []string
}

// Booking is a single reservation of a room for a stay.
type Booking struct {
	ID            BookingID
	UserID        UserID
	RoomID        RoomID
	RoomName      string
	Stay          DateRange
	TotalPrice    AmountCents
	Status        BookingStatus
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

// IsConfirmed reports whether the booking still holds its room.
func (booking Booking) IsConfirmed() bool {
	return booking.Status == BookingStatusConfirmed
}

// Refund is produced by a cancellation that returns money.
type Refund struct {
	ID         RefundID
	BookingID  BookingID
	Amount     AmountCents
	Percentage int
	Date       time.Time
}

// Cancellation is the result of CancelBooking. Refund is nil when nothing is returned.
type Cancellation struct {
	Booking Booking
	Refund  *Refund
}

// BookingRequest carries the caller input for CreateBooking.
// Guests is optional; zero skips the capacity check.
type BookingRequest struct {
	UserID   UserID
	RoomID   RoomID
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// Catalog resolves rooms by id.
type Catalog interface {
	FindRoom(ctx context.Context, roomID RoomID) (Room, error)
}

// Store is the persistence contract used by Service: the whole collection is read and replaced.
type Store interface {
	LoadAll(ctx context.Context) ([]Booking, error)
	SaveAll(ctx context.Context, bookings []Booking) error
}
