// Package staybookv1 defines the BookingService wire contract: messages, service descriptor and client.
package staybookv1

// Room describes a catalog room.
type Room struct {
	Id                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	PricePerNightCents int64    `json:"price_per_night_cents"`
	MaxGuests          int32    `json:"max_guests"`
	Description        string   `json:"description,omitempty"`
	Amenities          []string `json:"amenities,omitempty"`
	Images             []string `json:"images,omitempty"`
}

// Booking is a reservation. Dates are YYYY-MM-DD; CreatedAt is RFC 3339 UTC.
type Booking struct {
	Id              string `json:"id"`
	UserId          string `json:"user_id"`
	RoomId          string `json:"room_id"`
	RoomName        string `json:"room_name,omitempty"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Nights          int32  `json:"nights"`
	TotalPriceCents int64  `json:"total_price_cents"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	CreatedAt       string `json:"created_at"`
}

// DateRange is a half-open stay.
type DateRange struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// Fee is a named surcharge.
type Fee struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

// Refund records money returned by a cancellation.
type Refund struct {
	Id          string `json:"id"`
	BookingId   string `json:"booking_id"`
	AmountCents int64  `json:"amount_cents"`
	Percentage  int32  `json:"percentage"`
	Date        string `json:"date"`
}

type ListRoomsRequest struct {
	MinPriceCents int64    `json:"min_price_cents,omitempty"`
	MaxPriceCents int64    `json:"max_price_cents,omitempty"`
	Types         []string `json:"types,omitempty"`
}

type ListRoomsResponse struct {
	Rooms []*Room `json:"rooms"`
}

// ListBookingsRequest lists every booking, or only UserId's when set.
type ListBookingsRequest struct {
	UserId string `json:"user_id,omitempty"`
}

type ListBookingsResponse struct {
	Bookings []*Booking `json:"bookings"`
}

type GetUnavailableRangesRequest struct {
	RoomId string `json:"room_id"`
}

type GetUnavailableRangesResponse struct {
	Ranges []*DateRange `json:"ranges"`
}

type QuoteStayRequest struct {
	RoomId   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type QuoteStayResponse struct {
	RoomId           string `json:"room_id"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Nights           int32  `json:"nights"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
	SubtotalCents    int64  `json:"subtotal_cents"`
	Fees             []*Fee `json:"fees"`
	TotalCents       int64  `json:"total_cents"`
}

type CreateBookingRequest struct {
	UserId   string `json:"user_id"`
	RoomId   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int32  `json:"guests,omitempty"`
}

type CreateBookingResponse struct {
	Booking *Booking `json:"booking"`
}

// PreviewRefundRequest quotes a cancellation. A non-empty UserId must own the booking.
type PreviewRefundRequest struct {
	BookingId string `json:"booking_id"`
	UserId    string `json:"user_id,omitempty"`
}

type PreviewRefundResponse struct {
	BookingId     string `json:"booking_id"`
	Percentage    int32  `json:"percentage"`
	AmountCents   int64  `json:"amount_cents"`
	PaymentStatus string `json:"payment_status"`
	NoticeSeconds int64  `json:"notice_seconds"`
}

// CancelBookingRequest cancels a booking. A non-empty UserId must own the booking.
type CancelBookingRequest struct {
	BookingId string `json:"booking_id"`
	UserId    string `json:"user_id,omitempty"`
}

// CancelBookingResponse carries the cancelled booking; Refund is nil when nothing was returned.
type CancelBookingResponse struct {
	Booking *Booking `json:"booking"`
	Refund  *Refund  `json:"refund,omitempty"`
}
