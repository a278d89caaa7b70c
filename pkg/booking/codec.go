package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	errorOperationCodec = "codec"
	errorSubjectBooking = "booking"
	errorSubjectLedger  = "ledger"
	errorCodeDecode     = "decode"
	errorCodeEncode     = "encode"
	errorCodeInvalid    = "invalid"
)

// bookingRecord is the persisted shape of a Booking. Keys follow the website's local-storage records.
type bookingRecord struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	RoomID          string `json:"roomId"`
	RoomName        string `json:"roomName,omitempty"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	TotalPriceCents int64  `json:"totalPriceCents"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"paymentStatus"`
	CreatedAt       string `json:"createdAt"`
}

// EncodeBookings serializes the collection with ISO-8601 dates.
func EncodeBookings(bookings []Booking) ([]byte, error) {
	records := make([]bookingRecord, 0, len(bookings))
	for _, booking := range bookings {
		records = append(records, bookingRecord{
			ID:              booking.ID.String(),
			UserID:          booking.UserID.String(),
			RoomID:          booking.RoomID.String(),
			RoomName:        booking.RoomName,
			CheckIn:         FormatDate(booking.Stay.CheckIn),
			CheckOut:        FormatDate(booking.Stay.CheckOut),
			TotalPriceCents: booking.TotalPrice.Int64(),
			Status:          booking.Status.String(),
			PaymentStatus:   booking.PaymentStatus.String(),
			CreatedAt:       booking.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	encoded, err := json.Marshal(records)
	if err != nil {
		return nil, WrapError(errorOperationCodec, errorSubjectLedger, errorCodeEncode, err)
	}
	return encoded, nil
}

// DecodeBookings parses a serialized collection. Empty input is an empty ledger.
func DecodeBookings(data []byte) ([]Booking, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Booking{}, nil
	}
	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, WrapError(errorOperationCodec, errorSubjectLedger, errorCodeDecode, err)
	}
	bookings := make([]Booking, 0, len(records))
	for index, record := range records {
		booking, err := record.toBooking()
		if err != nil {
			return nil, WrapError(errorOperationCodec, errorSubjectBooking, errorCodeInvalid, fmt.Errorf("record %d: %w", index, err))
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (record bookingRecord) toBooking() (Booking, error) {
	bookingID, err := NewBookingID(record.ID)
	if err != nil {
		return Booking{}, err
	}
	userID, err := NewUserID(record.UserID)
	if err != nil {
		return Booking{}, err
	}
	roomID, err := NewRoomID(record.RoomID)
	if err != nil {
		return Booking{}, err
	}
	checkIn, err := ParseDate(record.CheckIn)
	if err != nil {
		return Booking{}, err
	}
	checkOut, err := ParseDate(record.CheckOut)
	if err != nil {
		return Booking{}, err
	}
	stay, err := NewDateRange(checkIn, checkOut)
	if err != nil {
		return Booking{}, err
	}
	totalPrice, err := NewAmountCents(record.TotalPriceCents)
	if err != nil {
		return Booking{}, err
	}
	status, err := ParseBookingStatus(record.Status)
	if err != nil {
		return Booking{}, err
	}
	paymentStatus, err := ParsePaymentStatus(record.PaymentStatus)
	if err != nil {
		return Booking{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
	if err != nil {
		return Booking{}, fmt.Errorf("%w: created at %q", ErrInvalidDate, record.CreatedAt)
	}
	return Booking{
		ID:            bookingID,
		UserID:        userID,
		RoomID:        roomID,
		RoomName:      record.RoomName,
		Stay:          stay,
		TotalPrice:    totalPrice,
		Status:        status,
		PaymentStatus: paymentStatus,
		CreatedAt:     createdAt.UTC(),
	}, nil
}
