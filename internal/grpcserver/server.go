package grpcserver

import (
	"context"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/staybook/api/staybook/v1"
	"github.com/MarkoPoloResearchLab/staybook/internal/catalog"
	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	errorSlotUnavailable       = "slot_unavailable"
	errorDateRangeInvalid      = "date_range_invalid"
	errorCheckInInPast         = "check_in_in_past"
	errorGuestCapacityExceeded = "guest_capacity_exceeded"
	errorRoomNotFound          = "room_not_found"
	errorBookingNotFound       = "booking_not_found"
	errorInvalidState          = "invalid_state"
	errorInvalidUserID         = "invalid_user_id"
	errorInvalidRoomID         = "invalid_room_id"
	errorInvalidBookingID      = "invalid_booking_id"
	errorInvalidRoomType       = "invalid_room_type"
	errorInvalidDate           = "invalid_date"
	errorInvalidAmount         = "invalid_amount_cents"

	dateTimeLayout = time.RFC3339Nano
)

// BookingServiceServer exposes the booking ledger over gRPC.
type BookingServiceServer struct {
	bookingService *booking.Service
	rooms          *catalog.Catalog
}

var _ staybookv1.BookingServiceServer = (*BookingServiceServer)(nil)

// NewBookingServiceServer constructs a gRPC server for the booking service.
func NewBookingServiceServer(bookingService *booking.Service, rooms *catalog.Catalog) *BookingServiceServer {
	return &BookingServiceServer{bookingService: bookingService, rooms: rooms}
}

func (server *BookingServiceServer) ListRooms(_ context.Context, request *staybookv1.ListRoomsRequest) (*staybookv1.ListRoomsResponse, error) {
	filter := catalog.Filter{}
	minPrice, err := booking.NewAmountCents(request.MinPriceCents)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	maxPrice, err := booking.NewAmountCents(request.MaxPriceCents)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	filter.MinPrice = minPrice
	filter.MaxPrice = maxPrice
	for _, rawType := range request.Types {
		roomType, err := booking.ParseRoomType(rawType)
		if err != nil {
			return nil, mapToGRPCError(err)
		}
		filter.Types = append(filter.Types, roomType)
	}
	rooms := server.rooms.Rooms(filter)
	response := &staybookv1.ListRoomsResponse{Rooms: make([]*staybookv1.Room, 0, len(rooms))}
	for _, room := range rooms {
		response.Rooms = append(response.Rooms, toRoomMessage(room))
	}
	return response, nil
}

func (server *BookingServiceServer) ListBookings(ctx context.Context, request *staybookv1.ListBookingsRequest) (*staybookv1.ListBookingsResponse, error) {
	var bookings []booking.Booking
	var operationError error
	if request.UserId == "" {
		bookings, operationError = server.bookingService.ListBookings(ctx)
	} else {
		userID, err := booking.NewUserID(request.UserId)
		if err != nil {
			return nil, mapToGRPCError(err)
		}
		bookings, operationError = server.bookingService.ListUserBookings(ctx, userID)
	}
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	response := &staybookv1.ListBookingsResponse{Bookings: make([]*staybookv1.Booking, 0, len(bookings))}
	for _, record := range bookings {
		response.Bookings = append(response.Bookings, toBookingMessage(record))
	}
	return response, nil
}

func (server *BookingServiceServer) GetUnavailableRanges(ctx context.Context, request *staybookv1.GetUnavailableRangesRequest) (*staybookv1.GetUnavailableRangesResponse, error) {
	roomID, err := booking.NewRoomID(request.RoomId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	if _, err := server.rooms.FindRoom(ctx, roomID); err != nil {
		return nil, mapToGRPCError(err)
	}
	ranges, operationError := server.bookingService.UnavailableRanges(ctx, roomID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	response := &staybookv1.GetUnavailableRangesResponse{Ranges: make([]*staybookv1.DateRange, 0, len(ranges))}
	for _, stay := range ranges {
		response.Ranges = append(response.Ranges, &staybookv1.DateRange{
			CheckIn:  booking.FormatDate(stay.CheckIn),
			CheckOut: booking.FormatDate(stay.CheckOut),
		})
	}
	return response, nil
}

func (server *BookingServiceServer) QuoteStay(ctx context.Context, request *staybookv1.QuoteStayRequest) (*staybookv1.QuoteStayResponse, error) {
	roomID, err := booking.NewRoomID(request.RoomId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	checkIn, err := booking.ParseDate(request.CheckIn)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	checkOut, err := booking.ParseDate(request.CheckOut)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	breakdown, operationError := server.bookingService.Quote(ctx, roomID, checkIn, checkOut)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	response := &staybookv1.QuoteStayResponse{
		RoomId:           breakdown.RoomID.String(),
		CheckIn:          booking.FormatDate(breakdown.Stay.CheckIn),
		CheckOut:         booking.FormatDate(breakdown.Stay.CheckOut),
		Nights:           int32(breakdown.Nights),
		NightlyRateCents: breakdown.NightlyRate.Int64(),
		SubtotalCents:    breakdown.Subtotal.Int64(),
		Fees:             make([]*staybookv1.Fee, 0, len(breakdown.Fees)),
		TotalCents:       breakdown.Total.Int64(),
	}
	for _, fee := range breakdown.Fees {
		response.Fees = append(response.Fees, &staybookv1.Fee{Name: fee.Name, AmountCents: fee.Amount.Int64()})
	}
	return response, nil
}

func (server *BookingServiceServer) CreateBooking(ctx context.Context, request *staybookv1.CreateBookingRequest) (*staybookv1.CreateBookingResponse, error) {
	userID, err := booking.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	roomID, err := booking.NewRoomID(request.RoomId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	checkIn, err := booking.ParseDate(request.CheckIn)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	checkOut, err := booking.ParseDate(request.CheckOut)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	created, operationError := server.bookingService.CreateBooking(ctx, booking.BookingRequest{
		UserID:   userID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   int(request.Guests),
	})
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &staybookv1.CreateBookingResponse{Booking: toBookingMessage(created)}, nil
}

func (server *BookingServiceServer) PreviewRefund(ctx context.Context, request *staybookv1.PreviewRefundRequest) (*staybookv1.PreviewRefundResponse, error) {
	bookingID, err := server.authorizeBooking(ctx, request.BookingId, request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	quote, operationError := server.bookingService.PreviewRefund(ctx, bookingID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &staybookv1.PreviewRefundResponse{
		BookingId:     quote.BookingID.String(),
		Percentage:    int32(quote.Percentage),
		AmountCents:   quote.Amount.Int64(),
		PaymentStatus: quote.PaymentStatus.String(),
		NoticeSeconds: int64(quote.NoticeRemaining / time.Second),
	}, nil
}

func (server *BookingServiceServer) CancelBooking(ctx context.Context, request *staybookv1.CancelBookingRequest) (*staybookv1.CancelBookingResponse, error) {
	bookingID, err := server.authorizeBooking(ctx, request.BookingId, request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	cancellation, operationError := server.bookingService.CancelBooking(ctx, bookingID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	response := &staybookv1.CancelBookingResponse{Booking: toBookingMessage(cancellation.Booking)}
	if refund := cancellation.Refund; refund != nil {
		response.Refund = &staybookv1.Refund{
			Id:          refund.ID.String(),
			BookingId:   refund.BookingID.String(),
			AmountCents: refund.Amount.Int64(),
			Percentage:  int32(refund.Percentage),
			Date:        refund.Date.UTC().Format(dateTimeLayout),
		}
	}
	return response, nil
}

// authorizeBooking parses bookingID and, when userID is set, hides bookings owned by someone else.
func (server *BookingServiceServer) authorizeBooking(ctx context.Context, rawBookingID string, rawUserID string) (booking.BookingID, error) {
	bookingID, err := booking.NewBookingID(rawBookingID)
	if err != nil {
		return booking.BookingID{}, err
	}
	if rawUserID == "" {
		return bookingID, nil
	}
	userID, err := booking.NewUserID(rawUserID)
	if err != nil {
		return booking.BookingID{}, err
	}
	existing, err := server.bookingService.GetBooking(ctx, bookingID)
	if err != nil {
		return booking.BookingID{}, err
	}
	if existing.UserID != userID {
		return booking.BookingID{}, booking.ErrBookingNotFound
	}
	return bookingID, nil
}

func toRoomMessage(room booking.Room) *staybookv1.Room {
	return &staybookv1.Room{
		Id:                 room.ID.String(),
		Name:               room.Name,
		Type:               room.Type.String(),
		PricePerNightCents: room.PricePerNight.Int64(),
		MaxGuests:          int32(room.MaxGuests),
		Description:        room.Description,
		Amenities:          room.Amenities,
		Images:             room.Images,
	}
}

func toBookingMessage(record booking.Booking) *staybookv1.Booking {
	return &staybookv1.Booking{
		Id:              record.ID.String(),
		UserId:          record.UserID.String(),
		RoomId:          record.RoomID.String(),
		RoomName:        record.RoomName,
		CheckIn:         booking.FormatDate(record.Stay.CheckIn),
		CheckOut:        booking.FormatDate(record.Stay.CheckOut),
		Nights:          int32(record.Stay.Nights()),
		TotalPriceCents: record.TotalPrice.Int64(),
		Status:          record.Status.String(),
		PaymentStatus:   record.PaymentStatus.String(),
		CreatedAt:       record.CreatedAt.UTC().Format(dateTimeLayout),
	}
}

func mapToGRPCError(source error) error {
	if errors.Is(source, booking.ErrInvalidUserID) {
		return status.Error(codes.InvalidArgument, errorInvalidUserID)
	}
	if errors.Is(source, booking.ErrInvalidRoomID) {
		return status.Error(codes.InvalidArgument, errorInvalidRoomID)
	}
	if errors.Is(source, booking.ErrInvalidBookingID) {
		return status.Error(codes.InvalidArgument, errorInvalidBookingID)
	}
	if errors.Is(source, booking.ErrInvalidRoomType) {
		return status.Error(codes.InvalidArgument, errorInvalidRoomType)
	}
	if errors.Is(source, booking.ErrInvalidDate) {
		return status.Error(codes.InvalidArgument, errorInvalidDate)
	}
	if errors.Is(source, booking.ErrInvalidAmountCents) {
		return status.Error(codes.InvalidArgument, errorInvalidAmount)
	}
	if errors.Is(source, booking.ErrDateRangeInvalid) {
		return status.Error(codes.InvalidArgument, errorDateRangeInvalid)
	}
	if errors.Is(source, booking.ErrCheckInInPast) {
		return status.Error(codes.InvalidArgument, errorCheckInInPast)
	}
	if errors.Is(source, booking.ErrGuestCapacityExceeded) {
		return status.Error(codes.InvalidArgument, errorGuestCapacityExceeded)
	}
	if errors.Is(source, booking.ErrRoomNotFound) {
		return status.Error(codes.NotFound, errorRoomNotFound)
	}
	if errors.Is(source, booking.ErrBookingNotFound) {
		return status.Error(codes.NotFound, errorBookingNotFound)
	}
	if errors.Is(source, booking.ErrSlotUnavailable) {
		return status.Error(codes.AlreadyExists, errorSlotUnavailable)
	}
	if errors.Is(source, booking.ErrInvalidState) {
		return status.Error(codes.FailedPrecondition, errorInvalidState)
	}
	if errors.Is(source, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, source.Error())
	}
	if errors.Is(source, context.Canceled) {
		return status.Error(codes.Canceled, source.Error())
	}
	return status.Error(codes.Internal, source.Error())
}
