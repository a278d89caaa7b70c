package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service owns the booking collection and applies the pricing and refund rules over a Store.
type Service struct {
	store   Store
	catalog Catalog
	nowFn   func() time.Time
	newID   func() string
	fees    FeeSchedule
	policy  RefundPolicy
	logger  OperationLogger

	// mutex serializes every read-modify-write of the collection.
	mutex sync.Mutex
}

// NewService wires a Service.
func NewService(store Store, catalog Catalog, now func() time.Time, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if catalog == nil {
		return nil, fmt.Errorf("%w: catalog dependency is nil", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{
		store:   store,
		catalog: catalog,
		nowFn:   now,
		newID:   uuid.NewString,
		fees:    DefaultFeeSchedule(),
		policy:  DefaultRefundPolicy(),
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(service); err != nil {
			return nil, err
		}
	}
	return service, nil
}

// ListBookings returns every booking, newest first.
func (service *Service) ListBookings(ctx context.Context) ([]Booking, error) {
	service.mutex.Lock()
	defer service.mutex.Unlock()
	bookings, err := service.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(bookings)
	return bookings, nil
}

// ListUserBookings returns the bookings owned by userID, newest first.
func (service *Service) ListUserBookings(ctx context.Context, userID UserID) ([]Booking, error) {
	all, err := service.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]Booking, 0, len(all))
	for _, booking := range all {
		if booking.UserID == userID {
			owned = append(owned, booking)
		}
	}
	return owned, nil
}

// GetBooking returns a single booking.
func (service *Service) GetBooking(ctx context.Context, bookingID BookingID) (Booking, error) {
	service.mutex.Lock()
	defer service.mutex.Unlock()
	bookings, err := service.store.LoadAll(ctx)
	if err != nil {
		return Booking{}, err
	}
	index := indexOfBooking(bookings, bookingID)
	if index < 0 {
		return Booking{}, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	return bookings[index], nil
}

// UnavailableRanges lists the stays held by confirmed bookings of roomID, ordered by check-in.
func (service *Service) UnavailableRanges(ctx context.Context, roomID RoomID) ([]DateRange, error) {
	service.mutex.Lock()
	defer service.mutex.Unlock()
	bookings, err := service.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	ranges := make([]DateRange, 0)
	for _, booking := range bookings {
		if booking.RoomID == roomID && booking.IsConfirmed() {
			ranges = append(ranges, booking.Stay)
		}
	}
	sort.SliceStable(ranges, func(left, right int) bool {
		return ranges[left].CheckIn.Before(ranges[right].CheckIn)
	})
	return ranges, nil
}

// Quote prices a prospective stay without touching the ledger.
func (service *Service) Quote(ctx context.Context, roomID RoomID, checkIn time.Time, checkOut time.Time) (PriceBreakdown, error) {
	stay, err := NewDateRange(checkIn, checkOut)
	if err != nil {
		return PriceBreakdown{}, err
	}
	room, err := service.catalog.FindRoom(ctx, roomID)
	if err != nil {
		return PriceBreakdown{}, err
	}
	return priceStay(room, stay, service.fees), nil
}

// CreateBooking validates the request, checks the room is free and appends a confirmed, paid booking.
func (service *Service) CreateBooking(ctx context.Context, request BookingRequest) (Booking, error) {
	var created Booking
	var stay DateRange
	operationError := func() error {
		if request.UserID.String() == "" {
			return fmt.Errorf("%w: booking request has no user", ErrInvalidUserID)
		}
		if request.RoomID.String() == "" {
			return fmt.Errorf("%w: booking request has no room", ErrInvalidRoomID)
		}
		var err error
		stay, err = NewDateRange(request.CheckIn, request.CheckOut)
		if err != nil {
			return err
		}
		now := service.nowFn()
		today := NormalizeDate(now.UTC())
		if stay.CheckIn.Before(today) {
			return fmt.Errorf("%w: %s is before %s", ErrCheckInInPast, FormatDate(stay.CheckIn), FormatDate(today))
		}
		room, err := service.catalog.FindRoom(ctx, request.RoomID)
		if err != nil {
			return err
		}
		if request.Guests < 0 {
			return fmt.Errorf("%w: guests must not be negative", ErrGuestCapacityExceeded)
		}
		if request.Guests > room.MaxGuests {
			return fmt.Errorf("%w: room %s sleeps %d, requested %d", ErrGuestCapacityExceeded, room.ID, room.MaxGuests, request.Guests)
		}
		breakdown := priceStay(room, stay, service.fees)
		bookingID, err := NewBookingID(service.newID())
		if err != nil {
			return err
		}

		service.mutex.Lock()
		defer service.mutex.Unlock()
		bookings, err := service.store.LoadAll(ctx)
		if err != nil {
			return err
		}
		if indexOfBooking(bookings, bookingID) >= 0 {
			return fmt.Errorf("%w: booking id %s is already taken", ErrInvalidBookingID, bookingID)
		}
		for _, existing := range bookings {
			if existing.RoomID == room.ID && existing.IsConfirmed() && existing.Stay.Overlaps(stay) {
				return fmt.Errorf("%w: room %s is booked for %s", ErrSlotUnavailable, room.ID, existing.Stay)
			}
		}
		candidate := Booking{
			ID:            bookingID,
			UserID:        request.UserID,
			RoomID:        room.ID,
			RoomName:      room.Name,
			Stay:          stay,
			TotalPrice:    breakdown.Total,
			Status:        BookingStatusConfirmed,
			PaymentStatus: PaymentStatusPaid,
			CreatedAt:     now.UTC(),
		}
		updated := make([]Booking, 0, len(bookings)+1)
		updated = append(updated, bookings...)
		updated = append(updated, candidate)
		if err := service.store.SaveAll(ctx, updated); err != nil {
			return err
		}
		created = candidate
		return nil
	}()
	service.logOperation(ctx, OperationLog{
		Operation: operationCreate,
		UserID:    request.UserID,
		BookingID: created.ID,
		RoomID:    request.RoomID,
		Stay:      stay,
		Amount:    created.TotalPrice,
		Error:     operationError,
	})
	if operationError != nil {
		return Booking{}, operationError
	}
	return created, nil
}

// PreviewRefund reports what cancelling now would refund, without changing anything.
func (service *Service) PreviewRefund(ctx context.Context, bookingID BookingID) (RefundQuote, error) {
	var quote RefundQuote
	var owner UserID
	operationError := func() error {
		booking, err := service.GetBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		owner = booking.UserID
		if !booking.IsConfirmed() {
			return fmt.Errorf("%w: booking %s is %s", ErrInvalidState, bookingID, booking.Status)
		}
		quote = service.policy.Quote(booking, service.nowFn())
		return nil
	}()
	service.logOperation(ctx, OperationLog{
		Operation:  operationPreviewRefund,
		UserID:     owner,
		BookingID:  bookingID,
		Amount:     quote.Amount,
		Percentage: quote.Percentage,
		Error:      operationError,
	})
	if operationError != nil {
		return RefundQuote{}, operationError
	}
	return quote, nil
}

// CancelBooking cancels a confirmed booking and applies the refund tier for the current notice.
func (service *Service) CancelBooking(ctx context.Context, bookingID BookingID) (Cancellation, error) {
	var cancellation Cancellation
	var quote RefundQuote
	operationError := func() error {
		service.mutex.Lock()
		defer service.mutex.Unlock()
		bookings, err := service.store.LoadAll(ctx)
		if err != nil {
			return err
		}
		index := indexOfBooking(bookings, bookingID)
		if index < 0 {
			return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
		}
		booking := bookings[index]
		cancellation.Booking = booking
		if !booking.IsConfirmed() {
			return fmt.Errorf("%w: booking %s is %s", ErrInvalidState, bookingID, booking.Status)
		}
		now := service.nowFn()
		quote = service.policy.Quote(booking, now)
		var refund *Refund
		if quote.Percentage > noRefundPercentage {
			refundID, err := NewRefundID(service.newID())
			if err != nil {
				return err
			}
			refund = &Refund{
				ID:         refundID,
				BookingID:  booking.ID,
				Amount:     quote.Amount,
				Percentage: quote.Percentage,
				Date:       now.UTC(),
			}
		}
		booking.Status = BookingStatusCancelled
		booking.PaymentStatus = quote.PaymentStatus
		updated := make([]Booking, len(bookings))
		copy(updated, bookings)
		updated[index] = booking
		if err := service.store.SaveAll(ctx, updated); err != nil {
			return err
		}
		cancellation = Cancellation{Booking: booking, Refund: refund}
		return nil
	}()
	service.logOperation(ctx, OperationLog{
		Operation:  operationCancel,
		UserID:     cancellation.Booking.UserID,
		BookingID:  bookingID,
		RoomID:     cancellation.Booking.RoomID,
		Stay:       cancellation.Booking.Stay,
		Amount:     quote.Amount,
		Percentage: quote.Percentage,
		Error:      operationError,
	})
	if operationError != nil {
		return Cancellation{}, operationError
	}
	return cancellation, nil
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}

func indexOfBooking(bookings []Booking, bookingID BookingID) int {
	for index, booking := range bookings {
		if booking.ID == bookingID {
			return index
		}
	}
	return -1
}

func sortNewestFirst(bookings []Booking) {
	sort.SliceStable(bookings, func(left, right int) bool {
		if bookings[left].CreatedAt.Equal(bookings[right].CreatedAt) {
			return bookings[left].ID.String() < bookings[right].ID.String()
		}
		return bookings[left].CreatedAt.After(bookings[right].CreatedAt)
	})
}
