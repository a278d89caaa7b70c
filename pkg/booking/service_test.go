package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

var bookingWindowOpen = time.Date(2031, time.January, 1, 9, 0, 0, 0, time.UTC)

func TestCreateBookingPricesStayAndPersists(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	clock := newManualClock(bookingWindowOpen)
	service := mustNewService(test, store, clock)

	created := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-10", "2031-01-13")

	if created.TotalPrice != 83000 {
		test.Fatalf("expected total 83000 cents (3x250+80), got %d", created.TotalPrice)
	}
	if created.Status != BookingStatusConfirmed || created.PaymentStatus != PaymentStatusPaid {
		test.Fatalf("expected confirmed/paid, got %s/%s", created.Status, created.PaymentStatus)
	}
	if !created.CreatedAt.Equal(bookingWindowOpen) {
		test.Fatalf("expected created at %s, got %s", bookingWindowOpen, created.CreatedAt)
	}
	if created.RoomName != "Alpine Deluxe" {
		test.Fatalf("expected denormalized room name, got %q", created.RoomName)
	}
	if created.Stay.Nights() != 3 {
		test.Fatalf("expected 3 nights, got %d", created.Stay.Nights())
	}
	persisted := store.snapshot()
	if len(persisted) != 1 || persisted[0].ID != created.ID {
		test.Fatalf("expected booking to be persisted, got %+v", persisted)
	}
}

func TestCreateBookingRejectsOverlaps(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name     string
		roomID   string
		checkIn  string
		checkOut string
		wantErr  error
	}{
		{name: "touching after", roomID: alpineRoomIDValue, checkIn: "2031-01-15", checkOut: "2031-01-18"},
		{name: "touching before", roomID: alpineRoomIDValue, checkIn: "2031-01-07", checkOut: "2031-01-10"},
		{name: "straddles check-out", roomID: alpineRoomIDValue, checkIn: "2031-01-14", checkOut: "2031-01-16", wantErr: ErrSlotUnavailable},
		{name: "straddles check-in", roomID: alpineRoomIDValue, checkIn: "2031-01-08", checkOut: "2031-01-11", wantErr: ErrSlotUnavailable},
		{name: "inside", roomID: alpineRoomIDValue, checkIn: "2031-01-11", checkOut: "2031-01-12", wantErr: ErrSlotUnavailable},
		{name: "encloses", roomID: alpineRoomIDValue, checkIn: "2031-01-09", checkOut: "2031-01-16", wantErr: ErrSlotUnavailable},
		{name: "identical", roomID: alpineRoomIDValue, checkIn: "2031-01-10", checkOut: "2031-01-15", wantErr: ErrSlotUnavailable},
		{name: "other room", roomID: standardRoomIDValue, checkIn: "2031-01-10", checkOut: "2031-01-15"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			store := newStubStore()
			service := mustNewService(test, store, newManualClock(bookingWindowOpen))
			mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-10", "2031-01-15")

			_, err := service.CreateBooking(context.Background(), BookingRequest{
				UserID:   mustUserID(test, "user-2"),
				RoomID:   mustRoomID(test, testCase.roomID),
				CheckIn:  mustDate(test, testCase.checkIn),
				CheckOut: mustDate(test, testCase.checkOut),
			})
			if testCase.wantErr == nil {
				if err != nil {
					test.Fatalf("expected success, got %v", err)
				}
				return
			}
			expectError(test, err, testCase.wantErr)
			if got := len(store.snapshot()); got != 1 {
				test.Fatalf("expected ledger to keep 1 booking after rejection, got %d", got)
			}
		})
	}
}

func TestCreateBookingTwiceForSameStayFails(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, newStubStore(), newManualClock(bookingWindowOpen))
	mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-10", "2031-01-13")

	_, err := service.CreateBooking(context.Background(), BookingRequest{
		UserID:   mustUserID(test, defaultUserIDValue),
		RoomID:   mustRoomID(test, alpineRoomIDValue),
		CheckIn:  mustDate(test, "2031-01-10"),
		CheckOut: mustDate(test, "2031-01-13"),
	})
	expectError(test, err, ErrSlotUnavailable)
}

func TestCreateBookingValidation(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name     string
		roomID   string
		checkIn  string
		checkOut string
		guests   int
		noUser   bool
		wantErr  error
	}{
		{name: "missing user", roomID: alpineRoomIDValue, checkIn: "2031-01-10", checkOut: "2031-01-12", noUser: true, wantErr: ErrInvalidUserID},
		{name: "missing room", checkIn: "2031-01-10", checkOut: "2031-01-12", wantErr: ErrInvalidRoomID},
		{name: "check-out equals check-in", roomID: alpineRoomIDValue, checkIn: "2031-01-10", checkOut: "2031-01-10", wantErr: ErrDateRangeInvalid},
		{name: "check-out before check-in", roomID: alpineRoomIDValue, checkIn: "2031-01-10", checkOut: "2031-01-09", wantErr: ErrDateRangeInvalid},
		{name: "check-in in the past", roomID: alpineRoomIDValue, checkIn: "2030-12-31", checkOut: "2031-01-02", wantErr: ErrCheckInInPast},
		{name: "unknown room", roomID: "404", checkIn: "2031-01-10", checkOut: "2031-01-12", wantErr: ErrRoomNotFound},
		{name: "too many guests", roomID: alpineRoomIDValue, checkIn: "2031-01-10", checkOut: "2031-01-12", guests: 3, wantErr: ErrGuestCapacityExceeded},
		{name: "negative guests", roomID: alpineRoomIDValue, checkIn: "2031-01-10", checkOut: "2031-01-12", guests: -1, wantErr: ErrGuestCapacityExceeded},
	}

	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			store := newStubStore()
			service := mustNewService(test, store, newManualClock(bookingWindowOpen))
			request := BookingRequest{
				CheckIn:  mustDate(test, testCase.checkIn),
				CheckOut: mustDate(test, testCase.checkOut),
				Guests:   testCase.guests,
			}
			if !testCase.noUser {
				request.UserID = mustUserID(test, defaultUserIDValue)
			}
			if testCase.roomID != "" {
				request.RoomID = mustRoomID(test, testCase.roomID)
			}
			_, err := service.CreateBooking(context.Background(), request)
			expectError(test, err, testCase.wantErr)
			if store.saves != 0 {
				test.Fatalf("expected no writes on validation failure, got %d", store.saves)
			}
			if _, err := service.ListBookings(context.Background()); err != nil {
				test.Fatalf("ledger unreadable after rejected request: %v", err)
			}
		})
	}
}

func TestCreateBookingWithoutIdentitiesKeepsLedgerReadable(test *testing.T) {
	test.Parallel()
	kvStore, err := NewKeyValueStore(newMemoryKeyValue(), "")
	if err != nil {
		test.Fatalf("kv store: %v", err)
	}
	service, err := NewService(kvStore, newStubCatalog(test), newManualClock(bookingWindowOpen).Now)
	if err != nil {
		test.Fatalf("new service: %v", err)
	}
	ctx := context.Background()
	_, err = service.CreateBooking(ctx, BookingRequest{
		RoomID:   mustRoomID(test, alpineRoomIDValue),
		CheckIn:  mustDate(test, "2031-01-10"),
		CheckOut: mustDate(test, "2031-01-12"),
	})
	expectError(test, err, ErrInvalidUserID)

	created, err := service.CreateBooking(ctx, BookingRequest{
		UserID:   mustUserID(test, "user-2"),
		RoomID:   mustRoomID(test, alpineRoomIDValue),
		CheckIn:  mustDate(test, "2031-01-10"),
		CheckOut: mustDate(test, "2031-01-12"),
	})
	if err != nil {
		test.Fatalf("create after rejected request: %v", err)
	}
	bookings, err := service.ListBookings(ctx)
	if err != nil {
		test.Fatalf("list: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != created.ID {
		test.Fatalf("expected only the valid booking, got %+v", bookings)
	}
}

func TestCreateBookingRejectsRepeatedID(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newManualClock(bookingWindowOpen), WithIDGenerator(func() string { return "fixed-id" }))
	first := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-10", "2031-01-12")
	_, err := service.CreateBooking(context.Background(), BookingRequest{
		UserID:   mustUserID(test, defaultUserIDValue),
		RoomID:   mustRoomID(test, standardRoomIDValue),
		CheckIn:  mustDate(test, "2031-01-10"),
		CheckOut: mustDate(test, "2031-01-12"),
	})
	expectError(test, err, ErrInvalidBookingID)
	stored := store.snapshot()
	if len(stored) != 1 || stored[0].ID != first.ID {
		test.Fatalf("expected the ledger to keep only %s, got %+v", first.ID, stored)
	}
}

func TestCreateBookingAllowsCheckInToday(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, newStubStore(), newManualClock(bookingWindowOpen))
	mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-01", "2031-01-02")
}

func TestCreateBookingReleasesCancelledSlot(test *testing.T) {
	test.Parallel()
	clock := newManualClock(bookingWindowOpen)
	service := mustNewService(test, newStubStore(), clock)
	first := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-10", "2031-01-13")
	if _, err := service.CancelBooking(context.Background(), first.ID); err != nil {
		test.Fatalf("cancel: %v", err)
	}
	second := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-11", "2031-01-12")
	if second.ID == first.ID {
		test.Fatalf("expected a fresh booking id")
	}
}

func TestCreateBookingNeverDoubleBooksADay(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, newStubStore(), newManualClock(bookingWindowOpen))
	base := mustDate(test, "2031-02-01")
	requests := [][2]int{{0, 3}, {2, 5}, {3, 4}, {1, 2}, {4, 9}, {8, 10}, {9, 12}, {5, 6}, {0, 1}, {11, 13}, {12, 14}}
	for _, offsets := range requests {
		_, err := service.CreateBooking(context.Background(), BookingRequest{
			UserID:   mustUserID(test, defaultUserIDValue),
			RoomID:   mustRoomID(test, alpineRoomIDValue),
			CheckIn:  base.AddDate(0, 0, offsets[0]),
			CheckOut: base.AddDate(0, 0, offsets[1]),
		})
		if err != nil && !errors.Is(err, ErrSlotUnavailable) {
			test.Fatalf("unexpected error: %v", err)
		}
	}
	ranges, err := service.UnavailableRanges(context.Background(), mustRoomID(test, alpineRoomIDValue))
	if err != nil {
		test.Fatalf("unavailable ranges: %v", err)
	}
	for day := 0; day < 15; day++ {
		covering := 0
		for _, stay := range ranges {
			if stay.Contains(base.AddDate(0, 0, day)) {
				covering++
			}
		}
		if covering > 1 {
			test.Fatalf("day %d covered by %d confirmed bookings", day, covering)
		}
	}
}

func TestCreateBookingSerializesConcurrentRequests(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newManualClock(bookingWindowOpen))
	const attempts = 16

	request := BookingRequest{
		UserID:   mustUserID(test, defaultUserIDValue),
		RoomID:   mustRoomID(test, alpineRoomIDValue),
		CheckIn:  mustDate(test, "2031-03-01"),
		CheckOut: mustDate(test, "2031-03-04"),
	}

	var waitGroup sync.WaitGroup
	results := make(chan error, attempts)
	for attempt := 0; attempt < attempts; attempt++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			_, err := service.CreateBooking(context.Background(), request)
			results <- err
		}()
	}
	waitGroup.Wait()
	close(results)

	successes := 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotUnavailable):
		default:
			test.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		test.Fatalf("expected exactly one booking to win, got %d", successes)
	}
	if got := len(store.snapshot()); got != 1 {
		test.Fatalf("expected 1 persisted booking, got %d", got)
	}
}

func TestCancelBookingRefundTiers(test *testing.T) {
	test.Parallel()
	checkIn := time.Date(2031, time.January, 10, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name           string
		cancelAt       time.Time
		wantPercentage int
		wantAmount     AmountCents
		wantPayment    PaymentStatus
		wantRefund     bool
	}{
		{name: "thirty hours before", cancelAt: checkIn.Add(-30 * time.Hour), wantPercentage: 100, wantAmount: 83000, wantPayment: PaymentStatusRefunded, wantRefund: true},
		{name: "exactly twenty four hours before", cancelAt: checkIn.Add(-24 * time.Hour), wantPercentage: 100, wantAmount: 83000, wantPayment: PaymentStatusRefunded, wantRefund: true},
		{name: "twenty three hours fifty nine minutes before", cancelAt: checkIn.Add(-(23*time.Hour + 59*time.Minute)), wantPercentage: 50, wantAmount: 41500, wantPayment: PaymentStatusPartialRefunded, wantRefund: true},
		{name: "ten hours before", cancelAt: checkIn.Add(-10 * time.Hour), wantPercentage: 50, wantAmount: 41500, wantPayment: PaymentStatusPartialRefunded, wantRefund: true},
		{name: "thirty minutes before", cancelAt: checkIn.Add(-30 * time.Minute), wantPercentage: 50, wantAmount: 41500, wantPayment: PaymentStatusPartialRefunded, wantRefund: true},
		{name: "at check-in", cancelAt: checkIn, wantPercentage: 0, wantAmount: 0, wantPayment: PaymentStatusPaid},
		{name: "after check-in", cancelAt: checkIn.Add(36 * time.Hour), wantPercentage: 0, wantAmount: 0, wantPayment: PaymentStatusPaid},
	}

	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			clock := newManualClock(bookingWindowOpen)
			store := newStubStore()
			service := mustNewService(test, store, clock)
			created := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-10", "2031-01-13")

			clock.Set(testCase.cancelAt)
			cancellation, err := service.CancelBooking(context.Background(), created.ID)
			if err != nil {
				test.Fatalf("cancel: %v", err)
			}
			if cancellation.Booking.Status != BookingStatusCancelled {
				test.Fatalf("expected cancelled, got %s", cancellation.Booking.Status)
			}
			if cancellation.Booking.PaymentStatus != testCase.wantPayment {
				test.Fatalf("expected payment %s, got %s", testCase.wantPayment, cancellation.Booking.PaymentStatus)
			}
			if cancellation.Booking.TotalPrice != created.TotalPrice {
				test.Fatalf("total price changed from %d to %d", created.TotalPrice, cancellation.Booking.TotalPrice)
			}
			if !testCase.wantRefund {
				if cancellation.Refund != nil {
					test.Fatalf("expected no refund, got %+v", cancellation.Refund)
				}
				return
			}
			if cancellation.Refund == nil {
				test.Fatalf("expected refund record")
			}
			refund := cancellation.Refund
			if refund.Percentage != testCase.wantPercentage || refund.Amount != testCase.wantAmount {
				test.Fatalf("expected %d%% / %d, got %d%% / %d", testCase.wantPercentage, testCase.wantAmount, refund.Percentage, refund.Amount)
			}
			if refund.BookingID != created.ID || !refund.Date.Equal(testCase.cancelAt) {
				test.Fatalf("unexpected refund record: %+v", refund)
			}
			persisted := store.snapshot()
			if persisted[0].Status != BookingStatusCancelled || persisted[0].PaymentStatus != testCase.wantPayment {
				test.Fatalf("expected cancellation to be persisted, got %+v", persisted[0])
			}
		})
	}
}

func TestCancelBookingRejectsUnknownAndClosedBookings(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newManualClock(bookingWindowOpen))

	_, err := service.CancelBooking(context.Background(), mustBookingID(test, "missing"))
	expectError(test, err, ErrBookingNotFound)

	created := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-10", "2031-01-13")
	if _, err := service.CancelBooking(context.Background(), created.ID); err != nil {
		test.Fatalf("first cancel: %v", err)
	}
	savesAfterCancel := store.saves
	_, err = service.CancelBooking(context.Background(), created.ID)
	expectError(test, err, ErrInvalidState)
	if store.saves != savesAfterCancel {
		test.Fatalf("expected no write for rejected cancellation")
	}

	completed := Booking{
		ID:            mustBookingID(test, "done"),
		UserID:        mustUserID(test, defaultUserIDValue),
		RoomID:        mustRoomID(test, standardRoomIDValue),
		Stay:          mustDateRange(test, "2030-12-01", "2030-12-03"),
		TotalPrice:    32000,
		Status:        BookingStatusCompleted,
		PaymentStatus: PaymentStatusPaid,
		CreatedAt:     bookingWindowOpen.AddDate(0, -2, 0),
	}
	completedService := mustNewService(test, newStubStore(completed), newManualClock(bookingWindowOpen))
	_, err = completedService.CancelBooking(context.Background(), completed.ID)
	expectError(test, err, ErrInvalidState)
}

func TestPreviewRefundMatchesCancellation(test *testing.T) {
	test.Parallel()
	clock := newManualClock(bookingWindowOpen)
	store := newStubStore()
	service := mustNewService(test, store, clock)
	created := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-10", "2031-01-13")
	clock.Set(time.Date(2031, time.January, 9, 14, 0, 0, 0, time.UTC))
	savesBefore := store.saves

	quote, err := service.PreviewRefund(context.Background(), created.ID)
	if err != nil {
		test.Fatalf("preview: %v", err)
	}
	if store.saves != savesBefore {
		test.Fatalf("preview must not write")
	}
	if quote.Percentage != 50 || quote.Amount != 41500 || quote.PaymentStatus != PaymentStatusPartialRefunded {
		test.Fatalf("unexpected quote: %+v", quote)
	}
	if quote.NoticeRemaining != 10*time.Hour {
		test.Fatalf("expected 10h notice, got %s", quote.NoticeRemaining)
	}
	cancellation, err := service.CancelBooking(context.Background(), created.ID)
	if err != nil {
		test.Fatalf("cancel: %v", err)
	}
	if cancellation.Refund == nil || cancellation.Refund.Amount != quote.Amount {
		test.Fatalf("expected refund %d, got %+v", quote.Amount, cancellation.Refund)
	}
	_, err = service.PreviewRefund(context.Background(), created.ID)
	expectError(test, err, ErrInvalidState)
}

func TestListBookingsNewestFirstAndFilteredByUser(test *testing.T) {
	test.Parallel()
	clock := newManualClock(bookingWindowOpen)
	service := mustNewService(test, newStubStore(), clock)
	owner := mustUserID(test, defaultUserIDValue)
	other := mustUserID(test, "user-2")

	first := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-10", "2031-01-12")
	clock.Set(bookingWindowOpen.Add(time.Hour))
	_, err := service.CreateBooking(context.Background(), BookingRequest{
		UserID:   other,
		RoomID:   mustRoomID(test, standardRoomIDValue),
		CheckIn:  mustDate(test, "2031-01-10"),
		CheckOut: mustDate(test, "2031-01-12"),
	})
	if err != nil {
		test.Fatalf("create other: %v", err)
	}
	clock.Set(bookingWindowOpen.Add(2 * time.Hour))
	third := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-20", "2031-01-22")

	all, err := service.ListBookings(context.Background())
	if err != nil {
		test.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != third.ID || all[2].ID != first.ID {
		test.Fatalf("expected newest first ordering, got %+v", all)
	}
	owned, err := service.ListUserBookings(context.Background(), owner)
	if err != nil {
		test.Fatalf("list user: %v", err)
	}
	if len(owned) != 2 || owned[0].ID != third.ID || owned[1].ID != first.ID {
		test.Fatalf("unexpected owned bookings: %+v", owned)
	}
	for _, booking := range owned {
		if booking.UserID != owner {
			test.Fatalf("leaked booking of %s", booking.UserID)
		}
	}
}

func TestUnavailableRangesSkipsCancelledBookings(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, newStubStore(), newManualClock(bookingWindowOpen))
	later := mustCreateBooking(test, service, alpineRoomIDValue, "2031-02-01", "2031-02-03")
	earlier := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-05", "2031-01-07")
	cancelled := mustCreateBooking(test, service, alpineRoomIDValue, "2031-01-20", "2031-01-21")
	mustCreateBooking(test, service, standardRoomIDValue, "2031-01-05", "2031-01-07")
	if _, err := service.CancelBooking(context.Background(), cancelled.ID); err != nil {
		test.Fatalf("cancel: %v", err)
	}

	ranges, err := service.UnavailableRanges(context.Background(), mustRoomID(test, alpineRoomIDValue))
	if err != nil {
		test.Fatalf("unavailable: %v", err)
	}
	if len(ranges) != 2 || ranges[0] != earlier.Stay || ranges[1] != later.Stay {
		test.Fatalf("unexpected ranges: %+v", ranges)
	}
}

func TestQuoteBreaksDownTotal(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, newStubStore(), newManualClock(bookingWindowOpen), WithFeeSchedule(FeeSchedule{Cleaning: 4000, Service: 1500}))
	breakdown, err := service.Quote(context.Background(), mustRoomID(test, standardRoomIDValue), mustDate(test, "2031-01-10"), mustDate(test, "2031-01-14"))
	if err != nil {
		test.Fatalf("quote: %v", err)
	}
	if breakdown.Nights != 4 || breakdown.Subtotal != 48000 || breakdown.Total != 53500 {
		test.Fatalf("unexpected breakdown: %+v", breakdown)
	}
	if len(breakdown.Fees) != 2 || breakdown.Fees[0].Name != feeNameCleaning || breakdown.Fees[1].Amount != 1500 {
		test.Fatalf("unexpected fees: %+v", breakdown.Fees)
	}
	_, err = service.Quote(context.Background(), mustRoomID(test, "404"), mustDate(test, "2031-01-10"), mustDate(test, "2031-01-14"))
	expectError(test, err, ErrRoomNotFound)
}

func TestServiceReturnsStoreErrors(test *testing.T) {
	test.Parallel()
	errStoreFailure := errors.New("store error")

	loadFailing := newStubStore()
	loadFailing.loadError = errStoreFailure
	service := mustNewService(test, loadFailing, newManualClock(bookingWindowOpen))
	_, err := service.ListBookings(context.Background())
	expectError(test, err, errStoreFailure)
	_, err = service.CancelBooking(context.Background(), mustBookingID(test, "any"))
	expectError(test, err, errStoreFailure)

	saveFailing := newStubStore()
	saveFailing.saveError = errStoreFailure
	service = mustNewService(test, saveFailing, newManualClock(bookingWindowOpen))
	_, err = service.CreateBooking(context.Background(), BookingRequest{
		UserID:   mustUserID(test, defaultUserIDValue),
		RoomID:   mustRoomID(test, alpineRoomIDValue),
		CheckIn:  mustDate(test, "2031-01-10"),
		CheckOut: mustDate(test, "2031-01-11"),
	})
	expectError(test, err, errStoreFailure)
}

func TestNewServiceValidatesDependencies(test *testing.T) {
	test.Parallel()
	catalog := newStubCatalog(test)
	clock := newManualClock(bookingWindowOpen)
	if _, err := NewService(nil, catalog, clock.Now); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf("expected ErrInvalidServiceConfig for nil store, got %v", err)
	}
	if _, err := NewService(newStubStore(), nil, clock.Now); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf("expected ErrInvalidServiceConfig for nil catalog, got %v", err)
	}
	if _, err := NewService(newStubStore(), catalog, nil); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf("expected ErrInvalidServiceConfig for nil clock, got %v", err)
	}
	if _, err := NewService(newStubStore(), catalog, clock.Now, WithFeeSchedule(FeeSchedule{Cleaning: -1})); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf("expected ErrInvalidServiceConfig for negative fee, got %v", err)
	}
	if _, err := NewService(newStubStore(), catalog, clock.Now, WithRefundPolicy(RefundPolicy{FullRefundNotice: time.Hour, PartialPercentage: 100})); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf("expected ErrInvalidServiceConfig for invalid policy, got %v", err)
	}
	if _, err := NewService(newStubStore(), catalog, clock.Now, WithIDGenerator(nil)); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf("expected ErrInvalidServiceConfig for nil id generator, got %v", err)
	}
}
