package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

const (
	alpineRoomIDValue   = "1"
	standardRoomIDValue = "3"
	defaultUserIDValue  = "user-1"
)

type stubStore struct {
	mutex     sync.Mutex
	bookings  []Booking
	loadError error
	saveError error
	saves     int
}

func newStubStore(bookings ...Booking) *stubStore {
	return &stubStore{bookings: append([]Booking(nil), bookings...)}
}

func (store *stubStore) LoadAll(ctx context.Context) ([]Booking, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	if store.loadError != nil {
		return nil, store.loadError
	}
	return append([]Booking(nil), store.bookings...), nil
}

func (store *stubStore) SaveAll(ctx context.Context, bookings []Booking) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	if store.saveError != nil {
		return store.saveError
	}
	store.saves++
	store.bookings = append([]Booking(nil), bookings...)
	return nil
}

func (store *stubStore) snapshot() []Booking {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return append([]Booking(nil), store.bookings...)
}

type stubCatalog struct {
	rooms map[RoomID]Room
}

func newStubCatalog(test *testing.T) *stubCatalog {
	test.Helper()
	return &stubCatalog{rooms: map[RoomID]Room{
		mustRoomID(test, alpineRoomIDValue): {
			ID:            mustRoomID(test, alpineRoomIDValue),
			Name:          "Alpine Deluxe",
			Type:          RoomTypeDeluxe,
			PricePerNight: 25000,
			MaxGuests:     2,
		},
		mustRoomID(test, standardRoomIDValue): {
			ID:            mustRoomID(test, standardRoomIDValue),
			Name:          "Cozy Standard",
			Type:          RoomTypeStandard,
			PricePerNight: 12000,
			MaxGuests:     2,
		},
	}}
}

func (catalog *stubCatalog) FindRoom(_ context.Context, roomID RoomID) (Room, error) {
	room, ok := catalog.rooms[roomID]
	if !ok {
		return Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	return room, nil
}

type manualClock struct {
	mutex sync.Mutex
	now   time.Time
}

func newManualClock(now time.Time) *manualClock {
	return &manualClock{now: now}
}

func (clock *manualClock) Now() time.Time {
	clock.mutex.Lock()
	defer clock.mutex.Unlock()
	return clock.now
}

func (clock *manualClock) Set(now time.Time) {
	clock.mutex.Lock()
	defer clock.mutex.Unlock()
	clock.now = now
}

func sequentialIDs(prefix string) func() string {
	var mutex sync.Mutex
	counter := 0
	return func() string {
		mutex.Lock()
		defer mutex.Unlock()
		counter++
		return fmt.Sprintf("%s-%d", prefix, counter)
	}
}

func mustNewService(test *testing.T, store Store, clock *manualClock, options ...ServiceOption) *Service {
	test.Helper()
	allOptions := append([]ServiceOption{WithIDGenerator(sequentialIDs("id"))}, options...)
	service, err := NewService(store, newStubCatalog(test), clock.Now, allOptions...)
	if err != nil {
		test.Fatalf("new service: %v", err)
	}
	return service
}

func mustUserID(test *testing.T, raw string) UserID {
	test.Helper()
	value, err := NewUserID(raw)
	if err != nil {
		test.Fatalf("user id: %v", err)
	}
	return value
}

func mustRoomID(test *testing.T, raw string) RoomID {
	test.Helper()
	value, err := NewRoomID(raw)
	if err != nil {
		test.Fatalf("room id: %v", err)
	}
	return value
}

func mustBookingID(test *testing.T, raw string) BookingID {
	test.Helper()
	value, err := NewBookingID(raw)
	if err != nil {
		test.Fatalf("booking id: %v", err)
	}
	return value
}

func mustDate(test *testing.T, raw string) time.Time {
	test.Helper()
	value, err := ParseDate(raw)
	if err != nil {
		test.Fatalf("date %q: %v", raw, err)
	}
	return value
}

func mustDateRange(test *testing.T, checkIn string, checkOut string) DateRange {
	test.Helper()
	value, err := NewDateRange(mustDate(test, checkIn), mustDate(test, checkOut))
	if err != nil {
		test.Fatalf("date range: %v", err)
	}
	return value
}

func mustCreateBooking(test *testing.T, service *Service, roomID string, checkIn string, checkOut string) Booking {
	test.Helper()
	created, err := service.CreateBooking(context.Background(), BookingRequest{
		UserID:   mustUserID(test, defaultUserIDValue),
		RoomID:   mustRoomID(test, roomID),
		CheckIn:  mustDate(test, checkIn),
		CheckOut: mustDate(test, checkOut),
	})
	if err != nil {
		test.Fatalf("create booking %s %s..%s: %v", roomID, checkIn, checkOut, err)
	}
	return created
}

func expectError(test *testing.T, err error, want error) {
	test.Helper()
	if !errors.Is(err, want) {
		test.Fatalf("expected %v, got %v", want, err)
	}
}
