package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MarkoPoloResearchLab/staybook/internal/catalog"
	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
	"github.com/gin-gonic/gin"
	"github.com/tyemirov/tauth/pkg/sessionvalidator"
	"go.uber.org/zap"
)

const (
	errorCodeUnauthorized   = "unauthorized"
	errorCodeInvalidPayload = "invalid_payload"
	errorCodeInvalidQuery   = "invalid_query"
	errorCodeInternal       = "internal_error"
)

// Handler translates HTTP requests into booking.Service calls.
type Handler struct {
	logger         *zap.Logger
	bookingService *booking.Service
	rooms          *catalog.Catalog
	timeout        time.Duration
}

// NewHandler builds a Handler. A nil logger is replaced with a no-op.
func NewHandler(logger *zap.Logger, bookingService *booking.Service, rooms *catalog.Catalog, timeout time.Duration) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Handler{logger: logger, bookingService: bookingService, rooms: rooms, timeout: timeout}
}

func (handler *Handler) handleListRooms(ctx *gin.Context) {
	filter := catalog.Filter{}
	minPrice, err := parseCentsQuery(ctx, "min_price_cents")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errorCodeInvalidQuery, err.Error()))
		return
	}
	maxPrice, err := parseCentsQuery(ctx, "max_price_cents")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errorCodeInvalidQuery, err.Error()))
		return
	}
	filter.MinPrice = minPrice
	filter.MaxPrice = maxPrice
	for _, rawType := range ctx.QueryArray("type") {
		roomType, err := booking.ParseRoomType(rawType)
		if err != nil {
			handler.respondError(ctx, err)
			return
		}
		filter.Types = append(filter.Types, roomType)
	}
	rooms := handler.rooms.Rooms(filter)
	payload := make([]roomPayload, 0, len(rooms))
	for _, room := range rooms {
		payload = append(payload, toRoomPayload(room))
	}
	ctx.JSON(http.StatusOK, gin.H{"rooms": payload})
}

func (handler *Handler) handleGetRoom(ctx *gin.Context) {
	room, ok := handler.lookupRoom(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"room": toRoomPayload(room)})
}

func (handler *Handler) handleUnavailableRanges(ctx *gin.Context) {
	room, ok := handler.lookupRoom(ctx)
	if !ok {
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()
	ranges, err := handler.bookingService.UnavailableRanges(requestCtx, room.ID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	payload := make([]rangePayload, 0, len(ranges))
	for _, stay := range ranges {
		payload = append(payload, rangePayload{CheckIn: booking.FormatDate(stay.CheckIn), CheckOut: booking.FormatDate(stay.CheckOut)})
	}
	ctx.JSON(http.StatusOK, gin.H{"room_id": room.ID.String(), "ranges": payload})
}

func (handler *Handler) handleQuote(ctx *gin.Context) {
	roomID, err := booking.NewRoomID(ctx.Param("id"))
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	checkIn, err := booking.ParseDate(ctx.Query("check_in"))
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	checkOut, err := booking.ParseDate(ctx.Query("check_out"))
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()
	breakdown, err := handler.bookingService.Quote(requestCtx, roomID, checkIn, checkOut)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	fees := make([]feePayload, 0, len(breakdown.Fees))
	for _, fee := range breakdown.Fees {
		fees = append(fees, feePayload{Name: fee.Name, AmountCents: fee.Amount.Int64()})
	}
	ctx.JSON(http.StatusOK, gin.H{"quote": quotePayload{
		RoomID:           breakdown.RoomID.String(),
		CheckIn:          booking.FormatDate(breakdown.Stay.CheckIn),
		CheckOut:         booking.FormatDate(breakdown.Stay.CheckOut),
		Nights:           breakdown.Nights,
		NightlyRateCents: breakdown.NightlyRate.Int64(),
		SubtotalCents:    breakdown.Subtotal.Int64(),
		Fees:             fees,
		TotalCents:       breakdown.Total.Int64(),
	}})
}

func (handler *Handler) handleSession(ctx *gin.Context) {
	claims := getClaims(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errorCodeUnauthorized, "missing session"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"user_id": claims.GetUserID(),
		"email":   claims.GetUserEmail(),
		"display": claims.GetUserDisplayName(),
	})
}

func (handler *Handler) handleListBookings(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()
	bookings, err := handler.bookingService.ListUserBookings(requestCtx, userID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	payload := make([]bookingPayload, 0, len(bookings))
	for _, record := range bookings {
		payload = append(payload, toBookingPayload(record))
	}
	ctx.JSON(http.StatusOK, gin.H{"bookings": payload})
}

func (handler *Handler) handleCreateBooking(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	var request createBookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errorCodeInvalidPayload, "expected JSON body"))
		return
	}
	roomID, err := booking.NewRoomID(request.RoomID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	checkIn, err := booking.ParseDate(request.CheckIn)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	checkOut, err := booking.ParseDate(request.CheckOut)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()
	created, err := handler.bookingService.CreateBooking(requestCtx, booking.BookingRequest{
		UserID:   userID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   request.Guests,
	})
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"booking": toBookingPayload(created)})
}

func (handler *Handler) handlePreviewRefund(ctx *gin.Context) {
	bookingID, ok := handler.ownedBookingID(ctx)
	if !ok {
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()
	quote, err := handler.bookingService.PreviewRefund(requestCtx, bookingID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"refund": refundQuotePayload{
		BookingID:     quote.BookingID.String(),
		Percentage:    quote.Percentage,
		AmountCents:   quote.Amount.Int64(),
		PaymentStatus: quote.PaymentStatus.String(),
		NoticeSeconds: int64(quote.NoticeRemaining / time.Second),
	}})
}

func (handler *Handler) handleCancelBooking(ctx *gin.Context) {
	bookingID, ok := handler.ownedBookingID(ctx)
	if !ok {
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()
	cancellation, err := handler.bookingService.CancelBooking(requestCtx, bookingID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	var refund *refundPayload
	if cancellation.Refund != nil {
		refund = &refundPayload{
			ID:          cancellation.Refund.ID.String(),
			BookingID:   cancellation.Refund.BookingID.String(),
			AmountCents: cancellation.Refund.Amount.Int64(),
			Percentage:  cancellation.Refund.Percentage,
			Date:        cancellation.Refund.Date.UTC().Format(time.RFC3339),
		}
	}
	ctx.JSON(http.StatusOK, gin.H{
		"booking": toBookingPayload(cancellation.Booking),
		"refund":  refund,
	})
}

func (handler *Handler) lookupRoom(ctx *gin.Context) (booking.Room, bool) {
	roomID, err := booking.NewRoomID(ctx.Param("id"))
	if err != nil {
		handler.respondError(ctx, err)
		return booking.Room{}, false
	}
	room, err := handler.rooms.FindRoom(ctx.Request.Context(), roomID)
	if err != nil {
		handler.respondError(ctx, err)
		return booking.Room{}, false
	}
	return room, true
}

// ownedBookingID resolves the :id parameter and answers 404 unless the session user owns it.
func (handler *Handler) ownedBookingID(ctx *gin.Context) (booking.BookingID, bool) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return booking.BookingID{}, false
	}
	bookingID, err := booking.NewBookingID(ctx.Param("id"))
	if err != nil {
		handler.respondError(ctx, err)
		return booking.BookingID{}, false
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()
	existing, err := handler.bookingService.GetBooking(requestCtx, bookingID)
	if err != nil {
		handler.respondError(ctx, err)
		return booking.BookingID{}, false
	}
	if existing.UserID != userID {
		handler.respondError(ctx, booking.ErrBookingNotFound)
		return booking.BookingID{}, false
	}
	return bookingID, true
}

func (handler *Handler) respondError(ctx *gin.Context, err error) {
	statusCode, code := classifyError(err)
	if statusCode >= http.StatusInternalServerError {
		handler.logger.Error("booking request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.JSON(statusCode, errorResponse(code, "booking ledger unavailable"))
		return
	}
	ctx.JSON(statusCode, errorResponse(code, err.Error()))
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrInvalidUserID):
		return http.StatusBadRequest, "invalid_user_id"
	case errors.Is(err, booking.ErrInvalidRoomID):
		return http.StatusBadRequest, "invalid_room_id"
	case errors.Is(err, booking.ErrInvalidBookingID):
		return http.StatusBadRequest, "invalid_booking_id"
	case errors.Is(err, booking.ErrInvalidRoomType):
		return http.StatusBadRequest, "invalid_room_type"
	case errors.Is(err, booking.ErrInvalidDate):
		return http.StatusBadRequest, "invalid_date"
	case errors.Is(err, booking.ErrDateRangeInvalid):
		return http.StatusBadRequest, "date_range_invalid"
	case errors.Is(err, booking.ErrCheckInInPast):
		return http.StatusBadRequest, "check_in_in_past"
	case errors.Is(err, booking.ErrGuestCapacityExceeded):
		return http.StatusBadRequest, "guest_capacity_exceeded"
	case errors.Is(err, booking.ErrRoomNotFound):
		return http.StatusNotFound, "room_not_found"
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound, "booking_not_found"
	case errors.Is(err, booking.ErrSlotUnavailable):
		return http.StatusConflict, "slot_unavailable"
	case errors.Is(err, booking.ErrInvalidState):
		return http.StatusConflict, "invalid_state"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, errorCodeInternal
	}
}

func parseCentsQuery(ctx *gin.Context, name string) (booking.AmountCents, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return booking.NewAmountCents(value)
}

func sessionUserID(ctx *gin.Context) (booking.UserID, bool) {
	claims := getClaims(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errorCodeUnauthorized, "missing session"))
		return booking.UserID{}, false
	}
	userID, err := booking.NewUserID(claims.GetUserID())
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errorCodeUnauthorized, "session has no user"))
		return booking.UserID{}, false
	}
	return userID, true
}

func getClaims(ctx *gin.Context) *sessionvalidator.Claims {
	claimsValue, ok := ctx.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := claimsValue.(*sessionvalidator.Claims)
	return claims
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}
