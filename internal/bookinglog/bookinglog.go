// Package bookinglog adapts booking.OperationLogger onto zap.
package bookinglog

import (
	"context"

	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
	"go.uber.org/zap"
)

const logMessage = "booking operation"

// Logger writes one structured entry per booking operation.
type Logger struct {
	logger *zap.Logger
}

// New wraps a zap logger. A nil logger yields a no-op.
func New(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger.Named("booking")}
}

// LogOperation implements booking.OperationLogger.
func (logger *Logger) LogOperation(_ context.Context, entry booking.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("status", entry.Status),
	}
	if value := entry.UserID.String(); value != "" {
		fields = append(fields, zap.String("user_id", value))
	}
	if value := entry.BookingID.String(); value != "" {
		fields = append(fields, zap.String("booking_id", value))
	}
	if value := entry.RoomID.String(); value != "" {
		fields = append(fields, zap.String("room_id", value))
	}
	if !entry.Stay.CheckIn.IsZero() {
		fields = append(fields,
			zap.String("check_in", booking.FormatDate(entry.Stay.CheckIn)),
			zap.String("check_out", booking.FormatDate(entry.Stay.CheckOut)),
		)
	}
	if entry.Amount != 0 {
		fields = append(fields, zap.Int64("amount_cents", entry.Amount.Int64()))
	}
	if entry.Percentage != 0 {
		fields = append(fields, zap.Int("refund_percentage", entry.Percentage))
	}
	if entry.Error != nil {
		logger.logger.Warn(logMessage, append(fields, zap.Error(entry.Error))...)
		return
	}
	logger.logger.Info(logMessage, fields...)
}
