package booking

import (
	"errors"
	"fmt"
)

// Domain-level error values returned by the booking service.
var (
	ErrDateRangeInvalid      = errors.New("date range invalid")
	ErrSlotUnavailable       = errors.New("slot unavailable")
	ErrRoomNotFound          = errors.New("room not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrInvalidState          = errors.New("invalid booking state")
	ErrCheckInInPast         = errors.New("check-in date is in the past")
	ErrGuestCapacityExceeded = errors.New("guest capacity exceeded")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidRoomID         = errors.New("invalid room id")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidRefundID       = errors.New("invalid refund id")
	ErrInvalidAmountCents    = errors.New("invalid amount cents")
	ErrInvalidBookingStatus  = errors.New("invalid booking status")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrInvalidRoomType       = errors.New("invalid room type")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidStorageKey     = errors.New("invalid storage key")
	ErrInvalidServiceConfig  = errors.New("invalid service config")
)

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}
