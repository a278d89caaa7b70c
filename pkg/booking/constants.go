package booking

import "time"

const (
	operationCreate        = "create_booking"
	operationCancel        = "cancel_booking"
	operationPreviewRefund = "preview_refund"

	operationStatusOK    = "ok"
	operationStatusError = "error"

	// DefaultStorageKey is the key under which the booking collection is persisted.
	DefaultStorageKey = "bookings"

	// DefaultCleaningFeeCents and DefaultServiceFeeCents are the flat per-booking fees ($50 + $30).
	DefaultCleaningFeeCents AmountCents = 5000
	DefaultServiceFeeCents  AmountCents = 3000

	feeNameCleaning = "cleaning_fee"
	feeNameService  = "service_fee"

	fullRefundPercentage    = 100
	defaultPartialRefund    = 50
	noRefundPercentage      = 0
	defaultFullRefundNotice = 24 * time.Hour

	hoursPerDay = 24 * time.Hour
	dateLayout  = "2006-01-02"
)
