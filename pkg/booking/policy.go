package booking

import (
	"fmt"
	"time"
)

// RefundPolicy maps the notice given before check-in onto a refund percentage.
type RefundPolicy struct {
	FullRefundNotice  time.Duration
	PartialPercentage int
}

// DefaultRefundPolicy refunds everything with at least 24 hours notice and half before check-in.
func DefaultRefundPolicy() RefundPolicy {
	return RefundPolicy{
		FullRefundNotice:  defaultFullRefundNotice,
		PartialPercentage: defaultPartialRefund,
	}
}

// Validate ensures the policy describes three ordered tiers.
func (policy RefundPolicy) Validate() error {
	if policy.FullRefundNotice <= 0 {
		return fmt.Errorf("%w: full refund notice must be positive", ErrInvalidServiceConfig)
	}
	if policy.PartialPercentage <= noRefundPercentage || policy.PartialPercentage >= fullRefundPercentage {
		return fmt.Errorf("%w: partial refund percentage must be between 0 and 100", ErrInvalidServiceConfig)
	}
	return nil
}

// RefundQuote describes what cancelling at a given instant would return.
type RefundQuote struct {
	BookingID       BookingID
	Percentage      int
	Amount          AmountCents
	PaymentStatus   PaymentStatus
	NoticeRemaining time.Duration
}

// Quote evaluates the tier for a booking cancelled at now.
func (policy RefundPolicy) Quote(booking Booking, now time.Time) RefundQuote {
	notice := booking.Stay.CheckIn.Sub(now)
	percentage := policy.percentageFor(notice)
	return RefundQuote{
		BookingID:       booking.ID,
		Percentage:      percentage,
		Amount:          refundAmount(booking.TotalPrice, percentage),
		PaymentStatus:   paymentStatusFor(percentage),
		NoticeRemaining: notice,
	}
}

func (policy RefundPolicy) percentageFor(notice time.Duration) int {
	switch {
	case notice >= policy.FullRefundNotice:
		return fullRefundPercentage
	case notice > 0:
		return policy.PartialPercentage
	default:
		return noRefundPercentage
	}
}

func paymentStatusFor(percentage int) PaymentStatus {
	switch {
	case percentage >= fullRefundPercentage:
		return PaymentStatusRefunded
	case percentage > noRefundPercentage:
		return PaymentStatusPartialRefunded
	default:
		return PaymentStatusPaid
	}
}

// refundAmount applies percentage to total rounding half-up to the cent.
func refundAmount(total AmountCents, percentage int) AmountCents {
	if total <= 0 || percentage <= 0 {
		return 0
	}
	return AmountCents((total.Int64()*int64(percentage) + 50) / 100)
}
