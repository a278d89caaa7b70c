package booking

import "fmt"

// FeeSchedule holds the flat surcharges added to every booking.
type FeeSchedule struct {
	Cleaning AmountCents
	Service  AmountCents
}

// DefaultFeeSchedule returns the $50 cleaning and $30 service fees.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{Cleaning: DefaultCleaningFeeCents, Service: DefaultServiceFeeCents}
}

// Validate rejects negative fees.
func (schedule FeeSchedule) Validate() error {
	if schedule.Cleaning < 0 || schedule.Service < 0 {
		return fmt.Errorf("%w: fees must not be negative", ErrInvalidServiceConfig)
	}
	return nil
}

// Total sums the fixed fees.
func (schedule FeeSchedule) Total() AmountCents {
	return schedule.Cleaning + schedule.Service
}

// Fee is a named line item.
type Fee struct {
	Name   string
	Amount AmountCents
}

// PriceBreakdown explains how a booking total is composed.
type PriceBreakdown struct {
	RoomID      RoomID
	Stay        DateRange
	Nights      int
	NightlyRate AmountCents
	Subtotal    AmountCents
	Fees        []Fee
	Total       AmountCents
}

// priceStay computes nights x nightly rate plus fixed fees.
func priceStay(room Room, stay DateRange, schedule FeeSchedule) PriceBreakdown {
	nights := stay.Nights()
	subtotal := AmountCents(int64(nights) * room.PricePerNight.Int64())
	return PriceBreakdown{
		RoomID:      room.ID,
		Stay:        stay,
		Nights:      nights,
		NightlyRate: room.PricePerNight,
		Subtotal:    subtotal,
		Fees: []Fee{
			{Name: feeNameCleaning, Amount: schedule.Cleaning},
			{Name: feeNameService, Amount: schedule.Service},
		},
		Total: subtotal + schedule.Total(),
	}
}
